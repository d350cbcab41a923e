package interfaces

import (
	"context"

	"manutencao_xpto/internal/domain/entities"
)

// IBudgetRepository abstracts DynamoDB persistence for Budget.

type IBudgetRepository interface {
	Create(ctx context.Context, b entities.Budget) (entities.Budget, error)
	GetByID(ctx context.Context, id string) (entities.Budget, error)
	List(ctx context.Context) ([]entities.Budget, error)
	Save(ctx context.Context, b entities.Budget) (entities.Budget, error)
	NextNumber(ctx context.Context) (int, error)
}
