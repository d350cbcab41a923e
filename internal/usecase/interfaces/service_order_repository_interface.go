package interfaces

import (
	"context"

	"manutencao_xpto/internal/domain/entities"
)

// IServiceOrderRepository abstracts DynamoDB persistence for ServiceOrder.
//
// Save is the conditional-write half of the read-modify-write cycle: it persists
// the given snapshot only if the stored version still matches snapshot.Version,
// bumping the version on success, and fails with ErrVersionConflict otherwise.
// NextNumber allocates the next sequential human-readable order number from an
// atomic counter (first issued number is 4000).

type IServiceOrderRepository interface {
	Create(ctx context.Context, o entities.ServiceOrder) (entities.ServiceOrder, error)
	GetByID(ctx context.Context, id string) (entities.ServiceOrder, error)
	List(ctx context.Context) ([]entities.ServiceOrder, error)
	Save(ctx context.Context, o entities.ServiceOrder) (entities.ServiceOrder, error)
	Delete(ctx context.Context, id string) error
	NextNumber(ctx context.Context) (int, error)
}
