package interfaces

import (
	"context"

	"manutencao_xpto/internal/domain/entities"
)

// IPartsRequisitionRepository abstracts DynamoDB persistence for PartsRequisition.
//
// The requisition document (items included) is the unit of mutual exclusion:
// Save writes the whole document conditionally on the version read by the caller
// and returns ErrVersionConflict when a concurrent triage got there first.

type IPartsRequisitionRepository interface {
	Create(ctx context.Context, r entities.PartsRequisition) (entities.PartsRequisition, error)
	GetByID(ctx context.Context, id string) (entities.PartsRequisition, error)
	ListByServiceOrderID(ctx context.Context, serviceOrderID string) ([]entities.PartsRequisition, error)
	Save(ctx context.Context, r entities.PartsRequisition) (entities.PartsRequisition, error)
	NextNumber(ctx context.Context) (int, error)
}
