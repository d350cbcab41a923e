package usecase

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"strings"
	"time"

	"manutencao_xpto/internal/domain/entities"
	"manutencao_xpto/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrRequisitionNotFound      = errors.New("parts requisition not found")
	ErrRequisitionItemNotFound  = errors.New("parts requisition item not found")
	ErrInvalidRequisitionID     = errors.New("invalid requisition id")
	ErrInvalidRequisitionItemID = errors.New("invalid requisition item id")
	ErrInvalidTechnicianID      = errors.New("invalid technician_id")
	ErrInvalidRequisitionItems  = errors.New("requisition needs at least one item with a part name and positive quantity")
	ErrInvalidItemStatus        = errors.New("invalid requisition item status")
	ErrInvalidTriageTarget      = errors.New("triage cannot move an item back to pending approval")
	ErrTriageConflict           = errors.New("triage write conflict not resolved after retries")
)

type CreateRequisitionItemInput struct {
	PartName string
	Quantity int
	Notes    string
}

type CreatePartsRequisitionInput struct {
	ServiceOrderID string
	TechnicianID   string
	GeneralNotes   string
	Items          []CreateRequisitionItemInput
}

// IPartsRequisitionUseCase exposes requisition creation and the triage workflow.
//
// TriageItem is the one transactional operation of the system: it re-reads the
// requisition, applies the item change, recomputes the aggregate status over the
// updated item list and writes items and status back together, retrying on
// concurrent-write conflicts.

type IPartsRequisitionUseCase interface {
	Create(ctx context.Context, in CreatePartsRequisitionInput) (entities.PartsRequisition, error)
	GetByID(ctx context.Context, id string) (entities.PartsRequisition, error)
	ListByServiceOrderID(ctx context.Context, serviceOrderID string) ([]entities.PartsRequisition, error)
	TriageItem(ctx context.Context, requisitionID, itemID, newStatus string, triageNotes *string) (entities.PartsRequisition, error)
	AttachItemImage(ctx context.Context, requisitionID, itemID, fileName, contentType string, body io.Reader) (entities.PartsRequisition, error)
}

type PartsRequisitionUseCase struct {
	repo   interfaces.IPartsRequisitionRepository
	orders interfaces.IServiceOrderRepository
	blobs  interfaces.IBlobStore
	now    func() time.Time
}

var _ IPartsRequisitionUseCase = (*PartsRequisitionUseCase)(nil)

func NewPartsRequisitionUseCase(repo interfaces.IPartsRequisitionRepository, orders interfaces.IServiceOrderRepository, blobs interfaces.IBlobStore) *PartsRequisitionUseCase {
	return &PartsRequisitionUseCase{repo: repo, orders: orders, blobs: blobs, now: func() time.Time { return time.Now().UTC() }}
}

func (u *PartsRequisitionUseCase) Create(ctx context.Context, in CreatePartsRequisitionInput) (entities.PartsRequisition, error) {
	in.ServiceOrderID = strings.TrimSpace(in.ServiceOrderID)
	in.TechnicianID = strings.TrimSpace(in.TechnicianID)
	if in.ServiceOrderID == "" {
		return entities.PartsRequisition{}, ErrInvalidServiceOrderID
	}
	if in.TechnicianID == "" {
		return entities.PartsRequisition{}, ErrInvalidTechnicianID
	}
	if len(in.Items) == 0 {
		return entities.PartsRequisition{}, ErrInvalidRequisitionItems
	}

	items := make([]entities.PartsRequisitionItem, 0, len(in.Items))
	for _, it := range in.Items {
		name := strings.TrimSpace(it.PartName)
		if name == "" || it.Quantity <= 0 {
			return entities.PartsRequisition{}, ErrInvalidRequisitionItems
		}
		items = append(items, entities.PartsRequisitionItem{
			ID:       uuid.NewString(),
			PartName: name,
			Quantity: it.Quantity,
			Notes:    it.Notes,
			Status:   entities.ItemStatusPendenteAprovacao,
		})
	}

	order, err := u.orders.GetByID(ctx, in.ServiceOrderID)
	if err != nil {
		return entities.PartsRequisition{}, err
	}
	if order.ID == "" {
		return entities.PartsRequisition{}, ErrServiceOrderNotFound
	}

	number, err := u.repo.NextNumber(ctx)
	if err != nil {
		return entities.PartsRequisition{}, err
	}

	now := u.now()
	r := entities.PartsRequisition{
		ID:             uuid.NewString(),
		Number:         number,
		ServiceOrderID: in.ServiceOrderID,
		TechnicianID:   in.TechnicianID,
		Status:         entities.AggregateRequisitionStatus(items),
		Items:          items,
		GeneralNotes:   in.GeneralNotes,
		Version:        1,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	return u.repo.Create(ctx, r)
}

func (u *PartsRequisitionUseCase) GetByID(ctx context.Context, id string) (entities.PartsRequisition, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.PartsRequisition{}, ErrInvalidRequisitionID
	}

	r, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.PartsRequisition{}, err
	}
	if r.ID == "" {
		return entities.PartsRequisition{}, ErrRequisitionNotFound
	}
	return r, nil
}

func (u *PartsRequisitionUseCase) ListByServiceOrderID(ctx context.Context, serviceOrderID string) ([]entities.PartsRequisition, error) {
	serviceOrderID = strings.TrimSpace(serviceOrderID)
	if serviceOrderID == "" {
		return nil, ErrInvalidServiceOrderID
	}
	return u.repo.ListByServiceOrderID(ctx, serviceOrderID)
}

// TriageItem approves or refuses a single requested part (or moves it further
// along fulfilment). Moving an item back to "Pendente Aprovação" is not a triage
// action and is rejected. A nil triageNotes keeps whatever annotation the item
// already carries.
func (u *PartsRequisitionUseCase) TriageItem(ctx context.Context, requisitionID, itemID, newStatus string, triageNotes *string) (entities.PartsRequisition, error) {
	requisitionID = strings.TrimSpace(requisitionID)
	itemID = strings.TrimSpace(itemID)
	if requisitionID == "" {
		return entities.PartsRequisition{}, ErrInvalidRequisitionID
	}
	if itemID == "" {
		return entities.PartsRequisition{}, ErrInvalidRequisitionItemID
	}

	status, err := entities.ParseRequisitionItemStatus(newStatus)
	if err != nil {
		return entities.PartsRequisition{}, ErrInvalidItemStatus
	}
	if status == entities.ItemStatusPendenteAprovacao {
		return entities.PartsRequisition{}, ErrInvalidTriageTarget
	}

	return u.mutate(ctx, requisitionID, func(r *entities.PartsRequisition) error {
		idx := r.ItemIndex(itemID)
		if idx < 0 {
			return ErrRequisitionItemNotFound
		}
		r.Items[idx].Status = status
		if triageNotes != nil {
			r.Items[idx].TriageNotes = *triageNotes
		}
		return nil
	})
}

func (u *PartsRequisitionUseCase) AttachItemImage(ctx context.Context, requisitionID, itemID, fileName, contentType string, body io.Reader) (entities.PartsRequisition, error) {
	r, err := u.GetByID(ctx, requisitionID)
	if err != nil {
		return entities.PartsRequisition{}, err
	}
	if r.ItemIndex(strings.TrimSpace(itemID)) < 0 {
		return entities.PartsRequisition{}, ErrRequisitionItemNotFound
	}

	key := fmt.Sprintf("requisitions/%s/items/%s/%s-%s", r.ID, strings.TrimSpace(itemID), uuid.NewString(), strings.TrimSpace(fileName))
	url, err := u.blobs.Upload(ctx, key, contentType, body)
	if err != nil {
		return entities.PartsRequisition{}, err
	}

	return u.mutate(ctx, r.ID, func(r *entities.PartsRequisition) error {
		idx := r.ItemIndex(strings.TrimSpace(itemID))
		if idx < 0 {
			return ErrRequisitionItemNotFound
		}
		r.Items[idx].ImageURL = url
		return nil
	})
}

// mutate is the transactional core: read the full requisition, apply the item
// change, recompute the aggregate status from the updated items and write both
// back conditionally on the version that was read. Item mutations and the
// aggregate never land in separate writes, so the stored status cannot drift
// from its derivation.
func (u *PartsRequisitionUseCase) mutate(ctx context.Context, id string, apply func(*entities.PartsRequisition) error) (entities.PartsRequisition, error) {
	for attempt := 0; attempt < casMaxAttempts; attempt++ {
		r, err := u.repo.GetByID(ctx, id)
		if err != nil {
			return entities.PartsRequisition{}, err
		}
		if r.ID == "" {
			return entities.PartsRequisition{}, ErrRequisitionNotFound
		}

		if err := apply(&r); err != nil {
			return entities.PartsRequisition{}, err
		}
		r.Status = entities.AggregateRequisitionStatus(r.Items)
		r.UpdatedAt = u.now()

		saved, err := u.repo.Save(ctx, r)
		if errors.Is(err, interfaces.ErrVersionConflict) {
			continue
		}
		if err != nil {
			return entities.PartsRequisition{}, err
		}
		return saved, nil
	}

	log.Printf("[triage][usecase] write conflict retries exhausted requisition_id=%s", id)
	return entities.PartsRequisition{}, ErrTriageConflict
}
