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
	ErrServiceOrderNotFound       = errors.New("service order not found")
	ErrInvalidServiceOrderID      = errors.New("invalid service order id")
	ErrInvalidCustomerID          = errors.New("invalid customer_id")
	ErrInvalidEquipmentID         = errors.New("invalid equipment_id")
	ErrVehicleNotFound            = errors.New("vehicle not found")
	ErrInvalidPhase               = errors.New("invalid service order phase")
	ErrInvalidPhaseTransition     = errors.New("invalid service order phase transition")
	ErrServiceOrderClosed         = errors.New("service order is closed")
	ErrMissingTechnicalConclusion = errors.New("technical conclusion is required to complete a service order")
	ErrAttachmentNotFound         = errors.New("attachment not found")
	ErrWriteConflict              = errors.New("write conflict not resolved after retries")
)

// casMaxAttempts bounds the read-then-conditional-write retry loops. Conflicts
// within the budget are retried transparently; past it the caller gets
// ErrWriteConflict, which is safe to retry end to end.
const casMaxAttempts = 5

type CreateServiceOrderInput struct {
	CustomerID   string
	EquipmentID  string
	TechnicianID string
	VehicleID    string

	StartDate *time.Time
	EndDate   *time.Time

	Description string
	Notes       string

	EstimatedTravelDistanceKm *float64
	EstimatedTollCosts        *float64
}

// UpdateServiceOrderInput carries optional field edits; nil means "leave as is".
type UpdateServiceOrderInput struct {
	TechnicianID *string
	VehicleID    *string

	StartDate *time.Time
	EndDate   *time.Time

	Description         *string
	Notes               *string
	TechnicalConclusion *string

	EstimatedTravelDistanceKm *float64
	EstimatedTollCosts        *float64
}

// TouchesProtectedFields reports whether the edit reaches beyond the fields
// that stay editable on a closed order (notes only; attachments have their own
// operations).
func (in UpdateServiceOrderInput) TouchesProtectedFields() bool {
	return in.TechnicianID != nil || in.VehicleID != nil ||
		in.StartDate != nil || in.EndDate != nil ||
		in.Description != nil || in.TechnicalConclusion != nil ||
		in.EstimatedTravelDistanceKm != nil || in.EstimatedTollCosts != nil
}

// IServiceOrderUseCase exposes the service order lifecycle.
//
// Phase changes are hard-gated: non-terminal phases move freely, completion
// demands a technical conclusion, and closed orders only accept notes and
// attachment changes. Every mutation of an existing order runs the versioned
// read-then-conditional-write cycle, so concurrent edits conflict instead of
// silently overwriting each other.

type IServiceOrderUseCase interface {
	Create(ctx context.Context, in CreateServiceOrderInput) (entities.ServiceOrder, error)
	GetByID(ctx context.Context, id string) (entities.ServiceOrder, error)
	List(ctx context.Context) ([]entities.ServiceOrder, error)
	Update(ctx context.Context, id string, in UpdateServiceOrderInput) (entities.ServiceOrder, error)
	TransitionPhase(ctx context.Context, id, phase string) (entities.ServiceOrder, error)
	Complete(ctx context.Context, id, technicalConclusion string) (entities.ServiceOrder, error)
	Cancel(ctx context.Context, id string) (entities.ServiceOrder, error)
	Delete(ctx context.Context, id string) error
	AddAttachment(ctx context.Context, id, fileName, contentType string, body io.Reader) (entities.ServiceOrder, error)
	RemoveAttachment(ctx context.Context, id, url string) (entities.ServiceOrder, error)
}

type ServiceOrderUseCase struct {
	repo     interfaces.IServiceOrderRepository
	vehicles interfaces.IVehicleRepository
	blobs    interfaces.IBlobStore
	now      func() time.Time
}

var _ IServiceOrderUseCase = (*ServiceOrderUseCase)(nil)

func NewServiceOrderUseCase(repo interfaces.IServiceOrderRepository, vehicles interfaces.IVehicleRepository, blobs interfaces.IBlobStore) *ServiceOrderUseCase {
	return &ServiceOrderUseCase{repo: repo, vehicles: vehicles, blobs: blobs, now: func() time.Time { return time.Now().UTC() }}
}

func (u *ServiceOrderUseCase) Create(ctx context.Context, in CreateServiceOrderInput) (entities.ServiceOrder, error) {
	in.CustomerID = strings.TrimSpace(in.CustomerID)
	in.EquipmentID = strings.TrimSpace(in.EquipmentID)
	if in.CustomerID == "" {
		return entities.ServiceOrder{}, ErrInvalidCustomerID
	}
	if in.EquipmentID == "" {
		return entities.ServiceOrder{}, ErrInvalidEquipmentID
	}

	travelCost, err := u.resolveTravelCost(ctx, strings.TrimSpace(in.VehicleID), in.EstimatedTravelDistanceKm, in.EstimatedTollCosts)
	if err != nil {
		return entities.ServiceOrder{}, err
	}

	number, err := u.repo.NextNumber(ctx)
	if err != nil {
		return entities.ServiceOrder{}, err
	}

	now := u.now()
	o := entities.ServiceOrder{
		ID:           uuid.NewString(),
		Number:       number,
		Phase:        entities.PhaseAguardandoAvaliacao,
		CustomerID:   in.CustomerID,
		EquipmentID:  in.EquipmentID,
		TechnicianID: strings.TrimSpace(in.TechnicianID),
		VehicleID:    strings.TrimSpace(in.VehicleID),
		StartDate:    in.StartDate,
		EndDate:      in.EndDate,
		Description:  in.Description,
		Notes:        in.Notes,

		EstimatedTravelDistanceKm: in.EstimatedTravelDistanceKm,
		EstimatedTollCosts:        in.EstimatedTollCosts,
		EstimatedTravelCost:       travelCost,

		Version:   1,
		CreatedAt: now,
		UpdatedAt: now,
	}
	return u.repo.Create(ctx, o)
}

func (u *ServiceOrderUseCase) GetByID(ctx context.Context, id string) (entities.ServiceOrder, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.ServiceOrder{}, ErrInvalidServiceOrderID
	}

	o, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.ServiceOrder{}, err
	}
	if o.ID == "" {
		return entities.ServiceOrder{}, ErrServiceOrderNotFound
	}
	return o, nil
}

func (u *ServiceOrderUseCase) List(ctx context.Context) ([]entities.ServiceOrder, error) {
	return u.repo.List(ctx)
}

func (u *ServiceOrderUseCase) Update(ctx context.Context, id string, in UpdateServiceOrderInput) (entities.ServiceOrder, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.ServiceOrder{}, ErrInvalidServiceOrderID
	}

	return u.mutate(ctx, id, func(o *entities.ServiceOrder) error {
		if o.Phase.IsTerminal() && in.TouchesProtectedFields() {
			return ErrServiceOrderClosed
		}

		if in.TechnicianID != nil {
			o.TechnicianID = strings.TrimSpace(*in.TechnicianID)
		}
		if in.VehicleID != nil {
			o.VehicleID = strings.TrimSpace(*in.VehicleID)
		}
		if in.StartDate != nil {
			o.StartDate = in.StartDate
		}
		if in.EndDate != nil {
			o.EndDate = in.EndDate
		}
		if in.Description != nil {
			o.Description = *in.Description
		}
		if in.Notes != nil {
			o.Notes = *in.Notes
		}
		if in.TechnicalConclusion != nil {
			o.TechnicalConclusion = *in.TechnicalConclusion
		}
		if in.EstimatedTravelDistanceKm != nil {
			o.EstimatedTravelDistanceKm = in.EstimatedTravelDistanceKm
		}
		if in.EstimatedTollCosts != nil {
			o.EstimatedTollCosts = in.EstimatedTollCosts
		}

		// The derived cost is always overwritten, never edited directly.
		travelCost, err := u.resolveTravelCost(ctx, o.VehicleID, o.EstimatedTravelDistanceKm, o.EstimatedTollCosts)
		if err != nil {
			return err
		}
		o.EstimatedTravelCost = travelCost
		return nil
	})
}

func (u *ServiceOrderUseCase) TransitionPhase(ctx context.Context, id, phase string) (entities.ServiceOrder, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.ServiceOrder{}, ErrInvalidServiceOrderID
	}
	target, err := entities.ParseServiceOrderPhase(phase)
	if err != nil {
		return entities.ServiceOrder{}, ErrInvalidPhase
	}

	return u.mutate(ctx, id, func(o *entities.ServiceOrder) error {
		if target == entities.PhaseConcluida && !o.HasTechnicalConclusion() {
			return ErrMissingTechnicalConclusion
		}
		if err := u.applyPhase(o, target); err != nil {
			return err
		}
		return nil
	})
}

func (u *ServiceOrderUseCase) Complete(ctx context.Context, id, technicalConclusion string) (entities.ServiceOrder, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.ServiceOrder{}, ErrInvalidServiceOrderID
	}
	technicalConclusion = strings.TrimSpace(technicalConclusion)
	if technicalConclusion == "" {
		// Rejected before any read or write is attempted.
		return entities.ServiceOrder{}, ErrMissingTechnicalConclusion
	}

	return u.mutate(ctx, id, func(o *entities.ServiceOrder) error {
		o.TechnicalConclusion = technicalConclusion
		return u.applyPhase(o, entities.PhaseConcluida)
	})
}

func (u *ServiceOrderUseCase) Cancel(ctx context.Context, id string) (entities.ServiceOrder, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.ServiceOrder{}, ErrInvalidServiceOrderID
	}

	return u.mutate(ctx, id, func(o *entities.ServiceOrder) error {
		return u.applyPhase(o, entities.PhaseCancelada)
	})
}

// applyPhase enforces the transition table and the completion side effects.
func (u *ServiceOrderUseCase) applyPhase(o *entities.ServiceOrder, target entities.ServiceOrderPhase) error {
	if !entities.CanTransitionPhase(o.Phase, target) {
		if o.Phase.IsTerminal() {
			return ErrServiceOrderClosed
		}
		return ErrInvalidPhaseTransition
	}
	if target == entities.PhaseConcluida {
		endDate := entities.ResolveCompletionEndDate(o.EndDate, u.now())
		o.EndDate = &endDate
	}
	o.Phase = target
	return nil
}

func (u *ServiceOrderUseCase) Delete(ctx context.Context, id string) error {
	o, err := u.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := u.repo.Delete(ctx, o.ID); err != nil {
		return err
	}

	// Attachment cleanup is best effort: the blob store treats a missing object
	// as deleted, and a transient failure must not resurrect the order.
	for _, url := range o.AttachmentURLs {
		if err := u.blobs.Delete(ctx, url); err != nil {
			log.Printf("[serviceorder][usecase] attachment cleanup failed order_id=%s url=%s err=%v", o.ID, url, err)
		}
	}
	return nil
}

func (u *ServiceOrderUseCase) AddAttachment(ctx context.Context, id, fileName, contentType string, body io.Reader) (entities.ServiceOrder, error) {
	o, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.ServiceOrder{}, err
	}

	key := fmt.Sprintf("service-orders/%s/%s-%s", o.ID, uuid.NewString(), strings.TrimSpace(fileName))
	url, err := u.blobs.Upload(ctx, key, contentType, body)
	if err != nil {
		return entities.ServiceOrder{}, err
	}

	return u.mutate(ctx, o.ID, func(o *entities.ServiceOrder) error {
		o.AttachmentURLs = append(o.AttachmentURLs, url)
		return nil
	})
}

func (u *ServiceOrderUseCase) RemoveAttachment(ctx context.Context, id, url string) (entities.ServiceOrder, error) {
	updated, err := u.mutate(ctx, strings.TrimSpace(id), func(o *entities.ServiceOrder) error {
		kept := o.AttachmentURLs[:0:0]
		found := false
		for _, existing := range o.AttachmentURLs {
			if existing == url {
				found = true
				continue
			}
			kept = append(kept, existing)
		}
		if !found {
			return ErrAttachmentNotFound
		}
		o.AttachmentURLs = kept
		return nil
	})
	if err != nil {
		return entities.ServiceOrder{}, err
	}

	if err := u.blobs.Delete(ctx, url); err != nil {
		log.Printf("[serviceorder][usecase] attachment blob delete failed order_id=%s url=%s err=%v", id, url, err)
	}
	return updated, nil
}

// mutate runs one read-then-conditional-write cycle with retries. The apply
// callback sees the freshest snapshot on every attempt; a version conflict on
// the write re-reads and re-applies.
func (u *ServiceOrderUseCase) mutate(ctx context.Context, id string, apply func(*entities.ServiceOrder) error) (entities.ServiceOrder, error) {
	if id == "" {
		return entities.ServiceOrder{}, ErrInvalidServiceOrderID
	}

	for attempt := 0; attempt < casMaxAttempts; attempt++ {
		o, err := u.repo.GetByID(ctx, id)
		if err != nil {
			return entities.ServiceOrder{}, err
		}
		if o.ID == "" {
			return entities.ServiceOrder{}, ErrServiceOrderNotFound
		}

		if err := apply(&o); err != nil {
			return entities.ServiceOrder{}, err
		}
		o.UpdatedAt = u.now()

		saved, err := u.repo.Save(ctx, o)
		if errors.Is(err, interfaces.ErrVersionConflict) {
			continue
		}
		if err != nil {
			return entities.ServiceOrder{}, err
		}
		return saved, nil
	}

	log.Printf("[serviceorder][usecase] write conflict retries exhausted order_id=%s", id)
	return entities.ServiceOrder{}, ErrWriteConflict
}

func (u *ServiceOrderUseCase) resolveTravelCost(ctx context.Context, vehicleID string, distanceKm, tollCosts *float64) (*float64, error) {
	var costPerKm *float64
	if vehicleID != "" {
		v, err := u.vehicles.GetByID(ctx, vehicleID)
		if err != nil {
			return nil, err
		}
		if v.ID == "" {
			return nil, ErrVehicleNotFound
		}
		costPerKm = v.CostPerKm
	}
	return entities.EstimateTravelCost(distanceKm, costPerKm, tollCosts), nil
}
