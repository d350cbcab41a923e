package usecase

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"manutencao_xpto/internal/domain/entities"
	"manutencao_xpto/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrBudgetNotFound        = errors.New("budget not found")
	ErrInvalidBudgetID       = errors.New("invalid budget id")
	ErrInvalidBudgetAmount   = errors.New("invalid budget amount")
	ErrBudgetNotPending      = errors.New("budget is not pending")
	ErrBudgetNotEligible     = errors.New("budget is not eligible for service order promotion")
	ErrBudgetAlreadyPromoted = errors.New("budget already originated a service order")
)

type CreateBudgetInput struct {
	CustomerID  string
	EquipmentID string
	Description string
	TotalAmount float64
}

// IBudgetUseCase exposes the budget approval flow and the promotion trigger.
//
// Promotion is intentionally thin: eligibility is a pure filter
// (approved && !promoted) and the heavy lifting is delegated to service order
// creation, seeded with the budget's customer/equipment references.

type IBudgetUseCase interface {
	Create(ctx context.Context, in CreateBudgetInput) (entities.Budget, error)
	GetByID(ctx context.Context, id string) (entities.Budget, error)
	List(ctx context.Context) ([]entities.Budget, error)
	ListEligible(ctx context.Context) ([]entities.Budget, error)
	Approve(ctx context.Context, id string) (entities.Budget, error)
	Reject(ctx context.Context, id string) (entities.Budget, error)
	PromoteToServiceOrder(ctx context.Context, id string) (entities.Budget, error)
}

type BudgetUseCase struct {
	repo   interfaces.IBudgetRepository
	orders IServiceOrderUseCase
	now    func() time.Time
}

var _ IBudgetUseCase = (*BudgetUseCase)(nil)

func NewBudgetUseCase(repo interfaces.IBudgetRepository, orders IServiceOrderUseCase) *BudgetUseCase {
	return &BudgetUseCase{repo: repo, orders: orders, now: func() time.Time { return time.Now().UTC() }}
}

func (u *BudgetUseCase) Create(ctx context.Context, in CreateBudgetInput) (entities.Budget, error) {
	in.CustomerID = strings.TrimSpace(in.CustomerID)
	in.EquipmentID = strings.TrimSpace(in.EquipmentID)
	if in.CustomerID == "" {
		return entities.Budget{}, ErrInvalidCustomerID
	}
	if in.EquipmentID == "" {
		return entities.Budget{}, ErrInvalidEquipmentID
	}
	if in.TotalAmount <= 0 {
		return entities.Budget{}, ErrInvalidBudgetAmount
	}

	number, err := u.repo.NextNumber(ctx)
	if err != nil {
		return entities.Budget{}, err
	}

	now := u.now()
	b := entities.Budget{
		ID:          uuid.NewString(),
		Number:      number,
		CustomerID:  in.CustomerID,
		EquipmentID: in.EquipmentID,
		Description: in.Description,
		TotalAmount: in.TotalAmount,
		Status:      entities.BudgetStatusPendente,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	return u.repo.Create(ctx, b)
}

func (u *BudgetUseCase) GetByID(ctx context.Context, id string) (entities.Budget, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Budget{}, ErrInvalidBudgetID
	}

	b, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Budget{}, err
	}
	if b.ID == "" {
		return entities.Budget{}, ErrBudgetNotFound
	}
	return b, nil
}

func (u *BudgetUseCase) List(ctx context.Context) ([]entities.Budget, error) {
	return u.repo.List(ctx)
}

func (u *BudgetUseCase) ListEligible(ctx context.Context) ([]entities.Budget, error) {
	all, err := u.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	eligible := make([]entities.Budget, 0, len(all))
	for _, b := range all {
		if b.EligibleForServiceOrder() {
			eligible = append(eligible, b)
		}
	}
	return eligible, nil
}

func (u *BudgetUseCase) Approve(ctx context.Context, id string) (entities.Budget, error) {
	return u.updateStatus(ctx, id, entities.BudgetStatusAprovado)
}

func (u *BudgetUseCase) Reject(ctx context.Context, id string) (entities.Budget, error) {
	return u.updateStatus(ctx, id, entities.BudgetStatusRejeitado)
}

func (u *BudgetUseCase) updateStatus(ctx context.Context, id string, status entities.BudgetStatus) (entities.Budget, error) {
	b, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.Budget{}, err
	}
	if b.Status != entities.BudgetStatusPendente {
		return entities.Budget{}, ErrBudgetNotPending
	}

	b.Status = status
	b.UpdatedAt = u.now()
	return u.repo.Save(ctx, b)
}

func (u *BudgetUseCase) PromoteToServiceOrder(ctx context.Context, id string) (entities.Budget, error) {
	b, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.Budget{}, err
	}
	if b.ServiceOrderCreated {
		return entities.Budget{}, ErrBudgetAlreadyPromoted
	}
	if !b.EligibleForServiceOrder() {
		return entities.Budget{}, ErrBudgetNotEligible
	}

	order, err := u.orders.Create(ctx, CreateServiceOrderInput{
		CustomerID:  b.CustomerID,
		EquipmentID: b.EquipmentID,
		Description: b.Description,
	})
	if err != nil {
		return entities.Budget{}, err
	}
	log.Printf("[budget][usecase] promoted budget_id=%s service_order_id=%s number=%d", b.ID, order.ID, order.Number)

	b.ServiceOrderCreated = true
	b.ServiceOrderID = order.ID
	b.UpdatedAt = u.now()
	return u.repo.Save(ctx, b)
}
