package response

import (
	"time"

	"manutencao_xpto/internal/domain/entities"
)

type BudgetResponse struct {
	ID          string  `json:"id"`
	Number      int     `json:"number"`
	CustomerID  string  `json:"customer_id"`
	EquipmentID string  `json:"equipment_id"`
	Description string  `json:"description,omitempty"`
	TotalAmount float64 `json:"total_amount"`
	Status      string  `json:"status"`

	ServiceOrderCreated bool   `json:"service_order_created"`
	ServiceOrderID      string `json:"service_order_id,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func FromBudget(b entities.Budget) BudgetResponse {
	return BudgetResponse{
		ID:          b.ID,
		Number:      b.Number,
		CustomerID:  b.CustomerID,
		EquipmentID: b.EquipmentID,
		Description: b.Description,
		TotalAmount: b.TotalAmount,
		Status:      string(b.Status),

		ServiceOrderCreated: b.ServiceOrderCreated,
		ServiceOrderID:      b.ServiceOrderID,

		CreatedAt: b.CreatedAt,
		UpdatedAt: b.UpdatedAt,
	}
}

func FromBudgets(budgets []entities.Budget) []BudgetResponse {
	out := make([]BudgetResponse, 0, len(budgets))
	for _, b := range budgets {
		out = append(out, FromBudget(b))
	}
	return out
}
