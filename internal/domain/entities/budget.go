package entities

import "time"

// BudgetStatus represents the approval state of a maintenance budget (orçamento).

type BudgetStatus string

const (
	BudgetStatusPendente  BudgetStatus = "Pendente"
	BudgetStatusAprovado  BudgetStatus = "Aprovado"
	BudgetStatusRejeitado BudgetStatus = "Rejeitado"
)

// Budget is a pre-approval cost estimate for a customer's equipment. An approved
// budget that has not yet originated a service order is eligible for promotion.
type Budget struct {
	ID          string       `json:"id"`
	Number      int          `json:"number"`
	CustomerID  string       `json:"customer_id"`
	EquipmentID string       `json:"equipment_id"`
	Description string       `json:"description,omitempty"`
	TotalAmount float64      `json:"total_amount"`
	Status      BudgetStatus `json:"status"`

	ServiceOrderCreated bool   `json:"service_order_created"`
	ServiceOrderID      string `json:"service_order_id,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// EligibleForServiceOrder is the promotion filter: approved and not yet promoted.
func (b Budget) EligibleForServiceOrder() bool {
	return b.Status == BudgetStatusAprovado && !b.ServiceOrderCreated
}
