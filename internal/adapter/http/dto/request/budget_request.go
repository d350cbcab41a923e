package request

import (
	"strings"

	"manutencao_xpto/internal/usecase"
)

type CreateBudgetRequest struct {
	CustomerID  string  `json:"customer_id" binding:"required"`
	EquipmentID string  `json:"equipment_id" binding:"required"`
	Description string  `json:"description"`
	TotalAmount float64 `json:"total_amount" binding:"required"`
}

func (r CreateBudgetRequest) ToInput() usecase.CreateBudgetInput {
	return usecase.CreateBudgetInput{
		CustomerID:  strings.TrimSpace(r.CustomerID),
		EquipmentID: strings.TrimSpace(r.EquipmentID),
		Description: r.Description,
		TotalAmount: r.TotalAmount,
	}
}
