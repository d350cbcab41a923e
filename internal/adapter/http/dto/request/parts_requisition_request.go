package request

import (
	"strings"

	"manutencao_xpto/internal/usecase"
)

type RequisitionItemRequest struct {
	PartName string `json:"part_name" binding:"required"`
	Quantity int    `json:"quantity" binding:"required"`
	Notes    string `json:"notes"`
}

type CreatePartsRequisitionRequest struct {
	ServiceOrderID string                   `json:"service_order_id" binding:"required"`
	TechnicianID   string                   `json:"technician_id"`
	GeneralNotes   string                   `json:"general_notes"`
	Items          []RequisitionItemRequest `json:"items" binding:"required"`
}

func (r CreatePartsRequisitionRequest) ToInput() usecase.CreatePartsRequisitionInput {
	items := make([]usecase.CreateRequisitionItemInput, 0, len(r.Items))
	for _, it := range r.Items {
		items = append(items, usecase.CreateRequisitionItemInput{
			PartName: strings.TrimSpace(it.PartName),
			Quantity: it.Quantity,
			Notes:    it.Notes,
		})
	}
	return usecase.CreatePartsRequisitionInput{
		ServiceOrderID: strings.TrimSpace(r.ServiceOrderID),
		TechnicianID:   strings.TrimSpace(r.TechnicianID),
		GeneralNotes:   r.GeneralNotes,
		Items:          items,
	}
}

// TriageItemRequest carries a single item triage decision. TriageNotes is a
// pointer so callers can distinguish "keep existing notes" (absent) from
// "clear/replace notes" (present).
type TriageItemRequest struct {
	Status      string  `json:"status" binding:"required"`
	TriageNotes *string `json:"triage_notes"`
}
