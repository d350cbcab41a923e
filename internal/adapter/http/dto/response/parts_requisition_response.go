package response

import (
	"time"

	"manutencao_xpto/internal/domain/entities"
)

type RequisitionItemResponse struct {
	ID          string `json:"id"`
	PartName    string `json:"part_name"`
	Quantity    int    `json:"quantity"`
	Notes       string `json:"notes,omitempty"`
	TriageNotes string `json:"triage_notes,omitempty"`
	ImageURL    string `json:"image_url,omitempty"`
	Status      string `json:"status"`
}

type PartsRequisitionResponse struct {
	ID             string                    `json:"id"`
	Number         int                       `json:"number"`
	ServiceOrderID string                    `json:"service_order_id"`
	TechnicianID   string                    `json:"technician_id,omitempty"`
	Status         string                    `json:"status"`
	Items          []RequisitionItemResponse `json:"items"`
	GeneralNotes   string                    `json:"general_notes,omitempty"`
	CreatedAt      time.Time                 `json:"created_at"`
	UpdatedAt      time.Time                 `json:"updated_at"`
}

func FromPartsRequisition(r entities.PartsRequisition) PartsRequisitionResponse {
	items := make([]RequisitionItemResponse, 0, len(r.Items))
	for _, it := range r.Items {
		items = append(items, RequisitionItemResponse{
			ID:          it.ID,
			PartName:    it.PartName,
			Quantity:    it.Quantity,
			Notes:       it.Notes,
			TriageNotes: it.TriageNotes,
			ImageURL:    it.ImageURL,
			Status:      string(it.Status),
		})
	}
	return PartsRequisitionResponse{
		ID:             r.ID,
		Number:         r.Number,
		ServiceOrderID: r.ServiceOrderID,
		TechnicianID:   r.TechnicianID,
		Status:         string(r.Status),
		Items:          items,
		GeneralNotes:   r.GeneralNotes,
		CreatedAt:      r.CreatedAt,
		UpdatedAt:      r.UpdatedAt,
	}
}

func FromPartsRequisitions(reqs []entities.PartsRequisition) []PartsRequisitionResponse {
	out := make([]PartsRequisitionResponse, 0, len(reqs))
	for _, r := range reqs {
		out = append(out, FromPartsRequisition(r))
	}
	return out
}
