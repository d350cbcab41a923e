package response

import (
	"time"

	"manutencao_xpto/internal/domain/entities"
)

type ServiceOrderResponse struct {
	ID     string `json:"id"`
	Number int    `json:"number"`
	Phase  string `json:"phase"`

	CustomerID   string `json:"customer_id"`
	EquipmentID  string `json:"equipment_id"`
	TechnicianID string `json:"technician_id,omitempty"`
	VehicleID    string `json:"vehicle_id,omitempty"`

	StartDate *time.Time `json:"start_date,omitempty"`
	EndDate   *time.Time `json:"end_date,omitempty"`

	Description         string `json:"description,omitempty"`
	Notes               string `json:"notes,omitempty"`
	TechnicalConclusion string `json:"technical_conclusion,omitempty"`

	EstimatedTravelDistanceKm *float64 `json:"estimated_travel_distance_km,omitempty"`
	EstimatedTollCosts        *float64 `json:"estimated_toll_costs,omitempty"`
	EstimatedTravelCost       *float64 `json:"estimated_travel_cost,omitempty"`

	AttachmentURLs []string `json:"attachment_urls,omitempty"`

	DeadlineStatus  string `json:"deadline_status"`
	DeadlineMessage string `json:"deadline_message,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// FromServiceOrder maps the entity to its API shape, evaluating the deadline
// badge against now so clients never compute date math themselves.
func FromServiceOrder(o entities.ServiceOrder, now time.Time) ServiceOrderResponse {
	deadline := entities.EvaluateDeadline(o.EndDate, o.Phase, now)
	return ServiceOrderResponse{
		ID:     o.ID,
		Number: o.Number,
		Phase:  string(o.Phase),

		CustomerID:   o.CustomerID,
		EquipmentID:  o.EquipmentID,
		TechnicianID: o.TechnicianID,
		VehicleID:    o.VehicleID,

		StartDate: o.StartDate,
		EndDate:   o.EndDate,

		Description:         o.Description,
		Notes:               o.Notes,
		TechnicalConclusion: o.TechnicalConclusion,

		EstimatedTravelDistanceKm: o.EstimatedTravelDistanceKm,
		EstimatedTollCosts:        o.EstimatedTollCosts,
		EstimatedTravelCost:       o.EstimatedTravelCost,

		AttachmentURLs: o.AttachmentURLs,

		DeadlineStatus:  string(deadline.Status),
		DeadlineMessage: deadline.Message,

		CreatedAt: o.CreatedAt,
		UpdatedAt: o.UpdatedAt,
	}
}

func FromServiceOrders(orders []entities.ServiceOrder, now time.Time) []ServiceOrderResponse {
	out := make([]ServiceOrderResponse, 0, len(orders))
	for _, o := range orders {
		out = append(out, FromServiceOrder(o, now))
	}
	return out
}
