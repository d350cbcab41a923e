package request

import (
	"strings"
	"time"

	"manutencao_xpto/internal/domain/entities"
	"manutencao_xpto/internal/usecase"
)

// CreateServiceOrderRequest is the payload accepted by POST /service-orders.
//
// Travel distance can arrive either as the full estimated distance or as the
// one-way distance measured by the routing screen; the one-way form is doubled
// before estimation.
type CreateServiceOrderRequest struct {
	CustomerID   string `json:"customer_id" binding:"required"`
	EquipmentID  string `json:"equipment_id" binding:"required"`
	TechnicianID string `json:"technician_id"`
	VehicleID    string `json:"vehicle_id"`

	StartDate *time.Time `json:"start_date"`
	EndDate   *time.Time `json:"end_date"`

	Description string `json:"description"`
	Notes       string `json:"notes"`

	EstimatedTravelDistanceKm *float64 `json:"estimated_travel_distance_km"`
	OneWayDistanceKm          *float64 `json:"one_way_distance_km"`
	EstimatedTollCosts        *float64 `json:"estimated_toll_costs"`
}

func (r CreateServiceOrderRequest) ToInput() usecase.CreateServiceOrderInput {
	return usecase.CreateServiceOrderInput{
		CustomerID:   strings.TrimSpace(r.CustomerID),
		EquipmentID:  strings.TrimSpace(r.EquipmentID),
		TechnicianID: strings.TrimSpace(r.TechnicianID),
		VehicleID:    strings.TrimSpace(r.VehicleID),

		StartDate: r.StartDate,
		EndDate:   r.EndDate,

		Description: r.Description,
		Notes:       r.Notes,

		EstimatedTravelDistanceKm: resolveDistanceKm(r.EstimatedTravelDistanceKm, r.OneWayDistanceKm),
		EstimatedTollCosts:        r.EstimatedTollCosts,
	}
}

// UpdateServiceOrderRequest carries partial edits; absent fields are left as is.
type UpdateServiceOrderRequest struct {
	TechnicianID *string `json:"technician_id"`
	VehicleID    *string `json:"vehicle_id"`

	StartDate *time.Time `json:"start_date"`
	EndDate   *time.Time `json:"end_date"`

	Description         *string `json:"description"`
	Notes               *string `json:"notes"`
	TechnicalConclusion *string `json:"technical_conclusion"`

	EstimatedTravelDistanceKm *float64 `json:"estimated_travel_distance_km"`
	OneWayDistanceKm          *float64 `json:"one_way_distance_km"`
	EstimatedTollCosts        *float64 `json:"estimated_toll_costs"`
}

func (r UpdateServiceOrderRequest) ToInput() usecase.UpdateServiceOrderInput {
	return usecase.UpdateServiceOrderInput{
		TechnicianID: r.TechnicianID,
		VehicleID:    r.VehicleID,

		StartDate: r.StartDate,
		EndDate:   r.EndDate,

		Description:         r.Description,
		Notes:               r.Notes,
		TechnicalConclusion: r.TechnicalConclusion,

		EstimatedTravelDistanceKm: resolveDistanceKm(r.EstimatedTravelDistanceKm, r.OneWayDistanceKm),
		EstimatedTollCosts:        r.EstimatedTollCosts,
	}
}

type TransitionPhaseRequest struct {
	Phase string `json:"phase" binding:"required"`
}

type CompleteServiceOrderRequest struct {
	TechnicalConclusion string `json:"technical_conclusion" binding:"required"`
}

func resolveDistanceKm(full, oneWay *float64) *float64 {
	if full != nil {
		return full
	}
	if oneWay != nil {
		d := entities.RoundTripDistanceKm(*oneWay)
		return &d
	}
	return nil
}
