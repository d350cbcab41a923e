package response

import (
	"time"

	"manutencao_xpto/internal/domain/entities"
)

type VehicleResponse struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	LicensePlate string   `json:"license_plate,omitempty"`
	CostPerKm    *float64 `json:"cost_per_km,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func FromVehicle(v entities.Vehicle) VehicleResponse {
	return VehicleResponse{
		ID:           v.ID,
		Name:         v.Name,
		LicensePlate: v.LicensePlate,
		CostPerKm:    v.CostPerKm,
		CreatedAt:    v.CreatedAt,
		UpdatedAt:    v.UpdatedAt,
	}
}

func FromVehicles(vehicles []entities.Vehicle) []VehicleResponse {
	out := make([]VehicleResponse, 0, len(vehicles))
	for _, v := range vehicles {
		out = append(out, FromVehicle(v))
	}
	return out
}
