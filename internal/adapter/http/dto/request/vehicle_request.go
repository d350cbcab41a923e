package request

import (
	"strings"

	"manutencao_xpto/internal/usecase"
)

type CreateVehicleRequest struct {
	Name         string   `json:"name" binding:"required"`
	LicensePlate string   `json:"license_plate"`
	CostPerKm    *float64 `json:"cost_per_km"`
}

func (r CreateVehicleRequest) ToInput() usecase.CreateVehicleInput {
	return usecase.CreateVehicleInput{
		Name:         strings.TrimSpace(r.Name),
		LicensePlate: strings.TrimSpace(r.LicensePlate),
		CostPerKm:    r.CostPerKm,
	}
}

type UpdateVehicleRequest struct {
	Name         *string  `json:"name"`
	LicensePlate *string  `json:"license_plate"`
	CostPerKm    *float64 `json:"cost_per_km"`
}

func (r UpdateVehicleRequest) ToInput() usecase.UpdateVehicleInput {
	return usecase.UpdateVehicleInput{
		Name:         r.Name,
		LicensePlate: r.LicensePlate,
		CostPerKm:    r.CostPerKm,
	}
}
