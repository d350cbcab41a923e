package entities

import "time"

// Vehicle is a fleet vehicle used for field service. CostPerKm feeds the
// travel-cost estimation of service orders; nil means the vehicle has no
// configured running cost and distance-based estimates are unavailable.
type Vehicle struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	LicensePlate string   `json:"license_plate,omitempty"`
	CostPerKm    *float64 `json:"cost_per_km,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
