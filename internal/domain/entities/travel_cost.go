package entities

import "github.com/shopspring/decimal"

// EstimateTravelCost derives the estimated travel cost of a service order.
//
// Rules:
//   - distance and a vehicle cost per km known: distance*costPerKm + tolls (tolls default 0)
//   - no usable distance/cost pair but tolls known: tolls alone
//   - nothing known: nil (unknown, rendered as empty)
//
// The committed value is rounded to 2 decimal places. Callers must treat the
// result as the only source for ServiceOrder.EstimatedTravelCost; the field is
// never accepted from input.
func EstimateTravelCost(distanceKm, costPerKm, tollCosts *float64) *float64 {
	switch {
	case distanceKm != nil && costPerKm != nil:
		tolls := decimal.Zero
		if tollCosts != nil {
			tolls = decimal.NewFromFloat(*tollCosts)
		}
		cost, _ := decimal.NewFromFloat(*distanceKm).
			Mul(decimal.NewFromFloat(*costPerKm)).
			Add(tolls).
			Round(2).
			Float64()
		return &cost
	case tollCosts != nil:
		cost := *tollCosts
		return &cost
	default:
		return nil
	}
}

// RoundTripDistanceKm doubles an externally-estimated one-way distance and
// rounds it to 1 decimal place, the precision the distance is stored with.
func RoundTripDistanceKm(oneWayKm float64) float64 {
	v, _ := decimal.NewFromFloat(oneWayKm).
		Mul(decimal.NewFromInt(2)).
		Round(1).
		Float64()
	return v
}
