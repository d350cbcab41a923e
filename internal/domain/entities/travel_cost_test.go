package entities

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fptr(v float64) *float64 { return &v }

func TestEstimateTravelCost(t *testing.T) {
	tests := []struct {
		name       string
		distanceKm *float64
		costPerKm  *float64
		tollCosts  *float64
		want       *float64
	}{
		{"distance, cost and tolls", fptr(100), fptr(0.6), fptr(20), fptr(80)},
		{"distance and cost, no tolls", fptr(100), fptr(0.6), nil, fptr(60)},
		{"tolls only", fptr(100), nil, fptr(20), fptr(20)},
		{"nothing known", fptr(100), nil, nil, nil},
		{"no distance, tolls only", nil, fptr(0.6), fptr(35.5), fptr(35.5)},
		{"all absent", nil, nil, nil, nil},
		{"rounds to 2 decimals", fptr(33.3), fptr(0.333), nil, fptr(11.09)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := EstimateTravelCost(tt.distanceKm, tt.costPerKm, tt.tollCosts)
			if tt.want == nil {
				assert.Nil(t, got)
				return
			}
			require.NotNil(t, got)
			assert.InDelta(t, *tt.want, *got, 1e-9)
		})
	}
}

func TestEstimateTravelCost_DoesNotAliasInputs(t *testing.T) {
	tolls := 20.0
	got := EstimateTravelCost(nil, nil, &tolls)
	require.NotNil(t, got)
	tolls = 99.0
	assert.Equal(t, 20.0, *got)
}

func TestRoundTripDistanceKm(t *testing.T) {
	assert.Equal(t, 200.0, RoundTripDistanceKm(100))
	assert.Equal(t, 24.7, RoundTripDistanceKm(12.34))
	assert.Equal(t, 0.0, RoundTripDistanceKm(0))
}
