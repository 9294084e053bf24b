package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHaversine(t *testing.T) {
	// Lusaka CBD to Lusaka airport, roughly 22km
	d := Haversine(-15.4167, 28.2833, -15.3308, 28.4526)
	assert.InDelta(t, 20.5, d, 2.0)

	// same point
	assert.InDelta(t, 0, Haversine(-15.4, 28.28, -15.4, 28.28), 0.0001)
}

func TestCheckDeliveryEligibility(t *testing.T) {
	tests := []struct {
		name       string
		distanceKm float64
		subtotal   float64
		maxRadius  float64
		minOrder   float64
		wantErr    error
	}{
		{name: "within_radius_above_minimum", distanceKm: 12, subtotal: 200, maxRadius: 15, minOrder: 150},
		{name: "outside_radius_rejected", distanceKm: 20, subtotal: 200, maxRadius: 15, minOrder: 150, wantErr: ErrOutOfRadius},
		{name: "below_minimum_rejected", distanceKm: 5, subtotal: 100, maxRadius: 15, minOrder: 150, wantErr: ErrBelowMinimumOrder},
		{name: "exactly_at_radius_accepted", distanceKm: 15, subtotal: 200, maxRadius: 15, minOrder: 150},
		{name: "exactly_at_minimum_accepted", distanceKm: 5, subtotal: 150, maxRadius: 15, minOrder: 150},
		{name: "unconfigured_limits_accept_all", distanceKm: 100, subtotal: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := CheckDeliveryEligibility(tt.distanceKm, tt.subtotal, tt.maxRadius, tt.minOrder)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestDeliveryFee(t *testing.T) {
	// 12km at K10/km
	assert.Equal(t, 120.0, DeliveryFee(12, 10))
	// started km is charged in full
	assert.Equal(t, 124.0, DeliveryFee(12.34, 10))
	assert.Equal(t, 0.0, DeliveryFee(0, 10))
	assert.Equal(t, 0.0, DeliveryFee(5, 0))
}
