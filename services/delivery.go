package services

import (
	"errors"
	"fmt"
	"math"
)

var (
	ErrOutOfRadius       = errors.New("delivery location is outside the delivery radius")
	ErrBelowMinimumOrder = errors.New("order is below the minimum delivery order")
)

const earthRadiusKm = 6371.0

// Haversine returns the great-circle distance in km between two points.
func Haversine(lat1, lon1, lat2, lon2 float64) float64 {
	dLat := (lat2 - lat1) * math.Pi / 180
	dLon := (lon2 - lon1) * math.Pi / 180

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1*math.Pi/180)*math.Cos(lat2*math.Pi/180)*
			math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
	return earthRadiusKm * c
}

// CheckDeliveryEligibility gates a delivery order on the restaurant's
// configured radius and minimum order value. Below-minimum orders are
// rejected, never accepted with a warning.
func CheckDeliveryEligibility(distanceKm, subtotal, maxRadiusKm, minOrder float64) error {
	if maxRadiusKm > 0 && distanceKm > maxRadiusKm {
		return fmt.Errorf("%w: delivery location is outside our %gkm delivery radius", ErrOutOfRadius, maxRadiusKm)
	}
	if minOrder > 0 && subtotal < minOrder {
		return fmt.Errorf("%w: minimum delivery order is K%.2f", ErrBelowMinimumOrder, minOrder)
	}
	return nil
}

// DeliveryFee charges per started km.
func DeliveryFee(distanceKm, feePerKm float64) float64 {
	if distanceKm <= 0 || feePerKm <= 0 {
		return 0
	}
	return math.Ceil(distanceKm * feePerKm)
}
