package services

import (
	"math"
	"time"

	"ridehail/internal/core/domain/model/kernel"
)

// Pricing constants. All fares are produced in FareCurrency.
const (
	// BaseFare is the flat amount charged for any ride.
	BaseFare = 2.50
	// PerKmRate is the charge per kilometer of great-circle distance.
	PerKmRate = 1.50
	// PerMinuteRate is the charge per minute of ride duration.
	PerMinuteRate = 0.25
	// SurgeMultiplier scales the final fare during surge pricing.
	SurgeMultiplier = 1.5
	// FareCurrency is the fixed currency of all calculated fares.
	FareCurrency = "GEL"
)

// stepEpsilon absorbs float noise so totals already sitting exactly on a
// rounding step are not bumped to the next one.
const stepEpsilon = 1e-9

// PricingService is a stateless domain service that calculates ride fares.
//
// Two calculations exist and they are intentionally asymmetric:
//   - The estimate synthesizes ride duration from distance (two minutes per
//     kilometer) because the ride has not happened yet, and rounds up to the
//     nearest 0.50 for a simple quotable number.
//   - The final fare uses the actual elapsed duration, optionally applies the
//     surge multiplier, and rounds up to the nearest 0.25.
//
// Example usage:
//
//	pricing := NewPricingService()
//	estimate, err := pricing.CalculateEstimatedFare(pickup, destination)
//	if err != nil {
//	    // Handle invalid locations
//	}
//	fmt.Println(estimate) // e.g. "9.50 GEL"
type PricingService struct{}

// NewPricingService creates a new PricingService instance.
func NewPricingService() PricingService {
	return PricingService{}
}

// CalculateEstimatedFare quotes a fare for a ride between two locations.
//
// Formula: BaseFare + distanceKm*PerKmRate + estimatedMinutes*PerMinuteRate,
// where estimatedMinutes = distanceKm*2, rounded up to the nearest 0.50.
//
// Returns an error only if either location was not properly constructed.
func (p PricingService) CalculateEstimatedFare(pickup, destination kernel.Location) (kernel.Money, error) {
	distanceKm, err := pickup.DistanceTo(destination)
	if err != nil {
		return kernel.Money{}, err
	}

	estimatedMinutes := distanceKm * 2
	total := BaseFare + distanceKm*PerKmRate + estimatedMinutes*PerMinuteRate

	return kernel.NewMoney(roundUpToStep(total, 0.50), FareCurrency)
}

// CalculateFinalFare computes the fare for a finished ride from the actual
// elapsed duration. When isSurge is true the total is scaled by
// SurgeMultiplier before rounding up to the nearest 0.25.
//
// Returns an error only if either location was not properly constructed.
func (p PricingService) CalculateFinalFare(
	pickup, destination kernel.Location,
	duration time.Duration,
	isSurge bool,
) (kernel.Money, error) {
	distanceKm, err := pickup.DistanceTo(destination)
	if err != nil {
		return kernel.Money{}, err
	}

	total := BaseFare + distanceKm*PerKmRate + duration.Minutes()*PerMinuteRate
	if isSurge {
		total *= SurgeMultiplier
	}

	return kernel.NewMoney(roundUpToStep(total, 0.25), FareCurrency)
}

// roundUpToStep rounds amount up to the nearest multiple of step.
func roundUpToStep(amount, step float64) float64 {
	return math.Ceil(amount/step-stepEpsilon) * step
}
