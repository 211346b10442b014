package kernel

import (
	"errors"
	"fmt"
	"math"

	"ridehail/internal/pkg/errs"
	"ridehail/internal/pkg/guard"
)

const (
	// MinRatingValue is the minimum valid rating score.
	MinRatingValue = 0.0
	// MaxRatingValue is the maximum valid rating score.
	MaxRatingValue = 5.0
)

// ErrRatingIsNotConstructed is returned when attempting to use an improperly
// initialized Rating. Ratings must be created via NewRating.
var ErrRatingIsNotConstructed = errs.NewValueIsRequiredError(
	"rating must be created via NewRating constructor")

// Rating represents an aggregated review score in [0.0, 5.0] together with the
// number of reviews it was computed from. The value is rounded to one decimal
// place on construction.
//
// Rating is an immutable value object: UpdateWith returns a new Rating folding
// in an additional review using a running average, so the full review history
// never needs to be stored. Because each intermediate value is rounded to one
// decimal, the incremental average drifts slightly from the exact arithmetic
// mean over many updates; this is a known and accepted limitation.
//
// Example:
//
//	r, _ := kernel.NewRating(4.0, 2)
//	r, _ = r.UpdateWith(5.0)
//	fmt.Println(r) // Output: 4.3 (3 reviews)
type Rating struct { //nolint:recvcheck //using for validation
	value        float64
	totalReviews int
	guard        guard.ConstructorGuard
}

// NewRating creates a new Rating. The value must be within [0.0, 5.0] and the
// review count must not be negative. The value is rounded to one decimal place.
func NewRating(value float64, totalReviews int) (Rating, error) {
	r := Rating{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(r.setValue(value), r.setTotalReviews(totalReviews)); err != nil {
		return Rating{}, err
	}

	return r, nil
}

// Validate checks if the Rating was properly constructed via NewRating.
func (r Rating) Validate() error {
	return r.guard.Validate(ErrRatingIsNotConstructed)
}

// Value returns the aggregated score rounded to one decimal place.
func (r Rating) Value() float64 {
	return r.value
}

// TotalReviews returns the number of reviews folded into the score.
func (r Rating) TotalReviews() int {
	return r.totalReviews
}

// String returns "value (n reviews)". Implements fmt.Stringer.
func (r Rating) String() string {
	return fmt.Sprintf("%.1f (%d reviews)", r.value, r.totalReviews)
}

// IsEqual compares two ratings by value and review count.
func (r Rating) IsEqual(other Rating) (bool, error) {
	if err := errors.Join(r.Validate(), other.Validate()); err != nil {
		return false, err
	}

	return r.value == other.value && r.totalReviews == other.totalReviews, nil
}

// UpdateWith returns a new Rating with newValue folded into the running
// average: (value*totalReviews + newValue) / (totalReviews + 1), with the
// review count incremented. Fails if newValue is outside [0.0, 5.0].
func (r Rating) UpdateWith(newValue float64) (Rating, error) {
	if err := r.Validate(); err != nil {
		return Rating{}, err
	}

	if newValue < MinRatingValue || newValue > MaxRatingValue {
		return Rating{}, errs.NewValueIsOutOfRangeError("rating", newValue, MinRatingValue, MaxRatingValue)
	}

	newAverage := (r.value*float64(r.totalReviews) + newValue) / float64(r.totalReviews+1)
	return NewRating(newAverage, r.totalReviews+1)
}

func (r *Rating) setValue(value float64) error {
	if value < MinRatingValue || value > MaxRatingValue {
		return errs.NewValueIsOutOfRangeError("rating", value, MinRatingValue, MaxRatingValue)
	}

	r.value = math.Round(value*10) / 10
	return nil
}

func (r *Rating) setTotalReviews(totalReviews int) error {
	if totalReviews < 0 {
		return errs.NewValueIsInvalidErrorWithCause("totalReviews",
			fmt.Errorf("%d is negative", totalReviews))
	}

	r.totalReviews = totalReviews
	return nil
}
