package kernel

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"ridehail/internal/pkg/errs"
	"ridehail/internal/pkg/guard"
)

// ErrMoneyIsNotConstructed is returned when attempting to use an improperly
// initialized Money. Money must be created via NewMoney, MoneyFromMinorUnits, or Zero.
var ErrMoneyIsNotConstructed = errs.NewValueIsRequiredError(
	"money must be created via NewMoney, MoneyFromMinorUnits, or Zero constructors")

// ErrCurrencyMismatch is returned by arithmetic operations on amounts with
// different currencies.
var ErrCurrencyMismatch = errors.New("currency mismatch")

// currencyCodeLength is the length of an ISO 4217 currency code.
const currencyCodeLength = 3

// Money represents a non-negative monetary amount in a single currency.
// The amount is stored in minor units (e.g., tetri, cents) so arithmetic is
// exact; construction from a decimal amount rounds half-to-even to two
// decimal places, matching the rounding of the pricing rules.
//
// Money is an immutable value object; the zero value is invalid and fails
// validation; use the constructors to create instances.
//
// Example:
//
//	fare, err := kernel.NewMoney(12.5, "GEL")
//	if err != nil {
//	    // Handle validation error
//	}
//	fmt.Println(fare) // Output: 12.50 GEL
type Money struct { //nolint:recvcheck //using for validation
	minorUnits int64
	currency   string
	guard      guard.ConstructorGuard
}

// NewMoney creates a new Money from a decimal amount and a 3-letter currency
// code. The amount is rounded half-to-even to two decimal places and must not
// be negative. The currency code is uppercased and must be three letters.
func NewMoney(amount float64, currency string) (Money, error) {
	if amount < 0 {
		return Money{}, errs.NewValueIsInvalidErrorWithCause("amount",
			fmt.Errorf("%f is negative", amount))
	}

	return MoneyFromMinorUnits(roundToMinorUnits(amount), currency)
}

// MoneyFromMinorUnits creates a Money directly from an amount in minor units
// (hundredths). Used when restoring persisted amounts without re-rounding.
func MoneyFromMinorUnits(minorUnits int64, currency string) (Money, error) {
	m := Money{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(m.setMinorUnits(minorUnits), m.setCurrency(currency)); err != nil {
		return Money{}, err
	}

	return m, nil
}

// Zero returns a zero-amount Money in the given currency.
func Zero(currency string) (Money, error) {
	return MoneyFromMinorUnits(0, currency)
}

// Validate checks if the Money was properly constructed via a constructor.
func (m Money) Validate() error {
	return m.guard.Validate(ErrMoneyIsNotConstructed)
}

// Amount returns the decimal amount.
func (m Money) Amount() float64 {
	return float64(m.minorUnits) / 100
}

// AmountInMinorUnits returns the amount in minor units (hundredths).
func (m Money) AmountInMinorUnits() int64 {
	return m.minorUnits
}

// Currency returns the uppercase 3-letter currency code.
func (m Money) Currency() string {
	return m.currency
}

// String returns "amount currency" with two decimal places. Implements fmt.Stringer.
func (m Money) String() string {
	return fmt.Sprintf("%d.%02d %s", m.minorUnits/100, m.minorUnits%100, m.currency)
}

// IsEqual compares two amounts by value and currency.
func (m Money) IsEqual(other Money) (bool, error) {
	if err := errors.Join(m.Validate(), other.Validate()); err != nil {
		return false, err
	}

	return m.minorUnits == other.minorUnits && m.currency == other.currency, nil
}

// Add returns the sum of two amounts.
// Fails with ErrCurrencyMismatch when the currencies differ.
func (m Money) Add(other Money) (Money, error) {
	if err := m.validatePair(other); err != nil {
		return Money{}, err
	}

	return MoneyFromMinorUnits(m.minorUnits+other.minorUnits, m.currency)
}

// Subtract returns the difference of two amounts.
// Fails with ErrCurrencyMismatch when the currencies differ and with an invalid
// amount error when the result would be negative.
func (m Money) Subtract(other Money) (Money, error) {
	if err := m.validatePair(other); err != nil {
		return Money{}, err
	}

	if other.minorUnits > m.minorUnits {
		return Money{}, errs.NewValueIsInvalidErrorWithCause("amount",
			fmt.Errorf("subtracting %s from %s yields a negative amount", other, m))
	}

	return MoneyFromMinorUnits(m.minorUnits-other.minorUnits, m.currency)
}

// Multiply returns the amount scaled by a non-negative factor,
// rounded half-to-even to minor units.
func (m Money) Multiply(factor float64) (Money, error) {
	if err := m.Validate(); err != nil {
		return Money{}, err
	}

	if factor < 0 {
		return Money{}, errs.NewValueIsInvalidErrorWithCause("factor",
			fmt.Errorf("%f is negative", factor))
	}

	return MoneyFromMinorUnits(roundToMinorUnits(m.Amount()*factor), m.currency)
}

func (m Money) validatePair(other Money) error {
	if err := errors.Join(m.Validate(), other.Validate()); err != nil {
		return err
	}

	if m.currency != other.currency {
		return fmt.Errorf("%w: %s and %s", ErrCurrencyMismatch, m.currency, other.currency)
	}

	return nil
}

func (m *Money) setMinorUnits(minorUnits int64) error {
	if minorUnits < 0 {
		return errs.NewValueIsInvalidErrorWithCause("amount",
			fmt.Errorf("%d is negative", minorUnits))
	}

	m.minorUnits = minorUnits
	return nil
}

func (m *Money) setCurrency(currency string) error {
	currency = strings.ToUpper(strings.TrimSpace(currency))
	if len(currency) != currencyCodeLength {
		return errs.NewValueIsInvalidErrorWithCause("currency",
			fmt.Errorf("%q is not a 3-letter code", currency))
	}
	for _, r := range currency {
		if r < 'A' || r > 'Z' {
			return errs.NewValueIsInvalidErrorWithCause("currency",
				fmt.Errorf("%q is not a 3-letter code", currency))
		}
	}

	m.currency = currency
	return nil
}

// roundToMinorUnits converts a decimal amount to minor units, rounding
// half-to-even. A small epsilon absorbs binary float representation error
// around the midpoint.
func roundToMinorUnits(amount float64) int64 {
	scaled := amount * 100
	floor := math.Floor(scaled)
	diff := scaled - floor

	const epsilon = 1e-9
	switch {
	case diff > 0.5+epsilon:
		return int64(floor) + 1
	case diff < 0.5-epsilon:
		return int64(floor)
	default:
		if int64(floor)%2 == 0 {
			return int64(floor)
		}
		return int64(floor) + 1
	}
}
