// Package pricing computes the tax, tip and total for a meal price.
//
// Two APIs are provided. ComputeTax, ComputeTip and ComputeTotal return zero
// for any input that is not a numeral, leaving the caller to treat zero as
// "invalid input". Calculate returns an explicit error instead.
package pricing

import (
	"errors"
	"fmt"
	"math"

	"meal-estimator/internal/numeric"
)

const (
	TaxFactor = 7.0 / 100
	TipFactor = 18.0 / 100
)

// ErrInvalidNumeral is wrapped by every error Calculate returns.
var ErrInvalidNumeral = errors.New("invalid numeral input")

// Quote is the breakdown for a single meal price.
type Quote struct {
	Amount float64 `json:"amount"`
	Tax    float64 `json:"tax"`
	Tip    float64 `json:"tip"`
	Total  float64 `json:"total"`
}

// maxFractional is the magnitude above which a float64 has no fractional
// cents left to round.
const maxFractional = 1e15

// Round rounds v to two decimal places, halves away from zero. Values at or
// above 1e15 in magnitude, and non-finite values, are returned unchanged.
func Round(v float64) float64 {
	if math.Abs(v) >= maxFractional || math.IsNaN(v) {
		return v
	}
	return math.Round(v*100) / 100
}

// amount returns the value of text, or false when text is not usable as a
// price.
func amount(text string) (float64, bool) {
	v, err := numeric.Parse(text)
	if err != nil {
		return 0, false
	}
	return v, true
}

// ComputeTax returns the rounded tax for text, or 0 if text is not a numeral.
func ComputeTax(text string) float64 {
	v, ok := amount(text)
	if !ok {
		return 0
	}
	return Round(v * TaxFactor)
}

// ComputeTip returns the rounded tip for text, or 0 if text is not a numeral.
func ComputeTip(text string) float64 {
	v, ok := amount(text)
	if !ok {
		return 0
	}
	return Round(v * TipFactor)
}

// ComputeTotal returns the rounded sum of the price in text and the given
// tax and tip, or 0 if text is not a numeral.
func ComputeTotal(text string, tax, tip float64) float64 {
	v, ok := amount(text)
	if !ok {
		return 0
	}
	return Round(v + tax + tip)
}

// Calculate prices the meal in text.
func Calculate(text string) (Quote, error) {
	v, err := numeric.Parse(text)
	if err != nil {
		return Quote{}, fmt.Errorf("%w: %w", ErrInvalidNumeral, err)
	}

	tax := Round(v * TaxFactor)
	tip := Round(v * TipFactor)
	total := Round(v + tax + tip)
	if math.IsInf(total, 0) {
		return Quote{}, fmt.Errorf("%w: total of %q: %w", ErrInvalidNumeral, text, numeric.ErrOutOfRange)
	}
	return Quote{
		Amount: v,
		Tax:    tax,
		Tip:    tip,
		Total:  total,
	}, nil
}
