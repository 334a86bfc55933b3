// Package numeric classifies user-entered text as a non-negative decimal
// numeral.
package numeric

import (
	"errors"
	"fmt"
	"strconv"
)

// DecimalSeparator is the only non-digit character a numeral may contain.
const DecimalSeparator = '.'

var (
	// ErrInvalid is returned by Parse when the text is not a numeral.
	ErrInvalid = errors.New("not a numeral")
	// ErrNoDigits is returned by Parse for a numeral that IsNumeric accepts
	// but that carries no digits, such as ".".
	ErrNoDigits = errors.New("numeral has no digits")
	// ErrOutOfRange is returned by Parse for a numeral too large to hold in a
	// float64.
	ErrOutOfRange = errors.New("numeral out of range")
)

// IsNumeric reports whether text consists only of the digits 0-9 and at most
// one decimal separator. The empty string is rejected. A lone "." is accepted.
func IsNumeric(text string) bool {
	if len(text) == 0 {
		return false
	}

	pointSeen := false
	for i := 0; i < len(text); i++ {
		c := text[i]
		switch {
		case c >= '0' && c <= '9':
		case c == DecimalSeparator:
			if pointSeen {
				return false
			}
			pointSeen = true
		default:
			return false
		}
	}
	return true
}

// Parse converts a numeral to its value.
func Parse(text string) (float64, error) {
	if !IsNumeric(text) {
		return 0, fmt.Errorf("%w: %q", ErrInvalid, text)
	}
	if text == string(DecimalSeparator) {
		return 0, fmt.Errorf("%w: %q", ErrNoDigits, text)
	}

	value, err := strconv.ParseFloat(text, 64)
	if errors.Is(err, strconv.ErrRange) {
		return 0, fmt.Errorf("%w: %d digits", ErrOutOfRange, len(text))
	}
	if err != nil {
		return 0, fmt.Errorf("parse numeral %q: %w", text, err)
	}
	return value, nil
}
