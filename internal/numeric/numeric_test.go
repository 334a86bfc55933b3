package numeric

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsNumeric(t *testing.T) {
	tests := []struct {
		name string
		text string
		want bool
	}{
		{"empty", "", false},
		{"integer", "100", true},
		{"decimal", "12.50", true},
		{"leading point", ".5", true},
		{"trailing point", "5.", true},
		{"second point", "12.5.0", false},
		{"two points adjacent", "1..", false},
		{"letter suffix", "12a", false},
		{"letters", "abc", false},
		{"negative sign", "-5", false},
		{"plus sign", "+5", false},
		{"thousands separator", "1,000", false},
		{"exponent", "1e5", false},
		{"leading space", " 5", false},
		{"trailing space", "5 ", false},
		{"non-ascii digit", "١٢", false},
		// A lone separator passes the scan even though it has no digits.
		{"lone point", ".", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsNumeric(tt.text))
		})
	}
}

func TestIsNumericLongInput(t *testing.T) {
	assert.True(t, IsNumeric(strings.Repeat("9", 10000)))
	assert.False(t, IsNumeric(strings.Repeat("9", 10000)+"x"))
}

func TestParse(t *testing.T) {
	v, err := Parse("12.50")
	require.NoError(t, err)
	assert.Equal(t, 12.5, v)

	v, err = Parse(".5")
	require.NoError(t, err)
	assert.Equal(t, 0.5, v)

	v, err = Parse("5.")
	require.NoError(t, err)
	assert.Equal(t, 5.0, v)
}

func TestParseRejects(t *testing.T) {
	_, err := Parse("")
	assert.ErrorIs(t, err, ErrInvalid)

	_, err = Parse("12.5.0")
	assert.ErrorIs(t, err, ErrInvalid)

	_, err = Parse(".")
	assert.ErrorIs(t, err, ErrNoDigits)
}

func TestParseOutOfRange(t *testing.T) {
	v, err := Parse("1" + strings.Repeat("0", 308))
	require.NoError(t, err)
	assert.Equal(t, 1e308, v)

	text := strings.Repeat("9", 400)
	assert.True(t, IsNumeric(text))
	v, err = Parse(text)
	assert.ErrorIs(t, err, ErrOutOfRange)
	assert.Zero(t, v)

	// Underflow to a denormal or zero is not an error.
	v, err = Parse("0." + strings.Repeat("0", 400) + "1")
	require.NoError(t, err)
	assert.Zero(t, v)
}
