package ecgui

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/colornames"
)

func TestParseColor(t *testing.T) {
	tests := []struct {
		name string
		want color.Color
	}{
		{"beige", colornames.Beige},
		{"Light Blue", colornames.Lightblue},
		{"  yellow ", colornames.Yellow},
		{"dark grey", colornames.Darkgray},
		{"#fff", color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}},
		{"#1a2B3c", color.NRGBA{R: 0x1a, G: 0x2b, B: 0x3c, A: 0xff}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseColor(tt.name)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseColorRejects(t *testing.T) {
	for _, name := range []string{"", "nocolor", "#12", "#ggg", "#1234567"} {
		_, err := ParseColor(name)
		assert.Error(t, err, name)
	}
}

func TestResolveColorFallsBack(t *testing.T) {
	fallback := color.NRGBA{R: 1, A: 0xff}
	assert.Equal(t, fallback, resolveColor("", fallback))
	assert.Equal(t, fallback, resolveColor("nocolor", fallback))
	assert.Equal(t, colornames.Red, resolveColor("red", fallback))
}
