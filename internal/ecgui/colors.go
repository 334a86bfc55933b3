package ecgui

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"golang.org/x/image/colornames"
)

// ParseColor resolves a Tk style color: a name such as "beige" or
// "light blue", or a hex triplet "#rgb" / "#rrggbb".
func ParseColor(name string) (color.Color, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	if key == "" {
		return nil, fmt.Errorf("empty color name")
	}

	if strings.HasPrefix(key, "#") {
		return parseHexColor(key[1:])
	}

	key = strings.ReplaceAll(key, " ", "")
	if c, ok := colornames.Map[key]; ok {
		return c, nil
	}
	// Tk accepts "grey" spellings everywhere, the SVG set only for some names.
	if c, ok := colornames.Map[strings.ReplaceAll(key, "grey", "gray")]; ok {
		return c, nil
	}
	return nil, fmt.Errorf("unknown color %q", name)
}

func parseHexColor(hex string) (color.Color, error) {
	switch len(hex) {
	case 3:
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	case 6:
	default:
		return nil, fmt.Errorf("invalid hex color #%s", hex)
	}

	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return nil, fmt.Errorf("invalid hex color #%s: %w", hex, err)
	}
	return color.NRGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 0xff}, nil
}

// resolveColor returns fallback when name is empty or unknown.
func resolveColor(name string, fallback color.Color) color.Color {
	if name == "" {
		return fallback
	}
	c, err := ParseColor(name)
	if err != nil {
		log.Warning("ECGUI", "color not recognised, keeping default", map[string]interface{}{
			"color": name,
		})
		return fallback
	}
	return c
}
