package ecgui

import (
	"strings"
	"sync"

	"fyne.io/fyne/v2"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gobolditalic"
	"golang.org/x/image/font/gofont/goitalic"
	"golang.org/x/image/font/gofont/gomedium"
	"golang.org/x/image/font/gofont/gomediumitalic"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/gomonobold"
	"golang.org/x/image/font/gofont/gomonobolditalic"
	"golang.org/x/image/font/gofont/gomonoitalic"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/gofont/gosmallcaps"
	"golang.org/x/image/font/gofont/gosmallcapsitalic"
)

type fontFace struct {
	name string
	ttf  []byte
}

// fontFamily lists the faces of one family indexed by bold<<1 | italic.
type fontFamily [4]fontFace

var families = map[string]fontFamily{
	"go": {
		{"Go-Regular.ttf", goregular.TTF},
		{"Go-Italic.ttf", goitalic.TTF},
		{"Go-Bold.ttf", gobold.TTF},
		{"Go-Bold-Italic.ttf", gobolditalic.TTF},
	},
	"gomono": {
		{"Go-Mono.ttf", gomono.TTF},
		{"Go-Mono-Italic.ttf", gomonoitalic.TTF},
		{"Go-Mono-Bold.ttf", gomonobold.TTF},
		{"Go-Mono-Bold-Italic.ttf", gomonobolditalic.TTF},
	},
	"gomedium": {
		{"Go-Medium.ttf", gomedium.TTF},
		{"Go-Medium-Italic.ttf", gomediumitalic.TTF},
		{"Go-Bold.ttf", gobold.TTF},
		{"Go-Bold-Italic.ttf", gobolditalic.TTF},
	},
	"gosmallcaps": {
		{"Go-Smallcaps.ttf", gosmallcaps.TTF},
		{"Go-Smallcaps-Italic.ttf", gosmallcapsitalic.TTF},
		{"Go-Smallcaps.ttf", gosmallcaps.TTF},
		{"Go-Smallcaps-Italic.ttf", gosmallcapsitalic.TTF},
	},
}

// Common family names from beginner examples map onto the closest Go face.
var familyAliases = map[string]string{
	"arial":      "go",
	"helvetica":  "go",
	"sans":       "go",
	"sansserif":  "go",
	"verdana":    "go",
	"courier":    "gomono",
	"couriernew": "gomono",
	"consolas":   "gomono",
	"monospace":  "gomono",
	"mono":       "gomono",
	"fixed":      "gomono",
}

var (
	resourcesMu sync.Mutex
	resources   = make(map[string]fyne.Resource)
)

func familyKey(family string) string {
	key := strings.ToLower(family)
	key = strings.NewReplacer(" ", "", "-", "", "_", "").Replace(key)
	if alias, ok := familyAliases[key]; ok {
		return alias
	}
	return key
}

// fontResource returns the face for family in the requested style, or nil
// when the family is unknown and the theme font should be used.
func fontResource(family string, bold, italic bool) fyne.Resource {
	if family == "" {
		return nil
	}

	fam, ok := families[familyKey(family)]
	if !ok {
		log.Debug("ECGUI", "font family not bundled, using theme font", map[string]interface{}{
			"family": family,
		})
		return nil
	}

	idx := 0
	if bold {
		idx |= 2
	}
	if italic {
		idx |= 1
	}
	face := fam[idx]

	resourcesMu.Lock()
	defer resourcesMu.Unlock()
	if res, ok := resources[face.name]; ok {
		return res
	}
	res := fyne.NewStaticResource(face.name, face.ttf)
	resources[face.name] = res
	return res
}
