package ecgui

import (
	"meal-estimator/internal/logger"
)

// PackSide selects the cavity edge a child is packed against.
type PackSide int

const (
	Top PackSide = iota
	Left
	Right
)

func (s PackSide) String() string {
	switch s {
	case Left:
		return "left"
	case Right:
		return "right"
	default:
		return "top"
	}
}

// FillMode controls whether a child stretches to its parcel.
type FillMode int

const (
	FillNone FillMode = iota
	FillX
	FillY
	FillBoth
)

func (f FillMode) fillsX() bool { return f == FillX || f == FillBoth }
func (f FillMode) fillsY() bool { return f == FillY || f == FillBoth }

type insets struct {
	top, right, bottom, left float32
}

func (i insets) horizontal() float32 { return i.left + i.right }
func (i insets) vertical() float32   { return i.top + i.bottom }

// settings collects everything an Option may set. Each widget reads only the
// fields that apply to it.
type settings struct {
	fg, bg string

	fontFamily string
	fontSize   float32
	bold       bool
	italic     bool

	pad  insets
	side PackSide
	fill FillMode

	width, height int

	wrap       bool
	scroll     bool
	horizontal bool
	spacing    float32

	selected      int
	selectedText  string
	buttonMessage string
	selectColor   string
	highlight     string
}

// Option adjusts how a widget is styled or packed.
type Option func(*settings)

func buildSettings(defaults settings, opts []Option) settings {
	s := defaults
	for _, opt := range opts {
		if opt != nil {
			opt(&s)
		}
	}
	return s
}

// FgColor sets the text color, by Tk name or #rrggbb.
func FgColor(name string) Option { return func(s *settings) { s.fg = name } }

// BgColor sets the background color, by Tk name or #rrggbb.
func BgColor(name string) Option { return func(s *settings) { s.bg = name } }

// DefaultFontSize is the text size Font uses when given a size of zero.
const DefaultFontSize = 12

// Font selects one of the bundled font families at size. A size of zero or
// less means DefaultFontSize.
func Font(family string, size float32) Option {
	return func(s *settings) {
		s.fontFamily = family
		s.fontSize = size
	}
}

func Bold() Option   { return func(s *settings) { s.bold = true } }
func Italic() Option { return func(s *settings) { s.italic = true } }

// Padding sets the outer padding in Tk order: top, right, bottom, left.
func Padding(top, right, bottom, left float32) Option {
	return func(s *settings) { s.pad = insets{top: top, right: right, bottom: bottom, left: left} }
}

func PadTop(v float32) Option    { return func(s *settings) { s.pad.top = v } }
func PadRight(v float32) Option  { return func(s *settings) { s.pad.right = v } }
func PadBottom(v float32) Option { return func(s *settings) { s.pad.bottom = v } }
func PadLeft(v float32) Option   { return func(s *settings) { s.pad.left = v } }

// Side docks the widget against the left or right edge of the remaining row
// space instead of stacking it below the previous one.
func Side(side PackSide) Option { return func(s *settings) { s.side = side } }

func Fill(fill FillMode) Option { return func(s *settings) { s.fill = fill } }

// Width is measured in characters for text widgets and in pixels for images.
func Width(v int) Option { return func(s *settings) { s.width = v } }

// Height is measured in lines for text widgets and in pixels for images.
func Height(v int) Option { return func(s *settings) { s.height = v } }

// Size is shorthand for Width and Height.
func Size(width, height int) Option {
	return func(s *settings) {
		s.width = width
		s.height = height
	}
}

func Wrap(wrap bool) Option { return func(s *settings) { s.wrap = wrap } }
func Scroll() Option        { return func(s *settings) { s.scroll = true } }
func Horizontal() Option    { return func(s *settings) { s.horizontal = true } }

// Spacing sets the gap around each item of a radio or check box group.
func Spacing(v float32) Option { return func(s *settings) { s.spacing = v } }

// Selected picks the initially selected radio button by index.
func Selected(index int) Option { return func(s *settings) { s.selected = index } }

// SelectedOption picks the initially selected dropdown entry.
func SelectedOption(option string) Option { return func(s *settings) { s.selectedText = option } }

// ButtonMessage adds a button after a radio group.
func ButtonMessage(message string) Option { return func(s *settings) { s.buttonMessage = message } }

// SelectColor sets the text color of the selected list box entry.
func SelectColor(name string) Option { return func(s *settings) { s.selectColor = name } }

// Highlight sets the background of the selected list box entry.
func Highlight(name string) Option { return func(s *settings) { s.highlight = name } }

var log logger.Logger = logger.NewNop()

// SetLogger routes diagnostics such as unknown color names to l.
func SetLogger(l logger.Logger) {
	if l == nil {
		l = logger.NewNop()
	}
	log = l
}
