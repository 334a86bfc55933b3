package ecgui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
)

// Label is a single line of colored text on a colored background.
type Label struct {
	text *canvas.Text
	bg   *canvas.Rectangle
	root *fyne.Container
}

// AddLabel adds a line of text to parent. Text is black on white unless
// FgColor or BgColor say otherwise. A label only claims spare room when it is
// asked to fill.
func AddLabel(parent Container, message string, opts ...Option) *Label {
	s := buildSettings(settings{fg: "black", bg: "white"}, opts)

	l := &Label{
		text: canvas.NewText(message, color.Black),
		bg:   canvas.NewRectangle(color.White),
	}
	l.text.Alignment = fyne.TextAlignCenter
	l.text.TextSize = theme.TextSize()
	l.root = container.NewStack(l.bg, container.NewPadded(l.text))
	l.apply(s)

	parent.frame().pack(l.root, s, s.fill != FillNone)
	return l
}

func (l *Label) apply(s settings) {
	l.text.Color = resolveColor(s.fg, l.text.Color)
	l.bg.FillColor = resolveColor(s.bg, l.bg.FillColor)

	if s.fontFamily != "" {
		size := s.fontSize
		if size <= 0 {
			size = DefaultFontSize
		}
		l.text.TextSize = size
		l.text.TextStyle = fyne.TextStyle{Bold: s.bold, Italic: s.italic}
		l.text.FontSource = fontResource(s.fontFamily, s.bold, s.italic)
	}
}

// ChangeLabel replaces the text of l and applies any style options.
func ChangeLabel(l *Label, message string, opts ...Option) {
	l.text.Text = message
	RestyleLabel(l, opts...)
}

// RestyleLabel applies style options to l and keeps its text.
func RestyleLabel(l *Label, opts ...Option) {
	l.apply(buildSettings(settings{}, opts))
	l.text.Refresh()
	l.bg.Refresh()
	l.root.Refresh()
}

// GetLabelText returns the text l currently shows.
func GetLabelText(l *Label) string {
	return l.text.Text
}

// Text is shorthand for GetLabelText.
func (l *Label) Text() string { return l.text.Text }

// Color returns the current text color.
func (l *Label) Color() color.Color { return l.text.Color }

// Background returns the current background color.
func (l *Label) Background() color.Color { return l.bg.FillColor }

// CanvasObject exposes the label to plain Fyne code.
func (l *Label) CanvasObject() fyne.CanvasObject { return l.root }
