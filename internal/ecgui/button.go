package ecgui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/widget"
)

// Button is a push button.
type Button struct {
	*widget.Button
}

// AddButton adds a push button to parent. Use OnClick on the result to run
// code when it is clicked.
func AddButton(parent Container, message string, opts ...Option) *Button {
	s := buildSettings(settings{}, opts)
	b := &Button{Button: widget.NewButton(message, nil)}
	parent.frame().pack(b.Button, s, false)
	return b
}

// OnClick sets the function run when b is clicked. A nil fn removes it.
func (b *Button) OnClick(fn func()) {
	b.OnTapped = fn
}

// CanvasObject returns the object b is packed as.
func (b *Button) CanvasObject() fyne.CanvasObject {
	return b.Button
}
