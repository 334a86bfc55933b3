package ecgui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

// EntryBox is a single line text input.
type EntryBox struct {
	*widget.Entry
	root *fyne.Container
}

// AddEntryBox adds a text input Width characters wide, 10 by default.
func AddEntryBox(parent Container, opts ...Option) *EntryBox {
	s := buildSettings(settings{width: 10}, opts)

	e := &EntryBox{Entry: widget.NewEntry()}
	e.root = container.New(&charBox{cols: s.width}, e.Entry)

	parent.frame().pack(e.root, s, false)
	return e
}

// ClearEntryBox empties e.
func ClearEntryBox(e *EntryBox) {
	e.SetText("")
}

// FillEntryBox replaces the contents of e with value.
func FillEntryBox(e *EntryBox, value string) {
	e.SetText(value)
}

// GetEntryText returns what has been typed into e.
func GetEntryText(e *EntryBox) string {
	return e.Text
}

// CanvasObject exposes the entry, as packed, to plain Fyne code.
func (e *EntryBox) CanvasObject() fyne.CanvasObject { return e.root }
