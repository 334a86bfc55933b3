package ecgui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
)

// MultilineLabel is a read-only block of text that grows by appending lines.
type MultilineLabel struct {
	label  *widget.Label
	scroll *container.Scroll
	root   *fyne.Container
}

// AddMultilineLabel adds a text block Height lines by Width characters,
// 10 by 25 by default. Text wraps at word boundaries unless Wrap(false) is
// given; Scroll adds a vertical scroll bar. The block keeps its size and takes
// no spare room.
func AddMultilineLabel(parent Container, message string, opts ...Option) *MultilineLabel {
	s := buildSettings(settings{width: 25, height: 10, wrap: true}, opts)

	m := &MultilineLabel{label: widget.NewLabel(message)}
	if s.wrap {
		m.label.Wrapping = fyne.TextWrapWord
	}

	var content fyne.CanvasObject = m.label
	if s.scroll {
		m.scroll = container.NewVScroll(m.label)
		content = m.scroll
	}
	m.root = container.New(&charBox{cols: s.width, rows: s.height}, content)

	parent.frame().pack(m.root, s, false)
	return m
}

// AppendMultilineLabel adds message as a new line, followed by a blank line
// when skipALine is set.
func AppendMultilineLabel(m *MultilineLabel, message string, skipALine bool) {
	text := m.label.Text + message + "\n"
	if skipALine {
		text += "\n"
	}
	m.label.SetText(text)
}

// ClearMultilineLabel removes all text from m.
func ClearMultilineLabel(m *MultilineLabel) {
	m.label.SetText("")
}

// Text returns everything m currently shows.
func (m *MultilineLabel) Text() string { return m.label.Text }

// Scrollable reports whether m was created with a scroll bar.
func (m *MultilineLabel) Scrollable() bool { return m.scroll != nil }

// CanvasObject exposes the text block, as packed, to plain Fyne code.
func (m *MultilineLabel) CanvasObject() fyne.CanvasObject { return m.root }

// ListBox shows entries one per line with a single selection, the first
// entry selected to begin with.
type ListBox struct {
	list       *widget.List
	root       *fyne.Container
	entries    []string
	selected   int
	selectFg   color.Color
	selectBg   color.Color
	OnSelected func(index int, entry string)
}

// AddListBox adds a list box Height lines by Width characters, 10 by 25 by
// default. SelectColor and Highlight color the selected entry, white on
// black unless set. Lists always scroll, so Scroll is accepted but has no
// further effect.
func AddListBox(parent Container, entries []string, opts ...Option) *ListBox {
	s := buildSettings(settings{width: 25, height: 10, selectColor: "white", highlight: "black"}, opts)

	lb := &ListBox{
		entries:  append([]string(nil), entries...),
		selected: -1,
		selectFg: resolveColor(s.selectColor, color.White),
		selectBg: resolveColor(s.highlight, color.Black),
	}
	lb.list = widget.NewList(
		func() int { return len(lb.entries) },
		func() fyne.CanvasObject {
			return container.NewStack(
				canvas.NewRectangle(color.Transparent),
				container.NewPadded(canvas.NewText("", theme.Color(theme.ColorNameForeground))),
			)
		},
		lb.updateItem,
	)
	lb.list.OnSelected = func(id widget.ListItemID) {
		lb.selected = id
		lb.list.Refresh()
		if lb.OnSelected != nil {
			lb.OnSelected(id, lb.entries[id])
		}
	}
	lb.root = container.New(&charBox{cols: s.width, rows: s.height}, lb.list)

	if len(lb.entries) > 0 {
		lb.list.Select(0)
	}

	parent.frame().pack(lb.root, s, false)
	return lb
}

func (lb *ListBox) updateItem(id widget.ListItemID, item fyne.CanvasObject) {
	stack := item.(*fyne.Container)
	bg := stack.Objects[0].(*canvas.Rectangle)
	text := stack.Objects[1].(*fyne.Container).Objects[0].(*canvas.Text)

	text.Text = lb.entries[id]
	if id == lb.selected {
		bg.FillColor = lb.selectBg
		text.Color = lb.selectFg
	} else {
		bg.FillColor = color.Transparent
		text.Color = theme.Color(theme.ColorNameForeground)
	}
	bg.Refresh()
	text.Refresh()
}

// Select selects the entry at index.
func (lb *ListBox) Select(index int) {
	if index >= 0 && index < len(lb.entries) {
		lb.list.Select(index)
	}
}

// Selected returns the index and text of the selected entry, or -1 and ""
// when nothing is selected.
func (lb *ListBox) Selected() (int, string) {
	if lb.selected < 0 || lb.selected >= len(lb.entries) {
		return -1, ""
	}
	return lb.selected, lb.entries[lb.selected]
}

// Entries returns a copy of the listed entries.
func (lb *ListBox) Entries() []string {
	return append([]string(nil), lb.entries...)
}

// CanvasObject exposes the list, as packed, to plain Fyne code.
func (lb *ListBox) CanvasObject() fyne.CanvasObject { return lb.root }
