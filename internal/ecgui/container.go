package ecgui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
)

// Container is anything widgets can be added to: a *Window or a *Frame.
type Container interface {
	frame() *Frame
}

// Frame is a rectangular area holding its own rows of widgets.
type Frame struct {
	bg     *canvas.Rectangle
	layout *packLayout
	box    *fyne.Container
	root   *fyne.Container
}

func newFrame(bg color.Color) *Frame {
	f := &Frame{
		bg:     canvas.NewRectangle(bg),
		layout: newPackLayout(),
	}
	f.box = container.New(f.layout)
	f.root = container.NewStack(f.bg, f.box)
	return f
}

func (f *Frame) frame() *Frame { return f }

// CanvasObject exposes the frame to plain Fyne code.
func (f *Frame) CanvasObject() fyne.CanvasObject { return f.root }

// SetBackground repaints the frame.
func (f *Frame) SetBackground(name string) {
	f.bg.FillColor = resolveColor(name, f.bg.FillColor)
	f.bg.Refresh()
}

func (f *Frame) pack(obj fyne.CanvasObject, s settings, expand bool) {
	f.layout.set(obj, packInfo{
		side:   s.side,
		pad:    s.pad,
		fill:   s.fill,
		expand: expand,
	})
	f.box.Add(obj)
}

// Remove takes a widget previously added to the frame off screen.
func (f *Frame) Remove(obj fyne.CanvasObject) {
	f.box.Remove(obj)
	f.layout.forget(obj)
}

// AddFrame adds a frame to parent. Frames always take a share of any spare
// room; use Fill to make them stretch into it.
func AddFrame(parent Container, opts ...Option) *Frame {
	s := buildSettings(settings{bg: "white"}, opts)
	f := newFrame(resolveColor(s.bg, color.White))
	parent.frame().pack(f.root, s, true)
	return f
}

// Window is a top-level window whose content is one frame.
type Window struct {
	*Frame
	win fyne.Window
}

// MakeWindow creates a window using the running Fyne app, starting one if
// needed.
func MakeWindow(title, bgColor string) *Window {
	a := fyne.CurrentApp()
	if a == nil {
		a = app.New()
	}

	w := &Window{
		Frame: newFrame(resolveColor(bgColor, color.White)),
		win:   a.NewWindow(title),
	}
	w.win.SetContent(w.root)
	return w
}

// Fyne returns the underlying window.
func (w *Window) Fyne() fyne.Window { return w.win }

// Title returns the window title.
func (w *Window) Title() string { return w.win.Title() }

// Run shows the window and blocks until the app quits.
func (w *Window) Run() {
	w.win.ShowAndRun()
}

// Close closes the window.
func (w *Window) Close() {
	w.win.Close()
}
