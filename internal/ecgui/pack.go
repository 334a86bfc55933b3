package ecgui

import (
	"fyne.io/fyne/v2"
)

type packInfo struct {
	side   PackSide
	pad    insets
	fill   FillMode
	expand bool
}

// packLayout arranges children the way the Tk packer does. Children are
// given parcels carved out of the remaining cavity in insertion order: a Top
// child takes a full-width strip, a Left or Right child a full-height strip.
// Expanding children share the space left over once every request is met.
type packLayout struct {
	info map[fyne.CanvasObject]packInfo
}

func newPackLayout() *packLayout {
	return &packLayout{info: make(map[fyne.CanvasObject]packInfo)}
}

func (pl *packLayout) set(obj fyne.CanvasObject, info packInfo) {
	pl.info[obj] = info
}

func (pl *packLayout) forget(obj fyne.CanvasObject) {
	delete(pl.info, obj)
}

func (pl *packLayout) lookup(obj fyne.CanvasObject) packInfo {
	return pl.info[obj]
}

func visibleObjects(objects []fyne.CanvasObject) []fyne.CanvasObject {
	visible := make([]fyne.CanvasObject, 0, len(objects))
	for _, obj := range objects {
		if obj.Visible() {
			visible = append(visible, obj)
		}
	}
	return visible
}

func (pl *packLayout) Layout(objects []fyne.CanvasObject, containerSize fyne.Size) {
	objects = visibleObjects(objects)

	cavityX, cavityY := float32(0), float32(0)
	cavityW, cavityH := containerSize.Width, containerSize.Height

	for i, obj := range objects {
		info := pl.lookup(obj)
		req := obj.MinSize()
		padX, padY := info.pad.horizontal(), info.pad.vertical()

		var frameX, frameY, frameW, frameH float32
		if info.side == Top {
			frameH = req.Height + padY
			if info.expand {
				frameH += pl.yExpansion(objects[i:], cavityH)
			}
			cavityH -= frameH
			if cavityH < 0 {
				frameH += cavityH
				cavityH = 0
			}
			frameX, frameY, frameW = cavityX, cavityY, cavityW
			cavityY += frameH
		} else {
			frameW = req.Width + padX
			if info.expand {
				frameW += pl.xExpansion(objects[i:], cavityW)
			}
			cavityW -= frameW
			if cavityW < 0 {
				frameW += cavityW
				cavityW = 0
			}
			frameY, frameH = cavityY, cavityH
			if info.side == Left {
				frameX = cavityX
				cavityX += frameW
			} else {
				frameX = cavityX + cavityW
			}
		}

		width := req.Width
		if info.fill.fillsX() || width > frameW-padX {
			width = frameW - padX
		}
		height := req.Height
		if info.fill.fillsY() || height > frameH-padY {
			height = frameH - padY
		}
		width, height = clamp(width), clamp(height)

		x := frameX + info.pad.left + (frameW-padX-width)/2
		y := frameY + info.pad.top + (frameH-padY-height)/2

		obj.Resize(fyne.NewSize(width, height))
		obj.Move(fyne.NewPos(x, y))
	}
}

// MinSize is the packer's geometry request: enough room for every child
// without any expansion.
func (pl *packLayout) MinSize(objects []fyne.CanvasObject) fyne.Size {
	var width, height, maxWidth, maxHeight float32

	for _, obj := range visibleObjects(objects) {
		info := pl.lookup(obj)
		req := obj.MinSize()
		reqW := req.Width + info.pad.horizontal()
		reqH := req.Height + info.pad.vertical()

		if info.side == Top {
			if w := reqW + width; w > maxWidth {
				maxWidth = w
			}
			height += reqH
		} else {
			if h := reqH + height; h > maxHeight {
				maxHeight = h
			}
			width += reqW
		}
	}

	if width > maxWidth {
		maxWidth = width
	}
	if height > maxHeight {
		maxHeight = height
	}
	return fyne.NewSize(maxWidth, maxHeight)
}

// xExpansion is the extra width the first of objects may take, given that
// later Top children still need their requested width in what remains.
func (pl *packLayout) xExpansion(objects []fyne.CanvasObject, cavityW float32) float32 {
	minExpand := cavityW
	numExpand := 0

	for _, obj := range objects {
		info := pl.lookup(obj)
		childW := obj.MinSize().Width + info.pad.horizontal()
		if info.side == Top {
			if numExpand > 0 {
				if cur := (cavityW - childW) / float32(numExpand); cur < minExpand {
					minExpand = cur
				}
			}
			continue
		}
		cavityW -= childW
		if info.expand {
			numExpand++
		}
	}

	if numExpand > 0 {
		if cur := cavityW / float32(numExpand); cur < minExpand {
			minExpand = cur
		}
	}
	return clamp(minExpand)
}

// yExpansion mirrors xExpansion for vertical space.
func (pl *packLayout) yExpansion(objects []fyne.CanvasObject, cavityH float32) float32 {
	minExpand := cavityH
	numExpand := 0

	for _, obj := range objects {
		info := pl.lookup(obj)
		childH := obj.MinSize().Height + info.pad.vertical()
		if info.side != Top {
			if numExpand > 0 {
				if cur := (cavityH - childH) / float32(numExpand); cur < minExpand {
					minExpand = cur
				}
			}
			continue
		}
		cavityH -= childH
		if info.expand {
			numExpand++
		}
	}

	if numExpand > 0 {
		if cur := cavityH / float32(numExpand); cur < minExpand {
			minExpand = cur
		}
	}
	return clamp(minExpand)
}

func clamp(v float32) float32 {
	if v < 0 {
		return 0
	}
	return v
}

// charBox gives its single child a minimum size measured in characters of
// the theme text font.
type charBox struct {
	cols, rows int
}

func (cb *charBox) Layout(objects []fyne.CanvasObject, size fyne.Size) {
	for _, obj := range objects {
		obj.Resize(size)
		obj.Move(fyne.NewPos(0, 0))
	}
}

func (cb *charBox) MinSize(objects []fyne.CanvasObject) fyne.Size {
	var req fyne.Size
	for _, obj := range objects {
		req = req.Max(obj.MinSize())
	}

	cell := charCell()
	pad := 2 * innerPadding()
	if cb.cols > 0 {
		if w := float32(cb.cols)*cell.Width + pad; w > req.Width {
			req.Width = w
		}
	}
	if cb.rows > 0 {
		if h := float32(cb.rows)*cell.Height + pad; h > req.Height {
			req.Height = h
		}
	}
	return req
}
