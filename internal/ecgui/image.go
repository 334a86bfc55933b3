package ecgui

import (
	"image"
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
)

const (
	defaultImageWidth  = 300
	defaultImageHeight = 200
)

// ImageBox is a fixed size area showing one picture centred on a background.
type ImageBox struct {
	img  *canvas.Image
	bg   *canvas.Rectangle
	root *fyne.Container
}

// AddImage adds a Width by Height pixel area, 300 by 200 by default, showing
// img scaled down to fit. A nil img leaves the area empty.
func AddImage(parent Container, img image.Image, opts ...Option) *ImageBox {
	s := buildSettings(settings{width: defaultImageWidth, height: defaultImageHeight, bg: "white"}, opts)

	box := &ImageBox{
		img: canvas.NewImageFromImage(img),
		bg:  canvas.NewRectangle(resolveColor(s.bg, color.White)),
	}
	box.img.FillMode = canvas.ImageFillContain
	box.img.ScaleMode = canvas.ImageScaleSmooth
	box.img.SetMinSize(imageSize(s.width, s.height))
	box.root = container.NewStack(box.bg, box.img)

	parent.frame().pack(box.root, s, false)
	return box
}

// ChangeImage shows img in box and resizes the area to width by height.
func ChangeImage(box *ImageBox, img image.Image, width, height int) {
	box.img.Image = img
	box.img.SetMinSize(imageSize(width, height))
	box.img.Refresh()
	box.root.Refresh()
}

// Image returns the picture currently shown.
func (b *ImageBox) Image() image.Image { return b.img.Image }

// CanvasObject exposes the image area to plain Fyne code.
func (b *ImageBox) CanvasObject() fyne.CanvasObject { return b.root }

func imageSize(width, height int) fyne.Size {
	if width <= 0 {
		width = defaultImageWidth
	}
	if height <= 0 {
		height = defaultImageHeight
	}
	return fyne.NewSize(float32(width), float32(height))
}
