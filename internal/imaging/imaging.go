// Package imaging loads pictures for display and scales them to the area
// they are shown in.
package imaging

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"os"
	"path/filepath"
	"strings"

	"gocv.io/x/gocv"
)

// ErrEmptyImage is returned for files that decode to zero pixels.
var ErrEmptyImage = errors.New("image has no pixels")

// Picture is a decoded image and where it came from.
type Picture struct {
	Image  image.Image
	Width  int
	Height int
	Format string
}

// Load decodes the image at path. Formats the standard library knows are
// decoded directly; everything else (bmp, tiff, webp) goes through OpenCV.
func Load(path string) (*Picture, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read image: %w", err)
	}
	return Decode(data, filepath.Ext(path))
}

// Decode decodes image bytes. ext is the file extension, used only to name
// the format when the standard library cannot.
func Decode(data []byte, ext string) (*Picture, error) {
	if img, format, err := image.Decode(bytes.NewReader(data)); err == nil {
		return newPicture(img, format)
	}

	mat, err := gocv.IMDecode(data, gocv.IMReadColor)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image with OpenCV: %w", err)
	}
	defer mat.Close()
	if mat.Empty() {
		return nil, fmt.Errorf("failed to decode image: %w", ErrEmptyImage)
	}

	img, err := mat.ToImage()
	if err != nil {
		return nil, fmt.Errorf("failed to convert Mat to image: %w", err)
	}
	return newPicture(img, formatFromExtension(ext))
}

func newPicture(img image.Image, format string) (*Picture, error) {
	bounds := img.Bounds()
	if bounds.Empty() {
		return nil, ErrEmptyImage
	}
	return &Picture{
		Image:  img,
		Width:  bounds.Dx(),
		Height: bounds.Dy(),
		Format: format,
	}, nil
}

func formatFromExtension(ext string) string {
	switch strings.ToLower(ext) {
	case ".tiff", ".tif":
		return "tiff"
	case ".jpg", ".jpeg":
		return "jpeg"
	case ".png":
		return "png"
	case ".bmp":
		return "bmp"
	case ".gif":
		return "gif"
	case ".webp":
		return "webp"
	default:
		return "unknown"
	}
}

// Fit returns img scaled down, keeping its aspect ratio, so that it fits in
// width by height. Images that already fit are returned unchanged.
func Fit(img image.Image, width, height int) (image.Image, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("invalid target size: %dx%d", width, height)
	}

	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	if w <= width && h <= height {
		return img, nil
	}

	scale := float64(width) / float64(w)
	if s := float64(height) / float64(h); s < scale {
		scale = s
	}
	dstW := max(1, int(float64(w)*scale))
	dstH := max(1, int(float64(h)*scale))

	src, err := gocv.ImageToMatRGBA(img)
	if err != nil {
		return nil, fmt.Errorf("failed to convert image to Mat: %w", err)
	}
	defer src.Close()

	dst := gocv.NewMat()
	defer dst.Close()
	gocv.Resize(src, &dst, image.Pt(dstW, dstH), 0, 0, gocv.InterpolationArea)

	out, err := dst.ToImage()
	if err != nil {
		return nil, fmt.Errorf("failed to convert Mat to image: %w", err)
	}
	return out, nil
}
