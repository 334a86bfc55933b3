package imaging

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func solid(w, h int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, color.RGBA{R: 200, G: 120, B: 40, A: 255})
		}
	}
	return img
}

func TestLoadPNG(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, solid(40, 30)))

	path := filepath.Join(t.TempDir(), "logo.png")
	require.NoError(t, os.WriteFile(path, buf.Bytes(), 0o600))

	pic, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 40, pic.Width)
	assert.Equal(t, 30, pic.Height)
	assert.Equal(t, "png", pic.Format)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.png"))
	assert.Error(t, err)
}

func TestDecodeGarbage(t *testing.T) {
	_, err := Decode([]byte("definitely not an image"), ".bmp")
	assert.Error(t, err)
}

func TestFitLeavesSmallImages(t *testing.T) {
	img := solid(100, 50)
	out, err := Fit(img, 300, 200)
	require.NoError(t, err)
	assert.Same(t, img, out)
}

func TestFitKeepsAspectRatio(t *testing.T) {
	out, err := Fit(solid(600, 200), 300, 200)
	require.NoError(t, err)
	assert.Equal(t, 300, out.Bounds().Dx())
	assert.Equal(t, 100, out.Bounds().Dy())
}

func TestFitRejectsBadSize(t *testing.T) {
	_, err := Fit(solid(10, 10), 0, 10)
	assert.Error(t, err)
}

func TestFormatFromExtension(t *testing.T) {
	assert.Equal(t, "tiff", formatFromExtension(".TIF"))
	assert.Equal(t, "webp", formatFromExtension(".webp"))
	assert.Equal(t, "unknown", formatFromExtension(".xyz"))
}
