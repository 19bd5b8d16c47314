// Package assets decodes the images bundled with the binary.
package assets

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"image"
	"image/draw"
	_ "image/jpeg"
	_ "image/png"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"

	"github.com/droidium/droidium/internal/apperrors"
)

//go:embed logo.png
var logoPNG []byte

// LogoName is the resource name of the bundled watermark.
const LogoName = "logo.png"

var errEmptyImage = errors.New("image has no pixels")

// Watermark is a decoded image and the canvas object that draws it.
type Watermark struct {
	name    string
	pixels  *image.NRGBA
	size    fyne.Size
	texture *canvas.Image
}

// LoadLogo decodes the bundled logo.
func LoadLogo() (*Watermark, error) {
	return Decode(LogoName, logoPNG)
}

// Decode converts encoded PNG or JPEG bytes into 8-bit RGBA pixels.
func Decode(name string, data []byte) (*Watermark, error) {
	src, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, apperrors.Asset(fmt.Errorf("decode %s: %w", name, err))
	}
	b := src.Bounds()
	if b.Empty() {
		return nil, apperrors.Asset(fmt.Errorf("decode %s: %w", name, errEmptyImage))
	}

	pixels, ok := src.(*image.NRGBA)
	if !ok || b.Min != (image.Point{}) {
		pixels = image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
		draw.Draw(pixels, pixels.Bounds(), src, b.Min, draw.Src)
	}

	return &Watermark{
		name:   name,
		pixels: pixels,
		size:   fyne.NewSize(float32(b.Dx()), float32(b.Dy())),
	}, nil
}

func (w *Watermark) Name() string { return w.name }

// Size is the intrinsic pixel size of the image.
func (w *Watermark) Size() fyne.Size { return w.size }

// Pixels returns the decoded buffer, or nil after Release.
func (w *Watermark) Pixels() *image.NRGBA { return w.pixels }

// Texture returns the canvas image for this watermark, creating it on first
// use. alpha is the opacity out of 255. It returns nil after Release.
func (w *Watermark) Texture(alpha uint8) *canvas.Image {
	if w.pixels == nil {
		return nil
	}
	if w.texture == nil {
		img := canvas.NewImageFromImage(w.pixels)
		img.ScaleMode = canvas.ImageScaleSmooth
		img.FillMode = canvas.ImageFillStretch
		img.SetMinSize(w.size)
		w.texture = img
	}
	w.texture.Translucency = Translucency(alpha)
	return w.texture
}

// Translucency converts an opacity out of 255 into fyne's translucency.
func Translucency(alpha uint8) float64 {
	return 1 - float64(alpha)/255
}

// Release drops the pixel buffer and texture.
func (w *Watermark) Release() error {
	if w.texture != nil {
		w.texture.Image = nil
		w.texture.Hide()
		w.texture = nil
	}
	w.pixels = nil
	return nil
}

// LogoResource exposes the bundled logo as a fyne resource for window icons.
func LogoResource() fyne.Resource {
	return fyne.NewStaticResource(LogoName, logoPNG)
}
