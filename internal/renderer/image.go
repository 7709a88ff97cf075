package renderer

import (
	"image"
	"image/color"

	"github.com/disintegration/imaging"
)

// CenterCropZoom crops an image around its centre to zoom into the
// character art, trimming the title text covers carry at the top and
// bottom. A factor above 1.0 zooms in; a factor below 1.0 shrinks the
// image onto a transparent margin instead.
func CenterCropZoom(img image.Image, zoom float64) image.Image {
	if zoom <= 0 || zoom == 1.0 {
		return img
	}

	b := img.Bounds()
	w := int(float64(b.Dx()) / zoom)
	h := int(float64(b.Dy()) / zoom)
	if w <= 0 || h <= 0 {
		return img
	}

	cropW, cropH := w, h
	if cropW > b.Dx() {
		cropW = b.Dx()
	}
	if cropH > b.Dy() {
		cropH = b.Dy()
	}
	cropped := imaging.CropCenter(img, cropW, cropH)

	if w > cropW || h > cropH {
		return imaging.PasteCenter(imaging.New(w, h, color.Transparent), cropped)
	}
	return cropped
}

// resizeToWidth scales an image to the target width preserving its
// aspect ratio, with Lanczos resampling.
func resizeToWidth(img image.Image, width int) *image.NRGBA {
	if width < 1 {
		width = 1
	}
	return imaging.Resize(img, width, 0, imaging.Lanczos)
}

// scaleAlpha multiplies the alpha channel of an image by factor,
// clamped to [0, 1].
func scaleAlpha(img image.Image, factor float64) *image.NRGBA {
	if factor < 0 {
		factor = 0
	}
	if factor > 1 {
		factor = 1
	}

	out := imaging.Clone(img)
	for i := 3; i < len(out.Pix); i += 4 {
		out.Pix[i] = uint8(float64(out.Pix[i]) * factor)
	}
	return out
}
