// Package stencil turns artwork into a high-contrast black and white
// PNG suitable as poster background line art: grayscale, a strong
// contrast boost around the image's mean luminance, then a hard
// threshold to pure black or white.
package stencil

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"

	"github.com/disintegration/imaging"
)

// Options tune the stencil conversion. Zero values fall back to the
// defaults that produce the stock background line art.
type Options struct {
	// ContrastFactor scales each pixel's distance from the mean
	// luminance before thresholding.
	ContrastFactor float64

	// Threshold is the luminance cut: below becomes black, at or above
	// becomes white.
	Threshold uint8
}

const (
	defaultContrastFactor = 2.5
	defaultThreshold      = 128
)

func (o Options) withDefaults() Options {
	if o.ContrastFactor == 0 {
		o.ContrastFactor = defaultContrastFactor
	}
	if o.Threshold == 0 {
		o.Threshold = defaultThreshold
	}
	return o
}

// Generate converts an image into a binary stencil.
func Generate(img image.Image, opts Options) *image.NRGBA {
	opts = opts.withDefaults()

	gray := imaging.Grayscale(img)
	mean := meanLuminance(gray)

	return imaging.AdjustFunc(gray, func(c color.NRGBA) color.NRGBA {
		boosted := mean + opts.ContrastFactor*(float64(c.R)-mean)

		v := uint8(0)
		if boosted >= float64(opts.Threshold) {
			v = 255
		}
		return color.NRGBA{R: v, G: v, B: v, A: 255}
	})
}

// Save writes a stencil PNG, creating the parent directory if needed.
func Save(img image.Image, path string) error {
	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create output directory: %w", err)
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()

	if err := png.Encode(f, img); err != nil {
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return nil
}

// meanLuminance averages the red channel of an already-grayscaled
// image.
func meanLuminance(gray *image.NRGBA) float64 {
	b := gray.Bounds()
	n := b.Dx() * b.Dy()
	if n == 0 {
		return 0
	}

	var sum float64
	for i := 0; i < len(gray.Pix); i += 4 {
		sum += float64(gray.Pix[i])
	}
	return sum / float64(n)
}
