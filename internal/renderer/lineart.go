package renderer

import (
	"fmt"
	"image"
	"image/draw"

	"github.com/disintegration/imaging"
)

// lineartLayer renders the background line art: the image is fitted to
// the canvas width, faded to the configured alpha and centred
// vertically.
func (r *Renderer) lineartLayer(c canvas) (Layer, error) {
	cfg := r.Config

	img, err := imaging.Open(cfg.LineartPath)
	if err != nil {
		return Layer{}, fmt.Errorf("open %s: %w", cfg.LineartPath, err)
	}

	fitted := resizeToWidth(img, c.width)
	faded := scaleAlpha(fitted, cfg.LineartAlpha)

	bounds := image.Rect(0, 0, c.width, c.height)
	layer := image.NewNRGBA(bounds)
	yOffset := (c.height - faded.Bounds().Dy()) / 2
	draw.Draw(layer, faded.Bounds().Add(image.Pt(0, yOffset)), faded, image.Point{}, draw.Over)

	return Layer{Name: "Line Art", Image: layer}, nil
}
