package renderer

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"os"
	"path/filepath"
)

// Layer is one stage of the poster composition. Layers are stacked
// bottom to top and are all canvas-sized, so they translate directly
// into OpenRaster layers.
type Layer struct {
	Name  string
	Image image.Image
}

// Poster is a rendered schedule poster: the layer stack plus the
// canvas metadata needed to flatten or export it.
type Poster struct {
	Width      int
	Height     int
	DPI        int
	Background color.NRGBA
	Layers     []Layer
}

// Flatten composites the layer stack onto an opaque background.
func (p *Poster) Flatten() *image.NRGBA {
	bounds := image.Rect(0, 0, p.Width, p.Height)
	flat := image.NewNRGBA(bounds)
	draw.Draw(flat, bounds, image.NewUniform(p.Background), image.Point{}, draw.Src)

	for _, l := range p.Layers {
		if l.Image == nil {
			continue
		}
		draw.Draw(flat, bounds, l.Image, image.Point{}, draw.Over)
	}
	return flat
}

// WritePNG flattens the poster and encodes it as PNG.
func (p *Poster) WritePNG(w io.Writer) error {
	return png.Encode(w, p.Flatten())
}

// SavePNG writes the flattened poster to a file, creating the parent
// directory if needed.
func (p *Poster) SavePNG(path string) error {
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

	if err := p.WritePNG(f); err != nil {
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return nil
}
