package renderer

import (
	"bytes"
	"fmt"
	"image"
	"image/draw"
	"image/png"

	qrcode "github.com/skip2/go-qrcode"
)

// QR badge geometry in figure units.
const (
	qrSizeUnits   = 1.2
	qrMarginUnits = 0.25
)

// qrLayer draws a QR code badge in the bottom-right corner linking to
// the configured URL.
func (r *Renderer) qrLayer(c canvas, url string) (Layer, error) {
	size := int(qrSizeUnits * c.ppu)

	pngBytes, err := qrcode.Encode(url, qrcode.Medium, size)
	if err != nil {
		return Layer{}, fmt.Errorf("encode QR code: %w", err)
	}
	badge, err := png.Decode(bytes.NewReader(pngBytes))
	if err != nil {
		return Layer{}, fmt.Errorf("decode QR code: %w", err)
	}

	margin := int(qrMarginUnits * c.ppu)
	pos := image.Pt(c.width-size-margin, c.height-size-margin)

	bounds := image.Rect(0, 0, c.width, c.height)
	layer := image.NewNRGBA(bounds)
	draw.Draw(layer, badge.Bounds().Add(pos), badge, image.Point{}, draw.Over)

	return Layer{Name: "QR Link", Image: layer}, nil
}
