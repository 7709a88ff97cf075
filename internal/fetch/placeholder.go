package fetch

import (
	"fmt"
	"image"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font/gofont/gobold"
)

// Placeholder draws a labelled stand-in tile for a volume whose cover
// could not be fetched, sized like a typical portrait cover.
func Placeholder(volume, width, height int) image.Image {
	dc := gg.NewContext(width, height)

	dc.SetRGB255(0x3a, 0x3f, 0x4b)
	dc.Clear()

	dc.SetRGB255(0x8a, 0x91, 0xa3)
	dc.SetLineWidth(float64(height) / 80)
	inset := float64(height) / 24
	dc.DrawRectangle(inset, inset, float64(width)-2*inset, float64(height)-2*inset)
	dc.Stroke()

	if ft, err := truetype.Parse(gobold.TTF); err == nil {
		size := float64(height) / 12
		dc.SetFontFace(truetype.NewFace(ft, &truetype.Options{Size: size}))
		dc.SetRGB255(0xd8, 0xdc, 0xe4)
		dc.DrawStringAnchored("Volume", float64(width)/2, float64(height)/2-size*0.7, 0.5, 0.5)
		dc.DrawStringAnchored(fmt.Sprintf("%d", volume), float64(width)/2, float64(height)/2+size*0.7, 0.5, 0.5)
	}

	return dc.Image()
}
