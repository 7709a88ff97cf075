package renderer

import (
	"fmt"
	"image/color"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gomonobold"
	"golang.org/x/image/font/gofont/goregular"
)

// fontSet holds the parsed typefaces the poster uses: a bold
// monospaced face for the title and dates, a clean sans face for the
// volume labels.
type fontSet struct {
	mono *truetype.Font
	sans *truetype.Font
}

func loadFonts() (*fontSet, error) {
	mono, err := truetype.Parse(gomonobold.TTF)
	if err != nil {
		return nil, fmt.Errorf("parse mono font: %w", err)
	}
	sans, err := truetype.Parse(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("parse sans font: %w", err)
	}
	return &fontSet{mono: mono, sans: sans}, nil
}

// monoFace builds the title/date face at the given pixel size.
func (f *fontSet) monoFace(sizePx float64) font.Face {
	return truetype.NewFace(f.mono, &truetype.Options{Size: sizePx, DPI: 72})
}

// sansFace builds the volume label face at the given pixel size.
func (f *fontSet) sansFace(sizePx float64) font.Face {
	return truetype.NewFace(f.sans, &truetype.Options{Size: sizePx, DPI: 72})
}

// drawOutlinedString draws centred text with a stroke effect: the text
// is stamped in the outline colour at every offset within the outline
// radius, then once more in the fill colour on top.
func drawOutlinedString(dc *gg.Context, s string, x, y float64, fill, outline color.NRGBA, width int) {
	if width > 0 {
		dc.SetColor(outline)
		for dy := -width; dy <= width; dy++ {
			for dx := -width; dx <= width; dx++ {
				if dx*dx+dy*dy > width*width {
					continue
				}
				dc.DrawStringAnchored(s, x+float64(dx), y+float64(dy), 0.5, 0.5)
			}
		}
	}

	dc.SetColor(fill)
	dc.DrawStringAnchored(s, x, y, 0.5, 0.5)
}
