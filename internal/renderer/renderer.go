// Package renderer composes the schedule poster: it lays out the grid,
// draws the frame shadows, borders and clipped cover images, and stacks
// everything into named layers ready for PNG or OpenRaster export.
package renderer

import (
	"context"
	"fmt"
	"image"
	"image/color"

	"github.com/Ribelio/Schedule-Poster-Generator/internal/config"
	"github.com/Ribelio/Schedule-Poster-Generator/internal/fetch"
	"github.com/Ribelio/Schedule-Poster-Generator/internal/frame"
	"github.com/Ribelio/Schedule-Poster-Generator/internal/geometry"
	"github.com/Ribelio/Schedule-Poster-Generator/internal/schedule"
)

// Covers are sized slightly wider than the frame's bounding box so the
// border never exposes a sliver of background.
const coverPaddingFactor = 1.05

// Border stroke width in points, converted to pixels at render time.
const borderLineWidth = 4.0

// Fallback placeholder dimensions, matching a typical portrait cover.
const (
	placeholderWidth  = 600
	placeholderHeight = 900
)

// ImageSource loads a cover image from a URL or local path.
type ImageSource interface {
	Load(ctx context.Context, source string) (image.Image, error)
}

// Progress is called as covers are drawn, for driving a progress bar.
type Progress func(completed, total int, label string)

// Renderer renders a poster from a loaded configuration document.
type Renderer struct {
	Config    config.Config
	Schedule  schedule.Schedule
	CoverURLs map[int]string

	// Source loads cover images. Nil renders every volume as a
	// placeholder, which keeps offline rendering deterministic.
	Source ImageSource

	// Progress, when set, receives per-volume completion updates.
	Progress Progress

	// Warnf, when set, receives non-fatal rendering problems such as a
	// cover that failed to download.
	Warnf func(format string, args ...any)
}

// New builds a Renderer for a configuration document using the default
// HTTP-backed image source.
func New(doc config.Document) *Renderer {
	return &Renderer{
		Config:    doc.Config,
		Schedule:  doc.Schedule,
		CoverURLs: doc.CoverURLs,
		Source:    fetch.NewLoader(),
	}
}

// Render lays out and draws the poster.
func (r *Renderer) Render(ctx context.Context) (*Poster, error) {
	cfg := r.Config

	fonts, err := loadFonts()
	if err != nil {
		return nil, err
	}

	fr := frame.FromPreset(cfg.Shape.Type, frame.Options{
		Width:         cfg.Shape.Width,
		Height:        cfg.Shape.Height,
		Spacing:       cfg.Shape.Spacing,
		BorderColor:   cfg.Shape.BorderColor,
		ShadowAlpha:   cfg.Shape.ShadowAlpha,
		SkewAngle:     cfg.Shape.SkewAngle,
		RotationAngle: cfg.Shape.RotationAngle,
	})
	stagger := geometry.StaggerFromPreset(cfg.Stagger.Type, cfg.Stagger.Offset)

	params := geometry.Params{
		Cols:              cfg.Cols,
		FrameWidth:        fr.Width,
		FrameSpacing:      fr.Spacing,
		HorizontalPadding: cfg.HorizontalPadding,
		ColumnSpacing:     cfg.ColumnSpacing,
		TitleRowHeight:    cfg.TitleRowHeight,
		VerticalPadding:   cfg.VerticalPadding,
		BottomMargin:      cfg.BottomMargin,
	}
	layout := geometry.Compute(r.Schedule, params)
	c := newCanvas(layout.FigWidth, layout.FigHeight, cfg.DPI)

	bg := config.MustColor(cfg.BackgroundColor)
	poster := &Poster{
		Width:      c.width,
		Height:     c.height,
		DPI:        cfg.DPI,
		Background: bg,
	}

	poster.Layers = append(poster.Layers, r.backgroundLayer(c, bg))

	if cfg.LineartEnabled {
		if lineart, err := r.lineartLayer(c); err != nil {
			r.warnf("background line art skipped: %v", err)
		} else {
			poster.Layers = append(poster.Layers, lineart)
		}
	}

	poster.Layers = append(poster.Layers, r.titleLayer(c, layout, fonts, bg))

	total := 0
	for _, entry := range r.Schedule {
		total += len(entry.Volumes)
	}

	completed := 0
	for i, entry := range r.Schedule {
		cellX, cellY := layout.CellCenter(i, params)

		poster.Layers = append(poster.Layers,
			r.dateLayer(c, entry, fr, cellX, cellY, fonts, bg),
			r.volumeTextLayer(c, entry, fr, cellX, cellY, fonts, bg),
		)

		n := len(entry.Volumes)
		scale := geometry.ScaleFactor(n, fr.Width, fr.Spacing)
		scaledW := fr.Width * scale
		scaledH := fr.Height * scale
		gap := geometry.ScaledSpacing(n, fr.Width, fr.Spacing, scaledW)

		groupWidth := float64(n)*scaledW + float64(n-1)*gap
		startX := cellX - groupWidth/2

		for j, vol := range entry.Volumes {
			frameX := startX + float64(j)*(scaledW+gap) + scaledW/2
			frameY := cellY + stagger.Offset(j, n)

			verts := fr.Vertices(frameX, frameY, scaledW, scaledH)

			poster.Layers = append(poster.Layers,
				r.shadowLayer(c, verts, fr.ShadowAlpha, vol),
				r.borderLayer(c, verts, fr.BorderColor, vol),
				r.coverLayer(ctx, c, verts, frameX, frameY, vol),
			)

			completed++
			if r.Progress != nil {
				r.Progress(completed, total, fmt.Sprintf("Volume %d", vol))
			}
		}
	}

	if cfg.QRURL != "" {
		if badge, err := r.qrLayer(c, cfg.QRURL); err != nil {
			r.warnf("QR badge skipped: %v", err)
		} else {
			poster.Layers = append(poster.Layers, badge)
		}
	}

	return poster, nil
}

func (r *Renderer) warnf(format string, args ...any) {
	if r.Warnf != nil {
		r.Warnf(format, args...)
	}
}

func (r *Renderer) backgroundLayer(c canvas, bg color.NRGBA) Layer {
	dc := c.layer()
	dc.SetColor(bg)
	dc.Clear()
	return Layer{Name: "Background", Image: dc.Image()}
}

func (r *Renderer) titleLayer(c canvas, layout geometry.Layout, fonts *fontSet, bg color.NRGBA) Layer {
	cfg := r.Config

	dc := c.layer()
	dc.SetFontFace(fonts.monoFace(c.points(float64(cfg.TitleFontSize))))

	titleY := layout.FigHeight - cfg.TitleRowHeight/2
	drawOutlinedString(dc, cfg.TitleText,
		c.x(layout.FigWidth/2), c.y(titleY),
		config.MustColor(cfg.TitleColor), bg, 3)

	return Layer{Name: "Title", Image: dc.Image()}
}

func (r *Renderer) dateLayer(c canvas, entry schedule.Entry, fr *frame.Frame, cellX, cellY float64, fonts *fontSet, bg color.NRGBA) Layer {
	cfg := r.Config

	dc := c.layer()
	dc.SetFontFace(fonts.monoFace(c.points(float64(cfg.DateFontSize))))

	dateY := cellY + fr.Height/2 + 0.4
	drawOutlinedString(dc, entry.Date,
		c.x(cellX), c.y(dateY),
		config.MustColor(cfg.TextColor), bg, 2)

	return Layer{Name: "Date " + entry.Date, Image: dc.Image()}
}

func (r *Renderer) volumeTextLayer(c canvas, entry schedule.Entry, fr *frame.Frame, cellX, cellY float64, fonts *fontSet, bg color.NRGBA) Layer {
	cfg := r.Config
	text := schedule.FormatVolumes(entry.Volumes)

	dc := c.layer()
	dc.SetFontFace(fonts.sansFace(c.points(float64(cfg.VolumeFontSize))))

	volY := cellY + fr.Height/2 + 0.15
	drawOutlinedString(dc, text,
		c.x(cellX), c.y(volY),
		config.MustColor(cfg.TextColor), bg, 2)

	return Layer{Name: "Label " + text, Image: dc.Image()}
}

func (r *Renderer) shadowLayer(c canvas, verts []frame.Point, alpha float64, vol int) Layer {
	dc := c.layer()
	c.tracePolygon(dc, frame.ShadowVertices(verts))
	dc.SetRGBA(0, 0, 0, alpha)
	dc.Fill()
	return Layer{Name: fmt.Sprintf("Volume %d Shadow", vol), Image: dc.Image()}
}

func (r *Renderer) borderLayer(c canvas, verts []frame.Point, borderColor string, vol int) Layer {
	dc := c.layer()
	c.tracePolygon(dc, verts)
	dc.SetColor(config.MustColor(borderColor))
	dc.SetLineWidth(c.points(borderLineWidth))
	dc.Stroke()
	return Layer{Name: fmt.Sprintf("Volume %d Border", vol), Image: dc.Image()}
}

// coverLayer loads, crops, resizes and clips one cover image into its
// frame polygon. A missing or failing cover degrades to a generated
// placeholder so the poster always renders completely.
func (r *Renderer) coverLayer(ctx context.Context, c canvas, verts []frame.Point, frameX, frameY float64, vol int) Layer {
	cfg := r.Config

	var img image.Image
	if source := r.CoverURLs[vol]; source != "" && r.Source != nil {
		loaded, err := r.Source.Load(ctx, source)
		if err != nil {
			r.warnf("volume %d cover: %v", vol, err)
		} else {
			img = loaded
		}
	}
	if img == nil {
		img = fetch.Placeholder(vol, placeholderWidth, placeholderHeight)
	}

	cropped := CenterCropZoom(img, cfg.ZoomFactor)

	bboxW, _ := frame.BoundingBox(verts)
	targetW := int(bboxW * c.ppu * coverPaddingFactor)
	resized := resizeToWidth(cropped, targetW)
	targetH := resized.Bounds().Dy()

	verticalShift := float64(targetH) * cfg.VerticalOffset
	x := c.x(frameX) - float64(targetW)/2
	y := c.y(frameY) - float64(targetH)/2 - verticalShift

	dc := c.layer()
	c.tracePolygon(dc, verts)
	dc.Clip()
	dc.DrawImage(resized, int(x), int(y))

	return Layer{Name: fmt.Sprintf("Volume %d Cover", vol), Image: dc.Image()}
}
