// Package geometry computes the poster grid: how large the canvas must
// be, where each schedule cell sits, and how much a row of frames must
// shrink to fit its cell. All values are in figure units; the renderer
// converts to pixels at the configured DPI.
package geometry

import "github.com/Ribelio/Schedule-Poster-Generator/internal/schedule"

// Params are the layout constants the grid is computed from.
type Params struct {
	Cols              int
	FrameWidth        float64
	FrameSpacing      float64
	HorizontalPadding float64
	ColumnSpacing     float64
	TitleRowHeight    float64
	VerticalPadding   float64
	BottomMargin      float64
}

// Layout is the computed poster grid.
type Layout struct {
	FigWidth    float64
	FigHeight   float64
	CellWidth   float64
	CellHeight  float64
	ContentRows int
}

// Each content row is allotted this many figure units of height before
// padding is subtracted.
const rowHeightUnits = 5.0

// ReferenceWidth is the width of a two-frame row: the widest a group of
// frames is allowed to be. Rows with more volumes are scaled down to it.
func ReferenceWidth(frameWidth, frameSpacing float64) float64 {
	return 2*frameWidth + frameSpacing
}

// ScaleFactor returns the shrink factor applied to each frame in a
// group of numVols so the group occupies no more than the reference
// width. Groups of one or two frames are never scaled up: the factor is
// capped at 1.0.
func ScaleFactor(numVols int, frameWidth, frameSpacing float64) float64 {
	if numVols <= 0 {
		return 1.0
	}

	reference := ReferenceWidth(frameWidth, frameSpacing)
	unscaled := float64(numVols)*frameWidth + float64(numVols-1)*frameSpacing
	if unscaled <= 0 {
		return 1.0
	}

	factor := reference / unscaled
	if factor > 1.0 {
		factor = 1.0
	}
	return factor
}

// ScaledSpacing returns the gap between frames in a group once the
// frames themselves have been scaled: the leftover reference width is
// distributed evenly between the gaps. A single frame has no gaps.
func ScaledSpacing(numVols int, frameWidth, frameSpacing, scaledFrameWidth float64) float64 {
	if numVols <= 1 {
		return 0
	}
	reference := ReferenceWidth(frameWidth, frameSpacing)
	leftover := reference - float64(numVols)*scaledFrameWidth
	return leftover / float64(numVols-1)
}

// MaxItemWidth returns the width of the widest schedule entry. Entries
// with one or two volumes use their natural width; entries with three
// or more are clamped to the reference width because they get scaled
// down to it.
func MaxItemWidth(s schedule.Schedule, frameWidth, frameSpacing float64) float64 {
	reference := ReferenceWidth(frameWidth, frameSpacing)

	var max float64
	for _, entry := range s {
		n := len(entry.Volumes)
		if n == 0 {
			continue
		}

		var w float64
		if n <= 2 {
			w = float64(n)*frameWidth + float64(n-1)*frameSpacing
		} else {
			w = reference
		}
		if w > max {
			max = w
		}
	}
	return max
}

// Compute derives the poster grid for a schedule.
func Compute(s schedule.Schedule, p Params) Layout {
	rows := s.Rows(p.Cols)

	cellWidth := MaxItemWidth(s, p.FrameWidth, p.FrameSpacing) + 2*p.HorizontalPadding
	figWidth := float64(p.Cols)*cellWidth + float64(p.Cols-1)*p.ColumnSpacing
	figHeight := p.TitleRowHeight + float64(rows)*rowHeightUnits

	var cellHeight float64
	if rows > 0 {
		contentHeight := figHeight - p.TitleRowHeight - p.BottomMargin
		cellHeight = (contentHeight - float64(rows-1)*p.VerticalPadding) / float64(rows)
	}

	return Layout{
		FigWidth:    figWidth,
		FigHeight:   figHeight,
		CellWidth:   cellWidth,
		CellHeight:  cellHeight,
		ContentRows: rows,
	}
}

// CellCenter returns the centre of the cell for the idx-th schedule
// entry, in figure units with the origin at the bottom-left and y
// increasing upward.
func (l Layout) CellCenter(idx int, p Params) (x, y float64) {
	row := idx / p.Cols
	col := idx % p.Cols

	x = float64(col)*(l.CellWidth+p.ColumnSpacing) + l.CellWidth/2

	startY := l.FigHeight - p.TitleRowHeight
	y = startY - float64(row)*(l.CellHeight+p.VerticalPadding) - l.CellHeight/2
	return x, y
}
