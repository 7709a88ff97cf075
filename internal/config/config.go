// Package config holds the poster configuration: visual constants, the
// shape and stagger presets, and the loader for JSON/YAML config files.
package config

import "github.com/Ribelio/Schedule-Poster-Generator/internal/schedule"

// Image processing settings
const (
	// Center-crop-zoom factor: higher values zoom further into the
	// centre of each cover, trimming title text at the top and bottom.
	DefaultZoomFactor = 0.95

	// Vertical offset for cover positioning as a fraction of the
	// fitted image height (negative shifts the image down).
	DefaultVerticalOffset = -0.1
)

// Layout settings
const (
	DefaultCols              = 3
	DefaultTitleRowHeight    = 3.0
	DefaultVerticalPadding   = 1.0
	DefaultBottomMargin      = 1.0
	DefaultHorizontalPadding = -1.0
	DefaultColumnSpacing     = 0.2
)

// Text settings
const (
	DefaultTitleFontSize  = 42
	DefaultDateFontSize   = 18
	DefaultVolumeFontSize = 14
)

// Output settings
const (
	DefaultDPI            = 200
	DefaultOutputDir      = "output/images"
	DefaultOutputFilename = "choujin_x_schedule.png"
)

// ShapePreset selects and parameterises the frame shape.
type ShapePreset struct {
	Type          string  `json:"type" yaml:"type"` // "parallelogram" or "rhombus"
	Width         float64 `json:"width" yaml:"width"`
	Height        float64 `json:"height" yaml:"height"`
	Spacing       float64 `json:"spacing" yaml:"spacing"`
	BorderColor   string  `json:"border_color" yaml:"border_color"`
	ShadowAlpha   float64 `json:"shadow_alpha" yaml:"shadow_alpha"`
	SkewAngle     float64 `json:"skew_angle" yaml:"skew_angle"`         // parallelogram, degrees
	RotationAngle float64 `json:"rotation_angle" yaml:"rotation_angle"` // rhombus, degrees
}

// StaggerPreset selects the vertical stagger applied within a frame
// group.
type StaggerPreset struct {
	Type   string  `json:"type" yaml:"type"` // "none", "alternating" or "staircase"
	Offset float64 `json:"offset" yaml:"offset"`
}

// Config is the full set of poster settings. Field names mirror the
// keys accepted in config files.
type Config struct {
	MangaTitle string `json:"manga_title" yaml:"manga_title"`

	ZoomFactor     float64 `json:"zoom_factor" yaml:"zoom_factor"`
	VerticalOffset float64 `json:"vertical_offset" yaml:"vertical_offset"`

	Cols              int     `json:"cols" yaml:"cols"`
	TitleRowHeight    float64 `json:"title_row_height" yaml:"title_row_height"`
	VerticalPadding   float64 `json:"vertical_padding" yaml:"vertical_padding"`
	BottomMargin      float64 `json:"bottom_margin" yaml:"bottom_margin"`
	HorizontalPadding float64 `json:"horizontal_padding" yaml:"horizontal_padding"`
	ColumnSpacing     float64 `json:"column_spacing" yaml:"column_spacing"`

	Shape   ShapePreset   `json:"shape_preset" yaml:"shape_preset"`
	Stagger StaggerPreset `json:"stagger_preset" yaml:"stagger_preset"`

	TitleText     string `json:"title_text" yaml:"title_text"`
	TitleFontSize int    `json:"title_fontsize" yaml:"title_fontsize"`
	TitleColor    string `json:"title_color" yaml:"title_color"`

	DateFontSize   int    `json:"date_fontsize" yaml:"date_fontsize"`
	VolumeFontSize int    `json:"volume_fontsize" yaml:"volume_fontsize"`
	TextColor      string `json:"text_color" yaml:"text_color"`

	BackgroundColor string `json:"background_color" yaml:"background_color"`

	LineartEnabled bool    `json:"background_lineart_enabled" yaml:"background_lineart_enabled"`
	LineartPath    string  `json:"background_lineart_path" yaml:"background_lineart_path"`
	LineartAlpha   float64 `json:"background_lineart_alpha" yaml:"background_lineart_alpha"`

	// Optional link rendered as a QR badge in the bottom-right corner,
	// e.g. the book club's discussion thread. Empty disables the badge.
	QRURL string `json:"qr_url" yaml:"qr_url"`

	OutputDir      string `json:"output_dir" yaml:"output_dir"`
	OutputFilename string `json:"output_filename" yaml:"output_filename"`
	DPI            int    `json:"dpi" yaml:"dpi"`
}

// Default returns the stock configuration the tool ships with.
func Default() Config {
	return Config{
		MangaTitle: "Choujin X",

		ZoomFactor:     DefaultZoomFactor,
		VerticalOffset: DefaultVerticalOffset,

		Cols:              DefaultCols,
		TitleRowHeight:    DefaultTitleRowHeight,
		VerticalPadding:   DefaultVerticalPadding,
		BottomMargin:      DefaultBottomMargin,
		HorizontalPadding: DefaultHorizontalPadding,
		ColumnSpacing:     DefaultColumnSpacing,

		Shape: ShapePreset{
			Type:        "parallelogram",
			Width:       2.8,
			Height:      3.5,
			Spacing:     0.5,
			BorderColor: "white",
			ShadowAlpha: 0.4,
			SkewAngle:   15,
		},
		Stagger: StaggerPreset{
			Type:   "none",
			Offset: 0.3,
		},

		TitleText:     "Choujin X Book Club Schedule",
		TitleFontSize: DefaultTitleFontSize,
		TitleColor:    "white",

		DateFontSize:   DefaultDateFontSize,
		VolumeFontSize: DefaultVolumeFontSize,
		TextColor:      "white",

		BackgroundColor: "#1a1a1a",

		LineartEnabled: true,
		LineartPath:    "output/images/background_lineart.png",
		LineartAlpha:   0.15,

		OutputDir:      DefaultOutputDir,
		OutputFilename: DefaultOutputFilename,
		DPI:            DefaultDPI,
	}
}

// OutputPath joins the configured output directory and filename.
func (c Config) OutputPath() string {
	if c.OutputDir == "" {
		return c.OutputFilename
	}
	return c.OutputDir + "/" + c.OutputFilename
}

// Document is a fully loaded configuration: the poster settings plus
// the schedule data and the static volume-to-URL table.
type Document struct {
	Config    Config
	Schedule  schedule.Schedule
	CoverURLs map[int]string
}

// DefaultDocument returns the stock configuration together with the
// built-in schedule and cover URL table.
func DefaultDocument() Document {
	return Document{
		Config:    Default(),
		Schedule:  DefaultSchedule(),
		CoverURLs: DefaultCoverURLs(),
	}
}
