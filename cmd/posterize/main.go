package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/alecthomas/kong"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/Ribelio/Schedule-Poster-Generator/internal/cli"
	"github.com/Ribelio/Schedule-Poster-Generator/internal/config"
	"github.com/Ribelio/Schedule-Poster-Generator/internal/fetch"
	"github.com/Ribelio/Schedule-Poster-Generator/internal/ora"
	"github.com/Ribelio/Schedule-Poster-Generator/internal/renderer"
	"github.com/Ribelio/Schedule-Poster-Generator/internal/stencil"
	"github.com/Ribelio/Schedule-Poster-Generator/internal/ui"
)

// version is set via ldflags at build time
// Local dev builds: "dev"
// Release builds: git tag (e.g. "v0.1.0")
var version = "dev"

var CLI struct {
	Render  RenderCmd  `cmd:"" default:"withargs" help:"Render the schedule poster."`
	Stencil StencilCmd `cmd:"" help:"Create high-contrast background line art from an image."`
	Covers  CoversCmd  `cmd:"" help:"Look up volume cover URLs without rendering."`

	Version kong.VersionFlag `help:"Show version information"`
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name("posterize"),
		kong.Description("Turn a book club reading schedule into a layered poster of manga volume covers."),
		kong.Vars{"version": version},
		kong.UsageOnError(),
		kong.Help(cli.StyledHelpPrinter(kong.HelpOptions{Compact: true})),
	)

	if err := ctx.Run(); err != nil {
		cli.PrintError(err.Error())
		os.Exit(1)
	}
}

// loadDocument loads a config file, or the built-in defaults when no
// path is given.
func loadDocument(path string) (config.Document, error) {
	if path == "" {
		return config.DefaultDocument(), nil
	}
	return config.Load(path)
}

// RenderCmd renders the poster to a PNG or a layered OpenRaster file.
type RenderCmd struct {
	Config     string `help:"Path to a JSON or YAML config file" short:"c" placeholder:"file"`
	Output     string `help:"Output file path (defaults to the configured path)" short:"o" placeholder:"file"`
	Format     string `help:"Output format: png or ora (inferred from the output extension when unset)" enum:",png,ora" default:""`
	Title      string `help:"Override the poster title"`
	Manga      string `help:"Override the manga title used for cover lookup"`
	Offline    bool   `help:"Skip the cover lookup and use configured URLs only"`
	NoProgress bool   `help:"Disable the interactive progress display"`
}

func (c *RenderCmd) Run() error {
	doc, err := loadDocument(c.Config)
	if err != nil {
		return err
	}
	if c.Title != "" {
		doc.Config.TitleText = c.Title
	}
	if c.Manga != "" {
		doc.Config.MangaTitle = c.Manga
	}

	output := c.Output
	if output == "" {
		output = doc.Config.OutputPath()
		if c.Format == "ora" {
			output = strings.TrimSuffix(output, filepath.Ext(output)) + ".ora"
		}
	}

	format := c.Format
	if format == "" {
		format = "png"
		if strings.EqualFold(filepath.Ext(output), ".ora") {
			format = "ora"
		}
	}

	if c.NoProgress {
		return renderPlain(doc, output, format, c.Offline)
	}
	return renderInteractive(doc, output, format, c.Offline)
}

// renderPlain runs the render with line-at-a-time output, for scripts
// and dumb terminals.
func renderPlain(doc config.Document, output, format string, offline bool) error {
	cli.PrintBanner()

	start := time.Now()
	ctx := context.Background()

	covers, missing := resolveCovers(ctx, doc, doc.Schedule.UniqueVolumes(), offline, func(format string, args ...any) {
		cli.PrintWarning(fmt.Sprintf(format, args...))
	})
	cli.PrintInfo("Covers", fmt.Sprintf("%d resolved", len(covers)))
	if len(missing) > 0 {
		cli.PrintWarning(fmt.Sprintf("no cover found for volumes %v, using placeholders", missing))
	}

	r := renderer.New(doc)
	r.CoverURLs = covers
	r.Warnf = func(format string, args ...any) {
		cli.PrintWarning(fmt.Sprintf(format, args...))
	}

	poster, err := r.Render(ctx)
	if err != nil {
		return err
	}
	if err := exportPoster(poster, output, format); err != nil {
		return err
	}

	var size int64
	if info, err := os.Stat(output); err == nil {
		size = info.Size()
	}

	cli.PrintRenderSummary(
		output,
		fmt.Sprintf("%d×%d px", poster.Width, poster.Height),
		fmt.Sprintf("%d", len(poster.Layers)),
		cli.FormatBytes(size),
		cli.FormatDuration(time.Since(start)),
	)
	return nil
}

// renderInteractive runs the render behind the Bubbletea progress UI.
func renderInteractive(doc config.Document, output, format string, offline bool) error {
	model := ui.NewRenderModel()
	p := tea.NewProgram(model)

	var renderErr error

	go func() {
		start := time.Now()
		ctx := context.Background()

		if !offline && doc.Config.MangaTitle != "" {
			p.Send(ui.FetchStarted{Title: doc.Config.MangaTitle})
		}
		covers, missing := resolveCovers(ctx, doc, doc.Schedule.UniqueVolumes(), offline, func(format string, args ...any) {
			p.Send(ui.RenderWarning{Message: fmt.Sprintf(format, args...)})
		})
		p.Send(ui.FetchComplete{Resolved: len(covers), Missing: missing})

		r := renderer.New(doc)
		r.CoverURLs = covers
		r.Progress = func(completed, total int, label string) {
			p.Send(ui.RenderProgress{Completed: completed, Total: total, Label: label})
		}
		r.Warnf = func(format string, args ...any) {
			p.Send(ui.RenderWarning{Message: fmt.Sprintf(format, args...)})
		}

		poster, err := r.Render(ctx)
		if err == nil {
			err = exportPoster(poster, output, format)
		}
		if err != nil {
			renderErr = err
			p.Send(ui.RenderFailed{Err: err})
			return
		}

		p.Send(ui.RenderComplete{
			OutputFile: output,
			Width:      poster.Width,
			Height:     poster.Height,
			Layers:     len(poster.Layers),
			Duration:   time.Since(start),
		})
	}()

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running UI: %w", err)
	}
	return renderErr
}

// resolveCovers merges cover URLs fetched for the given volumes under
// the configured ones. A failed lookup degrades to the configured
// table with a warning.
func resolveCovers(ctx context.Context, doc config.Document, volumes []int, offline bool, warnf func(string, ...any)) (map[int]string, []int) {
	if offline || doc.Config.MangaTitle == "" {
		return doc.CoverURLs, nil
	}

	fetcher := fetch.NewFetcher()
	fetched, missing, err := fetcher.Covers(ctx, doc.Config.MangaTitle, volumes)
	if err != nil {
		warnf("cover lookup failed: %v", err)
		return doc.CoverURLs, nil
	}

	merged := fetch.MergeCoverURLs(fetched, doc.CoverURLs)

	// Volumes pinned in the config are not missing.
	var stillMissing []int
	for _, v := range missing {
		if merged[v] == "" {
			stillMissing = append(stillMissing, v)
		}
	}
	return merged, stillMissing
}

// exportPoster writes the poster as a flat PNG or a layered ORA.
func exportPoster(poster *renderer.Poster, output, format string) error {
	if format != "ora" {
		return poster.SavePNG(output)
	}

	w := ora.NewWriter(poster.Width, poster.Height)
	for _, l := range poster.Layers {
		w.AddLayer(l.Name, l.Image)
	}
	w.SetMerged(poster.Flatten())
	return w.Save(output)
}

// StencilCmd converts artwork into background line art.
type StencilCmd struct {
	Source   string  `arg:"" help:"Image URL or local path to convert"`
	Output   string  `arg:"" optional:"" help:"Output PNG path" default:"output/images/background_lineart.png"`
	Contrast float64 `help:"Contrast boost factor" default:"2.5"`
	Thresh   int     `help:"Black/white luminance threshold (0-255)" name:"threshold" default:"128"`
}

func (c *StencilCmd) Run() error {
	cli.PrintBanner()

	if c.Thresh < 0 || c.Thresh > 255 {
		return fmt.Errorf("invalid threshold %d (must be 0-255)", c.Thresh)
	}

	cli.PrintInfo("Source", c.Source)

	loader := fetch.NewLoader()
	img, err := loader.Load(context.Background(), c.Source)
	if err != nil {
		return err
	}

	out := stencil.Generate(img, stencil.Options{
		ContrastFactor: c.Contrast,
		Threshold:      uint8(c.Thresh),
	})
	if err := stencil.Save(out, c.Output); err != nil {
		return err
	}

	cli.PrintSuccess(fmt.Sprintf("Saved high-contrast stencil: %s", c.Output))
	return nil
}

// CoversCmd resolves and prints cover URLs for the scheduled volumes,
// or for an explicit volume list.
type CoversCmd struct {
	Config  string `help:"Path to a JSON or YAML config file" short:"c" placeholder:"file"`
	Manga   string `help:"Override the manga title used for cover lookup"`
	Volumes []int  `help:"Volume numbers to look up (defaults to the scheduled volumes)"`
}

func (c *CoversCmd) Run() error {
	doc, err := loadDocument(c.Config)
	if err != nil {
		return err
	}
	if c.Manga != "" {
		doc.Config.MangaTitle = c.Manga
	}

	volumes := c.Volumes
	if len(volumes) == 0 {
		volumes = doc.Schedule.UniqueVolumes()
	}

	cli.PrintBanner()
	cli.PrintSection(fmt.Sprintf("Covers for %s", doc.Config.MangaTitle))

	covers, missing := resolveCovers(context.Background(), doc, volumes, false, func(format string, args ...any) {
		cli.PrintWarning(fmt.Sprintf(format, args...))
	})

	volumes = make([]int, 0, len(covers))
	for v := range covers {
		volumes = append(volumes, v)
	}
	sort.Ints(volumes)

	for _, v := range volumes {
		cli.PrintInfo(fmt.Sprintf("Volume %d", v), covers[v])
	}
	if len(missing) > 0 {
		cli.PrintWarning(fmt.Sprintf("no cover found for volumes %v", missing))
	}
	return nil
}
