package config

import (
	"os"
	"path/filepath"
	"testing"
)

// TestParseJSON_FullDocument verifies the {config, schedule,
// cover_urls} file shape, including the historical tuple form of
// schedule entries and string volume keys in cover_urls.
func TestParseJSON_FullDocument(t *testing.T) {
	data := []byte(`{
		"config": {
			"manga_title": "Test Manga",
			"zoom_factor": 1.2,
			"cols": 2,
			"shape_preset": {
				"type": "rhombus",
				"width": 3.0,
				"height": 3.0,
				"rotation_angle": 45
			}
		},
		"schedule": [
			["January 3, 2026", [1]],
			["January 10, 2026", [2, 3]]
		],
		"cover_urls": {
			"1": "https://example.com/v1.jpg",
			"2": "https://example.com/v2.jpg"
		}
	}`)

	doc, err := ParseJSON(data)
	if err != nil {
		t.Fatalf("ParseJSON returned error: %v", err)
	}

	if doc.Config.MangaTitle != "Test Manga" {
		t.Errorf("MangaTitle = %q, want %q", doc.Config.MangaTitle, "Test Manga")
	}
	if doc.Config.ZoomFactor != 1.2 {
		t.Errorf("ZoomFactor = %v, want 1.2", doc.Config.ZoomFactor)
	}
	if doc.Config.Cols != 2 {
		t.Errorf("Cols = %d, want 2", doc.Config.Cols)
	}
	if doc.Config.Shape.Type != "rhombus" || doc.Config.Shape.RotationAngle != 45 {
		t.Errorf("Shape = %+v, want rhombus rotated 45", doc.Config.Shape)
	}

	// Fields absent from the file keep their defaults.
	if doc.Config.DPI != DefaultDPI {
		t.Errorf("DPI = %d, want default %d", doc.Config.DPI, DefaultDPI)
	}
	if doc.Config.BackgroundColor != "#1a1a1a" {
		t.Errorf("BackgroundColor = %q, want default #1a1a1a", doc.Config.BackgroundColor)
	}

	if len(doc.Schedule) != 2 {
		t.Fatalf("schedule has %d entries, want 2", len(doc.Schedule))
	}
	if doc.Schedule[0].Date != "January 3, 2026" {
		t.Errorf("entry 0 date = %q", doc.Schedule[0].Date)
	}
	if len(doc.Schedule[1].Volumes) != 2 || doc.Schedule[1].Volumes[0] != 2 {
		t.Errorf("entry 1 volumes = %v, want [2 3]", doc.Schedule[1].Volumes)
	}

	if doc.CoverURLs[1] != "https://example.com/v1.jpg" {
		t.Errorf("cover URL 1 = %q", doc.CoverURLs[1])
	}
	if len(doc.CoverURLs) != 2 {
		t.Errorf("cover_urls has %d entries, want 2", len(doc.CoverURLs))
	}
}

// TestParseJSON_FlatPreset verifies the GUI preset shape: bare Config
// fields at the top level, with schedule and cover URLs falling back to
// the built-in data.
func TestParseJSON_FlatPreset(t *testing.T) {
	data := []byte(`{"manga_title": "Preset Manga", "title_text": "My Club"}`)

	doc, err := ParseJSON(data)
	if err != nil {
		t.Fatalf("ParseJSON returned error: %v", err)
	}

	if doc.Config.MangaTitle != "Preset Manga" {
		t.Errorf("MangaTitle = %q, want %q", doc.Config.MangaTitle, "Preset Manga")
	}
	if doc.Config.TitleText != "My Club" {
		t.Errorf("TitleText = %q, want %q", doc.Config.TitleText, "My Club")
	}

	defaults := DefaultDocument()
	if len(doc.Schedule) != len(defaults.Schedule) {
		t.Errorf("schedule has %d entries, want default %d",
			len(doc.Schedule), len(defaults.Schedule))
	}
	if len(doc.CoverURLs) != len(defaults.CoverURLs) {
		t.Errorf("cover_urls has %d entries, want default %d",
			len(doc.CoverURLs), len(defaults.CoverURLs))
	}
}

// TestParseJSON_UnknownShape verifies the permissive fallback: a file
// with none of the recognised keys yields the defaults untouched.
func TestParseJSON_UnknownShape(t *testing.T) {
	doc, err := ParseJSON([]byte(`{"something": "else"}`))
	if err != nil {
		t.Fatalf("ParseJSON returned error: %v", err)
	}
	if doc.Config.MangaTitle != Default().MangaTitle {
		t.Errorf("MangaTitle = %q, want default", doc.Config.MangaTitle)
	}
}

// TestParseJSON_Malformed verifies that syntactically broken files
// report an error instead of silently rendering the default poster.
func TestParseJSON_Malformed(t *testing.T) {
	if _, err := ParseJSON([]byte(`{"config": `)); err == nil {
		t.Error("expected error for truncated JSON, got nil")
	}
}

// TestParseYAML_FullDocument verifies the YAML flavour of the full
// document shape, including mapping-style schedule entries.
func TestParseYAML_FullDocument(t *testing.T) {
	data := []byte(`
config:
  manga_title: Yaml Manga
  cols: 4
  stagger_preset:
    type: staircase
    offset: 0.5
schedule:
  - date: February 7, 2026
    volumes: [1, 2]
  - ["February 14, 2026", [3]]
cover_urls:
  1: https://example.com/v1.png
`)

	doc, err := ParseYAML(data)
	if err != nil {
		t.Fatalf("ParseYAML returned error: %v", err)
	}

	if doc.Config.MangaTitle != "Yaml Manga" {
		t.Errorf("MangaTitle = %q, want %q", doc.Config.MangaTitle, "Yaml Manga")
	}
	if doc.Config.Cols != 4 {
		t.Errorf("Cols = %d, want 4", doc.Config.Cols)
	}
	if doc.Config.Stagger.Type != "staircase" || doc.Config.Stagger.Offset != 0.5 {
		t.Errorf("Stagger = %+v, want staircase 0.5", doc.Config.Stagger)
	}

	if len(doc.Schedule) != 2 {
		t.Fatalf("schedule has %d entries, want 2", len(doc.Schedule))
	}
	if doc.Schedule[0].Date != "February 7, 2026" {
		t.Errorf("entry 0 date = %q", doc.Schedule[0].Date)
	}
	if doc.Schedule[1].Date != "February 14, 2026" || len(doc.Schedule[1].Volumes) != 1 {
		t.Errorf("entry 1 = %+v, want tuple form decoded", doc.Schedule[1])
	}

	if doc.CoverURLs[1] != "https://example.com/v1.png" {
		t.Errorf("cover URL 1 = %q", doc.CoverURLs[1])
	}
}

// TestLoad_PicksCodecByExtension verifies that Load dispatches on the
// file extension.
func TestLoad_PicksCodecByExtension(t *testing.T) {
	dir := t.TempDir()

	jsonPath := filepath.Join(dir, "preset.json")
	if err := os.WriteFile(jsonPath, []byte(`{"manga_title": "From JSON"}`), 0o644); err != nil {
		t.Fatal(err)
	}
	yamlPath := filepath.Join(dir, "preset.yaml")
	if err := os.WriteFile(yamlPath, []byte("manga_title: From YAML\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	doc, err := Load(jsonPath)
	if err != nil {
		t.Fatalf("Load(json) returned error: %v", err)
	}
	if doc.Config.MangaTitle != "From JSON" {
		t.Errorf("json MangaTitle = %q", doc.Config.MangaTitle)
	}

	doc, err = Load(yamlPath)
	if err != nil {
		t.Fatalf("Load(yaml) returned error: %v", err)
	}
	if doc.Config.MangaTitle != "From YAML" {
		t.Errorf("yaml MangaTitle = %q", doc.Config.MangaTitle)
	}

	if _, err := Load(filepath.Join(dir, "missing.json")); err == nil {
		t.Error("Load(missing file) expected error, got nil")
	}
}
