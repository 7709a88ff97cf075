package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Two file shapes are accepted, matching what the GUI and the CLI have
// historically written:
//
//   - the full document: {"config": {...}, "schedule": [...],
//     "cover_urls": {...}}, where schedule and cover_urls are optional
//     and default to the built-in data;
//   - the flat preset: bare Config fields at the top level, detected by
//     the presence of manga_title or zoom_factor.
//
// Anything else parses successfully but falls back to the defaults.

type codec struct {
	name      string
	marshal   func(any) ([]byte, error)
	unmarshal func([]byte, any) error
}

var (
	jsonCodec = codec{name: "json", marshal: json.Marshal, unmarshal: json.Unmarshal}
	yamlCodec = codec{name: "yaml", marshal: yaml.Marshal, unmarshal: yaml.Unmarshal}
)

// Load reads a config file. The extension picks the format: .yaml and
// .yml parse as YAML, everything else as JSON.
func Load(path string) (Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Document{}, fmt.Errorf("read config: %w", err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return parse(data, yamlCodec)
	default:
		return parse(data, jsonCodec)
	}
}

// ParseJSON parses a JSON config document.
func ParseJSON(data []byte) (Document, error) { return parse(data, jsonCodec) }

// ParseYAML parses a YAML config document.
func ParseYAML(data []byte) (Document, error) { return parse(data, yamlCodec) }

// parse decodes a config document with the given codec, layering the
// file's values over the defaults.
func parse(data []byte, c codec) (Document, error) {
	doc := DefaultDocument()

	var probe map[string]any
	if err := c.unmarshal(data, &probe); err != nil {
		return doc, fmt.Errorf("parse %s config: %w", c.name, err)
	}

	if sub, ok := probe["config"]; ok {
		if err := redecode(c, sub, &doc.Config); err != nil {
			return doc, fmt.Errorf("config section: %w", err)
		}
		if sub, ok := probe["schedule"]; ok {
			doc.Schedule = nil
			if err := redecode(c, sub, &doc.Schedule); err != nil {
				return doc, fmt.Errorf("schedule section: %w", err)
			}
		}
		if sub, ok := probe["cover_urls"]; ok {
			urls, err := decodeCoverURLs(c, sub)
			if err != nil {
				return doc, fmt.Errorf("cover_urls section: %w", err)
			}
			doc.CoverURLs = urls
		}
		return doc, nil
	}

	if _, ok := probe["manga_title"]; ok {
		if err := redecode(c, probe, &doc.Config); err != nil {
			return doc, fmt.Errorf("preset config: %w", err)
		}
		return doc, nil
	}
	if _, ok := probe["zoom_factor"]; ok {
		if err := redecode(c, probe, &doc.Config); err != nil {
			return doc, fmt.Errorf("preset config: %w", err)
		}
		return doc, nil
	}

	// Unknown shape: keep the defaults.
	return doc, nil
}

// redecode round-trips an already-parsed subtree into a typed
// destination, layering it over whatever dst already holds.
func redecode(c codec, v any, dst any) error {
	b, err := c.marshal(v)
	if err != nil {
		return err
	}
	return c.unmarshal(b, dst)
}

// decodeCoverURLs converts the volume keys, which both JSON and YAML
// deliver as strings, into ints.
func decodeCoverURLs(c codec, v any) (map[int]string, error) {
	var raw map[string]string
	if err := redecode(c, v, &raw); err != nil {
		return nil, err
	}

	urls := make(map[int]string, len(raw))
	for k, u := range raw {
		vol, err := strconv.Atoi(k)
		if err != nil {
			return nil, fmt.Errorf("volume key %q is not a number", k)
		}
		urls[vol] = u
	}
	return urls, nil
}
