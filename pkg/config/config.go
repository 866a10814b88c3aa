// Package config provides configuration loading and management.
package config

import (
	"fmt"
	"image/color"

	"gopkg.in/yaml.v3"

	"github.com/user/fatsim/pkg/clustermap"
	"github.com/user/fatsim/pkg/fat"
	"github.com/user/fatsim/pkg/ports"
	"github.com/user/fatsim/pkg/session"
)

// Config represents the full configuration for fatsim.
type Config struct {
	// Geometry
	MaxFiles    int `yaml:"max_files"`
	NumClusters int `yaml:"num_clusters"`
	ClusterSize int `yaml:"cluster_size"`

	// Logging
	LogLevel string `yaml:"log_level"`

	// Cluster map rendering
	Render RenderConfig `yaml:"render"`

	// Operations run by the run and render commands
	Script []StepConfig `yaml:"script"`
}

// RenderConfig represents cluster map options.
type RenderConfig struct {
	CellSize    int      `yaml:"cell_size"`
	Columns     int      `yaml:"columns"`
	Padding     int      `yaml:"padding"`
	Background  string   `yaml:"background_color"`
	FreeColor   string   `yaml:"free_color"`
	BorderColor string   `yaml:"border_color"`
	TextColor   string   `yaml:"text_color"`
	Palette     []string `yaml:"palette"`
}

// StepConfig is one scripted operation.
type StepConfig struct {
	Op   string `yaml:"op"`
	Name string `yaml:"name,omitempty"`
	Size int    `yaml:"size,omitempty"`
}

// Defaults returns a Config with default values.
func Defaults() Config {
	return Config{
		MaxFiles:    fat.DefaultMaxFiles,
		NumClusters: fat.DefaultNumClusters,
		ClusterSize: fat.DefaultClusterSize,

		LogLevel: "info",

		Render: RenderConfig{
			CellSize:    72,
			Columns:     6,
			Padding:     16,
			Background:  "#1a1a2e",
			FreeColor:   "#3a3a55",
			BorderColor: "#333355",
			TextColor:   "#ffffff",
			Palette: []string{
				"#4ade80", "#60a5fa", "#f472b6", "#facc15",
				"#fb923c", "#a78bfa", "#2dd4bf", "#f87171",
			},
		},
	}
}

// Load reads path through storage and parses it over the defaults.
func Load(storage ports.Storage, path string) (Config, error) {
	data, err := storage.ReadFile(path)
	if err != nil {
		return Defaults(), err
	}
	return Parse(data, path)
}

// Parse decodes YAML over the defaults. source names the input in errors.
func Parse(data []byte, source string) (Config, error) {
	cfg := Defaults()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse %s: %w", source, err)
	}
	return cfg, nil
}

// Geometry returns the filesystem geometry.
func (c Config) Geometry() fat.Geometry {
	return fat.Geometry{
		MaxFiles:    c.MaxFiles,
		NumClusters: c.NumClusters,
		ClusterSize: c.ClusterSize,
	}
}

// Steps converts the script to session steps.
func (c Config) Steps() ([]session.Step, error) {
	steps := make([]session.Step, 0, len(c.Script))
	for i, s := range c.Script {
		op, err := session.ParseOp(s.Op)
		if err != nil {
			return nil, fmt.Errorf("script step %d: %w", i+1, err)
		}
		steps = append(steps, session.Step{Op: op, Name: s.Name, Size: s.Size})
	}
	return steps, nil
}

// ToStyle converts the render options to a cluster map style.
func (r RenderConfig) ToStyle() clustermap.Style {
	style := clustermap.Style{
		CellSize:    r.CellSize,
		Columns:     r.Columns,
		Padding:     r.Padding,
		Background:  ParseColor(r.Background),
		FreeColor:   ParseColor(r.FreeColor),
		BorderColor: ParseColor(r.BorderColor),
		TextColor:   ParseColor(r.TextColor),
	}
	for _, hex := range r.Palette {
		style.Palette = append(style.Palette, ParseColor(hex))
	}
	return style
}

// ParseColor parses a hex color string to color.Color.
func ParseColor(hex string) color.Color {
	if len(hex) == 0 {
		return color.Black
	}

	if hex[0] == '#' {
		hex = hex[1:]
	}

	if len(hex) != 6 {
		return color.Black
	}

	r := hexValue(hex[0])<<4 | hexValue(hex[1])
	g := hexValue(hex[2])<<4 | hexValue(hex[3])
	b := hexValue(hex[4])<<4 | hexValue(hex[5])

	return color.RGBA{R: r, G: g, B: b, A: 255}
}

func hexValue(c byte) uint8 {
	switch {
	case c >= '0' && c <= '9':
		return c - '0'
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10
	default:
		return 0
	}
}
