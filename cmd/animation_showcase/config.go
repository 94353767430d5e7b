// cmd/animation_showcase/config.go
// Showcase window and grid configuration. The animation units in the
// same file are loaded separately through pkg/config.
package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// ShowcaseConfig is the top-level structure of the showcase file.
type ShowcaseConfig struct {
	Window WindowConfig `yaml:"window"`
	Grid   GridConfig   `yaml:"grid"`
}

// WindowConfig configures the ebiten window.
type WindowConfig struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Title  string `yaml:"title"`
}

// GridConfig configures the paged cell grid.
type GridConfig struct {
	Columns     int `yaml:"columns"`
	CellWidth   int `yaml:"cell_width"`
	CellHeight  int `yaml:"cell_height"`
	Padding     int `yaml:"padding"`
	RowsPerPage int `yaml:"rows_per_page"`
}

// LoadShowcaseConfig loads the window/grid sections of the showcase
// file and fills in defaults for anything left out.
func LoadShowcaseConfig(path string) (*ShowcaseConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read showcase config %s: %w", path, err)
	}

	config := &ShowcaseConfig{
		Window: WindowConfig{Width: 960, Height: 640, Title: "Animable Showcase"},
		Grid:   GridConfig{Columns: 3, CellWidth: 280, CellHeight: 160, Padding: 16, RowsPerPage: 3},
	}
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse showcase config %s: %w", path, err)
	}

	if config.Grid.Columns <= 0 || config.Grid.RowsPerPage <= 0 {
		return nil, fmt.Errorf("showcase config %s: grid columns and rows_per_page must be > 0", path)
	}
	return config, nil
}
