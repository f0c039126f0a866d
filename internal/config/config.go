package config

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"

	"github.com/charmbracelet/recycle/internal/recycle"
	"github.com/tidwall/sjson"
)

const (
	appName              = "recycle"
	defaultDataDirectory = ".recycle"
	defaultInitialCount  = 25
)

type LayoutMode string

const (
	LayoutModeLinear LayoutMode = "linear"
	LayoutModeGrid   LayoutMode = "grid"
)

type Axis string

const (
	AxisVertical   Axis = "vertical"
	AxisHorizontal Axis = "horizontal"
)

type Constraint string

const (
	ConstraintFlexible Constraint = "flexible"
	ConstraintFixed    Constraint = "fixed"
)

type Padding struct {
	Left   int `json:"left,omitempty"`
	Right  int `json:"right,omitempty"`
	Top    int `json:"top,omitempty"`
	Bottom int `json:"bottom,omitempty"`
}

type LayoutOptions struct {
	Mode LayoutMode `json:"mode,omitempty"`
	Axis Axis `json:"axis,omitempty"`

	ItemWidth  int `json:"item_width,omitempty"`
	ItemHeight int `json:"item_height,omitempty"`

	// Spacing is the gap between items of a linear layout.
	Spacing int `json:"spacing,omitempty"`

	// Grid cell gaps.
	SpacingX int `json:"spacing_x,omitempty"`
	SpacingY int `json:"spacing_y,omitempty"`

	Constraint Constraint `json:"constraint,omitempty"`
	// Count is the number of columns (vertical) or rows (horizontal) of a
	// fixed grid.
	Count int `json:"count,omitempty"`

	Padding Padding `json:"padding,omitempty"`
}

func (l LayoutOptions) Horizontal() bool {
	return l.Axis == AxisHorizontal
}

// Recycle converts the options into a layout descriptor for the engine. A
// fresh descriptor is returned on every call since the engine may rewrite a
// flexible constraint.
func (l LayoutOptions) Recycle() *recycle.Layout {
	layout := &recycle.Layout{
		Padding: recycle.Padding{
			Left:   float64(l.Padding.Left),
			Right:  float64(l.Padding.Right),
			Top:    float64(l.Padding.Top),
			Bottom: float64(l.Padding.Bottom),
		},
	}
	if l.Mode != LayoutModeGrid {
		layout.Kind = recycle.LayoutLinear
		layout.Spacing = float64(l.Spacing)
		return layout
	}

	layout.Kind = recycle.LayoutGrid
	layout.CellSize = recycle.Vec2{X: float64(l.ItemWidth), Y: float64(l.ItemHeight)}
	layout.GridSpacing = recycle.Vec2{X: float64(l.SpacingX), Y: float64(l.SpacingY)}
	switch {
	case l.Constraint != ConstraintFixed:
		layout.Constraint = recycle.ConstraintFlexible
	case l.Horizontal():
		layout.Constraint = recycle.ConstraintFixedRowCount
		layout.ConstraintCount = l.Count
	default:
		layout.Constraint = recycle.ConstraintFixedColumnCount
		layout.ConstraintCount = l.Count
	}
	return layout
}

type DatasetOptions struct {
	Initial int   `json:"initial"`
	Presets []int `json:"presets,omitempty"`
}

type Options struct {
	Debug         bool   `json:"debug,omitempty"`
	DataDirectory string `json:"data_directory,omitempty"` // Relative to the cwd
}

// Config holds the configuration for recycle.
type Config struct {
	Layout  LayoutOptions  `json:"layout"`
	Dataset DatasetOptions `json:"dataset"`
	Options *Options       `json:"options,omitempty"`

	// Internal
	workingDir     string `json:"-"`
	globalDataPath string `json:"-"`
}

func (c *Config) WorkingDir() string {
	return c.workingDir
}

// Validate reports the first setting the list cannot be built from.
func (c *Config) Validate() error {
	l := c.Layout
	if !slices.Contains([]LayoutMode{LayoutModeLinear, LayoutModeGrid}, l.Mode) {
		return fmt.Errorf("invalid layout mode %q", l.Mode)
	}
	if !slices.Contains([]Axis{AxisVertical, AxisHorizontal}, l.Axis) {
		return fmt.Errorf("invalid layout axis %q", l.Axis)
	}
	if !slices.Contains([]Constraint{ConstraintFlexible, ConstraintFixed}, l.Constraint) {
		return fmt.Errorf("invalid grid constraint %q", l.Constraint)
	}
	if l.ItemWidth <= 0 || l.ItemHeight <= 0 {
		return fmt.Errorf("item size must be positive, got %dx%d", l.ItemWidth, l.ItemHeight)
	}
	if l.Spacing < 0 || l.SpacingX < 0 || l.SpacingY < 0 {
		return fmt.Errorf("spacing must not be negative")
	}
	if p := l.Padding; p.Left < 0 || p.Right < 0 || p.Top < 0 || p.Bottom < 0 {
		return fmt.Errorf("padding must not be negative")
	}
	if l.Mode == LayoutModeGrid && l.Constraint == ConstraintFixed && l.Count < 1 {
		return fmt.Errorf("fixed grid needs a count of at least 1, got %d", l.Count)
	}
	if c.Dataset.Initial < 0 {
		return fmt.Errorf("initial dataset size must not be negative, got %d", c.Dataset.Initial)
	}
	for _, p := range c.Dataset.Presets {
		if p < 0 {
			return fmt.Errorf("dataset preset must not be negative, got %d", p)
		}
	}
	return nil
}

// SetConfigField persists a single field in the global config file.
func (c *Config) SetConfigField(key string, value any) error {
	// read the data
	data, err := os.ReadFile(c.globalDataPath)
	if err != nil {
		if os.IsNotExist(err) {
			data = []byte("{}")
		} else {
			return fmt.Errorf("failed to read config file: %w", err)
		}
	}

	newValue, err := sjson.Set(string(data), key, value)
	if err != nil {
		return fmt.Errorf("failed to set config field %s: %w", key, err)
	}
	if err := os.MkdirAll(filepath.Dir(c.globalDataPath), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if err := os.WriteFile(c.globalDataPath, []byte(newValue), 0o644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}
