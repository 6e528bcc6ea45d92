// Package config loads the editor settings from TOML.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"LineEditor/internal/state"

	"github.com/pelletier/go-toml/v2"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid config")

// Config is the full set of editor settings.
type Config struct {
	Canvas    Canvas    `toml:"canvas"`
	Snap      Snap      `toml:"snap"`
	Grid      Grid      `toml:"grid"`
	Line      Line      `toml:"line"`
	Rectangle Rectangle `toml:"rectangle"`
	Log       Log       `toml:"log"`
}

// Canvas sizes the three stacked canvases.
type Canvas struct {
	Width      float64      `toml:"width"`
	Height     float64      `toml:"height"`
	Background *state.Color `toml:"background,omitempty"`
}

// Snap configures grid snapping of pointer input and moves.
type Snap struct {
	Enabled bool    `toml:"enabled"`
	X       float64 `toml:"x"`
	Y       float64 `toml:"y"`
}

// Grid configures the background grid lines. A size of 0 disables the grid.
type Grid struct {
	Size      float64     `toml:"size"`
	Thickness float64     `toml:"thickness"`
	Stroke    state.Color `toml:"stroke"`
}

// Line holds the style of new lines.
type Line struct {
	Thickness float64       `toml:"thickness"`
	Stroke    state.Color   `toml:"stroke"`
	StartCap  state.LineCap `toml:"start_cap"`
	EndCap    state.LineCap `toml:"end_cap"`
}

// Rectangle holds the style of new rectangles.
type Rectangle struct {
	Thickness  float64     `toml:"thickness"`
	Stroke     state.Color `toml:"stroke"`
	Selectable bool        `toml:"selectable"`
}

// Log sets the minimum log level: debug, info, warn or error.
type Log struct {
	Level string `toml:"level"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		Canvas: Canvas{Width: 600, Height: 600},
		Snap:   Snap{Enabled: true, X: 15, Y: 15},
		Grid: Grid{
			Size:      30,
			Thickness: 2,
			Stroke:    state.Color{A: 0xFF, R: 0xE8, G: 0xE8, B: 0xE8},
		},
		Line: Line{
			Thickness: 30,
			Stroke:    state.Color{A: 0xFF},
			StartCap:  state.CapSquare,
			EndCap:    state.CapSquare,
		},
		Rectangle: Rectangle{
			Thickness:  2,
			Stroke:     state.Color{A: 0xFF, R: 0xBF, B: 0xFF},
			Selectable: true,
		},
		Log: Log{Level: "info"},
	}
}

// Load reads path and overlays it on the defaults. A missing file is not an
// error; the defaults are returned.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		slog.Info("config file not found, using defaults", "path", path)
		return Default(), nil
	}
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes TOML data over the defaults and validates the result.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&cfg); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks the settings the core relies on.
func (c Config) Validate() error {
	var errs []error
	if c.Canvas.Width <= 0 || c.Canvas.Height <= 0 {
		errs = append(errs, fmt.Errorf("canvas size %gx%g must be positive", c.Canvas.Width, c.Canvas.Height))
	}
	if c.Snap.X <= 0 || c.Snap.Y <= 0 {
		errs = append(errs, fmt.Errorf("snap pitch %g/%g must be positive", c.Snap.X, c.Snap.Y))
	}
	if c.Grid.Size < 0 {
		errs = append(errs, fmt.Errorf("grid size %g must not be negative", c.Grid.Size))
	}
	if c.Line.Thickness <= 0 {
		errs = append(errs, fmt.Errorf("line thickness %g must be positive", c.Line.Thickness))
	}
	if c.Rectangle.Thickness <= 0 {
		errs = append(errs, fmt.Errorf("rectangle thickness %g must be positive", c.Rectangle.Thickness))
	}
	if _, err := c.Log.SlogLevel(); err != nil {
		errs = append(errs, err)
	}
	if len(errs) > 0 {
		return fmt.Errorf("%w: %w", ErrInvalid, errors.Join(errs...))
	}
	return nil
}

// SlogLevel maps Level to a slog.Level.
func (l Log) SlogLevel() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(l.Level)); err != nil {
		return 0, fmt.Errorf("log level %q: %w", l.Level, err)
	}
	return level, nil
}

// Save writes c to path as TOML.
func (c Config) Save(path string) error {
	data, err := toml.Marshal(c)
	if err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}
