// Package settings holds the process-wide editor settings and loads them
// from the environment.
package settings

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/ha1tch/pix/internal/canvas"
)

// MaxSize is the largest accepted canvas or cell dimension in pixels.
const MaxSize = 8192

// ErrInvalid wraps every validation failure.
var ErrInvalid = errors.New("invalid settings")

// Environment variables read by Load.
const (
	EnvCanvasWidth  = "PIX_CANVAS_WIDTH"
	EnvCanvasHeight = "PIX_CANVAS_HEIGHT"
	EnvCellWidth    = "PIX_CELL_WIDTH"
	EnvCellHeight   = "PIX_CELL_HEIGHT"
	EnvColor        = "PIX_COLOR"
	EnvLogLevel     = "PIX_LOG_LEVEL"
)

// Settings are the canvas dimensions, cell size and active color.
type Settings struct {
	CanvasWidth  int
	CanvasHeight int
	CellWidth    int
	CellHeight   int
	Color        string
	LogLevel     logrus.Level
}

// Default returns the stock settings: an 800x640 canvas of 32x32 cells
// painted in black.
func Default() Settings {
	return Settings{
		CanvasWidth:  800,
		CanvasHeight: 640,
		CellWidth:    32,
		CellHeight:   32,
		Color:        "#000000",
		LogLevel:     logrus.InfoLevel,
	}
}

// Grid returns the dimensions used by the renderer.
func (s Settings) Grid() canvas.Grid {
	return canvas.Grid{
		Width:      s.CanvasWidth,
		Height:     s.CanvasHeight,
		CellWidth:  s.CellWidth,
		CellHeight: s.CellHeight,
	}
}

// Validate checks every size is in (0, MaxSize] and the color is a hex
// color.
func (s Settings) Validate() error {
	sizes := []struct {
		name  string
		value int
	}{
		{"canvas width", s.CanvasWidth},
		{"canvas height", s.CanvasHeight},
		{"cell width", s.CellWidth},
		{"cell height", s.CellHeight},
	}
	for _, sz := range sizes {
		if sz.value <= 0 {
			return fmt.Errorf("%w: %s must be positive, got %d", ErrInvalid, sz.name, sz.value)
		}
		if sz.value > MaxSize {
			return fmt.Errorf("%w: %s must be at most %d, got %d", ErrInvalid, sz.name, MaxSize, sz.value)
		}
	}
	if _, err := canvas.ParseHex(s.Color); err != nil {
		return fmt.Errorf("%w: color: %v", ErrInvalid, err)
	}
	return nil
}

// SetColor changes the active color. The settings are unchanged if hex
// is not a valid hex color.
func (s *Settings) SetColor(hex string) error {
	hex = strings.TrimSpace(hex)
	if _, err := canvas.ParseHex(hex); err != nil {
		return fmt.Errorf("%w: color: %v", ErrInvalid, err)
	}
	s.Color = strings.ToLower(hex)
	return nil
}

// Load reads the given dotenv files, if they exist, then overlays any
// PIX_* variables from the environment onto the defaults. Variables
// already set in the environment win over dotenv files.
func Load(files ...string) (Settings, error) {
	for _, f := range files {
		if err := godotenv.Load(f); err != nil {
			if errors.Is(err, os.ErrNotExist) {
				continue
			}
			return Settings{}, fmt.Errorf("load %s: %w", f, err)
		}
	}
	return FromLookup(os.LookupEnv)
}

// FromLookup builds settings from a variable lookup function.
func FromLookup(lookup func(string) (string, bool)) (Settings, error) {
	s := Default()

	ints := []struct {
		env string
		dst *int
	}{
		{EnvCanvasWidth, &s.CanvasWidth},
		{EnvCanvasHeight, &s.CanvasHeight},
		{EnvCellWidth, &s.CellWidth},
		{EnvCellHeight, &s.CellHeight},
	}
	for _, v := range ints {
		raw, ok := lookup(v.env)
		if !ok || strings.TrimSpace(raw) == "" {
			continue
		}
		n, err := strconv.Atoi(strings.TrimSpace(raw))
		if err != nil {
			return Settings{}, fmt.Errorf("%w: %s=%q: %v", ErrInvalid, v.env, raw, err)
		}
		*v.dst = n
	}

	if raw, ok := lookup(EnvColor); ok && strings.TrimSpace(raw) != "" {
		if err := s.SetColor(raw); err != nil {
			return Settings{}, fmt.Errorf("%s: %w", EnvColor, err)
		}
	}

	if raw, ok := lookup(EnvLogLevel); ok && strings.TrimSpace(raw) != "" {
		level, err := logrus.ParseLevel(strings.TrimSpace(raw))
		if err != nil {
			return Settings{}, fmt.Errorf("%w: %s=%q: %v", ErrInvalid, EnvLogLevel, raw, err)
		}
		s.LogLevel = level
	}

	if err := s.Validate(); err != nil {
		return Settings{}, err
	}
	return s, nil
}
