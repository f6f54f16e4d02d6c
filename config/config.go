// Package config holds the game settings and their defaults.
package config

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"
)

// Backend selects the display used to run the game.
type Backend string

const (
	BackendRaylib   Backend = "raylib"
	BackendTerminal Backend = "terminal"
)

func (b Backend) IsValid() bool {
	switch b {
	case BackendRaylib, BackendTerminal:
		return true
	default:
		return false
	}
}

// minGridSize leaves room for the three-cell starting snake at columns 2-4.
const minGridSize = 5

// Config represents the complete game configuration
type Config struct {
	Game    GameConfig    `yaml:"game" json:"game"`
	Display DisplayConfig `yaml:"display" json:"display"`
	Palette PaletteConfig `yaml:"palette" json:"palette"`
	Audio   AudioConfig   `yaml:"audio" json:"audio"`
}

// GameConfig configures the simulation
type GameConfig struct {
	// GridSize is the side of the square grid in cells.
	GridSize int `yaml:"grid_size" json:"grid_size"`
	// TickDivisor is the number of frames per snake tick.
	TickDivisor int `yaml:"tick_divisor" json:"tick_divisor"`
	// Seed for food placement; 0 seeds from the clock.
	Seed uint64 `yaml:"seed" json:"seed"`
}

// DisplayConfig configures the window or terminal
type DisplayConfig struct {
	Backend  Backend `yaml:"backend" json:"backend"`
	Title    string  `yaml:"title" json:"title"`
	TileSize int     `yaml:"tile_size" json:"tile_size"`
	FPS      int     `yaml:"fps" json:"fps"`
}

// PaletteConfig holds colors as #RRGGBB or #RRGGBBAA
type PaletteConfig struct {
	Background string `yaml:"background" json:"background"`
	Head       string `yaml:"head" json:"head"`
	Body       string `yaml:"body" json:"body"`
	Food       string `yaml:"food" json:"food"`
}

// AudioConfig configures the eat chime
type AudioConfig struct {
	Mute       bool    `yaml:"mute" json:"mute"`
	Frequency  float64 `yaml:"frequency" json:"frequency"`
	DurationMS int     `yaml:"duration_ms" json:"duration_ms"`
}

// DefaultConfig returns the configuration used when no file is given.
func DefaultConfig() *Config {
	return &Config{
		Game: GameConfig{
			GridSize:    20,
			TickDivisor: 6,
		},
		Display: DisplayConfig{
			Backend:  BackendRaylib,
			Title:    "Snake",
			TileSize: 16,
			FPS:      30,
		},
		Palette: PaletteConfig{
			Background: "#828282",
			Head:       "#00E430",
			Body:       "#F5F5F5",
			Food:       "#E62937",
		},
		Audio: AudioConfig{
			Frequency:  880,
			DurationMS: 50,
		},
	}
}

// Validate checks every field and returns the first problem found.
func (c *Config) Validate() error {
	if c.Game.GridSize < minGridSize {
		return fmt.Errorf("%w: %d (minimum %d)", ErrInvalidGridSize, c.Game.GridSize, minGridSize)
	}
	if c.Game.TickDivisor < 1 {
		return fmt.Errorf("%w: %d", ErrInvalidTickDivisor, c.Game.TickDivisor)
	}
	if !c.Display.Backend.IsValid() {
		return fmt.Errorf("%w: %q", ErrInvalidBackend, c.Display.Backend)
	}
	if c.Display.TileSize < 1 {
		return fmt.Errorf("%w: %d", ErrInvalidTileSize, c.Display.TileSize)
	}
	if c.Display.FPS < 1 || c.Display.FPS > 240 {
		return fmt.Errorf("%w: %d", ErrInvalidFPS, c.Display.FPS)
	}
	for _, entry := range []struct{ name, hex string }{
		{"background", c.Palette.Background},
		{"head", c.Palette.Head},
		{"body", c.Palette.Body},
		{"food", c.Palette.Food},
	} {
		if _, err := ParseColor(entry.hex); err != nil {
			return fmt.Errorf("palette %s: %w", entry.name, err)
		}
	}
	if !c.Audio.Mute && (c.Audio.Frequency <= 0 || c.Audio.DurationMS <= 0) {
		return fmt.Errorf("%w: %vHz for %dms", ErrInvalidChime, c.Audio.Frequency, c.Audio.DurationMS)
	}
	return nil
}

// ParseColor parses #RRGGBB or #RRGGBBAA. Alpha defaults to opaque.
func ParseColor(s string) (color.RGBA, error) {
	hex := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(hex) != 6 && len(hex) != 8 {
		return color.RGBA{}, fmt.Errorf("%w: %q", ErrInvalidColor, s)
	}
	if len(hex) == 6 {
		hex += "ff"
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("%w: %q", ErrInvalidColor, s)
	}
	return color.RGBA{
		R: uint8(v >> 24),
		G: uint8(v >> 16),
		B: uint8(v >> 8),
		A: uint8(v),
	}, nil
}

// Colors returns the parsed palette in background, head, body, food order.
// It assumes Validate has passed.
func (p PaletteConfig) Colors() (background, head, body, food color.RGBA) {
	background, _ = ParseColor(p.Background)
	head, _ = ParseColor(p.Head)
	body, _ = ParseColor(p.Body)
	food, _ = ParseColor(p.Food)
	return
}
