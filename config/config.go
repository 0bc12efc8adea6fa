package config

import (
	"fmt"
	"image/color"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/pelletier/go-toml/v2"
	"golang.org/x/image/colornames"
	"gopkg.in/yaml.v3"

	"github.com/lixenwraith/balloon/core"
	"github.com/lixenwraith/balloon/parameter"
	"github.com/lixenwraith/balloon/render"
	"github.com/lixenwraith/balloon/vmath"
)

// Config covers presentation only, gameplay kinematics are fixed
type Config struct {
	Display DisplayConfig `toml:"display" yaml:"display"`
	Palette PaletteConfig `toml:"palette" yaml:"palette"`
	Asset   AssetConfig   `toml:"asset" yaml:"asset"`
	Audio   AudioConfig   `toml:"audio" yaml:"audio"`
	Log     LogConfig     `toml:"log" yaml:"log"`
}

type DisplayConfig struct {
	// FrameIntervalMs is the frame period, clamped to [4, 100]
	FrameIntervalMs int `toml:"frame_interval_ms" yaml:"frame_interval_ms"`
	// ColorMode selects the terminal palette: auto, truecolor or 256
	ColorMode string `toml:"color_mode" yaml:"color_mode"`
}

// PaletteConfig values are colornames (e.g. "deepskyblue") or #rrggbb
type PaletteConfig struct {
	Background string `toml:"background" yaml:"background"`
	Text       string `toml:"text" yaml:"text"`
	Accent     string `toml:"accent" yaml:"accent"`
	Title      string `toml:"title" yaml:"title"`
	Hint       string `toml:"hint" yaml:"hint"`
	Paused     string `toml:"paused" yaml:"paused"`
	Ball       string `toml:"ball" yaml:"ball"`
}

type AssetConfig struct {
	Logo  string `toml:"logo" yaml:"logo"`
	Watch bool   `toml:"watch" yaml:"watch"`
}

type AudioConfig struct {
	Enabled bool `toml:"enabled" yaml:"enabled"`
}

type LogConfig struct {
	Level string `toml:"level" yaml:"level"`
	Dir   string `toml:"dir" yaml:"dir"`
}

// Default returns the built-in configuration
func Default() Config {
	return Config{
		Display: DisplayConfig{
			FrameIntervalMs: int(parameter.FrameUpdateInterval / time.Millisecond),
			ColorMode:       "auto",
		},
		Palette: PaletteConfig{
			Background: "black",
			Text:       "white",
			Accent:     "#00bfff",
			Title:      "red",
			Hint:       "yellow",
			Paused:     "orange",
			Ball:       "lightcoral",
		},
		Asset: AssetConfig{
			Logo:  "logo.png",
			Watch: true,
		},
		Audio: AudioConfig{Enabled: true},
		Log: LogConfig{
			Level: "warn",
			Dir:   core.LogDir,
		},
	}
}

// Load reads path over the defaults, the format follows the extension
// An empty path returns the defaults
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}

	if err := Parse(data, filepath.Ext(path), &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes data into cfg, keys absent from data keep their current values
func Parse(data []byte, ext string, cfg *Config) error {
	switch strings.ToLower(ext) {
	case ".toml":
		return toml.Unmarshal(data, cfg)
	case ".yaml", ".yml":
		return yaml.Unmarshal(data, cfg)
	default:
		return fmt.Errorf("%w: %q", core.ErrUnsupportedConfig, ext)
	}
}

// FrameInterval returns the clamped frame period
func (c Config) FrameInterval() time.Duration {
	d := time.Duration(c.Display.FrameIntervalMs) * time.Millisecond
	return vmath.Clamp(d, parameter.MinFrameInterval, parameter.MaxFrameInterval)
}

// RenderPalette resolves every palette entry
func (c Config) RenderPalette() (render.Palette, error) {
	p := render.DefaultPalette()
	entries := []struct {
		name string
		val  string
		dst  *color.Color
	}{
		{"background", c.Palette.Background, &p.Background},
		{"text", c.Palette.Text, &p.Text},
		{"accent", c.Palette.Accent, &p.Accent},
		{"title", c.Palette.Title, &p.Title},
		{"hint", c.Palette.Hint, &p.Hint},
		{"paused", c.Palette.Paused, &p.Paused},
		{"ball", c.Palette.Ball, &p.Ball},
	}
	for _, e := range entries {
		if e.val == "" {
			continue
		}
		col, err := ParseColor(e.val)
		if err != nil {
			return p, fmt.Errorf("palette %s: %w", e.name, err)
		}
		*e.dst = col
	}
	return p, nil
}

// ParseColor accepts an SVG color name or #rrggbb
func ParseColor(s string) (color.Color, error) {
	s = strings.TrimSpace(strings.ToLower(s))
	if strings.HasPrefix(s, "#") {
		hex := s[1:]
		if len(hex) != 6 {
			return nil, fmt.Errorf("%w: %q", core.ErrUnknownColor, s)
		}
		v, err := strconv.ParseUint(hex, 16, 32)
		if err != nil {
			return nil, fmt.Errorf("%w: %q", core.ErrUnknownColor, s)
		}
		return color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 0xff}, nil
	}
	if c, ok := colornames.Map[s]; ok {
		return c, nil
	}
	return nil, fmt.Errorf("%w: %q", core.ErrUnknownColor, s)
}
