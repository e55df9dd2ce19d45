package core

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/hubastard/grovegl/engine/gfx"
	"gopkg.in/yaml.v3"
)

// Config for the engine run. Workarounds and Limits are handed to every
// draw call the app builds.
type Config struct {
	Title      string     `yaml:"title"`
	Width      int        `yaml:"width"`
	Height     int        `yaml:"height"`
	VSync      bool       `yaml:"vsync"`
	ClearColor [4]float32 `yaml:"clear_color"`

	Workarounds gfx.Workarounds `yaml:"workarounds"`
	// Limits overrides device limits field by field; zero keeps the device value.
	Limits gfx.Limits `yaml:"limits"`
}

func DefaultConfig() Config {
	return Config{
		Title:       "grove",
		Width:       1280,
		Height:      720,
		VSync:       true,
		ClearColor:  [4]float32{0.08, 0.10, 0.12, 1},
		Workarounds: gfx.DefaultWorkarounds(),
	}
}

// LoadConfig reads a YAML config over the defaults. A missing file yields
// the defaults.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("read config %q: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %q: %w", path, err)
	}
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return cfg, fmt.Errorf("config %q: window size %dx%d", path, cfg.Width, cfg.Height)
	}
	return cfg, nil
}

// DrawCallOptions returns the gfx options this config implies.
func (c Config) DrawCallOptions() []gfx.DrawCallOption {
	return []gfx.DrawCallOption{
		gfx.WithWorkarounds(c.Workarounds),
		gfx.WithLimits(c.Limits),
	}
}
