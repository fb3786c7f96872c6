package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/mitchellh/go-homedir"
	"github.com/pelletier/go-toml/v2"

	"github.com/go-theft-auto/titlemaker/gui/backend/opengl"
	"github.com/go-theft-auto/titlemaker/scene"
)

// Config is the editor configuration. A config file only needs the keys
// it changes; everything else keeps the defaults.
type Config struct {
	Window struct {
		Width  int  `toml:"width"`
		Height int  `toml:"height"`
		VSync  bool `toml:"vsync"`
	} `toml:"window"`

	// Stylesheet replaces the built-in stylesheet when set.
	Stylesheet string           `toml:"stylesheet"`
	Fonts      opengl.FontFiles `toml:"fonts"`
	Document   string           `toml:"document"`
	Snap       scene.SnapConfig `toml:"snap"`
	Output     OutputConfig     `toml:"output"`
}

// OutputConfig configures the rendered output.
type OutputConfig struct {
	Width       int    `toml:"width"`
	Height      int    `toml:"height"`
	FrameRate   int    `toml:"frame_rate"`
	FeedAddr    string `toml:"feed_addr"`
	JPEGQuality int    `toml:"jpeg_quality"`
	SnapshotDir string `toml:"snapshot_dir"`
}

// DefaultConfig returns the configuration used when no file is given.
func DefaultConfig() Config {
	var c Config
	c.Window.Width, c.Window.Height = 1600, 900
	c.Window.VSync = true
	c.Fonts.Size = 32
	c.Document = "~/titles/untitled.toml"
	c.Snap = scene.DefaultSnapConfig
	c.Output = OutputConfig{
		Width:       scene.DefaultWidth,
		Height:      scene.DefaultHeight,
		FrameRate:   30,
		FeedAddr:    "127.0.0.1:5960",
		JPEGQuality: 85,
		SnapshotDir: "~/titles",
	}
	return c
}

// LoadConfig reads the TOML file at path over the defaults. An empty path
// returns the defaults. Paths in the result have "~" expanded.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if path != "" {
		p, err := homedir.Expand(path)
		if err != nil {
			return cfg, err
		}
		data, err := os.ReadFile(p)
		if err != nil {
			return cfg, fmt.Errorf("read config: %w", err)
		}
		if err := toml.Unmarshal(data, &cfg); err != nil {
			var derr *toml.DecodeError
			if errors.As(err, &derr) {
				row, col := derr.Position()
				return cfg, fmt.Errorf("%s:%d:%d: %w", p, row, col, err)
			}
			return cfg, fmt.Errorf("%s: %w", p, err)
		}
	}
	if err := cfg.expand(); err != nil {
		return cfg, err
	}
	return cfg, cfg.validate()
}

func (c *Config) expand() error {
	for _, p := range []*string{
		&c.Stylesheet, &c.Document, &c.Output.SnapshotDir,
		&c.Fonts.Normal, &c.Fonts.Bold, &c.Fonts.Italic, &c.Fonts.Icons,
	} {
		v, err := homedir.Expand(*p)
		if err != nil {
			return err
		}
		*p = v
	}
	return nil
}

func (c *Config) validate() error {
	switch {
	case c.Window.Width <= 0 || c.Window.Height <= 0:
		return fmt.Errorf("window size %dx%d", c.Window.Width, c.Window.Height)
	case c.Output.Width <= 0 || c.Output.Height <= 0:
		return fmt.Errorf("output size %dx%d", c.Output.Width, c.Output.Height)
	case c.Output.FrameRate <= 0:
		return fmt.Errorf("frame rate %d", c.Output.FrameRate)
	}
	return nil
}
