package app

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"math"
	"os"

	"plotter/plot"

	"gopkg.in/yaml.v3"
)

// Config holds everything the plotter can be tuned with. Keys missing from a
// config file keep their DefaultConfig values.
type Config struct {
	Width   int       `yaml:"width"`
	Height  int       `yaml:"height"`
	FPS     int       `yaml:"fps"`
	Scale   float64   `yaml:"scale"`
	Presets []float64 `yaml:"presets"`
	Assets  string    `yaml:"assets"`
	Digits  int       `yaml:"digits"`
}

// DefaultConfig returns the stock 1000x1000, 30 fps plotter.
func DefaultConfig() Config {
	return Config{
		Width:   1000,
		Height:  1000,
		FPS:     30,
		Scale:   10,
		Presets: []float64{0.1, 1, 100},
		Digits:  8,
	}
}

// LoadConfig reads a YAML config file on top of DefaultConfig. An empty path
// returns the defaults.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config %q: %w", path, err)
	}
	cfg, err = ParseConfig(data)
	if err != nil {
		return Config{}, fmt.Errorf("config %q: %w", path, err)
	}
	return cfg, nil
}

// ParseConfig decodes YAML on top of DefaultConfig and validates the result.
func ParseConfig(data []byte) (Config, error) {
	cfg := DefaultConfig()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// minSize keeps the axis tick bars (a hundredth of the width) at least a
// pixel long.
const minSize = 100

// Validate rejects configs the plotter cannot run with.
func (c Config) Validate() error {
	if c.Width < minSize || c.Height < minSize {
		return fmt.Errorf("window size %dx%d must be at least %dx%d", c.Width, c.Height, minSize, minSize)
	}
	if c.Width > math.MaxInt16 || c.Height > math.MaxInt16 {
		return fmt.Errorf("window size %dx%d too large", c.Width, c.Height)
	}
	if c.FPS <= 0 {
		return fmt.Errorf("fps %d must be positive", c.FPS)
	}
	if c.Digits <= 0 {
		return fmt.Errorf("digits %d must be positive", c.Digits)
	}
	if !validScale(c.Scale) {
		return fmt.Errorf("scale %v must be positive and at most %g", c.Scale, plot.MaxScale)
	}
	if len(c.Presets) != len(presetKeys) {
		return fmt.Errorf("want %d presets, got %d", len(presetKeys), len(c.Presets))
	}
	for i, p := range c.Presets {
		if !validScale(p) {
			return fmt.Errorf("preset %d (%v) must be positive and at most %g", i+1, p, plot.MaxScale)
		}
	}
	return nil
}

func validScale(s float64) bool {
	_, err := plot.SetScale(s)
	return err == nil
}
