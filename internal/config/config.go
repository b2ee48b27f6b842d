package config

import (
	"fmt"
	"math"
	"os"
	"strings"

	"github.com/BurntSushi/toml"

	slyr "github.com/north-road/slyr-sub002"
)

type Config struct {
	Log    LogConfig        `toml:"log"`
	Decode DecodeConfig     `toml:"decode"`
	Scan   ScanConfig       `toml:"scan"`
	Colors []ColorLUTConfig `toml:"color_lut"`
}

type LogConfig struct {
	Level   string `toml:"level"`
	NoColor bool   `toml:"no_color"`
}

type DecodeConfig struct {
	RequireFullConsumption bool `toml:"require_full_consumption"`
}

type ScanConfig struct {
	MinPrecedence int `toml:"min_precedence"`
	Width         int `toml:"width"`
}

// ColorLUTConfig is an extra CIELAB to RGB override
type ColorLUTConfig struct {
	L   float64 `toml:"l"`
	A   float64 `toml:"a"`
	B   float64 `toml:"b"`
	RGB []int   `toml:"rgb"`
}

const (
	defaultLogLevel  = "info"
	defaultScanWidth = 16
)

var logLevels = []string{"trace", "debug", "info", "warn", "error", "disabled"}

// Default returns the configuration used when no file is given
func Default() Config {
	cfg := Config{}
	cfg.applyDefaults()
	return cfg
}

// Load reads and validates a TOML config file
func Load(path string) (Config, error) {
	var cfg Config
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config load failed (%s): %w", path, err)
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config parse failed (%s): %w", path, err)
	}
	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("config invalid (%s): %w", path, err)
	}
	return cfg, nil
}

func (c *Config) applyDefaults() {
	if strings.TrimSpace(c.Log.Level) == "" {
		c.Log.Level = defaultLogLevel
	}
	if c.Scan.Width == 0 {
		c.Scan.Width = defaultScanWidth
	}
}

func (c Config) Validate() error {
	level := strings.ToLower(strings.TrimSpace(c.Log.Level))
	valid := false
	for _, l := range logLevels {
		if level == l {
			valid = true
			break
		}
	}
	if !valid {
		return fmt.Errorf("log level %q is not one of %s", c.Log.Level, strings.Join(logLevels, ", "))
	}
	if c.Scan.Width < 1 || c.Scan.Width > 64 {
		return fmt.Errorf("scan width %d must be between 1 and 64", c.Scan.Width)
	}
	if c.Scan.MinPrecedence < 0 {
		return fmt.Errorf("scan min_precedence %d must not be negative", c.Scan.MinPrecedence)
	}
	for i, entry := range c.Colors {
		if err := entry.validate(); err != nil {
			return fmt.Errorf("color_lut[%d] invalid: %w", i, err)
		}
	}
	return nil
}

func (e ColorLUTConfig) validate() error {
	for _, v := range []float64{e.L, e.A, e.B} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("lab values must be finite")
		}
	}
	if len(e.RGB) != 3 {
		return fmt.Errorf("rgb must have 3 values, got %d", len(e.RGB))
	}
	for _, v := range e.RGB {
		if v < 0 || v > 255 {
			return fmt.Errorf("rgb value %d out of range 0-255", v)
		}
	}
	return nil
}

// ColorLUT returns the default lookup table with the configured entries added
func (c Config) ColorLUT() slyr.ColorLUT {
	lut := slyr.DefaultColorLUT().Clone()
	for _, e := range c.Colors {
		lut.Add(e.L, e.A, e.B, [3]uint8{uint8(e.RGB[0]), uint8(e.RGB[1]), uint8(e.RGB[2])})
	}
	return lut
}

// DecodeOptions builds the options for slyr.Decode
func (c Config) DecodeOptions() *slyr.DecodeOptions {
	return &slyr.DecodeOptions{
		ColorLUT:               c.ColorLUT(),
		RequireFullConsumption: c.Decode.RequireFullConsumption,
	}
}

// ScanOptions builds the options for slyr.NewScanner
func (c Config) ScanOptions() *slyr.ScanOptions {
	return &slyr.ScanOptions{
		ColorLUT:      c.ColorLUT(),
		MinPrecedence: c.Scan.MinPrecedence,
	}
}

// RenderOptions builds the options for slyr.ScanResult.Render
func (c Config) RenderOptions() *slyr.RenderOptions {
	return &slyr.RenderOptions{
		Width:   c.Scan.Width,
		NoColor: c.Log.NoColor,
	}
}
