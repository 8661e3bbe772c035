// SPDX-License-Identifier: EPL-2.0

// Package config loads and validates the TOML session description: device
// settings, logging, bounce output and the track list with clip files.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Config is one mixing session on disk.
type Config struct {
	Audio   AudioConfig   `toml:"audio"`
	Logging LoggingConfig `toml:"logging"`
	Bounce  BounceConfig  `toml:"bounce"`
	Tracks  []TrackConfig `toml:"tracks"`
}

// AudioConfig selects the session rate and the output device binding.
type AudioConfig struct {
	SampleRate int    `toml:"sample_rate"`
	Channels   int    `toml:"channels"`
	Format     string `toml:"format"`
	PeriodMs   int    `toml:"period_ms"`
}

type LoggingConfig struct {
	Level  string `toml:"level"`
	Format string `toml:"format"`
}

// BounceConfig describes the offline mixdown target used by the bounce
// command.
type BounceConfig struct {
	Path     string `toml:"path"`
	BitDepth int    `toml:"bit_depth"`
	Channels int    `toml:"channels"`
}

// TrackConfig declares one track and the clip files appended to it, in
// order. A volume of 0 means "not set" and plays at 100; silence a track
// with muted instead.
type TrackConfig struct {
	Name    string   `toml:"name"`
	Volume  float64  `toml:"volume"`
	Muted   bool     `toml:"muted"`
	Soloed  bool     `toml:"soloed"`
	Clips   []string `toml:"clips"`
}

// Default returns a playable configuration: stereo 44.1 kHz float output,
// text logging at info, 16-bit stereo bounce, no tracks.
func Default() *Config {
	return &Config{
		Audio: AudioConfig{
			SampleRate: 44100,
			Channels:   2,
			Format:     "f32",
			PeriodMs:   10,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "text",
		},
		Bounce: BounceConfig{
			Path:     "mixdown.wav",
			BitDepth: 16,
			Channels: 2,
		},
	}
}

// Load reads a session file, layering it over the defaults. A missing
// file is written out with the defaults so there is something to edit.
func Load(path string) (*Config, error) {
	cfg := Default()

	if _, err := os.Stat(path); os.IsNotExist(err) {
		if err := cfg.SaveToFile(path); err != nil {
			return nil, fmt.Errorf("failed to create default config file: %w", err)
		}
		return cfg, nil
	}

	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// SaveToFile writes the configuration as TOML, creating parent
// directories as needed.
func (c *Config) SaveToFile(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create config file: %w", err)
	}
	defer file.Close()

	header := `# zari session configuration
# Tracks are created in order; each track's clips are appended back to
# back with a one frame gap between them.

`
	if _, err := file.WriteString(header); err != nil {
		return fmt.Errorf("failed to write config header: %w", err)
	}

	encoder := toml.NewEncoder(file)
	if err := encoder.Encode(c); err != nil {
		return fmt.Errorf("failed to encode config to TOML: %w", err)
	}

	return nil
}

// Validate checks the configuration before a session is built from it.
func (c *Config) Validate() error {
	if c.Audio.SampleRate <= 0 {
		return fmt.Errorf("audio sample rate must be positive, got %d", c.Audio.SampleRate)
	}
	if c.Audio.Channels <= 0 {
		return fmt.Errorf("audio channel count must be positive, got %d", c.Audio.Channels)
	}
	if c.Audio.PeriodMs < 0 {
		return fmt.Errorf("audio period must not be negative, got %d", c.Audio.PeriodMs)
	}

	switch c.Audio.Format {
	case "", "f32", "u8", "s16", "s24", "s32":
	default:
		return fmt.Errorf("invalid audio format: %s (must be f32, u8, s16, s24 or s32)", c.Audio.Format)
	}

	validLogLevels := map[string]bool{
		"debug": true, "info": true, "warn": true, "error": true,
	}
	if !validLogLevels[c.Logging.Level] {
		return fmt.Errorf("invalid log level: %s (must be debug, info, warn, or error)", c.Logging.Level)
	}

	validLogFormats := map[string]bool{
		"text": true, "json": true,
	}
	if !validLogFormats[c.Logging.Format] {
		return fmt.Errorf("invalid log format: %s (must be text or json)", c.Logging.Format)
	}

	switch c.Bounce.BitDepth {
	case 8, 16, 24, 32:
	default:
		return fmt.Errorf("invalid bounce bit depth: %d (must be 8, 16, 24 or 32)", c.Bounce.BitDepth)
	}
	if c.Bounce.Channels <= 0 {
		return fmt.Errorf("bounce channel count must be positive, got %d", c.Bounce.Channels)
	}

	soloed := 0
	for i, tr := range c.Tracks {
		if tr.Volume < 0 || tr.Volume > 100 {
			return fmt.Errorf("track %d volume %v out of range [0, 100]", i+1, tr.Volume)
		}
		if tr.Soloed {
			soloed++
		}
	}
	if soloed > 1 {
		return fmt.Errorf("at most one track can start soloed, got %d", soloed)
	}

	return nil
}
