package utils

import (
	"encoding/json"
	"os"
	"time"
	"unicode/utf8"

	"github.com/pkg/errors"
)

// DefaultDelayMS is the pause between generations, in milliseconds
const DefaultDelayMS = 500

// Config holds the configuration for the game
type Config struct {
	DelayMS        int    `json:"delay_ms"`
	MaxGenerations int    `json:"max_generations"` // 0 runs until interrupted
	Seed           string `json:"seed"`
	LiveMarker     string `json:"live_marker"`
	DeadMarker     string `json:"dead_marker"`
}

// DefaultConfig returns the reference behavior: a 500ms cadence, forever, from the default seed
func DefaultConfig() Config {
	return Config{
		DelayMS:        DefaultDelayMS,
		MaxGenerations: 0,
		Seed:           "default",
		LiveMarker:     "#",
		DeadMarker:     ".",
	}
}

// LoadConfig loads configuration from a JSON file, overlaying the defaults
func LoadConfig(filename string) (Config, error) {
	config := DefaultConfig()

	data, err := os.ReadFile(filename)
	if err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to read file: %+v", filename)
	}

	if err = json.Unmarshal(data, &config); err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to unmarshal data from file: %+v", filename)
	}

	if err = config.Validate(); err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] invalid config in file: %+v", filename)
	}

	return config, nil
}

// Validate checks the config for values the game cannot run with
func (c Config) Validate() error {
	if c.DelayMS < 0 {
		return errors.Errorf("[Validate] delay_ms must be >= 0, got %d", c.DelayMS)
	}
	if c.MaxGenerations < 0 {
		return errors.Errorf("[Validate] max_generations must be >= 0, got %d", c.MaxGenerations)
	}
	if utf8.RuneCountInString(c.LiveMarker) != 1 {
		return errors.Errorf("[Validate] live_marker must be a single character, got %q", c.LiveMarker)
	}
	if utf8.RuneCountInString(c.DeadMarker) != 1 {
		return errors.Errorf("[Validate] dead_marker must be a single character, got %q", c.DeadMarker)
	}
	if c.LiveMarker == c.DeadMarker {
		return errors.Errorf("[Validate] live_marker and dead_marker are both %q", c.LiveMarker)
	}
	return nil
}

// Delay returns the pause between generations
func (c Config) Delay() time.Duration {
	return time.Duration(c.DelayMS) * time.Millisecond
}

// Markers returns the live and dead cell markers as runes
func (c Config) Markers() (live, dead rune) {
	live, _ = utf8.DecodeRuneInString(c.LiveMarker)
	dead, _ = utf8.DecodeRuneInString(c.DeadMarker)
	return
}
