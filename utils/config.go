package utils

import (
	"encoding/json"
	"os"
	"time"

	"github.com/pkg/errors"
)

// Config holds the configuration for the game
type Config struct {
	Width         int           `json:"width"`
	Height        int           `json:"height"`
	FrameInterval time.Duration `json:"frame_interval"`
	Seed          uint64        `json:"seed"` // 0 seeds from the clock
	Workers       int           `json:"workers"`
}

// DefaultConfig returns a 40x15 board redrawn about 30 times per second
func DefaultConfig() Config {
	return Config{
		Width:         40,
		Height:        15,
		FrameInterval: 1000 / 30 * time.Millisecond,
		Workers:       1,
	}
}

// LoadConfig loads configuration from JSON file on top of the defaults
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

// Validate rejects configurations the simulation cannot run with
func (c Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return errors.Errorf("[Validate] grid dimensions must be positive, got %dx%d", c.Width, c.Height)
	}
	if c.FrameInterval <= 0 {
		return errors.Errorf("[Validate] frame interval must be positive, got %v", c.FrameInterval)
	}
	return nil
}
