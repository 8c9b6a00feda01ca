package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"os"

	"github.com/RyanBlaney/sonido-fft/logging"
)

// ErrInvalidConfig is returned by Validate and Load for unusable settings.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// MaxDemoOrder bounds the demo transform length; the naive reference is O(N²).
const MaxDemoOrder = 14

// DemoConfig configures the transform demo
type DemoConfig struct {
	Order     int     `json:"order"`     // transform length is 2^Order
	Amplitude float64 `json:"amplitude"` // peak of the synthetic sine
	Tolerance float64 `json:"tolerance"` // max allowed cross-check error
	Precision int     `json:"precision"` // decimals when printing signals
	LogLevel  string  `json:"log_level"` // "debug", "info", "warn", "error"
	Colors    bool    `json:"colors"`
}

// DefaultDemoConfig returns the stock demo settings: a 16-point
// transform of a sine with amplitude 20, printed with two decimals.
func DefaultDemoConfig() *DemoConfig {
	return &DemoConfig{
		Order:     4,
		Amplitude: 20,
		Tolerance: 1e-6,
		Precision: 2,
		LogLevel:  "info",
		Colors:    true,
	}
}

// Load reads a JSON config file and applies it over the defaults.
func Load(path string) (*DemoConfig, error) {
	cfg := DefaultDemoConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks ranges of every field.
func (c *DemoConfig) Validate() error {
	if c.Order < 0 || c.Order > MaxDemoOrder {
		return fmt.Errorf("%w: order %d out of range [0, %d]", ErrInvalidConfig, c.Order, MaxDemoOrder)
	}

	if math.IsNaN(c.Amplitude) || math.IsInf(c.Amplitude, 0) {
		return fmt.Errorf("%w: amplitude must be finite", ErrInvalidConfig)
	}

	if !(c.Tolerance > 0) || math.IsInf(c.Tolerance, 0) {
		return fmt.Errorf("%w: tolerance must be positive and finite", ErrInvalidConfig)
	}

	if c.Precision < 0 {
		return fmt.Errorf("%w: precision %d is negative", ErrInvalidConfig, c.Precision)
	}

	if _, err := logging.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	return nil
}

// Level returns the parsed log level, falling back to info.
func (c *DemoConfig) Level() logging.Level {
	level, err := logging.ParseLevel(c.LogLevel)
	if err != nil {
		return logging.InfoLevel
	}
	return level
}

// Size returns the transform length, 2^Order.
func (c *DemoConfig) Size() int {
	return 1 << c.Order
}
