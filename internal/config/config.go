package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"
	"unicode/utf8"

	"github.com/paceline/pace/pkg/eta"
	"gopkg.in/yaml.v3"
)

// Config defines configuration for the pace CLI.
type Config struct {
	Total      int           `yaml:"total"`
	Estimator  string        `yaml:"estimator"`
	Alpha      float64       `yaml:"alpha"`
	StartValue float64       `yaml:"start_value"`
	Batch      int           `yaml:"batch"`
	MeanDelay  time.Duration `yaml:"mean_delay"`
	Seed       int64         `yaml:"seed"`
	Progress   bool          `yaml:"progress"`
	Bar        BarConfig     `yaml:"bar"`
}

// BarConfig defines how the progress bar is drawn.
type BarConfig struct {
	Length        int    `yaml:"length"`
	PercentDigits int    `yaml:"percent_digits"`
	Filled        string `yaml:"filled"`
	Unfilled      string `yaml:"unfilled"`
}

// Estimator kinds accepted by Config.Estimator.
const (
	EstimatorSimple = "simple"
	EstimatorEWMA   = "ewma"
)

// Default returns a Config with sensible defaults.
func Default() Config {
	return Config{
		Total:      1000,
		Estimator:  EstimatorSimple,
		Alpha:      0.05,
		StartValue: 1.0,
		Batch:      1,
		MeanDelay:  10 * time.Millisecond,
		Seed:       100,
		Progress:   true,
		Bar: BarConfig{
			Length:        10,
			PercentDigits: 1,
			Filled:        "=",
			Unfilled:      " ",
		},
	}
}

// yamlConfig is used for YAML unmarshaling: durations arrive as
// strings, and pointer fields distinguish "absent" from a zero that
// the user explicitly asked for (alpha: 0 is meaningful).
type yamlConfig struct {
	Total      int           `yaml:"total"`
	Estimator  string        `yaml:"estimator"`
	Alpha      *float64      `yaml:"alpha"`
	StartValue *float64      `yaml:"start_value"`
	Batch      int           `yaml:"batch"`
	MeanDelay  string        `yaml:"mean_delay"`
	Seed       *int64        `yaml:"seed"`
	Progress   *bool         `yaml:"progress"`
	Bar        yamlBarConfig `yaml:"bar"`
}

type yamlBarConfig struct {
	Length        int    `yaml:"length"`
	PercentDigits *int   `yaml:"percent_digits"`
	Filled        string `yaml:"filled"`
	Unfilled      string `yaml:"unfilled"`
}

// LoadFromFile loads configuration from a YAML file.
func LoadFromFile(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config file: %w", err)
	}

	var yc yamlConfig
	if err := yaml.Unmarshal(data, &yc); err != nil {
		return Config{}, fmt.Errorf("parse config file: %w", err)
	}

	cfg := Default()

	if yc.Total != 0 {
		cfg.Total = yc.Total
	}
	if yc.Estimator != "" {
		cfg.Estimator = yc.Estimator
	}
	if yc.Alpha != nil {
		cfg.Alpha = *yc.Alpha
	}
	if yc.StartValue != nil {
		cfg.StartValue = *yc.StartValue
	}
	if yc.Batch != 0 {
		cfg.Batch = yc.Batch
	}
	if yc.MeanDelay != "" {
		d, err := time.ParseDuration(yc.MeanDelay)
		if err != nil {
			return Config{}, fmt.Errorf("parse mean_delay: %w", err)
		}
		cfg.MeanDelay = d
	}
	if yc.Seed != nil {
		cfg.Seed = *yc.Seed
	}
	if yc.Progress != nil {
		cfg.Progress = *yc.Progress
	}
	if yc.Bar.Length != 0 {
		cfg.Bar.Length = yc.Bar.Length
	}
	if yc.Bar.PercentDigits != nil {
		cfg.Bar.PercentDigits = *yc.Bar.PercentDigits
	}
	if yc.Bar.Filled != "" {
		cfg.Bar.Filled = yc.Bar.Filled
	}
	if yc.Bar.Unfilled != "" {
		cfg.Bar.Unfilled = yc.Bar.Unfilled
	}

	return cfg, nil
}

// LoadFromEnv loads configuration from environment variables.
// Environment variables use the PACE_ prefix.
func (c *Config) LoadFromEnv() error {
	if v := os.Getenv("PACE_TOTAL"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("parse PACE_TOTAL: %w", err)
		}
		c.Total = n
	}
	if v := os.Getenv("PACE_ESTIMATOR"); v != "" {
		c.Estimator = v
	}
	if v := os.Getenv("PACE_ALPHA"); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("parse PACE_ALPHA: %w", err)
		}
		c.Alpha = f
	}
	if v := os.Getenv("PACE_START_VALUE"); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("parse PACE_START_VALUE: %w", err)
		}
		c.StartValue = f
	}
	if v := os.Getenv("PACE_BATCH"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("parse PACE_BATCH: %w", err)
		}
		c.Batch = n
	}
	if v := os.Getenv("PACE_MEAN_DELAY"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("parse PACE_MEAN_DELAY: %w", err)
		}
		c.MeanDelay = d
	}
	if v := os.Getenv("PACE_SEED"); v != "" {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return fmt.Errorf("parse PACE_SEED: %w", err)
		}
		c.Seed = n
	}
	if v := os.Getenv("PACE_PROGRESS"); v != "" {
		c.Progress = v == "true" || v == "1"
	}

	return nil
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if c.Total <= 0 {
		return errors.New("config: total must be positive")
	}
	if c.Estimator != EstimatorSimple && c.Estimator != EstimatorEWMA {
		return fmt.Errorf("config: unknown estimator %q (want %q or %q)",
			c.Estimator, EstimatorSimple, EstimatorEWMA)
	}
	if c.Alpha < 0 || c.Alpha > 1 {
		return errors.New("config: alpha must be between 0 and 1")
	}
	if c.StartValue <= 0 {
		return errors.New("config: start_value must be positive")
	}
	if c.Batch <= 0 {
		return errors.New("config: batch must be positive")
	}
	if c.MeanDelay < 0 {
		return errors.New("config: mean_delay must not be negative")
	}
	if c.Bar.Length <= 0 {
		return errors.New("config: bar.length must be positive")
	}
	if c.Bar.PercentDigits < 0 {
		return errors.New("config: bar.percent_digits must not be negative")
	}
	if utf8.RuneCountInString(c.Bar.Filled) != 1 {
		return errors.New("config: bar.filled must be a single character")
	}
	if utf8.RuneCountInString(c.Bar.Unfilled) != 1 {
		return errors.New("config: bar.unfilled must be a single character")
	}
	return nil
}

// NewStrategy builds the eta.Strategy the configuration asks for.
func (c *Config) NewStrategy() (eta.Strategy, error) {
	switch c.Estimator {
	case EstimatorEWMA:
		return eta.NewEWMA(c.Alpha, c.StartValue)
	default:
		return eta.SimpleAverage{}, nil
	}
}

// RenderOptions translates the bar settings into eta.RenderOptions.
func (c *Config) RenderOptions() eta.RenderOptions {
	digits := c.Bar.PercentDigits
	if digits == 0 {
		digits = -1
	}
	filled, _ := utf8.DecodeRuneInString(c.Bar.Filled)
	unfilled, _ := utf8.DecodeRuneInString(c.Bar.Unfilled)
	return eta.RenderOptions{
		PercentDigits: digits,
		BarLength:     c.Bar.Length,
		FilledChar:    filled,
		UnfilledChar:  unfilled,
	}
}
