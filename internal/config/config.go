// Package config loads timetable CLI settings from a YAML file.
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/ukaji3/timetable-go/pkg/timetable"
	"github.com/ukaji3/timetable-go/pkg/timetable/schedule"
	"gopkg.in/yaml.v3"
)

// DefaultPath is read when no config file is named.
const DefaultPath = "timetable.yaml"

// DefaultSchool is printed on documents when no school is configured.
const DefaultSchool = "School Timetable"

// Config holds the CLI settings.
type Config struct {
	// School is printed at the top of every document.
	School string `yaml:"school"`
	// Sheet is the worksheet holding the timetable.
	Sheet string `yaml:"sheet"`
	// ShortDayPeriods is the number of Friday periods, 5 or 6.
	ShortDayPeriods int `yaml:"short_day_periods"`
	// SkipSubHeader drops the row under the header.
	SkipSubHeader bool `yaml:"skip_sub_header"`
	// Match is "substring" or "identity".
	Match string `yaml:"match"`
	// Strict fails on a teacher placed in two classes at once.
	Strict bool `yaml:"strict"`
	// Workers bounds concurrent document writes during export.
	Workers int `yaml:"workers"`

	Logging LoggingConfig `yaml:"logging"`
}

// LoggingConfig configures logging.
type LoggingConfig struct {
	Level  string `yaml:"level"`  // debug, info, warn, error
	Format string `yaml:"format"` // console, json
}

// DefaultConfig returns the built-in settings.
func DefaultConfig() *Config {
	return &Config{
		School:          DefaultSchool,
		Sheet:           timetable.DefaultSheet,
		ShortDayPeriods: timetable.DefaultShortDayPeriods,
		SkipSubHeader:   true,
		Match:           string(schedule.MatchSubstring),
		Workers:         4,
		Logging: LoggingConfig{
			Level:  "warn",
			Format: "console",
		},
	}
}

// Load reads path over the defaults. An empty path reads DefaultPath if it
// exists; a named file must exist.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	explicit := path != ""
	if !explicit {
		path = DefaultPath
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if !explicit && errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks the settings.
func (c *Config) Validate() error {
	if err := c.Options().Validate(); err != nil {
		return err
	}
	if c.Workers < 1 {
		return fmt.Errorf("workers must be at least 1, got %d", c.Workers)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid log level: %s", c.Logging.Level)
	}
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("invalid log format: %s", c.Logging.Format)
	}
	return nil
}

// Options converts the settings into load options.
func (c *Config) Options() timetable.Options {
	skip := c.SkipSubHeader
	return timetable.Options{
		Sheet:           c.Sheet,
		ShortDayPeriods: c.ShortDayPeriods,
		SkipSubHeader:   &skip,
		Match:           schedule.MatchMode(c.Match),
		Strict:          c.Strict,
	}
}
