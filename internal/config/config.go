// Package config loads budgetwise settings from an optional YAML file and
// BUDGETWISE_* environment variables.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/alexanderramin/budgetwise/internal/domain"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/rawbytes"
	"github.com/knadh/koanf/v2"
)

const envPrefix = "BUDGETWISE_"

type Config struct {
	DB        DBConfig        `koanf:"db"`
	Log       LogConfig       `koanf:"log"`
	Solver    SolverConfig    `koanf:"solver"`
	Metrics   MetricsConfig   `koanf:"metrics"`
	Emergency EmergencyConfig `koanf:"emergency"`
}

type DBConfig struct {
	Path string `koanf:"path"`
}

type LogConfig struct {
	// UseCases enables structured use-case records on stderr.
	UseCases bool `koanf:"use_cases"`
}

type SolverConfig struct {
	// NodeLimit caps expanded search nodes per solve. Zero is unlimited.
	NodeLimit int `koanf:"node_limit"`
}

type MetricsConfig struct {
	// Textfile, when set, receives Prometheus text-format metrics after
	// every optimize run.
	Textfile string `koanf:"textfile"`
}

type EmergencyConfig struct {
	DefaultType string `koanf:"default_type"`
}

// Load reads configuration with precedence (highest first):
//  1. Environment variables (BUDGETWISE_DB_PATH -> db.path)
//  2. YAML file at path, or BUDGETWISE_CONFIG, or ~/.budgetwise/config.yaml
//  3. Defaults
//
// A missing config file is not an error.
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	if path == "" {
		path = os.Getenv(envPrefix + "CONFIG")
	}
	if path == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("finding home directory: %w", err)
		}
		path = filepath.Join(home, ".budgetwise", "config.yaml")
	}

	content, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := k.Load(rawbytes.Provider(content), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("loading config file %s: %w", path, err)
		}
	case !os.IsNotExist(err):
		return nil, fmt.Errorf("reading config file %s: %w", path, err)
	}

	if err := k.Load(env.Provider(envPrefix, ".", envKey), nil); err != nil {
		return nil, fmt.Errorf("loading environment variables: %w", err)
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	if err := applyDefaults(&cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return &cfg, nil
}

// envKey maps BUDGETWISE_SECTION_FIELD_NAME to section.field_name.
func envKey(s string) string {
	lower := strings.ToLower(strings.TrimPrefix(s, envPrefix))
	section, field, ok := strings.Cut(lower, "_")
	if !ok {
		return lower
	}
	return section + "." + field
}

func applyDefaults(cfg *Config) error {
	if cfg.DB.Path == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("finding home directory: %w", err)
		}
		cfg.DB.Path = filepath.Join(home, ".budgetwise", "budgetwise.db")
	}
	if cfg.Emergency.DefaultType == "" {
		cfg.Emergency.DefaultType = string(domain.EmergencyTyphoon)
	}
	return nil
}

func (c *Config) Validate() error {
	if c.Solver.NodeLimit < 0 {
		return fmt.Errorf("solver.node_limit must not be negative, got %d", c.Solver.NodeLimit)
	}
	t, ok := domain.ParseEmergencyType(c.Emergency.DefaultType)
	if !ok {
		return fmt.Errorf("emergency.default_type %q is not one of Typhoon, Earthquake, Flood, Fire, Health Crisis", c.Emergency.DefaultType)
	}
	c.Emergency.DefaultType = string(t)
	return nil
}
