package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/udisondev/critcalc/internal/model"
)

// ErrInvalidWeapons is returned by Validate for a broken weapons list.
var ErrInvalidWeapons = errors.New("invalid weapons")

// CritCalc holds all configuration for the critcalc tool.
type CritCalc struct {
	// Logging: debug, info, warn, error
	LogLevel string `yaml:"log_level"`

	// Weapons with optional crit_multiplier (-25..99, null or missing = none)
	Weapons []model.WeaponProfile `yaml:"weapons"`
}

// DefaultCritCalc returns CritCalc config with sensible defaults.
func DefaultCritCalc() CritCalc {
	return CritCalc{
		LogLevel: "info",
	}
}

// LoadCritCalc loads critcalc config from a YAML file.
// If the file doesn't exist, returns defaults.
// Out-of-range crit values fail parsing, the error wraps *model.OutOfRangeError.
func LoadCritCalc(path string) (CritCalc, error) {
	cfg := DefaultCritCalc()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("validating config %s: %w", path, err)
	}

	return cfg, nil
}

// Validate checks that every weapon has a unique non-empty name.
func (c CritCalc) Validate() error {
	seen := make(map[string]struct{}, len(c.Weapons))
	for i, w := range c.Weapons {
		if w.Name == "" {
			return fmt.Errorf("%w: weapon #%d has empty name", ErrInvalidWeapons, i)
		}
		if _, dup := seen[w.Name]; dup {
			return fmt.Errorf("%w: duplicate weapon %q", ErrInvalidWeapons, w.Name)
		}
		seen[w.Name] = struct{}{}
	}
	return nil
}
