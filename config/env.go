package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"

	"github.com/philipp01105/pipelog/core"
	"github.com/philipp01105/pipelog/logger"
)

// EnvPrefix prefixes the environment variables read by ApplyEnv.
const EnvPrefix = "PIPELOG_"

// Overrides are the logger settings that can come from the environment
type Overrides struct {
	Name  string `env:"NAME"`
	Level string `env:"LEVEL"`
}

// LoadOverrides reads PIPELOG_NAME and PIPELOG_LEVEL
func LoadOverrides() (Overrides, error) {
	ov, err := env.ParseAsWithOptions[Overrides](env.Options{Prefix: EnvPrefix})
	if err != nil {
		return Overrides{}, fmt.Errorf("%w: %w", core.ErrConfiguration, err)
	}
	return ov, nil
}

// ApplyEnv replaces the name and level of cfg with PIPELOG_NAME and
// PIPELOG_LEVEL when they are set. An unknown level fails with
// core.ErrValidation.
func ApplyEnv(cfg *logger.Config) error {
	ov, err := LoadOverrides()
	if err != nil {
		return err
	}
	if ov.Level != "" {
		if _, err := core.ParseLevel(ov.Level); err != nil {
			return fmt.Errorf("%sLEVEL: %w", EnvPrefix, err)
		}
		cfg.Level = ov.Level
	}
	if ov.Name != "" {
		cfg.Name = ov.Name
	}
	return nil
}
