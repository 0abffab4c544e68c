// Package config provides Viper-based configuration loading for the duel simulator.
package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"github.com/cory-johannsen/duel/internal/game/combat"
)

// RulesConfig holds the combat rule constants.
type RulesConfig struct {
	// MaxHealth is the maximum (and default starting) health of every entity.
	MaxHealth int `mapstructure:"max_health"`
	// HealAmount is the amount restored by a heal action that names no amount.
	HealAmount int `mapstructure:"heal_amount"`
	// TurnCap bounds the number of turns a simulated match or autoplay may run.
	TurnCap int `mapstructure:"turn_cap"`
}

// Rules converts the configured values into combat rules.
//
// Postcondition: Returns a combat.Rules with the same field values.
func (r RulesConfig) Rules() combat.Rules {
	return combat.Rules{
		MaxHealth:  r.MaxHealth,
		HealAmount: r.HealAmount,
		TurnCap:    r.TurnCap,
	}
}

// LoggingConfig holds structured logging settings.
type LoggingConfig struct {
	// Level is the minimum log level: "debug", "info", "warn", "error".
	Level string `mapstructure:"level"`
	// Format is the log output format: "json" or "console".
	Format string `mapstructure:"format"`
}

// Config is the top-level application configuration.
type Config struct {
	Rules   RulesConfig   `mapstructure:"rules"`
	Logging LoggingConfig `mapstructure:"logging"`
}

// Validate checks all configuration invariants.
//
// Postcondition: Returns nil if configuration is valid, or an error describing all violations.
func (c Config) Validate() error {
	var errs []string

	if err := validateRules(c.Rules); err != nil {
		errs = append(errs, err.Error())
	}
	if err := validateLogging(c.Logging); err != nil {
		errs = append(errs, err.Error())
	}

	if len(errs) > 0 {
		return fmt.Errorf("configuration validation failed: %s", strings.Join(errs, "; "))
	}
	return nil
}

func validateRules(r RulesConfig) error {
	var errs []string
	if r.MaxHealth < 1 {
		errs = append(errs, fmt.Sprintf("rules.max_health must be >= 1, got %d", r.MaxHealth))
	}
	if r.HealAmount < 0 {
		errs = append(errs, fmt.Sprintf("rules.heal_amount must be >= 0, got %d", r.HealAmount))
	}
	if r.TurnCap < 1 {
		errs = append(errs, fmt.Sprintf("rules.turn_cap must be >= 1, got %d", r.TurnCap))
	}
	if len(errs) > 0 {
		return fmt.Errorf("%s", strings.Join(errs, "; "))
	}
	return nil
}

func validateLogging(l LoggingConfig) error {
	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[l.Level] {
		return fmt.Errorf("logging.level must be one of [debug, info, warn, error], got %q", l.Level)
	}
	validFormats := map[string]bool{"json": true, "console": true}
	if !validFormats[l.Format] {
		return fmt.Errorf("logging.format must be one of [json, console], got %q", l.Format)
	}
	return nil
}

// Load reads configuration from the given file path, applies environment variable
// overrides, and validates the result. An empty path skips the file and uses
// defaults plus environment overrides only.
//
// Postcondition: Returns a valid Config or a non-nil error.
func Load(path string) (Config, error) {
	v := viper.New()

	// Environment variable overrides with DUEL_ prefix
	v.SetEnvPrefix("DUEL")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("reading config file: %w", err)
		}
	}

	return LoadFromViper(v)
}

// LoadFromViper builds a Config from an already-configured Viper instance.
//
// Precondition: v must be non-nil and have configuration values set.
// Postcondition: Returns a valid Config or a non-nil error.
func LoadFromViper(v *viper.Viper) (Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("unmarshalling config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	defaults := combat.DefaultRules()
	v.SetDefault("rules.max_health", defaults.MaxHealth)
	v.SetDefault("rules.heal_amount", defaults.HealAmount)
	v.SetDefault("rules.turn_cap", defaults.TurnCap)

	v.SetDefault("logging.level", "warn")
	v.SetDefault("logging.format", "console")
}
