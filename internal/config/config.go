// Package config loads CLI defaults from a config file and environment.
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/viper"
)

// Defaults holds settings a user may preconfigure instead of passing flags.
// Precedence, lowest to highest: built-in default, config file, environment,
// then the flag itself (applied by the caller).
type Defaults struct {
	// Format is the default output format, "json" or "text".
	Format string
	// Top is the default --top limit for word counts; 0 means unlimited.
	Top int
}

// Load reads defaults from .kata.yaml in the working directory or $HOME, and
// from KATA_-prefixed environment variables (KATA_FORMAT, KATA_TOP). A
// missing config file is not an error.
func Load() (Defaults, error) {
	v := viper.New()
	v.SetConfigName(".kata")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	if home, err := os.UserHomeDir(); err == nil {
		v.AddConfigPath(home)
	}
	v.SetEnvPrefix("KATA")
	v.AutomaticEnv()

	v.SetDefault("format", "json")
	v.SetDefault("top", 0)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Defaults{}, fmt.Errorf("reading config: %w", err)
		}
	}

	return Defaults{
		Format: v.GetString("format"),
		Top:    v.GetInt("top"),
	}, nil
}
