// Package ioconfig provides I/O operations for loading configuration from
// files and environment variables. This is an impure package that handles
// file system operations.
package ioconfig

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/nedrex/nedrexdb/pkg/config"
	"github.com/spf13/viper"
)

// ConfigFileName is the YAML file searched for in the default locations.
const ConfigFileName = "nedrex.yaml"

// LoadResult contains the loaded configuration and metadata about its
// source.
type LoadResult struct {
	Config     *config.Config
	SourcePath string // Path to config file used, or empty if using defaults
	Source     string // "file", "defaults", or "defaults+env"
}

// Load reads configuration from a YAML file and returns a Config with
// source info. If configPath is empty, it searches default locations:
//   - ./nedrex.yaml
//   - ~/.config/nedrex/nedrex.yaml
//
// Precedence: env vars (NEDREX_*) > config file > defaults.
func Load(configPath string) (*LoadResult, error) {
	v := viper.New()
	v.SetConfigType("yaml")

	v.SetEnvPrefix("NEDREX")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// Defaults are set before reading the file so AutomaticEnv knows
	// which keys to check.
	defaults := config.Defaults()
	v.SetDefault("database.host", defaults.Database.Host)
	v.SetDefault("database.port", defaults.Database.Port)
	v.SetDefault("database.user", defaults.Database.User)
	v.SetDefault("database.password", defaults.Database.Password)
	v.SetDefault("database.database", defaults.Database.Database)
	v.SetDefault("database.ssl_mode", defaults.Database.SSLMode)
	v.SetDefault("database.batch_size", defaults.Database.BatchSize)
	v.SetDefault("clinvar.variant_file", defaults.ClinVar.VariantFile)
	v.SetDefault("clinvar.assertion_file", defaults.ClinVar.AssertionFile)
	v.SetDefault("log.level", defaults.Log.Level)
	v.SetDefault("log.format", defaults.Log.Format)

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		defaultPath, err := DefaultConfigPath()
		if err == nil {
			if _, statErr := os.Stat(defaultPath); statErr == nil {
				v.SetConfigFile(defaultPath)
			}
		}
	}

	configFileRead := false
	usedConfigPath := ""

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			// No config file in default locations: defaults + env vars.
			if configPath != "" {
				return nil, fmt.Errorf("config file not found: %s", configPath)
			}
		} else if configPath != "" && errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("config file not found: %s", configPath)
		} else {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	} else {
		configFileRead = true
		usedConfigPath = v.ConfigFileUsed()
	}

	var cfg config.Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	result := &LoadResult{Config: &cfg}
	switch {
	case configFileRead:
		result.Source = "file"
		result.SourcePath = usedConfigPath
	case hasEnvOverrides():
		result.Source = "defaults+env"
	default:
		result.Source = "defaults"
	}
	return result, nil
}

// DefaultConfigPath returns the path of the config file in the default
// search locations, preferring the working directory.
func DefaultConfigPath() (string, error) {
	if _, err := os.Stat(ConfigFileName); err == nil {
		return ConfigFileName, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "nedrex", ConfigFileName), nil
}

// ConfigFileExists reports whether a config file exists in any default
// location.
func ConfigFileExists() (bool, error) {
	path, err := DefaultConfigPath()
	if err != nil {
		return false, err
	}
	_, err = os.Stat(path)
	if err == nil {
		return true, nil
	}
	if os.IsNotExist(err) {
		return false, nil
	}
	return false, err
}

func hasEnvOverrides() bool {
	for _, env := range os.Environ() {
		if strings.HasPrefix(env, "NEDREX_") {
			return true
		}
	}
	return false
}
