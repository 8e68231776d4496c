// Package config manages application configuration from files and environment.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/spf13/viper"
)

// Config holds the application configuration.
type Config struct {
	Output struct {
		Dir   string `mapstructure:"dir"`
		Color bool   `mapstructure:"color"`
	} `mapstructure:"output"`
	Demo struct {
		Seed int64 `mapstructure:"seed"`
	} `mapstructure:"demo"`
	Superstore struct {
		Data string `mapstructure:"data"`
		Plan string `mapstructure:"plan"`
	} `mapstructure:"superstore"`
	Watch struct {
		Debounce int `mapstructure:"debounce"`
	} `mapstructure:"watch"`
}

// Load reads the configuration from ~/.decksmith/config.yaml and environment
// variables.
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(configDir())

	setDefaults()

	// Environment variable overrides
	viper.SetEnvPrefix("DECKSMITH")
	viper.AutomaticEnv()

	// Read config file (non-fatal if missing)
	_ = viper.ReadInConfig()

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func setDefaults() {
	viper.SetDefault("output.dir", ".")
	viper.SetDefault("output.color", true)
	viper.SetDefault("demo.seed", 42)
	viper.SetDefault("superstore.data", "")
	viper.SetDefault("superstore.plan", "")
	viper.SetDefault("watch.debounce", 500)
}

// Set stores a configuration value and writes the config file.
func Set(key, value string) error {
	viper.Set(key, value)
	return SaveConfig()
}

// Get returns a configuration value as a string.
func Get(key string) string {
	return viper.GetString(key)
}

// ShowConfig returns a human-readable dump of the effective configuration.
func ShowConfig() string {
	keys := viper.AllKeys()
	sort.Strings(keys)

	out := ""
	for _, k := range keys {
		v := viper.GetString(k)
		if v == "" {
			v = "(not set)"
		}
		out += fmt.Sprintf("%-20s %s\n", k, v)
	}
	return out
}

// SaveConfig writes the current configuration to the config file.
func SaveConfig() error {
	dir := configDir()
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("could not create config directory: %w", err)
	}
	return viper.WriteConfigAs(ConfigPath())
}

// ResetConfig restores every key to its default and rewrites the file.
func ResetConfig() error {
	viper.Reset()
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	setDefaults()
	return SaveConfig()
}

// ConfigPath returns the config file path.
func ConfigPath() string {
	return filepath.Join(configDir(), "config.yaml")
}

func configDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".decksmith"
	}
	return filepath.Join(home, ".decksmith")
}
