// Package config loads process configuration from a .goalsync file and
// GOALSYNC_* environment variables.
package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"
)

// Config carries the few knobs the suite exposes. Entity state is in-memory
// only, so there is nothing here about storage.
type Config struct {
	// CatalogPath points at a resource catalog JSON file. Empty means the
	// embedded sample catalog.
	CatalogPath string
	// AssistantDelay is the artificial thinking pause before a canned reply.
	AssistantDelay time.Duration
	// RevealInterval paces the assistant's typing effect.
	RevealInterval time.Duration
}

// Load reads configuration, tolerating a missing config file.
func Load() (*Config, error) {
	viper.SetDefault("catalog", "")
	viper.SetDefault("assistant.delay", "1s")
	viper.SetDefault("assistant.reveal", "20ms")
	viper.SetConfigName(".goalsync") // .yaml is implicit
	viper.SetEnvPrefix("GOALSYNC")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if override := os.Getenv("GOALSYNC_CONFIG_PATH"); override != "" {
		viper.AddConfigPath(override)
	}
	viper.AddConfigPath("./")
	if home, err := homedir.Dir(); err == nil {
		viper.AddConfigPath(home)
	}

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("config: read: %w", err)
		}
	}

	catalog := viper.GetString("catalog")
	if catalog != "" {
		expanded, err := homedir.Expand(catalog)
		if err != nil {
			return nil, fmt.Errorf("config: expand catalog path: %w", err)
		}
		catalog = expanded
	}

	return &Config{
		CatalogPath:    catalog,
		AssistantDelay: viper.GetDuration("assistant.delay"),
		RevealInterval: viper.GetDuration("assistant.reveal"),
	}, nil
}
