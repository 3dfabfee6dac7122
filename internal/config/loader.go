package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// envPrefix is the prefix for environment variable overrides.
const envPrefix = "BARRAGOON"

// Loader handles Viper-based configuration loading.
//
// Use [NewLoader] to create one, then [Loader.Load] for discovery-based
// loading or [Loader.LoadFromFile] for an explicit path.
type Loader struct {
	v *viper.Viper
}

// NewLoader returns a Loader with defaults and environment binding set up.
func NewLoader() *Loader {
	v := viper.New()

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	defaults := DefaultConfig()
	v.SetDefault("engine.name", defaults.Engine.Name)
	v.SetDefault("engine.author", defaults.Engine.Author)
	v.SetDefault("server.host", defaults.Server.Host)
	v.SetDefault("server.port", defaults.Server.Port)
	v.SetDefault("server.public_dir", defaults.Server.PublicDir)
	v.SetDefault("output.style", defaults.Output.Style)
	v.SetDefault("output.color", defaults.Output.Color)
	v.SetDefault("output.coordinates", defaults.Output.Coordinates)
	v.SetDefault("library.path", defaults.Library.Path)

	return &Loader{v: v}
}

// Load loads configuration using the documented discovery order.
//
// A missing config file is not an error; defaults and environment overrides
// still apply. A present but malformed file is an error.
func (l *Loader) Load() (*Config, error) {
	if path := os.Getenv(envPrefix + "_CONFIG_PATH"); path != "" {
		return l.LoadFromFile(path)
	}

	l.v.SetConfigName("barragoon")
	l.v.SetConfigType("yaml")
	if dir, err := os.UserConfigDir(); err == nil {
		l.v.AddConfigPath(filepath.Join(dir, "barragoon"))
	}
	l.v.AddConfigPath(".")

	if err := l.v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	return l.unmarshal()
}

// LoadFromFile loads configuration from an explicit file path.
func (l *Loader) LoadFromFile(path string) (*Config, error) {
	l.v.SetConfigFile(path)

	if err := l.v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	return l.unmarshal()
}

func (l *Loader) unmarshal() (*Config, error) {
	cfg := DefaultConfig()
	if err := l.v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}
	return cfg, nil
}
