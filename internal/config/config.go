// Package config holds defaults and the on-disk configuration schema for the
// watchlist CLI.
package config

import (
	"time"

	"github.com/spf13/viper"
)

var (
	// DefaultEndpoint is the production Watchlist API endpoint, serving both
	// the GET and POST operations.
	DefaultEndpoint = "https://watchlistapi.icedatavault.icedataservices.com/v1/configurations/watchlists"

	// DefaultTimeout bounds a single API call.
	DefaultTimeout = 30 * time.Second
)

// Environment variables the CLI falls back to for credentials.
const (
	EnvUsername = "ICE_API_USERNAME"
	EnvPassword = "ICE_API_PASSWORD"
)

// ConfigDirName is the per-user configuration directory under $HOME.
const ConfigDirName = ".watchlist"

// API is the api section of the configuration file.
type API struct {
	URL      string        `yaml:"url"`
	Username string        `yaml:"username"`
	Password string        `yaml:"password"`
	Timeout  time.Duration `yaml:"timeout"`
}

// Log is the log section of the configuration file.
type Log struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// Config is the full configuration file schema ($HOME/.watchlist/config.yaml).
type Config struct {
	API API `yaml:"api"`
	Log Log `yaml:"log"`
}

// FromViper builds a Config from the given viper instance, applying defaults
// for unset values.
func FromViper(v *viper.Viper) *Config {
	cfg := &Config{
		API: API{
			URL:      v.GetString("api.url"),
			Username: v.GetString("api.username"),
			Password: v.GetString("api.password"),
			Timeout:  v.GetDuration("api.timeout"),
		},
		Log: Log{
			Level:  v.GetString("log.level"),
			Format: v.GetString("log.format"),
		},
	}
	if cfg.API.URL == "" {
		cfg.API.URL = DefaultEndpoint
	}
	if cfg.API.Timeout == 0 {
		cfg.API.Timeout = DefaultTimeout
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = "info"
	}
	if cfg.Log.Format == "" {
		cfg.Log.Format = "text"
	}
	return cfg
}
