package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/datavault-io/watchlist/internal/config"
	"github.com/datavault-io/watchlist/pkg/cli/format"
)

func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage the watchlist CLI configuration file",
		Long: `Manage the watchlist CLI configuration file.

The configuration file stores the API endpoint, credentials and logging
preferences so they do not have to be passed on every invocation. Flags and
the ICE_API_* environment variables always take precedence over the file.`,
	}

	cmd.AddCommand(newConfigViewCmd())
	cmd.AddCommand(newConfigSetCmd())

	return cmd
}

func newConfigViewCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "view",
		Short: "View the current configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, path, err := loadFileConfig()
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}

			fmt.Printf("Config file: %s\n\n", path)
			fmt.Printf("API URL:  %s\n", cfg.API.URL)
			fmt.Printf("Username: %s\n", cfg.API.Username)
			fmt.Printf("Password: %s\n", maskSecret(cfg.API.Password))
			fmt.Printf("Timeout:  %s\n", cfg.API.Timeout)
			fmt.Printf("Log:      level=%s format=%s\n", cfg.Log.Level, cfg.Log.Format)
			return nil
		},
	}
}

func newConfigSetCmd() *cobra.Command {
	var url string
	var user string
	var password string
	var timeout time.Duration
	var logLevel string

	cmd := &cobra.Command{
		Use:   "set",
		Short: "Set configuration file values",
		Long: `Set configuration file values.

Only the flags provided are updated; everything else in the file is kept.
The file is created with mode 0600 since it may hold credentials.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, _, err := loadFileConfig()
			if err != nil {
				if !os.IsNotExist(err) {
					return fmt.Errorf("failed to load config: %w", err)
				}
				cfg = &config.Config{}
			}

			if cmd.Flags().Changed("url") {
				cfg.API.URL = url
			}
			if cmd.Flags().Changed("user") {
				cfg.API.Username = user
			}
			if cmd.Flags().Changed("password") {
				cfg.API.Password = password
			}
			if cmd.Flags().Changed("timeout") {
				cfg.API.Timeout = timeout
			}
			if cmd.Flags().Changed("log-level") {
				cfg.Log.Level = logLevel
			}

			path, err := saveFileConfig(cfg)
			if err != nil {
				return err
			}
			format.Success("configuration written to %s", path)
			return nil
		},
	}

	cmd.Flags().StringVar(&url, "url", "", "Watchlist API endpoint URL")
	cmd.Flags().StringVar(&user, "user", "", "Username used to access the Watchlist API")
	cmd.Flags().StringVar(&password, "password", "", "Password used to access the Watchlist API")
	cmd.Flags().DurationVar(&timeout, "timeout", 0, "API call timeout")
	cmd.Flags().StringVar(&logLevel, "log-level", "", "Log level (debug, info, warn, error)")

	return cmd
}

// configFilePath resolves the config file location, honoring the global
// --config flag.
func configFilePath() (string, error) {
	if cfgFile != "" {
		return cfgFile, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to resolve home directory: %w", err)
	}
	return filepath.Join(home, config.ConfigDirName, "config.yaml"), nil
}

func loadFileConfig() (*config.Config, string, error) {
	path, err := configFilePath()
	if err != nil {
		return nil, "", err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, path, err
	}
	var cfg config.Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, path, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return &cfg, path, nil
}

func saveFileConfig(cfg *config.Config) (string, error) {
	path, err := configFilePath()
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return "", fmt.Errorf("failed to create config directory: %w", err)
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return "", fmt.Errorf("failed to encode config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return "", fmt.Errorf("failed to write config at %s: %w", path, err)
	}
	return path, nil
}

func maskSecret(s string) string {
	if s == "" {
		return ""
	}
	if len(s) <= 4 {
		return strings.Repeat("*", len(s))
	}
	return s[:2] + strings.Repeat("*", len(s)-4) + s[len(s)-2:]
}
