package cmd

import (
	"fmt"
	"os"

	"github.com/pterm/pterm"
	"github.com/spf13/viper"

	"github.com/datavault-io/watchlist/internal/config"
	"github.com/datavault-io/watchlist/pkg/api/client"
	"github.com/datavault-io/watchlist/pkg/cli/format"
	"github.com/datavault-io/watchlist/pkg/log"
	"github.com/datavault-io/watchlist/pkg/types"
)

// resolveCredentials merges explicit flag values over the environment and
// config file values bound in viper.
func resolveCredentials(user, password string) types.Credentials {
	if user == "" {
		user = viper.GetString("api.username")
	}
	if password == "" {
		password = viper.GetString("api.password")
	}
	return types.Credentials{Username: user, Password: password}
}

// newAPIClient builds an API client from the resolved configuration.
func newAPIClient(creds types.Credentials) (*client.Client, error) {
	cfg := config.FromViper(viper.GetViper())

	opts := client.DefaultClientOptions()
	opts.BaseURL = cfg.API.URL
	opts.Timeout = cfg.API.Timeout
	opts.Credentials = creds
	opts.Logger = log.GetDefaultLogger().WithComponent("api-client")
	return client.NewClient(opts)
}

// describeHTTPError appends a human-readable cause label for known status
// codes; unknown statuses and non-HTTP errors are surfaced as-is.
func describeHTTPError(err error, causes map[int]string) error {
	he, ok := types.AsHTTPError(err)
	if !ok {
		return err
	}
	if cause, known := causes[he.Status]; known {
		return fmt.Errorf("%s: %s", he.Error(), cause)
	}
	return err
}

// runWithSpinner runs fn behind a spinner when stdout is a terminal, and
// plainly otherwise.
func runWithSpinner(message string, fn func() error) error {
	if !format.IsTerminal() {
		return fn()
	}
	spinner, spinErr := pterm.DefaultSpinner.Start(message)
	err := fn()
	if spinErr == nil {
		if err != nil {
			spinner.Fail(message)
		} else {
			spinner.Stop()
		}
	}
	return err
}

// outputDir resolves the -w/--write-to directory, defaulting to the current
// working directory.
func outputDir(writeTo string) (string, error) {
	if writeTo != "" {
		return writeTo, nil
	}
	dir, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("failed to resolve working directory: %w", err)
	}
	return dir, nil
}
