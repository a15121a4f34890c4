package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/datavault-io/watchlist/pkg/cli/format"
	"github.com/datavault-io/watchlist/pkg/timeutil"
	"github.com/datavault-io/watchlist/pkg/types"
	"github.com/datavault-io/watchlist/pkg/watchlist"
)

var (
	// Retrieve command flags
	retrieveUser      string
	retrievePassword  string
	retrieveTimestamp string
	retrieveWriteTo   string
)

// retrieveErrorCauses labels the statuses the GET endpoint is known to return.
var retrieveErrorCauses = map[int]string{
	401: "improper credentials",
	404: "no active configuration for the given date and time",
}

// retrieveCmd represents the retrieve command
var retrieveCmd = &cobra.Command{
	Use:   "retrieve",
	Short: "Retrieve a configuration from the Watchlist API",
	Long: `Retrieve a watchlist configuration.

Without --timestamp, the command retrieves the configuration active at the
time of the call. With --timestamp, it retrieves the configuration that was
active at the given UTC instant. The retrieved CSV is written unmodified to
watchlist_config@<timestamp>.csv in the output directory.`,
	Args: cobra.NoArgs,
	RunE: runRetrieve,
	Example: `  # Retrieve the currently active configuration
  watchlist retrieve

  # Retrieve the configuration active at a past point in time
  watchlist retrieve --timestamp 2020-11-18T12:30:52Z --write-to /tmp/configs`,
}

func init() {
	rootCmd.AddCommand(retrieveCmd)

	retrieveCmd.Flags().StringVarP(&retrieveUser, "user", "u", "", "Username used to access the Watchlist API (falls back to ICE_API_USERNAME)")
	retrieveCmd.Flags().StringVarP(&retrievePassword, "password", "p", "", "Password used to access the Watchlist API (falls back to ICE_API_PASSWORD)")
	retrieveCmd.Flags().StringVarP(&retrieveTimestamp, "timestamp", "t", "", "UTC timestamp (ISO 8601, YYYY-mm-ddTHH:MM:SSZ) of the configuration to retrieve")
	retrieveCmd.Flags().StringVarP(&retrieveWriteTo, "write-to", "w", "", "Directory the retrieved configuration is written to (default: current working directory)")
}

func runRetrieve(cmd *cobra.Command, args []string) error {
	creds := resolveCredentials(retrieveUser, retrievePassword)
	if err := creds.Validate(); err != nil {
		return fmt.Errorf("missing credentials: %w", err)
	}

	var isoTimestamp string
	if retrieveTimestamp != "" {
		normalized, err := timeutil.Convert(retrieveTimestamp, timeutil.ISOLayout)
		if err != nil {
			return fmt.Errorf("invalid timestamp: %w", err)
		}
		isoTimestamp = normalized
	}

	apiClient, err := newAPIClient(creds)
	if err != nil {
		return err
	}

	var cfg types.RetrievedConfig
	err = runWithSpinner("Retrieving configuration", func() error {
		var err error
		cfg, err = apiClient.RetrieveConfig(cmd.Context(), isoTimestamp)
		return err
	})
	if err != nil {
		return describeHTTPError(err, retrieveErrorCauses)
	}

	dir, err := outputDir(retrieveWriteTo)
	if err != nil {
		return err
	}
	path, err := watchlist.WriteRetrievedConfig(cfg, dir)
	if err != nil {
		return err
	}
	format.WrittenTo("retrieved configuration", path)
	return nil
}
