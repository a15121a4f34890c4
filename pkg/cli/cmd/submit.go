package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/datavault-io/watchlist/pkg/cli/format"
	"github.com/datavault-io/watchlist/pkg/types"
	"github.com/datavault-io/watchlist/pkg/watchlist"
)

var (
	// Submit command flags
	submitUser     string
	submitPassword string
	submitQuiet    bool
	submitJSON     bool
	submitWriteTo  string
)

// submitErrorCauses labels the statuses the POST endpoint is known to return.
var submitErrorCauses = map[int]string{
	400: "input CSV file is improperly formatted",
	401: "improper credentials",
	500: "failed request",
}

// submitCmd represents the submit command
var submitCmd = &cobra.Command{
	Use:   "submit <config-file>",
	Short: "Submit a configuration file to the Watchlist API",
	Long: `Submit a watchlist configuration file to the Watchlist API.

The file is validated locally against the configuration grammar before any
network call; an improperly formatted file is rejected with the offending
line number and the active configuration remains unchanged.

On success the command reports the actions the server performed as a result
of the submission: activation of new sources, update of existing sources,
failed activations, and deactivation of existing sources, with the affected
source IDs. With --json, the raw summary returned by the server is also
saved as a JSON file.`,
	Args: cobra.ExactArgs(1),
	RunE: runSubmit,
	Example: `  # Submit a configuration file
  watchlist submit watchlist.csv

  # Submit quietly and keep the raw summary
  watchlist submit watchlist.csv --quiet --json --write-to /tmp/summaries`,
}

func init() {
	rootCmd.AddCommand(submitCmd)

	submitCmd.Flags().StringVarP(&submitUser, "user", "u", "", "Username used to access the Watchlist API (falls back to ICE_API_USERNAME)")
	submitCmd.Flags().StringVarP(&submitPassword, "password", "p", "", "Password used to access the Watchlist API (falls back to ICE_API_PASSWORD)")
	submitCmd.Flags().BoolVarP(&submitQuiet, "quiet", "q", false, "Do not display the summary of the actions resulting from the request")
	submitCmd.Flags().BoolVar(&submitJSON, "json", false, "Save the raw request summary as a JSON file")
	submitCmd.Flags().StringVarP(&submitWriteTo, "write-to", "w", "", "Directory the JSON summary is written to (default: current working directory)")
}

func runSubmit(cmd *cobra.Command, args []string) error {
	configFile := args[0]

	creds := resolveCredentials(submitUser, submitPassword)
	if err := creds.Validate(); err != nil {
		return fmt.Errorf("missing credentials: %w", err)
	}

	if err := watchlist.ValidateFile(configFile); err != nil {
		return fmt.Errorf("invalid configuration file: %w", err)
	}

	apiClient, err := newAPIClient(creds)
	if err != nil {
		return err
	}

	var summary types.RequestSummary
	err = runWithSpinner("Submitting configuration", func() error {
		var err error
		summary, err = apiClient.SubmitConfig(cmd.Context(), configFile)
		return err
	})
	if err != nil {
		return describeHTTPError(err, submitErrorCauses)
	}

	if !submitQuiet {
		fmt.Println(watchlist.Stringify(summary))
	}

	if submitJSON {
		dir, err := outputDir(submitWriteTo)
		if err != nil {
			return err
		}
		path, err := watchlist.WriteRequestSummary(summary, dir)
		if err != nil {
			return err
		}
		format.WrittenTo("request summary", path)
	}
	return nil
}
