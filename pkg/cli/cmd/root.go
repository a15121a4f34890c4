package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/datavault-io/watchlist/internal/config"
	"github.com/datavault-io/watchlist/pkg/cli/format"
	"github.com/datavault-io/watchlist/pkg/log"
	"github.com/datavault-io/watchlist/pkg/version"
)

var (
	cfgFile string
	verbose bool
	apiURL  string
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "watchlist",
	Short: "Watchlist - client for the ICE Watchlist API",
	Long: `Watchlist is a client for the ICE Watchlist API, the service that
manages financial-instrument source subscriptions. It submits CSV
configuration files and retrieves active or historical configurations.`,
	Run: func(cmd *cobra.Command, args []string) {
		// If no subcommand is specified, display the help
		if len(args) == 0 {
			cmd.Help()
			return
		}
	},
	Version:       version.Version,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		format.Error("%v", err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.watchlist/config.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().StringVar(&apiURL, "api-url", "", "Watchlist API endpoint URL")
	viper.BindPFlag("api.url", rootCmd.PersistentFlags().Lookup("api-url"))

	// Credentials fall back to the ICE_API_* environment variables.
	viper.BindEnv("api.username", config.EnvUsername)
	viper.BindEnv("api.password", config.EnvPassword)
	viper.AutomaticEnv()

	rootCmd.AddCommand(newConfigCmd())
}

// initConfig reads in config file and ENV variables if set, and configures the
// default logger.
func initConfig() {
	if cfgFile != "" {
		// Use config file from the flag.
		viper.SetConfigFile(cfgFile)
	} else if home, err := os.UserHomeDir(); err == nil {
		// Search config in the home directory under .watchlist.
		viper.AddConfigPath(filepath.Join(home, config.ConfigDirName))
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")
	}

	// If a config file is found, read it in.
	if err := viper.ReadInConfig(); err == nil && verbose {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}

	cfg := config.FromViper(viper.GetViper())

	level := log.ParseLevel(cfg.Log.Level)
	if verbose {
		level = log.DebugLevel
	}
	var formatter log.Formatter
	if cfg.Log.Format == "json" {
		formatter = &log.JSONFormatter{}
	} else {
		formatter = log.NewTextFormatter()
	}
	log.SetDefaultLogger(log.NewLogger(log.WithLevel(level), log.WithFormatter(formatter)))
}
