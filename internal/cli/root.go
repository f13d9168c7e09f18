package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/LeJamon/goXRPLhash/internal/config"
	"github.com/LeJamon/goXRPLhash/internal/log"
)

var (
	// Global flags
	configFile string
	debug      bool
	jsonLog    bool

	// cfg is loaded before any subcommand runs.
	cfg = config.Default()
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "xrplhash",
	Short: "xrplhash - XRPL canonical hashes",
	Long: `xrplhash computes the canonical hashes of the XRP Ledger: ledger hashes,
transaction IDs and signing hashes, SHAMap tree roots and ledger object indexes.`,
	Version:           "0.1.0-dev",
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: initConfig,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configFile, "conf", "", "configuration file path")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")
	rootCmd.PersistentFlags().BoolVar(&jsonLog, "json-log", false, "log in JSON format")
}

// initConfig loads the configuration file and environment overrides and
// configures logging.
func initConfig(cmd *cobra.Command, _ []string) error {
	loaded, err := config.LoadConfig(configFile)
	if err != nil {
		return err
	}
	if debug {
		loaded.Log.Level = "debug"
	}
	if jsonLog {
		loaded.Log.JSON = true
	}
	if err := log.SetLoggerOutput(cmd.ErrOrStderr(), loaded.Log.Level, loaded.Log.JSON, loaded.Log.Color); err != nil {
		return err
	}
	cfg = loaded
	log.Debug("configuration loaded", "path", loaded.GetConfigPath(), "workers", loaded.Workers)
	return nil
}
