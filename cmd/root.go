package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/brooksjoey/deploy-kit/internal/logger"
)

// debug flag indicates whether debug logging should be enabled.
// It can be toggled via the `--debug` command-line flag.
var debug bool

// configPath holds the path to the deployment configuration file.
// It's passed via the `--config` or `-c` flag and defaults to the
// conventional config/config.json location.
var configPath string

// noHistory disables writing run records to the history file.
var noHistory bool

// historyPath is the path to the run-history file recording past deploy
// and backup runs. You can make this configurable too.
var historyPath = "history.json"

// rootCmd is the base command for the CLI tool `deploy-kit`.
// It sets up the root-level CLI structure and provides global flags.
// With no subcommand, cobra prints the usage text and exits zero.
var rootCmd = &cobra.Command{
	Use:   "deploy-kit",                // The name of the CLI tool
	Short: "Minimal deployment helper", // Short description shown in help output
	Long: `deploy-kit is a minimal deployment helper.

It runs deployment scripts, restarts configured services, and creates
backups of the deployment directory, driven by a small JSON config file.`,
	Example: `  deploy-kit deploy           # Run default scripts/deploy.sh
  deploy-kit deploy custom    # Run scripts/custom.sh
  deploy-kit status           # Show current status as JSON
  deploy-kit restart          # Restart all configured services
  deploy-kit backup           # Create timestamped backup`,

	// PersistentPreRun is a hook that runs before any subcommand.
	// Here, we initialize the logger based on the debug flag.
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logger.Init(debug) // Set up logging (verbose if --debug is true)
	},
}

// Execute initializes flags, registers subcommands, and starts the command execution.
// It's the entry point for the CLI when invoked by the user.
func Execute() {
	// Register the global flags before any command is executed.
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "Enable debug logging")
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "config/config.json", "Path to configuration file")
	rootCmd.PersistentFlags().BoolVar(&noHistory, "no-history", false, "Do not record runs in the history file")

	// Execute runs the appropriate subcommand or displays help if none is provided.
	// Unknown commands and flag errors surface here and map to a non-zero exit.
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
