package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/brooksjoey/deploy-kit/internal/deploy"
	"github.com/brooksjoey/deploy-kit/internal/history"
)

// scriptsDir is the directory deployment scripts are resolved from.
var scriptsDir string

// deployCmd runs a deployment script and exits non-zero when it fails.
var deployCmd = &cobra.Command{
	Use:   "deploy [script]",
	Short: "Execute a deployment script",
	Long: `Execute a deployment script from the scripts directory.

The optional argument is the script base name without the .sh suffix;
it defaults to "deploy" (i.e. scripts/deploy.sh).`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		name := deploy.DefaultScript
		if len(args) > 0 {
			name = args[0]
		}

		result := deploy.RunScript(scriptsDir, name)
		recordRun(history.ActionDeploy, name, result.Success)

		if !result.Success {
			os.Exit(1)
		}
	},
}

func init() {
	deployCmd.Flags().StringVar(&scriptsDir, "scripts-dir", "scripts", "Directory containing deployment scripts")
	rootCmd.AddCommand(deployCmd)
}

// recordRun appends one run record to the history file, unless history
// recording is switched off.
func recordRun(action, target string, success bool) {
	if noHistory {
		return
	}
	h := history.Load(historyPath)
	h.Append(action, target, success)
	history.Save(historyPath, h)
}
