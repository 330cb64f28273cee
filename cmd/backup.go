package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/brooksjoey/deploy-kit/internal/config"
	"github.com/brooksjoey/deploy-kit/internal/deploy"
	"github.com/brooksjoey/deploy-kit/internal/history"
)

// backupCmd copies the deployment directory to a backup destination and
// exits non-zero when the backup fails or is disabled.
var backupCmd = &cobra.Command{
	Use:   "backup [path]",
	Short: "Create a backup of the deployment directory",
	Long: `Create a recursive copy of the deployment directory.

The optional argument overrides the destination; without it the backup is
written next to the deployment path with a timestamp suffix, e.g.
/var/www/html_backup_20260831_142557.`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		cfg := config.Load(configPath)

		var dest string
		if len(args) > 0 {
			dest = args[0]
		}

		result := deploy.Backup(cfg, dest)
		// A disabled backup never ran, so there is nothing to record.
		if result.Reason == "" {
			recordRun(history.ActionBackup, result.BackupPath, result.Success)
		}

		if !result.Success {
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(backupCmd)
}
