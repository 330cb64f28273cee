package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/brooksjoey/deploy-kit/internal/config"
	"github.com/brooksjoey/deploy-kit/internal/deploy"
	"github.com/brooksjoey/deploy-kit/internal/history"
)

// statusCmd prints the current deployment status as indented JSON on
// standard output. It is a pure read and always exits zero.
var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show deployment status as JSON",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		cfg := config.Load(configPath)

		var last *history.Record
		if !noHistory {
			last = history.Load(historyPath).LastDeploy()
		}

		snapshot := deploy.Status(cfg, last)
		out, _ := json.MarshalIndent(snapshot, "", "  ")
		fmt.Println(string(out))
	},
}

func init() {
	rootCmd.AddCommand(statusCmd)
}
