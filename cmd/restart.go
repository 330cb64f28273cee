package cmd

import (
	"github.com/spf13/cobra"

	"github.com/brooksjoey/deploy-kit/internal/config"
	"github.com/brooksjoey/deploy-kit/internal/deploy"
)

// restartCmd restarts every configured service sequentially. Individual
// failures are reported per service but never abort the run, and the
// command always exits zero.
var restartCmd = &cobra.Command{
	Use:   "restart",
	Short: "Restart configured services",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		cfg := config.Load(configPath)
		deploy.RestartServices(cfg.Services)
	},
}

func init() {
	rootCmd.AddCommand(restartCmd)
}
