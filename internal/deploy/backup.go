package deploy

import (
	"fmt"
	"os/exec"
	"strings"
	"time"

	"github.com/brooksjoey/deploy-kit/internal/config"
	"github.com/brooksjoey/deploy-kit/internal/logger"
)

// backupTimestamp is the layout for derived backup destination names,
// e.g. /var/www/html_backup_20260831_142557.
const backupTimestamp = "20060102_150405"

// BackupDestination derives the destination directory for a backup of
// deploymentPath taken at time t.
func BackupDestination(deploymentPath string, t time.Time) string {
	return fmt.Sprintf("%s_backup_%s", deploymentPath, t.Format(backupTimestamp))
}

// Backup copies the deployment directory to dest, or to a timestamped
// sibling of the deployment path when dest is empty. With backups disabled
// in the configuration it refuses immediately and performs no I/O at all,
// whatever dest says.
//
// The copy is a `cp -r` child process; any copy failure is captured in the
// result rather than crashing the process.
func Backup(cfg config.Config, dest string) ActionResult {
	if !cfg.BackupOn() {
		logger.Info("[INFO] Backup is disabled in configuration\n")
		return ActionResult{Reason: "Backup disabled"}
	}

	if dest == "" {
		dest = BackupDestination(cfg.DeploymentPath, time.Now())
	}

	logger.Info("[INFO] Creating backup: %s -> %s\n", cfg.DeploymentPath, dest)

	cmd := exec.Command("cp", "-r", cfg.DeploymentPath, dest)
	logger.Debug("[DEBUG] Running command: %s\n", strings.Join(cmd.Args, " "))

	output, err := cmd.CombinedOutput()
	if err != nil {
		detail := fmt.Sprintf("%v", err)
		if out := strings.TrimSpace(string(output)); out != "" {
			detail = fmt.Sprintf("%v: %s", err, out)
		}
		logger.Error("[ERROR] Backup failed: %s\n", detail)
		return ActionResult{Error: detail}
	}

	logger.Info("[INFO] Backup created successfully: %s\n", dest)
	return ActionResult{Success: true, BackupPath: dest}
}
