package deploy

import (
	"fmt"
	"os/exec"
	"strings"

	"github.com/brooksjoey/deploy-kit/internal/logger"
)

// restartArgs builds the service manager invocation for one service.
// A package variable so tests can substitute a harmless command.
var restartArgs = func(service string) []string {
	return []string{"sudo", "systemctl", "restart", service}
}

// RestartServices restarts the given services strictly in order, one at a
// time, through the system service manager. A failed restart is logged and
// does not stop the remaining services: one bad service name must never
// block the others.
//
// The returned slice holds one ServiceResult per service in input order.
func RestartServices(services []string) []ServiceResult {
	logger.Info("[INFO] Restarting services...\n")

	if len(services) == 0 {
		logger.Warn("[WARN] No services configured for restart\n")
		return nil
	}

	results := make([]ServiceResult, 0, len(services))
	for _, service := range services {
		logger.Info("[INFO] Restarting service: %s\n", service)

		args := restartArgs(service)
		cmd := exec.Command(args[0], args[1:]...)
		logger.Debug("[DEBUG] Running command: %s\n", strings.Join(cmd.Args, " "))

		output, err := cmd.CombinedOutput()
		if err != nil {
			detail := fmt.Sprintf("%v", err)
			if out := strings.TrimSpace(string(output)); out != "" {
				detail = fmt.Sprintf("%v: %s", err, out)
			}
			logger.Error("[ERROR] Failed to restart service %s: %s\n", service, detail)
			results = append(results, ServiceResult{Service: service, Error: detail})
			continue
		}

		logger.Info("[INFO] Service %s restarted successfully\n", service)
		results = append(results, ServiceResult{Service: service, Success: true})
	}

	return results
}
