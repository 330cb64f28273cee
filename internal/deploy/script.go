package deploy

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/brooksjoey/deploy-kit/internal/logger"
)

// DefaultScript is the script base name used when the caller supplies none.
const DefaultScript = "deploy"

// RunScript resolves `<scriptsDir>/<name>.sh` and executes it with bash,
// waiting for completion and capturing stdout and stderr separately.
//
// Classification of the outcome:
//   - script file missing      -> Success false, Error (no process spawned)
//   - exit code 0              -> Success true, Output = stdout
//   - exit code N != 0         -> Success false, Error = stderr, ExitCode = N
//   - launch failure (no bash) -> Success false, Error = message
func RunScript(scriptsDir, name string) ActionResult {
	logger.Info("[INFO] Starting deployment: %s\n", name)

	scriptPath := filepath.Join(scriptsDir, name+".sh")
	if _, err := os.Stat(scriptPath); err != nil {
		logger.Error("[ERROR] Deployment script not found: %s\n", scriptPath)
		return ActionResult{Error: fmt.Sprintf("deployment script not found: %s", scriptPath)}
	}

	logger.Info("[INFO] Executing script: %s\n", scriptPath)

	cmd := exec.Command("bash", scriptPath)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	logger.Debug("[DEBUG] Running command: %s\n", strings.Join(cmd.Args, " "))

	err := cmd.Run()
	if err == nil {
		logger.Info("[INFO] Deployment completed successfully\n")
		logger.Info("[INFO] Output: %s\n", stdout.String())
		return ActionResult{Success: true, Output: stdout.String()}
	}

	// A non-zero exit carries the script's stderr and exit code; anything
	// else (interpreter missing, permission denied) only has the message.
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		code := exitErr.ExitCode()
		logger.Error("[ERROR] Deployment failed with exit code %d: %s\n", code, stderr.String())
		return ActionResult{Error: stderr.String(), ExitCode: &code}
	}

	logger.Error("[ERROR] Deployment failed: %v\n", err)
	return ActionResult{Error: err.Error()}
}
