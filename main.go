package main

import (
	"github.com/brooksjoey/deploy-kit/cmd" // Import the cmd package which contains the CLI commands and execution logic
)

// main is the program entry point.
// It delegates to cmd.Execute() which handles command line argument parsing and execution.
//
// This design cleanly separates the CLI interface (cmd package) from main,
// allowing easier testing, extension, and reuse of the CLI commands.
//
// The deploy-kit project is a minimal deployment helper that:
//   - Reads a JSON (or YAML) configuration file describing the target environment,
//     the deployment path, and the services that belong to the deployment
//   - Executes deployment shell scripts from a scripts directory, capturing their
//     output and exit code and reporting a structured result
//   - Restarts configured OS services through systemd, one at a time, continuing
//     past individual failures so one bad service cannot block the rest
//   - Creates backups of the deployment directory as timestamped copies
//   - Keeps a JSON history file of deploy and backup runs for the status report
//
// Error handling strategy:
//   - Every action catches its own failures and converts them into a result
//     record and an error-severity log line; nothing propagates as a panic
//   - deploy and backup exit non-zero when the action fails, so callers and
//     CI pipelines are notified; status and restart always exit zero
//
// Integration points:
//   - Spawns `bash <script>`, `sudo systemctl restart <service>` and
//     `cp -r <src> <dst>` as child processes, so it depends on those being
//     available on PATH and on sufficient privilege for service restarts
func main() {
	cmd.Execute()
}
