package deploy

// ActionResult is the outcome record produced by the deploy and backup
// actions. Every foreseeable failure is folded into one of these at the
// action boundary instead of propagating as an error value or a panic.
//
// Success true implies Error, ExitCode and Reason are unset.
type ActionResult struct {
	Success    bool   `json:"success"`
	Output     string `json:"output,omitempty"`     // captured stdout of a successful script run
	Error      string `json:"error,omitempty"`      // failure detail (stderr or launch error)
	ExitCode   *int   `json:"exitCode,omitempty"`   // set only when a child process exited non-zero
	Reason     string `json:"reason,omitempty"`     // non-error refusal, e.g. "Backup disabled"
	BackupPath string `json:"backupPath,omitempty"` // destination of a successful backup
}

// ServiceResult is the per-service outcome of a restart run. RestartServices
// returns one entry per configured service, in configuration order, whether
// or not the restart succeeded.
type ServiceResult struct {
	Service string `json:"service"`
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
}
