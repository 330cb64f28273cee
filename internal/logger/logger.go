package logger

import (
	"github.com/fatih/color" // Colored console output for the log level functions
)

// The logger exposes one Printf-style function per level rather than a logger
// object, so call sites stay as short as fmt.Printf. Colors follow the usual
// terminal conventions: green for normal progress, magenta for warnings, red
// for errors, cyan for debug chatter.

// Info logs informational messages in green.
var Info = color.New(color.FgGreen).PrintfFunc()

// Warn logs warning messages in bright magenta.
var Warn = color.New(color.FgHiMagenta).PrintfFunc()

// errorf writes red text to a caller-supplied writer. Kept separate so Error
// can target stderr while the other levels go to stdout.
var errorf = color.New(color.FgRed).FprintfFunc()

// Error logs error messages in red to standard error, keeping them out of
// captured stdout (the status command prints JSON there).
var Error = func(format string, a ...any) {
	errorf(color.Error, format, a...)
}

// Debug logs debug messages in cyan when enabled, otherwise is a no-op.
// It is assigned during Init based on the --debug flag.
var Debug func(format string, a ...any)

// Init configures the logger. With enableDebug false, Debug is a no-op so
// debug call sites cost nothing at runtime.
func Init(enableDebug bool) {
	if enableDebug {
		Debug = color.New(color.FgCyan).PrintfFunc()
	} else {
		Debug = func(format string, a ...any) {}
	}
}

func init() {
	// Commands are normally routed through Init via the CLI, but tests call
	// into packages directly; keep Debug non-nil either way.
	Init(false)
}
