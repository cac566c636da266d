// Package osutil holds operating system constants shared across packages
package osutil

const (
	Windows = "windows"
	Darwin  = "darwin"
)

// ExitCode is the process exit status.
type ExitCode int

const (
	ExitOK    ExitCode = 0
	ExitError ExitCode = 1
)

const (
	DirPermission  = 0o755
	FilePermission = 0o644
)
