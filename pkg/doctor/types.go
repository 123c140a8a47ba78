// Package doctor provides environment health checks for kernelsync.
package doctor

// CheckStatus represents the status of a health check.
type CheckStatus int

const (
	// StatusOK indicates the dependency is present and working.
	StatusOK CheckStatus = iota
	// StatusMissing indicates the dependency is not installed.
	StatusMissing
	// StatusError indicates an error occurred during the check.
	StatusError
	// StatusWarning indicates an issue that won't stop a sync.
	StatusWarning
)

// String returns the string representation of the status.
func (s CheckStatus) String() string {
	switch s {
	case StatusOK:
		return "ok"
	case StatusMissing:
		return "missing"
	case StatusError:
		return "error"
	case StatusWarning:
		return "warning"
	default:
		return "unknown"
	}
}

// Check represents a single health check result.
type Check struct {
	ID          string      // Unique identifier, e.g. "conda"
	Name        string      // Display name
	Description string      // What this check verifies
	Status      CheckStatus // Current status
	Message     string      // Status message (version info, error, etc.)
}

// CheckID constants.
const (
	IDConda      = "conda"
	IDShell      = "shell"
	IDEnvRoot    = "env-root"
	IDKernelRoot = "kernel-root"
)
