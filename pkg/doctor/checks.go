package doctor

import (
	"bytes"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"regexp"
)

// CommandExecutor is an interface for probing the system, allowing tests to
// substitute a mock.
type CommandExecutor interface {
	LookPath(file string) (string, error)
	Run(name string, args ...string) (string, error)
	FileExists(path string) bool
	CanWrite(dir string) bool
}

// RealExecutor is the default executor that uses the real system.
type RealExecutor struct{}

// LookPath finds the path to an executable.
func (e *RealExecutor) LookPath(file string) (string, error) {
	return exec.LookPath(file)
}

// Run executes a command and returns its output. Tools that print their
// version to stderr are accommodated.
func (e *RealExecutor) Run(name string, args ...string) (string, error) {
	cmd := exec.Command(name, args...)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	err := cmd.Run()
	output := stdout.String()
	if output == "" {
		output = stderr.String()
	}
	return output, err
}

// FileExists checks if a path exists.
func (e *RealExecutor) FileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// CanWrite checks whether dir can be created and written to, by creating
// and removing a probe file.
func (e *RealExecutor) CanWrite(dir string) bool {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return false
	}
	probe := filepath.Join(dir, ".kernelsync-probe")
	if err := os.WriteFile(probe, nil, 0644); err != nil {
		return false
	}
	os.Remove(probe)
	return true
}

var condaVersionRe = regexp.MustCompile(`conda (\d+\.\d+(?:\.\d+)?)`)

// CheckConda checks whether conda is on PATH and reports its version.
func CheckConda(exec CommandExecutor) Check {
	check := Check{
		ID:          IDConda,
		Name:        "conda",
		Description: "Package and environment manager",
	}

	path, err := exec.LookPath("conda")
	if err != nil {
		check.Status = StatusMissing
		check.Message = "not installed"
		return check
	}

	output, err := exec.Run(path, "--version")
	if err != nil {
		check.Status = StatusOK
		check.Message = "installed (version unknown)"
		return check
	}

	check.Status = StatusOK
	if matches := condaVersionRe.FindStringSubmatch(output); len(matches) >= 2 {
		check.Message = matches[1]
	} else {
		check.Message = "installed"
	}
	return check
}

// CheckShell checks that the configured shell exists.
func CheckShell(exec CommandExecutor, shell string) Check {
	check := Check{
		ID:          IDShell,
		Name:        "shell",
		Description: "Shell used to run install scripts",
	}

	if exec.FileExists(shell) {
		check.Status = StatusOK
		check.Message = shell
	} else {
		check.Status = StatusMissing
		check.Message = fmt.Sprintf("no shell at %s", shell)
	}
	return check
}

// CheckEnvRoot checks the conda environments directory. A missing root is a
// warning, not a failure: the user simply has no environments yet.
func CheckEnvRoot(exec CommandExecutor, root string) Check {
	check := Check{
		ID:          IDEnvRoot,
		Name:        "env root",
		Description: "Conda environments directory",
	}

	if exec.FileExists(root) {
		check.Status = StatusOK
		check.Message = root
	} else {
		check.Status = StatusWarning
		check.Message = fmt.Sprintf("no environments yet (%s)", root)
	}
	return check
}

// CheckKernelRoot checks that the kernel descriptor directory is writable.
func CheckKernelRoot(exec CommandExecutor, root string) Check {
	check := Check{
		ID:          IDKernelRoot,
		Name:        "kernel root",
		Description: "Jupyter kernel descriptor directory",
	}

	if exec.CanWrite(root) {
		check.Status = StatusOK
		check.Message = root
	} else {
		check.Status = StatusError
		check.Message = fmt.Sprintf("not writable: %s", root)
	}
	return check
}
