// Package runner executes shell commands with a bounded retry loop.
package runner

import (
	"bytes"
	"fmt"
	"os/exec"
	"strings"

	"github.com/charmbracelet/log"
)

const (
	// MaxAttempts is the number of times a command is tried before
	// the runner gives up.
	MaxAttempts = 5

	// DefaultShell is the shell used to interpret commands.
	DefaultShell = "/bin/sh"
)

// Executor spawns a single process for a shell command. It exists as an
// interface so tests can substitute a fake without forking processes.
type Executor interface {
	// Exec runs command under a shell, feeding stdin to the process when
	// non-empty, and returns captured stdout and stderr. The error is the
	// process exit error, if any.
	Exec(command, stdin string) (stdout, stderr string, err error)
}

// ShellExecutor is the default Executor backed by os/exec.
type ShellExecutor struct {
	// Shell is the shell binary used to interpret commands.
	// Defaults to DefaultShell when empty.
	Shell string
}

// Exec runs command via `<shell> -c`.
func (e *ShellExecutor) Exec(command, stdin string) (string, string, error) {
	shell := e.Shell
	if shell == "" {
		shell = DefaultShell
	}

	cmd := exec.Command(shell, "-c", command)
	if stdin != "" {
		cmd.Stdin = strings.NewReader(stdin)
	}

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	return stdout.String(), stderr.String(), err
}

// Runner runs shell commands, retrying failed attempts up to MaxAttempts.
type Runner struct {
	executor Executor
	logger   *log.Logger
}

// New creates a Runner backed by the real shell.
func New() *Runner {
	return NewWithExecutor(&ShellExecutor{})
}

// NewWithExecutor creates a Runner with a custom executor (for testing).
func NewWithExecutor(executor Executor) *Runner {
	return &Runner{
		executor: executor,
		logger:   log.Default(),
	}
}

// SetLogger replaces the runner's logger.
func (r *Runner) SetLogger(logger *log.Logger) {
	if logger != nil {
		r.logger = logger
	}
}

// Run executes command, piping stdin into the process when non-empty, and
// returns the trimmed stdout of the first successful attempt.
//
// An attempt counts as failed when the process exits non-zero, or when its
// stderr contains "Error" or "error". The exit status is the authoritative
// signal; the substring scan exists because conda has been seen reporting
// activation failures on stderr while still exiting zero. After MaxAttempts
// failed attempts Run returns an error wrapping the last failure.
func (r *Runner) Run(command, stdin string) (string, error) {
	var lastErr error

	for attempt := 1; attempt <= MaxAttempts; attempt++ {
		r.logger.Debug("running command", "command", command, "attempt", attempt)

		stdout, stderr, err := r.executor.Exec(command, stdin)
		if err == nil && !stderrReportsError(stderr) {
			return strings.TrimSpace(stdout), nil
		}

		if err != nil {
			lastErr = fmt.Errorf("%w: %s", err, strings.TrimSpace(stderr))
		} else {
			lastErr = fmt.Errorf("stderr reported an error: %s", strings.TrimSpace(stderr))
		}
		r.logger.Warn("command failed", "command", command, "attempt", attempt, "err", lastErr)
	}

	return "", fmt.Errorf("max attempts (%d) exceeded running %q: %w", MaxAttempts, command, lastErr)
}

// stderrReportsError reports whether captured stderr looks like a failure.
// Both spellings are checked because conda and pip disagree on casing.
func stderrReportsError(stderr string) bool {
	return strings.Contains(stderr, "Error") || strings.Contains(stderr, "error")
}
