package condaenv

import (
	"bytes"
	"fmt"
	"text/template"
)

// DefaultPackage is the package installed into environments that are missing
// kernel support.
const DefaultPackage = "ipykernel"

// defaultShell interprets the rendered install script.
const defaultShell = "/bin/sh"

// installScript activates the target environment and installs the package.
// The trailing exit keeps conda's activation shell from lingering on stdin.
var installScript = template.Must(template.New("install").Parse(`#!/bin/bash
source activate {{.Env}}
conda install --yes {{.Package}}
exit
`))

// CommandRunner runs a shell command with optional piped stdin and returns
// its trimmed stdout. Satisfied by runner.Runner.
type CommandRunner interface {
	Run(command, stdin string) (string, error)
}

// Installer installs conda packages into named environments by piping an
// activation script into the shell.
type Installer struct {
	runner CommandRunner
	shell  string
}

// NewInstaller creates an Installer backed by the given runner.
func NewInstaller(runner CommandRunner) *Installer {
	return &Installer{
		runner: runner,
		shell:  defaultShell,
	}
}

// SetShell overrides the shell the install script is piped into.
func (i *Installer) SetShell(shell string) {
	if shell != "" {
		i.shell = shell
	}
}

// Install installs pkg into the named environment and returns the runner's
// output verbatim. A non-nil error means the install did not take and the
// environment should not be recorded.
func (i *Installer) Install(pkg, env string) (string, error) {
	var script bytes.Buffer
	err := installScript.Execute(&script, map[string]string{
		"Env":     env,
		"Package": pkg,
	})
	if err != nil {
		return "", fmt.Errorf("failed to render install script: %w", err)
	}

	return i.runner.Run(i.shell, script.String())
}
