package condaenv

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
)

// MarkerExecutable is the binary whose presence in an environment's bin/
// means the kernel-support package is already installed there.
const MarkerExecutable = "jupyter-kernelspec"

// Environment is one discovered conda environment.
type Environment struct {
	Name        string // directory name under the env root
	Interpreter string // path to the environment's python binary
	HasKernel   bool   // marker executable present in bin/
}

// Scanner discovers conda environments and ensures each can host a kernel.
type Scanner struct {
	installer *Installer
	pkg       string
	logger    *log.Logger
}

// NewScanner creates a Scanner. The installer may be nil when only Probe is
// used.
func NewScanner(installer *Installer) *Scanner {
	return &Scanner{
		installer: installer,
		pkg:       DefaultPackage,
		logger:    log.Default(),
	}
}

// SetPackage overrides the kernel package installed into environments.
func (s *Scanner) SetPackage(pkg string) {
	if pkg != "" {
		s.pkg = pkg
	}
}

// SetLogger replaces the scanner's logger.
func (s *Scanner) SetLogger(logger *log.Logger) {
	if logger != nil {
		s.logger = logger
	}
}

// Probe lists the environments under root without side effects. Hidden
// directories and plain files are skipped. A missing or empty root is not an
// error: it returns an empty list, matching the "user has no environments"
// case.
func (s *Scanner) Probe(root string) ([]Environment, error) {
	entries, err := os.ReadDir(root)
	if err != nil {
		if os.IsNotExist(err) {
			s.logger.Info("no conda env directory for this user", "root", root)
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read env root: %w", err)
	}

	var envs []Environment
	for _, entry := range entries {
		if !entry.IsDir() || strings.HasPrefix(entry.Name(), ".") {
			continue
		}

		binDir := filepath.Join(root, entry.Name(), "bin")
		env := Environment{
			Name:        entry.Name(),
			Interpreter: filepath.Join(binDir, "python"),
		}
		if _, err := os.Stat(filepath.Join(binDir, MarkerExecutable)); err == nil {
			env.HasKernel = true
		}

		envs = append(envs, env)
	}

	if len(envs) == 0 {
		s.logger.Info("env list was empty", "root", root)
	}
	return envs, nil
}

// Scan probes root and installs the kernel package into every environment
// missing it. Environments whose install fails are excluded from the result;
// processing continues with the rest. The returned list is in directory
// order and contains only environments ready to host a kernel.
func (s *Scanner) Scan(root string) ([]Environment, error) {
	probed, err := s.Probe(root)
	if err != nil || len(probed) == 0 {
		return nil, err
	}

	var ready []Environment
	for _, env := range probed {
		s.logger.Info("found env", "env", env.Name)

		if env.HasKernel {
			s.logger.Info("kernel support already installed, skipping install", "env", env.Name)
			ready = append(ready, env)
			continue
		}

		s.logger.Info("installing kernel package", "env", env.Name, "package", s.pkg)
		if _, err := s.installer.Install(s.pkg, env.Name); err != nil {
			s.logger.Error("install failed, skipping environment", "env", env.Name, "err", err)
			continue
		}

		env.HasKernel = true
		ready = append(ready, env)
	}

	return ready, nil
}
