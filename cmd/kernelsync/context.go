package main

import (
	"fmt"

	"github.com/nbstack/kernelsync/pkg/condaenv"
	"github.com/nbstack/kernelsync/pkg/config"
	"github.com/nbstack/kernelsync/pkg/kernelspec"
	"github.com/nbstack/kernelsync/pkg/runner"
)

// runContext is the resolved user, config, and derived paths for one run.
type runContext struct {
	user       condaenv.User
	envRoot    string
	kernelRoot string
	shell      string
	prefix     string
	pkg        string
}

// loadContext builds the run context from the environment and the optional
// config file. Config file values win over derived defaults.
func loadContext(configPath string) (*runContext, error) {
	user, err := condaenv.NewUserFromEnv()
	if err != nil {
		return nil, err
	}

	var cfg config.Config
	if configPath != "" {
		cfg, err = config.Load(configPath)
	} else {
		cfg, err = config.LoadDefault()
	}
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	rc := &runContext{
		user:       user,
		envRoot:    user.EnvRoot(),
		kernelRoot: user.KernelRoot(),
		shell:      runner.DefaultShell,
		prefix:     kernelspec.DirPrefix,
		pkg:        condaenv.DefaultPackage,
	}
	if cfg.EnvRoot != "" {
		rc.envRoot = cfg.EnvRoot
	}
	if cfg.KernelRoot != "" {
		rc.kernelRoot = cfg.KernelRoot
	}
	if cfg.Shell != "" {
		rc.shell = cfg.Shell
	}
	if cfg.Prefix != "" {
		rc.prefix = cfg.Prefix
	}
	if cfg.KernelPackage != "" {
		rc.pkg = cfg.KernelPackage
	}

	return rc, nil
}
