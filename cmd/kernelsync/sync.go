package main

import (
	"fmt"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/nbstack/kernelsync/pkg/condaenv"
	"github.com/nbstack/kernelsync/pkg/kernelspec"
	"github.com/nbstack/kernelsync/pkg/runner"
)

// newSyncCmd creates the sync subcommand
func newSyncCmd(configPath *string) *cobra.Command {
	var dryRun bool

	cmd := &cobra.Command{
		Use:   "sync",
		Short: "Scan conda environments and write kernel descriptors",
		Long: `Scan the user's conda environments, install the kernel package into any
environment missing it, and rewrite the generated kernel descriptors.

Environments whose install fails are skipped; the rest are still synced.`,
		RunE: func(_ *cobra.Command, _ []string) error {
			return runSync(*configPath, dryRun)
		},
	}

	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Log planned installs and writes without executing them")

	return cmd
}

// runSync performs the scan -> install-if-missing -> write-descriptors run.
func runSync(configPath string, dryRun bool) error {
	rc, err := loadContext(configPath)
	if err != nil {
		return err
	}

	log.Info("starting kernel sync", "user", rc.user.Name, "home", rc.user.Home)
	log.Debug("paths resolved", "env_root", rc.envRoot, "kernel_root", rc.kernelRoot)

	r := runner.NewWithExecutor(&runner.ShellExecutor{Shell: rc.shell})
	installer := condaenv.NewInstaller(r)
	installer.SetShell(rc.shell)
	scanner := condaenv.NewScanner(installer)
	scanner.SetPackage(rc.pkg)

	if dryRun {
		return dryRunSync(scanner, rc)
	}

	envs, err := scanner.Scan(rc.envRoot)
	if err != nil {
		return fmt.Errorf("failed to scan environments: %w", err)
	}
	if len(envs) == 0 {
		log.Info("no conda environments found, skipping descriptor writing")
		return nil
	}

	writer := kernelspec.NewWriter(rc.kernelRoot)
	writer.SetPrefix(rc.prefix)
	if err := writer.WriteAll(envs); err != nil {
		return fmt.Errorf("failed to write kernel descriptors: %w", err)
	}

	log.Info("sync complete", "kernels", len(envs))
	return nil
}

// dryRunSync reports what a sync would do without installing or writing.
func dryRunSync(scanner *condaenv.Scanner, rc *runContext) error {
	envs, err := scanner.Probe(rc.envRoot)
	if err != nil {
		return fmt.Errorf("failed to scan environments: %w", err)
	}

	for _, env := range envs {
		if !env.HasKernel {
			log.Info("would install kernel package", "env", env.Name, "package", rc.pkg)
		}
		log.Info("would write descriptor", "dir", filepath.Join(rc.kernelRoot, rc.prefix+env.Name))
	}
	log.Info("dry run complete", "environments", len(envs))
	return nil
}
