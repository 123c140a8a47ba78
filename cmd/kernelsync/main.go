// Package main provides the kernelsync CLI for keeping Jupyter kernel
// descriptors in step with a user's conda environments.
package main

import (
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

// version is set via -ldflags during build
var version = "dev"

func main() {
	rootCmd := newRootCmd()

	// Cobra handles error printing
	rootCmd.SilenceUsage = true

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// newRootCmd creates the root command for kernelsync
func newRootCmd() *cobra.Command {
	var verbose bool
	var configPath string

	rootCmd := &cobra.Command{
		Use:   "kernelsync",
		Short: "Jupyter kernel sync for conda environments",
		Long: `kernelsync scans a user's conda environments, installs ipykernel where it
is missing, and writes one Jupyter kernel descriptor per environment so the
notebook server offers each environment as a kernel.

It is built to run from a JupyterHub pre-spawn hook and is safe to run
repeatedly: descriptors it generated earlier are swept and rewritten on
every run, and descriptors created by hand are never touched.`,
		Version: version,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			if verbose {
				log.SetLevel(log.DebugLevel)
			}
		},
	}

	rootCmd.PersistentFlags().BoolVar(&verbose, "verbose", false, "Enable debug logging")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Config file path (defaults to ~/.config/kernelsync/config.yaml)")

	rootCmd.AddCommand(
		newSyncCmd(&configPath),
		newListCmd(&configPath),
		newCleanCmd(&configPath),
		newDoctorCmd(&configPath),
		newConfigCmd(&configPath),
	)

	return rootCmd
}
