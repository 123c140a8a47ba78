package main

import (
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/nbstack/kernelsync/pkg/kernelspec"
)

// newCleanCmd creates the clean subcommand
func newCleanCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "clean",
		Short: "Remove generated kernel descriptors",
		Long: `Remove every kernel descriptor directory this tool generated. Descriptors
created by hand (without the generated prefix) are left untouched.`,
		RunE: func(_ *cobra.Command, _ []string) error {
			return runClean(*configPath)
		},
	}
}

func runClean(configPath string) error {
	rc, err := loadContext(configPath)
	if err != nil {
		return err
	}

	writer := kernelspec.NewWriter(rc.kernelRoot)
	writer.SetPrefix(rc.prefix)
	if err := writer.Clean(); err != nil {
		return err
	}

	log.Info("clean complete", "kernel_root", rc.kernelRoot)
	return nil
}
