package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/nbstack/kernelsync/pkg/config"
)

// newConfigCmd creates the config subcommand
func newConfigCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration",
		Long: `Print the configuration a sync would run with, after applying the config
file (if any) on top of the built-in defaults.`,
		RunE: func(_ *cobra.Command, _ []string) error {
			return runConfig(*configPath)
		},
	}
}

func runConfig(configPath string) error {
	rc, err := loadContext(configPath)
	if err != nil {
		return err
	}

	effective := config.Config{
		KernelPackage: rc.pkg,
		Prefix:        rc.prefix,
		Shell:         rc.shell,
		EnvRoot:       rc.envRoot,
		KernelRoot:    rc.kernelRoot,
	}

	data, err := yaml.Marshal(effective)
	if err != nil {
		return fmt.Errorf("failed to render config: %w", err)
	}

	fmt.Print(string(data))
	return nil
}
