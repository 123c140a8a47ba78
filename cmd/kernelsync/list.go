package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nbstack/kernelsync/pkg/condaenv"
)

// newListCmd creates the list subcommand
func newListCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List discovered conda environments",
		Long: `List the user's conda environments and whether each already has kernel
support installed. Read-only: nothing is installed or written.`,
		RunE: func(_ *cobra.Command, _ []string) error {
			return runList(*configPath)
		},
	}
}

func runList(configPath string) error {
	rc, err := loadContext(configPath)
	if err != nil {
		return err
	}

	scanner := condaenv.NewScanner(nil)
	envs, err := scanner.Probe(rc.envRoot)
	if err != nil {
		return fmt.Errorf("failed to scan environments: %w", err)
	}

	if len(envs) == 0 {
		fmt.Println("No conda environments found.")
		return nil
	}

	fmt.Printf("Found %d environments:\n\n", len(envs))
	for _, env := range envs {
		status := okStyle.Render("kernel ready")
		if !env.HasKernel {
			status = warnStyle.Render("needs " + rc.pkg)
		}
		fmt.Printf("  %s  %s\n", boldStyle.Render(env.Name), status)
		fmt.Printf("    %s\n", dimStyle.Render(env.Interpreter))
	}

	return nil
}
