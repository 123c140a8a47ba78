package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nbstack/kernelsync/pkg/doctor"
)

// newDoctorCmd creates the doctor subcommand
func newDoctorCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "doctor",
		Short: "Check that kernelsync can run",
		Long: `Check that conda and the configured shell are available, and that the
environment and kernel directories are usable.`,
		RunE: func(_ *cobra.Command, _ []string) error {
			return runDoctor(*configPath)
		},
	}
}

func runDoctor(configPath string) error {
	rc, err := loadContext(configPath)
	if err != nil {
		return err
	}

	checker := doctor.NewChecker(rc.shell, rc.envRoot, rc.kernelRoot)
	checks := checker.CheckAll()

	for _, check := range checks {
		fmt.Printf("  %s  %s: %s\n", renderStatus(check.Status), boldStyle.Render(check.Name), check.Message)
	}

	summary := doctor.GetSummary(checks)
	fmt.Printf("\n%d checks: %d ok, %d missing, %d warnings, %d errors\n",
		summary.Total, summary.OK, summary.Missing, summary.Warnings, summary.Errors)

	if doctor.HasIssues(checks) {
		return fmt.Errorf("doctor found issues")
	}
	return nil
}

// renderStatus renders a check status with its color.
func renderStatus(status doctor.CheckStatus) string {
	switch status {
	case doctor.StatusOK:
		return okStyle.Render("ok     ")
	case doctor.StatusWarning:
		return warnStyle.Render("warn   ")
	case doctor.StatusMissing:
		return errorStyle.Render("missing")
	default:
		return errorStyle.Render("error  ")
	}
}
