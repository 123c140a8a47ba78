package doctor

// Checker runs the health checks against one user's paths.
type Checker struct {
	executor   CommandExecutor
	shell      string
	envRoot    string
	kernelRoot string
}

// NewChecker creates a Checker with the real executor.
func NewChecker(shell, envRoot, kernelRoot string) *Checker {
	return NewCheckerWithExecutor(&RealExecutor{}, shell, envRoot, kernelRoot)
}

// NewCheckerWithExecutor creates a Checker with a custom executor (for
// testing).
func NewCheckerWithExecutor(exec CommandExecutor, shell, envRoot, kernelRoot string) *Checker {
	return &Checker{
		executor:   exec,
		shell:      shell,
		envRoot:    envRoot,
		kernelRoot: kernelRoot,
	}
}

// CheckAll runs every check and returns the results in a fixed order.
func (c *Checker) CheckAll() []Check {
	return []Check{
		CheckConda(c.executor),
		CheckShell(c.executor, c.shell),
		CheckEnvRoot(c.executor, c.envRoot),
		CheckKernelRoot(c.executor, c.kernelRoot),
	}
}

// Summary represents an overall health summary.
type Summary struct {
	Total    int
	OK       int
	Missing  int
	Warnings int
	Errors   int
}

// GetSummary returns a summary of check results.
func GetSummary(checks []Check) Summary {
	var summary Summary
	for _, check := range checks {
		summary.Total++
		switch check.Status {
		case StatusOK:
			summary.OK++
		case StatusMissing:
			summary.Missing++
		case StatusWarning:
			summary.Warnings++
		case StatusError:
			summary.Errors++
		}
	}
	return summary
}

// HasIssues returns true if any check is missing or errored. Warnings don't
// count: a user without environments is healthy.
func HasIssues(checks []Check) bool {
	summary := GetSummary(checks)
	return summary.Missing > 0 || summary.Errors > 0
}
