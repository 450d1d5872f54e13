package domain

import (
	m "github.com/softwarewrighter/sw-checklist/internal/model"
)

// Aggregate concatenates unit results in unit order followed by the extra
// result groups, and tallies the verdict.
func Aggregate(unitResults [][]m.CheckResult, extra ...[]m.CheckResult) ([]m.CheckResult, m.Summary) {
	var all []m.CheckResult

	for _, results := range unitResults {
		all = append(all, results...)
	}

	for _, results := range extra {
		all = append(all, results...)
	}

	return all, Summarize(all)
}

// Summarize counts passes, failures and warnings. The exit code is 1 when
// anything failed.
func Summarize(results []m.CheckResult) m.Summary {
	var summary m.Summary

	for _, r := range results {
		switch {
		case !r.Passed:
			summary.Failed++
		case r.IsWarning:
			summary.Warnings++
		default:
			summary.Passed++
		}
	}

	if summary.Failed > 0 {
		summary.ExitCode = 1
	}

	return summary
}
