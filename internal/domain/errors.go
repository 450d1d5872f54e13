package domain

import "fmt"

// CheckExitError carries a non-zero verdict to the process exit. The results
// have already been displayed, so callers should exit without printing it.
type CheckExitError struct {
	Code    int
	Message string
}

func (e *CheckExitError) Error() string {
	if e.Message != "" {
		return e.Message
	}

	return fmt.Sprintf("checks failed with exit code %d", e.Code)
}
