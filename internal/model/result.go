package model

// Status is the derived verdict of a CheckResult.
type Status int

const (
	// StatusPass indicates the check passed.
	StatusPass Status = iota
	// StatusWarn indicates the check passed with a warning.
	StatusWarn
	// StatusFail indicates the check failed.
	StatusFail
)

func (s Status) String() string {
	switch s {
	case StatusPass:
		return "PASS"
	case StatusWarn:
		return "WARN"
	case StatusFail:
		return "FAIL"
	default:
		return "UNKNOWN"
	}
}

// CheckResult is the outcome of a single check.
//
// Only Pass, Warn and Fail build results, so IsWarning always implies Passed.
type CheckResult struct {
	Name      string `json:"name" yaml:"name"`
	Passed    bool   `json:"passed" yaml:"passed"`
	Message   string `json:"message" yaml:"message"`
	IsWarning bool   `json:"is_warning" yaml:"is_warning"`
}

// Pass returns a passing result.
func Pass(name, message string) CheckResult {
	return CheckResult{Name: name, Passed: true, Message: message}
}

// Warn returns a result that passed with a warning.
func Warn(name, message string) CheckResult {
	return CheckResult{Name: name, Passed: true, Message: message, IsWarning: true}
}

// Fail returns a failing result.
func Fail(name, message string) CheckResult {
	return CheckResult{Name: name, Message: message}
}

// Status derives the verdict of the result.
func (r CheckResult) Status() Status {
	switch {
	case !r.Passed:
		return StatusFail
	case r.IsWarning:
		return StatusWarn
	default:
		return StatusPass
	}
}

// Summary tallies a list of results.
type Summary struct {
	Passed   int `json:"passed" yaml:"passed"`
	Failed   int `json:"failed" yaml:"failed"`
	Warnings int `json:"warnings" yaml:"warnings"`
	ExitCode int `json:"exit_code" yaml:"exit_code"`
}
