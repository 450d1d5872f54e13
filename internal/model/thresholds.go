package model

// Tier is a three-way classification against two cutoffs.
// Values above Fail fail, values above Warn warn, everything else passes.
type Tier struct {
	Warn int
	Fail int
}

// Classify returns the status of value against the tier.
func (t Tier) Classify(value int) Status {
	switch {
	case value > t.Fail:
		return StatusFail
	case value > t.Warn:
		return StatusWarn
	default:
		return StatusPass
	}
}

// Thresholds is the immutable set of modularity limits.
type Thresholds struct {
	FunctionLines Tier
	FileFunctions Tier
	UnitFiles     Tier
	FileLines     Tier
	GroupUnits    Tier
	// MaxComponents is the component count above which a warning is emitted.
	MaxComponents int
}

// DefaultThresholds returns the fixed limits used by every run.
func DefaultThresholds() Thresholds {
	return Thresholds{
		FunctionLines: Tier{Warn: 25, Fail: 50},
		FileFunctions: Tier{Warn: 4, Fail: 7},
		UnitFiles:     Tier{Warn: 4, Fail: 7},
		FileLines:     Tier{Warn: 350, Fail: 500},
		GroupUnits:    Tier{Warn: 4, Fail: 7},
		MaxComponents: 7,
	}
}
