package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCheckResultConstructors(t *testing.T) {
	tests := []struct {
		name       string
		result     CheckResult
		wantPassed bool
		wantWarn   bool
		wantStatus Status
	}{
		{"pass", Pass("Check [a]", "ok"), true, false, StatusPass},
		{"warn", Warn("Check [a]", "hmm"), true, true, StatusWarn},
		{"fail", Fail("Check [a]", "bad"), false, false, StatusFail},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, "Check [a]", tt.result.Name)
			assert.NotEmpty(t, tt.result.Message)
			assert.Equal(t, tt.wantPassed, tt.result.Passed)
			assert.Equal(t, tt.wantWarn, tt.result.IsWarning)
			assert.Equal(t, tt.wantStatus, tt.result.Status())
		})
	}
}

func TestStatusString(t *testing.T) {
	assert.Equal(t, "PASS", StatusPass.String())
	assert.Equal(t, "WARN", StatusWarn.String())
	assert.Equal(t, "FAIL", StatusFail.String())
	assert.Equal(t, "UNKNOWN", Status(42).String())
}

func TestTierClassify(t *testing.T) {
	th := DefaultThresholds()

	tests := []struct {
		name  string
		tier  Tier
		value int
		want  Status
	}{
		{"function 25 lines", th.FunctionLines, 25, StatusPass},
		{"function 26 lines", th.FunctionLines, 26, StatusWarn},
		{"function 50 lines", th.FunctionLines, 50, StatusWarn},
		{"function 51 lines", th.FunctionLines, 51, StatusFail},
		{"4 functions", th.FileFunctions, 4, StatusPass},
		{"5 functions", th.FileFunctions, 5, StatusWarn},
		{"7 functions", th.FileFunctions, 7, StatusWarn},
		{"8 functions", th.FileFunctions, 8, StatusFail},
		{"350 lines", th.FileLines, 350, StatusPass},
		{"351 lines", th.FileLines, 351, StatusWarn},
		{"501 lines", th.FileLines, 501, StatusFail},
		{"zero", th.UnitFiles, 0, StatusPass},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.tier.Classify(tt.value))
		})
	}
}

func TestCapability(t *testing.T) {
	both := CapCLI | CapBrowser

	assert.True(t, both.Has(CapCLI))
	assert.True(t, both.Has(CapBrowser))
	assert.False(t, both.Has(CapLibrary))
	assert.Equal(t, "CLI + WASM", both.String())
	assert.Equal(t, "library", CapLibrary.String())
	assert.Equal(t, "none", Capability(0).String())
}

func TestFunctionSpanLineCount(t *testing.T) {
	assert.Equal(t, 1, FunctionSpan{StartLine: 3, EndLine: 3}.LineCount())
	assert.Equal(t, 26, FunctionSpan{StartLine: 10, EndLine: 35}.LineCount())
}

func TestSourceFileName(t *testing.T) {
	assert.Equal(t, "lib.rs", SourceFile{Path: "crate/src/lib.rs"}.Name())
}
