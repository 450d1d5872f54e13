package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"

	m "github.com/softwarewrighter/sw-checklist/internal/model"
)

func TestSplitLines(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []string
	}{
		{name: "empty", text: "", want: nil},
		{name: "trailing newline adds no line", text: "a\nb\n", want: []string{"a", "b"}},
		{name: "no trailing newline", text: "a\nb", want: []string{"a", "b"}},
		{name: "crlf", text: "a\r\nb\r\n", want: []string{"a", "b"}},
		{name: "single newline", text: "\n", want: []string{""}},
		{name: "blank lines kept", text: "a\n\n\nb\n", want: []string{"a", "", "", "b"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SplitLines(tt.text))
		})
	}
}

func TestIsFunctionHeader(t *testing.T) {
	tests := []struct {
		line string
		want bool
	}{
		{"fn main() {", true},
		{"    pub fn new() -> Self {", true},
		{"\tasync fn fetch() {", true},
		{"pub async fn serve() {", true},
		{"const fn limit() -> usize {", true},
		{"pub const fn limit() -> usize {", true},
		{"unsafe fn raw() {", true},
		{"pub unsafe fn raw() {", true},
		{"fn helper();", true},
		{"// fn commented() {", false},
		{"pub(crate) fn scoped() {", false},
		{"fnord()", false},
		{"let f = fn_ptr;", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			assert.Equal(t, tt.want, IsFunctionHeader(tt.line))
		})
	}
}

func TestExtractFunctionName(t *testing.T) {
	tests := []struct {
		line string
		want string
	}{
		{"fn main() {", "main"},
		{"pub fn parse<T>(input: T) -> T {", "parse"},
		{"pub async fn run (x: u8) {", "run"},
		{"fn bare", "bare"},
		{"fn (broken)", m.UnknownName},
		{"fn", m.UnknownName},
		{"let x = 1;", m.UnknownName},
	}

	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			assert.Equal(t, tt.want, ExtractFunctionName(tt.line))
		})
	}
}

func TestFindFunctions(t *testing.T) {
	t.Run("spans are exact", func(t *testing.T) {
		for _, n := range []int{2, 25, 26, 50, 51} {
			lines := fnLines("f", n)
			spans := FindFunctions(lines)

			if assert.Len(t, spans, 1) {
				assert.Equal(t, "f", spans[0].Name)
				assert.Equal(t, 1, spans[0].StartLine)
				assert.Equal(t, n, spans[0].EndLine)
				assert.Equal(t, n, spans[0].LineCount())
			}
		}
	})

	t.Run("single line body", func(t *testing.T) {
		spans := FindFunctions([]string{"fn one() {}", "fn two() { 1 }"})
		assert.Equal(t, []m.FunctionSpan{
			{Name: "one", StartLine: 1, EndLine: 1},
			{Name: "two", StartLine: 2, EndLine: 2},
		}, spans)
	})

	t.Run("multi-line signature within lookahead", func(t *testing.T) {
		lines := []string{"pub fn long_sig("}
		for i := 0; i < 8; i++ {
			lines = append(lines, "    arg: u8,")
		}
		lines = append(lines, ") {", "}")

		spans := FindFunctions(lines)
		if assert.Len(t, spans, 1) {
			assert.Equal(t, "long_sig", spans[0].Name)
			assert.Equal(t, 11, spans[0].LineCount())
		}
	})

	t.Run("brace beyond lookahead is not a body", func(t *testing.T) {
		lines := []string{"fn far("}
		for i := 0; i < 9; i++ {
			lines = append(lines, "    arg: u8,")
		}
		lines = append(lines, ") {", "}")

		assert.Empty(t, FindFunctions(lines))
	})

	t.Run("bodiless declarations are skipped", func(t *testing.T) {
		lines := []string{"trait T {", "    fn a();", "    fn b();", "}"}
		assert.Empty(t, FindFunctions(lines[1:3]))
		assert.Equal(t, 2, CountFunctionHeaders(lines))
	})

	t.Run("nested functions belong to the outer span", func(t *testing.T) {
		lines := []string{
			"fn outer() {",
			"    fn inner() {",
			"    }",
			"}",
			"fn next() {",
			"}",
		}

		spans := FindFunctions(lines)
		assert.Equal(t, []m.FunctionSpan{
			{Name: "outer", StartLine: 1, EndLine: 4},
			{Name: "next", StartLine: 5, EndLine: 6},
		}, spans)
		assert.Equal(t, 3, CountFunctionHeaders(lines))
	})

	t.Run("unbalanced body resumes on the next line", func(t *testing.T) {
		lines := []string{
			"fn broken() {",
			"fn ok() {",
			"}",
		}

		spans := FindFunctions(lines)
		assert.Equal(t, []m.FunctionSpan{{Name: "ok", StartLine: 2, EndLine: 3}}, spans)
	})

	t.Run("braces in strings are counted", func(t *testing.T) {
		lines := []string{
			`fn fmt() {`,
			`    let s = "}";`,
			`    let t = 1;`,
			`}`,
		}

		spans := FindFunctions(lines)
		if assert.Len(t, spans, 1) {
			assert.Equal(t, 2, spans[0].EndLine)
		}
	})
}
