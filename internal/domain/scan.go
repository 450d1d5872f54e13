package domain

import (
	"strings"
	"unicode"

	m "github.com/softwarewrighter/sw-checklist/internal/model"
)

// braceLookahead is how many lines, header included, may precede the opening brace.
const braceLookahead = 10

var functionHeaderPrefixes = []string{
	"fn ",
	"pub fn ",
	"async fn ",
	"pub async fn ",
	"const fn ",
	"pub const fn ",
	"unsafe fn ",
	"pub unsafe fn ",
}

// SplitLines splits text on '\n', strips a trailing '\r' from each line and
// does not produce an empty final line after a trailing newline.
func SplitLines(text string) []string {
	if text == "" {
		return nil
	}

	text = strings.TrimSuffix(text, "\n")
	lines := strings.Split(text, "\n")

	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}

	return lines
}

// IsFunctionHeader reports whether line, ignoring leading whitespace, starts a
// function definition. Strings and comments are not recognized.
func IsFunctionHeader(line string) bool {
	trimmed := strings.TrimLeftFunc(line, unicode.IsSpace)
	for _, prefix := range functionHeaderPrefixes {
		if strings.HasPrefix(trimmed, prefix) {
			return true
		}
	}

	return false
}

// ExtractFunctionName returns the identifier following the "fn" keyword, cut
// at the first '(' or '<'. It returns model.UnknownName when none is present.
func ExtractFunctionName(line string) string {
	fields := strings.Fields(line)
	for i, field := range fields {
		if field != "fn" || i+1 >= len(fields) {
			continue
		}

		name := fields[i+1]
		if cut := strings.IndexAny(name, "(<"); cut >= 0 {
			name = name[:cut]
		}

		if name == "" {
			return m.UnknownName
		}

		return name
	}

	return m.UnknownName
}

// CountFunctionHeaders counts every header line, nested and bodiless ones included.
func CountFunctionHeaders(lines []string) int {
	count := 0

	for _, line := range lines {
		if IsFunctionHeader(line) {
			count++
		}
	}

	return count
}

// FindFunctions scans lines for function bodies. Line numbers in the
// returned spans are 1-based and inclusive.
func FindFunctions(lines []string) []m.FunctionSpan {
	var spans []m.FunctionSpan

	i := 0
	for i < len(lines) {
		if !IsFunctionHeader(lines[i]) {
			i++
			continue
		}

		end, ok := functionEnd(lines, i)
		if !ok {
			i++
			continue
		}

		spans = append(spans, m.FunctionSpan{
			Name:      ExtractFunctionName(lines[i]),
			StartLine: i + 1,
			EndLine:   end + 1,
		})
		i = end + 1
	}

	return spans
}

// functionEnd returns the 0-based index of the line closing the body that
// starts at or after header.
func functionEnd(lines []string, header int) (int, bool) {
	open := -1

	for j := header; j < len(lines) && j < header+braceLookahead; j++ {
		if strings.Contains(lines[j], "{") {
			open = j
			break
		}
	}

	if open < 0 {
		return 0, false
	}

	depth := 0

	for j := open; j < len(lines); j++ {
		for _, ch := range lines[j] {
			switch ch {
			case '{':
				depth++
			case '}':
				depth--
				if depth == 0 {
					return j, true
				}
			}
		}
	}

	return 0, false
}
