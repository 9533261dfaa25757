// Package skills provides skill canonicalization and job/resume overlap
// scoring. All comparisons in the system go through Normalize first so
// they are case- and whitespace-insensitive.
package skills

import "strings"

// Normalize canonicalizes a skill string for comparison: lowercase and
// trimmed. Idempotent.
func Normalize(skill string) string {
	return strings.ToLower(strings.TrimSpace(skill))
}

// NormalizeAll normalizes every skill in the slice, preserving order.
// Empty results are dropped.
func NormalizeAll(raw []string) []string {
	out := make([]string, 0, len(raw))
	for _, s := range raw {
		if n := Normalize(s); n != "" {
			out = append(out, n)
		}
	}
	return out
}

// jdSeparators are the token boundaries recognized in free-text job
// descriptions.
var jdSeparators = func(r rune) bool {
	return r == ',' || r == '\n' || r == '-'
}

// TokenizeJobDescription splits a job description into normalized skill
// tokens. Splits on comma, newline, and hyphen; empty tokens are
// discarded.
func TokenizeJobDescription(text string) []string {
	fields := strings.FieldsFunc(text, jdSeparators)
	return NormalizeAll(fields)
}
