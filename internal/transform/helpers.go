package transform

import (
	"strings"
)

// firstNonEmpty resolves a target field from an ordered list of source
// candidates. The order IS the contract: older backend revisions populated
// different columns, and each entity documents its precedence exactly once
// at the call site instead of scattering inline fallbacks.
func firstNonEmpty(candidates ...string) string {
	for _, c := range candidates {
		if strings.TrimSpace(c) != "" {
			return c
		}
	}
	return ""
}

// firstNonEmptySlice picks the first candidate slice with any elements,
// returning a non-nil copy so callers always serialize to [] rather than
// null.
func firstNonEmptySlice(candidates ...[]string) []string {
	for _, c := range candidates {
		if len(c) > 0 {
			out := make([]string, len(c))
			copy(out, c)
			return out
		}
	}
	return []string{}
}

// decimalString canonicalizes a numeric-ish value to a decimal string,
// keeping the decimal separator and dropping currency symbols, thousands
// separators and other noise. Empty or fully non-numeric input yields the
// fallback.
func decimalString(raw, fallback string) string {
	var b strings.Builder
	seenDot := false
	for _, r := range strings.TrimSpace(raw) {
		switch {
		case r >= '0' && r <= '9':
			b.WriteRune(r)
		case (r == '.' || r == ',') && !seenDot:
			// A comma between digits is treated as a decimal separator;
			// trailing/leading ones are dropped with the rest of the noise.
			if b.Len() > 0 {
				b.WriteRune('.')
				seenDot = true
			}
		}
	}
	s := strings.TrimSuffix(b.String(), ".")
	if s == "" {
		return fallback
	}
	return s
}

// countOrDefault integer-coerces a count field, substituting the default
// when the wire value is missing or below the field's minimum.
func countOrDefault(v, def, min int) int {
	if v < min {
		return def
	}
	return v
}
