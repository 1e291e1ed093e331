package phone

import (
	"errors"
	"regexp"
	"strings"
)

// Egyptian mobile numbers reach the backend in canonical +20 form. Input
// arrives in whatever shape an admin typed: bare subscriber number, local
// 0-prefixed, or international with or without the plus.

var validShapes = []*regexp.Regexp{
	regexp.MustCompile(`^1[0-9]{9}$`),
	regexp.MustCompile(`^01[0-9]{9}$`),
	regexp.MustCompile(`^201[0-9]{9}$`),
	regexp.MustCompile(`^\+201[0-9]{9}$`),
}

var ErrRequired = errors.New("phone number is required")

// stripFormatting removes spaces, dashes and parentheses.
func stripFormatting(raw string) string {
	r := strings.NewReplacer(" ", "", "-", "", "(", "", ")", "")
	return r.Replace(strings.TrimSpace(raw))
}

// NormalizeInput converts any accepted shape to the bare subscriber number
// (expected to start with 1 and be 9-10 digits). Used to prefill edit forms.
func NormalizeInput(raw string) string {
	s := stripFormatting(raw)
	switch {
	case strings.HasPrefix(s, "+20"):
		return strings.TrimPrefix(s, "+20")
	case strings.HasPrefix(s, "20"):
		return strings.TrimPrefix(s, "20")
	case strings.HasPrefix(s, "0"):
		return strings.TrimPrefix(s, "0")
	}
	return s
}

// FormatForAPI converts any accepted shape to international +20 form.
// The final branch prepends +20 unconditionally; malformed input therefore
// produces a malformed international number rather than being silently fixed.
// Callers that need a guarantee run ValidateEgyptian first.
func FormatForAPI(raw string) string {
	s := stripFormatting(raw)
	switch {
	case strings.HasPrefix(s, "+20"):
		return s
	case strings.HasPrefix(s, "20"):
		return "+" + s
	case strings.HasPrefix(s, "0"):
		return "+2" + s
	}
	return "+20" + s
}

// ValidateEgyptian accepts the four shapes 1XXXXXXXXX, 01XXXXXXXXX,
// 201XXXXXXXXX and +201XXXXXXXXX. Empty input gets its own error so forms
// can distinguish "missing" from "malformed".
func ValidateEgyptian(raw string) error {
	s := stripFormatting(raw)
	if s == "" {
		return ErrRequired
	}
	for _, re := range validShapes {
		if re.MatchString(s) {
			return nil
		}
	}
	return errors.New("invalid Egyptian mobile number: expected 1XXXXXXXXX, 01XXXXXXXXX, 201XXXXXXXXX or +201XXXXXXXXX")
}
