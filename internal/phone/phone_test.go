package phone

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateEgyptian(t *testing.T) {
	t.Run("accepts all four shapes", func(t *testing.T) {
		valid := []string{
			"1012345678",
			"01012345678",
			"201012345678",
			"+201012345678",
		}
		for _, number := range valid {
			assert.NoError(t, ValidateEgyptian(number), "number: %s", number)
		}
	})

	t.Run("accepts formatted input", func(t *testing.T) {
		assert.NoError(t, ValidateEgyptian("+20 101 234 5678"))
		assert.NoError(t, ValidateEgyptian("010-1234-5678"))
		assert.NoError(t, ValidateEgyptian("(010) 12345678"))
	})

	t.Run("empty input returns the required error", func(t *testing.T) {
		assert.ErrorIs(t, ValidateEgyptian(""), ErrRequired)
		assert.ErrorIs(t, ValidateEgyptian("   "), ErrRequired)
	})

	t.Run("rejects malformed numbers", func(t *testing.T) {
		invalid := []string{
			"12345",
			"2012345678",
			"+2010123456789",
			"00123456789",
			"abcdefghij",
		}
		for _, number := range invalid {
			err := ValidateEgyptian(number)
			assert.Error(t, err, "number: %s", number)
			assert.NotErrorIs(t, err, ErrRequired, "number: %s", number)
		}
	})
}

func TestNormalizeInput(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"international with plus", "+201012345678", "1012345678"},
		{"international without plus", "201012345678", "1012345678"},
		{"local zero prefixed", "01012345678", "1012345678"},
		{"bare subscriber", "1012345678", "1012345678"},
		{"formatted", "+20 101-234-5678", "1012345678"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, NormalizeInput(tt.input))
		})
	}
}

func TestFormatForAPI(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"already international", "+201012345678", "+201012345678"},
		{"missing plus", "201012345678", "+201012345678"},
		{"local zero prefixed", "01012345678", "+201012345678"},
		{"bare subscriber", "1012345678", "+201012345678"},
		{"formatted input", "010 1234 5678", "+201012345678"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, FormatForAPI(tt.input))
		})
	}

	t.Run("malformed input is not silently fixed", func(t *testing.T) {
		// The fallback prepends +20 unconditionally; validation is the
		// caller's job.
		assert.Equal(t, "+2012345", FormatForAPI("12345"))
	})
}
