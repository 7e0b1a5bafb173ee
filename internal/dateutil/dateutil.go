// Package dateutil resolves the document date shown on title pages.
//
// Dates are usually literal strings ("March 2026"). The keyword "auto" asks
// for the conversion date instead, optionally followed by a format written
// with readable tokens: "auto:DD/MM/YYYY" or a preset such as "auto:long".
package dateutil

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// ErrInvalidDateFormat indicates an invalid date format string.
var ErrInvalidDateFormat = errors.New("invalid date format")

// MaxDateFormatLength limits format string length.
const MaxDateFormatLength = 50

// DefaultDateFormat is used when "auto" is given without a format.
const DefaultDateFormat = "YYYY-MM-DD"

const autoKeyword = "auto"

// tokens are tried in order at each position, so longer tokens come first.
var tokens = []struct {
	token  string
	layout string
}{
	{"YYYY", "2006"},
	{"MMMM", "January"},
	{"dddd", "Monday"},
	{"MMM", "Jan"},
	{"ddd", "Mon"},
	{"YY", "06"},
	{"MM", "01"},
	{"DD", "02"},
	{"M", "1"},
	{"D", "2"},
}

// Presets are named formats accepted after "auto:".
var Presets = map[string]string{
	"iso":      "YYYY-MM-DD",
	"european": "DD/MM/YYYY",
	"us":       "MM/DD/YYYY",
	"long":     "MMMM D, YYYY",
	"short":    "D MMM YYYY",
}

// Layout converts a token format into a time.Format layout. Text inside
// square brackets is copied literally ("[Week of] MMM D"). Characters that
// are not tokens are kept as they are.
func Layout(format string) (string, error) {
	if format == "" {
		return "", fmt.Errorf("%w: format cannot be empty", ErrInvalidDateFormat)
	}
	if len(format) > MaxDateFormatLength {
		return "", fmt.Errorf("%w: format exceeds %d characters", ErrInvalidDateFormat, MaxDateFormatLength)
	}

	var sb strings.Builder
	rest := format
	for rest != "" {
		if rest[0] == '[' {
			literal, after, ok := strings.Cut(rest[1:], "]")
			if !ok {
				pos := len(format) - len(rest)
				return "", fmt.Errorf("%w: unclosed bracket at position %d", ErrInvalidDateFormat, pos)
			}
			sb.WriteString(literal)
			rest = after
			continue
		}
		n := writeToken(&sb, rest)
		if n == 0 {
			sb.WriteByte(rest[0])
			n = 1
		}
		rest = rest[n:]
	}
	return sb.String(), nil
}

// writeToken writes the layout of the token at the start of s and returns
// its length, or 0 when s does not start with a token.
func writeToken(sb *strings.Builder, s string) int {
	for _, t := range tokens {
		if strings.HasPrefix(s, t.token) {
			sb.WriteString(t.layout)
			return len(t.token)
		}
	}
	return 0
}

// IsAuto reports whether value asks for the current date.
func IsAuto(value string) bool {
	return strings.HasPrefix(strings.ToLower(value), autoKeyword)
}

// Resolve returns value unchanged unless it starts with "auto":
//   - "auto" formats now with DefaultDateFormat
//   - "auto:FORMAT" formats now with a token format
//   - "auto:PRESET" formats now with one of Presets (case-insensitive)
func Resolve(value string, now time.Time) (string, error) {
	if !IsAuto(value) {
		return value, nil
	}

	format := DefaultDateFormat
	if len(value) > len(autoKeyword) {
		arg, ok := strings.CutPrefix(value[len(autoKeyword):], ":")
		if !ok {
			return "", fmt.Errorf("%w: invalid auto syntax %q, use \"auto\" or \"auto:FORMAT\"", ErrInvalidDateFormat, value)
		}
		if arg == "" {
			return "", fmt.Errorf("%w: format cannot be empty after \"auto:\"", ErrInvalidDateFormat)
		}
		format = arg
		if preset, ok := Presets[strings.ToLower(arg)]; ok {
			format = preset
		}
	}

	layout, err := Layout(format)
	if err != nil {
		return "", err
	}
	return now.Format(layout), nil
}

// Validate checks a date value without resolving it.
func Validate(value string) error {
	_, err := Resolve(value, time.Time{})
	return err
}
