package errors

import (
	"slices"
	"strconv"
	"strings"
)

// ValidateFormat checks that format is one of the allowed output formats.
// Matching is case-insensitive; the normalized (lower-case) name is returned.
func ValidateFormat(format string, allowed []string) (string, error) {
	f := strings.ToLower(strings.TrimSpace(format))
	if f == "" {
		return "", New(ErrCodeInvalidFormat, "format cannot be empty")
	}
	if !slices.Contains(allowed, f) {
		return "", New(ErrCodeInvalidFormat, "unsupported format %q (want one of %s)", format, strings.Join(allowed, ", "))
	}
	return f, nil
}

// ParseSolutionIndex parses a 1-based solution number as used by the CLI and
// the HTTP API and returns the 0-based slice index.
//
// The number must be a positive integer not greater than count.
func ParseSolutionIndex(s string, count int) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, New(ErrCodeInvalidInput, "solution number %q is not an integer", s)
	}
	return ValidateSolutionIndex(n, count)
}

// ValidateSolutionIndex checks a 1-based solution number against count and
// returns the 0-based slice index.
func ValidateSolutionIndex(n, count int) (int, error) {
	if n < 1 {
		return 0, New(ErrCodeInvalidInput, "solution number must be positive, got %d", n)
	}
	if n > count {
		return 0, New(ErrCodeNotFound, "solution %d does not exist (%d found)", n, count)
	}
	return n - 1, nil
}
