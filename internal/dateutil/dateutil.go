// Package dateutil resolves the date shown on generated reports.
//
// A date value is either a literal string, which is used as is, or an
// "auto" expression evaluated against the current time:
//
//	auto              today as YYYY-MM-DD
//	auto:report       today as "January 02, 2006"
//	auto:DD/MM/YYYY   today in a custom format
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

// DefaultDateFormat is used when "auto" is specified without a format.
const DefaultDateFormat = "YYYY-MM-DD"

// ReportDate is the value used for the title page when nothing is configured.
const ReportDate = "auto:report"

// Presets are named shortcuts accepted after "auto:", case-insensitively.
var Presets = map[string]string{
	"iso":      "YYYY-MM-DD",
	"european": "DD/MM/YYYY",
	"us":       "MM/DD/YYYY",
	"long":     "MMMM D, YYYY",
	"report":   "MMMM DD, YYYY",
}

// tokens is ordered longest first so "MMMM" wins over "MM".
var tokens = [...]struct{ token, layout string }{
	{"YYYY", "2006"},
	{"MMMM", "January"},
	{"MMM", "Jan"},
	{"YY", "06"},
	{"MM", "01"},
	{"DD", "02"},
	{"M", "1"},
	{"D", "2"},
}

// Layout converts a token format (YYYY, YY, MMMM, MMM, MM, M, DD, D) into a
// Go time layout. Text inside brackets is copied literally, so "[Day] D"
// yields "Day 2".
func Layout(format string) (string, error) {
	if format == "" {
		return "", fmt.Errorf("%w: format cannot be empty", ErrInvalidDateFormat)
	}
	if len(format) > MaxDateFormatLength {
		return "", fmt.Errorf("%w: format exceeds %d characters", ErrInvalidDateFormat, MaxDateFormatLength)
	}

	var b strings.Builder
	rest := format
	for rest != "" {
		if rest[0] == '[' {
			literal, after, ok := strings.Cut(rest[1:], "]")
			if !ok {
				return "", fmt.Errorf("%w: unclosed bracket at position %d", ErrInvalidDateFormat, len(format)-len(rest))
			}
			b.WriteString(literal)
			rest = after
			continue
		}
		n := 1
		layout := rest[:1]
		for _, t := range tokens {
			if strings.HasPrefix(rest, t.token) {
				n, layout = len(t.token), t.layout
				break
			}
		}
		b.WriteString(layout)
		rest = rest[n:]
	}
	return b.String(), nil
}

// Resolve evaluates value against now. Values that do not start with "auto"
// are returned unchanged.
func Resolve(value string, now time.Time) (string, error) {
	head, format, hasFormat := strings.Cut(value, ":")
	if !strings.EqualFold(head, "auto") {
		if strings.HasPrefix(strings.ToLower(value), "auto") {
			return "", fmt.Errorf("%w: invalid auto syntax %q, use \"auto\" or \"auto:FORMAT\"", ErrInvalidDateFormat, value)
		}
		return value, nil
	}

	switch {
	case !hasFormat:
		format = DefaultDateFormat
	case format == "":
		return "", fmt.Errorf("%w: format cannot be empty after \"auto:\"", ErrInvalidDateFormat)
	default:
		if preset, ok := Presets[strings.ToLower(format)]; ok {
			format = preset
		}
	}

	layout, err := Layout(format)
	if err != nil {
		return "", err
	}
	return now.Format(layout), nil
}
