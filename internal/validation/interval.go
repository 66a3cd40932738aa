package validation

import (
	"strconv"
	"strings"
)

// maxIntervalMinutes is the inclusive upper bound for either endpoint:
// "24:00" is a valid end-of-day marker, anything past it is out of range.
const maxIntervalMinutes = 24 * 60

// checkTimeInterval validates a "HH:mm-HH:mm" call window. Blank values are
// treated as absent and pass. Non-blank values must split on a single '-'
// into two parseable clock tokens (invalid_format), the start must lie
// strictly before the end (invalid_range), and both endpoints must fall
// within [00:00, 24:00] (out_of_range).
func checkTimeInterval(v string) *FieldError {
	if strings.TrimSpace(v) == "" {
		return nil
	}

	parts := strings.Split(v, "-")
	if len(parts) != 2 {
		return intervalErr(RuleInvalidFormat, "Invalid time interval format")
	}
	start, ok := parseClock(parts[0])
	if !ok {
		return intervalErr(RuleInvalidFormat, "Invalid time interval format")
	}
	end, ok := parseClock(parts[1])
	if !ok {
		return intervalErr(RuleInvalidFormat, "Invalid time interval format")
	}

	if start >= end {
		return intervalErr(RuleInvalidRange, "Start time must be before end time")
	}
	if start < 0 || start > maxIntervalMinutes || end < 0 || end > maxIntervalMinutes {
		return intervalErr(RuleOutOfRange, "Time interval out of range")
	}
	return nil
}

// parseClock parses an "H:mm" token into total minutes. Hours are any
// non-negative integer (range is enforced by the caller, so "25:00" parses
// and then fails out_of_range rather than invalid_format); minutes must be
// 00-59.
func parseClock(tok string) (int, bool) {
	tok = strings.TrimSpace(tok)
	h, m, found := strings.Cut(tok, ":")
	if !found || !digits(h) || !digits(m) {
		return 0, false
	}
	hh, err := strconv.Atoi(h)
	if err != nil {
		return 0, false
	}
	mm, err := strconv.Atoi(m)
	if err != nil || mm > 59 {
		return 0, false
	}
	return hh*60 + mm, true
}

// digits reports whether s is non-empty and consists solely of ASCII digits.
func digits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

func intervalErr(rule, msg string) *FieldError {
	return &FieldError{Field: "best_time_to_call", Rule: rule, Message: msg}
}
