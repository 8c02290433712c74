package booking

import (
	"regexp"
	"strings"
)

var (
	emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)
	// Accepts digits with common separators, an optional leading + and an
	// optional leading parenthesized area code, requiring at least 7 digits
	// overall.
	phonePattern = regexp.MustCompile(`^\+?[0-9(][0-9\-\.\(\)\s]{4,}[0-9]$`)
)

func validEmail(s string) bool {
	return emailPattern.MatchString(strings.TrimSpace(s))
}

func validPhone(s string) bool {
	s = strings.TrimSpace(s)
	if !phonePattern.MatchString(s) {
		return false
	}
	digits := 0
	for _, r := range s {
		if r >= '0' && r <= '9' {
			digits++
		}
	}
	return digits >= 7
}

func blank(s string) bool {
	return strings.TrimSpace(s) == ""
}

func oneOf(s string, allowed []string) bool {
	for _, a := range allowed {
		if s == a {
			return true
		}
	}
	return false
}
