package utils

import (
	"regexp"
	"strings"
)

var emailRegex = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// ValidEmail reports whether email has a plausible mailbox shape.
func ValidEmail(email string) bool {
	return emailRegex.MatchString(strings.TrimSpace(email))
}

// ValidPassword reports whether password meets the minimum length requirement.
func ValidPassword(password string) bool {
	return len(password) >= 6
}

// EmailLocalPart returns the part of the address before the '@', used as a
// fallback display name for demo client accounts.
func EmailLocalPart(email string) string {
	email = strings.TrimSpace(email)
	if i := strings.Index(email, "@"); i > 0 {
		return email[:i]
	}
	return email
}
