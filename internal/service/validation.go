package service

import (
	"fmt"
	"regexp"
)

// ValidationError is a client input problem, reported with the specific
// reason and mapped to a 400 at the boundary.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func invalidInput(format string, args ...any) *ValidationError {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}

var emailRegex = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

func validateEmail(email string) bool {
	return emailRegex.MatchString(email)
}

func validateName(name string) bool {
	return len(name) >= 2 && len(name) <= 50
}

var (
	upperRegex = regexp.MustCompile(`[A-Z]`)
	lowerRegex = regexp.MustCompile(`[a-z]`)
	digitRegex = regexp.MustCompile(`[0-9]`)
)

// validatePassword enforces the signup password policy. Returns an empty
// string when the password is acceptable.
func validatePassword(password string) string {
	switch {
	case len(password) < 8:
		return "Password must be at least 8 characters long"
	case !upperRegex.MatchString(password):
		return "Password must contain at least one uppercase letter"
	case !lowerRegex.MatchString(password):
		return "Password must contain at least one lowercase letter"
	case !digitRegex.MatchString(password):
		return "Password must contain at least one number"
	}
	return ""
}
