// Package validation holds the form-level rules the CLI applies before
// registering a user. The auth service itself only rejects empty fields.
package validation

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"
)

const (
	FieldUsername = "username"
	FieldPassword = "password"

	MinPasswordLength = 8

	passwordSpecials = `!@#$%^&*(),.?":{}|<>`
)

var usernamePattern = regexp.MustCompile(`^[a-zA-Z0-9_-]{3,20}$`)

// FieldError reports the first rule a field failed.
type FieldError struct {
	Field   string
	Message string
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidateUsername accepts 3-20 English letters, digits, '_' or '-'.
func ValidateUsername(username string) error {
	if username == "" {
		return &FieldError{Field: FieldUsername, Message: "Username is required"}
	}
	if !utf8.ValidString(username) || !usernamePattern.MatchString(username) {
		return &FieldError{Field: FieldUsername,
			Message: "Username can only contain English letters, numbers, _, or -, and must be 3-20 characters"}
	}
	return nil
}

// ValidatePassword requires at least MinPasswordLength characters with an
// uppercase letter, a lowercase letter, a digit and a special character.
func ValidatePassword(password []byte) error {
	if len(password) == 0 {
		return &FieldError{Field: FieldPassword, Message: "Password is required"}
	}
	if !utf8.Valid(password) {
		return &FieldError{Field: FieldPassword, Message: "Password contains invalid characters"}
	}
	if utf8.RuneCount(password) < MinPasswordLength {
		return &FieldError{Field: FieldPassword,
			Message: fmt.Sprintf("Password must be at least %d characters", MinPasswordLength)}
	}

	var upper, lower, digit, special bool
	for _, r := range string(password) {
		switch {
		case r >= 'A' && r <= 'Z':
			upper = true
		case r >= 'a' && r <= 'z':
			lower = true
		case r >= '0' && r <= '9':
			digit = true
		case strings.ContainsRune(passwordSpecials, r):
			special = true
		}
	}

	switch {
	case !upper:
		return &FieldError{Field: FieldPassword, Message: "Password must contain at least one uppercase letter"}
	case !lower:
		return &FieldError{Field: FieldPassword, Message: "Password must contain at least one lowercase letter"}
	case !digit:
		return &FieldError{Field: FieldPassword, Message: "Password must contain at least one number"}
	case !special:
		return &FieldError{Field: FieldPassword, Message: "Password must contain at least one special character"}
	}
	return nil
}
