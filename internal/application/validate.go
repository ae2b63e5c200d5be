package application

import (
	"errors"
	"regexp"

	"github.com/peterpeppereater/ios-academy-homework-peterpeppereater/internal/domain/entity"
)

var (
	ErrInvalidEmail  = errors.New("invalid email")
	ErrEmptyPassword = errors.New("empty password")
)

// emailPattern is intentionally unanchored: any substring that looks like an
// address makes the whole input acceptable.
var emailPattern = regexp.MustCompile(`(?i)[A-Z0-9a-z._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,64}`)

// IsValidEmail reports whether s contains something shaped like an email address.
func IsValidEmail(s string) bool {
	return emailPattern.MatchString(s)
}

// Validate checks credentials before any request is made. The email is
// checked first; the password only has to be non-empty.
func Validate(creds entity.Credentials) error {
	if !IsValidEmail(creds.Email) {
		return ErrInvalidEmail
	}
	if creds.Password == "" {
		return ErrEmptyPassword
	}
	return nil
}

// IsValidationError reports whether err is one of the local validation errors.
func IsValidationError(err error) bool {
	return errors.Is(err, ErrInvalidEmail) || errors.Is(err, ErrEmptyPassword)
}
