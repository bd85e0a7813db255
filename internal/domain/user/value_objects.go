package user

import (
	"errors"
	"regexp"
	"strings"
)

var (
	ErrInvalidEmail = errors.New("invalid email format")
	ErrInvalidRole  = errors.New("invalid role")
)

// Same shape the web forms validate against: something@something.tld
var emailRegex = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

type Email struct {
	value string
}

// NewEmail trims and lowercases before validating.
func NewEmail(s string) (Email, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if !emailRegex.MatchString(s) {
		return Email{}, ErrInvalidEmail
	}
	return Email{value: s}, nil
}

func (e Email) Value() string {
	return e.value
}

// Masked returns the first three characters followed by ***, for logs.
func (e Email) Masked() string {
	return Mask(e.value, 3)
}

// IsValidEmail checks the raw format without normalizing.
func IsValidEmail(s string) bool {
	return emailRegex.MatchString(s)
}

func NewRole(s string) (Role, error) {
	r := Role(s)
	switch r {
	case RoleClient, RoleStaff, RoleAdmin:
		return r, nil
	default:
		return "", ErrInvalidRole
	}
}

func (r Role) String() string {
	return string(r)
}

// Mask keeps the first n characters of s and replaces the rest with ***.
func Mask(s string, n int) string {
	if len(s) <= n {
		return s + "***"
	}
	return s[:n] + "***"
}
