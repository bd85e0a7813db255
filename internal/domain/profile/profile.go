package profile

import (
	"errors"
	"strconv"
	"strings"
	"unicode/utf8"

	"rugboost-api/internal/domain/user"

	"github.com/google/uuid"
)

const (
	MaxFullNameLength     = 100
	MaxBusinessNameLength = 200
	MaxAddressLength      = 500
	MaxPhoneLength        = 30
	MaxEmailLength        = 255
)

var (
	ErrFieldTooLong         = errors.New("profile field is too long")
	ErrInvalidBusinessEmail = errors.New("business email is invalid")
)

type Profile struct {
	UserID          uuid.UUID
	FullName        *string
	BusinessName    *string
	BusinessAddress *string
	BusinessPhone   *string
	BusinessEmail   *string
	LogoURL         *string
}

// Edit carries the user-editable fields. Blank values clear the column.
type Edit struct {
	FullName        string
	BusinessName    string
	BusinessAddress string
	BusinessPhone   string
	BusinessEmail   string
}

// Empty is the profile shown before the user has saved anything.
func Empty(userID uuid.UUID) Profile {
	return Profile{UserID: userID}
}

// Apply returns p with the edit applied. The logo is left unchanged.
func (p Profile) Apply(e Edit) (Profile, error) {
	fields := []struct {
		value string
		max   int
		name  string
		dst   **string
	}{
		{e.FullName, MaxFullNameLength, "full name", &p.FullName},
		{e.BusinessName, MaxBusinessNameLength, "business name", &p.BusinessName},
		{e.BusinessAddress, MaxAddressLength, "business address", &p.BusinessAddress},
		{e.BusinessPhone, MaxPhoneLength, "business phone", &p.BusinessPhone},
		{e.BusinessEmail, MaxEmailLength, "business email", &p.BusinessEmail},
	}
	for _, f := range fields {
		v := strings.TrimSpace(f.value)
		if utf8.RuneCountInString(v) > f.max {
			return Profile{}, &FieldError{Field: f.name, Max: f.max}
		}
		if v == "" {
			*f.dst = nil
			continue
		}
		*f.dst = &v
	}

	if p.BusinessEmail != nil && !user.IsValidEmail(*p.BusinessEmail) {
		return Profile{}, ErrInvalidBusinessEmail
	}
	return p, nil
}

func (p Profile) ClearLogo() Profile {
	p.LogoURL = nil
	return p
}

// DisplayBusinessName is used on reports and emails.
func (p Profile) DisplayBusinessName() string {
	if p.BusinessName == nil {
		return ""
	}
	return *p.BusinessName
}

type FieldError struct {
	Field string
	Max   int
}

func (e *FieldError) Error() string {
	return e.Field + " must be at most " + strconv.Itoa(e.Max) + " characters"
}

func (e *FieldError) Unwrap() error {
	return ErrFieldTooLong
}
