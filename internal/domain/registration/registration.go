package registration

import (
	"errors"
	"strings"
	"time"

	"rugboost-api/internal/domain/user"

	"github.com/google/uuid"
)

const (
	MinPasswordLength = 8
	// MaxPasswordBytes is the most bcrypt will hash.
	MaxPasswordBytes  = 72
)

// Error texts are returned to the caller verbatim.
var (
	ErrMissingFields      = errors.New("Access token, email, and password are required")
	ErrPasswordTooShort   = errors.New("Password must be at least 8 characters")
	ErrPasswordTooLong    = errors.New("Password must be at most 72 bytes")
	ErrPasswordNoUpper    = errors.New("Password must contain an uppercase letter")
	ErrPasswordNoLower    = errors.New("Password must contain a lowercase letter")
	ErrPasswordNoDigit    = errors.New("Password must contain a number")
	ErrInvalidAccessToken = errors.New("Invalid or expired access link. Please request a new link from the business.")
	ErrLegacyInvite       = errors.New("This access link is invalid or expired. Please request a new link from the business.")
	ErrEmailMismatch      = errors.New("Email does not match the invitation")
)

type Request struct {
	AccessToken string
	Email       string
	Password    string
}

// Validated is a request that passed field and password checks. Email is
// normalized.
type Validated struct {
	AccessToken string
	Email       user.Email
	Password    string
}

func (r Request) Validate() (Validated, error) {
	token := strings.TrimSpace(r.AccessToken)
	if token == "" || strings.TrimSpace(r.Email) == "" || r.Password == "" {
		return Validated{}, ErrMissingFields
	}
	if err := ValidatePassword(r.Password); err != nil {
		return Validated{}, err
	}
	email, err := user.NewEmail(r.Email)
	if err != nil {
		return Validated{}, err
	}
	return Validated{AccessToken: token, Email: email, Password: r.Password}, nil
}

// ValidatePassword reports the first unmet rule.
func ValidatePassword(pw string) error {
	if len([]rune(pw)) < MinPasswordLength {
		return ErrPasswordTooShort
	}
	if len(pw) > MaxPasswordBytes {
		return ErrPasswordTooLong
	}
	var upper, lower, digit bool
	for _, r := range pw {
		switch {
		case r >= 'A' && r <= 'Z':
			upper = true
		case r >= 'a' && r <= 'z':
			lower = true
		case r >= '0' && r <= '9':
			digit = true
		}
	}
	switch {
	case !upper:
		return ErrPasswordNoUpper
	case !lower:
		return ErrPasswordNoLower
	case !digit:
		return ErrPasswordNoDigit
	}
	return nil
}

// Invite is a client_job_access row reached through its access token.
type Invite struct {
	ID            uuid.UUID
	AccessToken   string
	JobID         uuid.UUID
	AuthUserID    *uuid.UUID
	ClientID      *uuid.UUID
	InvitedEmail  *string
	ClientName    *string
	ExpiresAt     *time.Time
	PasswordSetAt *time.Time
}

func (i Invite) Expired(now time.Time) bool {
	return i.ExpiresAt != nil && !now.Before(*i.ExpiresAt)
}

// Authorize checks that the invite can set a password for email and returns
// the auth user it is bound to.
func (i Invite) Authorize(email user.Email, now time.Time) (uuid.UUID, error) {
	if i.Expired(now) {
		return uuid.Nil, ErrInvalidAccessToken
	}
	if i.AuthUserID == nil || *i.AuthUserID == uuid.Nil {
		return uuid.Nil, ErrLegacyInvite
	}
	if i.InvitedEmail != nil {
		invited := strings.ToLower(strings.TrimSpace(*i.InvitedEmail))
		if invited != "" && invited != email.Value() {
			return uuid.Nil, ErrEmailMismatch
		}
	}
	return *i.AuthUserID, nil
}

func (i Invite) ClientDisplayName() string {
	if i.ClientName == nil {
		return ""
	}
	return *i.ClientName
}

// Result mirrors the response of the hosted registration function.
type Result struct {
	UserID    uuid.UUID
	IsNewUser bool
}
