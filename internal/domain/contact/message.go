package contact

import (
	"errors"
	"strings"
	"unicode/utf8"

	"rugboost-api/internal/domain/user"
)

const (
	MaxNameLength    = 100
	MaxEmailLength   = 255
	MaxSubjectLength = 200
	MaxMessageLength = 5000
)

// Error texts are returned to the caller verbatim.
var (
	ErrFieldsRequired = errors.New("All fields are required")
	ErrInvalidEmail   = errors.New("Invalid email address")
	ErrNameTooLong    = errors.New("Name must be less than 100 characters")
	ErrEmailTooLong   = errors.New("Email must be less than 255 characters")
	ErrSubjectTooLong = errors.New("Subject must be less than 200 characters")
	ErrMessageTooLong = errors.New("Message must be less than 5000 characters")
)

type Submission struct {
	Name    string
	Email   string
	Subject string
	Message string
	// Website is a hidden form field; people leave it empty, bots do not.
	Website string
}

// IsSpam reports whether the honeypot field was filled in.
func (s Submission) IsSpam() bool {
	return strings.TrimSpace(s.Website) != ""
}

// Message is a validated contact form submission.
type Message struct {
	name    string
	email   string
	subject string
	body    string
}

func NewMessage(s Submission) (Message, error) {
	m := Message{
		name:    strings.TrimSpace(s.Name),
		email:   strings.TrimSpace(s.Email),
		subject: strings.TrimSpace(s.Subject),
		body:    strings.TrimSpace(s.Message),
	}
	if m.name == "" || m.email == "" || m.subject == "" || m.body == "" {
		return Message{}, ErrFieldsRequired
	}
	if !user.IsValidEmail(m.email) {
		return Message{}, ErrInvalidEmail
	}

	switch {
	case utf8.RuneCountInString(m.name) > MaxNameLength:
		return Message{}, ErrNameTooLong
	case utf8.RuneCountInString(m.email) > MaxEmailLength:
		return Message{}, ErrEmailTooLong
	case utf8.RuneCountInString(m.subject) > MaxSubjectLength:
		return Message{}, ErrSubjectTooLong
	case utf8.RuneCountInString(m.body) > MaxMessageLength:
		return Message{}, ErrMessageTooLong
	}
	return m, nil
}

func (m Message) Name() string    { return m.name }
func (m Message) Email() string   { return m.email }
func (m Message) Subject() string { return m.subject }
func (m Message) Body() string    { return m.body }

// IsValidationError reports whether err came from NewMessage.
func IsValidationError(err error) bool {
	for _, target := range []error{
		ErrFieldsRequired, ErrInvalidEmail, ErrNameTooLong,
		ErrEmailTooLong, ErrSubjectTooLong, ErrMessageTooLong,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}
