//go:build unit

package contact_test

import (
	"strings"
	"testing"

	"rugboost-api/internal/domain/contact"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func valid() contact.Submission {
	return contact.Submission{
		Name:    "Alex Weaver",
		Email:   "alex@example.com",
		Subject: "Pricing",
		Message: "How much for a 9x12?",
	}
}

func TestNewMessage(t *testing.T) {
	t.Run("trims fields", func(t *testing.T) {
		s := valid()
		s.Name = "  Alex Weaver "
		m, err := contact.NewMessage(s)
		require.NoError(t, err)
		assert.Equal(t, "Alex Weaver", m.Name())
		assert.Equal(t, "alex@example.com", m.Email())
	})

	cases := []struct {
		name   string
		mutate func(*contact.Submission)
		want   error
	}{
		{name: "missing name", mutate: func(s *contact.Submission) { s.Name = "" }, want: contact.ErrFieldsRequired},
		{name: "whitespace message", mutate: func(s *contact.Submission) { s.Message = "   " }, want: contact.ErrFieldsRequired},
		{name: "bad email", mutate: func(s *contact.Submission) { s.Email = "not-an-email" }, want: contact.ErrInvalidEmail},
		{name: "long name", mutate: func(s *contact.Submission) { s.Name = strings.Repeat("n", 101) }, want: contact.ErrNameTooLong},
		{name: "long email", mutate: func(s *contact.Submission) { s.Email = strings.Repeat("e", 250) + "@x.com" }, want: contact.ErrEmailTooLong},
		{name: "long subject", mutate: func(s *contact.Submission) { s.Subject = strings.Repeat("s", 201) }, want: contact.ErrSubjectTooLong},
		{name: "long message", mutate: func(s *contact.Submission) { s.Message = strings.Repeat("m", 5001) }, want: contact.ErrMessageTooLong},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s := valid()
			tc.mutate(&s)
			_, err := contact.NewMessage(s)
			require.ErrorIs(t, err, tc.want)
			assert.True(t, contact.IsValidationError(err))
		})
	}

	t.Run("limits are inclusive", func(t *testing.T) {
		s := valid()
		s.Name = strings.Repeat("n", 100)
		s.Message = strings.Repeat("m", 5000)
		_, err := contact.NewMessage(s)
		assert.NoError(t, err)
	})
}

func TestSubmission_IsSpam(t *testing.T) {
	s := valid()
	assert.False(t, s.IsSpam())
	s.Website = "http://spam.example"
	assert.True(t, s.IsSpam())
}
