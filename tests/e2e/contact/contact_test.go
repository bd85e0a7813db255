//go:build e2e

package contact_test

import (
	"net/http"
	"strings"
	"testing"

	"rugboost-api/internal/domain/contact"
	resdto "rugboost-api/internal/handler/dto/response"
	"rugboost-api/tests/common/builder"
	"rugboost-api/tests/common/httptest"
	"rugboost-api/tests/e2e"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const contactURL = "/api/contact"

type contactSuite struct {
	e2e.SharedSuite
}

func TestContactSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(contactSuite))
}

func (s *contactSuite) TestSubmit() {
	tests := []struct {
		name           string
		mutate         func(*builder.ContactBuilder)
		expectedStatus int
		expectedError  string
		expectSent     bool
	}{
		{
			name:           "success",
			expectedStatus: http.StatusOK,
			expectSent:     true,
		},
		{
			name:           "honeypot filled is accepted silently",
			mutate:         func(b *builder.ContactBuilder) { b.Website = "http://spam.example" },
			expectedStatus: http.StatusOK,
			expectSent:     false,
		},
		{
			name:           "invalid email",
			mutate:         func(b *builder.ContactBuilder) { b.Email = "not-an-email" },
			expectedStatus: http.StatusBadRequest,
			expectedError:  contact.ErrInvalidEmail.Error(),
		},
		{
			name:           "missing subject",
			mutate:         func(b *builder.ContactBuilder) { b.Subject = "   " },
			expectedStatus: http.StatusBadRequest,
			expectedError:  contact.ErrFieldsRequired.Error(),
		},
		{
			name:           "message too long",
			mutate:         func(b *builder.ContactBuilder) { b.Message = strings.Repeat("a", 5001) },
			expectedStatus: http.StatusBadRequest,
			expectedError:  contact.ErrMessageTooLong.Error(),
		},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			t := s.T()

			b := builder.NewContactBuilder()
			if tt.mutate != nil {
				b.With(tt.mutate)
			}

			w := httptest.PerformRequest(t, s.Router, http.MethodPost, contactURL, b.BuildRequest(), "")

			if tt.expectedStatus != http.StatusOK {
				httptest.AssertFlatErrorResponse(t, w, tt.expectedStatus, tt.expectedError)
				assert.Empty(t, s.Mail.Sent())
				return
			}

			var res resdto.SuccessResponse
			httptest.AssertSuccessResponse(t, w, http.StatusOK, &res)
			assert.True(t, res.Success)

			sent := s.Mail.Sent()
			if !tt.expectSent {
				assert.Empty(t, sent)
				return
			}
			require.Len(t, sent, 1)
			assert.Equal(t, []string{s.Config.Mail.SupportEmail}, sent[0].To)
			assert.Equal(t, "jane@example.com", sent[0].ReplyTo)
			assert.Equal(t, "[Contact Form] Question about rug cleaning", sent[0].Subject)
			assert.Contains(t, sent[0].HTML, "Do you handle silk rugs?")
		})
	}
}

func (s *contactSuite) TestSubmitEscapesHTML() {
	s.Run("markup in the message is escaped", func() {
		t := s.T()

		req := builder.NewContactBuilder().With(func(b *builder.ContactBuilder) {
			b.Message = "<script>alert(1)</script>"
		}).BuildRequest()

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, contactURL, req, "")
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		sent := s.Mail.Sent()
		require.Len(t, sent, 1)
		assert.NotContains(t, sent[0].HTML, "<script>")
		assert.Contains(t, sent[0].HTML, "&lt;script&gt;")
	})
}

func (s *contactSuite) TestRateLimit() {
	s.Run("sixth submission within the window is rejected", func() {
		t := s.T()
		headers := map[string]string{"X-Real-IP": "192.0.2.44"}
		req := builder.NewContactBuilder().BuildRequest()

		for i := 0; i < s.Config.RateLimit.ContactMax; i++ {
			w := httptest.PerformRequestWithHeaders(t, s.Router, http.MethodPost, contactURL, req, headers, nil)
			require.Equal(t, http.StatusOK, w.Code, "attempt %d", i+1)
		}

		w := httptest.PerformRequestWithHeaders(t, s.Router, http.MethodPost, contactURL, req, headers, nil)
		httptest.AssertRateLimited(t, w, "Too many requests. Please try again later.")
		assert.Len(t, s.Mail.Sent(), s.Config.RateLimit.ContactMax)
	})
}
