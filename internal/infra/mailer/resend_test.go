//go:build unit

package mailer_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"rugboost-api/internal/infra/mailer"
	"rugboost-api/internal/pkg/config"
	"rugboost-api/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newClient(t *testing.T, handler http.HandlerFunc) *mailer.ResendClient {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return mailer.NewResendClient(config.MailConfig{
		APIKey:  "re_test",
		BaseURL: srv.URL + "/",
		Timeout: time.Second,
	})
}

func TestResendClient_Send(t *testing.T) {
	var got mailer.Email
	client := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/emails", r.URL.Path)
		assert.Equal(t, "Bearer re_test", r.Header.Get("Authorization"))
		body, _ := io.ReadAll(r.Body)
		assert.NoError(t, json.Unmarshal(body, &got))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"msg_123"}`))
	})

	id, err := client.Send(context.Background(), mailer.Email{
		From:    "RugBoost Contact <noreply@rugboost.com>",
		To:      []string{"support@rugboost.com"},
		ReplyTo: "alex@example.com",
		Subject: "[Contact Form] Hi",
		HTML:    "<p>hi</p>",
	})
	require.NoError(t, err)
	assert.Equal(t, "msg_123", id)
	assert.Equal(t, "alex@example.com", got.ReplyTo)
	assert.Equal(t, []string{"support@rugboost.com"}, got.To)
}

func TestResendClient_SendFailure(t *testing.T) {
	client := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		_, _ = w.Write([]byte(`{"name":"validation_error","message":"Invalid from address"}`))
	})

	_, err := client.Send(context.Background(), mailer.Email{From: "x", To: []string{"y"}})
	require.Error(t, err)
	assert.True(t, errs.Is(err, mailer.ErrSendFailed))
	assert.Contains(t, err.Error(), "Invalid from address")
}

func TestRenderContact_EscapesInput(t *testing.T) {
	html, err := mailer.RenderContact(mailer.ContactData{
		Name:    `<script>alert("x")</script>`,
		Email:   "alex@example.com",
		Subject: "Rug & fringe",
		Message: "line1\n<b>bold</b>",
	})
	require.NoError(t, err)

	assert.NotContains(t, html, "<script>")
	assert.NotContains(t, html, "<b>bold</b>")
	assert.Contains(t, html, "&lt;b&gt;bold&lt;/b&gt;")
	assert.Contains(t, html, "Rug &amp; fringe")
}

func TestRenderInspectionReady(t *testing.T) {
	html, err := mailer.RenderInspectionReady(mailer.InspectionReadyData{
		BusinessName: "Knots & Co",
		JobNumber:    "J-42",
		PortalURL:    "https://app.rugboost.com/client/abc",
		RugCount:     3,
		TotalAmount:  "$1,050.00",
	})
	require.NoError(t, err)

	assert.Contains(t, html, "Hi there,")
	assert.Contains(t, html, "your 3 rugs for job #J-42")
	assert.Contains(t, html, `href="https://app.rugboost.com/client/abc"`)
	assert.True(t, strings.Contains(html, "Knots &amp; Co"))
}
