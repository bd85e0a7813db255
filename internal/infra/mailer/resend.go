// Package mailer sends transactional email through the Resend HTTP API.
package mailer

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"rugboost-api/internal/pkg/config"
	"rugboost-api/internal/pkg/errs"
)

var ErrSendFailed = errs.New("email delivery failed")

type Email struct {
	From    string   `json:"from"`
	To      []string `json:"to"`
	ReplyTo string   `json:"reply_to,omitempty"`
	Subject string   `json:"subject"`
	HTML    string   `json:"html"`
}

type ResendClient struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

func NewResendClient(cfg config.MailConfig) *ResendClient {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &ResendClient{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		apiKey:  cfg.APIKey,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

type sendResponse struct {
	ID string `json:"id"`
}

type errorResponse struct {
	Name    string `json:"name"`
	Message string `json:"message"`
}

// Send delivers msg once and returns the provider message id. Failures are
// not retried.
func (c *ResendClient) Send(ctx context.Context, msg Email) (string, error) {
	payload, err := json.Marshal(msg)
	if err != nil {
		return "", errs.Wrap(err, "marshal email")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/emails", bytes.NewReader(payload))
	if err != nil {
		return "", errs.Wrap(err, "create request")
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", errs.Mark(errs.Wrap(err, "send request"), ErrSendFailed)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return "", errs.Mark(errs.Wrap(err, "read response"), ErrSendFailed)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var apiErr errorResponse
		_ = json.Unmarshal(body, &apiErr)
		detail := apiErr.Message
		if detail == "" {
			detail = string(body)
		}
		return "", errs.Mark(fmt.Errorf("resend API error (status %d): %s", resp.StatusCode, detail), ErrSendFailed)
	}

	var out sendResponse
	if len(body) > 0 {
		if err := json.Unmarshal(body, &out); err != nil {
			return "", errs.Wrap(err, "unmarshal response")
		}
	}
	return out.ID, nil
}
