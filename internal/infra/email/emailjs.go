// Package email delivers templated messages through the EmailJS REST API.
package email

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"time"

	"eatery-api/internal/domain/notification"
	"eatery-api/internal/pkg/errs"
)

const DefaultEndpoint = "https://api.emailjs.com/api/v1.0/email/send"

type sendRequest struct {
	ServiceID      string         `json:"service_id"`
	TemplateID     string         `json:"template_id"`
	UserID         string         `json:"user_id"`
	TemplateParams map[string]any `json:"template_params"`
}

// Sender posts one templated message per call. Credentials are supplied per
// call because the admin panel can reconfigure them at any time.
type Sender struct {
	endpoint string
	client   *http.Client
}

type Option func(*Sender)

func WithEndpoint(endpoint string) Option {
	return func(s *Sender) {
		s.endpoint = endpoint
	}
}

func NewSender(opts ...Option) *Sender {
	s := &Sender{
		endpoint: DefaultEndpoint,
		client:   &http.Client{Timeout: 10 * time.Second},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Sender) Send(ctx context.Context, creds notification.Credentials, params map[string]any) error {
	body, err := json.Marshal(sendRequest{
		ServiceID:      creds.ServiceID,
		TemplateID:     creds.TemplateID,
		UserID:         creds.AccountID,
		TemplateParams: params,
	})
	if err != nil {
		return errs.Wrap(err, "failed to encode delivery request")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.endpoint, bytes.NewReader(body))
	if err != nil {
		return errs.Wrap(err, "failed to build delivery request")
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return errs.Wrap(err, "delivery request failed")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return errs.New("delivery rejected with status " + resp.Status + ": " + string(detail))
	}

	return nil
}
