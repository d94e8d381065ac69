// Package dispatch sends rendered e-cards through the transactional email
// provider's REST API.
package dispatch

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/go-resty/resty/v2"
)

// Sentinel errors surfaced to the submit pipeline
var (
	// ErrNotConfigured means provider credentials are missing
	ErrNotConfigured = errors.New("email dispatch is not configured")
	// ErrRecipientEmpty means the message had no recipient address
	ErrRecipientEmpty = errors.New("recipient email address is required")
	// ErrTemplateRecipient means the provider-side template has no "To Email"
	// field bound, a misconfiguration distinct from a generic send failure
	ErrTemplateRecipient = errors.New(`recipient email is missing: check that the provider template "To Email" field is set to {{to_email}}`)
)

// Message is one outbound e-card email
type Message struct {
	Recipient     string
	RecipientName string
	Subject       string
	HTML          string
}

// Dispatcher sends e-card messages
type Dispatcher interface {
	Send(ctx context.Context, msg Message) error
}

// Config holds the provider credentials
type Config struct {
	BaseURL    string
	ServiceID  string
	TemplateID string
	PublicKey  string
}

// Configured reports whether all credentials are present
func (c Config) Configured() bool {
	return c.ServiceID != "" && c.TemplateID != "" && c.PublicKey != ""
}

// emailDispatcher talks to the provider's REST send endpoint
type emailDispatcher struct {
	client *resty.Client
	cfg    Config
}

// NewDispatcher creates a Dispatcher for the given provider configuration
func NewDispatcher(cfg Config) Dispatcher {
	client := resty.New()
	if cfg.BaseURL != "" {
		client.SetBaseURL(cfg.BaseURL)
	}
	return &emailDispatcher{client: client, cfg: cfg}
}

// sendRequest is the provider's send payload
type sendRequest struct {
	ServiceID      string         `json:"service_id"`
	TemplateID     string         `json:"template_id"`
	UserID         string         `json:"user_id"`
	TemplateParams map[string]any `json:"template_params"`
}

// Send delivers one e-card. The recipient must be non-empty; provider
// rejections are wrapped, with the template recipient misconfiguration
// translated into an actionable error.
func (d *emailDispatcher) Send(ctx context.Context, msg Message) error {
	if !d.cfg.Configured() {
		return ErrNotConfigured
	}
	recipient := strings.TrimSpace(msg.Recipient)
	if recipient == "" {
		return ErrRecipientEmpty
	}

	name := msg.RecipientName
	if name == "" {
		name = "Recipient"
	}

	req := sendRequest{
		ServiceID:  d.cfg.ServiceID,
		TemplateID: d.cfg.TemplateID,
		UserID:     d.cfg.PublicKey,
		TemplateParams: map[string]any{
			"to_email":     recipient,
			"to_name":      name,
			"subject":      msg.Subject,
			"message":      msg.HTML,
			"html_message": msg.HTML,
			"reply_to":     recipient,
		},
	}

	resp, err := d.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		Post("/api/v1.0/email/send")
	if err != nil {
		return fmt.Errorf("failed to reach email provider: %w", err)
	}

	if resp.IsError() {
		body := string(resp.Body())
		if strings.Contains(body, "recipients address is empty") {
			return ErrTemplateRecipient
		}
		return fmt.Errorf("email provider rejected the request (%d): %s", resp.StatusCode(), body)
	}

	return nil
}
