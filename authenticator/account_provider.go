package authenticator

import (
	"context"
	"fmt"

	"github.com/go-resty/resty/v2"
)

// AccountConfig holds the identity service credentials
type AccountConfig struct {
	BaseURL string
	APIKey  string
}

// accountProvider talks to the identity service's REST account endpoints
type accountProvider struct {
	client *resty.Client
}

// NewAccountProvider creates an AccountProvider for the given identity service
func NewAccountProvider(cfg AccountConfig) AccountProvider {
	client := resty.New()
	if cfg.BaseURL != "" {
		client.SetBaseURL(cfg.BaseURL)
	}
	if cfg.APIKey != "" {
		client.SetQueryParam("key", cfg.APIKey)
	}
	return &accountProvider{client: client}
}

// accountResponse is the identity service's account payload
type accountResponse struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"display_name"`
}

// errorResponse carries the provider's error code on rejected requests
type errorResponse struct {
	Error struct {
		Code string `json:"code"`
	} `json:"error"`
}

func (r accountResponse) identity() *Identity {
	return &Identity{ID: r.ID, Email: r.Email, Name: r.Name}
}

// post sends one account request and classifies rejections by provider code
func (p *accountProvider) post(ctx context.Context, path string, body any, out *accountResponse) error {
	var provErr errorResponse
	resp, err := p.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(body).
		SetResult(out).
		SetError(&provErr).
		Post(path)
	if err != nil {
		return fmt.Errorf("failed to reach identity service: %w", err)
	}
	if resp.IsError() {
		return NewAuthError(provErr.Error.Code)
	}
	return nil
}

// SignUp creates a password account and sets its display name
func (p *accountProvider) SignUp(ctx context.Context, email, password, name string) (*Identity, error) {
	var account accountResponse
	err := p.post(ctx, "/v1/accounts/signup", map[string]string{
		"email":        email,
		"password":     password,
		"display_name": name,
	}, &account)
	if err != nil {
		return nil, err
	}
	return account.identity(), nil
}

// SignIn verifies a password credential and returns the account it belongs to
func (p *accountProvider) SignIn(ctx context.Context, email, password string) (*Identity, error) {
	var account accountResponse
	err := p.post(ctx, "/v1/accounts/signin", map[string]string{
		"email":    email,
		"password": password,
	}, &account)
	if err != nil {
		return nil, err
	}
	return account.identity(), nil
}

// UpdateProfile changes an account's display name and email
func (p *accountProvider) UpdateProfile(ctx context.Context, id, name, email string) (*Identity, error) {
	var account accountResponse
	err := p.post(ctx, "/v1/accounts/update", map[string]string{
		"id":           id,
		"display_name": name,
		"email":        email,
	}, &account)
	if err != nil {
		return nil, err
	}
	return account.identity(), nil
}

// ChangePassword re-verifies the current password before applying the new
// one. A failed re-verification surfaces as the wrong-password message and
// leaves the account untouched.
func (p *accountProvider) ChangePassword(ctx context.Context, email, currentPassword, newPassword string) error {
	if _, err := p.SignIn(ctx, email, currentPassword); err != nil {
		return err
	}

	var account accountResponse
	return p.post(ctx, "/v1/accounts/password", map[string]string{
		"email":    email,
		"password": newPassword,
	}, &account)
}
