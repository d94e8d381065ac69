package authenticator

import (
	"context"
)

// Identity is a signed-in user as reported by the identity service
type Identity struct {
	ID    string
	Email string
	Name  string
}

// Token represents an authentication token
type Token struct {
	AccessToken  string
	RefreshToken string
	IDToken      string
	Expiry       int64
}

// Claims represents user claims from the ID token
type Claims map[string]interface{}

// Provider interface abstracts federated sign-in operations
type Provider interface {
	GetAuthURL(state string) string
	ExchangeCode(ctx context.Context, code string) (*Token, error)
	GetIdentity(ctx context.Context, token *Token) (*Identity, error)
}

// AccountProvider interface abstracts password-account operations. Every
// provider failure comes back as an *AuthError carrying a user-facing message.
type AccountProvider interface {
	SignUp(ctx context.Context, email, password, name string) (*Identity, error)
	SignIn(ctx context.Context, email, password string) (*Identity, error)
	UpdateProfile(ctx context.Context, id, name, email string) (*Identity, error)
	// ChangePassword re-verifies currentPassword before applying newPassword
	ChangePassword(ctx context.Context, email, currentPassword, newPassword string) error
}
