package userctx

import (
	"context"

	"github.com/securefit/ecard/models"
)

// Context key type
type contextKey string

const userKey contextKey = "user"

// SetUser adds the signed-in user to request context
func SetUser(ctx context.Context, user *models.User) context.Context {
	return context.WithValue(ctx, userKey, user)
}

// GetUser retrieves the signed-in user from request context, nil when
// the request is anonymous
func GetUser(ctx context.Context) *models.User {
	user, ok := ctx.Value(userKey).(*models.User)
	if !ok {
		return nil
	}
	return user
}

// GetUserID retrieves the signed-in user's ID from request context
func GetUserID(ctx context.Context) string {
	if user := GetUser(ctx); user != nil {
		return user.ID
	}
	return ""
}

// GetUserEmail retrieves the signed-in user's email from request context
func GetUserEmail(ctx context.Context) string {
	if user := GetUser(ctx); user != nil && user.Email != "" {
		return user.Email
	}
	return "anonymous"
}
