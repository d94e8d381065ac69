package middleware

import (
	"net/http"

	"gitea.com/go-chi/session"

	"github.com/securefit/ecard/models"
	"github.com/securefit/ecard/userctx"
)

// sessionUser builds a user from session values, nil when not signed in
func sessionUser(sess session.Store) *models.User {
	id, ok := sess.Get("user_id").(string)
	if !ok || id == "" {
		return nil
	}
	user := &models.User{ID: id}
	if name, ok := sess.Get("user_name").(string); ok {
		user.Name = name
	}
	if email, ok := sess.Get("user_email").(string); ok {
		user.Email = email
	}
	return user
}

// LoadUser populates request context with the signed-in user when a session
// exists; anonymous requests pass through untouched
func LoadUser(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sess := session.GetSession(r)
		if user := sessionUser(sess); user != nil {
			r = r.WithContext(userctx.SetUser(r.Context(), user))
		}
		next.ServeHTTP(w, r)
	})
}

// RequireAuth ensures the user is authenticated
// If not authenticated, redirects to /login and stores the intended destination
func RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sess := session.GetSession(r)
		user := sessionUser(sess)

		if user == nil {
			// Store the intended destination for redirect after login
			sess.Set("redirect_after_login", r.URL.Path)
			http.Redirect(w, r, "/login", http.StatusSeeOther)
			return
		}

		next.ServeHTTP(w, r.WithContext(userctx.SetUser(r.Context(), user)))
	})
}
