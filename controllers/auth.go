package controllers

import (
	"crypto/rand"
	"encoding/base64"
	"net/http"
	"net/url"

	"gitea.com/go-chi/session"
	"github.com/apex/log"

	"github.com/securefit/ecard/authenticator"
	"github.com/securefit/ecard/models"
	"github.com/securefit/ecard/userctx"
)

// AuthController handles sign-in, sign-up, federated callback and account
// management
type AuthController struct {
	provider authenticator.Provider
	accounts authenticator.AccountProvider
}

// NewAuthController creates a new auth controller
func NewAuthController(provider authenticator.Provider, accounts authenticator.AccountProvider) *AuthController {
	return &AuthController{
		provider: provider,
		accounts: accounts,
	}
}

// authView is the template data for the login and signup pages
type authView struct {
	models.PageData
	Email string
	Name  string
}

// ShowLogin handles GET /login
func (ac *AuthController) ShowLogin(w http.ResponseWriter, r *http.Request) {
	page := pageData(r, "Sign In", "login")
	page.Flash = queryFlash(r)
	renderTemplate(w, "login", "templates/login.html", authView{PageData: page})
}

// SignIn handles POST /login: password sign-in
func (ac *AuthController) SignIn(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Failed to parse form: "+err.Error(), http.StatusBadRequest)
		return
	}
	email := r.FormValue("email")

	identity, err := ac.accounts.SignIn(r.Context(), email, r.FormValue("password"))
	if err != nil {
		page := pageData(r, "Sign In", "login")
		page.Flash = &models.FlashMessage{Type: "error", Message: err.Error()}
		renderTemplateWithStatus(w, http.StatusUnauthorized, "login", "templates/login.html", authView{PageData: page, Email: email})
		return
	}

	ac.establishSession(w, r, identity)
}

// ShowSignup handles GET /signup
func (ac *AuthController) ShowSignup(w http.ResponseWriter, r *http.Request) {
	page := pageData(r, "Sign Up", "signup")
	renderTemplate(w, "signup", "templates/signup.html", authView{PageData: page})
}

// SignUp handles POST /signup: password account creation
func (ac *AuthController) SignUp(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Failed to parse form: "+err.Error(), http.StatusBadRequest)
		return
	}
	email := r.FormValue("email")
	name := r.FormValue("name")

	identity, err := ac.accounts.SignUp(r.Context(), email, r.FormValue("password"), name)
	if err != nil {
		page := pageData(r, "Sign Up", "signup")
		page.Flash = &models.FlashMessage{Type: "error", Message: err.Error()}
		renderTemplateWithStatus(w, http.StatusBadRequest, "signup", "templates/signup.html", authView{PageData: page, Email: email, Name: name})
		return
	}

	ac.establishSession(w, r, identity)
}

// FederatedLogin handles GET /auth/federated: starts the redirect flow
func (ac *AuthController) FederatedLogin(w http.ResponseWriter, r *http.Request) {
	// Generate random state
	state, err := generateRandomState()
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	// Save the state in the session to validate in callback
	sess := session.GetSession(r)
	sess.Set("state", state)

	http.Redirect(w, r, ac.provider.GetAuthURL(state), http.StatusTemporaryRedirect)
}

// Callback handles GET /auth/callback from the federated provider
func (ac *AuthController) Callback(w http.ResponseWriter, r *http.Request) {
	sess := session.GetSession(r)

	// Verify state
	storedState := sess.Get("state")
	if storedState == nil {
		http.Error(w, "State not found in session", http.StatusBadRequest)
		return
	}
	if r.URL.Query().Get("state") != storedState.(string) {
		http.Error(w, "Invalid state parameter", http.StatusBadRequest)
		return
	}

	// Exchange the code for a token
	token, err := ac.provider.ExchangeCode(r.Context(), r.URL.Query().Get("code"))
	if err != nil {
		http.Error(w, "Failed to exchange authorization code for a token: "+err.Error(), http.StatusUnauthorized)
		return
	}

	identity, err := ac.provider.GetIdentity(r.Context(), token)
	if err != nil {
		http.Error(w, "Failed to verify ID Token: "+err.Error(), http.StatusInternalServerError)
		return
	}

	sess.Delete("state")
	ac.establishSession(w, r, identity)
}

// Logout handles POST /logout
func (ac *AuthController) Logout(w http.ResponseWriter, r *http.Request) {
	sess := session.GetSession(r)
	sess.Delete("user_id")
	sess.Delete("user_name")
	sess.Delete("user_email")
	http.Redirect(w, r, "/login", http.StatusSeeOther)
}

// accountView is the template data for the account page
type accountView struct {
	models.PageData
	Name  string
	Email string
}

// ShowAccount handles GET /account
func (ac *AuthController) ShowAccount(w http.ResponseWriter, r *http.Request) {
	user := userctx.GetUser(r.Context())
	page := pageData(r, "Account", "account")
	page.Flash = queryFlash(r)
	renderTemplate(w, "account", "templates/account.html", accountView{
		PageData: page,
		Name:     user.Name,
		Email:    user.Email,
	})
}

// UpdateProfile handles POST /account/profile
func (ac *AuthController) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Failed to parse form: "+err.Error(), http.StatusBadRequest)
		return
	}
	user := userctx.GetUser(r.Context())

	identity, err := ac.accounts.UpdateProfile(r.Context(), user.ID, r.FormValue("name"), r.FormValue("email"))
	if err != nil {
		http.Redirect(w, r, "/account?error="+url.QueryEscape(err.Error()), http.StatusSeeOther)
		return
	}

	// Refresh the session copy of the identity
	sess := session.GetSession(r)
	sess.Set("user_name", identity.Name)
	sess.Set("user_email", identity.Email)

	http.Redirect(w, r, "/account?success="+url.QueryEscape("Profile updated successfully."), http.StatusSeeOther)
}

// ChangePassword handles POST /account/password
func (ac *AuthController) ChangePassword(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Failed to parse form: "+err.Error(), http.StatusBadRequest)
		return
	}
	user := userctx.GetUser(r.Context())

	err := ac.accounts.ChangePassword(r.Context(), user.Email, r.FormValue("current_password"), r.FormValue("new_password"))
	if err != nil {
		http.Redirect(w, r, "/account?error="+url.QueryEscape(err.Error()), http.StatusSeeOther)
		return
	}

	http.Redirect(w, r, "/account?success="+url.QueryEscape("Password changed successfully."), http.StatusSeeOther)
}

// establishSession stores the identity in the session and follows any
// stored post-login destination
func (ac *AuthController) establishSession(w http.ResponseWriter, r *http.Request, identity *authenticator.Identity) {
	sess := session.GetSession(r)
	sess.Set("user_id", identity.ID)
	sess.Set("user_name", identity.Name)
	sess.Set("user_email", identity.Email)

	redirect := "/"
	if dest, ok := sess.Get("redirect_after_login").(string); ok && dest != "" {
		redirect = dest
		sess.Delete("redirect_after_login")
	}

	log.WithField("user", identity.Email).Info("signed in")
	http.Redirect(w, r, redirect, http.StatusSeeOther)
}

// generateRandomState generates a random state value for CSRF protection
func generateRandomState() (string, error) {
	b := make([]byte, 32)
	_, err := rand.Read(b)
	if err != nil {
		return "", err
	}
	return base64.StdEncoding.EncodeToString(b), nil
}
