package authenticator

// Error codes in the identity provider's fixed vocabulary
const (
	CodeEmailInUse          = "email-already-in-use"
	CodeInvalidEmail        = "invalid-email"
	CodeOperationNotAllowed = "operation-not-allowed"
	CodeWeakPassword        = "weak-password"
	CodeUserDisabled        = "user-disabled"
	CodeUserNotFound        = "user-not-found"
	CodeWrongPassword       = "wrong-password"
	CodeInvalidCredential   = "invalid-credential"
	CodeTooManyRequests     = "too-many-requests"
	CodeRequiresRecentLogin = "requires-recent-login"
	CodePopupClosed         = "popup-closed-by-user"
	CodePopupCancelled      = "cancelled-popup-request"
	CodePopupBlocked        = "popup-blocked"
)

var authMessages = map[string]string{
	CodeEmailInUse:          "This email is already registered. Please use a different email or try logging in.",
	CodeInvalidEmail:        "Please enter a valid email address.",
	CodeOperationNotAllowed: "Email/password accounts are not enabled. Please contact support.",
	CodeWeakPassword:        "Password is too weak. Please use at least 6 characters.",
	CodeUserDisabled:        "This account has been disabled. Please contact support.",
	CodeUserNotFound:        "No account found with this email. Please sign up first.",
	CodeWrongPassword:       "Incorrect password. Please try again.",
	CodeInvalidCredential:   "Invalid email or password. Please try again.",
	CodeTooManyRequests:     "Too many failed attempts. Please try again later.",
	CodeRequiresRecentLogin: "Please log out and log back in to change your email or password.",
	CodePopupClosed:         "Sign-in popup was closed. Please try again.",
	CodePopupCancelled:      "Only one popup request is allowed at a time.",
	CodePopupBlocked:        "Popup was blocked by your browser. Please allow popups and try again.",
}

// genericAuthMessage covers codes outside the fixed vocabulary
const genericAuthMessage = "An error occurred. Please try again."

// AuthError is an identity-service failure classified by provider code.
// Error() yields the user-facing message, never the raw code.
type AuthError struct {
	Code string
}

func (e *AuthError) Error() string {
	if msg, ok := authMessages[e.Code]; ok {
		return msg
	}
	return genericAuthMessage
}

// NewAuthError wraps a provider error code
func NewAuthError(code string) *AuthError {
	return &AuthError{Code: code}
}
