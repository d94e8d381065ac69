package middleware

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/apex/log"

	"github.com/securefit/ecard/userctx"
)

// Form fields never written to the log
var redactedFields = map[string]bool{
	"password":         true,
	"new_password":     true,
	"current_password": true,
	"confirm_password": true,
	"signature_data":   true,
}

// maxLoggedValue caps individual form values so pasted card HTML or stroke
// payloads cannot flood the log
const maxLoggedValue = 200

// MutationLogger logs all POST/PUT/DELETE requests with their submitter,
// origin address and redacted form data
func MutationLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodPost || r.Method == http.MethodPut || r.Method == http.MethodDelete {
			log.WithFields(log.Fields{
				"user":   userctx.GetUserEmail(r.Context()),
				"method": r.Method,
				"path":   r.URL.Path,
				"ip":     getIPAddress(r),
				"form":   captureFormData(r),
			}).Info("mutation")
		}

		next.ServeHTTP(w, r)
	})
}

// getIPAddress extracts IP address from request, checking X-Forwarded-For first
func getIPAddress(r *http.Request) string {
	// Check X-Forwarded-For header (proxy/load balancer)
	forwarded := r.Header.Get("X-Forwarded-For")
	if forwarded != "" {
		// Take first IP if multiple
		ips := strings.Split(forwarded, ",")
		return strings.TrimSpace(ips[0])
	}

	// Check X-Real-IP header
	realIP := r.Header.Get("X-Real-IP")
	if realIP != "" {
		return realIP
	}

	// Fall back to RemoteAddr
	ip := r.RemoteAddr
	// Remove port if present
	if idx := strings.LastIndex(ip, ":"); idx != -1 {
		ip = ip[:idx]
	}
	return ip
}

// captureFormData captures redacted form data as a JSON string
func captureFormData(r *http.Request) string {
	if err := r.ParseForm(); err != nil {
		return ""
	}

	formMap := make(map[string]interface{})
	for key, values := range r.Form {
		if redactedFields[key] {
			formMap[key] = "[redacted]"
			continue
		}
		value := strings.Join(values, ",")
		if len(value) > maxLoggedValue {
			value = value[:maxLoggedValue] + "..."
		}
		formMap[key] = value
	}

	jsonData, err := json.Marshal(formMap)
	if err != nil {
		return ""
	}

	return string(jsonData)
}
