package models

import (
	"fmt"
	"strings"
	"time"
)

// issueDateLayout is the MM/DD/YYYY format used throughout the form
const issueDateLayout = "01/02/2006"

// FlashMessage represents a status message for user feedback
type FlashMessage struct {
	Type    string `json:"type"` // "success", "error", "warning", "info"
	Message string `json:"message"`
}

// User is the signed-in identity passed explicitly to controllers and views
type User struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// PageData represents common data passed to templates
type PageData struct {
	Title       string        `json:"title"`
	CurrentPage string        `json:"current_page"`
	Theme       string        `json:"theme"`
	User        *User         `json:"user,omitempty"`
	Flash       *FlashMessage `json:"flash,omitempty"`
	Data        interface{}   `json:"data,omitempty"`
}

// TodayDate returns today's date as MM/DD/YYYY
func TodayDate() string {
	return time.Now().Format(issueDateLayout)
}

// FormatDateInput masks free-text date input into MM/DD/YYYY as digits are
// typed. Non-digit characters are stripped, anything beyond 8 digits is
// truncated, and slashes are inserted at the MM and DD boundaries.
func FormatDateInput(value string) string {
	var digits strings.Builder
	for _, r := range value {
		if r >= '0' && r <= '9' {
			digits.WriteRune(r)
			if digits.Len() == 8 {
				break
			}
		}
	}

	d := digits.String()
	switch {
	case len(d) == 0:
		return ""
	case len(d) <= 2:
		return d
	case len(d) <= 4:
		return d[:2] + "/" + d[2:]
	default:
		return d[:2] + "/" + d[2:4] + "/" + d[4:]
	}
}

// ParseIssueDate parses an MM/DD/YYYY string into a calendar date
func ParseIssueDate(dateStr string) (time.Time, error) {
	t, err := time.Parse(issueDateLayout, dateStr)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid issue date %q: %w", dateStr, err)
	}
	return t, nil
}

// FormatTimestamp formats a stored timestamp for the results view
func FormatTimestamp(t time.Time) string {
	return t.Format("Jan 2, 2006")
}
