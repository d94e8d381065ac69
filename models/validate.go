package models

import (
	"regexp"
	"strings"
)

// emailPattern matches the x@y.z shape: no whitespace or extra @ around the
// separator, and at least one dot in the domain part
var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// ValidEmail reports whether the address has a plausible x@y.z shape
func ValidEmail(email string) bool {
	return emailPattern.MatchString(email)
}

// FieldErrors holds at most one message per form field. A fixed struct is used
// instead of a string-keyed map so the set of fields that can error is closed.
type FieldErrors struct {
	RecipientEmail string `json:"recipient_email,omitempty"`
	ClientName     string `json:"client_name,omitempty"`
	FitTester      string `json:"fit_tester,omitempty"`
	IssueDate      string `json:"issue_date,omitempty"`
	FitTestType    string `json:"fit_test_type,omitempty"`
	RespiratorMfg  string `json:"respirator_mfg,omitempty"`
	TestingAgent   string `json:"testing_agent,omitempty"`
	MaskSize       string `json:"mask_size,omitempty"`
	Result         string `json:"result,omitempty"`
	PrintedName    string `json:"printed_name,omitempty"`
	Signature      string `json:"signature,omitempty"`
}

// ordered returns the messages in the fixed check order
func (fe *FieldErrors) ordered() []string {
	return []string{
		fe.RecipientEmail,
		fe.ClientName,
		fe.FitTester,
		fe.IssueDate,
		fe.FitTestType,
		fe.RespiratorMfg,
		fe.TestingAgent,
		fe.MaskSize,
		fe.Result,
		fe.PrintedName,
		fe.Signature,
	}
}

// HasErrors reports whether any field carries a message
func (fe *FieldErrors) HasErrors() bool {
	for _, msg := range fe.ordered() {
		if msg != "" {
			return true
		}
	}
	return false
}

// First returns the first message in the fixed check order, or ""
func (fe *FieldErrors) First() string {
	for _, msg := range fe.ordered() {
		if msg != "" {
			return msg
		}
	}
	return ""
}

// Validation is the outcome of validating a draft
type Validation struct {
	IsValid     bool
	Error       string
	FieldErrors FieldErrors
}

// Validate checks the draft for submission. hasStrokes is the signature
// surface's opaque "has content" flag; the validator never inspects pixels.
// Pure function of its inputs, no side effects.
func (f *FitTestForm) Validate(hasStrokes bool) Validation {
	var fe FieldErrors

	if strings.TrimSpace(f.RecipientEmail) == "" {
		fe.RecipientEmail = "Please enter recipient email address."
	} else if !ValidEmail(f.RecipientEmail) {
		fe.RecipientEmail = "Please enter a valid email address."
	}

	if strings.TrimSpace(f.ClientName) == "" {
		fe.ClientName = "Please enter client name."
	}

	if strings.TrimSpace(f.FitTester) == "" {
		fe.FitTester = "Please enter fit tester name."
	}

	if strings.TrimSpace(f.IssueDate) == "" {
		fe.IssueDate = "Please enter issue date."
	}

	if strings.TrimSpace(f.FitTestType) == "" {
		fe.FitTestType = "Please select fit test type."
	}

	if f.RespiratorMfg.IsZero() {
		fe.RespiratorMfg = "Please select respirator manufacturer."
	}

	if strings.TrimSpace(f.TestingAgent) == "" {
		fe.TestingAgent = "Please select testing agent."
	}

	if strings.TrimSpace(f.MaskSize) == "" {
		fe.MaskSize = "Please select mask size."
	}

	if strings.TrimSpace(f.Result) == "" {
		fe.Result = "Please select result."
	}

	if strings.TrimSpace(f.PrintedName) == "" {
		fe.PrintedName = "Please enter printed name."
	}

	if !hasStrokes {
		fe.Signature = "Please provide your signature."
	}

	return Validation{
		IsValid:     !fe.HasErrors(),
		Error:       fe.First(),
		FieldErrors: fe,
	}
}
