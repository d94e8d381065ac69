package models

import (
	"strings"
	"testing"
	"time"
)

func validForm() *FitTestForm {
	return &FitTestForm{
		RecipientEmail: "student@example.com",
		ClientName:     "Jane Roe",
		DOB:            "01/02/1999",
		IssueDate:      "03/10/2024",
		FitTestType:    FitTestTypeN95,
		RespiratorMfg:  KnownManufacturer("3M"),
		TestingAgent:   TestingAgentBitrex,
		MaskSize:       MaskSizeRegular,
		Model:          "8210",
		Result:         ResultPass,
		FitTester:      "Sam Tester",
		PrintedName:    "Jane Roe",
	}
}

func TestValidateAllFieldsPresent(t *testing.T) {
	v := validForm().Validate(true)
	if !v.IsValid {
		t.Errorf("Expected valid form, got error: %q, fields: %+v", v.Error, v.FieldErrors)
	}
	if v.Error != "" {
		t.Errorf("Expected empty headline message, got %q", v.Error)
	}
}

func TestValidateRequiredFields(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*FitTestForm)
		message string
	}{
		{"recipient email", func(f *FitTestForm) { f.RecipientEmail = "" }, "Please enter recipient email address."},
		{"client name", func(f *FitTestForm) { f.ClientName = "  " }, "Please enter client name."},
		{"fit tester", func(f *FitTestForm) { f.FitTester = "" }, "Please enter fit tester name."},
		{"issue date", func(f *FitTestForm) { f.IssueDate = "" }, "Please enter issue date."},
		{"fit test type", func(f *FitTestForm) { f.FitTestType = "" }, "Please select fit test type."},
		{"respirator mfg", func(f *FitTestForm) { f.RespiratorMfg = Manufacturer{} }, "Please select respirator manufacturer."},
		{"other mfg without text", func(f *FitTestForm) { f.RespiratorMfg = CustomManufacturer(" ") }, "Please select respirator manufacturer."},
		{"testing agent", func(f *FitTestForm) { f.TestingAgent = "" }, "Please select testing agent."},
		{"mask size", func(f *FitTestForm) { f.MaskSize = "" }, "Please select mask size."},
		{"result", func(f *FitTestForm) { f.Result = "" }, "Please select result."},
		{"printed name", func(f *FitTestForm) { f.PrintedName = "" }, "Please enter printed name."},
	}

	for _, tt := range tests {
		form := validForm()
		tt.mutate(form)
		v := form.Validate(true)
		if v.IsValid {
			t.Errorf("%s: expected invalid form", tt.name)
		}
		if v.Error != tt.message {
			t.Errorf("%s: expected headline %q, got %q", tt.name, tt.message, v.Error)
		}
	}
}

func TestValidateFirstErrorOrder(t *testing.T) {
	// With several fields missing, the headline message must come from the
	// first field in check order
	form := validForm()
	form.ClientName = ""
	form.MaskSize = ""
	form.PrintedName = ""

	v := form.Validate(true)
	if v.Error != "Please enter client name." {
		t.Errorf("Expected client name message first, got %q", v.Error)
	}
	if v.FieldErrors.MaskSize == "" || v.FieldErrors.PrintedName == "" {
		t.Error("Expected all failing fields to carry messages")
	}
}

func TestValidateEmailShapes(t *testing.T) {
	invalid := []string{"plain", "no-at.example.com", "missing@domain", "spaces in@mail.com"}
	for _, email := range invalid {
		form := validForm()
		form.RecipientEmail = email
		v := form.Validate(true)
		if v.FieldErrors.RecipientEmail != "Please enter a valid email address." {
			t.Errorf("%q: expected invalid email message, got %q", email, v.FieldErrors.RecipientEmail)
		}
	}

	valid := []string{"x@y.z", "first.last@sub.example.com", "a+tag@example.co"}
	for _, email := range valid {
		form := validForm()
		form.RecipientEmail = email
		if v := form.Validate(true); v.FieldErrors.RecipientEmail != "" {
			t.Errorf("%q: expected email check to pass, got %q", email, v.FieldErrors.RecipientEmail)
		}
	}
}

func TestValidateSignatureRule(t *testing.T) {
	// Without strokes the signature error is always present, even for an
	// otherwise valid draft
	v := validForm().Validate(false)
	if v.IsValid {
		t.Error("Expected invalid form without signature strokes")
	}
	if v.FieldErrors.Signature != "Please provide your signature." {
		t.Errorf("Expected signature message, got %q", v.FieldErrors.Signature)
	}
	if v.Error != "Please provide your signature." {
		t.Errorf("Expected signature headline for otherwise valid form, got %q", v.Error)
	}

	if v := validForm().Validate(true); v.FieldErrors.Signature != "" {
		t.Errorf("Expected no signature error with strokes, got %q", v.FieldErrors.Signature)
	}
}

func TestFormatDateInput(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"", ""},
		{"1", "1"},
		{"12", "12"},
		{"121", "12/1"},
		{"1215", "12/15"},
		{"12152", "12/15/2"},
		{"12152024", "12/15/2024"},
		{"121520249999", "12/15/2024"},
		{"12152024extra", "12/15/2024"},
		{"12/15/2024", "12/15/2024"},
		{"ab12cd15!2024", "12/15/2024"},
	}
	for _, tt := range tests {
		if got := FormatDateInput(tt.in); got != tt.want {
			t.Errorf("FormatDateInput(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestTodayDate(t *testing.T) {
	today := TodayDate()
	if len(today) != 10 || strings.Count(today, "/") != 2 {
		t.Errorf("Expected MM/DD/YYYY, got %q", today)
	}
	parsed, err := ParseIssueDate(today)
	if err != nil {
		t.Fatalf("Failed to parse today's date %q: %v", today, err)
	}
	now := time.Now()
	if parsed.Year() != now.Year() || parsed.Month() != now.Month() || parsed.Day() != now.Day() {
		t.Errorf("TodayDate %q does not round-trip to today", today)
	}
}

func TestParseIssueDateRejectsGarbage(t *testing.T) {
	for _, in := range []string{"", "2024-03-10", "13/40/2024", "not a date"} {
		if _, err := ParseIssueDate(in); err == nil {
			t.Errorf("Expected parse error for %q", in)
		}
	}
}

func TestManufacturerVariant(t *testing.T) {
	known := KnownManufacturer("Honeywell")
	if known.IsCustom() || known.Display() != "Honeywell" {
		t.Errorf("Unexpected known manufacturer: %+v", known)
	}

	custom := CustomManufacturer("Gerson")
	if !custom.IsCustom() || custom.Display() != "Gerson" {
		t.Errorf("Unexpected custom manufacturer: %+v", custom)
	}

	if !(Manufacturer{}).IsZero() {
		t.Error("Empty manufacturer should be zero")
	}
	if CustomManufacturer("").IsZero() == false {
		t.Error("Other with empty text should be zero")
	}
}

func TestRecordEnumChecks(t *testing.T) {
	rec := validForm().ToRecord("user-1")
	if err := rec.CheckEnums(); err != nil {
		t.Errorf("Expected enum check to pass: %v", err)
	}

	rec.FitTestType = "N42"
	if err := rec.CheckEnums(); err == nil {
		t.Error("Expected enum check to fail for unknown fit test type")
	}

	rec = validForm().ToRecord("user-1")
	rec.RespiratorMfg = KnownManufacturer("Acme")
	if err := rec.CheckEnums(); err == nil {
		t.Error("Expected enum check to fail for unknown manufacturer")
	}

	rec.RespiratorMfg = CustomManufacturer("Acme")
	if err := rec.CheckEnums(); err != nil {
		t.Errorf("Custom manufacturer should pass enum check: %v", err)
	}
}

func TestNewFitTestFormDefaults(t *testing.T) {
	form := NewFitTestForm("Sam Tester")
	if form.IssueDate != TodayDate() {
		t.Errorf("Expected issue date defaulted to today, got %q", form.IssueDate)
	}
	if form.FitTestType != FitTestTypeN95 || form.TestingAgent != TestingAgentBitrex {
		t.Errorf("Unexpected defaults: %+v", form)
	}
	if form.RespiratorMfg.Display() != "3M" || form.MaskSize != MaskSizeRegular || form.Result != ResultPass {
		t.Errorf("Unexpected defaults: %+v", form)
	}
	if form.FitTester != "Sam Tester" {
		t.Errorf("Expected fit tester pre-filled, got %q", form.FitTester)
	}
	if form.ClientName != "" || form.Model != "" || form.SignatureImage != "" {
		t.Errorf("Expected other fields cleared: %+v", form)
	}
}
