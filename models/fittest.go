package models

import (
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

// Fit test type options offered by the form
const (
	FitTestTypeN95      = "N95"
	FitTestTypeN99      = "N99"
	FitTestTypeN100     = "N100"
	FitTestTypeP100     = "P100"
	FitTestTypeHalfFace = "Half Face"
	FitTestTypeFullFace = "Full Face"
)

// Testing agent options
const (
	TestingAgentBitrex         = "Bitrex"
	TestingAgentSaccharin      = "Saccharin"
	TestingAgentIsoamylAcetate = "Isoamyl Acetate"
)

// Mask size options
const (
	MaskSizeSmall   = "Small"
	MaskSizeRegular = "Regular"
	MaskSizeLarge   = "Large"
)

// Result options
const (
	ResultPass = "Pass"
	ResultFail = "Fail"
)

// ManufacturerOther is the escape-hatch choice that enables free-text entry
const ManufacturerOther = "Other"

// KnownManufacturers lists the selectable respirator manufacturers
var KnownManufacturers = []string{"3M", "Honeywell", "Moldex", "Kimberly-Clark", ManufacturerOther}

// FitTestTypes lists the selectable fit test types
var FitTestTypes = []string{
	FitTestTypeN95, FitTestTypeN99, FitTestTypeN100,
	FitTestTypeP100, FitTestTypeHalfFace, FitTestTypeFullFace,
}

// TestingAgents lists the selectable testing agents
var TestingAgents = []string{TestingAgentBitrex, TestingAgentSaccharin, TestingAgentIsoamylAcetate}

// MaskSizes lists the selectable mask sizes
var MaskSizes = []string{MaskSizeSmall, MaskSizeRegular, MaskSizeLarge}

// Results lists the selectable results
var Results = []string{ResultPass, ResultFail}

// Manufacturer is either a known manufacturer name or a custom free-text
// entry when "Other" is selected. The two cases are kept separate instead of
// overloading a single string field.
type Manufacturer struct {
	Name   string `json:"name"`
	Custom string `json:"custom,omitempty"`
}

// KnownManufacturer builds a Manufacturer from one of the known names
func KnownManufacturer(name string) Manufacturer {
	return Manufacturer{Name: name}
}

// CustomManufacturer builds an "Other" Manufacturer with free text
func CustomManufacturer(text string) Manufacturer {
	return Manufacturer{Name: ManufacturerOther, Custom: text}
}

// IsCustom reports whether the "Other" escape hatch is in use
func (m Manufacturer) IsCustom() bool {
	return m.Name == ManufacturerOther
}

// IsZero reports whether no manufacturer has been chosen at all
func (m Manufacturer) IsZero() bool {
	if m.IsCustom() {
		return strings.TrimSpace(m.Custom) == ""
	}
	return strings.TrimSpace(m.Name) == ""
}

// Display returns the manufacturer as shown on the card
func (m Manufacturer) Display() string {
	if m.IsCustom() {
		return m.Custom
	}
	return m.Name
}

// FitTestRecord represents a persisted fit test result owned by one user
type FitTestRecord struct {
	ID             string       `json:"id" db:"id"`
	UserID         string       `json:"user_id" db:"user_id"`
	RecipientEmail string       `json:"recipient_email" db:"recipient_email"`
	ClientName     string       `json:"client_name" db:"client_name"`
	DOB            string       `json:"dob" db:"dob"`
	IssueDate      string       `json:"issue_date" db:"issue_date"`
	FitTestType    string       `json:"fit_test_type" db:"fit_test_type" validate:"omitempty,oneof=N95 N99 N100 P100 'Half Face' 'Full Face'"`
	RespiratorMfg  Manufacturer `json:"respirator_mfg"`
	TestingAgent   string       `json:"testing_agent" db:"testing_agent" validate:"omitempty,oneof=Bitrex Saccharin 'Isoamyl Acetate'"`
	MaskSize       string       `json:"mask_size" db:"mask_size" validate:"omitempty,oneof=Small Regular Large"`
	Model          string       `json:"model" db:"model"`
	Result         string       `json:"result" db:"result" validate:"omitempty,oneof=Pass Fail"`
	FitTester      string       `json:"fit_tester" db:"fit_tester"`
	PrintedName    string       `json:"printed_name" db:"printed_name"`
	SignatureImage string       `json:"signature_image,omitempty" db:"signature_image"`
	CreatedAt      time.Time    `json:"created_at" db:"created_at"`
	UpdatedAt      time.Time    `json:"updated_at" db:"updated_at"`
}

var recordValidate = validator.New()

// CheckEnums verifies that every enum-backed field carries one of its declared
// values. The manufacturer is checked separately because of the free-text
// escape hatch.
func (r *FitTestRecord) CheckEnums() error {
	if err := recordValidate.Struct(r); err != nil {
		return err
	}
	if r.RespiratorMfg.Name == "" || r.RespiratorMfg.IsCustom() {
		return nil
	}
	for _, name := range KnownManufacturers {
		if r.RespiratorMfg.Name == name {
			return nil
		}
	}
	return fmt.Errorf("unknown respirator manufacturer: %s", r.RespiratorMfg.Name)
}

// FitTestForm is the in-memory draft for one fit test submission. It is never
// persisted as-is; a FitTestRecord supersedes it on successful submit.
type FitTestForm struct {
	RecipientEmail string       `json:"recipient_email"`
	ClientName     string       `json:"client_name"`
	DOB            string       `json:"dob"`
	IssueDate      string       `json:"issue_date"`
	FitTestType    string       `json:"fit_test_type"`
	RespiratorMfg  Manufacturer `json:"respirator_mfg"`
	TestingAgent   string       `json:"testing_agent"`
	MaskSize       string       `json:"mask_size"`
	Model          string       `json:"model"`
	Result         string       `json:"result"`
	FitTester      string       `json:"fit_tester"`
	PrintedName    string       `json:"printed_name"`
	SignatureImage string       `json:"signature_image,omitempty"`
}

// NewFitTestForm returns a draft with the default selections, today's issue
// date, and the signed-in user's name pre-filled as fit tester.
func NewFitTestForm(fitTester string) *FitTestForm {
	return &FitTestForm{
		IssueDate:     TodayDate(),
		FitTestType:   FitTestTypeN95,
		RespiratorMfg: KnownManufacturer("3M"),
		TestingAgent:  TestingAgentBitrex,
		MaskSize:      MaskSizeRegular,
		Result:        ResultPass,
		FitTester:     fitTester,
	}
}

// ToRecord copies the draft fields onto a record owned by the given user
func (f *FitTestForm) ToRecord(userID string) *FitTestRecord {
	return &FitTestRecord{
		UserID:         userID,
		RecipientEmail: strings.TrimSpace(f.RecipientEmail),
		ClientName:     strings.TrimSpace(f.ClientName),
		DOB:            strings.TrimSpace(f.DOB),
		IssueDate:      strings.TrimSpace(f.IssueDate),
		FitTestType:    f.FitTestType,
		RespiratorMfg:  f.RespiratorMfg,
		TestingAgent:   f.TestingAgent,
		MaskSize:       f.MaskSize,
		Model:          strings.TrimSpace(f.Model),
		Result:         f.Result,
		FitTester:      strings.TrimSpace(f.FitTester),
		PrintedName:    strings.TrimSpace(f.PrintedName),
		SignatureImage: f.SignatureImage,
	}
}

// FormFromRecord rebuilds an editable draft from a stored record
func FormFromRecord(r *FitTestRecord) *FitTestForm {
	return &FitTestForm{
		RecipientEmail: r.RecipientEmail,
		ClientName:     r.ClientName,
		DOB:            r.DOB,
		IssueDate:      r.IssueDate,
		FitTestType:    r.FitTestType,
		RespiratorMfg:  r.RespiratorMfg,
		TestingAgent:   r.TestingAgent,
		MaskSize:       r.MaskSize,
		Model:          r.Model,
		Result:         r.Result,
		FitTester:      r.FitTester,
		PrintedName:    r.PrintedName,
		SignatureImage: r.SignatureImage,
	}
}
