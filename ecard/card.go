// Package ecard renders a fit test record into the self-contained HTML
// e-card document sent by email.
package ecard

import (
	"bytes"
	"fmt"
	"html/template"
	"net/url"

	"github.com/securefit/ecard/models"
)

// RescheduleURL is the fixed booking page the card's QR code points to
const RescheduleURL = "https://next-leap-fit.vercel.app/"

// qrAPIBase generates the QR image by reference; the binary is never inlined
const qrAPIBase = "https://api.qrserver.com/v1/create-qr-code/?size=150x150&data="

// Subject is the email subject line for dispatched cards
const Subject = "Fit Testing Results E-card"

// Result accent colors
const (
	colorPass    = "#28a745"
	colorFail    = "#dc3545"
	colorNeutral = "#333"
)

// cardData is the flattened, placeholder-filled view of a record
type cardData struct {
	ClientName    string
	DOB           string
	IssueDate     string
	FitTestType   string
	RespiratorMfg string
	TestingAgent  string
	MaskSize      string
	Model         string
	Result        string
	ResultColor   template.CSS
	FitTester     string
	QRCodeURL     string
}

// orPlaceholder substitutes the bracketed placeholder label for a missing
// optional field so the card keeps a uniform layout
func orPlaceholder(value, placeholder string) string {
	if value == "" {
		return "[" + placeholder + "]"
	}
	return value
}

// resultColor selects the accent for the result cell: recognized Pass and
// Fail values get success and failure colors, anything else stays neutral
func resultColor(result string) template.CSS {
	switch result {
	case models.ResultPass:
		return colorPass
	case models.ResultFail:
		return colorFail
	default:
		return colorNeutral
	}
}

// Render produces the HTML card for a record. Deterministic: identical input
// yields byte-identical output.
func Render(record *models.FitTestRecord) (string, error) {
	data := cardData{
		ClientName:    orPlaceholder(record.ClientName, "Client Name"),
		DOB:           orPlaceholder(record.DOB, "Date of Birth"),
		IssueDate:     orPlaceholder(record.IssueDate, "Date"),
		FitTestType:   orPlaceholder(record.FitTestType, "Type"),
		RespiratorMfg: orPlaceholder(record.RespiratorMfg.Display(), "Manufacturer"),
		TestingAgent:  orPlaceholder(record.TestingAgent, "Agent"),
		MaskSize:      orPlaceholder(record.MaskSize, "Size"),
		Model:         orPlaceholder(record.Model, "Model"),
		Result:        orPlaceholder(record.Result, "Result"),
		ResultColor:   resultColor(record.Result),
		FitTester:     orPlaceholder(record.FitTester, "Tester Name"),
		QRCodeURL:     qrAPIBase + url.QueryEscape(RescheduleURL),
	}

	var buf bytes.Buffer
	if err := cardTemplate.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to render e-card: %w", err)
	}
	return buf.String(), nil
}
