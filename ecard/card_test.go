package ecard

import (
	"strings"
	"testing"

	"github.com/securefit/ecard/models"
)

func sampleRecord() *models.FitTestRecord {
	return &models.FitTestRecord{
		UserID:         "user-1",
		RecipientEmail: "student@example.com",
		ClientName:     "Jane Roe",
		DOB:            "01/02/1999",
		IssueDate:      "03/10/2024",
		FitTestType:    models.FitTestTypeN95,
		RespiratorMfg:  models.KnownManufacturer("3M"),
		TestingAgent:   models.TestingAgentBitrex,
		MaskSize:       models.MaskSizeRegular,
		Model:          "8210",
		Result:         models.ResultPass,
		FitTester:      "Sam Tester",
	}
}

func TestRenderDeterministic(t *testing.T) {
	first, err := Render(sampleRecord())
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	second, err := Render(sampleRecord())
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	if first != second {
		t.Error("Identical input must produce byte-identical output")
	}
}

func TestRenderIncludesFields(t *testing.T) {
	html, err := Render(sampleRecord())
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}

	for _, want := range []string{"Jane Roe", "03/10/2024", "N95", "3M", "Bitrex", "Regular", "8210", "Sam Tester", "Secure Fit LLC"} {
		if !strings.Contains(html, want) {
			t.Errorf("Rendered card missing %q", want)
		}
	}
}

func TestRenderPlaceholdersForMissingOptionals(t *testing.T) {
	record := sampleRecord()
	record.Model = ""
	record.DOB = ""

	html, err := Render(record)
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}

	if !strings.Contains(html, "[Model]") {
		t.Error("Missing model must render the bracketed placeholder, not an empty cell")
	}
	if !strings.Contains(html, "[Date of Birth]") {
		t.Error("Missing DOB must render the bracketed placeholder")
	}
}

func TestRenderResultColors(t *testing.T) {
	record := sampleRecord()

	record.Result = models.ResultPass
	html, _ := Render(record)
	if !strings.Contains(html, colorPass) {
		t.Error("Pass result should use the success color")
	}

	record.Result = models.ResultFail
	html, _ = Render(record)
	if !strings.Contains(html, colorFail) {
		t.Error("Fail result should use the failure color")
	}

	record.Result = ""
	html, _ = Render(record)
	if !strings.Contains(html, "[Result]") {
		t.Error("Empty result should render the placeholder")
	}
	if strings.Contains(html, colorPass) || strings.Contains(html, colorFail) {
		t.Error("Unrecognized result should keep the neutral color")
	}
}

func TestRenderCustomManufacturer(t *testing.T) {
	record := sampleRecord()
	record.RespiratorMfg = models.CustomManufacturer("Gerson")

	html, err := Render(record)
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	if !strings.Contains(html, "Gerson") {
		t.Error("Custom manufacturer text should appear on the card")
	}
}

func TestRenderQRReference(t *testing.T) {
	html, err := Render(sampleRecord())
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	if !strings.Contains(html, "api.qrserver.com") {
		t.Error("QR code must be embedded by reference")
	}
	if !strings.Contains(html, "next-leap-fit.vercel.app") {
		t.Error("QR code must point at the reschedule URL")
	}
}
