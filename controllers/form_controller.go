package controllers

import (
	"net/http"
	"net/url"

	"github.com/apex/log"

	"github.com/securefit/ecard/models"
	"github.com/securefit/ecard/services"
	"github.com/securefit/ecard/signature"
	"github.com/securefit/ecard/userctx"
)

// FormController handles the fit test form page and submissions
type FormController struct {
	services *services.Services
}

// NewFormController creates a new form controller
func NewFormController(services *services.Services) *FormController {
	return &FormController{
		services: services,
	}
}

// formView is the template data for the fit test form page
type formView struct {
	models.PageData
	Form        *models.FitTestForm
	FieldErrors models.FieldErrors
	// SignatureData is the posted capture payload echoed back on
	// re-renders so the signature surface is not cleared
	SignatureData string
	FitTestTypes  []string
	Manufacturers []string
	TestingAgents []string
	MaskSizes     []string
	Results       []string
}

func (c *FormController) view(r *http.Request, form *models.FitTestForm, fieldErrors models.FieldErrors, flash *models.FlashMessage) formView {
	page := pageData(r, "Fit Test E-card", "form")
	page.Flash = flash
	return formView{
		PageData:      page,
		Form:          form,
		FieldErrors:   fieldErrors,
		FitTestTypes:  models.FitTestTypes,
		Manufacturers: models.KnownManufacturers,
		TestingAgents: models.TestingAgents,
		MaskSizes:     models.MaskSizes,
		Results:       models.Results,
	}
}

// Show handles GET /: a fresh draft with defaults for the signed-in user
func (c *FormController) Show(w http.ResponseWriter, r *http.Request) {
	user := userctx.GetUser(r.Context())
	fitTester := ""
	if user != nil {
		fitTester = user.Name
	}

	data := c.view(r, models.NewFitTestForm(fitTester), models.FieldErrors{}, queryFlash(r))
	renderTemplate(w, "form", "templates/form.html", data)
}

// Submit handles POST /submit: runs the full pipeline and renders the
// terminal state. Success redirects to a fresh form; every other outcome
// re-renders the submitted draft so the user keeps their entered data.
func (c *FormController) Submit(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Failed to parse form: "+err.Error(), http.StatusBadRequest)
		return
	}

	draft := formFromRequest(r)
	capture := captureFromRequest(r)
	user := userctx.GetUser(r.Context())

	outcome, err := c.services.FitTest.Submit(r.Context(), user, draft, capture)
	if err != nil {
		log.WithError(err).Error("submit pipeline failed")
		http.Error(w, "Failed to submit: "+err.Error(), http.StatusInternalServerError)
		return
	}

	if outcome.Status.Type == "success" {
		http.Redirect(w, r, "/?success="+url.QueryEscape(outcome.Status.Message), http.StatusSeeOther)
		return
	}

	status := http.StatusOK
	if outcome.FieldErrors.HasErrors() {
		status = http.StatusBadRequest
	}
	data := c.view(r, outcome.Form, outcome.FieldErrors, &outcome.Status)
	// Keep the signature surface intact along with the draft: the posted
	// capture is echoed back and replayed by the canvas script
	data.SignatureData = r.FormValue("signature_data")
	renderTemplateWithStatus(w, status, "form", "templates/form.html", data)
}

// FormatDate handles POST /format-date: masks a date input fragment,
// used by the form script as digits are typed
func (c *FormController) FormatDate(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Failed to parse form: "+err.Error(), http.StatusBadRequest)
		return
	}
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Write([]byte(models.FormatDateInput(r.FormValue("value"))))
}

// formFromRequest builds a draft from the posted form values
func formFromRequest(r *http.Request) *models.FitTestForm {
	mfg := models.KnownManufacturer(r.FormValue("respirator_mfg"))
	if r.FormValue("respirator_mfg") == models.ManufacturerOther {
		mfg = models.CustomManufacturer(r.FormValue("respirator_mfg_custom"))
	}

	return &models.FitTestForm{
		RecipientEmail: r.FormValue("recipient_email"),
		ClientName:     r.FormValue("client_name"),
		DOB:            models.FormatDateInput(r.FormValue("dob")),
		IssueDate:      models.FormatDateInput(r.FormValue("issue_date")),
		FitTestType:    r.FormValue("fit_test_type"),
		RespiratorMfg:  mfg,
		TestingAgent:   r.FormValue("testing_agent"),
		MaskSize:       r.FormValue("mask_size"),
		Model:          r.FormValue("model"),
		Result:         r.FormValue("result"),
		FitTester:      r.FormValue("fit_tester"),
		PrintedName:    r.FormValue("printed_name"),
	}
}

// captureFromRequest decodes the posted signature event stream. A missing or
// malformed payload yields nil, which the validator reports as a missing
// signature.
func captureFromRequest(r *http.Request) *signature.Capture {
	data := r.FormValue("signature_data")
	if data == "" {
		return nil
	}
	capture, err := signature.DecodeCapture(data)
	if err != nil {
		log.WithError(err).Warn("discarding malformed signature payload")
		return nil
	}
	return capture
}
