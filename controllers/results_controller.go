package controllers

import (
	"errors"
	"net/http"
	"net/url"

	"github.com/apex/log"
	"github.com/go-chi/chi/v5"

	"github.com/securefit/ecard/models"
	"github.com/securefit/ecard/repositories"
	"github.com/securefit/ecard/services"
	"github.com/securefit/ecard/userctx"
)

// ResultsController handles the stored fit test results pages
type ResultsController struct {
	services *services.Services
}

// NewResultsController creates a new results controller
func NewResultsController(services *services.Services) *ResultsController {
	return &ResultsController{
		services: services,
	}
}

// resultsView is the template data for the month-grouped results page
type resultsView struct {
	models.PageData
	Buckets []services.MonthBucket
	Total   int
	// IndexMissing switches the page to the remediation state with a
	// retry action instead of the listing
	IndexMissing bool
}

// Index handles GET /results
func (c *ResultsController) Index(w http.ResponseWriter, r *http.Request) {
	userID := userctx.GetUserID(r.Context())

	page := pageData(r, "Fit Test Results", "results")
	page.Flash = queryFlash(r)

	buckets, err := c.services.FitTest.ListGrouped(r.Context(), userID)
	if err != nil {
		if errors.Is(err, repositories.ErrIndexRequired) {
			// One-time remediation state: the page offers a retry link
			// instead of failing the request
			log.WithError(err).Warn("results listing needs the lookup index")
			data := resultsView{PageData: page, IndexMissing: true}
			renderTemplate(w, "results", "templates/results.html", data)
			return
		}
		http.Error(w, "Failed to load results: "+err.Error(), http.StatusInternalServerError)
		return
	}

	// The stored total, not the bucket sum: dateless records join no
	// bucket but still count
	total, err := c.services.FitTest.Count(r.Context(), userID)
	if err != nil {
		http.Error(w, "Failed to count results: "+err.Error(), http.StatusInternalServerError)
		return
	}

	data := resultsView{PageData: page, Buckets: buckets, Total: total}
	renderTemplate(w, "results", "templates/results.html", data)
}

// editView is the template data for the edit page
type editView struct {
	models.PageData
	RecordID      string
	Form          *models.FitTestForm
	FieldErrors   models.FieldErrors
	FitTestTypes  []string
	Manufacturers []string
	TestingAgents []string
	MaskSizes     []string
	Results       []string
}

func (c *ResultsController) editData(r *http.Request, id string, form *models.FitTestForm, fieldErrors models.FieldErrors, flash *models.FlashMessage) editView {
	page := pageData(r, "Edit Fit Test Record", "results")
	page.Flash = flash
	return editView{
		PageData:      page,
		RecordID:      id,
		Form:          form,
		FieldErrors:   fieldErrors,
		FitTestTypes:  models.FitTestTypes,
		Manufacturers: models.KnownManufacturers,
		TestingAgents: models.TestingAgents,
		MaskSizes:     models.MaskSizes,
		Results:       models.Results,
	}
}

// ShowEdit handles GET /results/{id}/edit
func (c *ResultsController) ShowEdit(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	userID := userctx.GetUserID(r.Context())

	record, err := c.services.FitTest.Get(r.Context(), userID, id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			http.Error(w, "Record not found", http.StatusNotFound)
			return
		}
		http.Error(w, "Failed to load record: "+err.Error(), http.StatusInternalServerError)
		return
	}

	data := c.editData(r, id, models.FormFromRecord(record), models.FieldErrors{}, nil)
	renderTemplate(w, "results_edit", "templates/results_edit.html", data)
}

// UpdateRecord handles POST /results/{id}/edit
func (c *ResultsController) UpdateRecord(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	userID := userctx.GetUserID(r.Context())

	if err := r.ParseForm(); err != nil {
		http.Error(w, "Failed to parse form: "+err.Error(), http.StatusBadRequest)
		return
	}

	form := formFromRequest(r)

	// Edits keep the stored signature; only the submit flow captures one
	validation := form.Validate(true)
	if !validation.IsValid {
		flash := &models.FlashMessage{Type: "error", Message: validation.Error}
		data := c.editData(r, id, form, validation.FieldErrors, flash)
		renderTemplateWithStatus(w, http.StatusBadRequest, "results_edit", "templates/results_edit.html", data)
		return
	}

	if _, err := c.services.FitTest.Update(r.Context(), userID, id, form); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			http.Error(w, "Record not found", http.StatusNotFound)
			return
		}
		flash := &models.FlashMessage{Type: "error", Message: "Failed to update record. Please try again."}
		data := c.editData(r, id, form, models.FieldErrors{}, flash)
		renderTemplateWithStatus(w, http.StatusInternalServerError, "results_edit", "templates/results_edit.html", data)
		return
	}

	http.Redirect(w, r, "/results?success="+url.QueryEscape("Record updated successfully."), http.StatusSeeOther)
}

// Resend handles POST /results/{id}/resend
func (c *ResultsController) Resend(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	userID := userctx.GetUserID(r.Context())

	err := c.services.FitTest.Resend(r.Context(), userID, id)
	switch {
	case err == nil:
		http.Redirect(w, r, "/results?success="+url.QueryEscape(services.MsgResent), http.StatusSeeOther)
	case errors.Is(err, services.ErrNoRecipient):
		http.Redirect(w, r, "/results?error="+url.QueryEscape(services.ErrNoRecipient.Error()), http.StatusSeeOther)
	case errors.Is(err, repositories.ErrNotFound):
		http.Error(w, "Record not found", http.StatusNotFound)
	default:
		log.WithError(err).WithField("record", id).Error("resend failed")
		http.Redirect(w, r, "/results?error="+url.QueryEscape("Failed to resend e-card. Please try again later."), http.StatusSeeOther)
	}
}

// confirmView is the template data for the delete confirmation page
type confirmView struct {
	models.PageData
	Record *models.FitTestRecord
}

// ConfirmDelete handles GET /results/{id}/delete
func (c *ResultsController) ConfirmDelete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	userID := userctx.GetUserID(r.Context())

	record, err := c.services.FitTest.Get(r.Context(), userID, id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			http.Error(w, "Record not found", http.StatusNotFound)
			return
		}
		http.Error(w, "Failed to load record: "+err.Error(), http.StatusInternalServerError)
		return
	}

	data := confirmView{PageData: pageData(r, "Delete Fit Test Record", "results"), Record: record}
	renderTemplate(w, "results_delete", "templates/results_delete.html", data)
}

// Delete handles POST /results/{id}/delete
func (c *ResultsController) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	userID := userctx.GetUserID(r.Context())

	if err := c.services.FitTest.Delete(r.Context(), userID, id); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			http.Error(w, "Record not found", http.StatusNotFound)
			return
		}
		http.Redirect(w, r, "/results?error="+url.QueryEscape("Failed to delete record. Please try again."), http.StatusSeeOther)
		return
	}

	http.Redirect(w, r, "/results?success="+url.QueryEscape("Record deleted."), http.StatusSeeOther)
}
