package controllers

import (
	"html/template"
	"net/http"

	"gitea.com/go-chi/session"

	"github.com/securefit/ecard/authenticator"
	"github.com/securefit/ecard/models"
	"github.com/securefit/ecard/services"
	"github.com/securefit/ecard/userctx"
)

// renderTemplate creates a template set and renders it with the provided data
func renderTemplate(w http.ResponseWriter, templateName string, pageTemplate string, data interface{}) error {
	return renderTemplateWithStatus(w, http.StatusOK, templateName, pageTemplate, data)
}

// renderTemplateWithStatus creates a template set and renders it with the provided data and status code
func renderTemplateWithStatus(w http.ResponseWriter, statusCode int, templateName string, pageTemplate string, data interface{}) error {
	// Create a new template set with only the templates we need
	tmpl := template.New(templateName)
	tmpl.Funcs(template.FuncMap{
		"formatTimestamp": models.FormatTimestamp,
	})

	// Parse layout and page template
	_, err := tmpl.ParseFiles("templates/layout.html", pageTemplate)
	if err != nil {
		http.Error(w, "Failed to parse template: "+err.Error(), http.StatusInternalServerError)
		return err
	}

	// Set status code if not OK
	if statusCode != http.StatusOK {
		w.WriteHeader(statusCode)
	}

	if err := tmpl.ExecuteTemplate(w, "layout.html", data); err != nil {
		http.Error(w, "Failed to render template: "+err.Error(), http.StatusInternalServerError)
		return err
	}

	return nil
}

// pageData assembles the layout data shared by every page: title, nav
// highlight, session theme and the signed-in user (nil when anonymous)
func pageData(r *http.Request, title, currentPage string) models.PageData {
	theme := "light"
	if t, ok := session.GetSession(r).Get("theme").(string); ok && t != "" {
		theme = t
	}
	return models.PageData{
		Title:       title,
		CurrentPage: currentPage,
		Theme:       theme,
		User:        userctx.GetUser(r.Context()),
	}
}

// queryFlash lifts a ?success= or ?error= query parameter into a flash message
func queryFlash(r *http.Request) *models.FlashMessage {
	if msg := r.URL.Query().Get("success"); msg != "" {
		return &models.FlashMessage{Type: "success", Message: msg}
	}
	if msg := r.URL.Query().Get("error"); msg != "" {
		return &models.FlashMessage{Type: "error", Message: msg}
	}
	if msg := r.URL.Query().Get("warning"); msg != "" {
		return &models.FlashMessage{Type: "warning", Message: msg}
	}
	return nil
}

// Controllers holds all controller instances
type Controllers struct {
	Auth    *AuthController
	Form    *FormController
	Results *ResultsController
}

// NewControllers creates and initializes all controller instances
func NewControllers(services *services.Services, provider authenticator.Provider, accounts authenticator.AccountProvider) *Controllers {
	return &Controllers{
		Auth:    NewAuthController(provider, accounts),
		Form:    NewFormController(services),
		Results: NewResultsController(services),
	}
}

// ToggleTheme handles POST /theme: flips the session theme and returns to
// the originating page
func (c *Controllers) ToggleTheme(w http.ResponseWriter, r *http.Request) {
	sess := session.GetSession(r)
	theme := "dark"
	if t, ok := sess.Get("theme").(string); ok && t == "dark" {
		theme = "light"
	}
	sess.Set("theme", theme)

	redirect := r.FormValue("redirect")
	if redirect == "" || redirect[0] != '/' {
		redirect = "/"
	}
	http.Redirect(w, r, redirect, http.StatusSeeOther)
}
