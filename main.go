package main

import (
	"fmt"
	"net/http"
	"os"
	"time"

	"gitea.com/go-chi/session"
	"github.com/apex/log"
	"github.com/apex/log/handlers/text"
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"

	"github.com/securefit/ecard/authenticator"
	"github.com/securefit/ecard/controllers"
	"github.com/securefit/ecard/database"
	"github.com/securefit/ecard/dispatch"
	appmiddleware "github.com/securefit/ecard/middleware"
	"github.com/securefit/ecard/repositories"
	"github.com/securefit/ecard/services"
)

func main() {
	log.SetHandler(text.New(os.Stderr))

	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		log.WithError(err).Warn("no .env file loaded")
	}

	// Initialize database
	dbPath := os.Getenv("DB_PATH")
	if dbPath == "" {
		dbPath = "ecard.db"
	}
	if err := database.InitializeDatabase(dbPath); err != nil {
		log.WithError(err).Fatal("failed to initialize database")
	}
	defer database.CloseDB()

	db := database.GetDB()

	// Initialize repositories and services
	repos := repositories.NewRepositories(db)

	dispatcher := dispatch.NewDispatcher(dispatch.Config{
		BaseURL:    os.Getenv("EMAIL_API_BASE_URL"),
		ServiceID:  os.Getenv("EMAIL_SERVICE_ID"),
		TemplateID: os.Getenv("EMAIL_TEMPLATE_ID"),
		PublicKey:  os.Getenv("EMAIL_PUBLIC_KEY"),
	})

	srvs := services.NewServices(repos, dispatcher)

	// Federated sign-in is optional; without provider config only
	// password accounts are offered
	var provider authenticator.Provider
	if domain := os.Getenv("OIDC_DOMAIN"); domain != "" {
		var err error
		provider, err = authenticator.NewOpenIDProvider(authenticator.OpenIDConfig{
			Domain:       domain,
			ClientID:     os.Getenv("OIDC_CLIENT_ID"),
			ClientSecret: os.Getenv("OIDC_CLIENT_SECRET"),
			CallbackURL:  os.Getenv("OIDC_CALLBACK_URL"),
		})
		if err != nil {
			log.WithError(err).Fatal("failed to initialize federated sign-in")
		}
	}

	accounts := authenticator.NewAccountProvider(authenticator.AccountConfig{
		BaseURL: os.Getenv("IDENTITY_API_BASE_URL"),
		APIKey:  os.Getenv("IDENTITY_API_KEY"),
	})

	ctrl := controllers.NewControllers(srvs, provider, accounts)

	r, err := setupRouter(ctrl, provider != nil)
	if err != nil {
		log.WithError(err).Fatal("failed to setup router")
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	log.WithFields(log.Fields{"port": port, "db": dbPath}).Info("starting")
	if err := http.ListenAndServe(":"+port, r); err != nil {
		log.WithError(err).Fatal("server stopped")
	}
}

// setupRouter configures all routes
func setupRouter(ctrl *controllers.Controllers, federated bool) (*chi.Mux, error) {
	r := chi.NewRouter()

	// Middleware
	r.Use(chimiddleware.Logger)
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.Timeout(60 * time.Second)) // 60 second timeout for OAuth callbacks
	r.Use(chimiddleware.Compress(5))

	// Determine if we should use secure cookies (HTTPS)
	useSecureCookies := os.Getenv("USE_HTTPS") == "true"

	// Session middleware
	sessionHandler, err := session.Sessioner(session.Options{
		Provider:       "memory",
		ProviderConfig: "",
		CookieName:     "ecard_session",
		Secure:         useSecureCookies, // Set to true when USE_HTTPS=true (production)
		Gclifetime:     3600,             // Session lifetime in seconds
		Maxlifetime:    3600,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize session: %w", err)
	}
	r.Use(sessionHandler)
	r.Use(appmiddleware.LoadUser)
	r.Use(appmiddleware.MutationLogger)

	// Static files
	r.Handle("/static/*", http.StripPrefix("/static/", http.FileServer(http.Dir("static/"))))

	// PUBLIC ROUTES (no authentication required)
	r.Get("/login", ctrl.Auth.ShowLogin)
	r.Post("/login", ctrl.Auth.SignIn)
	r.Get("/signup", ctrl.Auth.ShowSignup)
	r.Post("/signup", ctrl.Auth.SignUp)
	r.Post("/logout", ctrl.Auth.Logout)
	if federated {
		r.Get("/auth/federated", ctrl.Auth.FederatedLogin)
		r.Get("/auth/callback", ctrl.Auth.Callback)
	}
	r.Post("/theme", ctrl.ToggleTheme)
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		fmt.Fprintf(w, `{"status": "healthy", "service": "ecard"}`)
	})

	// PROTECTED ROUTES (authentication required)
	r.Group(func(r chi.Router) {
		r.Use(appmiddleware.RequireAuth)

		// Fit test form
		r.Get("/", ctrl.Form.Show)
		r.Post("/submit", ctrl.Form.Submit)
		r.Post("/format-date", ctrl.Form.FormatDate)

		// Stored results
		r.Route("/results", func(r chi.Router) {
			r.Get("/", ctrl.Results.Index)
			r.Get("/{id}/edit", ctrl.Results.ShowEdit)
			r.Post("/{id}/edit", ctrl.Results.UpdateRecord)
			r.Post("/{id}/resend", ctrl.Results.Resend)
			r.Get("/{id}/delete", ctrl.Results.ConfirmDelete)
			r.Post("/{id}/delete", ctrl.Results.Delete)
		})

		// Account management
		r.Get("/account", ctrl.Auth.ShowAccount)
		r.Post("/account/profile", ctrl.Auth.UpdateProfile)
		r.Post("/account/password", ctrl.Auth.ChangePassword)
	})

	return r, nil
}
