package rest

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/heartmarshall/notekeeper-backend/internal/transport/middleware"
)

// RouterConfig wires handlers and middleware into the HTTP router.
// Nil middleware fields are skipped.
type RouterConfig struct {
	Notes  *NoteHandler
	Auth   *AuthHandler
	Health *HealthHandler

	// Global wraps every request, outermost first.
	Global []middleware.Middleware
	// Identity resolves the bearer token into the request context. It is
	// not applied to the credential endpoints so a stale token cannot
	// block a fresh login.
	Identity middleware.Middleware
	// AuthLimit throttles the credential endpoints.
	AuthLimit middleware.Middleware
	// APILimit throttles everything under /api.
	APILimit middleware.Middleware
}

// NewRouter builds the application router.
func NewRouter(cfg RouterConfig) http.Handler {
	r := chi.NewRouter()
	r.Use(chimw.CleanPath, chimw.StripSlashes)
	for _, mw := range cfg.Global {
		r.Use(mw)
	}

	r.Get("/", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		_, _ = w.Write([]byte("Notes API is running"))
	})
	r.Get("/live", cfg.Health.Live)
	r.Get("/ready", cfg.Health.Ready)
	r.Get("/health", cfg.Health.Health)

	r.Route("/api", func(r chi.Router) {
		use(r, cfg.APILimit)

		r.Route("/auth", func(r chi.Router) {
			r.Group(func(r chi.Router) {
				use(r, cfg.AuthLimit)
				r.Post("/register", cfg.Auth.Register)
				r.Post("/signup", cfg.Auth.Register)
				r.Post("/login", cfg.Auth.Login)
			})
			r.Group(func(r chi.Router) {
				use(r, cfg.Identity)
				r.Use(middleware.RequireAuth)
				r.Get("/me", cfg.Auth.Me)
			})
		})

		r.Route("/notes", func(r chi.Router) {
			use(r, cfg.Identity)
			r.Use(middleware.RequireAuth)

			r.Get("/", cfg.Notes.List)
			r.Post("/", cfg.Notes.Create)
			r.Get("/export", cfg.Notes.Export)

			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", cfg.Notes.Get)
				r.Put("/", cfg.Notes.Update)
				r.Delete("/", cfg.Notes.Delete)
				r.Get("/html", cfg.Notes.HTML)
				r.Post("/restore", cfg.Notes.Restore)
				r.Post("/duplicate", cfg.Notes.Duplicate)
				r.Post("/pin", cfg.Notes.TogglePin)
				r.Post("/archive", cfg.Notes.ToggleArchive)
			})
		})
	})

	r.NotFound(func(w http.ResponseWriter, _ *http.Request) {
		writeError(w, http.StatusNotFound, "route not found")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, _ *http.Request) {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
	})

	return r
}

func use(r chi.Router, mw middleware.Middleware) {
	if mw != nil {
		r.Use(mw)
	}
}
