package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"medtrack/internal/handlers"
	"medtrack/internal/service"
)

// Deps holds dependencies for the HTTP router.
type Deps struct {
	Medications service.MedicationService
	Theme       service.ThemeService
	Storage     handlers.Pinger
}

// NewRouter creates a new HTTP router with the provided dependencies.
func NewRouter(deps *Deps) http.Handler {
	r := chi.NewRouter()

	r.Use(LoggerMiddleware)
	r.Use(RequestLogger)
	r.Use(middleware.Recoverer)

	// Add CORS middleware
	r.Use(CORS)

	medications := handlers.NewMedicationHandler(deps.Medications)
	stream := handlers.NewStreamHandler(deps.Medications)
	theme := handlers.NewThemeHandler(deps.Theme)
	health := handlers.NewHealthHandler(deps.Storage)

	// Register API routes
	r.Route("/api", func(r chi.Router) {
		r.Route("/medications", func(r chi.Router) {
			r.Get("/", medications.List)
			r.Post("/", medications.Create)
			r.Method(http.MethodGet, "/stream", stream)
			r.Put("/{id}", medications.Update)
			r.Delete("/{id}", medications.Delete)
		})
		r.Get("/theme", theme.Get)
		r.Put("/theme", theme.Put)
		r.Method(http.MethodGet, "/health", health)
	})

	return r
}
