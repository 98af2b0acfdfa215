package routes

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/proctorlab/telemetry-sink/app"
	"github.com/proctorlab/telemetry-sink/handlers"
	"github.com/proctorlab/telemetry-sink/middleware"
)

// SetupRoutes configures all application routes and middleware
func SetupRoutes(deps *app.Dependencies) http.Handler {
	r := chi.NewRouter()

	// Core middleware
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.RequestLogger(deps.Logger))
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.Timeout(30 * time.Second))

	// CORS for the browser frontend
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   deps.Config.CORS.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	eventHandler := handlers.NewEventHandler(
		deps.Events,
		deps.Config.Telemetry.DefaultListLimit,
		deps.Logger,
	)

	r.Get("/", handlers.RootHandler(deps))
	r.Get("/health", handlers.HealthCheck(deps))

	r.Route("/events", func(r chi.Router) {
		r.Post("/", eventHandler.HandleRecordEvent)
		r.Get("/", eventHandler.HandleListEvents)
	})
	r.Get("/status", eventHandler.HandleStatus)

	// 404 handler
	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"error":"endpoint not found"}`))
	})

	return r
}
