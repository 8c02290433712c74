package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/holisticrecovery/recovery-platform/internal/http/handlers"
	httpmiddleware "github.com/holisticrecovery/recovery-platform/internal/http/middleware"
	"github.com/holisticrecovery/recovery-platform/pkg/logging"
)

// Config holds router configuration
type Config struct {
	Logger         *logging.Logger
	Booking        *handlers.BookingHandler
	Catalog        *handlers.CatalogHandler
	Content        *handlers.ContentHandler
	MetricsHandler http.Handler

	CORSAllowedOrigins []string

	// Per-IP token bucket for the public API. Zero disables limiting.
	RateLimitPerSecond float64
	RateLimitBurst     int
}

// New creates a new Chi router with all routes configured
func New(cfg *Config) http.Handler {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Compress(5))
	if len(cfg.CORSAllowedOrigins) > 0 {
		r.Use(httpmiddleware.CORS(cfg.CORSAllowedOrigins))
	}
	if cfg.Logger != nil {
		r.Use(httpmiddleware.RequestLogger(cfg.Logger))
	}
	if cfg.RateLimitPerSecond > 0 {
		r.Use(httpmiddleware.RateLimit(cfg.RateLimitPerSecond, cfg.RateLimitBurst))
	}

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	})
	if cfg.MetricsHandler != nil {
		r.Handle("/metrics", cfg.MetricsHandler)
	}

	if cfg.Catalog != nil {
		r.Get("/services", cfg.Catalog.ListServices)
		r.Get("/speaking-topics", cfg.Catalog.ListSpeakingTopics)
	}
	if cfg.Content != nil {
		r.Route("/content", func(r chi.Router) {
			r.Get("/", cfg.Content.List)
			r.Get("/categories", cfg.Content.ListCategories)
		})
	}
	if cfg.Booking != nil {
		r.Mount("/booking", cfg.Booking.Routes())
	}

	return r
}
