package routes

import (
	"net/http"

	httpSwagger "github.com/swaggo/http-swagger"
	"golang.org/x/time/rate"

	"MOVIELIST_BACK-END/internal/config"
	"MOVIELIST_BACK-END/internal/handlers"
	"MOVIELIST_BACK-END/internal/middleware"
)

// SetupRoutes configures all application routes
func SetupRoutes(cfg *config.Config, authHandler *handlers.AuthHandler, moviesHandler *handlers.MoviesHandler, healthHandler *handlers.HealthHandler) {
	// One bucket shared by both auth endpoints
	authLimiter := rate.NewLimiter(rate.Limit(cfg.RateLimit.RequestsPerSecond), cfg.RateLimit.Burst)
	limited := func(h http.HandlerFunc) http.HandlerFunc {
		return middleware.RateLimit(h, authLimiter)
	}
	protected := func(h http.HandlerFunc) http.HandlerFunc {
		return middleware.AuthMiddleware(h, &cfg.JWT)
	}

	// Health check routes
	http.HandleFunc("/healthz", healthHandler.HealthCheck)
	http.HandleFunc("/livez", healthHandler.LivenessCheck)
	http.HandleFunc("/readyz", healthHandler.ReadinessCheck)

	// Authentication routes
	http.HandleFunc("/api/auth/register", limited(authHandler.Register))
	http.HandleFunc("/api/auth/login", limited(authHandler.Login))
	http.HandleFunc("/api/auth/protected", protected(authHandler.Protected))

	// Movie routes (all require authentication)
	http.HandleFunc("/api/movies", protected(moviesHandler.Movies))
	http.HandleFunc("/api/movies/", protected(moviesHandler.MovieByID))

	// API documentation
	http.HandleFunc("/swagger/", httpSwagger.WrapHandler)

	// Root route
	http.HandleFunc("/", rootHandler)
}

func rootHandler(w http.ResponseWriter, r *http.Request) {
	w.Write([]byte("MovieList backend is running."))
}
