// Package router sets up the HTTP routes and middleware chain for the
// Ba7besh discovery API. All endpoints are public JSON reads; write paths
// live in other services.
package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"ba7besh/internal/handlers"
	"ba7besh/internal/middleware"
)

// New creates and returns the configured Chi router with all middleware
// and routes wired up.
func New(businesses *handlers.Businesses, directory *handlers.Directory) chi.Router {
	r := chi.NewRouter()

	// Global middleware — applied to every request.
	r.Use(middleware.Recoverer)
	r.Use(middleware.Logger)

	// Health check.
	r.Get("/health", healthHandler)

	r.Route("/businesses", func(r chi.Router) {
		r.Get("/", businesses.Search)
		r.Get("/top-rated", businesses.TopRated)
		r.Get("/recommendations", businesses.Recommendations)
		r.Get("/{id}/reviews", businesses.Reviews)
	})

	r.Get("/reviews/recent", businesses.RecentReviews)

	// Reference data.
	r.Get("/categories", directory.Categories)
	r.Get("/tags", directory.Tags)

	return r
}

// healthHandler returns a simple JSON health check response.
func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"ok"}`))
}
