package handler

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/rs/cors"

	"resume-extractor/internal/domain"
	apperrors "resume-extractor/pkg/errors"
)

// RouterOptions holds what the router needs besides the handlers.
type RouterOptions struct {
	// AuthMiddleware protects the API routes; nil leaves them open.
	AuthMiddleware func(http.Handler) http.Handler
	AllowedOrigins []string
	Logger         domain.Logger
}

// NewRouter creates a new HTTP router with all routes configured
func NewRouter(authHandler *AuthHandler, resumeHandler *ResumeHandler, opts RouterOptions) http.Handler {
	router := mux.NewRouter()
	router.Use(RequestIDMiddleware(opts.Logger))
	router.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeAppError(w, apperrors.NewNotFoundError("Route not found"))
	})

	// Health check endpoint (no auth required)
	router.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok", "service": "resume-extractor"})
	}).Methods(http.MethodGet)

	api := router.PathPrefix("/api/v1").Subrouter()
	if opts.AuthMiddleware != nil {
		api.Use(opts.AuthMiddleware)
		api.HandleFunc("/auth/validate", authHandler.ValidateToken).Methods(http.MethodGet)
	}

	api.HandleFunc("/resumes/extract", resumeHandler.Extract).Methods(http.MethodPost)

	// Configure CORS
	c := cors.New(cors.Options{
		AllowedOrigins: opts.AllowedOrigins,
		AllowedMethods: []string{
			http.MethodGet,
			http.MethodPost,
			http.MethodOptions,
		},
		AllowedHeaders: []string{
			"Accept",
			"Authorization",
			"Content-Type",
			requestIDHeader,
		},
		ExposedHeaders: []string{
			requestIDHeader,
		},
		AllowCredentials: true,
		MaxAge:           300, // Maximum value not ignored by any of major browsers
	})

	return c.Handler(router)
}
