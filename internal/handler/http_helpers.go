package handler

import (
	"encoding/json"
	"net/http"

	"resume-extractor/internal/domain"
	apperrors "resume-extractor/pkg/errors"
)

type contextKey string

const (
	userContextKey      contextKey = "user"
	tokenContextKey     contextKey = "token"
	requestIDContextKey contextKey = "request_id"
)

// GetUserFromContext extracts the authenticated user from request context
func GetUserFromContext(r *http.Request) (*domain.Caller, bool) {
	user, ok := r.Context().Value(userContextKey).(*domain.Caller)
	return user, ok
}

// GetTokenFromContext extracts the authentication token from request context
func GetTokenFromContext(r *http.Request) (string, bool) {
	token, ok := r.Context().Value(tokenContextKey).(string)
	return token, ok
}

// GetRequestID returns the id assigned by RequestIDMiddleware, or "".
func GetRequestID(r *http.Request) string {
	id, _ := r.Context().Value(requestIDContextKey).(string)
	return id
}

// writeError writes an error response (helper function)
func writeError(w http.ResponseWriter, statusCode int, message string) {
	writeJSON(w, statusCode, map[string]string{"error": message})
}

// writeAppError writes an AppError with its status code and type.
func writeAppError(w http.ResponseWriter, err *apperrors.AppError) {
	body := map[string]string{
		"error": err.Message,
		"type":  string(err.Type),
	}
	if err.Details != "" {
		body["details"] = err.Details
	}
	writeJSON(w, err.StatusCode, body)
}

func writeJSON(w http.ResponseWriter, statusCode int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(v)
}
