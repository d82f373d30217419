// Package handler provides HTTP handlers for the API.
package handler

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"resume-extractor/internal/domain"
	"resume-extractor/internal/service"
	apperrors "resume-extractor/pkg/errors"
)

const (
	// multipartOverhead leaves room for the form boundary and part headers.
	multipartOverhead = 1 << 20
	multipartMemory   = 8 << 20
)

// ResumeHandler handles resume extraction requests
type ResumeHandler struct {
	extractor   domain.ResumeExtractor
	maxFileSize int64
	timeout     time.Duration
	logger      domain.Logger
}

// NewResumeHandler creates a new resume handler
func NewResumeHandler(extractor domain.ResumeExtractor, maxFileSize int64, timeout time.Duration, logger domain.Logger) *ResumeHandler {
	return &ResumeHandler{
		extractor:   extractor,
		maxFileSize: maxFileSize,
		timeout:     timeout,
		logger:      logger,
	}
}

// Extract reads the uploaded PDF from the "file" form field and returns the
// extracted ResumeRecord with its timings.
func (h *ResumeHandler) Extract(w http.ResponseWriter, r *http.Request) {
	requestID := GetRequestID(r)

	data, appErr := h.readUpload(w, r)
	if appErr != nil {
		h.logger.Warn("Upload rejected", "request_id", requestID, "reason", appErr.Message)
		writeAppError(w, appErr)
		return
	}

	fields := []interface{}{"request_id", requestID, "bytes", len(data)}
	if caller, ok := GetUserFromContext(r); ok {
		fields = append(fields, "user_id", caller.ID)
	}
	h.logger.Info("Resume extraction started", fields...)

	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	callbacks := domain.Callbacks{
		OnStage: func(stage string) {
			h.logger.Debug("Extraction stage", "request_id", requestID, "stage", stage)
		},
	}

	result, err := service.ExtractWithDeadline(ctx, h.extractor, data, callbacks, &service.RunGuard{})
	if err != nil {
		appErr := apperrors.FromExtractionError(err)
		h.logger.Error("Resume extraction failed", err, "request_id", requestID, "status", appErr.StatusCode)
		writeAppError(w, appErr)
		return
	}

	writeJSON(w, http.StatusOK, result)
}

// readUpload validates the multipart upload and returns the file bytes.
func (h *ResumeHandler) readUpload(w http.ResponseWriter, r *http.Request) ([]byte, *apperrors.AppError) {
	r.Body = http.MaxBytesReader(w, r.Body, h.maxFileSize+multipartOverhead)
	if err := r.ParseMultipartForm(multipartMemory); err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			return nil, h.tooLarge()
		}
		return nil, apperrors.NewValidationError("File is required", "expected multipart/form-data with a \"file\" field")
	}

	// Validate file is present
	file, header, err := r.FormFile("file")
	if err != nil {
		return nil, apperrors.NewValidationError("File is required")
	}
	defer file.Close()

	// Sanitize filename (strip any path components)
	name := strings.TrimSpace(filepath.Base(header.Filename))
	if strings.ToLower(filepath.Ext(name)) != ".pdf" {
		return nil, unsupportedType()
	}

	if header.Size > h.maxFileSize {
		return nil, h.tooLarge()
	}

	data, err := io.ReadAll(io.LimitReader(file, h.maxFileSize+1))
	if err != nil {
		return nil, apperrors.NewInternalError("Failed to read upload", err)
	}
	if int64(len(data)) > h.maxFileSize {
		return nil, h.tooLarge()
	}
	if len(data) == 0 {
		return nil, apperrors.NewValidationError("File is empty")
	}

	if http.DetectContentType(data) != "application/pdf" {
		return nil, unsupportedType()
	}

	return data, nil
}

func (h *ResumeHandler) tooLarge() *apperrors.AppError {
	return apperrors.NewValidationError(
		"File too large",
		"maximum size is "+formatMegabytes(h.maxFileSize),
	).WithStatus(http.StatusRequestEntityTooLarge)
}

func unsupportedType() *apperrors.AppError {
	return apperrors.NewValidationError(
		"Unsupported file type",
		"only PDF (.pdf) files are accepted",
	).WithStatus(http.StatusUnsupportedMediaType)
}

func formatMegabytes(n int64) string {
	return fmt.Sprintf("%.0f MB", float64(n)/(1<<20))
}
