package domain

import "errors"

// Domain errors
var (
	ErrInvalidToken         = errors.New("invalid token")
	ErrInvalidFile          = errors.New("invalid file")
	ErrUnsupportedFileType  = errors.New("unsupported file type")
	ErrFileTooLarge         = errors.New("file too large")
	ErrExtractionTimeout    = errors.New("extraction timed out")
	ErrExtractionBusy       = errors.New("too many extractions in progress")
	ErrOCRNotEnabled        = errors.New("OCR support not enabled; rebuild with -tags ocr")
	ErrPageOutOfRange       = errors.New("page index out of range")
	ErrDocumentClosed       = errors.New("document is closed")
	ErrEngineReleased       = errors.New("OCR engine already released")
	ErrAuthClientNotEnabled = errors.New("auth client not initialized")
)

// DocumentLoadError reports input that is not a well-formed document.
type DocumentLoadError struct {
	Err error
}

func (e *DocumentLoadError) Error() string {
	if e.Err == nil {
		return "failed to load document"
	}
	return "failed to load document: " + e.Err.Error()
}

func (e *DocumentLoadError) Unwrap() error {
	return e.Err
}

// OCREngineError reports an OCR engine that failed to start or crashed while recognizing.
type OCREngineError struct {
	Op  string // "init" or "recognize"
	Err error
}

func (e *OCREngineError) Error() string {
	msg := "OCR engine failed"
	if e.Op != "" {
		msg = "OCR engine " + e.Op + " failed"
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *OCREngineError) Unwrap() error {
	return e.Err
}
