//go:build !ocr

package tesseract

import (
	"errors"
	"testing"

	"resume-extractor/internal/domain"
)

func TestNewEngineReturnsError(t *testing.T) {
	engine, err := NewProvider(mockLogger{}).NewEngine("por")
	if engine != nil {
		t.Error("Expected nil engine when OCR is disabled")
	}

	var ocrErr *domain.OCREngineError
	if !errors.As(err, &ocrErr) || ocrErr.Op != "init" {
		t.Fatalf("Expected OCR init error, got: %v", err)
	}
	if !errors.Is(err, domain.ErrOCRNotEnabled) {
		t.Errorf("Expected ErrOCRNotEnabled, got: %v", err)
	}
	if Enabled {
		t.Error("Expected Enabled to be false without the ocr tag")
	}
}
