//go:build !ocr

// Package tesseract is the stub used when the "ocr" build tag is not set.
// Every engine fails to start with domain.ErrOCRNotEnabled, so scanned
// documents surface as OCR engine errors. Rebuild with:
//
//	go build -tags ocr
package tesseract

import "resume-extractor/internal/domain"

// Enabled reports whether OCR support was compiled in.
const Enabled = false

// Provider is a stub that cannot create engines.
type Provider struct {
	logger domain.Logger
}

// NewProvider creates a stub Provider.
func NewProvider(logger domain.Logger) *Provider {
	return &Provider{logger: logger}
}

// NewEngine always fails with domain.ErrOCRNotEnabled.
func (p *Provider) NewEngine(language string) (domain.OCREngine, error) {
	p.logger.Warn("OCR requested but support is not compiled in", "language", language)
	return nil, &domain.OCREngineError{Op: "init", Err: domain.ErrOCRNotEnabled}
}
