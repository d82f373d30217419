//go:build ocr

// Package tesseract recognizes page rasters with Tesseract through gosseract.
//
// Tesseract and the language data must be installed on the host. On Debian or
// Ubuntu:
//
//	apt-get install tesseract-ocr tesseract-ocr-por
//
// Without the "ocr" build tag the package compiles to a stub whose engines
// fail with domain.ErrOCRNotEnabled.
package tesseract

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"sync"

	"github.com/otiai10/gosseract/v2"

	"resume-extractor/internal/domain"
)

// Enabled reports whether OCR support was compiled in.
const Enabled = true

// ErrLanguageNotInstalled is returned when no traineddata file exists for a
// requested language.
var ErrLanguageNotInstalled = errors.New("OCR language not installed")

// Provider creates Tesseract engines.
type Provider struct {
	logger domain.Logger
}

// NewProvider creates a Provider.
func NewProvider(logger domain.Logger) *Provider {
	return &Provider{logger: logger}
}

// NewEngine starts a Tesseract client for language, e.g. "por" or "por+eng".
// Tesseract itself loads language data on the first page, so every requested
// language is checked against the installed traineddata files here and a
// missing one fails with Op "init" rather than surfacing from Recognize.
func (p *Provider) NewEngine(language string) (domain.OCREngine, error) {
	langs := strings.Split(language, "+")
	if err := checkInstalled(langs); err != nil {
		return nil, &domain.OCREngineError{Op: "init", Err: err}
	}

	client := gosseract.NewClient()
	if err := client.SetLanguage(langs...); err != nil {
		_ = client.Close()
		return nil, &domain.OCREngineError{Op: "init", Err: err}
	}

	p.logger.Debug("OCR engine started", "language", language, "tesseract", gosseract.Version())
	return &engine{client: client}, nil
}

func checkInstalled(langs []string) error {
	installed, err := gosseract.GetAvailableLanguages()
	if err != nil {
		return fmt.Errorf("list installed languages: %w", err)
	}
	for _, lang := range langs {
		if !slices.Contains(installed, lang) {
			return fmt.Errorf("%w: %q", ErrLanguageNotInstalled, lang)
		}
	}
	return nil
}

type engine struct {
	mu     sync.Mutex
	client *gosseract.Client
}

// Recognize runs Tesseract over img. gosseract reports no intermediate
// progress, so onProgress only sees the start and the end of the page.
func (e *engine) Recognize(img *domain.Raster, onProgress func(float64)) (string, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.client == nil {
		return "", &domain.OCREngineError{Op: "recognize", Err: domain.ErrEngineReleased}
	}
	if img.Empty() {
		return "", &domain.OCREngineError{Op: "recognize", Err: errors.New("empty raster")}
	}

	progress(onProgress, 0)
	if err := e.client.SetImageFromBytes(img.Data); err != nil {
		return "", &domain.OCREngineError{Op: "recognize", Err: err}
	}
	text, err := e.client.Text()
	if err != nil {
		return "", &domain.OCREngineError{Op: "recognize", Err: err}
	}
	progress(onProgress, 1)

	return strings.TrimSpace(text), nil
}

// Release closes the Tesseract client. Further calls are no-ops.
func (e *engine) Release() error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.client == nil {
		return nil
	}
	err := e.client.Close()
	e.client = nil
	return err
}

func progress(fn func(float64), f float64) {
	if fn != nil {
		fn(f)
	}
}
