package config

import (
	"fmt"

	"resume-extractor/internal/domain"
	"resume-extractor/internal/fields"
	"resume-extractor/internal/infra/fitz"
	"resume-extractor/internal/infra/supabase"
	"resume-extractor/internal/infra/tesseract"
	"resume-extractor/internal/service"
	"resume-extractor/internal/textsource"
	"resume-extractor/pkg/logger"
)

// Container holds all application dependencies
type Container struct {
	Config        domain.Config
	Logger        domain.Logger
	Renderer      domain.Renderer
	OCRProvider   domain.OCRProvider
	TextSource    *textsource.Source
	ResumeService domain.ResumeExtractor

	// AuthService is nil unless AUTH_REQUIRED is set.
	AuthService domain.AuthService
}

// NewContainer creates a new dependency injection container from the environment
func NewContainer() (*Container, error) {
	cfg := NewConfig()
	return NewContainerWith(cfg, logger.NewLogger(cfg.GetLogLevel()))
}

// NewContainerWith wires the pipeline around an existing config and logger.
func NewContainerWith(cfg domain.Config, appLogger domain.Logger) (*Container, error) {
	renderer := fitz.NewRenderer(appLogger)
	ocr := tesseract.NewProvider(appLogger)

	source := textsource.New(renderer, ocr, textsource.Options{
		MinTextLength: cfg.GetMinTextLength(),
		RenderScale:   cfg.GetOCRRenderScale(),
		Language:      cfg.GetOCRLanguage(),
	}, appLogger)

	pipeline := service.NewResumeService(source, fields.BrazilianPortuguese(), appLogger)

	c := &Container{
		Config:        cfg,
		Logger:        appLogger,
		Renderer:      renderer,
		OCRProvider:   ocr,
		TextSource:    source,
		ResumeService: service.NewLimitedExtractor(pipeline, int64(cfg.GetMaxConcurrentExtractions())),
	}

	if cfg.IsAuthRequired() {
		client := supabase.NewClient(cfg, appLogger)
		if err := client.Initialize(); err != nil {
			return nil, fmt.Errorf("auth required but Supabase is not configured: %w", err)
		}
		c.AuthService = service.NewAuthService(client, appLogger)
	}

	if !tesseract.Enabled {
		appLogger.Warn("OCR support not compiled in; scanned PDFs will fail")
	}

	return c, nil
}

// GetConfig returns the configuration instance
func (c *Container) GetConfig() domain.Config {
	return c.Config
}

// GetLogger returns the logger instance
func (c *Container) GetLogger() domain.Logger {
	return c.Logger
}
