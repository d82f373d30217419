// Package textsource resolves the raw text of a PDF. It reads the text layer
// first and falls back to OCR when the layer yields too little text, as happens
// with scanned, image-only documents.
package textsource

import (
	"strings"
	"time"
	"unicode/utf8"

	"resume-extractor/internal/domain"
)

// Defaults used when Options leaves a field zero.
const (
	DefaultMinTextLength = 30
	DefaultRenderScale   = 2.0
	DefaultLanguage      = "por"
)

// Progress bands of the overall request.
const (
	ProgressLoaded        = 0.05
	ProgressTextLayerDone = 0.20
	ProgressOCRStart      = 0.30
	ProgressOCRDone       = 0.85
)

// Options tunes the OCR fallback.
type Options struct {
	// MinTextLength is the text-layer length below which OCR is used.
	MinTextLength int
	// RenderScale upscales pages before recognition.
	RenderScale float64
	// Language is the OCR language model.
	Language string
}

func (o Options) withDefaults() Options {
	if o.MinTextLength <= 0 {
		o.MinTextLength = DefaultMinTextLength
	}
	if o.RenderScale <= 0 {
		o.RenderScale = DefaultRenderScale
	}
	if o.Language == "" {
		o.Language = DefaultLanguage
	}
	return o
}

// Reporter receives stage transitions and overall progress in [0,1].
type Reporter interface {
	Stage(stage domain.Stage)
	Progress(fraction float64)
}

// Result is the raw text of a document and how it was obtained.
type Result struct {
	Text           string
	Pages          int
	OCRUsed        bool
	TextExtraction time.Duration
	OCR            time.Duration
}

// Source reads document text through the rendering and OCR collaborators.
// It holds no per-request state and may be shared between goroutines.
type Source struct {
	renderer domain.Renderer
	ocr      domain.OCRProvider
	opts     Options
	logger   domain.Logger
	now      func() time.Time
}

// New creates a Source.
func New(renderer domain.Renderer, ocr domain.OCRProvider, opts Options, logger domain.Logger) *Source {
	return &Source{
		renderer: renderer,
		ocr:      ocr,
		opts:     opts.withDefaults(),
		logger:   logger,
		now:      time.Now,
	}
}

// Options returns the effective options.
func (s *Source) Options() Options {
	return s.opts
}

// Read returns the text of the document in data. Collaborator failures
// (*domain.DocumentLoadError, *domain.OCREngineError and page errors) are returned
// unchanged. An empty OCR result is not an error.
func (s *Source) Read(data []byte, r Reporter) (Result, error) {
	if r == nil {
		r = nopReporter{}
	}

	r.Stage(domain.StageLoading)
	doc, err := s.renderer.Load(data)
	if err != nil {
		return Result{}, err
	}
	defer func() {
		if err := doc.Close(); err != nil {
			s.logger.Warn("Failed to close document", "error", err)
		}
	}()
	r.Progress(ProgressLoaded)

	res := Result{Pages: doc.PageCount()}

	r.Stage(domain.StageTextLayer)
	start := s.now()
	text, err := s.readTextLayer(doc, r)
	if err != nil {
		return Result{}, err
	}
	res.TextExtraction = s.now().Sub(start)
	res.Text = text
	r.Progress(ProgressTextLayerDone)

	length := utf8.RuneCountInString(text)
	if length >= s.opts.MinTextLength {
		s.logger.Debug("Text layer accepted", "chars", length, "pages", res.Pages)
		return res, nil
	}

	s.logger.Info("Text layer too short; falling back to OCR",
		"chars", length, "min_chars", s.opts.MinTextLength, "pages", res.Pages)

	r.Stage(domain.StageOCR)
	r.Progress(ProgressOCRStart)
	start = s.now()
	text, err = s.recognize(doc, r)
	if err != nil {
		return Result{}, err
	}
	res.OCR = s.now().Sub(start)
	res.Text = text
	res.OCRUsed = true
	r.Progress(ProgressOCRDone)

	return res, nil
}

// readTextLayer joins the runs of each page with spaces and the pages with newlines.
func (s *Source) readTextLayer(doc domain.Document, r Reporter) (string, error) {
	n := doc.PageCount()
	pages := make([]string, 0, n)

	for i := 0; i < n; i++ {
		page, err := doc.Page(i)
		if err != nil {
			return "", err
		}
		runs, err := page.TextRuns()
		if err != nil {
			return "", err
		}
		parts := make([]string, len(runs))
		for j, run := range runs {
			parts[j] = run.Text
		}
		pages = append(pages, strings.Join(parts, " "))
		r.Progress(band(ProgressLoaded, ProgressTextLayerDone, float64(i+1)/float64(n)))
	}

	return strings.TrimSpace(strings.Join(pages, "\n")), nil
}

// recognize renders every page and runs it through one OCR engine. The engine
// and each page raster are released before returning, whatever the outcome.
func (s *Source) recognize(doc domain.Document, r Reporter) (string, error) {
	engine, err := s.ocr.NewEngine(s.opts.Language)
	if err != nil {
		return "", err
	}
	defer func() {
		if err := engine.Release(); err != nil {
			s.logger.Warn("Failed to release OCR engine", "error", err)
		}
	}()

	n := doc.PageCount()
	var b strings.Builder
	for i := 0; i < n; i++ {
		text, err := s.recognizePage(doc, engine, i, func(p float64) {
			r.Progress(band(ProgressOCRStart, ProgressOCRDone, (float64(i)+clamp01(p))/float64(n)))
		})
		if err != nil {
			return "", err
		}
		b.WriteString(text)
		b.WriteByte('\n')
		s.logger.Debug("OCR page done", "page", i+1, "total", n, "chars", utf8.RuneCountInString(text))
	}

	return strings.TrimSpace(b.String()), nil
}

func (s *Source) recognizePage(doc domain.Document, engine domain.OCREngine, index int, onProgress func(float64)) (string, error) {
	page, err := doc.Page(index)
	if err != nil {
		return "", err
	}
	raster, err := page.Render(s.opts.RenderScale)
	if err != nil {
		return "", err
	}
	defer raster.Release()

	return engine.Recognize(raster, onProgress)
}

// band maps a fraction in [0,1] onto [lo,hi]. The endpoints are exact: the
// interpolation is written so that a fraction of 1 yields hi, not hi plus an ulp.
func band(lo, hi, fraction float64) float64 {
	f := clamp01(fraction)
	return lo*(1-f) + hi*f
}

func clamp01(f float64) float64 {
	switch {
	case f < 0:
		return 0
	case f > 1:
		return 1
	default:
		return f
	}
}

type nopReporter struct{}

func (nopReporter) Stage(domain.Stage) {}
func (nopReporter) Progress(float64)   {}
