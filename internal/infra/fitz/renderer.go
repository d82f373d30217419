// Package fitz renders PDFs through MuPDF (github.com/gen2brain/go-fitz). It
// supplies positioned text runs for the text layer and TIFF rasters for OCR.
package fitz

import (
	"bytes"
	"errors"
	"fmt"
	"sync"

	gofitz "github.com/gen2brain/go-fitz"
	"golang.org/x/image/tiff"

	"resume-extractor/internal/domain"
)

var errNoPages = errors.New("document has no pages")

// Renderer opens PDF documents from memory.
type Renderer struct {
	logger domain.Logger
}

// NewRenderer creates a MuPDF-backed renderer.
func NewRenderer(logger domain.Logger) *Renderer {
	return &Renderer{logger: logger}
}

// Load opens data as a document. Any failure is a *domain.DocumentLoadError.
func (r *Renderer) Load(data []byte) (domain.Document, error) {
	if len(data) == 0 {
		return nil, &domain.DocumentLoadError{Err: domain.ErrInvalidFile}
	}

	doc, err := gofitz.NewFromMemory(data)
	if err != nil {
		return nil, &domain.DocumentLoadError{Err: err}
	}

	n := doc.NumPage()
	if n <= 0 {
		_ = doc.Close()
		return nil, &domain.DocumentLoadError{Err: errNoPages}
	}

	r.logger.Debug("PDF opened", "pages", n, "bytes", len(data))
	return &document{doc: doc, pages: n}, nil
}

type document struct {
	mu     sync.Mutex
	doc    *gofitz.Document
	pages  int
	closed bool
}

func (d *document) PageCount() int {
	return d.pages
}

func (d *document) Page(i int) (domain.Page, error) {
	if i < 0 || i >= d.pages {
		return nil, fmt.Errorf("page %d of %d: %w", i+1, d.pages, domain.ErrPageOutOfRange)
	}
	return &page{doc: d, index: i}, nil
}

// Close releases the MuPDF context. It is safe to call more than once.
func (d *document) Close() error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.closed {
		return nil
	}
	d.closed = true
	return d.doc.Close()
}

// withDoc runs fn while the document is known to be open.
func (d *document) withDoc(fn func(*gofitz.Document) error) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.closed {
		return domain.ErrDocumentClosed
	}
	return fn(d.doc)
}

type page struct {
	doc   *document
	index int
}

func (p *page) TextRuns() ([]domain.TextRun, error) {
	var markup string
	err := p.doc.withDoc(func(doc *gofitz.Document) error {
		var err error
		markup, err = doc.HTML(p.index, false)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("page %d text: %w", p.index+1, err)
	}

	runs, err := parseRuns(markup)
	if err != nil {
		return nil, fmt.Errorf("page %d text: %w", p.index+1, err)
	}
	return runs, nil
}

// Render rasterizes the page at scale times its natural 72 dpi size and
// encodes it as TIFF, the format Tesseract reads most reliably.
func (p *page) Render(scale float64) (*domain.Raster, error) {
	if scale <= 0 {
		scale = 1
	}

	var buf bytes.Buffer
	var width, height int
	err := p.doc.withDoc(func(doc *gofitz.Document) error {
		img, err := doc.ImageDPI(p.index, 72*scale)
		if err != nil {
			return err
		}
		bounds := img.Bounds()
		width, height = bounds.Dx(), bounds.Dy()
		return tiff.Encode(&buf, img, &tiff.Options{Compression: tiff.Deflate, Predictor: true})
	})
	if err != nil {
		return nil, fmt.Errorf("page %d render: %w", p.index+1, err)
	}

	return &domain.Raster{
		Data:   buf.Bytes(),
		Format: "tiff",
		Width:  width,
		Height: height,
	}, nil
}
