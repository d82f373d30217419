package fitz

import (
	"bytes"
	"errors"
	"image"
	"testing"

	"golang.org/x/image/tiff"

	"resume-extractor/internal/domain"
	"resume-extractor/internal/infra/fitz/fitztest"
)

type mockLogger struct{}

func (mockLogger) Info(msg string, fields ...interface{})             {}
func (mockLogger) Error(msg string, err error, fields ...interface{}) {}
func (mockLogger) Debug(msg string, fields ...interface{})            {}
func (mockLogger) Warn(msg string, fields ...interface{})             {}

func TestRenderer_LoadInvalid(t *testing.T) {
	r := NewRenderer(mockLogger{})

	for name, data := range map[string][]byte{
		"empty":   nil,
		"garbage": []byte("definitely not a pdf"),
	} {
		t.Run(name, func(t *testing.T) {
			doc, err := r.Load(data)
			var loadErr *domain.DocumentLoadError
			if !errors.As(err, &loadErr) {
				t.Fatalf("expected DocumentLoadError, got %v", err)
			}
			if doc != nil {
				t.Fatal("expected no document")
			}
		})
	}
}

func TestRenderer_TextRuns(t *testing.T) {
	r := NewRenderer(mockLogger{})
	doc, err := r.Load(fitztest.PDF(
		[]string{"Maria Silva", "maria@example.com"},
		[]string{"Python e SQL"},
	))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	defer doc.Close()

	if doc.PageCount() != 2 {
		t.Fatalf("PageCount() = %d, want 2", doc.PageCount())
	}

	page, err := doc.Page(0)
	if err != nil {
		t.Fatalf("Page(0) error = %v", err)
	}
	runs, err := page.TextRuns()
	if err != nil {
		t.Fatalf("TextRuns() error = %v", err)
	}
	if len(runs) != 2 {
		t.Fatalf("expected 2 runs, got %+v", runs)
	}
	if runs[0].Text != "Maria Silva" || runs[1].Text != "maria@example.com" {
		t.Fatalf("unexpected runs %+v", runs)
	}
	if runs[0].Y >= runs[1].Y {
		t.Fatalf("expected first line above second, got %+v", runs)
	}

	if _, err := doc.Page(2); !errors.Is(err, domain.ErrPageOutOfRange) {
		t.Fatalf("expected ErrPageOutOfRange, got %v", err)
	}
}

func TestRenderer_Render(t *testing.T) {
	r := NewRenderer(mockLogger{})
	doc, err := r.Load(fitztest.PDF(nil))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	defer doc.Close()

	page, err := doc.Page(0)
	if err != nil {
		t.Fatalf("Page(0) error = %v", err)
	}
	runs, err := page.TextRuns()
	if err != nil || len(runs) != 0 {
		t.Fatalf("expected blank page, got %+v, %v", runs, err)
	}

	raster, err := page.Render(2)
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	if raster.Format != "tiff" || raster.Width != 1224 || raster.Height != 1584 {
		t.Fatalf("unexpected raster %s %dx%d", raster.Format, raster.Width, raster.Height)
	}

	img, err := tiff.Decode(bytes.NewReader(raster.Data))
	if err != nil {
		t.Fatalf("raster is not a TIFF: %v", err)
	}
	if img.Bounds() != image.Rect(0, 0, 1224, 1584) {
		t.Fatalf("decoded bounds = %v", img.Bounds())
	}

	raster.Release()
	if !raster.Empty() {
		t.Fatal("expected Release to drop the raster data")
	}
}

func TestDocument_CloseTwice(t *testing.T) {
	doc, err := NewRenderer(mockLogger{}).Load(fitztest.PDF([]string{"x"}))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	page, _ := doc.Page(0)

	if err := doc.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}
	if err := doc.Close(); err != nil {
		t.Fatalf("second Close() error = %v", err)
	}
	if _, err := page.TextRuns(); !errors.Is(err, domain.ErrDocumentClosed) {
		t.Fatalf("expected ErrDocumentClosed, got %v", err)
	}
}
