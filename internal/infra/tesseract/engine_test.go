//go:build ocr

package tesseract

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/png"
	"testing"

	"resume-extractor/internal/domain"
)

// blankPNG draws a white page with one black bar; Tesseract may or may not
// read anything from it.
func blankPNG(width, height int) *domain.Raster {
	img := image.NewGray(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.Set(x, y, color.White)
		}
	}
	for x := 10; x < 50; x++ {
		for y := 10; y < 30; y++ {
			img.Set(x, y, color.Black)
		}
	}

	var buf bytes.Buffer
	_ = png.Encode(&buf, img)
	return &domain.Raster{Data: buf.Bytes(), Format: "png", Width: width, Height: height}
}

func newEngine(t *testing.T, language string) domain.OCREngine {
	t.Helper()
	engine, err := NewProvider(mockLogger{}).NewEngine(language)
	if err != nil {
		t.Skipf("Tesseract not available for %q: %v", language, err)
	}
	return engine
}

func TestRecognize(t *testing.T) {
	engine := newEngine(t, "eng")
	defer engine.Release()

	var seen []float64
	_, err := engine.Recognize(blankPNG(100, 50), func(p float64) { seen = append(seen, p) })
	if err != nil {
		t.Fatalf("Recognize failed: %v", err)
	}
	if len(seen) != 2 || seen[0] != 0 || seen[1] != 1 {
		t.Errorf("Expected progress [0 1], got %v", seen)
	}
}

func TestRecognizeEmptyRaster(t *testing.T) {
	engine := newEngine(t, "eng")
	defer engine.Release()

	_, err := engine.Recognize(&domain.Raster{}, nil)
	var ocrErr *domain.OCREngineError
	if !errors.As(err, &ocrErr) || ocrErr.Op != "recognize" {
		t.Fatalf("Expected recognize error, got %v", err)
	}
}

func TestReleaseTwice(t *testing.T) {
	engine := newEngine(t, "eng")

	if err := engine.Release(); err != nil {
		t.Fatalf("Release failed: %v", err)
	}
	if err := engine.Release(); err != nil {
		t.Fatalf("Second Release failed: %v", err)
	}
	_, err := engine.Recognize(blankPNG(20, 20), nil)
	if !errors.Is(err, domain.ErrEngineReleased) {
		t.Fatalf("Expected ErrEngineReleased, got %v", err)
	}
}

func TestNewEngine_MissingLanguage(t *testing.T) {
	engine := newEngine(t, "eng")
	_ = engine.Release()

	_, err := NewProvider(mockLogger{}).NewEngine("eng+zz-not-installed")
	var ocrErr *domain.OCREngineError
	if !errors.As(err, &ocrErr) || ocrErr.Op != "init" {
		t.Fatalf("Expected init error, got %v", err)
	}
	if !errors.Is(err, ErrLanguageNotInstalled) {
		t.Errorf("Expected ErrLanguageNotInstalled, got %v", err)
	}
}
