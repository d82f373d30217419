package service

import (
	"errors"
	"strings"
	"sync"
	"time"

	"resume-extractor/internal/domain"
)

type MockLogger struct {
	mu       sync.Mutex
	messages []string
}

func NewMockLogger() *MockLogger {
	return &MockLogger{
		messages: []string{},
	}
}

func (m *MockLogger) record(line string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.messages = append(m.messages, line)
}

func (m *MockLogger) Info(msg string, args ...interface{}) {
	m.record("INFO: " + msg)
}

func (m *MockLogger) Error(msg string, err error, args ...interface{}) {
	m.record("ERROR: " + msg + " - " + err.Error())
}

func (m *MockLogger) Debug(msg string, args ...interface{}) {
	m.record("DEBUG: " + msg)
}

func (m *MockLogger) Warn(msg string, args ...interface{}) {
	m.record("WARN: " + msg)
}

func (m *MockLogger) Contains(prefix string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, line := range m.messages {
		if strings.HasPrefix(line, prefix) {
			return true
		}
	}
	return false
}

// MockSupabaseClient accepts "valid-token" and counts validations.
type MockSupabaseClient struct {
	mu    sync.Mutex
	calls int
}

func NewMockSupabaseClient() *MockSupabaseClient {
	return &MockSupabaseClient{}
}

func (m *MockSupabaseClient) Initialize() error {
	return nil
}

func (m *MockSupabaseClient) ValidateToken(token string) (*domain.Caller, error) {
	m.mu.Lock()
	m.calls++
	m.mu.Unlock()

	if token == "valid-token" {
		return &domain.Caller{
			ID:    "user-123",
			Email: "test@example.com",
		}, nil
	}
	if token == "invalid-token" {
		return nil, errors.New("invalid token")
	}
	return nil, errors.New("token validation failed")
}

func (m *MockSupabaseClient) Calls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls
}

// The fakes below stand in for the PDF renderer and OCR engine. Each page
// carries its text layer as one run per line, like the MuPDF adapter produces.

type mockPage struct {
	lines []string
}

func (p *mockPage) TextRuns() ([]domain.TextRun, error) {
	runs := make([]domain.TextRun, len(p.lines))
	for i, line := range p.lines {
		runs[i] = domain.TextRun{Text: line, X: 56, Y: float64(60 + 16*i)}
	}
	return runs, nil
}

func (p *mockPage) Render(scale float64) (*domain.Raster, error) {
	return &domain.Raster{Data: []byte("raster"), Format: "tiff", Width: int(612 * scale), Height: int(792 * scale)}, nil
}

type mockDocument struct {
	pages []*mockPage
}

func (d *mockDocument) PageCount() int { return len(d.pages) }

func (d *mockDocument) Page(i int) (domain.Page, error) {
	if i < 0 || i >= len(d.pages) {
		return nil, domain.ErrPageOutOfRange
	}
	return d.pages[i], nil
}

func (d *mockDocument) Close() error { return nil }

type mockRenderer struct {
	doc *mockDocument
}

func (r *mockRenderer) Load(data []byte) (domain.Document, error) {
	if !strings.HasPrefix(string(data), "%PDF") {
		return nil, &domain.DocumentLoadError{Err: errors.New("missing %PDF header")}
	}
	return r.doc, nil
}

type mockOCR struct {
	pageTexts []string
	delay     time.Duration
	created   int
}

func (o *mockOCR) NewEngine(language string) (domain.OCREngine, error) {
	o.created++
	return &mockEngine{texts: o.pageTexts, delay: o.delay}, nil
}

type mockEngine struct {
	texts []string
	delay time.Duration
	next  int
}

func (e *mockEngine) Recognize(img *domain.Raster, onProgress func(float64)) (string, error) {
	onProgress(0)
	time.Sleep(e.delay)
	onProgress(1)
	if e.next >= len(e.texts) {
		return "", nil
	}
	text := e.texts[e.next]
	e.next++
	return text, nil
}

func (e *mockEngine) Release() error { return nil }
