package domain

import (
	"fmt"
	"time"
)

// ResumeRecord is the structured result of one extraction.
// Optional fields are nil when the matching extractor found nothing.
type ResumeRecord struct {
	Name      *string  `json:"name"`
	Email     *string  `json:"email"`
	Phone     *string  `json:"phone"`
	LinkedIn  *string  `json:"linkedin"`
	GitHub    *string  `json:"github"`
	Seniority *string  `json:"seniority"`
	Skills    []string `json:"skills"`

	// Placeholders for sections that are not parsed.
	Experience []interface{} `json:"experience"`
	Education  []interface{} `json:"education"`
	Languages  []interface{} `json:"languages"`
	Summary    *string       `json:"summary"`

	Debug DebugInfo `json:"debug"`
}

// DebugInfo keeps enough of the intermediate state to diagnose extractor misses.
type DebugInfo struct {
	TextPreview   string       `json:"text_preview"`
	HeaderPreview string       `json:"header_preview"`
	Matches       DebugMatches `json:"matches"`
}

type DebugMatches struct {
	Name     *string `json:"name"`
	PhoneRaw *string `json:"phone_raw"`
	Phone    *string `json:"phone"`
}

// ExtractionLogs holds the timings of one request, formatted as seconds.
type ExtractionLogs struct {
	TextExtraction string `json:"pdf_text_extraction"`
	OCR            string `json:"ocr"`
	Total          string `json:"total"`
	OCRUsed        bool   `json:"ocr_used"`
	Pages          int    `json:"pages"`
}

// ExtractionResult is what the orchestrator hands back to callers.
type ExtractionResult struct {
	Record *ResumeRecord  `json:"record"`
	Logs   ExtractionLogs `json:"logs"`
}

// Callbacks are invoked synchronously while an extraction runs. Both are optional.
type Callbacks struct {
	OnStage    func(stage string)
	OnProgress func(fraction float64)
}

// Stage identifies a phase of the extraction pipeline.
type Stage int

const (
	StageLoading Stage = iota
	StageTextLayer
	StageOCR
	StageAssembling
)

func (s Stage) String() string {
	switch s {
	case StageLoading:
		return "loading"
	case StageTextLayer:
		return "text_layer"
	case StageOCR:
		return "ocr"
	case StageAssembling:
		return "assembling"
	default:
		return fmt.Sprintf("stage(%d)", int(s))
	}
}

// FormatSeconds renders d as seconds with two decimals, e.g. "1.25s".
func FormatSeconds(d time.Duration) string {
	return fmt.Sprintf("%.2fs", d.Seconds())
}

// ResumeExtractor runs the whole pipeline for one document.
type ResumeExtractor interface {
	Extract(data []byte, cb Callbacks) (*ExtractionResult, error)
}
