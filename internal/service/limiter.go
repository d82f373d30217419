package service

import (
	"golang.org/x/sync/semaphore"

	"resume-extractor/internal/domain"
)

// LimitedExtractor caps how many extractions run at once. A run abandoned by
// ExtractWithDeadline keeps its slot until the pipeline really returns, so
// timed-out OCR work still counts against the limit.
type LimitedExtractor struct {
	inner domain.ResumeExtractor
	slots *semaphore.Weighted
	size  int64
}

// NewLimitedExtractor wraps inner with n slots. n below 1 is treated as 1.
func NewLimitedExtractor(inner domain.ResumeExtractor, n int64) *LimitedExtractor {
	if n < 1 {
		n = 1
	}
	return &LimitedExtractor{inner: inner, slots: semaphore.NewWeighted(n), size: n}
}

// Extract fails fast with domain.ErrExtractionBusy when every slot is taken.
func (l *LimitedExtractor) Extract(data []byte, cb domain.Callbacks) (*domain.ExtractionResult, error) {
	if !l.slots.TryAcquire(1) {
		return nil, domain.ErrExtractionBusy
	}
	defer l.slots.Release(1)

	return l.inner.Extract(data, cb)
}

// Size returns the number of slots.
func (l *LimitedExtractor) Size() int64 {
	return l.size
}
