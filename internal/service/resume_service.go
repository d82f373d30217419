package service

import (
	"time"

	"resume-extractor/internal/domain"
	"resume-extractor/internal/fields"
	"resume-extractor/internal/textnorm"
	"resume-extractor/internal/textsource"
)

const (
	// ProgressAssembling is reported once the text is resolved.
	ProgressAssembling = 0.90
	// textPreviewLength bounds the normalized text kept in the debug block.
	textPreviewLength = 2000
)

// TextReader resolves the raw text of a document.
type TextReader interface {
	Read(data []byte, r textsource.Reporter) (textsource.Result, error)
}

// DefaultStageLabels returns the pt-BR descriptions shown to users.
func DefaultStageLabels() map[domain.Stage]string {
	return map[domain.Stage]string{
		domain.StageLoading:    "Lendo PDF...",
		domain.StageTextLayer:  "Extraindo texto do PDF...",
		domain.StageOCR:        "Extraindo texto com OCR...",
		domain.StageAssembling: "Gerando JSON...",
	}
}

// Option configures a ResumeService.
type Option func(*ResumeService)

// WithStageLabels overrides the stage descriptions. Stages missing from labels
// keep their default description.
func WithStageLabels(labels map[domain.Stage]string) Option {
	return func(s *ResumeService) {
		for stage, label := range labels {
			s.labels[stage] = label
		}
	}
}

// ResumeService runs the extraction pipeline: text source, normalization,
// field extraction and record assembly. It is immutable after construction.
type ResumeService struct {
	reader TextReader
	locale *fields.Locale
	labels map[domain.Stage]string
	logger domain.Logger
	now    func() time.Time
}

// NewResumeService creates the orchestrator. A nil locale selects
// fields.BrazilianPortuguese.
func NewResumeService(reader TextReader, locale *fields.Locale, logger domain.Logger, opts ...Option) *ResumeService {
	if locale == nil {
		locale = fields.BrazilianPortuguese()
	}
	s := &ResumeService{
		reader: reader,
		locale: locale,
		labels: DefaultStageLabels(),
		logger: logger,
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Extract turns the PDF in data into a ResumeRecord. Text source failures are
// returned unchanged; extractor misses leave the matching field nil.
func (s *ResumeService) Extract(data []byte, cb domain.Callbacks) (*domain.ExtractionResult, error) {
	start := s.now()
	rep := newStageReporter(cb, s.labels, s.logger)

	src, err := s.reader.Read(data, rep)
	if err != nil {
		s.logger.Error("Resume extraction failed", err, "bytes", len(data))
		return nil, err
	}

	rep.Stage(domain.StageAssembling)
	rep.Progress(ProgressAssembling)

	record := s.assemble(src.Text)
	logs := domain.ExtractionLogs{
		TextExtraction: domain.FormatSeconds(src.TextExtraction),
		OCR:            domain.FormatSeconds(src.OCR),
		Total:          domain.FormatSeconds(s.now().Sub(start)),
		OCRUsed:        src.OCRUsed,
		Pages:          src.Pages,
	}
	rep.Progress(1)

	s.logger.Info("Resume extracted",
		"pages", logs.Pages,
		"ocr_used", logs.OCRUsed,
		"total", logs.Total,
		"skills", len(record.Skills),
		"name_found", record.Name != nil,
	)

	return &domain.ExtractionResult{Record: record, Logs: logs}, nil
}

func (s *ResumeService) assemble(raw string) *domain.ResumeRecord {
	loc := s.locale
	text := textnorm.Normalize(raw)

	name := optional(fields.Name(loc, text))
	phoneRaw, ok := fields.FindPhone(loc, text)
	var phone *string
	if ok {
		phone = ptr(fields.FormatPhone(loc, phoneRaw))
	}

	return &domain.ResumeRecord{
		Name:       name,
		Email:      optional(fields.Email(text)),
		Phone:      phone,
		LinkedIn:   optional(fields.LinkedIn(text)),
		GitHub:     optional(fields.GitHub(text)),
		Seniority:  optional(fields.Seniority(loc, text)),
		Skills:     fields.Skills(loc, raw),
		Experience: []interface{}{},
		Education:  []interface{}{},
		Languages:  []interface{}{},
		Debug: domain.DebugInfo{
			TextPreview:   textnorm.Truncate(text, textPreviewLength),
			HeaderPreview: textnorm.Truncate(text, loc.HeaderLength),
			Matches: domain.DebugMatches{
				Name:     name,
				PhoneRaw: optional(phoneRaw, ok),
				Phone:    phone,
			},
		},
	}
}

func optional(v string, ok bool) *string {
	if !ok {
		return nil
	}
	return &v
}

func ptr(v string) *string { return &v }

// stageReporter adapts caller callbacks to textsource.Reporter. Progress that
// does not move forward is dropped so callers see a strictly increasing series.
type stageReporter struct {
	cb     domain.Callbacks
	labels map[domain.Stage]string
	logger domain.Logger
	last   float64
}

func newStageReporter(cb domain.Callbacks, labels map[domain.Stage]string, logger domain.Logger) *stageReporter {
	return &stageReporter{cb: cb, labels: labels, logger: logger}
}

func (r *stageReporter) Stage(stage domain.Stage) {
	label, ok := r.labels[stage]
	if !ok {
		label = stage.String()
	}
	r.logger.Debug("Extraction stage", "stage", stage.String())
	if r.cb.OnStage != nil {
		r.cb.OnStage(label)
	}
}

func (r *stageReporter) Progress(fraction float64) {
	if fraction > 1 {
		fraction = 1
	}
	if fraction <= r.last {
		return
	}
	r.last = fraction
	if r.cb.OnProgress != nil {
		r.cb.OnProgress(fraction)
	}
}
