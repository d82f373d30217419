package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"resume-extractor/internal/config"
	"resume-extractor/internal/domain"
	"resume-extractor/internal/fields"
	"resume-extractor/internal/infra/fitz"
	"resume-extractor/internal/infra/tesseract"
	"resume-extractor/internal/service"
	"resume-extractor/internal/textsource"
	"resume-extractor/pkg/logger"
)

var (
	errUnsupportedType = fmt.Errorf("%w: only PDF (.pdf) files are accepted", domain.ErrUnsupportedFileType)
	errEmptyFile       = errors.New("file is empty")
)

// extractOptions holds the parsed flags of the extract command.
type extractOptions struct {
	timeout     time.Duration
	language    string
	scale       float64
	minText     int
	maxFileSize int64
	progress    bool
	pretty      bool
}

// NewExtractCmd creates the extract command.
// Flag defaults come from the same environment variables the server reads.
func NewExtractCmd() *cobra.Command {
	cfg := config.NewConfig()

	cmd := &cobra.Command{
		Use:   "extract <file.pdf>...",
		Short: "Extract a JSON record from one or more PDF resumes",
		Long: `Extract runs the resume pipeline on each file in turn and prints one JSON
result per file to stdout.

Files that fail are reported on stderr and do not stop the remaining files;
the command exits with status 1 if any file failed.

Examples:
  # Extract a single resume
  resumectl extract cv.pdf

  # Indented output with stage and progress lines on stderr
  resumectl extract --pretty --progress cv.pdf

  # Scanned resumes in English, rendered at 3x for OCR
  resumectl extract --lang eng --scale 3 scan.pdf`,
		Args: cobra.MinimumNArgs(1),
		RunE: runExtractCmd,
	}

	cmd.Flags().DurationP("timeout", "t", cfg.GetExtractTimeout(),
		"Maximum time to spend on each file")
	cmd.Flags().StringP("lang", "l", cfg.GetOCRLanguage(),
		"OCR language, e.g. por or por+eng")
	cmd.Flags().Float64("scale", cfg.GetOCRRenderScale(),
		"Render scale used for OCR")
	cmd.Flags().Int("min-text", cfg.GetMinTextLength(),
		"Text layer length below which OCR is used")
	cmd.Flags().Int64("max-size", cfg.GetMaxFileSize(),
		"Maximum file size in bytes")
	cmd.Flags().BoolP("progress", "p", false,
		"Print stage and progress lines to stderr")
	cmd.Flags().Bool("pretty", false,
		"Indent JSON output")

	return cmd
}

func runExtractCmd(cmd *cobra.Command, args []string) error {
	opts, err := parseExtractOptions(cmd)
	if err != nil {
		return err
	}

	level := "info"
	if getVerboseFlag(cmd) {
		level = "debug"
	}
	appLogger := logger.NewLoggerWithOutput(level, cmd.ErrOrStderr())
	defer func() { _ = appLogger.Sync() }()

	source := textsource.New(
		fitz.NewRenderer(appLogger),
		tesseract.NewProvider(appLogger),
		textsource.Options{
			MinTextLength: opts.minText,
			RenderScale:   opts.scale,
			Language:      opts.language,
		},
		appLogger,
	)

	runner := &extractRunner{
		extractor: service.NewResumeService(source, fields.BrazilianPortuguese(), appLogger),
		opts:      opts,
		out:       cmd.OutOrStdout(),
		errOut:    cmd.ErrOrStderr(),
		guard:     &service.RunGuard{},
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	return runner.run(ctx, args)
}

func parseExtractOptions(cmd *cobra.Command) (extractOptions, error) {
	var opts extractOptions
	var err error
	flags := cmd.Flags()

	if opts.timeout, err = flags.GetDuration("timeout"); err != nil {
		return opts, err
	}
	if opts.language, err = flags.GetString("lang"); err != nil {
		return opts, err
	}
	if opts.scale, err = flags.GetFloat64("scale"); err != nil {
		return opts, err
	}
	if opts.minText, err = flags.GetInt("min-text"); err != nil {
		return opts, err
	}
	if opts.maxFileSize, err = flags.GetInt64("max-size"); err != nil {
		return opts, err
	}
	if opts.progress, err = flags.GetBool("progress"); err != nil {
		return opts, err
	}
	if opts.pretty, err = flags.GetBool("pretty"); err != nil {
		return opts, err
	}

	if opts.timeout <= 0 {
		return opts, fmt.Errorf("--timeout must be positive, got %s", opts.timeout)
	}
	if opts.maxFileSize <= 0 {
		return opts, fmt.Errorf("--max-size must be positive, got %d", opts.maxFileSize)
	}
	return opts, nil
}

// getVerboseFlag retrieves the verbose flag from the command or its parent.
func getVerboseFlag(cmd *cobra.Command) bool {
	verbose, err := cmd.Flags().GetBool("verbose")
	if err != nil {
		verbose, _ = cmd.Root().PersistentFlags().GetBool("verbose")
	}
	return verbose
}

// extractRunner processes files one after another. All files of a session
// share one guard, so a file abandoned on timeout cannot print progress over
// the next one.
type extractRunner struct {
	extractor domain.ResumeExtractor
	opts      extractOptions
	out       io.Writer
	errOut    io.Writer
	guard     *service.RunGuard
}

func (r *extractRunner) run(ctx context.Context, paths []string) error {
	failed := 0
	for _, path := range paths {
		if err := r.extractFile(ctx, path); err != nil {
			failed++
			fmt.Fprintf(r.errOut, "%s: %v\n", path, err)
		}
		if ctx.Err() != nil {
			break
		}
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d files failed", failed, len(paths))
	}
	return nil
}

func (r *extractRunner) extractFile(ctx context.Context, path string) error {
	data, err := readPDF(path, r.opts.maxFileSize)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(ctx, r.opts.timeout)
	defer cancel()

	result, err := service.ExtractWithDeadline(ctx, r.extractor, data, r.callbacks(path), r.guard)
	if err != nil {
		return err
	}

	enc := json.NewEncoder(r.out)
	if r.opts.pretty {
		enc.SetIndent("", "  ")
	}
	return enc.Encode(result)
}

func (r *extractRunner) callbacks(path string) domain.Callbacks {
	if !r.opts.progress {
		return domain.Callbacks{}
	}
	name := filepath.Base(path)
	return domain.Callbacks{
		OnStage: func(stage string) {
			fmt.Fprintf(r.errOut, "[%s] %s\n", name, stage)
		},
		OnProgress: func(fraction float64) {
			fmt.Fprintf(r.errOut, "[%s] %3.0f%%\n", name, fraction*100)
		},
	}
}

// readPDF applies the same upload checks as the HTTP endpoint.
func readPDF(path string, maxFileSize int64) ([]byte, error) {
	if strings.ToLower(filepath.Ext(path)) != ".pdf" {
		return nil, errUnsupportedType
	}

	info, err := os.Stat(path)
	if err != nil {
		return nil, err
	}
	if info.IsDir() {
		return nil, fmt.Errorf("%s is a directory", path)
	}
	if info.Size() > maxFileSize {
		return nil, fmt.Errorf("%w: %d bytes, maximum is %d", domain.ErrFileTooLarge, info.Size(), maxFileSize)
	}
	if info.Size() == 0 {
		return nil, errEmptyFile
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if http.DetectContentType(data) != "application/pdf" {
		return nil, errUnsupportedType
	}
	return data, nil
}
