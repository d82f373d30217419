package service

import (
	"context"
	"errors"

	"resume-extractor/internal/domain"
)

// ExtractWithDeadline races extractor against ctx. The pipeline itself cannot be
// interrupted, so on expiry the run is superseded in guard and left to finish in
// the background; its callbacks are dropped and its result discarded.
//
// It returns domain.ErrExtractionTimeout when the deadline passes and ctx.Err()
// when ctx is cancelled. A nil guard gets a private one.
func ExtractWithDeadline(
	ctx context.Context,
	extractor domain.ResumeExtractor,
	data []byte,
	cb domain.Callbacks,
	guard *RunGuard,
) (*domain.ExtractionResult, error) {
	if guard == nil {
		guard = &RunGuard{}
	}
	if err := ctx.Err(); err != nil {
		return nil, contextError(err)
	}

	token := guard.Begin()
	guarded := guard.Guard(token, cb)

	type outcome struct {
		result *domain.ExtractionResult
		err    error
	}
	done := make(chan outcome, 1)

	go func() {
		res, err := extractor.Extract(data, guarded)
		done <- outcome{result: res, err: err}
	}()

	select {
	case out := <-done:
		return out.result, out.err
	case <-ctx.Done():
		guard.Supersede()
		return nil, contextError(ctx.Err())
	}
}

func contextError(err error) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return domain.ErrExtractionTimeout
	}
	return err
}
