package service

import (
	"sync/atomic"

	"resume-extractor/internal/domain"
)

// RunGuard tracks which extraction run is current so callbacks from a
// superseded run can be discarded. The zero value is ready to use.
type RunGuard struct {
	current atomic.Uint64
}

// Begin starts a new run and returns its token. Any earlier run is superseded.
func (g *RunGuard) Begin() uint64 {
	return g.current.Add(1)
}

// Active reports whether token belongs to the current run.
func (g *RunGuard) Active(token uint64) bool {
	return g.current.Load() == token
}

// Supersede invalidates the current run without starting another.
func (g *RunGuard) Supersede() {
	g.current.Add(1)
}

// Guard wraps cb so that each callback is dropped once token is no longer active.
func (g *RunGuard) Guard(token uint64, cb domain.Callbacks) domain.Callbacks {
	var guarded domain.Callbacks
	if cb.OnStage != nil {
		guarded.OnStage = func(stage string) {
			if g.Active(token) {
				cb.OnStage(stage)
			}
		}
	}
	if cb.OnProgress != nil {
		guarded.OnProgress = func(fraction float64) {
			if g.Active(token) {
				cb.OnProgress(fraction)
			}
		}
	}
	return guarded
}
