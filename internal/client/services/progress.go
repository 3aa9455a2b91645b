package services

import (
	"context"
	"math/rand/v2"
	"time"
)

// Progress bounds and the default animation step.
const (
	ProgressMax         = 100.0
	ProgressMaxStep     = 30.0
	DefaultProgressTick = 200 * time.Millisecond
)

// ProgressAnimator drives the indeterminate upload progress indicator.
//
// The value it produces is an approximation: it grows by a random step in
// [0, ProgressMaxStep) every Tick and is not tied to bytes sent or to the
// request finishing. It always ends at exactly ProgressMax.
type ProgressAnimator struct {
	Tick time.Duration
	// Rand returns a value in [0, 1).
	Rand func() float64
}

// NewProgressAnimator returns an animator with the default tick and
// math/rand/v2 as the source.
func NewProgressAnimator() *ProgressAnimator {
	return &ProgressAnimator{Tick: DefaultProgressTick, Rand: rand.Float64}
}

// Next advances p by one random step, clamped to ProgressMax.
func (a *ProgressAnimator) Next(p float64) float64 {
	r := a.Rand()
	if r < 0 || r >= 1 {
		r = 0
	}
	p += r * ProgressMaxStep
	if p >= ProgressMax {
		return ProgressMax
	}
	return p
}

// Run calls step with each new value until the value reaches ProgressMax,
// step returns false, or ctx is done. The ticker is stopped exactly once,
// on return.
func (a *ProgressAnimator) Run(ctx context.Context, step func(p float64) bool) {
	tick := a.Tick
	if tick <= 0 {
		tick = DefaultProgressTick
	}

	t := time.NewTicker(tick)
	defer t.Stop()

	p := 0.0
	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			p = a.Next(p)
			if !step(p) || p >= ProgressMax {
				return
			}
		}
	}
}
