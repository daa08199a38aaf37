package workers

import (
	"context"
	"time"
)

type Workers struct {
	workers []Worker
}

// New aggregates the given workers.
func New(ws ...Worker) *Workers {
	return &Workers{workers: ws}
}

func (w *Workers) Run() {
	for _, worker := range w.workers {
		worker.Run()
	}
}

// Func adapts a plain function to the Worker interface.
type Func func()

// Run implements Worker.
func (f Func) Run() {
	f()
}

// Periodic returns a Worker that invokes fn every interval until ctx is
// cancelled. The first invocation happens after one full interval.
func Periodic(ctx context.Context, interval time.Duration, fn func(context.Context)) Func {
	return func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				fn(ctx)
			}
		}
	}
}
