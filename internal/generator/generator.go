package generator

import (
	"context"
	"math/rand"
	"time"
)

// Generator produces the wizard artifacts (problems, pattern interrupt,
// landing page, ads). Output is a pure function of its inputs; the only
// nondeterminism is the simulated call latency, which stands in for a real
// model inference round trip. Callers cache results in the draft store and
// only re-invoke on explicit retry.
type Generator struct {
	MinDelay time.Duration
	MaxDelay time.Duration
}

// New returns a Generator with the latency window the frontend was tuned
// against. Tests use the zero value to skip the sleep.
func New() *Generator {
	return &Generator{MinDelay: 800 * time.Millisecond, MaxDelay: 2 * time.Second}
}

func (g *Generator) simulateLatency(ctx context.Context) error {
	d := g.MinDelay
	if g.MaxDelay > g.MinDelay {
		d += time.Duration(rand.Int63n(int64(g.MaxDelay-g.MinDelay) + 1))
	}
	if d <= 0 {
		return ctx.Err()
	}

	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
