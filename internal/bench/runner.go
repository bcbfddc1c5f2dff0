package bench

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/kolkov/socow/vec"
)

// Result summarizes one scenario run.
type Result struct {
	Scenario string
	Inline   int

	// Ops counts vector operations performed, reads excluded.
	Ops int

	// Checksum is the sum of every clone's elements after mutation. It is
	// deterministic for a given scenario.
	Checksum int64

	Elapsed time.Duration
}

// Runner executes workloads.
type Runner struct {
	// Parallel bounds how many scenarios run at once. Values below 1 mean 1.
	Parallel int

	// Logger receives per-scenario progress. Nil disables logging.
	Logger *slog.Logger
}

// Run executes every scenario of w and returns results in scenario order.
// The first failing scenario cancels the rest.
func (r *Runner) Run(ctx context.Context, w *Workload) ([]Result, error) {
	if err := w.Validate(); err != nil {
		return nil, err
	}
	log := r.Logger
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	results := make([]Result, len(w.Scenarios))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(max(r.Parallel, 1))

	for i, s := range w.Scenarios {
		g.Go(func() error {
			log.Debug("scenario started", "scenario", s.Name, "inline", s.Inline)
			res, err := RunScenario(ctx, s)
			if err != nil {
				log.Error("scenario failed", "scenario", s.Name, "error", err)
				return fmt.Errorf("scenario %s: %w", s.Name, err)
			}
			log.Info("scenario finished",
				"scenario", s.Name,
				"ops", res.Ops,
				"elapsed", res.Elapsed)
			results[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// RunScenario executes a single scenario on the calling goroutine.
func RunScenario(ctx context.Context, s Scenario) (Result, error) {
	if err := s.Validate(); err != nil {
		return Result{}, err
	}

	start := time.Now()
	var (
		ops int
		sum int64
		err error
	)
	switch s.Inline {
	case 1:
		ops, sum, err = runInline[[1]int64](ctx, s)
	case 2:
		ops, sum, err = runInline[[2]int64](ctx, s)
	case 4:
		ops, sum, err = runInline[[4]int64](ctx, s)
	case 8:
		ops, sum, err = runInline[[8]int64](ctx, s)
	case 16:
		ops, sum, err = runInline[[16]int64](ctx, s)
	case 32:
		ops, sum, err = runInline[[32]int64](ctx, s)
	case 64:
		ops, sum, err = runInline[[64]int64](ctx, s)
	}
	if err != nil {
		return Result{}, err
	}
	return Result{
		Scenario: s.Name,
		Inline:   s.Inline,
		Ops:      ops,
		Checksum: sum,
		Elapsed:  time.Since(start),
	}, nil
}

func runInline[B vec.Buffer[int64]](ctx context.Context, s Scenario) (int, int64, error) {
	want := int64(s.Elements) * int64(s.Elements-1) / 2

	var ops int
	var sum int64
	for it := 0; it < s.Iterations; it++ {
		if err := ctx.Err(); err != nil {
			return 0, 0, err
		}

		var src vec.Vector[int64, B]
		for i := 0; i < s.Elements; i++ {
			src.Push(int64(i))
		}
		ops += s.Elements

		clones := make([]*vec.Vector[int64, B], s.Clones)
		for c := range clones {
			clones[c] = src.Clone()
			ops++
		}
		for _, c := range clones {
			for m := 0; m < s.Mutations; m++ {
				mutate(c, m)
				ops++
			}
			for x := range c.Values() {
				sum += x
			}
		}

		var got int64
		for x := range src.Values() {
			got += x
		}
		if src.Len() != s.Elements || got != want {
			return 0, 0, fmt.Errorf("%w: iteration %d: len %d sum %d, want len %d sum %d",
				ErrCorrupted, it, src.Len(), got, s.Elements, want)
		}

		for _, c := range clones {
			c.Release()
		}
		src.Release()
	}
	return ops, sum, nil
}

// mutate applies the m-th write of a fixed rotation to v. v is never left
// empty, so every step has an element to work on.
func mutate[B vec.Buffer[int64]](v *vec.Vector[int64, B], m int) {
	mid := v.Len() / 2
	switch m % 5 {
	case 0:
		v.Set(mid, v.At(mid)+1)
	case 1:
		v.Insert(mid, int64(m))
	case 2:
		v.PushRef(v.Ref(0))
	case 3:
		if v.Len() > 1 {
			v.Erase(mid)
		}
	case 4:
		if v.Len() > 1 {
			v.Pop()
		}
	}
}
