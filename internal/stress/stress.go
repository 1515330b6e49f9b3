package stress

import (
	"context"
	"errors"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"versiontag/pkg/version"
)

var (
	// ErrDuplicate reports two mints that returned the same tag.
	ErrDuplicate = errors.New("duplicate tag")
	// ErrNotMonotonic reports a goroutine whose tags did not strictly increase.
	ErrNotMonotonic = errors.New("tag not newer than the previous one")
)

// MintFunc mints one tag. version.Fresh in production.
type MintFunc func() version.Tag

// Result summarizes one run.
type Result struct {
	Workers   int
	PerWorker int
	Distinct  int
	Newest    version.Tag
	Elapsed   time.Duration
}

// Total is the number of tags minted.
func (r Result) Total() int {
	return r.Workers * r.PerWorker
}

// PerSecond is the minting rate over the run.
func (r Result) PerSecond() float64 {
	if r.Elapsed <= 0 {
		return 0
	}
	return float64(r.Total()) / r.Elapsed.Seconds()
}

// Run mints perWorker tags on each of workers goroutines using version.Fresh.
func Run(ctx context.Context, workers, perWorker int) (Result, error) {
	return RunWith(ctx, workers, perWorker, version.Fresh)
}

// RunWith is Run with a custom mint function.
func RunWith(ctx context.Context, workers, perWorker int, mint MintFunc) (Result, error) {
	if workers <= 0 || perWorker <= 0 {
		return Result{}, fmt.Errorf("workers and per-worker must be positive, got %d and %d", workers, perWorker)
	}

	res := Result{Workers: workers, PerWorker: perWorker}
	out := make([][]version.Tag, workers)
	start := time.Now()

	g, ctx := errgroup.WithContext(ctx)
	for w := 0; w < workers; w++ {
		w := w
		g.Go(func() error {
			tags := make([]version.Tag, perWorker)
			for i := range tags {
				if i%1024 == 0 {
					if err := ctx.Err(); err != nil {
						return err
					}
				}
				tags[i] = mint()
				if i > 0 && tags[i].Uint64() <= tags[i-1].Uint64() {
					return fmt.Errorf("worker %d mint %d: %s after %s: %w", w, i, tags[i], tags[i-1], ErrNotMonotonic)
				}
			}
			out[w] = tags
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return res, err
	}
	res.Elapsed = time.Since(start)

	seen := make(map[version.Tag]int, workers*perWorker)
	lasts := make([]version.Tag, 0, workers)
	for w, tags := range out {
		for _, tag := range tags {
			if prev, dup := seen[tag]; dup {
				return res, fmt.Errorf("%s minted by workers %d and %d: %w", tag, prev, w, ErrDuplicate)
			}
			seen[tag] = w
		}
		lasts = append(lasts, tags[len(tags)-1])
	}
	res.Distinct = len(seen)
	res.Newest = version.MustCombine(lasts...)
	return res, nil
}
