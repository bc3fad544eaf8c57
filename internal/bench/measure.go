package bench

import (
	"context"
	"time"

	"github.com/sanonone/simddot/pkg/kernel"
)

const (
	defaultBenchTime = time.Second
	maxIterations    = 1e9
)

// measure calls fn repeatedly until one round of calls takes at least minTime
// and returns the average ns per call of that round. Rounds grow the same way
// the testing package grows b.N. ctx is checked between rounds.
func measure(ctx context.Context, fn kernel.Func, xs, ys []float32, minTime time.Duration) (float64, error) {
	if minTime <= 0 {
		minTime = defaultBenchTime
	}

	n := 1
	for {
		if err := ctx.Err(); err != nil {
			return 0, err
		}

		start := time.Now()
		for i := 0; i < n; i++ {
			if _, err := fn(xs, ys); err != nil {
				return 0, err
			}
		}
		elapsed := time.Since(start)

		if elapsed >= minTime || n >= maxIterations {
			return float64(elapsed.Nanoseconds()) / float64(n), nil
		}
		n = predictN(n, elapsed, minTime)
	}
}

// predictN estimates the iterations needed to fill minTime, overshooting by 20%
// and growing by at least one and at most 100x per round.
func predictN(last int, elapsed, minTime time.Duration) int {
	prevns := elapsed.Nanoseconds()
	if prevns <= 0 {
		prevns = 1
	}
	n := minTime.Nanoseconds() * int64(last) / prevns
	n += n / 5
	n = min(n, 100*int64(last))
	n = max(n, int64(last)+1)
	n = min(n, maxIterations)
	return int(n)
}
