// Package bench drives the dot product kernels over generated workloads,
// checks each result against a float64 reference, and ranks the kernels by speed.
package bench

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"slices"
	"strconv"

	"github.com/google/uuid"
	"github.com/sanonone/simddot/internal/config"
	"github.com/sanonone/simddot/pkg/kernel"
	"github.com/sanonone/simddot/pkg/metrics"
	"github.com/sanonone/simddot/pkg/workload"
	"golang.org/x/sync/errgroup"
)

// Status values recorded in the runs counter.
const (
	StatusOK        = "ok"
	StatusError     = "error"
	StatusDeviation = "deviation"
)

// Result is the outcome of one kernel on one input size.
type Result struct {
	RunID  string
	Kernel kernel.Kernel
	Size   int
	// Average nanoseconds per call. Zero when Err is set.
	NsPerOp float64
	Value   float32
	// Reference is the dot product computed in float64.
	Reference float64
	// Deviation is |Value - Reference| divided by the sum of |x*y|.
	Deviation float64
	Status    string
	Err       error

	seq int // arrival order within a Report
}

// Runner executes a benchmark session described by a config.Config.
type Runner struct {
	cfg     config.Config
	kernels []kernel.Kernel
	metrics *metrics.Collectors // optional
	runID   string
}

// NewRunner validates cfg and resolves the kernels to run. m may be nil.
func NewRunner(cfg config.Config, m *metrics.Collectors) (*Runner, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	var kernels []kernel.Kernel
	switch {
	case len(cfg.Kernels) > 0:
		for _, name := range cfg.Kernels {
			k, err := kernel.ParseKernel(name)
			if err != nil {
				return nil, err
			}
			if !slices.Contains(kernels, k) {
				kernels = append(kernels, k)
			}
		}
	case cfg.SkipReference:
		kernels = kernel.Core()
	default:
		kernels = kernel.Available()
	}

	return &Runner{
		cfg:     cfg,
		kernels: kernels,
		metrics: m,
		runID:   uuid.New().String(),
	}, nil
}

// RunID identifies this session in logs and results.
func (r *Runner) RunID() string { return r.runID }

// Kernels returns the kernels this runner will measure.
func (r *Runner) Kernels() []kernel.Kernel { return r.kernels }

// Run measures every selected kernel on every configured size. Kernel errors
// (a precondition not met, a kernel missing on this CPU) end up in the report;
// only workload generation failures and cancellation abort the run.
func (r *Runner) Run(ctx context.Context) (*Report, error) {
	kind, err := workload.ParseKind(r.cfg.Workload)
	if err != nil {
		return nil, err
	}

	slog.Info("Starting benchmark run",
		"run_id", r.runID,
		"workload", kind,
		"sizes", r.cfg.Sizes,
		"kernels", len(r.kernels),
		"parallel", r.cfg.Parallel)

	report := newReport(r.runID)
	for _, size := range r.cfg.Sizes {
		xs, ys, err := workload.Pair(kind, size, r.cfg.Seed)
		if err != nil {
			return nil, fmt.Errorf("generating %s workload of size %d: %w", kind, size, err)
		}
		ref, absSum := reference(xs, ys)

		results := make([]Result, len(r.kernels))
		g, gctx := errgroup.WithContext(ctx)
		g.SetLimit(r.cfg.Parallel)
		for i, k := range r.kernels {
			i, k := i, k
			g.Go(func() error {
				res, err := r.runOne(gctx, k, xs, ys, ref, absSum)
				results[i] = res
				return err
			})
		}
		if err := g.Wait(); err != nil {
			return nil, err
		}

		for _, res := range results {
			report.add(res)
			r.record(res)
		}
	}
	return report, nil
}

// runOne only returns an error for cancellation; kernel failures go in the Result.
func (r *Runner) runOne(ctx context.Context, k kernel.Kernel, xs, ys []float32, ref, absSum float64) (Result, error) {
	res := Result{RunID: r.runID, Kernel: k, Size: len(xs), Reference: ref}

	fn, err := kernel.Get(k)
	if err != nil {
		res.Status, res.Err = StatusError, err
		return res, nil
	}

	if res.Value, err = fn(xs, ys); err != nil {
		res.Status, res.Err = StatusError, err
		return res, nil
	}
	res.Deviation = deviation(res.Value, ref, absSum)

	res.NsPerOp, err = measure(ctx, fn, xs, ys, r.cfg.BenchTime)
	if err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return res, err
		}
		res.Status, res.Err = StatusError, err
		return res, nil
	}

	res.Status = StatusOK
	if res.Deviation > r.cfg.Tolerance {
		res.Status = StatusDeviation
	}
	return res, nil
}

func (r *Runner) record(res Result) {
	log := slog.With("run_id", res.RunID, "kernel", string(res.Kernel), "size", res.Size)
	switch res.Status {
	case StatusError:
		log.Warn("Kernel run failed", "error", res.Err)
	case StatusDeviation:
		log.Warn("Kernel result outside tolerance",
			"value", res.Value, "reference", res.Reference, "deviation", res.Deviation)
	default:
		log.Info("Kernel measured", "ns_per_op", res.NsPerOp, "value", res.Value)
	}

	if r.metrics == nil {
		return
	}
	name, size := string(res.Kernel), strconv.Itoa(res.Size)
	r.metrics.RunsTotal.WithLabelValues(name, res.Status).Inc()
	if res.Err != nil {
		return
	}
	r.metrics.NsPerOp.WithLabelValues(name, size).Set(res.NsPerOp)
	r.metrics.NsPerOpHistogram.WithLabelValues(name).Observe(res.NsPerOp)
	r.metrics.Deviation.WithLabelValues(name, size).Set(res.Deviation)
}

// reference returns the float64 dot product of xs and ys and the sum of |x*y|.
func reference(xs, ys []float32) (dot, absSum float64) {
	n := min(len(xs), len(ys))
	for i := 0; i < n; i++ {
		p := float64(xs[i]) * float64(ys[i])
		dot += p
		absSum += math.Abs(p)
	}
	return dot, absSum
}

func deviation(value float32, ref, absSum float64) float64 {
	diff := math.Abs(float64(value) - ref)
	if absSum == 0 {
		if diff == 0 {
			return 0
		}
		return math.Inf(1)
	}
	return diff / absSum
}
