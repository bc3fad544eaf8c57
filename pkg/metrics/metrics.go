package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Collectors groups the benchmark metrics.
// They are registered through promauto against the registry passed to New.
type Collectors struct {
	// Latest ns/op measured per kernel and input size.
	NsPerOp *prometheus.GaugeVec
	// Runs per kernel, labeled by outcome ("ok", "error", "deviation").
	RunsTotal *prometheus.CounterVec
	// Relative deviation of the kernel result from the scalar reference.
	Deviation *prometheus.GaugeVec
	// Distribution of ns/op across runs, per kernel.
	NsPerOpHistogram *prometheus.HistogramVec
}

// New creates the collectors and registers them on reg.
func New(reg prometheus.Registerer) *Collectors {
	factory := promauto.With(reg)
	return &Collectors{
		NsPerOp: factory.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "dotbench_kernel_ns_per_op",
				Help: "Nanoseconds per kernel call in the latest run",
			},
			[]string{"kernel", "size"},
		),
		RunsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "dotbench_kernel_runs_total",
				Help: "Total number of kernel benchmark runs",
			},
			[]string{"kernel", "status"},
		),
		Deviation: factory.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "dotbench_kernel_deviation",
				Help: "Relative deviation of the kernel result from the scalar reference",
			},
			[]string{"kernel", "size"},
		),
		NsPerOpHistogram: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name: "dotbench_kernel_ns_per_op_distribution",
				Help: "Distribution of nanoseconds per kernel call",
				// From a few ns (tiny inputs) up to ~10ms (2^20 elements, slow paths).
				Buckets: prometheus.ExponentialBuckets(10, 4, 10),
			},
			[]string{"kernel"},
		),
	}
}
