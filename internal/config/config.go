// Package config loads the benchmark driver configuration.
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/sanonone/simddot/pkg/kernel"
	"github.com/sanonone/simddot/pkg/workload"
	"gopkg.in/yaml.v3"
)

// Config describes one benchmark session.
type Config struct {
	// Input sizes, in elements. Default: [1048576] (2^20).
	Sizes []int `yaml:"sizes"`
	// Input kind: zero, ramp, random or half. Default: zero.
	Workload string `yaml:"workload"`
	// Seed for the random workloads.
	Seed int64 `yaml:"seed"`
	// Kernels to run. Empty means every kernel registered on this machine.
	Kernels []string `yaml:"kernels"`
	// If true, BLAS and Dense are skipped when Kernels is empty.
	SkipReference bool `yaml:"skip_reference"`
	// Relative tolerance when checking results against the scalar kernel.
	Tolerance float64 `yaml:"tolerance"`
	// Minimum wall time per kernel measurement. 0 keeps the testing default (1s).
	BenchTime time.Duration `yaml:"bench_time"`
	// Number of kernels measured concurrently. Default: 1.
	Parallel int `yaml:"parallel"`
	// Address for the Prometheus endpoint (e.g. ":9100"). Empty disables it.
	MetricsAddr string `yaml:"metrics_addr"`
}

// DefaultConfig mirrors the classic comparison: every kernel over a 2^20 zero buffer.
func DefaultConfig() Config {
	return Config{
		Sizes:     []int{1 << 20},
		Workload:  string(workload.Zero),
		Seed:      42,
		Tolerance: 1e-5,
		Parallel:  1,
	}
}

// LoadConfig reads the YAML configuration file using strict parsing.
// An empty path returns the defaults.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	if path == "" {
		return cfg, nil
	}

	file, err := os.Open(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to open config: %w", err)
	}
	defer file.Close()

	decoder := yaml.NewDecoder(file)
	decoder.KnownFields(true)

	if err := decoder.Decode(&cfg); err != nil {
		return cfg, fmt.Errorf("YAML syntax error in config: %w", err)
	}

	return cfg, cfg.Validate()
}

// Validate checks the configuration for values the runner cannot use.
func (c Config) Validate() error {
	var errs []error
	if len(c.Sizes) == 0 {
		errs = append(errs, errors.New("sizes: at least one size is required"))
	}
	seen := make(map[int]bool, len(c.Sizes))
	for _, s := range c.Sizes {
		if s <= 0 {
			errs = append(errs, fmt.Errorf("sizes: %d is not positive", s))
		}
		if seen[s] {
			errs = append(errs, fmt.Errorf("sizes: %d is listed more than once", s))
		}
		seen[s] = true
	}
	if _, err := workload.ParseKind(c.Workload); err != nil {
		errs = append(errs, fmt.Errorf("workload: %w", err))
	}
	for _, k := range c.Kernels {
		if _, err := kernel.ParseKernel(k); err != nil {
			errs = append(errs, fmt.Errorf("kernels: %w", err))
		}
	}
	if c.Tolerance < 0 {
		errs = append(errs, fmt.Errorf("tolerance: %g is negative", c.Tolerance))
	}
	if c.BenchTime < 0 {
		errs = append(errs, fmt.Errorf("bench_time: %s is negative", c.BenchTime))
	}
	if c.Parallel < 1 {
		errs = append(errs, fmt.Errorf("parallel: %d must be at least 1", c.Parallel))
	}
	return errors.Join(errs...)
}
