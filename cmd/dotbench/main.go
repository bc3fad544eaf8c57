package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sanonone/simddot/internal/bench"
	"github.com/sanonone/simddot/internal/config"
	"github.com/sanonone/simddot/pkg/kernel"
	"github.com/sanonone/simddot/pkg/metrics"
)

func main() {
	configPath := flag.String("config", "", "Path to the YAML configuration file (defaults are used if empty)")
	metricsAddr := flag.String("metrics-addr", "", "Address for the Prometheus /metrics endpoint (e.g. :9100); keeps the process alive after the run")
	size := flag.Int("size", 0, "Input size in elements; overrides the sizes in the config file")
	workloadKind := flag.String("workload", "", "Input kind: zero, ramp, random or half; overrides the config file")
	list := flag.Bool("list", false, "List the kernels available on this machine and exit")

	flag.Parse()

	if *list {
		for _, k := range kernel.Available() {
			fmt.Printf("%-10s %s\n", k, kernel.Describe(k))
		}
		return
	}

	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if *size > 0 {
		cfg.Sizes = []int{*size}
	}
	if *workloadKind != "" {
		cfg.Workload = *workloadKind
	}
	if *metricsAddr != "" {
		cfg.MetricsAddr = *metricsAddr
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector())
	m := metrics.New(reg)

	runner, err := bench.NewRunner(cfg, m)
	if err != nil {
		log.Fatalf("Failed to create runner: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	var srv *http.Server
	if cfg.MetricsAddr != "" {
		srv = serveMetrics(cfg.MetricsAddr, reg)
	}

	report, err := runner.Run(ctx)
	if err != nil {
		slog.Error("Benchmark run aborted", "run_id", runner.RunID(), "error", err)
		os.Exit(1)
	}
	logReport(report)

	if srv == nil {
		return
	}

	// Keep /metrics up until Ctrl+C.
	<-ctx.Done()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("Metrics server shutdown failed", "error", err)
	}
}

func serveMetrics(addr string, reg *prometheus.Registry) *http.Server {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{Registry: reg}))
	srv := &http.Server{Addr: addr, Handler: mux, ReadHeaderTimeout: 5 * time.Second}

	go func() {
		slog.Info("Serving metrics", "addr", addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Metrics server failed: %v", err)
		}
	}()
	return srv
}

func logReport(report *bench.Report) {
	position, size := 0, -1
	for _, res := range report.Ranked() {
		if res.Size != size {
			position, size = 0, res.Size
		}
		position++
		slog.Info("Ranking",
			"run_id", report.RunID,
			"position", position,
			"size", res.Size,
			"kernel", string(res.Kernel),
			"impl", kernel.Describe(res.Kernel),
			"ns_per_op", fmt.Sprintf("%.1f", res.NsPerOp),
			"status", res.Status)
	}
	for _, res := range report.Failed {
		slog.Warn("Not measured",
			"run_id", report.RunID,
			"size", res.Size,
			"kernel", string(res.Kernel),
			"error", res.Err)
	}
}
