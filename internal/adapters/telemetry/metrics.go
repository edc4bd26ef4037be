// Package telemetry exports board load outcomes as Prometheus metrics.
package telemetry

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/bnema/neon-boards/internal/ports"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var histogramBuckets = []float64{0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2, 5, 10}

const shutdownTimeout = 5 * time.Second

type LoadMetrics struct {
	loads    *prometheus.CounterVec
	duration *prometheus.HistogramVec
}

var _ ports.LoadObserver = (*LoadMetrics)(nil)

// NewLoadMetrics registers the load collectors on reg. Collectors that are
// already registered are reused.
func NewLoadMetrics(reg prometheus.Registerer) (*LoadMetrics, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}

	loads := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "neon",
		Subsystem: "panel",
		Name:      "board_loads_total",
		Help:      "Board collection loads by outcome",
	}, []string{"outcome"})

	duration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "neon",
		Subsystem: "panel",
		Name:      "board_load_duration_seconds",
		Help:      "Latency distribution of board collection loads",
		Buckets:   histogramBuckets,
	}, []string{"outcome"})

	if err := reg.Register(loads); err != nil {
		var already prometheus.AlreadyRegisteredError
		if !errors.As(err, &already) {
			return nil, fmt.Errorf("register load counter: %w", err)
		}
		existing, ok := already.ExistingCollector.(*prometheus.CounterVec)
		if !ok {
			return nil, fmt.Errorf("register load counter: %w", err)
		}
		loads = existing
	}

	if err := reg.Register(duration); err != nil {
		var already prometheus.AlreadyRegisteredError
		if !errors.As(err, &already) {
			return nil, fmt.Errorf("register load histogram: %w", err)
		}
		existing, ok := already.ExistingCollector.(*prometheus.HistogramVec)
		if !ok {
			return nil, fmt.Errorf("register load histogram: %w", err)
		}
		duration = existing
	}

	return &LoadMetrics{loads: loads, duration: duration}, nil
}

func (m *LoadMetrics) ObserveBoardLoad(outcome ports.LoadOutcome, elapsed time.Duration) {
	labels := prometheus.Labels{"outcome": string(outcome)}
	m.loads.With(labels).Inc()
	m.duration.With(labels).Observe(elapsed.Seconds())
}

// Serve exposes gatherer on addr under /metrics until ctx is done.
func Serve(ctx context.Context, addr string, gatherer prometheus.Gatherer, log *slog.Logger) error {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}

	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))

	server := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("serving metrics", "addr", addr)
		errCh <- server.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serve metrics: %w", err)
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown metrics server: %w", err)
		}
		return nil
	}
}
