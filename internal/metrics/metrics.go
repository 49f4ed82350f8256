// Package metrics exports fill statistics to Prometheus.
package metrics

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/go-theft-craft/tilefill/pkg/fill"
)

const namespace = "tilefill"

// Fills collects fill metrics on its own registry. It implements fill.Observer.
type Fills struct {
	registry *prometheus.Registry

	started   prometheus.Counter
	finished  *prometheus.CounterVec // by plane
	skipped   prometheus.Counter
	truncated prometheus.Counter
	blocks    prometheus.Counter
	inflight  prometheus.Gauge
	duration  prometheus.Histogram
}

// NewFills creates and registers the fill collectors.
func NewFills() *Fills {
	m := &Fills{
		registry: prometheus.NewRegistry(),
		started: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "fills_started_total",
			Help:      "Fill and replace jobs started.",
		}),
		finished: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "fills_finished_total",
			Help:      "Fill and replace jobs that wrote blocks, by plane.",
		}, []string{"plane"}),
		skipped: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "fills_skipped_total",
			Help:      "Replace jobs dropped because the face mapped to no plane.",
		}),
		truncated: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "fills_truncated_total",
			Help:      "Fills cut short by the region size cap.",
		}),
		blocks: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "blocks_written_total",
			Help:      "Blocks written by fills.",
		}),
		inflight: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "fills_inflight",
			Help:      "Fill jobs currently running.",
		}),
		duration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "fill_duration_seconds",
			Help:      "Time from job start to the last block written.",
			Buckets:   prometheus.ExponentialBuckets(0.0001, 4, 10),
		}),
	}
	m.registry.MustRegister(m.started, m.finished, m.skipped, m.truncated, m.blocks, m.inflight, m.duration)
	return m
}

func (m *Fills) FillStarted(string) {
	m.started.Inc()
	m.inflight.Inc()
}

func (m *Fills) FillFinished(r fill.Report) {
	m.inflight.Dec()
	m.duration.Observe(r.Elapsed.Seconds())
	if r.Skipped {
		m.skipped.Inc()
		return
	}
	m.finished.WithLabelValues(r.Result.Plane.String()).Inc()
	m.blocks.Add(float64(r.Result.Count()))
	if r.Result.Truncated {
		m.truncated.Inc()
	}
}

// Handler serves the registry in the Prometheus text format.
func (m *Fills) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// Serve exposes /metrics on addr until ctx is cancelled.
func (m *Fills) Serve(ctx context.Context, addr string, log *slog.Logger) error {
	mux := http.NewServeMux()
	mux.Handle("/metrics", m.Handler())

	lc := net.ListenConfig{}
	ln, err := lc.Listen(ctx, "tcp", addr)
	if err != nil {
		return fmt.Errorf("listen on %s: %w", addr, err)
	}

	srv := &http.Server{Handler: mux, ReadHeaderTimeout: 5 * time.Second}
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		srv.Shutdown(shutdownCtx)
	}()

	log.Info("metrics listening", "addr", ln.Addr().String())
	if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("serve metrics: %w", err)
	}
	return nil
}
