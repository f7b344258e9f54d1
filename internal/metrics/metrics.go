// Package metrics exposes engine activity as Prometheus metrics.
package metrics

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/aretw0/fsmd/pkg/domain"
	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Command outcomes.
const (
	OutcomeOK      = "ok"
	OutcomeWarning = "warning"
	OutcomeError   = "error"
)

// unknownCommand labels every unrecognized keyword so typos cannot grow the label set.
const unknownCommand = "UNKNOWN"

// Metrics holds the collectors fed by the engine hooks.
type Metrics struct {
	registry   *prometheus.Registry
	commands   *prometheus.CounterVec
	duration   *prometheus.HistogramVec
	executions *prometheus.CounterVec
}

// New creates the collectors on a private registry.
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		commands: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "fsmd_commands_total",
				Help: "Total number of processed commands",
			},
			[]string{"command", "outcome"},
		),
		duration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "fsmd_command_duration_seconds",
				Help:    "Duration of command processing",
				Buckets: prometheus.ExponentialBuckets(0.0001, 4, 8),
			},
			[]string{"command"},
		),
		executions: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "fsmd_executions_total",
				Help: "Total number of simulations by verdict",
			},
			[]string{"verdict"},
		),
	}
	m.registry.MustRegister(m.commands, m.duration, m.executions)
	return m
}

// Registry returns the registry holding the collectors.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// ObserveCommand records one processed command.
func (m *Metrics) ObserveCommand(e *domain.CommandEvent) {
	command := e.Keyword
	if !e.Known {
		command = unknownCommand
	}
	m.commands.WithLabelValues(command, outcome(e)).Inc()
	m.duration.WithLabelValues(command).Observe(e.Duration.Seconds())
}

// ObserveExecution records one simulation verdict.
func (m *Metrics) ObserveExecution(e *domain.ExecuteEvent) {
	m.executions.WithLabelValues(string(e.Verdict)).Inc()
}

func outcome(e *domain.CommandEvent) string {
	switch {
	case e.Errors > 0:
		return OutcomeError
	case e.Warnings > 0:
		return OutcomeWarning
	default:
		return OutcomeOK
	}
}

// Hooks returns engine hooks that record metrics and chain to next.
func (m *Metrics) Hooks(next domain.LifecycleHooks) domain.LifecycleHooks {
	return domain.LifecycleHooks{
		OnCommand: func(ctx context.Context, e *domain.CommandEvent) {
			m.ObserveCommand(e)
			if next.OnCommand != nil {
				next.OnCommand(ctx, e)
			}
		},
		OnExecute: func(ctx context.Context, e *domain.ExecuteEvent) {
			m.ObserveExecution(e)
			if next.OnExecute != nil {
				next.OnExecute(ctx, e)
			}
		},
	}
}

// NewHandler serves /metrics from g and a /healthz probe.
func NewHandler(g prometheus.Gatherer) http.Handler {
	r := chi.NewRouter()
	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok\n"))
	})
	r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(g, promhttp.HandlerOpts{}))
	return r
}

// Serve listens on addr until ctx is cancelled.
func Serve(ctx context.Context, addr string, h http.Handler, logger *slog.Logger) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           h,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("Metrics server listening", "addr", addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return err
		}
		if err := <-errCh; !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	}
}
