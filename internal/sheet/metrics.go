package sheet

import (
	"context"
	"errors"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// instrumented records call counts and latency for every backend operation.
type instrumented struct {
	next    Backend
	calls   *prometheus.CounterVec
	latency *prometheus.HistogramVec
}

// Instrument wraps a backend with Prometheus metrics registered on reg.
func Instrument(next Backend, reg prometheus.Registerer) Backend {
	b := &instrumented{
		next: next,
		calls: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "planner",
			Subsystem: "sheet",
			Name:      "operations_total",
			Help:      "Backend table operations by table, operation and outcome.",
		}, []string{"table", "op", "outcome"}),
		latency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "planner",
			Subsystem: "sheet",
			Name:      "operation_duration_seconds",
			Help:      "Backend table operation latency.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"table", "op"}),
	}
	reg.MustRegister(b.calls, b.latency)
	return b
}

func (b *instrumented) ReadAll(ctx context.Context, table string) (*Table, error) {
	start := time.Now()
	t, err := b.next.ReadAll(ctx, table)
	b.observe(table, "read", start, err)
	return t, err
}

func (b *instrumented) ReplaceAll(ctx context.Context, table string, t *Table) error {
	start := time.Now()
	err := b.next.ReplaceAll(ctx, table, t)
	b.observe(table, "replace", start, err)
	return err
}

func (b *instrumented) observe(table, op string, start time.Time, err error) {
	b.latency.WithLabelValues(table, op).Observe(time.Since(start).Seconds())
	b.calls.WithLabelValues(table, op, outcome(err)).Inc()
}

func outcome(err error) string {
	switch {
	case err == nil:
		return "ok"
	case errors.Is(err, ErrTableNotFound):
		return "not_found"
	case errors.Is(err, ErrWrite):
		return "write_error"
	case errors.Is(err, ErrConnection):
		return "connection_error"
	default:
		return "error"
	}
}
