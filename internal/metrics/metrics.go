// Package metrics exposes run counters and health checks.
//
// Counters live in a private prometheus.Registry so tests can create as
// many Metrics as they like without colliding on the default registry.
package metrics

import (
	"net/http"

	"github.com/heptiolabs/healthcheck"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	dto "github.com/prometheus/client_model/go"
)

const namespace = "bytefifo"

// Metrics groups the collectors updated by the producer and consumer.
type Metrics struct {
	Registry *prometheus.Registry

	Produced   prometheus.Counter
	Consumed   prometheus.Counter
	Reported   prometheus.Counter
	Suppressed prometheus.Counter

	depth *prometheus.GaugeVec
}

// New creates and registers all collectors.
func New() *Metrics {
	m := &Metrics{
		Registry: prometheus.NewRegistry(),
		Produced: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "produced_frames_total",
			Help:      "Frames enqueued by the producer.",
		}),
		Consumed: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "consumed_frames_total",
			Help:      "Frames dequeued and decoded by the consumer.",
		}),
		Reported: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "reported_frames_total",
			Help:      "Frames written to the output.",
		}),
		Suppressed: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "suppressed_zero_frames_total",
			Help:      "Frames that decoded to 0 and were not reported.",
		}),
		depth: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "queue_depth",
			Help:      "Last observed queue length.",
		}, []string{"unit"}),
	}
	m.Registry.MustRegister(m.Produced, m.Consumed, m.Reported, m.Suppressed, m.depth)
	return m
}

// SetDepth records the queue length in the given unit.
func (m *Metrics) SetDepth(unit string, n int) {
	m.depth.WithLabelValues(unit).Set(float64(n))
}

// Depth returns the last recorded queue length for unit.
func (m *Metrics) Depth(unit string) float64 {
	mt := &dto.Metric{}
	if err := m.depth.WithLabelValues(unit).Write(mt); err != nil {
		return 0
	}
	return mt.GetGauge().GetValue()
}

// Count reads the current value of a counter.
func Count(c prometheus.Counter) uint64 {
	mt := &dto.Metric{}
	if err := c.Write(mt); err != nil {
		return 0
	}
	return uint64(mt.GetCounter().GetValue())
}

// Handler serves /metrics from the private registry plus /live and /ready.
// ready is evaluated on each /ready request.
func (m *Metrics) Handler(ready healthcheck.Check) http.Handler {
	health := healthcheck.NewHandler()
	health.AddLivenessCheck("process", func() error { return nil })
	if ready != nil {
		health.AddReadinessCheck("running", ready)
	}

	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(m.Registry, promhttp.HandlerOpts{Registry: m.Registry}))
	mux.HandleFunc("/live", health.LiveEndpoint)
	mux.HandleFunc("/ready", health.ReadyEndpoint)
	return mux
}
