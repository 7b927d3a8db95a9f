package session

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const outcomeOK = "ok"

// Metrics is shared by every session created from the same Runtime.
type Metrics struct {
	Commands *prometheus.CounterVec
	Latency  *prometheus.HistogramVec
}

// NewMetrics registers the session collectors on reg, or on the default
// registerer when reg is nil.
func NewMetrics(namespace string, reg prometheus.Registerer) (*Metrics, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}

	commands := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "session",
		Name:      "commands_total",
		Help:      "Total number of cart commands and quotes handled, by outcome.",
	}, []string{"command", "outcome"})
	latency := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "session",
		Name:      "command_duration_seconds",
		Help:      "Time spent handling a cart command, lock wait included.",
		Buckets:   prometheus.ExponentialBuckets(0.00001, 4, 8),
	}, []string{"command"})

	for _, c := range []prometheus.Collector{commands, latency} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}
	return &Metrics{Commands: commands, Latency: latency}, nil
}

func (m *Metrics) observe(command string, start time.Time, err error) {
	if m == nil {
		return
	}
	m.Commands.WithLabelValues(command, outcome(err)).Inc()
	m.Latency.WithLabelValues(command).Observe(time.Since(start).Seconds())
}
