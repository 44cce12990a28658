package rpc

import (
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
)

// Outcome label values of Metrics.Requests
const (
	outcomeOK             = "ok"
	outcomeNetworkError   = "network_error"
	outcomeBadStatus      = "bad_status"
	outcomeTooLarge       = "too_large"
	outcomeInvalidRequest = "invalid_request"
)

// Metrics contains Prometheus metrics of RPC exchanges. Labels are the
// endpoint name and, for Requests, outcome of the exchange
type Metrics struct {
	Requests *prometheus.CounterVec
	Duration *prometheus.HistogramVec
}

// NewMetrics creates metrics and registers them with given registry, nil
// means prometheus.DefaultRegisterer. Metrics already registered by an
// earlier call are reused, so clients may share one registry.
func NewMetrics(registry prometheus.Registerer) (*Metrics, error) {
	if registry == nil {
		registry = prometheus.DefaultRegisterer
	}

	requests, err := register(registry, prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "chia_rpc_requests_total",
		Help: "Number of RPC requests by endpoint and outcome",
	}, []string{"endpoint", "outcome"}))
	if err != nil {
		return nil, err
	}
	duration, err := register(registry, prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "chia_rpc_request_duration_seconds",
		Help:    "Duration of RPC exchanges including reading response body",
		Buckets: prometheus.ExponentialBuckets(0.005, 4, 9),
	}, []string{"endpoint"}))
	if err != nil {
		return nil, err
	}

	return &Metrics{Requests: requests, Duration: duration}, nil
}

func register[C prometheus.Collector](registry prometheus.Registerer, collector C) (C, error) {
	err := registry.Register(collector)
	if err == nil {
		return collector, nil
	}
	var registered prometheus.AlreadyRegisteredError
	if errors.As(err, &registered) {
		if existing, ok := registered.ExistingCollector.(C); ok {
			return existing, nil
		}
	}
	return collector, errors.Wrap(err, "failed to register RPC metrics")
}

func (m *Metrics) observe(endpoint, outcome string, seconds float64) {
	if m == nil {
		return
	}
	m.Requests.WithLabelValues(endpoint, outcome).Inc()
	m.Duration.WithLabelValues(endpoint).Observe(seconds)
}
