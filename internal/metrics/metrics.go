package metrics

import "github.com/prometheus/client_golang/prometheus"

type Counter interface {
	Inc(labels ...string)
}

type Counters struct {
	LogsReceived Counter

	HttpRequests Counter
}

type PrometheusCounter struct {
	counter *prometheus.CounterVec
}

func NewPrometheusCounter(name, help string, labels []string) *PrometheusCounter {
	c := &PrometheusCounter{
		counter: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: name,
			Help: help,
		}, labels),
	}
	prometheus.MustRegister(c.counter)
	return c
}

func (p *PrometheusCounter) Inc(labels ...string) {
	p.counter.WithLabelValues(labels...).Inc()
}

func New() *Counters {
	return &Counters{
		LogsReceived: NewPrometheusCounter(
			"logs_received_total",
			"Number of log entries accepted for storage",
			[]string{"level"},
		),
		HttpRequests: NewPrometheusCounter(
			"http_requests_total",
			"Number of HTTP requests served",
			[]string{"endpoint", "status"},
		),
	}
}

// NewTestCounters registers the counters against a private registry so
// parallel tests do not collide on the default one.
func NewTestCounters() *Counters {
	reg := prometheus.NewRegistry()

	logsReceived := &PrometheusCounter{
		counter: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "logs_received_total",
			Help: "Number of log entries accepted for storage",
		}, []string{"level"}),
	}

	httpRequests := &PrometheusCounter{
		counter: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Number of HTTP requests served",
		}, []string{"endpoint", "status"}),
	}

	reg.MustRegister(logsReceived.counter)
	reg.MustRegister(httpRequests.counter)

	return &Counters{
		LogsReceived: logsReceived,
		HttpRequests: httpRequests,
	}
}
