package logger

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	dto "github.com/prometheus/client_model/go"
	"github.com/rs/zerolog"
)

// Registry holds the logger metrics. It is separate from the default
// registry so a cli run does not expose go runtime collectors.
var Registry = prometheus.NewRegistry() //nolint:gochecknoglobals

// statements counts log statements per level. Created once on first Init.
var statements *prometheus.CounterVec //nolint:gochecknoglobals

// PrometheusHook counts every written log statement by level.
type PrometheusHook struct{}

// Run implements zerolog.Hook.
func (h PrometheusHook) Run(_ *zerolog.Event, level zerolog.Level, _ string) {
	if level == zerolog.NoLevel || statements == nil {
		return
	}

	statements.WithLabelValues(level.String()).Inc()
}

// NewPrometheusHook registers the log_statements_total counter for serviceName
// on first use and returns the hook feeding it.
func NewPrometheusHook(serviceName string) PrometheusHook {
	if statements == nil {
		statements = promauto.With(Registry).NewCounterVec(
			prometheus.CounterOpts{
				Name:        "log_statements_total",
				Help:        "Number of log statements, differentiated by log level.",
				ConstLabels: prometheus.Labels{"service": serviceName},
			},
			[]string{"level"},
		)
	}

	return PrometheusHook{}
}

// Statements returns how many statements of level were logged since the first Init.
// The cli does not export metrics; this is a read accessor for tests.
func Statements(level zerolog.Level) float64 {
	if statements == nil {
		return 0
	}

	return counterValue(statements.WithLabelValues(level.String()))
}

func counterValue(c prometheus.Counter) float64 {
	var m dto.Metric
	if err := c.Write(&m); err != nil {
		return 0
	}

	return m.GetCounter().GetValue()
}
