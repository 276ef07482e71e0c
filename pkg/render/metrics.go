package render

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// MetricsConfig configures render metrics.
type MetricsConfig struct {
	// Namespace is the metrics namespace (default: "htmlbuilder").
	Namespace string

	// Subsystem is the metrics subsystem (default: "render").
	Subsystem string

	// ConstLabels are constant labels added to all metrics.
	ConstLabels prometheus.Labels

	// Buckets are the histogram buckets for render duration.
	// Default: prometheus.DefBuckets
	Buckets []float64

	// Registry is the Prometheus registry to use.
	// Default: prometheus.DefaultRegisterer
	Registry prometheus.Registerer
}

// MetricsOption configures render metrics.
type MetricsOption func(*MetricsConfig)

// WithNamespace sets the metrics namespace.
func WithNamespace(namespace string) MetricsOption {
	return func(c *MetricsConfig) {
		c.Namespace = namespace
	}
}

// WithSubsystem sets the metrics subsystem.
func WithSubsystem(subsystem string) MetricsOption {
	return func(c *MetricsConfig) {
		c.Subsystem = subsystem
	}
}

// WithConstLabels sets constant labels for all metrics.
func WithConstLabels(labels prometheus.Labels) MetricsOption {
	return func(c *MetricsConfig) {
		c.ConstLabels = labels
	}
}

// WithBuckets sets the duration histogram buckets.
func WithBuckets(buckets []float64) MetricsOption {
	return func(c *MetricsConfig) {
		c.Buckets = buckets
	}
}

// WithRegistry sets the Prometheus registry.
func WithRegistry(registry prometheus.Registerer) MetricsOption {
	return func(c *MetricsConfig) {
		c.Registry = registry
	}
}

func defaultMetricsConfig() MetricsConfig {
	return MetricsConfig{
		Namespace: "htmlbuilder",
		Subsystem: "render",
		Buckets:   prometheus.DefBuckets,
		Registry:  prometheus.DefaultRegisterer,
	}
}

// Metrics holds the Prometheus collectors updated by a Renderer.
//
// Metrics collected:
//   - htmlbuilder_render_renders_total: renders by mode (pretty, compact)
//   - htmlbuilder_render_errors_total: renders that failed to write
//   - htmlbuilder_render_bytes: histogram of bytes written per render
//   - htmlbuilder_render_duration_seconds: histogram of render duration
type Metrics struct {
	rendersTotal   *prometheus.CounterVec
	renderErrors   prometheus.Counter
	renderBytes    prometheus.Histogram
	renderDuration *prometheus.HistogramVec
}

// NewMetrics registers render collectors. Registering twice against the
// same registry panics, as promauto does.
func NewMetrics(opts ...MetricsOption) *Metrics {
	config := defaultMetricsConfig()
	for _, opt := range opts {
		opt(&config)
	}
	factory := promauto.With(config.Registry)

	return &Metrics{
		rendersTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "renders_total",
			Help:        "Total number of trees rendered",
			ConstLabels: config.ConstLabels,
		}, []string{"mode"}),

		renderErrors: factory.NewCounter(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "errors_total",
			Help:        "Total number of renders that failed to write",
			ConstLabels: config.ConstLabels,
		}),

		renderBytes: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "bytes",
			Help:        "Bytes written per render",
			ConstLabels: config.ConstLabels,
			Buckets:     []float64{256, 1024, 4096, 16384, 65536, 262144, 1048576},
		}),

		renderDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "duration_seconds",
			Help:        "Render duration in seconds",
			ConstLabels: config.ConstLabels,
			Buckets:     config.Buckets,
		}, []string{"mode"}),
	}
}

func (m *Metrics) observe(mode string, n int64, d time.Duration, err error) {
	m.rendersTotal.WithLabelValues(mode).Inc()
	m.renderDuration.WithLabelValues(mode).Observe(d.Seconds())
	m.renderBytes.Observe(float64(n))
	if err != nil {
		m.renderErrors.Inc()
	}
}
