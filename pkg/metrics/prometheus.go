// Package metrics provides Prometheus metrics for the allocation service.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Manager owns all Prometheus collectors for the service.
type Manager struct {
	namespace        string
	subsystem        string
	histogramBuckets []float64
	enabled          bool
	registry         prometheus.Registerer

	// Allocation metrics - the business core
	allocationRuns    prometheus.Counter
	allocationErrors  prometheus.Counter
	allocationLatency prometheus.Histogram
	tasksAssigned     prometheus.Counter
	tasksUnassigned   prometheus.Counter
	lastEfficiency    prometheus.Gauge

	// Roster metrics
	memberCount     prometheus.Gauge
	taskCount       prometheus.Gauge
	rosterMutations *prometheus.CounterVec

	// HTTP metrics
	httpRequests        *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec
	errorsByEndpoint    *prometheus.CounterVec

	// System metrics
	systemMemoryUsage    prometheus.Gauge
	systemGoroutineCount prometheus.Gauge
}

// Global metrics manager instance.
var globalManager *Manager //nolint:gochecknoglobals // intentional global for singleton metrics manager

// Custom registry to avoid the default Go collectors.
var customRegistry = prometheus.NewRegistry() //nolint:gochecknoglobals // intentional global for metrics registry

func init() { //nolint:gochecknoinits // intentional init for global metrics setup
	globalManager = NewManager(WithPrometheusRegistry(customRegistry))
}

// NewManager creates a metrics manager with default configuration.
func NewManager(opts ...Option) *Manager {
	m := &Manager{
		namespace:        "gaffer",
		subsystem:        "allocation",
		histogramBuckets: prometheus.DefBuckets,
		enabled:          true,
		registry:         prometheus.DefaultRegisterer,
	}

	for _, opt := range opts {
		opt(m)
	}

	m.initializeMetrics()
	return m
}

func (m *Manager) initializeMetrics() {
	factory := promauto.With(m.registry)

	m.allocationRuns = factory.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "runs_total",
		Help:      "Total number of allocation runs executed",
	})
	m.allocationErrors = factory.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "errors_total",
		Help:      "Total number of allocation runs that failed",
	})
	m.allocationLatency = factory.NewHistogram(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "latency_ms",
		Help:      "Allocation run latency in milliseconds",
		Buckets:   m.histogramBuckets,
	})
	m.tasksAssigned = factory.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "tasks_assigned_total",
		Help:      "Total number of tasks assigned across all runs",
	})
	m.tasksUnassigned = factory.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "tasks_unassigned_total",
		Help:      "Total number of tasks left unassigned across all runs",
	})
	m.lastEfficiency = factory.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "last_efficiency_percent",
		Help:      "Assigned share of the most recent allocation run",
	})

	m.memberCount = factory.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: "roster",
		Name:      "members",
		Help:      "Current number of members in the roster",
	})
	m.taskCount = factory.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: "roster",
		Name:      "tasks",
		Help:      "Current number of tasks in the roster",
	})
	m.rosterMutations = factory.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: "roster",
		Name:      "mutations_total",
		Help:      "Roster mutations by entity and operation",
	}, []string{"entity", "op"})

	m.httpRequests = factory.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: "http",
		Name:      "requests_total",
		Help:      "HTTP requests by endpoint, method, and status code",
	}, []string{"endpoint", "method", "status_code"})
	m.httpRequestDuration = factory.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: "http",
		Name:      "request_duration_ms",
		Help:      "HTTP request duration in milliseconds",
		Buckets:   m.histogramBuckets,
	}, []string{"endpoint", "method"})
	m.errorsByEndpoint = factory.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: "http",
		Name:      "errors_total",
		Help:      "HTTP error responses by endpoint, method, and error type",
	}, []string{"endpoint", "method", "error_type"})

	m.systemMemoryUsage = factory.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: "system",
		Name:      "memory_bytes",
		Help:      "Current allocated heap memory in bytes",
	})
	m.systemGoroutineCount = factory.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: "system",
		Name:      "goroutines",
		Help:      "Current number of goroutines",
	})
}

// RecordAllocationRun increments the allocation run counter.
func RecordAllocationRun() {
	if globalManager != nil && globalManager.enabled {
		globalManager.allocationRuns.Inc()
	}
}

// RecordAllocationError increments the failed run counter.
func RecordAllocationError() {
	if globalManager != nil && globalManager.enabled {
		globalManager.allocationErrors.Inc()
	}
}

// RecordAllocationLatency observes the latency of an allocation run.
func RecordAllocationLatency(latencyMs float64) {
	if globalManager != nil && globalManager.enabled {
		globalManager.allocationLatency.Observe(latencyMs)
	}
}

// RecordTasksAssigned adds to the assigned task counter.
func RecordTasksAssigned(n int) {
	if globalManager != nil && globalManager.enabled {
		globalManager.tasksAssigned.Add(float64(n))
	}
}

// RecordTasksUnassigned adds to the unassigned task counter.
func RecordTasksUnassigned(n int) {
	if globalManager != nil && globalManager.enabled {
		globalManager.tasksUnassigned.Add(float64(n))
	}
}

// UpdateLastEfficiency records the efficiency of the most recent run.
func UpdateLastEfficiency(percent int) {
	if globalManager != nil && globalManager.enabled {
		globalManager.lastEfficiency.Set(float64(percent))
	}
}

// UpdateMemberCount updates the roster member gauge.
func UpdateMemberCount(count int) {
	if globalManager != nil && globalManager.enabled {
		globalManager.memberCount.Set(float64(count))
	}
}

// UpdateTaskCount updates the roster task gauge.
func UpdateTaskCount(count int) {
	if globalManager != nil && globalManager.enabled {
		globalManager.taskCount.Set(float64(count))
	}
}

// RecordRosterMutation counts a roster mutation by entity and operation.
func RecordRosterMutation(entity, op string) {
	if globalManager != nil && globalManager.enabled {
		globalManager.rosterMutations.WithLabelValues(entity, op).Inc()
	}
}

// RecordHTTPRequest counts an HTTP request.
func RecordHTTPRequest(endpoint, method, statusCode string) {
	if globalManager != nil && globalManager.enabled {
		globalManager.httpRequests.WithLabelValues(endpoint, method, statusCode).Inc()
	}
}

// RecordHTTPRequestDuration observes an HTTP request duration.
func RecordHTTPRequestDuration(endpoint, method string, durationMs float64) {
	if globalManager != nil && globalManager.enabled {
		globalManager.httpRequestDuration.WithLabelValues(endpoint, method).Observe(durationMs)
	}
}

// RecordErrorByEndpoint counts an HTTP error response.
func RecordErrorByEndpoint(endpoint, method, errorType string) {
	if globalManager != nil && globalManager.enabled {
		globalManager.errorsByEndpoint.WithLabelValues(endpoint, method, errorType).Inc()
	}
}

// UpdateSystemMemoryUsage updates the heap memory gauge.
func UpdateSystemMemoryUsage(bytes uint64) {
	if globalManager != nil && globalManager.enabled {
		globalManager.systemMemoryUsage.Set(float64(bytes))
	}
}

// UpdateSystemGoroutineCount updates the goroutine gauge.
func UpdateSystemGoroutineCount(count int) {
	if globalManager != nil && globalManager.enabled {
		globalManager.systemGoroutineCount.Set(float64(count))
	}
}

// GetRegistry returns the custom registry backing the global manager.
func GetRegistry() *prometheus.Registry {
	return customRegistry
}
