// Package metrics provides Prometheus metrics for the staffsight
// evaluation service.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Manager owns all Prometheus metrics for the service.
type Manager struct {
	namespace        string
	subsystem        string
	histogramBuckets []float64
	registry         prometheus.Registerer

	// Engine metrics
	evaluationsTotal  prometheus.Counter
	recordsRejected   prometheus.Counter
	recordsDuplicate  prometheus.Counter
	fieldClamps       *prometheus.CounterVec
	riskTiers         *prometheus.CounterVec
	promotionEligible prometheus.Counter
	trainingNeeded    prometheus.Counter
	leaveAlerts       prometheus.Counter
	productivityScore prometheus.Histogram
	batchSize         prometheus.Histogram

	// Output adapters
	reportsGenerated prometheus.Counter
	alertEmailsSent  prometheus.Counter

	// HTTP surface
	httpRequests        *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec

	// Process health
	systemMemory     prometheus.Gauge
	systemGoroutines prometheus.Gauge
}

// Global metrics manager instance.
var globalManager *Manager //nolint:gochecknoglobals // intentional global for singleton metrics manager

// Custom registry to avoid the default Go metrics.
var customRegistry = prometheus.NewRegistry() //nolint:gochecknoglobals // intentional global for metrics registry

func init() { //nolint:gochecknoinits // intentional init for global metrics setup
	globalManager = NewManager(WithPrometheusRegistry(customRegistry))
}

// NewManager creates a new metrics manager with default configuration.
func NewManager(opts ...Option) *Manager {
	m := &Manager{
		namespace:        "staffsight",
		subsystem:        "engine",
		histogramBuckets: prometheus.DefBuckets,
		registry:         prometheus.DefaultRegisterer,
	}

	for _, opt := range opts {
		opt(m)
	}

	m.initializeMetrics()
	return m
}

func (m *Manager) initializeMetrics() {
	auto := promauto.With(m.registry)

	m.evaluationsTotal = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "evaluations_total",
		Help:      "Total number of employee records evaluated",
	})

	m.recordsRejected = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "records_rejected_total",
		Help:      "Total number of records rejected for missing required fields",
	})

	m.recordsDuplicate = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "records_duplicate_total",
		Help:      "Total number of duplicate employee IDs skipped within batches",
	})

	m.fieldClamps = auto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      "field_clamps_total",
			Help:      "Total number of out-of-domain field values clamped, by field",
		},
		[]string{"field"},
	)

	m.riskTiers = auto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      "risk_tier_total",
			Help:      "Total number of evaluations by resignation-risk tier",
		},
		[]string{"tier"},
	)

	m.promotionEligible = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "promotion_eligible_total",
		Help:      "Total number of evaluations flagged promotion-eligible",
	})

	m.trainingNeeded = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "training_needed_total",
		Help:      "Total number of evaluations flagged as needing training",
	})

	m.leaveAlerts = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "leave_alerts_total",
		Help:      "Total number of evaluations with a sick-leave alert",
	})

	m.productivityScore = auto.NewHistogram(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "productivity_score",
		Help:      "Distribution of computed productivity scores",
		Buckets:   []float64{10, 20, 30, 40, 50, 60, 70, 80, 90, 100},
	})

	m.batchSize = auto.NewHistogram(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "batch_size",
		Help:      "Distribution of batch evaluation sizes",
		Buckets:   []float64{1, 10, 50, 100, 500, 1000, 5000, 10000},
	})

	m.reportsGenerated = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "reports_generated_total",
		Help:      "Total number of PDF reports generated",
	})

	m.alertEmailsSent = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "alert_emails_sent_total",
		Help:      "Total number of outreach emails delivered",
	})

	m.httpRequests = auto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      "http_requests_total",
			Help:      "Total number of HTTP requests by endpoint and method",
		},
		[]string{"endpoint", "method", "status_code"},
	)

	m.httpRequestDuration = auto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      "http_request_duration_milliseconds",
			Help:      "HTTP request duration in milliseconds",
			Buckets:   m.histogramBuckets,
		},
		[]string{"endpoint", "method", "status_code"},
	)

	m.systemMemory = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "system_memory_bytes",
		Help:      "Current heap allocation in bytes",
	})

	m.systemGoroutines = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "system_goroutines",
		Help:      "Current number of goroutines",
	})
}

// RecordEvaluation counts one evaluated record and observes its score.
func RecordEvaluation(score float64) {
	globalManager.evaluationsTotal.Inc()
	globalManager.productivityScore.Observe(score)
}

// RecordRejected counts a record rejected as invalid input.
func RecordRejected() {
	globalManager.recordsRejected.Inc()
}

// RecordDuplicate counts a duplicate employee ID skipped within a batch.
func RecordDuplicate() {
	globalManager.recordsDuplicate.Inc()
}

// RecordClamp counts a clamped out-of-domain field value.
func RecordClamp(field string) {
	globalManager.fieldClamps.WithLabelValues(field).Inc()
}

// RecordRiskTier counts an evaluation landing in the given risk tier.
func RecordRiskTier(tier string) {
	globalManager.riskTiers.WithLabelValues(tier).Inc()
}

// RecordPromotionEligible counts a promotion-eligible evaluation.
func RecordPromotionEligible() {
	globalManager.promotionEligible.Inc()
}

// RecordTrainingNeeded counts a training-needed evaluation.
func RecordTrainingNeeded() {
	globalManager.trainingNeeded.Inc()
}

// RecordLeaveAlert counts a sick-leave alert.
func RecordLeaveAlert() {
	globalManager.leaveAlerts.Inc()
}

// RecordBatch observes the size of a batch evaluation.
func RecordBatch(size int) {
	globalManager.batchSize.Observe(float64(size))
}

// RecordReportGenerated counts a generated PDF report.
func RecordReportGenerated() {
	globalManager.reportsGenerated.Inc()
}

// RecordAlertEmailSent counts a delivered outreach email.
func RecordAlertEmailSent() {
	globalManager.alertEmailsSent.Inc()
}

// RecordHTTPRequest records an HTTP request.
func RecordHTTPRequest(endpoint, method, statusCode string) {
	globalManager.httpRequests.WithLabelValues(endpoint, method, statusCode).Inc()
}

// RecordHTTPRequestDuration records HTTP request duration.
func RecordHTTPRequestDuration(endpoint, method, statusCode string, durationMs float64) {
	globalManager.httpRequestDuration.WithLabelValues(endpoint, method, statusCode).Observe(durationMs)
}

// UpdateSystemMemoryUsage sets the current heap allocation gauge.
func UpdateSystemMemoryUsage(bytes uint64) {
	globalManager.systemMemory.Set(float64(bytes))
}

// UpdateSystemGoroutineCount sets the goroutine count gauge.
func UpdateSystemGoroutineCount(count int) {
	globalManager.systemGoroutines.Set(float64(count))
}

// GetRegistry returns the custom Prometheus registry used by our metrics.
func GetRegistry() *prometheus.Registry {
	return customRegistry
}
