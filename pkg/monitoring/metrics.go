package monitoring

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// HTTP request metrics
	httpRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "endpoint", "status_code"},
	)

	httpRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "endpoint"},
	)

	// Store metrics
	storeOperationsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "store_operations_total",
			Help: "Total number of persistence operations",
		},
		[]string{"operation", "entity", "status"},
	)

	storeOperationDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "store_operation_duration_seconds",
			Help:    "Duration of persistence operations in seconds",
			Buckets: []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1.0, 2.0, 5.0},
		},
		[]string{"operation", "entity"},
	)

	// Appointment lifecycle metrics
	statusTransitionsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "appointment_status_transitions_total",
			Help: "Total number of appointment status transitions",
		},
		[]string{"from", "to", "status"},
	)

	reschedulesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "appointment_reschedules_total",
			Help: "Total number of reschedule attempts",
		},
		[]string{"status"},
	)

	prescriptionRejectionsTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "prescription_duplicate_rejections_total",
			Help: "Prescription creations rejected by the linkage guard",
		},
	)
)

func init() {
	prometheus.MustRegister(
		httpRequestsTotal,
		httpRequestDuration,
		storeOperationsTotal,
		storeOperationDuration,
		statusTransitionsTotal,
		reschedulesTotal,
		prescriptionRejectionsTotal,
	)
}

// RecordStoreOperation records a persistence operation outcome
func RecordStoreOperation(operation, entity string, duration time.Duration, err error) {
	status := "success"
	if err != nil {
		status = "failed"
	}
	storeOperationsTotal.WithLabelValues(operation, entity, status).Inc()
	storeOperationDuration.WithLabelValues(operation, entity).Observe(duration.Seconds())
}

// RecordStatusTransition records an appointment status transition attempt
func RecordStatusTransition(from, to string, err error) {
	status := "success"
	if err != nil {
		status = "failed"
	}
	statusTransitionsTotal.WithLabelValues(from, to, status).Inc()
}

// RecordReschedule records a reschedule attempt outcome
func RecordReschedule(err error) {
	status := "success"
	if err != nil {
		status = "failed"
	}
	reschedulesTotal.WithLabelValues(status).Inc()
}

// RecordPrescriptionRejection counts a duplicate prescription rejection
func RecordPrescriptionRejection() {
	prescriptionRejectionsTotal.Inc()
}

// Handler returns the Prometheus metrics HTTP handler
func Handler() http.Handler {
	return promhttp.Handler()
}

// HTTPMiddleware records request count and latency per route
func HTTPMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		wrapper := &statusResponseWriter{
			ResponseWriter: w,
			statusCode:     http.StatusOK,
		}

		next.ServeHTTP(wrapper, r)

		duration := time.Since(start)
		statusCode := strconv.Itoa(wrapper.statusCode)
		httpRequestsTotal.WithLabelValues(r.Method, r.URL.Path, statusCode).Inc()
		httpRequestDuration.WithLabelValues(r.Method, r.URL.Path).Observe(duration.Seconds())
	})
}

// statusResponseWriter wraps http.ResponseWriter to capture the status code
type statusResponseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (w *statusResponseWriter) WriteHeader(code int) {
	w.statusCode = code
	w.ResponseWriter.WriteHeader(code)
}
