package prometheus

import (
	"time"

	"github.com/ninokhhh/lunacase/pkg/config"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTP request metrics
	HttpRequestsTotal   prometheus.CounterVec
	HttpRequestDuration prometheus.HistogramVec

	// Authentication metrics
	AuthAttemptsCounter prometheus.Counter
	AuthErrorsCounter   prometheus.CounterVec

	// Database operation metrics
	DbOperationDuration prometheus.HistogramVec

	// Domain operation metrics
	CartOperationsCounter     prometheus.CounterVec
	WishlistOperationsCounter prometheus.CounterVec
	CheckoutCounter           prometheus.Counter
	CheckoutErrorsCounter     prometheus.CounterVec

	// Order value distribution (in whole currency units)
	OrderTotalHistogram prometheus.Histogram
)

// InitMetrics initializes Prometheus metrics with configuration
func InitMetrics(cfg *config.Config) {
	// Use metric prefix from configuration
	prefix := cfg.Metrics.Prefix

	HttpRequestsTotal = *promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: prefix + "_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	HttpRequestDuration = *promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    prefix + "_http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path", "status"},
	)

	AuthAttemptsCounter = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: prefix + "_auth_attempts_total",
			Help: "Total number of authentication attempts",
		},
	)

	AuthErrorsCounter = *promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: prefix + "_auth_errors_total",
			Help: "Total number of authentication errors",
		},
		[]string{"type"}, // "invalid_credentials", "duplicate_email", "invalid_token", ...
	)

	DbOperationDuration = *promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    prefix + "_db_operation_duration_seconds",
			Help:    "Duration of database operations in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"operation_type"},
	)

	CartOperationsCounter = *promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: prefix + "_cart_operations_total",
			Help: "Total number of cart operations",
		},
		[]string{"operation"}, // "add", "remove", "increment", "decrement", "clear"
	)

	WishlistOperationsCounter = *promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: prefix + "_wishlist_operations_total",
			Help: "Total number of wishlist operations",
		},
		[]string{"operation"}, // "add", "remove"
	)

	CheckoutCounter = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: prefix + "_checkouts_total",
			Help: "Total number of completed checkouts",
		},
	)

	CheckoutErrorsCounter = *promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: prefix + "_checkout_errors_total",
			Help: "Total number of failed checkout attempts",
		},
		[]string{"reason"}, // "empty_cart", "missing_fields", "db_error"
	)

	OrderTotalHistogram = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    prefix + "_order_total",
			Help:    "Distribution of order totals at checkout",
			Buckets: []float64{25, 50, 100, 200, 400, 800, 1600},
		},
	)
}

// TrackDBOperation returns a function that records the duration of a database operation
func TrackDBOperation(operationType string) func(startTime time.Time) {
	return func(startTime time.Time) {
		duration := time.Since(startTime).Seconds()
		DbOperationDuration.WithLabelValues(operationType).Observe(duration)
	}
}

// RecordCartOperation increments the counter for cart operations
func RecordCartOperation(operation string) {
	CartOperationsCounter.WithLabelValues(operation).Inc()
}

// RecordWishlistOperation increments the counter for wishlist operations
func RecordWishlistOperation(operation string) {
	WishlistOperationsCounter.WithLabelValues(operation).Inc()
}

// RecordAuthError increments the counter for a class of authentication error
func RecordAuthError(errorType string) {
	AuthErrorsCounter.WithLabelValues(errorType).Inc()
}

// RecordCheckout records a completed checkout and its order total
func RecordCheckout(total int) {
	CheckoutCounter.Inc()
	OrderTotalHistogram.Observe(float64(total))
}

// RecordCheckoutError increments the counter for failed checkouts
func RecordCheckoutError(reason string) {
	CheckoutErrorsCounter.WithLabelValues(reason).Inc()
}
