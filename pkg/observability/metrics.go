package observability

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// Outbound Adyen API metrics
	gatewayRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "adyen_gateway_requests_total",
			Help: "Total number of requests sent to Adyen APIs",
		},
		[]string{"api", "method", "status"},
	)

	gatewayRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "adyen_gateway_request_duration_seconds",
			Help:    "Duration of Adyen API requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"api", "method"},
	)

	// Inbound webhook metrics
	webhookBatchesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "webhook_batches_total",
			Help: "Total number of webhook batches received, by outcome",
		},
		[]string{"outcome"},
	)

	webhookNotificationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "webhook_notifications_total",
			Help: "Total number of individual notifications, by event code and disposition",
		},
		[]string{"event_code", "disposition"},
	)

	webhookProcessingDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "webhook_processing_duration_seconds",
			Help:    "Duration of webhook batch processing in seconds",
			Buckets: prometheus.DefBuckets,
		},
	)

	// Downstream delivery metrics
	deliveryAttemptsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "delivery_attempts_total",
			Help: "Total number of downstream delivery attempts, by sink and outcome",
		},
		[]string{"sink", "outcome"},
	)
)

// ObserveGatewayRequest records one outbound Adyen API request. A status
// of 0 means the request never produced an HTTP response.
func ObserveGatewayRequest(api, method string, status int, d time.Duration) {
	statusLabel := "error"
	if status > 0 {
		statusLabel = strconv.Itoa(status)
	}
	gatewayRequestsTotal.WithLabelValues(api, method, statusLabel).Inc()
	gatewayRequestDuration.WithLabelValues(api, method).Observe(d.Seconds())
}

// Batch outcomes
const (
	BatchAccepted = "accepted"
	BatchRejected = "rejected"
)

// ObserveWebhookBatch records the outcome and duration of one batch
func ObserveWebhookBatch(outcome string, d time.Duration) {
	webhookBatchesTotal.WithLabelValues(outcome).Inc()
	webhookProcessingDuration.Observe(d.Seconds())
}

// Notification dispositions
const (
	NotificationAccepted = "accepted"
	NotificationFiltered = "filtered"
	NotificationSkipped  = "skipped"
)

// CountNotification records the disposition of one notification item
func CountNotification(eventCode, disposition string) {
	webhookNotificationsTotal.WithLabelValues(eventCode, disposition).Inc()
}

// CountDeliveryAttempt records one downstream delivery attempt
func CountDeliveryAttempt(sink, outcome string) {
	deliveryAttemptsTotal.WithLabelValues(sink, outcome).Inc()
}
