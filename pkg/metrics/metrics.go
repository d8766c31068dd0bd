package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	HTTPRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "flyambition", Name: "http_requests_total", Help: "HTTP requests by method, route template and status."},
		[]string{"method", "route", "status"},
	)
	HTTPDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{Namespace: "flyambition", Name: "http_request_duration_seconds", Help: "HTTP request latency.", Buckets: prometheus.DefBuckets},
		[]string{"method", "route"},
	)
	SubmissionsStored = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "flyambition", Name: "submissions_stored_total", Help: "Form submissions persisted, by form kind."},
		[]string{"kind"},
	)
	Notifications = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "flyambition", Name: "notifications_total", Help: "Notification emails by form kind and outcome."},
		[]string{"kind", "status"},
	)
	ImageRemovals = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "flyambition", Name: "image_removals_total", Help: "Best-effort uploaded image removals by outcome."},
		[]string{"status"},
	)
)

func RegisterCollectors(reg prometheus.Registerer) {
	reg.MustRegister(HTTPRequests)
	reg.MustRegister(HTTPDuration)
	reg.MustRegister(SubmissionsStored)
	reg.MustRegister(Notifications)
	reg.MustRegister(ImageRemovals)
}
