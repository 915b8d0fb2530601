package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// 推荐
	RecommendRequests = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "vibejewel_recommend_requests_total",
			Help: "Total number of recommendation requests",
		},
	)

	RecommendFallbacks = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "vibejewel_recommend_fallbacks_total",
			Help: "Total number of recommendations that fell back to the full catalog",
		},
		[]string{"side"}, // "celebrity", "product"
	)

	// 会话
	SessionsActive = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "vibejewel_sessions_active",
			Help: "Current number of in-memory sessions",
		},
	)

	// HTTP
	HTTPRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "vibejewel_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "route", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "vibejewel_http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route"},
	)
)

// RecordRecommendation 记录一次推荐及其回退情况
func RecordRecommendation(celebrityFallback, productFallback bool) {
	RecommendRequests.Inc()
	if celebrityFallback {
		RecommendFallbacks.WithLabelValues("celebrity").Inc()
	}
	if productFallback {
		RecommendFallbacks.WithLabelValues("product").Inc()
	}
}
