package service

import (
	"fmt"
	"net/http"
	"runtime"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// MetricsService encapsulates Prometheus instrumentation for the API.
type MetricsService struct {
	registry        *prometheus.Registry
	handler         http.Handler
	requestDuration *prometheus.HistogramVec
	requestTotal    *prometheus.CounterVec
	sessionHits     prometheus.Counter
	sessionMisses   prometheus.Counter
	catalogDuration *prometheus.HistogramVec
	searchDuration  prometheus.Histogram
	schedulesTotal  prometheus.Counter
}

// NewMetricsService registers core Prometheus collectors.
func NewMetricsService() *MetricsService {
	registry := prometheus.NewRegistry()

	requestDuration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "http_request_duration_seconds",
		Help:    "Duration of HTTP requests in seconds",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "path", "status"})

	requestTotal := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "http_requests_total",
		Help: "Total number of HTTP requests",
	}, []string{"method", "path", "status"})

	sessionHits := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "session_hits_total",
		Help: "Total session store hits",
	})

	sessionMisses := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "session_misses_total",
		Help: "Total session store misses",
	})

	catalogDuration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "catalog_request_duration_seconds",
		Help:    "Duration of upstream catalog requests",
		Buckets: prometheus.DefBuckets,
	}, []string{"operation"})

	searchDuration := prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "schedule_search_duration_seconds",
		Help:    "Duration of schedule generation runs",
		Buckets: prometheus.DefBuckets,
	})

	schedulesTotal := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "schedules_generated_total",
		Help: "Total schedules produced across generation runs",
	})

	goroutines := prometheus.NewGaugeFunc(prometheus.GaugeOpts{
		Name: "goroutines_total",
		Help: "Total number of goroutines",
	}, func() float64 {
		return float64(runtime.NumGoroutine())
	})

	registry.MustRegister(requestDuration, requestTotal, sessionHits, sessionMisses, catalogDuration, searchDuration, schedulesTotal, goroutines)

	handler := promhttp.HandlerFor(registry, promhttp.HandlerOpts{})

	return &MetricsService{
		registry:        registry,
		handler:         handler,
		requestDuration: requestDuration,
		requestTotal:    requestTotal,
		sessionHits:     sessionHits,
		sessionMisses:   sessionMisses,
		catalogDuration: catalogDuration,
		searchDuration:  searchDuration,
		schedulesTotal:  schedulesTotal,
	}
}

// Handler exposes the Prometheus HTTP handler.
func (m *MetricsService) Handler() http.Handler {
	if m == nil {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusServiceUnavailable)
		})
	}
	return m.handler
}

// ObserveHTTPRequest records request metrics.
func (m *MetricsService) ObserveHTTPRequest(method, path string, status int, duration time.Duration) {
	if m == nil {
		return
	}
	labelStatus := fmt.Sprintf("%d", status)
	m.requestDuration.WithLabelValues(method, path, labelStatus).Observe(duration.Seconds())
	m.requestTotal.WithLabelValues(method, path, labelStatus).Inc()
}

// RecordSessionLookup tracks session store hits and misses.
func (m *MetricsService) RecordSessionLookup(hit bool) {
	if m == nil {
		return
	}
	if hit {
		m.sessionHits.Inc()
	} else {
		m.sessionMisses.Inc()
	}
}

// ObserveCatalogRequest records upstream catalog latency per operation.
func (m *MetricsService) ObserveCatalogRequest(operation string, duration time.Duration) {
	if m == nil {
		return
	}
	m.catalogDuration.WithLabelValues(operation).Observe(duration.Seconds())
}

// ObserveGeneration records a schedule generation run.
func (m *MetricsService) ObserveGeneration(duration time.Duration, produced int) {
	if m == nil {
		return
	}
	m.searchDuration.Observe(duration.Seconds())
	m.schedulesTotal.Add(float64(produced))
}
