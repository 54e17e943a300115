// Copyright (c) 2026 The Pointdeck Authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

// Package metrics registers the Prometheus collectors for the room store and
// the HTTP surface, and exposes them on /metrics.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	ActiveRooms = prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "pointdeck_active_rooms",
		Help: "Current number of live rooms in the registry",
	})
	RoomsCreated = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "pointdeck_rooms_created_total",
		Help: "Total number of rooms created",
	})
	RoomsExpired = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "pointdeck_rooms_expired_total",
		Help: "Total number of rooms removed by the background sweeper",
	})
	RoomsDeleted = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "pointdeck_rooms_deleted_total",
		Help: "Total number of rooms deleted on request",
	})
	VotesCast = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "pointdeck_votes_cast_total",
		Help: "Total number of vote submissions accepted by the store",
	})
	httpRequestsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "http_requests_total",
		Help: "Total number of HTTP requests",
	}, []string{"method", "path", "status"})
	httpRequestDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "http_request_duration_seconds",
		Help:    "HTTP request duration in seconds",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "path", "status"})
)

func init() {
	prometheus.MustRegister(ActiveRooms, RoomsCreated, RoomsExpired, RoomsDeleted,
		VotesCast, httpRequestsTotal, httpRequestDuration)
}

// Handler serves the Prometheus exposition format.
func Handler() http.Handler {
	return promhttp.Handler()
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

// WithMetrics records count and duration for each request. The route pattern
// is used as the path label so IDs don't blow up cardinality.
func WithMetrics(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

		next(rec, r)

		path := r.Pattern
		if path == "" {
			path = r.URL.Path
		}
		labels := prometheus.Labels{
			"method": r.Method,
			"path":   path,
			"status": strconv.Itoa(rec.status),
		}
		httpRequestsTotal.With(labels).Inc()
		httpRequestDuration.With(labels).Observe(time.Since(start).Seconds())
	}
}
