package middleware

import (
	"encoding/json"
	"net/http"
	"runtime"
	"sync/atomic"
	"time"
)

// Metrics stores application metrics
type Metrics struct {
	RequestsTotal      uint64
	RequestsInProgress uint64
	RequestsSuccess    uint64
	RequestsFailed     uint64
	VetsTotal          uint64
	VetsCached         uint64
	VetsFailed         uint64
	CrawlsTotal        uint64
	CrawlsEmpty        uint64
	StartTime          time.Time
}

var globalMetrics = &Metrics{
	StartTime: time.Now(),
}

// IncrementRequests increments total request counter
func IncrementRequests() {
	atomic.AddUint64(&globalMetrics.RequestsTotal, 1)
}

// IncrementVets counts vetting requests that reached the service
func IncrementVets() {
	atomic.AddUint64(&globalMetrics.VetsTotal, 1)
}

// IncrementVetsCached counts vetting requests answered from cache
func IncrementVetsCached() {
	atomic.AddUint64(&globalMetrics.VetsCached, 1)
}

// IncrementVetsFailed counts vetting requests the gateway could not serve
func IncrementVetsFailed() {
	atomic.AddUint64(&globalMetrics.VetsFailed, 1)
}

// IncrementCrawls counts crawl requests
func IncrementCrawls() {
	atomic.AddUint64(&globalMetrics.CrawlsTotal, 1)
}

// IncrementCrawlsEmpty counts crawls that produced no new projects
func IncrementCrawlsEmpty() {
	atomic.AddUint64(&globalMetrics.CrawlsEmpty, 1)
}

// GetMetrics returns current metrics
func GetMetrics() map[string]interface{} {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)

	return map[string]interface{}{
		"requests_total":       atomic.LoadUint64(&globalMetrics.RequestsTotal),
		"requests_in_progress": atomic.LoadUint64(&globalMetrics.RequestsInProgress),
		"requests_success":     atomic.LoadUint64(&globalMetrics.RequestsSuccess),
		"requests_failed":      atomic.LoadUint64(&globalMetrics.RequestsFailed),
		"vets_total":           atomic.LoadUint64(&globalMetrics.VetsTotal),
		"vets_cached":          atomic.LoadUint64(&globalMetrics.VetsCached),
		"vets_failed":          atomic.LoadUint64(&globalMetrics.VetsFailed),
		"crawls_total":         atomic.LoadUint64(&globalMetrics.CrawlsTotal),
		"crawls_empty":         atomic.LoadUint64(&globalMetrics.CrawlsEmpty),
		"uptime_seconds":       time.Since(globalMetrics.StartTime).Seconds(),
		"memory": map[string]interface{}{
			"alloc_bytes": m.Alloc,
			"sys_bytes":   m.Sys,
			"num_gc":      m.NumGC,
		},
		"goroutines": runtime.NumGoroutine(),
	}
}

// MetricsMiddleware tracks request metrics
func MetricsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		IncrementRequests()
		atomic.AddUint64(&globalMetrics.RequestsInProgress, 1)
		defer atomic.AddUint64(&globalMetrics.RequestsInProgress, ^uint64(0))

		wrapped := &responseWriter{
			ResponseWriter: w,
			statusCode:     http.StatusOK,
		}
		next.ServeHTTP(wrapped, r)

		if wrapped.statusCode >= 200 && wrapped.statusCode < 400 {
			atomic.AddUint64(&globalMetrics.RequestsSuccess, 1)
		} else {
			atomic.AddUint64(&globalMetrics.RequestsFailed, 1)
		}
	})
}

// MetricsHandler returns metrics as JSON
func MetricsHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(GetMetrics())
}
