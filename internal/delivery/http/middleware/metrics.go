package middleware

import (
	"net/http"
	"time"
)

// RequestObserver records served requests.
type RequestObserver interface {
	ObserveRequest(method, route string, status int, duration time.Duration)
}

const unmatchedRoute = "unmatched"

// Metrics reports every request to observer, labelled by the ServeMux pattern that
// handled it. It must wrap the mux with the same *http.Request the mux receives,
// so no middleware between them may replace the request.
func Metrics(observer RequestObserver, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		wrapped := &responseWriter{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(wrapped, r)
		route := r.Pattern
		if route == "" {
			route = unmatchedRoute
		}
		observer.ObserveRequest(r.Method, route, wrapped.status, time.Since(start))
	})
}
