package api

import (
	"net/http"
	"runtime/debug"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/causify-ai/sentinel-kg/pkg/logging"
)

// requestIDHeader carries the per-request correlation id.
const requestIDHeader = "X-Request-ID"

// panicRecoveryMiddleware keeps a handler panic from killing the server.
func (s *Server) panicRecoveryMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if err := recover(); err != nil {
				s.log.Error("panic in handler",
					logging.Method(r.Method),
					logging.Path(r.URL.Path),
					logging.Field{Key: "panic", Value: err},
					logging.String("stack", string(debug.Stack())),
				)
				s.respondError(w, http.StatusInternalServerError, "Internal server error")
			}
		}()
		next.ServeHTTP(w, r)
	})
}

// requestIDMiddleware assigns a uuid to requests that lack one and echoes
// it back on the response.
func (s *Server) requestIDMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(requestIDHeader)
		if id == "" {
			id = uuid.NewString()
			r.Header.Set(requestIDHeader, id)
		}
		w.Header().Set(requestIDHeader, id)
		next.ServeHTTP(w, r)
	})
}

func (s *Server) loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		wrapper := &statusResponseWriter{ResponseWriter: w, statusCode: http.StatusOK}
		next.ServeHTTP(wrapper, r)
		s.log.Info("request",
			logging.Method(r.Method),
			logging.Path(r.URL.Path),
			logging.Status(wrapper.statusCode),
			logging.Latency(time.Since(start)),
			logging.RequestID(r.Header.Get(requestIDHeader)),
		)
	})
}

func (s *Server) corsMiddleware(next http.Handler) http.Handler {
	allowed := strings.Join(s.cfg.CORSOrigins, ", ")
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", allowed)
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, X-Request-ID")
		w.Header().Set("Access-Control-Max-Age", "3600")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// bodyLimitMiddleware rejects oversized request bodies before handlers
// read them.
func (s *Server) bodyLimitMiddleware(next http.Handler, maxBytes int64) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.ContentLength > maxBytes {
			s.respondError(w, http.StatusRequestEntityTooLarge, "Request body too large")
			return
		}
		r.Body = http.MaxBytesReader(w, r.Body, maxBytes)
		next.ServeHTTP(w, r)
	})
}

func (s *Server) metricsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		s.metrics.HTTPRequestsInFlight.Inc()
		defer s.metrics.HTTPRequestsInFlight.Dec()

		wrapper := &statusResponseWriter{ResponseWriter: w, statusCode: http.StatusOK}
		next.ServeHTTP(wrapper, r)

		s.metrics.RecordHTTPRequest(r.Method, metricPath(r.URL.Path), strconv.Itoa(wrapper.statusCode), time.Since(start))
	})
}

// metricPath collapses client-chosen path suffixes so the path label
// stays bounded.
func metricPath(path string) string {
	switch {
	case strings.HasPrefix(path, "/api/v1/chips/"):
		return "/api/v1/chips/{index}"
	case strings.HasPrefix(path, "/api/v1/info-panels/"):
		return "/api/v1/info-panels/{index}"
	}
	return path
}

// statusResponseWriter captures the status code written by a handler.
type statusResponseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (w *statusResponseWriter) WriteHeader(statusCode int) {
	w.statusCode = statusCode
	w.ResponseWriter.WriteHeader(statusCode)
}
