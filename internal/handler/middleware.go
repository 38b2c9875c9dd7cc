package handler

import (
	"log"
	"net/http"
	"webgui-server/internal/metrics"

	"github.com/google/uuid"
)

// responseWriter wraps http.ResponseWriter to capture the status code and
// the number of body bytes written
type responseWriter struct {
	http.ResponseWriter
	statusCode int
	bytes      int64
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}

func (rw *responseWriter) Write(b []byte) (int, error) {
	n, err := rw.ResponseWriter.Write(b)
	rw.bytes += int64(n)
	return n, err
}

// WithCORS wraps a handler so that every response, regardless of outcome,
// grants unrestricted cross-origin access. Preflight OPTIONS requests are
// answered immediately without reaching the wrapped handler.
func WithCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// Set CORS headers first so they are present on every outcome
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")

		// Handle preflight OPTIONS request
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// WithRequestLogging wraps a handler to emit one log line per handled
// request and to update the request counters. The line carries the client
// address, the request line, the response status, the bytes written and a
// correlation ID.
func WithRequestLogging(next http.Handler, m *metrics.Metrics) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		reqID := uuid.New().String()

		rw := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}
		next.ServeHTTP(rw, r)

		m.IncrementTotalRequests()
		if rw.statusCode == http.StatusNotFound {
			m.IncrementNotFoundRequests()
		}
		m.AddBytesSent(rw.bytes)

		log.Printf("🌐 %s - %q %d %d req_id=%s",
			r.RemoteAddr,
			r.Method+" "+r.URL.RequestURI()+" "+r.Proto,
			rw.statusCode,
			rw.bytes,
			reqID,
		)
	})
}
