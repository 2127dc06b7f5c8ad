package middleware

import (
	"log/slog"
	"net/http"
	"time"
)

type responseWatcher struct {
	http.ResponseWriter
	status int
	bytes  int
}

func (w *responseWatcher) WriteHeader(code int) {
	w.status = code
	w.ResponseWriter.WriteHeader(code)
}

func (w *responseWatcher) Write(p []byte) (int, error) {
	n, err := w.ResponseWriter.Write(p)
	w.bytes += n
	return n, err
}

// Logger emits one structured line per request through the same slog
// pipeline the domain services log to. Response size matters here because
// payslip downloads go through this handler chain too.
func Logger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		watcher := &responseWatcher{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(watcher, r)

		slog.Info("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", watcher.status,
			"bytes", watcher.bytes,
			"durationMs", time.Since(start).Milliseconds(),
			"requestId", GetRequestID(r.Context()),
		)
	})
}
