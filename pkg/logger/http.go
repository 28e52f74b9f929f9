package logger

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5/middleware"
)

// skipPaths are polled by probes and would drown the request log.
var skipPaths = map[string]bool{
	"/health":  true,
	"/healthz": true,
	"/metrics": true,
}

// RequestLogger is a chi middleware logging one line per request.
func RequestLogger(log *slog.Logger) func(http.Handler) http.Handler {
	log = log.With(Scope("http"))
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if skipPaths[r.URL.Path] {
				next.ServeHTTP(w, r)
				return
			}

			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			start := time.Now()
			next.ServeHTTP(ww, r)

			status := ww.Status()
			if status == 0 {
				status = http.StatusOK
			}
			attrs := []any{
				slog.String("method", r.Method),
				slog.String("uri", r.URL.RequestURI()),
				slog.Int("status", status),
				slog.Duration("latency", time.Since(start)),
				slog.String("request_id", middleware.GetReqID(r.Context())),
				slog.String("remote_ip", r.RemoteAddr),
			}
			if status >= http.StatusInternalServerError {
				log.Error("request failed", attrs...)
				return
			}
			log.Info("request", attrs...)
		})
	}
}
