package middleware

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/heartmarshall/reviso-backend/internal/auth"
	"github.com/heartmarshall/reviso-backend/pkg/ctxutil"
)

// Logger logs each HTTP request with method, path, status, duration and the
// caller identity when there is one. 5xx responses are logged at Error.
func Logger(logger *slog.Logger) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			sw := &statusWriter{ResponseWriter: w, status: http.StatusOK}

			next.ServeHTTP(sw, r)

			attrs := []slog.Attr{
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
				slog.Int("status", sw.status),
				slog.Duration("duration", time.Since(start)),
				slog.String("request_id", ctxutil.RequestIDFromCtx(r.Context())),
			}
			if id := sw.identity; id != nil {
				attrs = append(attrs,
					slog.String("user_id", id.UserID.String()),
					slog.String("role", string(id.Role)),
				)
			}

			level := slog.LevelInfo
			if sw.status >= 500 {
				level = slog.LevelError
			}
			logger.LogAttrs(r.Context(), level, "http.request", attrs...)
		})
	}
}

// statusWriter captures the response status and, when Auth runs inside
// Logger, the resolved caller.
type statusWriter struct {
	http.ResponseWriter
	status      int
	wroteHeader bool
	identity    *auth.Identity
}

func (w *statusWriter) WriteHeader(code int) {
	if !w.wroteHeader {
		w.status = code
		w.wroteHeader = true
	}
	w.ResponseWriter.WriteHeader(code)
}

func (w *statusWriter) recordIdentity(id auth.Identity) {
	w.identity = &id
}

// identityRecorder is implemented by writers that want to know the caller.
type identityRecorder interface {
	recordIdentity(id auth.Identity)
}
