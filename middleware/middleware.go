package middleware

import (
	"context"
	"fmt"
	"net/http"
	"runtime/debug"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/nijaru/yt-brief/config"
	apperrors "github.com/nijaru/yt-brief/errors"
	"github.com/sirupsen/logrus"
	"golang.org/x/time/rate"
)

type contextKey string

const (
	TraceKey  contextKey = "trace"
	LoggerKey contextKey = "logger"
)

type TraceInfo struct {
	RequestID string
	StartTime time.Time
	UserAgent string
	RemoteIP  string
}

// Chain applies middlewares right-to-left so the first one listed is outermost.
func Chain(handler http.Handler, middlewares ...func(http.Handler) http.Handler) http.Handler {
	for i := len(middlewares) - 1; i >= 0; i-- {
		if middlewares[i] != nil {
			handler = middlewares[i](handler)
		}
	}
	return handler
}

type loggingResponseWriter struct {
	http.ResponseWriter
	statusCode   int
	responseSize int64
	wroteHeader  bool
}

func (lrw *loggingResponseWriter) WriteHeader(code int) {
	if lrw.wroteHeader {
		return
	}
	lrw.statusCode = code
	lrw.ResponseWriter.WriteHeader(code)
	lrw.wroteHeader = true
}

func (lrw *loggingResponseWriter) Write(b []byte) (int, error) {
	if !lrw.wroteHeader {
		lrw.WriteHeader(http.StatusOK)
	}
	size, err := lrw.ResponseWriter.Write(b)
	lrw.responseSize += int64(size)
	return size, err
}

func (lrw *loggingResponseWriter) Flush() {
	if f, ok := lrw.ResponseWriter.(http.Flusher); ok {
		f.Flush()
	}
}

// Logging attaches a request ID and a request-scoped logger to the context,
// recovers panics into a well-formed JSON 500, and logs request completion.
func Logging(log *logrus.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			traceInfo := &TraceInfo{
				RequestID: uuid.New().String(),
				StartTime: time.Now(),
				UserAgent: r.UserAgent(),
				RemoteIP:  r.RemoteAddr,
			}

			w.Header().Set("X-Request-ID", traceInfo.RequestID)

			logger := log.WithFields(logrus.Fields{
				"request_id": traceInfo.RequestID,
				"method":     r.Method,
				"path":       r.URL.Path,
				"remote_ip":  traceInfo.RemoteIP,
				"user_agent": traceInfo.UserAgent,
			})

			ctx := context.WithValue(r.Context(), TraceKey, traceInfo)
			ctx = context.WithValue(ctx, LoggerKey, logger)
			r = r.WithContext(ctx)

			lrw := &loggingResponseWriter{ResponseWriter: w}

			defer func() {
				if rec := recover(); rec != nil {
					err := apperrors.General("middleware.Logging", fmt.Errorf("%v", rec))
					logger.WithError(err).
						WithField("stack", string(debug.Stack())).
						Error("Panic in handler")
					lrw.Header().Set("Content-Type", "application/json")
					lrw.WriteHeader(http.StatusInternalServerError)
					fmt.Fprintf(lrw, `{"error":%q,"error_code":%q,"error_type":%q}`,
						err.Message, err.ErrorCode, err.ErrorType)
				}

				duration := time.Since(traceInfo.StartTime)
				entry := logger.WithFields(logrus.Fields{
					"status":   lrw.statusCode,
					"duration": duration,
					"size":     lrw.responseSize,
				})
				switch {
				case lrw.statusCode >= 500:
					entry.Error("Request completed with server error")
				case lrw.statusCode >= 400:
					entry.Warn("Request completed with client error")
				default:
					entry.Info("Request completed")
				}
			}()

			next.ServeHTTP(lrw, r)
		})
	}
}

// RateLimit applies a process-wide token bucket. Disabled buckets pass through.
func RateLimit(cfg config.RateLimitConfig) func(http.Handler) http.Handler {
	if !cfg.Enabled {
		return nil
	}
	limiter := rate.NewLimiter(rate.Limit(cfg.RequestsPerMinute)/60, cfg.Burst)
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !limiter.Allow() {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusTooManyRequests)
				w.Write([]byte(`{"error": "Rate limit exceeded"}`))
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func CORS(cfg config.CORSConfig) func(http.Handler) http.Handler {
	if !cfg.Enabled {
		return nil
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Access-Control-Allow-Origin", strings.Join(cfg.AllowedOrigins, ","))
			w.Header().Set("Access-Control-Allow-Methods", strings.Join(cfg.AllowedMethods, ","))
			w.Header().Set("Access-Control-Allow-Headers", strings.Join(cfg.AllowedHeaders, ","))

			if r.Method == http.MethodOptions {
				w.WriteHeader(http.StatusOK)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func GetTraceInfo(ctx context.Context) *TraceInfo {
	if trace, ok := ctx.Value(TraceKey).(*TraceInfo); ok {
		return trace
	}
	return nil
}

func GetLogger(ctx context.Context) *logrus.Entry {
	if logger, ok := ctx.Value(LoggerKey).(*logrus.Entry); ok {
		return logger
	}
	return logrus.NewEntry(logrus.StandardLogger())
}
