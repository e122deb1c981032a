package middleware

import (
    "context"
    "net/http"
    "strconv"
    "time"

    "InfraPricing/internal/metrics"
    "github.com/google/uuid"
    "github.com/gorilla/mux"
    "github.com/sirupsen/logrus"
)

const RequestIDHeader = "X-Request-ID"

type ctxKey int

const requestIDKey ctxKey = iota

// RequestIDFrom returns the request ID stored by RequestID, or "".
func RequestIDFrom(ctx context.Context) string {
    id, _ := ctx.Value(requestIDKey).(string)
    return id
}

// RequestID reuses the caller's X-Request-ID or generates a new one, and
// echoes it on the response.
func RequestID(next http.Handler) http.Handler {
    return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
        id := r.Header.Get(RequestIDHeader)
        if id == "" {
            id = uuid.NewString()
        }
        w.Header().Set(RequestIDHeader, id)
        next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), requestIDKey, id)))
    })
}

// Logging writes one entry per request.
func Logging(log *logrus.Entry) mux.MiddlewareFunc {
    return func(next http.Handler) http.Handler {
        return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
            start := time.Now()
            rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
            next.ServeHTTP(rec, r)

            entry := log.WithFields(logrus.Fields{
                "request_id":  RequestIDFrom(r.Context()),
                "method":      r.Method,
                "path":        r.URL.Path,
                "status":      rec.status,
                "duration_ms": time.Since(start).Milliseconds(),
            })
            if rec.status >= http.StatusInternalServerError {
                entry.Error("request failed")
            } else {
                entry.Info("request served")
            }
        })
    }
}

// Metrics records request counts and durations by route template.
func Metrics(m *metrics.Metrics) mux.MiddlewareFunc {
    return func(next http.Handler) http.Handler {
        return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
            start := time.Now()
            rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
            next.ServeHTTP(rec, r)

            route := routeTemplate(r)
            m.HTTPRequestsTotal.WithLabelValues(r.Method, route, strconv.Itoa(rec.status)).Inc()
            m.HTTPRequestDuration.WithLabelValues(r.Method, route).Observe(time.Since(start).Seconds())
        })
    }
}

// routeTemplate keeps label cardinality bounded by using the matched route
// instead of the raw path.
func routeTemplate(r *http.Request) string {
    if route := mux.CurrentRoute(r); route != nil {
        if tpl, err := route.GetPathTemplate(); err == nil {
            return tpl
        }
    }
    return "unmatched"
}

type statusRecorder struct {
    http.ResponseWriter
    status      int
    wroteHeader bool
}

func (r *statusRecorder) WriteHeader(code int) {
    if !r.wroteHeader {
        r.status = code
        r.wroteHeader = true
    }
    r.ResponseWriter.WriteHeader(code)
}

func (r *statusRecorder) Write(b []byte) (int, error) {
    r.wroteHeader = true
    return r.ResponseWriter.Write(b)
}
