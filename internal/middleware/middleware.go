package middleware

import (
	"net/http"
	"strconv"

	"github.com/akolanti/DDRGenerator/internal/metrics"
	"github.com/akolanti/DDRGenerator/pkg/logger_i"
	"github.com/go-chi/chi/v5"
)

type requestResponseStruct struct {
	writer     http.ResponseWriter
	req        *http.Request
	badRequest failureStruct
	logger     *logger_i.Logger
}

type failureStruct struct {
	isBadRequest bool
	httpCode     int
	errorMessage string
}

type step func(requestResponseStruct) requestResponseStruct

// Wrap runs trace injection and bearer auth before next.
func Wrap(next http.HandlerFunc) http.HandlerFunc {
	return chain(next, injectTrace, authenticate)
}

// WrapRateLimited also applies the per-IP limiter, used on the expensive endpoints.
func WrapRateLimited(next http.HandlerFunc) http.HandlerFunc {
	return chain(next, injectTrace, authenticate, rateLimiter)
}

// WrapPublic only injects the trace id.
func WrapPublic(next http.HandlerFunc) http.HandlerFunc {
	return chain(next, injectTrace)
}

func chain(next http.HandlerFunc, steps ...step) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rec := &metrics.HttpStatusRecorder{ResponseWriter: w, Status: http.StatusOK} //metrics
		re := processRequest(requestResponseStruct{req: r, writer: rec}, steps)

		if re.badRequest.isBadRequest {
			handleBadRequest(re)
		} else {
			next(rec, re.req)
		}

		metrics.HttpRequestsTotal.WithLabelValues(routeLabel(r), strconv.Itoa(rec.Status)).Inc() //metrics
	}
}

func processRequest(re requestResponseStruct, steps []step) requestResponseStruct {
	re.logger = logger_i.NewLogger("middleware")
	for _, s := range steps {
		re = s(re)
		if re.badRequest.isBadRequest {
			return re
		}
	}
	re.logger.Info("New request received", "method", re.req.Method, "path", re.req.URL.Path)
	return re
}

// routeLabel keeps the metric cardinality bounded by using the chi pattern, not the raw path.
func routeLabel(r *http.Request) string {
	if rctx := chi.RouteContext(r.Context()); rctx != nil {
		if pattern := rctx.RoutePattern(); pattern != "" {
			return pattern
		}
	}
	return r.URL.Path
}
