// Package httptransport assembles the HTTP router: middleware stack, the
// slice handlers, and the operational endpoints.
package httptransport

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	request "contractease/pkg/platform/middleware/request"
	"contractease/pkg/platform/validation"
)

// Registrar mounts a handler's routes onto the router. Each vertical slice
// exposes one.
type Registrar interface {
	Register(r chi.Router)
}

// NewRouter wires all public endpoints with the shared middleware stack.
func NewRouter(logger *slog.Logger, requestTimeout time.Duration, metrics *request.Metrics, handlers ...Registrar) http.Handler {
	r := chi.NewRouter()

	r.Use(request.Recovery(logger))
	r.Use(request.RequestID)
	r.Use(request.Logger(logger))
	r.Use(request.Timeout(requestTimeout))
	r.Use(request.ContentTypeJSON)
	r.Use(request.BodyLimit(validation.MaxBodySize))
	if metrics != nil {
		r.Use(metrics.Instrument)
	}

	r.Handle("/metrics", promhttp.Handler())

	for _, h := range handlers {
		h.Register(r)
	}

	return r
}
