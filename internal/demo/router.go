package demo

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/dmitrymomot/sessionkit/pkg/backend"
	"github.com/dmitrymomot/sessionkit/pkg/httpserver"
	"github.com/dmitrymomot/sessionkit/pkg/requestid"
	"github.com/dmitrymomot/sessionkit/pkg/session"
)

// NewRouter wires probes, request ids and both session namespaces in front
// of the demo endpoints.
func NewRouter(b *backend.Backend, log *slog.Logger, managers ...*session.Manager) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(requestid.Middleware)
	r.Use(middleware.Timeout(30 * time.Second))

	r.Get("/healthz", httpserver.HealthCheckHandler(log))
	r.Get("/readyz", httpserver.HealthCheckHandler(log, b.Check))

	r.Group(func(r chi.Router) {
		r.Use(session.Middleware(managers...))
		Routes(r, log)
	})

	return r
}
