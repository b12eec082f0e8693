package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/3-lines-studio/folio/internal/core"
	"github.com/3-lines-studio/folio/internal/logging"
)

// Handlers are mounted by NewRouter. Newsletter and Reload are optional.
type Handlers struct {
	Pages      http.Handler
	Static     http.Handler
	Stylesheet http.Handler
	Newsletter http.Handler
	Reload     http.Handler
}

func NewRouter(logger *slog.Logger, h Handlers) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(RequestLogger(logger))
	r.Use(middleware.Recoverer)

	if h.Reload != nil {
		r.Method(http.MethodGet, core.ReloadPath, h.Reload)
	}
	if h.Newsletter != nil {
		r.Method(http.MethodPost, core.NewsletterAPI, h.Newsletter)
	}
	r.Method(http.MethodGet, core.ChromaCSSPath, h.Stylesheet)
	r.Method(http.MethodGet, core.StaticPrefix+"*", h.Static)
	r.Method(http.MethodHead, core.StaticPrefix+"*", h.Static)
	r.Method(http.MethodGet, "/*", h.Pages)
	r.Method(http.MethodHead, "/*", h.Pages)

	return r
}

// RequestLogger stores a request scoped logger in the context and logs
// each response.
func RequestLogger(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			start := time.Now()
			reqLogger := logger.With("request_id", middleware.GetReqID(req.Context()))
			ww := middleware.NewWrapResponseWriter(w, req.ProtoMajor)

			next.ServeHTTP(ww, req.WithContext(logging.WithLogger(req.Context(), reqLogger)))

			if req.URL.Path == core.ReloadPath {
				return
			}
			reqLogger.Debug("request",
				"method", req.Method,
				"path", req.URL.Path,
				"status", ww.Status(),
				"bytes", ww.BytesWritten(),
				"duration", time.Since(start),
			)
		})
	}
}
