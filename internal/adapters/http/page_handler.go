package http

import (
	"html"
	"net/http"
	"strings"

	"github.com/3-lines-studio/folio/internal/core"
	"github.com/3-lines-studio/folio/internal/logging"
	"github.com/3-lines-studio/folio/internal/usecase"
)

type PageHandler struct {
	service *usecase.PageService
	mode    core.Mode
}

func NewPageHandler(service *usecase.PageService, mode core.Mode) http.Handler {
	return &PageHandler{
		service: service,
		mode:    mode,
	}
}

func (h *PageHandler) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	output := h.service.ServePage(req.Context(), usecase.ServePageInput{
		Path: req.URL.Path,
		Mode: h.mode,
	})

	if output.Error != nil {
		logging.FromContext(req.Context()).Error("page render failed", "path", req.URL.Path, "error", output.Error)
		serveError(w, http.StatusInternalServerError, output.Error, h.mode == core.ModeDev)
		return
	}
	if output.NotFound {
		serveError(w, http.StatusNotFound, nil, h.mode == core.ModeDev)
		return
	}

	if h.mode == core.ModeDev {
		w.Header().Set("Cache-Control", "no-store")
	} else {
		w.Header().Set("Cache-Control", "no-cache")
		w.Header().Set("ETag", output.ETag)
		if etagMatches(req.Header.Get("If-None-Match"), output.ETag) {
			w.WriteHeader(http.StatusNotModified)
			return
		}
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	if req.Method == http.MethodHead {
		return
	}
	_, _ = w.Write([]byte(output.HTML))
}

func etagMatches(header, etag string) bool {
	if header == "" || etag == "" {
		return false
	}
	for _, candidate := range strings.Split(header, ",") {
		candidate = strings.TrimPrefix(strings.TrimSpace(candidate), "W/")
		if candidate == "*" || candidate == etag {
			return true
		}
	}
	return false
}

func serveError(w http.ResponseWriter, status int, err error, isDev bool) {
	data := core.ErrorData{Status: status, IsDev: isDev && err != nil}
	if err != nil {
		data.Message = err.Error()
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")

	page, renderErr := core.RenderErrorPage(data)
	if renderErr != nil {
		w.WriteHeader(status)
		_, _ = w.Write([]byte("<!doctype html><html><body><pre>" + html.EscapeString(data.Message) + "</pre></body></html>"))
		return
	}

	w.WriteHeader(status)
	_, _ = w.Write([]byte(page))
}
