package http

import (
	"bytes"
	"net/http"
	"path"
	"strings"
	"time"

	"github.com/3-lines-studio/folio/internal/core"
	"github.com/3-lines-studio/folio/internal/usecase"
)

// StaticHandler serves files under core.StaticPrefix from dir.
type StaticHandler struct {
	fs    usecase.FileSystem
	dir   string
	isDev bool
}

func NewStaticHandler(fs usecase.FileSystem, dir string, isDev bool) http.Handler {
	return &StaticHandler{
		fs:    fs,
		dir:   dir,
		isDev: isDev,
	}
}

func (h *StaticHandler) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	rel := strings.TrimPrefix(req.URL.Path, core.StaticPrefix)
	if rel == "" || strings.HasSuffix(rel, "/") {
		http.NotFound(w, req)
		return
	}

	cleaned := path.Clean("/" + rel)
	if cleaned != "/"+rel {
		http.NotFound(w, req)
		return
	}

	data, err := h.fs.ReadFile(path.Join(h.dir, cleaned))
	if err != nil {
		http.NotFound(w, req)
		return
	}

	w.Header().Set("Content-Type", core.GetContentType(cleaned))
	if h.isDev {
		w.Header().Set("Cache-Control", "no-store")
	} else {
		w.Header().Set("Cache-Control", "public, max-age=3600")
	}
	http.ServeContent(w, req, path.Base(cleaned), time.Time{}, bytes.NewReader(data))
}

// StylesheetHandler serves the code highlighting stylesheet.
type StylesheetHandler struct {
	css usecase.StylesheetWriter
}

func NewStylesheetHandler(css usecase.StylesheetWriter) http.Handler {
	return &StylesheetHandler{css: css}
}

func (h *StylesheetHandler) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	var buf bytes.Buffer
	if err := h.css.WriteCSS(&buf); err != nil {
		http.Error(w, "stylesheet unavailable", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", core.GetContentType(core.ChromaCSSPath))
	_, _ = w.Write(buf.Bytes())
}
