// Package folio serves a markdown blog whose pages are assembled from a
// registry of named components.
package folio

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net"
	"net/http"
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"
	"time"

	"github.com/3-lines-studio/folio/internal/adapters/env"
	"github.com/3-lines-studio/folio/internal/adapters/fs"
	fhttp "github.com/3-lines-studio/folio/internal/adapters/http"
	"github.com/3-lines-studio/folio/internal/adapters/watch"
	"github.com/3-lines-studio/folio/internal/components"
	"github.com/3-lines-studio/folio/internal/config"
	"github.com/3-lines-studio/folio/internal/content"
	"github.com/3-lines-studio/folio/internal/core"
	"github.com/3-lines-studio/folio/internal/layouts"
	"github.com/3-lines-studio/folio/internal/logging"
	"github.com/3-lines-studio/folio/internal/markdown"
	"github.com/3-lines-studio/folio/internal/registry"
	"github.com/3-lines-studio/folio/internal/types"
	"github.com/3-lines-studio/folio/internal/usecase"
)

type Props = types.Props

type Component = types.Component

type ComponentFunc = types.ComponentFunc

type Registry = registry.Registry

// Page is the document-scope data components read from their context.
type Page = types.Page

type Config = config.Config

type Mode = core.Mode

const (
	ModeProd = core.ModeProd
	ModeDev  = core.ModeDev
)

const (
	siteStylesheet  = "css/site.css"
	shutdownTimeout = 5 * time.Second
)

func WithPage(ctx context.Context, page *Page) context.Context {
	return types.WithPage(ctx, page)
}

func PageFromContext(ctx context.Context) *Page {
	return types.PageFromContext(ctx)
}

// NewRegistry builds a registry that must contain every standard name.
func NewRegistry(entries map[string]Component) (*Registry, error) {
	return registry.NewStandard(entries)
}

// DefaultComponents returns the standard components configured from cfg.
func DefaultComponents(cfg Config) (map[string]Component, error) {
	return components.Defaults(components.Options{
		ImageBasePath: cfg.ImageBasePath,
		CodeStyle:     cfg.CodeStyle,
		NewsletterAPI: core.NewsletterAPI,
		Layouts:       layouts.Defaults(),
	})
}

type Option func(*App)

func WithConfig(cfg Config) Option {
	return func(a *App) { a.cfg = cfg }
}

func WithRegistry(reg *Registry) Option {
	return func(a *App) { a.reg = reg }
}

func WithLogger(logger *slog.Logger) Option {
	return func(a *App) { a.logger = logger }
}

// WithFS replaces the OS filesystem used for content, static files and
// exports.
func WithFS(fsys fs.FileSystem) Option {
	return func(a *App) { a.fs = fsys }
}

// WithMode overrides the FOLIO_DEV environment detection.
func WithMode(mode Mode) Option {
	return func(a *App) {
		a.mode = mode
		a.modeSet = true
	}
}

// WithRoot resolves the configured directories against root.
func WithRoot(root string) Option {
	return func(a *App) { a.root = root }
}

type App struct {
	cfg     Config
	reg     *Registry
	logger  *slog.Logger
	fs      fs.FileSystem
	mode    Mode
	modeSet bool
	root    string

	pipeline *markdown.Pipeline
	css      usecase.StylesheetWriter
	store    atomic.Pointer[content.Store]
	pages    *usecase.PageService
	handler  http.Handler
	hub      *fhttp.ReloadHub

	stopWatch context.CancelFunc
	watchDone chan struct{}
	stopOnce  sync.Once
}

func New(opts ...Option) (*App, error) {
	app := &App{cfg: config.Default()}
	for _, opt := range opts {
		opt(app)
	}

	if err := app.cfg.Validate(); err != nil {
		return nil, err
	}
	if !app.modeSet {
		app.mode = env.DetectMode()
	}
	if app.logger == nil {
		app.logger = logging.New(app.cfg.Log.Level, app.cfg.Log.Format, os.Stderr)
	}
	if app.fs == nil {
		app.fs = fs.NewOSFileSystem()
	}

	if app.reg == nil {
		entries, err := DefaultComponents(app.cfg)
		if err != nil {
			return nil, err
		}
		if app.reg, err = registry.NewStandard(entries); err != nil {
			return nil, err
		}
	}

	for _, name := range registry.StandardNames {
		if _, ok := app.reg.Lookup(name); !ok {
			return nil, fmt.Errorf("registry is missing standard component %q", name)
		}
	}

	app.css = components.NewPre(app.cfg.CodeStyle)
	if css, ok := app.reg.MustLookup(registry.NamePre).(usecase.StylesheetWriter); ok {
		app.css = css
	}

	app.pipeline = markdown.New(app.reg, markdown.Options{Unsafe: app.cfg.UnsafeHTML})

	ctx := logging.WithLogger(context.Background(), app.logger)
	if err := app.Reload(ctx); err != nil {
		return nil, err
	}

	pages, err := usecase.NewPageService(app.reg, app.pipeline, app, app.siteInfo(), app.cacheSize())
	if err != nil {
		return nil, err
	}
	app.pages = pages

	subscribers := fs.NewSubscriberFile(app.fs, app.path(app.cfg.NewsletterFile))
	handlers := fhttp.Handlers{
		Pages:      fhttp.NewPageHandler(pages, app.mode),
		Static:     fhttp.NewStaticHandler(app.fs, app.path(app.cfg.StaticDir), app.mode == ModeDev),
		Stylesheet: fhttp.NewStylesheetHandler(app.css),
		Newsletter: fhttp.NewNewsletterHandler(usecase.NewNewsletterService(subscribers)),
	}

	if app.mode == ModeDev {
		app.hub = fhttp.NewReloadHub()
		handlers.Reload = app.hub
		if err := app.startWatch(); err != nil {
			return nil, err
		}
	}

	app.handler = fhttp.NewRouter(app.logger, handlers)
	return app, nil
}

func (a *App) Handler() http.Handler {
	return a.handler
}

func (a *App) Config() Config {
	return a.cfg
}

func (a *App) Mode() Mode {
	return a.mode
}

func (a *App) Logger() *slog.Logger {
	return a.logger
}

// Store returns the content currently being served.
func (a *App) Store() *content.Store {
	return a.store.Load()
}

// Reload re-reads the content directory and swaps it in. On error the
// previous content keeps being served.
func (a *App) Reload(ctx context.Context) error {
	store, err := content.Load(ctx, a.fs, a.path(a.cfg.ContentDir), a.pipeline, content.LoadOptions{Drafts: a.cfg.Drafts})
	if err != nil {
		return fmt.Errorf("load content: %w", err)
	}

	a.store.Store(store)
	if a.pages != nil {
		a.pages.Purge()
	}

	logging.FromContext(ctx).Info("content loaded", "posts", store.Len(), "authors", len(store.Authors()))
	return nil
}

// Export writes the whole site to the configured output directory.
func (a *App) Export(ctx context.Context, cli usecase.CLIOutput) usecase.ExportOutput {
	svc := usecase.NewExportService(a.pages, a.css, a.fs, cli)
	return svc.Export(logging.WithLogger(ctx, a.logger), usecase.ExportInput{
		OutDir:    a.path(a.cfg.OutDir),
		StaticDir: a.path(a.cfg.StaticDir),
		Minify:    a.cfg.MinifyEnabled(),
	})
}

// Check renders every page and reports the failures.
func (a *App) Check(ctx context.Context) usecase.CheckOutput {
	return a.pages.Check(logging.WithLogger(ctx, a.logger))
}

// Stop releases the dev watcher. It is safe to call more than once.
func (a *App) Stop() error {
	a.stopOnce.Do(func() {
		if a.stopWatch != nil {
			a.stopWatch()
			<-a.watchDone
		}
	})
	return nil
}

func (a *App) startWatch() error {
	w, err := watch.New(watch.DefaultDelay, a.path(a.cfg.ContentDir), a.path(a.cfg.StaticDir))
	if err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(logging.WithLogger(context.Background(), a.logger))
	a.stopWatch = cancel
	a.watchDone = make(chan struct{})

	go func() {
		defer close(a.watchDone)
		_ = w.Run(ctx, func(evs watch.Events) {
			a.logger.Debug("change detected", "paths", evs.Paths())
			if err := a.Reload(ctx); err != nil {
				a.logger.Error("reload failed", "error", err)
				return
			}
			a.hub.Broadcast()
		})
	}()

	a.logger.Info("watching for changes", "dirs", w.Dirs())
	return nil
}

func (a *App) siteInfo() usecase.SiteInfo {
	stylesheets := []string{core.ChromaCSSPath}
	if a.fs.FileExists(a.path(filepath.Join(a.cfg.StaticDir, siteStylesheet))) {
		stylesheets = append(stylesheets, core.StaticPrefix+siteStylesheet)
	}

	return usecase.SiteInfo{
		Title:        a.cfg.Title,
		Description:  a.cfg.Description,
		Language:     a.cfg.Language,
		Nav:          a.cfg.NavLinks(),
		Stylesheets:  stylesheets,
		PostsPerPage: a.cfg.PostsPerPage,
		CanonicalURL: a.cfg.CanonicalURL,
	}
}

func (a *App) cacheSize() int {
	if a.mode == ModeDev {
		return 0
	}
	return a.cfg.CacheSize
}

func (a *App) path(rel string) string {
	if a.root == "" || filepath.IsAbs(rel) {
		return rel
	}
	return filepath.Join(a.root, rel)
}

// Serve listens on the configured address until ctx is done. Request
// contexts derive from ctx so open reload streams end with it.
func (a *App) Serve(ctx context.Context, out io.Writer) error {
	srv := &http.Server{
		Addr:              a.cfg.Addr,
		Handler:           a.handler,
		ReadHeaderTimeout: 10 * time.Second,
		BaseContext:       func(net.Listener) context.Context { return ctx },
	}

	errCh := make(chan error, 1)
	go func() { errCh <- srv.ListenAndServe() }()
	_, _ = fmt.Fprintf(out, "Serving %s on http://localhost%s (%s)\n", a.cfg.Title, a.cfg.Addr, a.mode)

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}
