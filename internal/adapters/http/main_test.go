package http

import (
	"context"
	"net/http"
	"testing"
	"testing/fstest"

	"github.com/3-lines-studio/folio/internal/adapters/fs"
	"github.com/3-lines-studio/folio/internal/components"
	"github.com/3-lines-studio/folio/internal/content"
	"github.com/3-lines-studio/folio/internal/core"
	"github.com/3-lines-studio/folio/internal/layouts"
	"github.com/3-lines-studio/folio/internal/logging"
	"github.com/3-lines-studio/folio/internal/markdown"
	"github.com/3-lines-studio/folio/internal/registry"
	"github.com/3-lines-studio/folio/internal/usecase"
)

type staticSource struct {
	store *content.Store
}

func (s staticSource) Store() *content.Store { return s.store }

type memorySubscribers struct {
	emails map[string]bool
}

func (m *memorySubscribers) Add(ctx context.Context, sub core.Subscriber) error {
	if m.emails[sub.Email] {
		return core.ErrAlreadySubscribed
	}
	m.emails[sub.Email] = true
	return nil
}

func siteFiles() fstest.MapFS {
	return fstest.MapFS{
		"data/blog/first.md": {Data: []byte("---\ntitle: First Post\ndate: 2024-01-01\ntags: [Go]\n---\n" +
			"<Figure src=\"photo.png\" caption=\"A photo\" />\n")},
		"data/authors/default.md": {Data: []byte("---\nname: Ada\n---\nHi.\n")},
		"public/images/photo.png": {Data: []byte("png-bytes")},
	}
}

type testServer struct {
	handler http.Handler
	reload  *ReloadHub
	subs    *memorySubscribers
}

func newTestServer(t *testing.T, files fstest.MapFS, mode core.Mode) *testServer {
	t.Helper()

	entries, err := components.Defaults(components.Options{Layouts: layouts.Defaults()})
	if err != nil {
		t.Fatalf("components.Defaults() error = %v", err)
	}
	reg, err := registry.NewStandard(entries)
	if err != nil {
		t.Fatalf("registry.NewStandard() error = %v", err)
	}

	fsys := fs.NewReadOnlyFileSystem(files)
	pipeline := markdown.New(reg, markdown.Options{})
	store, err := content.Load(context.Background(), fsys, "data", pipeline, content.LoadOptions{})
	if err != nil {
		t.Fatalf("content.Load() error = %v", err)
	}

	pages, err := usecase.NewPageService(reg, pipeline, staticSource{store}, usecase.SiteInfo{
		Title:        "Test Site",
		PostsPerPage: 5,
	}, 16)
	if err != nil {
		t.Fatalf("NewPageService() error = %v", err)
	}

	subs := &memorySubscribers{emails: map[string]bool{}}
	hub := NewReloadHub()
	pre := entries[registry.NamePre].(*components.Pre)

	handler := NewRouter(logging.Discard(), Handlers{
		Pages:      NewPageHandler(pages, mode),
		Static:     NewStaticHandler(fsys, "public", mode == core.ModeDev),
		Stylesheet: NewStylesheetHandler(pre),
		Newsletter: NewNewsletterHandler(usecase.NewNewsletterService(subs)),
		Reload:     hub,
	})

	return &testServer{handler: handler, reload: hub, subs: subs}
}
