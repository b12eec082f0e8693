package usecase

import (
	"bytes"
	"context"
	"fmt"
	"testing"
	"testing/fstest"

	"github.com/3-lines-studio/folio/internal/adapters/fs"
	"github.com/3-lines-studio/folio/internal/components"
	"github.com/3-lines-studio/folio/internal/content"
	"github.com/3-lines-studio/folio/internal/core"
	"github.com/3-lines-studio/folio/internal/layouts"
	"github.com/3-lines-studio/folio/internal/markdown"
	"github.com/3-lines-studio/folio/internal/registry"
)

type staticSource struct {
	store *content.Store
}

func (s staticSource) Store() *content.Store { return s.store }

type testSite struct {
	pages    *PageService
	registry *registry.Registry
	pre      *components.Pre
}

func sampleFiles() fstest.MapFS {
	return fstest.MapFS{
		"data/blog/first.md": {Data: []byte("---\ntitle: First Post\ndate: 2024-01-01\ntags: [Go]\n---\n" +
			"Intro text.\n\n<Figure src=\"photo.png\" alt=\"Photo\" caption=\"Sunset & sea\" />\n")},
		"data/blog/second.md": {Data: []byte("---\ntitle: Second Post\ndate: 2024-02-01\ntags: [Go, Web]\nlayout: PostSimple\n---\n" +
			"<TOCInline />\n\n## Setup\n\n```go\npackage main\n```\n")},
		"data/authors/default.md": {Data: []byte("---\nname: Ada\n---\nI write things.\n")},
	}
}

func newTestSite(t *testing.T, files fstest.MapFS, postsPerPage, cacheSize int) *testSite {
	t.Helper()

	entries, err := components.Defaults(components.Options{
		ImageBasePath: "/static/images",
		Layouts:       layouts.Defaults(),
	})
	if err != nil {
		t.Fatalf("components.Defaults() error = %v", err)
	}
	reg, err := registry.NewStandard(entries)
	if err != nil {
		t.Fatalf("registry.NewStandard() error = %v", err)
	}

	pipeline := markdown.New(reg, markdown.Options{})
	store, err := content.Load(context.Background(), fs.NewReadOnlyFileSystem(files), "data", pipeline, content.LoadOptions{})
	if err != nil {
		t.Fatalf("content.Load() error = %v", err)
	}

	site := SiteInfo{
		Title:        "Test Site",
		Description:  "A test site",
		Language:     "en",
		Nav:          []core.NavLink{{Href: "/blog", Title: "Blog"}},
		Stylesheets:  []string{core.ChromaCSSPath},
		PostsPerPage: postsPerPage,
		CanonicalURL: func(p string) string { return "https://example.com" + p },
	}

	pages, err := NewPageService(reg, pipeline, staticSource{store}, site, cacheSize)
	if err != nil {
		t.Fatalf("NewPageService() error = %v", err)
	}

	pre, _ := entries[registry.NamePre].(*components.Pre)
	return &testSite{pages: pages, registry: reg, pre: pre}
}

type fakeOutput struct {
	buf bytes.Buffer
}

func (o *fakeOutput) PrintHeader(msg string) { fmt.Fprintln(&o.buf, msg) }
func (o *fakeOutput) PrintStep(emoji, msg string, args ...any) {
	fmt.Fprintf(&o.buf, msg+"\n", args...)
}
func (o *fakeOutput) PrintSuccess(msg string, args ...any) { fmt.Fprintf(&o.buf, msg+"\n", args...) }
func (o *fakeOutput) PrintWarning(msg string, args ...any) { fmt.Fprintf(&o.buf, msg+"\n", args...) }
func (o *fakeOutput) PrintError(msg string, args ...any)   { fmt.Fprintf(&o.buf, msg+"\n", args...) }
func (o *fakeOutput) PrintFile(path string)                { fmt.Fprintln(&o.buf, path) }
func (o *fakeOutput) PrintDone(msg string)                 { fmt.Fprintln(&o.buf, msg) }
