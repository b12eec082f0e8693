package folio

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"testing/fstest"
	"time"

	"github.com/3-lines-studio/folio/internal/adapters/cli"
	"github.com/3-lines-studio/folio/internal/adapters/fs"
	"github.com/3-lines-studio/folio/internal/config"
	"github.com/3-lines-studio/folio/internal/logging"
	"github.com/3-lines-studio/folio/internal/registry"
)

func writeSite(t *testing.T, files map[string]string) string {
	t.Helper()
	root := t.TempDir()
	for name, data := range files {
		file := filepath.Join(root, name)
		if err := os.MkdirAll(filepath.Dir(file), 0755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(file, []byte(data), 0644); err != nil {
			t.Fatal(err)
		}
	}
	return root
}

func sampleSite() map[string]string {
	return map[string]string{
		"data/blog/hello.md": "---\ntitle: Hello\ndate: 2024-03-01\ntags: [Intro]\n---\n" +
			"<Figure src=\"hello.png\" caption=\"Hi there\" />\n",
		"data/authors/default.md": "---\nname: Ada\n---\nAbout me.\n",
		"public/css/site.css":     "body { margin: 0; }\n",
		"public/images/hello.png": "png",
	}
}

func newApp(t *testing.T, root string, opts ...Option) *App {
	t.Helper()
	opts = append([]Option{WithConfig(mustConfig(t)), WithRoot(root), WithLogger(logging.Discard()), WithMode(ModeProd)}, opts...)
	app, err := New(opts...)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	t.Cleanup(func() { _ = app.Stop() })
	return app
}

func mustConfig(t *testing.T) Config {
	t.Helper()
	cfg, err := config.Parse([]byte("title: Test Blog\nbaseURL: https://blog.example.com\n"))
	if err != nil {
		t.Fatal(err)
	}
	return cfg
}

func serve(app *App, target string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	app.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
	return rec
}

func TestAppServesSite(t *testing.T) {
	app := newApp(t, writeSite(t, sampleSite()))

	rec := serve(app, "/blog/hello")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}
	body := rec.Body.String()
	for _, want := range []string{
		`class="figure-right"`,
		`src="/static/images/hello.png"`,
		`href="/static/css/site.css"`,
		`href="https://blog.example.com/blog/hello"`,
		"Ada",
	} {
		if !strings.Contains(body, want) {
			t.Errorf("post missing %q", want)
		}
	}

	if rec := serve(app, "/static/images/hello.png"); rec.Code != http.StatusOK {
		t.Errorf("static status = %d", rec.Code)
	}
	if rec := serve(app, "/about"); rec.Code != http.StatusOK {
		t.Errorf("about status = %d", rec.Code)
	}
}

func TestAppCustomRegistry(t *testing.T) {
	files := sampleSite()
	files["data/blog/hello.md"] = "---\ntitle: Hello\ndate: 2024-03-01\n---\n<Note>\nRead me\n</Note>\n"
	root := writeSite(t, files)

	entries, err := DefaultComponents(mustConfig(t))
	if err != nil {
		t.Fatal(err)
	}
	base, err := NewRegistry(entries)
	if err != nil {
		t.Fatal(err)
	}
	reg, err := base.With(map[string]Component{
		"Note": ComponentFunc(func(ctx context.Context, w io.Writer, props Props) error {
			_, err := io.WriteString(w, `<aside class="note">`+string(props.Children())+`</aside>`)
			return err
		}),
	})
	if err != nil {
		t.Fatal(err)
	}

	app := newApp(t, root, WithRegistry(reg))
	rec := serve(app, "/blog/hello")
	body := rec.Body.String()
	if !strings.Contains(body, `<aside class="note">`) || !strings.Contains(body, "<p>Read me</p>") {
		t.Errorf("custom component not rendered: %s", body)
	}
}

func TestAppNewFailsOnBadContent(t *testing.T) {
	files := sampleSite()
	files["data/blog/bad.md"] = "---\ntitle: Bad\nlayout: ListLayout\n---\nbody\n"
	root := writeSite(t, files)

	_, err := New(WithConfig(mustConfig(t)), WithRoot(root), WithLogger(logging.Discard()), WithMode(ModeProd))
	if err == nil || !strings.Contains(err.Error(), "ListLayout") {
		t.Errorf("New() error = %v, want layout error", err)
	}
}

func TestAppWithReadOnlyFS(t *testing.T) {
	mapFS := fstest.MapFS{}
	for name, data := range sampleSite() {
		mapFS[name] = &fstest.MapFile{Data: []byte(data)}
	}

	app, err := New(WithConfig(mustConfig(t)), WithFS(fs.NewReadOnlyFileSystem(mapFS)), WithLogger(logging.Discard()), WithMode(ModeProd))
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	defer app.Stop()

	if app.Store().Len() != 1 {
		t.Errorf("posts = %d, want 1", app.Store().Len())
	}
	if rec := serve(app, "/"); rec.Code != http.StatusOK {
		t.Errorf("home status = %d", rec.Code)
	}
}

func TestAppExport(t *testing.T) {
	root := writeSite(t, sampleSite())
	app := newApp(t, root)

	var out strings.Builder
	result := app.Export(context.Background(), cli.NewOutputTo(&out, &out))
	if result.Error != nil {
		t.Fatalf("Export() error = %v", result.Error)
	}

	for _, file := range []string{"dist/index.html", "dist/blog/hello/index.html", "dist/static/css/site.css"} {
		if _, err := os.Stat(filepath.Join(root, file)); err != nil {
			t.Errorf("missing %s: %v", file, err)
		}
	}
}

func TestAppCheck(t *testing.T) {
	files := sampleSite()
	files["data/blog/broken.md"] = "---\ntitle: Broken\ndate: 2024-01-01\n---\n<Chart />\n"
	app := newApp(t, writeSite(t, files))

	out := app.Check(context.Background())
	if len(out.Problems) != 1 || out.Problems[0].Path != "/blog/broken" {
		t.Errorf("Check() problems = %+v", out.Problems)
	}
}

func TestAppDevReload(t *testing.T) {
	root := writeSite(t, sampleSite())
	app := newApp(t, root, WithMode(ModeDev))

	if rec := serve(app, "/blog/second"); rec.Code != http.StatusNotFound {
		t.Fatalf("status before change = %d, want 404", rec.Code)
	}

	post := "---\ntitle: Second\ndate: 2024-04-01\n---\nNew post.\n"
	if err := os.WriteFile(filepath.Join(root, "data/blog/second.md"), []byte(post), 0644); err != nil {
		t.Fatal(err)
	}

	deadline := time.Now().Add(5 * time.Second)
	for time.Now().Before(deadline) {
		if serve(app, "/blog/second").Code == http.StatusOK {
			if err := app.Stop(); err != nil {
				t.Errorf("Stop() error = %v", err)
			}
			return
		}
		time.Sleep(20 * time.Millisecond)
	}
	t.Fatal("new post never served")
}

func TestAppRejectsIncompleteRegistry(t *testing.T) {
	reg, err := registry.New(map[string]Component{
		"Note": ComponentFunc(func(context.Context, io.Writer, Props) error { return nil }),
	})
	if err != nil {
		t.Fatal(err)
	}

	_, err = New(WithConfig(mustConfig(t)), WithRoot(writeSite(t, sampleSite())), WithRegistry(reg), WithLogger(logging.Discard()), WithMode(ModeProd))
	if err == nil || !strings.Contains(err.Error(), "missing standard component") {
		t.Errorf("New() error = %v", err)
	}
}

func TestPageContext(t *testing.T) {
	ctx := WithPage(context.Background(), &Page{Slug: "hello"})
	if got := PageFromContext(ctx).Slug; got != "hello" {
		t.Errorf("PageFromContext().Slug = %q", got)
	}
	if PageFromContext(context.Background()) == nil {
		t.Error("PageFromContext() should never return nil")
	}
}
