package usecase

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/3-lines-studio/folio/internal/adapters/fs"
	"github.com/3-lines-studio/folio/internal/config"
	"github.com/3-lines-studio/folio/internal/content"
	"github.com/3-lines-studio/folio/internal/markdown"
)

func TestInitProjectBlog(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "notes")
	output := &fakeOutput{}

	out := NewInitService(fs.NewOSFileSystem(), output).InitProject(InitInput{ProjectDir: dir, Author: "Ada"})
	if out.Error != nil {
		t.Fatalf("InitProject() error = %v", out.Error)
	}

	cfg, err := config.Load(dir)
	if err != nil {
		t.Fatalf("scaffolded config invalid: %v", err)
	}
	if cfg.Title != "notes" || cfg.Author != "Ada" {
		t.Errorf("config = %+v", cfg)
	}

	store, err := content.Load(context.Background(), fs.NewOSFileSystem(), filepath.Join(dir, cfg.ContentDir), markdown.New(nil, markdown.Options{}), content.LoadOptions{})
	if err != nil {
		t.Fatalf("scaffolded content invalid: %v", err)
	}
	if store.Len() != 2 {
		t.Errorf("posts = %d, want 2", store.Len())
	}
	if a, ok := store.Author("default"); !ok || a.Name != "Ada" {
		t.Errorf("default author = %+v", a)
	}

	if _, err := os.Stat(filepath.Join(dir, "folio.yaml.tmpl")); !os.IsNotExist(err) {
		t.Error("template suffix should be stripped")
	}
	if !strings.Contains(output.buf.String(), "(generated)") {
		t.Errorf("output = %q", output.buf.String())
	}
}

func TestInitProjectRejectsNonEmptyDir(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "existing"), nil, 0644); err != nil {
		t.Fatal(err)
	}

	out := NewInitService(fs.NewOSFileSystem(), &fakeOutput{}).InitProject(InitInput{ProjectDir: dir})
	if out.Error == nil || !strings.Contains(out.Error.Error(), "not empty") {
		t.Errorf("InitProject() error = %v", out.Error)
	}
}

func TestInitProjectInvalidTemplate(t *testing.T) {
	out := NewInitService(fs.NewOSFileSystem(), &fakeOutput{}).InitProject(InitInput{
		ProjectDir: filepath.Join(t.TempDir(), "x"),
		Template:   "spa",
	})
	if out.Error == nil || !strings.Contains(out.Error.Error(), "invalid template 'spa'") {
		t.Errorf("InitProject() error = %v", out.Error)
	}
}
