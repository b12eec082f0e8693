package fs

import (
	"context"
	"errors"
	iofs "io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"testing/fstest"
	"time"

	"github.com/3-lines-studio/folio/internal/core"
)

func TestReadOnlyFileSystem(t *testing.T) {
	fsys := NewReadOnlyFileSystem(fstest.MapFS{
		"data/blog/a.md": {Data: []byte("a")},
	})

	data, err := fsys.ReadFile("data/blog/a.md")
	if err != nil || string(data) != "a" {
		t.Errorf("ReadFile() = %q, %v", data, err)
	}
	if !fsys.FileExists("data/blog") || fsys.FileExists("data/missing") {
		t.Error("FileExists() mismatch")
	}

	var walked []string
	err = fsys.WalkDir("data", func(path string, d iofs.DirEntry, err error) error {
		if err == nil && !d.IsDir() {
			walked = append(walked, path)
		}
		return err
	})
	if err != nil || len(walked) != 1 || walked[0] != "data/blog/a.md" {
		t.Errorf("WalkDir() = %v, %v", walked, err)
	}

	if err := fsys.WriteFile("x", nil, 0644); !errors.Is(err, ErrReadOnly) {
		t.Errorf("WriteFile() error = %v, want ErrReadOnly", err)
	}
	if err := fsys.CopyFile("data/blog/a.md", "out/a.md"); !errors.Is(err, ErrReadOnly) {
		t.Errorf("CopyFile() error = %v, want ErrReadOnly", err)
	}
}

func TestOSFileSystemCopyFile(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "public", "run.sh")
	if err := os.MkdirAll(filepath.Dir(src), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(src, []byte("#!/bin/sh\n"), 0755); err != nil {
		t.Fatal(err)
	}

	fsys := NewOSFileSystem()
	dst := filepath.Join(dir, "dist", "static", "run.sh")
	if err := fsys.CopyFile(src, dst); err != nil {
		t.Fatalf("CopyFile() error = %v", err)
	}

	data, err := os.ReadFile(dst)
	if err != nil || string(data) != "#!/bin/sh\n" {
		t.Errorf("copied file = %q, %v", data, err)
	}
	info, err := os.Stat(dst)
	if err != nil {
		t.Fatal(err)
	}
	if info.Mode().Perm() != 0755 {
		t.Errorf("mode = %v, want 0755", info.Mode().Perm())
	}

	if err := fsys.CopyFile(filepath.Join(dir, "public"), filepath.Join(dir, "x")); err == nil {
		t.Error("expected error copying a directory")
	}
	if err := fsys.CopyFile(filepath.Join(dir, "missing"), filepath.Join(dir, "y")); !errors.Is(err, iofs.ErrNotExist) {
		t.Errorf("CopyFile(missing) error = %v, want ErrNotExist", err)
	}
}

func TestSubscriberFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "subscribers.jsonl")
	store := NewSubscriberFile(NewOSFileSystem(), path)
	ctx := context.Background()
	at := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)

	if err := store.Add(ctx, core.Subscriber{Email: "a@example.com", SubscribedAt: at}); err != nil {
		t.Fatalf("Add() error = %v", err)
	}
	if err := store.Add(ctx, core.Subscriber{Email: "b@example.com", SubscribedAt: at}); err != nil {
		t.Fatalf("Add() error = %v", err)
	}
	if err := store.Add(ctx, core.Subscriber{Email: "a@example.com", SubscribedAt: at}); !errors.Is(err, core.ErrAlreadySubscribed) {
		t.Fatalf("Add() duplicate error = %v, want ErrAlreadySubscribed", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	if len(lines) != 2 || lines[0] != `{"email":"a@example.com","subscribedAt":"2024-01-02T03:04:05Z"}` {
		t.Errorf("file contents = %q", data)
	}

	reopened := NewSubscriberFile(NewOSFileSystem(), path)
	if err := reopened.Add(ctx, core.Subscriber{Email: "b@example.com"}); !errors.Is(err, core.ErrAlreadySubscribed) {
		t.Errorf("reopened store should know existing subscribers, got %v", err)
	}
	subs, err := reopened.List()
	if err != nil || len(subs) != 2 {
		t.Errorf("List() = %v, %v", subs, err)
	}
}

func TestSubscriberFileCorrupt(t *testing.T) {
	path := filepath.Join(t.TempDir(), "subscribers.jsonl")
	if err := os.WriteFile(path, []byte("{not json}\n"), 0600); err != nil {
		t.Fatal(err)
	}

	store := NewSubscriberFile(NewOSFileSystem(), path)
	if err := store.Add(context.Background(), core.Subscriber{Email: "a@example.com"}); err == nil {
		t.Fatal("expected error for corrupt file")
	}
}
