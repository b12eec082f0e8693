package content

import (
	"context"
	"errors"
	"fmt"
	iofs "io/fs"
	"path"
	"strings"

	"github.com/3-lines-studio/folio/internal/core"
	"github.com/3-lines-studio/folio/internal/logging"
	"github.com/3-lines-studio/folio/internal/markdown"
)

const (
	BlogDir    = "blog"
	AuthorsDir = "authors"
)

type FileSystem interface {
	ReadFile(path string) ([]byte, error)
	WalkDir(root string, fn iofs.WalkDirFunc) error
}

type Parser interface {
	Parse(source []byte) (*markdown.Document, error)
}

type LoadOptions struct {
	Drafts bool
}

// Load reads posts from dir/blog and authors from dir/authors. Every file
// is validated before the store is returned; all problems are reported
// together.
func Load(ctx context.Context, fsys FileSystem, dir string, parser Parser, opts LoadOptions) (*Store, error) {
	logger := logging.FromContext(ctx)

	var (
		docs    []*Document
		authors []*Author
		errs    []error
	)

	blogDir := path.Join(dir, BlogDir)
	err := walkContent(ctx, fsys, blogDir, func(file, rel string, source []byte) {
		parsed, err := parser.Parse(source)
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", file, err))
			return
		}

		doc, err := newDocument(file, core.SlugForPath(rel), parsed)
		if err != nil {
			errs = append(errs, err)
			return
		}
		if doc.Draft && !opts.Drafts {
			logger.Debug("skipping draft", "path", file)
			return
		}

		doc.Source = source
		docs = append(docs, doc)
	})
	if err != nil {
		return nil, err
	}

	authorsDir := path.Join(dir, AuthorsDir)
	err = walkContent(ctx, fsys, authorsDir, func(file, rel string, source []byte) {
		parsed, err := parser.Parse(source)
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", file, err))
			return
		}

		author, err := newAuthor(file, core.SlugForPath(rel), parsed)
		if err != nil {
			errs = append(errs, err)
			return
		}
		authors = append(authors, author)
	})
	if err != nil {
		return nil, err
	}

	store, err := NewStore(docs, authors)
	if err != nil {
		errs = append(errs, err)
	}
	if len(errs) > 0 {
		return nil, fmt.Errorf("load content: %w", errors.Join(errs...))
	}

	logger.Info("content loaded", "posts", len(store.docs), "authors", len(store.authors))
	return store, nil
}

func walkContent(ctx context.Context, fsys FileSystem, root string, fn func(file, rel string, source []byte)) error {
	err := fsys.WalkDir(root, func(file string, d iofs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		if d.IsDir() || !core.IsContentFile(file) {
			return nil
		}

		source, err := fsys.ReadFile(file)
		if err != nil {
			return fmt.Errorf("read %s: %w", file, err)
		}

		rel := strings.TrimPrefix(strings.TrimPrefix(file, root), "/")
		fn(file, rel, source)
		return nil
	})
	if errors.Is(err, iofs.ErrNotExist) {
		return nil
	}
	return err
}
