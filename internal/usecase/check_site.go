package usecase

import (
	"context"
	"errors"

	"github.com/3-lines-studio/folio/internal/core"
)

var (
	ErrNoDate          = errors.New("post has no date")
	ErrNoTags          = errors.New("post has no tags")
	ErrNoDefaultAuthor = errors.New("no default author; /about will not exist")
	ErrUnknownAuthor   = errors.New("post names an unknown author")
)

type PageProblem struct {
	Path string
	Err  error
}

type CheckOutput struct {
	Pages    int
	Problems []PageProblem
	Warnings []PageProblem
}

// Check renders every route without caching and collects the failures
// instead of stopping at the first one. Content that renders but looks
// incomplete is reported as a warning.
func (s *PageService) Check(ctx context.Context) CheckOutput {
	var out CheckOutput
	for _, route := range s.Routes() {
		page := s.renderUncached(ctx, route)
		out.Pages++
		if page.Error != nil {
			out.Problems = append(out.Problems, PageProblem{Path: route, Err: page.Error})
		}
	}

	store := s.source.Store()
	if _, ok := store.Author(core.DefaultAuthor); !ok {
		out.Warnings = append(out.Warnings, PageProblem{Path: core.AuthorPath(core.DefaultAuthor), Err: ErrNoDefaultAuthor})
	}
	for _, doc := range store.All() {
		if doc.Date.IsZero() {
			out.Warnings = append(out.Warnings, PageProblem{Path: doc.URL(), Err: ErrNoDate})
		}
		if len(doc.Tags) == 0 {
			out.Warnings = append(out.Warnings, PageProblem{Path: doc.URL(), Err: ErrNoTags})
		}
		for _, slug := range doc.Authors {
			if _, ok := store.Author(slug); !ok && slug != core.DefaultAuthor {
				out.Warnings = append(out.Warnings, PageProblem{Path: doc.URL(), Err: ErrUnknownAuthor})
			}
		}
	}
	return out
}
