// Package registry maps the tag names used inside content documents to the
// components that render them.
package registry

import (
	"context"
	"fmt"
	"io"
	"maps"
	"slices"

	"github.com/3-lines-studio/folio/internal/core"
	"github.com/3-lines-studio/folio/internal/types"
)

const (
	NameImage      = "Image"
	NameFigure     = "Figure"
	NameTOCInline  = "TOCInline"
	NameLink       = "a"
	NamePre        = "pre"
	NameWrapper    = "wrapper"
	NameNewsletter = "BlogNewsletterForm"
)

// StandardNames is the set of names every content document may rely on.
var StandardNames = []string{
	NameImage,
	NameFigure,
	NameTOCInline,
	NameLink,
	NamePre,
	NameWrapper,
	NameNewsletter,
}

// Registry is immutable once built and safe for concurrent use.
type Registry struct {
	entries map[string]types.Component
}

func New(entries map[string]types.Component) (*Registry, error) {
	r := &Registry{entries: make(map[string]types.Component, len(entries))}
	for name, c := range entries {
		if name == "" {
			return nil, fmt.Errorf("registry: empty component name")
		}
		if c == nil {
			return nil, fmt.Errorf("registry: component %q is nil", name)
		}
		r.entries[name] = c
	}
	return r, nil
}

// NewStandard builds a registry and checks that it covers StandardNames.
func NewStandard(entries map[string]types.Component) (*Registry, error) {
	r, err := New(entries)
	if err != nil {
		return nil, err
	}
	for _, name := range StandardNames {
		if _, ok := r.entries[name]; !ok {
			return nil, fmt.Errorf("registry: missing standard component %q", name)
		}
	}
	return r, nil
}

func (r *Registry) Lookup(name string) (types.Component, bool) {
	c, ok := r.entries[name]
	return c, ok
}

// MustLookup is Lookup for names the caller knows are registered, such as
// StandardNames on a registry from NewStandard.
func (r *Registry) MustLookup(name string) types.Component {
	c, ok := r.entries[name]
	if !ok {
		panic(fmt.Sprintf("registry: component %q not registered", name))
	}
	return c
}

func (r *Registry) Names() []string {
	return slices.Sorted(maps.Keys(r.entries))
}

func (r *Registry) Len() int {
	return len(r.entries)
}

// With returns a copy of r with entries added or replaced.
func (r *Registry) With(entries map[string]types.Component) (*Registry, error) {
	merged := maps.Clone(r.entries)
	maps.Copy(merged, entries)
	return New(merged)
}

func (r *Registry) Render(ctx context.Context, w io.Writer, name string, props types.Props) error {
	c, ok := r.Lookup(name)
	if !ok {
		return fmt.Errorf("%w: %q", core.ErrComponentNotFound, name)
	}
	return c.Render(ctx, w, props)
}
