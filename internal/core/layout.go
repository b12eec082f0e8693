package core

import (
	"errors"
	"fmt"
	"slices"
)

type LayoutName string

const (
	LayoutPost         LayoutName = "PostLayout"
	LayoutPostSimple   LayoutName = "PostSimple"
	LayoutPostBanner   LayoutName = "PostBanner"
	LayoutList         LayoutName = "ListLayout"
	LayoutListWithTags LayoutName = "ListLayoutWithTags"
	LayoutAuthor       LayoutName = "AuthorLayout"
)

const (
	DefaultLayout     = LayoutPost
	DefaultListLayout = LayoutListWithTags
)

var knownLayouts = []LayoutName{
	LayoutPost,
	LayoutPostSimple,
	LayoutPostBanner,
	LayoutList,
	LayoutListWithTags,
	LayoutAuthor,
}

var (
	ErrLayoutNotFound    = errors.New("layout not found")
	ErrComponentNotFound = errors.New("component not found")
)

type LayoutNotFoundError struct {
	Name string
}

func (e *LayoutNotFoundError) Error() string {
	return fmt.Sprintf("layout not found: %q", e.Name)
}

func (e *LayoutNotFoundError) Unwrap() error {
	return ErrLayoutNotFound
}

func KnownLayouts() []LayoutName {
	return slices.Clone(knownLayouts)
}

func (n LayoutName) Valid() bool {
	return slices.Contains(knownLayouts, n)
}

// ParseLayoutName maps a frontmatter value to a layout. An empty value
// selects DefaultLayout.
func ParseLayoutName(name string) (LayoutName, error) {
	if name == "" {
		return DefaultLayout, nil
	}
	layout := LayoutName(name)
	if !layout.Valid() {
		return "", &LayoutNotFoundError{Name: name}
	}
	return layout, nil
}

func IsPostLayout(n LayoutName) bool {
	return n == LayoutPost || n == LayoutPostSimple || n == LayoutPostBanner
}
