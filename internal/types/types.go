package types

import (
	"context"
	"html/template"
	"io"
	"maps"
	"strconv"
	"strings"

	"github.com/3-lines-studio/folio/internal/core"
)

// Props are the inputs of a Component: tag attributes, frontmatter values,
// and the rendered children under ChildrenKey.
type Props map[string]any

const ChildrenKey = "children"

type Component interface {
	Render(ctx context.Context, w io.Writer, props Props) error
}

type ComponentFunc func(ctx context.Context, w io.Writer, props Props) error

func (f ComponentFunc) Render(ctx context.Context, w io.Writer, props Props) error {
	return f(ctx, w, props)
}

// Get looks a key up exactly, then case-insensitively. HTML tokenising
// lowercases attribute names, so `fromHeading` arrives as `fromheading`.
func (p Props) Get(key string) (any, bool) {
	if v, ok := p[key]; ok {
		return v, true
	}
	for k, v := range p {
		if strings.EqualFold(k, key) {
			return v, true
		}
	}
	return nil, false
}

func (p Props) String(key string) string {
	v, ok := p.Get(key)
	if !ok || v == nil {
		return ""
	}
	switch v := v.(type) {
	case string:
		return v
	case core.LayoutName:
		return string(v)
	case template.HTML:
		return string(v)
	case []byte:
		return string(v)
	case int:
		return strconv.Itoa(v)
	case bool:
		return strconv.FormatBool(v)
	default:
		return ""
	}
}

func (p Props) Int(key string) int {
	v, ok := p.Get(key)
	if !ok {
		return 0
	}
	switch v := v.(type) {
	case int:
		return v
	case int64:
		return int(v)
	case uint64:
		return int(v)
	case float64:
		return int(v)
	case string:
		return core.AttrInt(v)
	default:
		return 0
	}
}

func (p Props) Bool(key string) bool {
	v, ok := p.Get(key)
	if !ok {
		return false
	}
	switch v := v.(type) {
	case bool:
		return v
	case string:
		return core.AttrBool(v)
	default:
		return v != nil
	}
}

func (p Props) Has(key string) bool {
	_, ok := p.Get(key)
	return ok
}

func (p Props) Children() template.HTML {
	v, ok := p[ChildrenKey]
	if !ok {
		return ""
	}
	switch v := v.(type) {
	case template.HTML:
		return v
	case string:
		return template.HTML(template.HTMLEscapeString(v))
	default:
		return ""
	}
}

// Without returns a copy of p minus keys.
func (p Props) Without(keys ...string) Props {
	out := maps.Clone(p)
	if out == nil {
		out = Props{}
	}
	for _, k := range keys {
		delete(out, k)
	}
	return out
}

// Page is the document currently being rendered, visible to every
// component through the context.
type Page struct {
	Slug string
	TOC  []core.Heading
	Meta map[string]any
}

type pageKey struct{}

func WithPage(ctx context.Context, page *Page) context.Context {
	return context.WithValue(ctx, pageKey{}, page)
}

func PageFromContext(ctx context.Context) *Page {
	if page, ok := ctx.Value(pageKey{}).(*Page); ok {
		return page
	}
	return &Page{}
}
