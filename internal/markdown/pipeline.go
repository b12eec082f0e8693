// Package markdown converts content documents to HTML. Links, images,
// code blocks and embedded component tags are handed to the components
// found through a Resolver instead of goldmark's own renderers.
package markdown

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"sync"

	"github.com/yuin/goldmark"
	meta "github.com/yuin/goldmark-meta"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer"
	"github.com/yuin/goldmark/text"
	"github.com/yuin/goldmark/util"

	"github.com/3-lines-studio/folio/internal/core"
	"github.com/3-lines-studio/folio/internal/types"
)

// Takes precedence over goldmark's html renderer (priority 1000).
const nodeRendererPriority = 100

type Resolver interface {
	Lookup(name string) (types.Component, bool)
}

type Options struct {
	// Unsafe passes raw HTML that is not a component tag through to the
	// output. Otherwise it is replaced by a comment.
	Unsafe bool
}

type Document struct {
	Meta   map[string]any
	TOC    []core.Heading
	root   ast.Node
	source []byte
}

type Pipeline struct {
	md       goldmark.Markdown
	resolver Resolver
	opts     Options

	// keyed by the root ast.Node of each in-flight render
	states sync.Map
}

type renderState struct {
	ctx context.Context
}

func New(resolver Resolver, opts Options) *Pipeline {
	p := &Pipeline{
		resolver: resolver,
		opts:     opts,
	}

	p.md = goldmark.New(
		goldmark.WithExtensions(extension.GFM, meta.Meta),
		goldmark.WithParserOptions(parser.WithAutoHeadingID()),
		goldmark.WithRendererOptions(
			renderer.WithNodeRenderers(util.Prioritized(&nodeRenderer{p: p}, nodeRendererPriority)),
		),
	)

	return p
}

// Parse reads frontmatter and headings without rendering.
func (p *Pipeline) Parse(source []byte) (*Document, error) {
	pctx := parser.NewContext()
	root := p.md.Parser().Parse(text.NewReader(source), parser.WithContext(pctx))

	data, err := meta.TryGet(pctx)
	if err != nil {
		return nil, fmt.Errorf("invalid frontmatter: %w", err)
	}

	return &Document{
		Meta:   normalizeMeta(data),
		TOC:    collectTOC(root, source),
		root:   root,
		source: source,
	}, nil
}

// Render parses source and renders its body. The document's headings and
// frontmatter are attached to the context's types.Page for components.
func (p *Pipeline) Render(ctx context.Context, source []byte) (template.HTML, *Document, error) {
	doc, err := p.Parse(source)
	if err != nil {
		return "", nil, err
	}

	html, err := p.renderDocument(withDocumentPage(ctx, doc), doc)
	if err != nil {
		return "", nil, err
	}

	return html, doc, nil
}

// RenderDocument renders a document returned by Parse. Each call works on a
// fresh syntax tree so one document can serve concurrent requests.
func (p *Pipeline) RenderDocument(ctx context.Context, doc *Document) (template.HTML, error) {
	fresh := &Document{
		Meta:   doc.Meta,
		TOC:    doc.TOC,
		root:   p.md.Parser().Parse(text.NewReader(doc.source)),
		source: doc.source,
	}
	return p.renderDocument(withDocumentPage(ctx, fresh), fresh)
}

func withDocumentPage(ctx context.Context, doc *Document) context.Context {
	page := *types.PageFromContext(ctx)
	page.TOC = doc.TOC
	page.Meta = doc.Meta
	return types.WithPage(ctx, &page)
}

func (p *Pipeline) renderDocument(ctx context.Context, doc *Document) (template.HTML, error) {
	p.states.Store(doc.root, &renderState{ctx: ctx})
	defer p.states.Delete(doc.root)

	var buf bytes.Buffer
	if err := p.md.Renderer().Render(&buf, doc.source, doc.root); err != nil {
		return "", err
	}

	return template.HTML(buf.String()), nil
}

// convertFragment renders the markdown between a component's open and
// close tags within the enclosing document's context.
func (p *Pipeline) convertFragment(parent ast.Node, src string) (template.HTML, error) {
	doc, err := p.Parse([]byte(src))
	if err != nil {
		return "", err
	}
	return p.renderDocument(p.contextFor(parent), doc)
}

func (p *Pipeline) contextFor(n ast.Node) context.Context {
	for n.Parent() != nil {
		n = n.Parent()
	}
	if st, ok := p.states.Load(n); ok {
		return st.(*renderState).ctx
	}
	return context.Background()
}

func (p *Pipeline) invoke(w util.BufWriter, node ast.Node, name string, props types.Props) error {
	c, ok := p.resolver.Lookup(name)
	if !ok {
		return fmt.Errorf("%w: %q", core.ErrComponentNotFound, name)
	}
	if err := c.Render(p.contextFor(node), w, props); err != nil {
		return fmt.Errorf("render <%s>: %w", name, err)
	}
	return nil
}

func (p *Pipeline) renderChildren(source []byte, n ast.Node) (template.HTML, error) {
	var buf bytes.Buffer
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		if err := p.md.Renderer().Render(&buf, source, c); err != nil {
			return "", err
		}
	}
	return template.HTML(buf.String()), nil
}

func collectTOC(root ast.Node, source []byte) []core.Heading {
	var toc []core.Heading
	_ = ast.Walk(root, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		h, ok := n.(*ast.Heading)
		if !ok {
			return ast.WalkContinue, nil
		}

		heading := core.Heading{Value: plainText(h, source), Depth: h.Level}
		if id, ok := h.AttributeString("id"); ok {
			if b, ok := id.([]byte); ok {
				heading.URL = "#" + string(b)
			}
		}
		toc = append(toc, heading)

		return ast.WalkSkipChildren, nil
	})
	return toc
}

func plainText(n ast.Node, source []byte) string {
	var b bytes.Buffer
	_ = ast.Walk(n, func(c ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		switch t := c.(type) {
		case *ast.Text:
			b.Write(t.Segment.Value(source))
			if t.SoftLineBreak() {
				b.WriteByte(' ')
			}
		case *ast.String:
			b.Write(t.Value)
		}
		return ast.WalkContinue, nil
	})
	return b.String()
}

func normalizeMeta(m map[string]any) map[string]any {
	out := make(map[string]any, len(m))
	for k, v := range m {
		out[k] = normalizeValue(v)
	}
	return out
}

// yaml.v2, used by goldmark-meta, decodes nested maps with interface keys.
func normalizeValue(v any) any {
	switch v := v.(type) {
	case map[any]any:
		out := make(map[string]any, len(v))
		for k, vv := range v {
			out[fmt.Sprint(k)] = normalizeValue(vv)
		}
		return out
	case map[string]any:
		return normalizeMeta(v)
	case []any:
		out := make([]any, len(v))
		for i, vv := range v {
			out[i] = normalizeValue(vv)
		}
		return out
	default:
		return v
	}
}
