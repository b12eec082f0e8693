package markdown

import (
	"bytes"
	"html/template"
	"strings"

	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/renderer"
	"github.com/yuin/goldmark/util"

	"github.com/3-lines-studio/folio/internal/core"
	"github.com/3-lines-studio/folio/internal/registry"
	"github.com/3-lines-studio/folio/internal/types"
)

type nodeRenderer struct {
	p *Pipeline
}

func (r *nodeRenderer) RegisterFuncs(reg renderer.NodeRendererFuncRegisterer) {
	reg.Register(ast.KindLink, r.renderLink)
	reg.Register(ast.KindAutoLink, r.renderAutoLink)
	reg.Register(ast.KindImage, r.renderImage)
	reg.Register(ast.KindFencedCodeBlock, r.renderCodeBlock)
	reg.Register(ast.KindCodeBlock, r.renderCodeBlock)
	reg.Register(ast.KindHTMLBlock, r.renderHTMLBlock)
	reg.Register(ast.KindRawHTML, r.renderRawHTML)
}

func (r *nodeRenderer) renderLink(w util.BufWriter, source []byte, node ast.Node, entering bool) (ast.WalkStatus, error) {
	if !entering {
		return ast.WalkContinue, nil
	}
	n := node.(*ast.Link)

	children, err := r.p.renderChildren(source, n)
	if err != nil {
		return ast.WalkStop, err
	}

	props := types.Props{
		"href":            string(n.Destination),
		types.ChildrenKey: children,
	}
	if len(n.Title) > 0 {
		props["title"] = string(n.Title)
	}

	return ast.WalkSkipChildren, r.p.invoke(w, node, registry.NameLink, props)
}

func (r *nodeRenderer) renderAutoLink(w util.BufWriter, source []byte, node ast.Node, entering bool) (ast.WalkStatus, error) {
	if !entering {
		return ast.WalkContinue, nil
	}
	n := node.(*ast.AutoLink)

	href := string(n.URL(source))
	if n.AutoLinkType == ast.AutoLinkEmail && !strings.HasPrefix(strings.ToLower(href), "mailto:") {
		href = "mailto:" + href
	}

	props := types.Props{
		"href":            href,
		types.ChildrenKey: template.HTML(template.HTMLEscapeString(string(n.Label(source)))),
	}

	return ast.WalkSkipChildren, r.p.invoke(w, node, registry.NameLink, props)
}

func (r *nodeRenderer) renderImage(w util.BufWriter, source []byte, node ast.Node, entering bool) (ast.WalkStatus, error) {
	if !entering {
		return ast.WalkContinue, nil
	}
	n := node.(*ast.Image)

	props := types.Props{
		"src": string(n.Destination),
		"alt": plainText(n, source),
	}
	if len(n.Title) > 0 {
		props["title"] = string(n.Title)
	}

	return ast.WalkSkipChildren, r.p.invoke(w, node, registry.NameImage, props)
}

func (r *nodeRenderer) renderCodeBlock(w util.BufWriter, source []byte, node ast.Node, entering bool) (ast.WalkStatus, error) {
	if !entering {
		return ast.WalkContinue, nil
	}

	var code bytes.Buffer
	lines := node.Lines()
	for i := 0; i < lines.Len(); i++ {
		seg := lines.At(i)
		code.Write(seg.Value(source))
	}

	props := types.Props{"code": code.String()}
	if fenced, ok := node.(*ast.FencedCodeBlock); ok && fenced.Info != nil {
		lang, title := core.ParseCodeInfo(string(fenced.Info.Segment.Value(source)))
		if lang != "" {
			props["language"] = lang
		}
		if title != "" {
			props["title"] = title
		}
	}

	return ast.WalkSkipChildren, r.p.invoke(w, node, registry.NamePre, props)
}

func (r *nodeRenderer) renderHTMLBlock(w util.BufWriter, source []byte, node ast.Node, entering bool) (ast.WalkStatus, error) {
	if !entering {
		return ast.WalkContinue, nil
	}
	n := node.(*ast.HTMLBlock)

	var raw strings.Builder
	lines := n.Lines()
	for i := 0; i < lines.Len(); i++ {
		seg := lines.At(i)
		raw.Write(seg.Value(source))
	}
	if n.HasClosure() {
		raw.Write(n.ClosureLine.Value(source))
	}

	return ast.WalkSkipChildren, r.p.renderHTML(w, node, raw.String(), true)
}

func (r *nodeRenderer) renderRawHTML(w util.BufWriter, source []byte, node ast.Node, entering bool) (ast.WalkStatus, error) {
	if !entering {
		return ast.WalkContinue, nil
	}
	n := node.(*ast.RawHTML)

	var raw strings.Builder
	for i := 0; i < n.Segments.Len(); i++ {
		seg := n.Segments.At(i)
		raw.Write(seg.Value(source))
	}

	return ast.WalkSkipChildren, r.p.renderHTML(w, node, raw.String(), false)
}
