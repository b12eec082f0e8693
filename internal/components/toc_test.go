package components

import (
	"context"
	"testing"

	"github.com/3-lines-studio/folio/internal/core"
	"github.com/3-lines-studio/folio/internal/types"
)

var pageTOC = []core.Heading{
	{Value: "Introduction", URL: "#introduction", Depth: 2},
	{Value: "Install", URL: "#install", Depth: 3},
	{Value: "Usage", URL: "#usage", Depth: 2},
	{Value: "Deep", URL: "#deep", Depth: 4},
}

func pageCtx() context.Context {
	return types.WithPage(context.Background(), &types.Page{TOC: pageTOC})
}

func TestTOCInlineFromContext(t *testing.T) {
	html := renderCtx(t, pageCtx(), NewTOCInline(), types.Props{})
	doc := parse(t, html)

	if doc.Find("nav.toc").Length() != 1 {
		t.Fatalf("expected nav wrapper:\n%s", html)
	}
	if got := doc.Find("nav.toc > ul > li").Length(); got != 2 {
		t.Errorf("top level items = %d, want 2", got)
	}
	if got := doc.Find("nav.toc > ul > li > ul > li > a").First().Text(); got != "Install" {
		t.Errorf("nested item = %q", got)
	}
	if href, _ := doc.Find("a").First().Attr("href"); href != "#introduction" {
		t.Errorf("href = %q", href)
	}
}

func TestTOCInlineFilters(t *testing.T) {
	html := renderCtx(t, pageCtx(), NewTOCInline(), types.Props{
		"toheading":   "3",
		"exclude":     `{["Usage"]}`,
		"ulClassName": "toc-list",
	})
	doc := parse(t, html)

	if doc.Find("a").Length() != 2 {
		t.Errorf("expected 2 links after filtering:\n%s", html)
	}
	if doc.Find("ul.toc-list").Length() == 0 {
		t.Error("ulClassName not applied")
	}
}

func TestTOCInlineDisclosure(t *testing.T) {
	html := renderCtx(t, pageCtx(), NewTOCInline(), types.Props{"asDisclosure": ""})
	doc := parse(t, html)

	if doc.Find("details > summary").Text() != "Table of Contents" {
		t.Errorf("expected disclosure summary:\n%s", html)
	}
}

func TestTOCInlineExplicitTOC(t *testing.T) {
	toc := []core.Heading{{Value: "Only", URL: "#only", Depth: 1}}
	html := renderCtx(t, pageCtx(), NewTOCInline(), types.Props{"toc": toc})

	if got := parse(t, html).Find("a").Text(); got != "Only" {
		t.Errorf("explicit toc ignored: %s", html)
	}
}

func TestTOCInlineEmpty(t *testing.T) {
	if html := render(t, NewTOCInline(), types.Props{}); html != "" {
		t.Errorf("expected no output for empty toc, got %q", html)
	}
}
