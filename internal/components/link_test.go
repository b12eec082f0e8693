package components

import (
	"html/template"
	"testing"

	"github.com/3-lines-studio/folio/internal/types"
)

func TestLink(t *testing.T) {
	tests := []struct {
		name       string
		href       string
		wantTarget string
	}{
		{name: "internal", href: "/blog/hello", wantTarget: ""},
		{name: "anchor", href: "#setup", wantTarget: ""},
		{name: "external", href: "https://go.dev", wantTarget: "_blank"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			html := render(t, NewLink(), types.Props{
				"href":            tt.href,
				types.ChildrenKey: template.HTML("<em>read</em>"),
			})
			a := parse(t, html).Find("a")

			if got, _ := a.Attr("href"); got != tt.href {
				t.Errorf("href = %q, want %q", got, tt.href)
			}
			if got, _ := a.Attr("target"); got != tt.wantTarget {
				t.Errorf("target = %q, want %q", got, tt.wantTarget)
			}
			if tt.wantTarget != "" {
				if rel, _ := a.Attr("rel"); rel != "noopener noreferrer" {
					t.Errorf("rel = %q", rel)
				}
			}
			if a.Find("em").Text() != "read" {
				t.Errorf("children not rendered: %s", html)
			}
		})
	}
}

func TestLinkTitle(t *testing.T) {
	a := parse(t, render(t, NewLink(), types.Props{"href": "/", "title": "Home"})).Find("a")
	if got, _ := a.Attr("title"); got != "Home" {
		t.Errorf("title = %q", got)
	}
}
