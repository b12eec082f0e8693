package components

import (
	"context"
	"html/template"
	"io"

	"github.com/3-lines-studio/folio/internal/core"
	"github.com/3-lines-studio/folio/internal/types"
)

var linkTemplate = template.Must(template.New("link").Parse(
	`<a href="{{.Href}}"` +
		`{{with .Title}} title="{{.}}"{{end}}` +
		`{{if .External}} class="break-words" target="_blank" rel="noopener noreferrer"{{end}}` +
		`>{{.Children}}</a>`))

type linkData struct {
	Href     string
	Title    string
	External bool
	Children template.HTML
}

// Link opens external destinations in a new tab; internal paths and
// in-page anchors stay plain.
type Link struct{}

func NewLink() *Link {
	return &Link{}
}

func (c *Link) Render(ctx context.Context, w io.Writer, props types.Props) error {
	href := props.String("href")
	return linkTemplate.Execute(w, linkData{
		Href:     href,
		Title:    props.String("title"),
		External: core.ClassifyLink(href) == core.LinkExternal,
		Children: props.Children(),
	})
}
