package components

import (
	"context"
	"html/template"
	"io"

	"github.com/3-lines-studio/folio/internal/core"
	"github.com/3-lines-studio/folio/internal/types"
)

var tocTemplate = template.Must(template.New("toc").Funcs(template.FuncMap{
	"nest": func(l tocList, nodes []*core.TOCNode) tocList {
		l.Nodes = nodes
		return l
	},
}).Parse(`{{define "list"}}<ul{{with .UL}} class="{{.}}"{{end}}>` +
	`{{range .Nodes}}<li{{with $.LI}} class="{{.}}"{{end}}><a href="{{.URL}}">{{.Value}}</a>` +
	`{{if .Children}}{{template "list" (nest $ .Children)}}{{end}}</li>{{end}}</ul>{{end}}` +
	`{{if .Disclosure}}<details open><summary class="toc-summary">Table of Contents</summary>` +
	`<div class="toc">{{template "list" .}}</div></details>` +
	`{{else}}<nav class="toc">{{template "list" .}}</nav>{{end}}`))

type tocList struct {
	Nodes      []*core.TOCNode
	UL         string
	LI         string
	Disclosure bool
}

// TOCInline renders the current document's headings. A "toc" prop of type
// []core.Heading overrides the document's own list.
type TOCInline struct{}

func NewTOCInline() *TOCInline {
	return &TOCInline{}
}

func (c *TOCInline) Render(ctx context.Context, w io.Writer, props types.Props) error {
	toc, ok := props["toc"].([]core.Heading)
	if !ok {
		toc = types.PageFromContext(ctx).TOC
	}

	from := 1
	if props.Has("fromHeading") {
		from = props.Int("fromHeading")
	}
	to := 6
	if props.Has("toHeading") {
		to = props.Int("toHeading")
	}

	var exclude []string
	switch v := props["exclude"].(type) {
	case []string:
		exclude = v
	default:
		exclude = core.SplitList(props.String("exclude"))
	}

	filtered := core.FilterTOC(toc, from, to, exclude)
	if len(filtered) == 0 {
		return nil
	}

	return tocTemplate.Execute(w, tocList{
		Nodes:      core.NestTOC(filtered),
		UL:         props.String("ulClassName"),
		LI:         props.String("liClassName"),
		Disclosure: props.Bool("asDisclosure"),
	})
}
