package components

import (
	"context"
	"html/template"
	"io"
	"path"
	"strings"

	"github.com/3-lines-studio/folio/internal/core"
	"github.com/3-lines-studio/folio/internal/types"
)

var imageTemplate = template.Must(template.New("image").Parse(
	`<img src="{{.Src}}" alt="{{.Alt}}"` +
		`{{with .Width}} width="{{.}}"{{end}}` +
		`{{with .Height}} height="{{.}}"{{end}}` +
		`{{with .Title}} title="{{.}}"{{end}}` +
		`{{with .Class}} class="{{.}}"{{end}}` +
		` loading="lazy" decoding="async" />`))

type imageData struct {
	Src    string
	Alt    string
	Title  string
	Class  string
	Width  int
	Height int
}

// Image renders a plain <img>. Relative sources are resolved against
// BasePath so content can reference "images/cover.png".
type Image struct {
	BasePath string
}

func NewImage(basePath string) *Image {
	return &Image{BasePath: basePath}
}

func (c *Image) Render(ctx context.Context, w io.Writer, props types.Props) error {
	return imageTemplate.Execute(w, imageData{
		Src:    c.resolve(props.String("src")),
		Alt:    props.String("alt"),
		Title:  props.String("title"),
		Class:  props.String("className"),
		Width:  props.Int("width"),
		Height: props.Int("height"),
	})
}

func (c *Image) resolve(src string) string {
	if c.BasePath == "" || !core.IsRelativeSource(src) {
		return src
	}
	base := c.BasePath
	if strings.Contains(base, "://") {
		return strings.TrimSuffix(base, "/") + "/" + src
	}
	return path.Join("/", base, src)
}
