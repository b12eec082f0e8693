package components

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"io"
	"strings"

	"github.com/alecthomas/chroma/v2"
	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"

	"github.com/3-lines-studio/folio/internal/types"
)

const DefaultCodeStyle = "github"

var preTemplate = template.Must(template.New("pre").Parse(
	`<div class="code-block"{{with .Language}} data-language="{{.}}"{{end}}>` +
		`{{with .Title}}<div class="code-title">{{.}}</div>{{end}}` +
		`<button type="button" class="copy-button" aria-label="Copy code">Copy</button>` +
		`{{.Code}}</div>`))

type preData struct {
	Language string
	Title    string
	Code     template.HTML
}

// Pre highlights fenced code with chroma using CSS classes; the matching
// stylesheet comes from WriteCSS.
type Pre struct {
	style     *chroma.Style
	formatter *chromahtml.Formatter
}

func NewPre(styleName string) *Pre {
	if styleName == "" {
		styleName = DefaultCodeStyle
	}
	return &Pre{
		style:     styles.Get(styleName),
		formatter: chromahtml.New(chromahtml.WithClasses(true)),
	}
}

func (c *Pre) Render(ctx context.Context, w io.Writer, props types.Props) error {
	data := preData{
		Language: props.String("language"),
		Title:    props.String("title"),
	}

	if props.Has("code") {
		highlighted, err := c.highlight(props.String("code"), data.Language)
		if err != nil {
			return err
		}
		data.Code = highlighted
	} else {
		data.Code = template.HTML("<pre>" + string(props.Children()) + "</pre>")
	}

	return preTemplate.Execute(w, data)
}

func (c *Pre) highlight(code, language string) (template.HTML, error) {
	lexer := lexers.Get(language)
	if lexer == nil && language == "" {
		lexer = lexers.Analyse(code)
	}
	if lexer == nil {
		lexer = lexers.Fallback
	}
	lexer = chroma.Coalesce(lexer)

	iterator, err := lexer.Tokenise(nil, code)
	if err != nil {
		return "", fmt.Errorf("tokenise %s code: %w", language, err)
	}

	var buf bytes.Buffer
	if err := c.formatter.Format(&buf, c.style, iterator); err != nil {
		return "", fmt.Errorf("format %s code: %w", language, err)
	}

	return template.HTML(strings.TrimSpace(buf.String())), nil
}

func (c *Pre) WriteCSS(w io.Writer) error {
	return c.formatter.WriteCSS(w, c.style)
}
