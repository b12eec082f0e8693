package core

import (
	"bytes"
	"fmt"
	"html/template"
)

const (
	ReloadPath    = "/__folio/reload"
	ChromaCSSPath = "/css/chroma.css"
	StaticPrefix  = "/static/"
	NewsletterAPI = "/api/newsletter"
)

type NavLink struct {
	Href  string
	Title string
}

type ShellData struct {
	Lang         string
	Title        string
	SiteTitle    string
	Description  string
	CanonicalURL string
	Stylesheets  []string
	Nav          []NavLink
	Body         template.HTML
	DevReload    bool
}

func (d ShellData) DocumentTitle() string {
	switch {
	case d.Title == "":
		return d.SiteTitle
	case d.SiteTitle == "" || d.Title == d.SiteTitle:
		return d.Title
	default:
		return d.Title + " | " + d.SiteTitle
	}
}

var shellTemplate = template.Must(template.New("shell").Parse(`<!doctype html>
<html lang="{{.Lang}}">
  <head>
    <meta charset="UTF-8" />
    <meta name="viewport" content="width=device-width, initial-scale=1.0" />
    <title>{{.DocumentTitle}}</title>
    {{- if .Description}}
    <meta name="description" content="{{.Description}}" />
    {{- end}}
    {{- if .CanonicalURL}}
    <link rel="canonical" href="{{.CanonicalURL}}" />
    {{- end}}
    {{- range .Stylesheets}}
    <link rel="stylesheet" href="{{.}}" />
    {{- end}}
  </head>
  <body>
    <header class="site-header">
      <a class="site-title" href="/">{{.SiteTitle}}</a>
      <nav>
        {{- range .Nav}}
        <a href="{{.Href}}">{{.Title}}</a>
        {{- end}}
      </nav>
    </header>
    <main id="app">{{.Body}}</main>
    {{- if .DevReload}}
    <script data-reload="{{.ReloadPath}}">new EventSource(document.currentScript.dataset.reload).addEventListener("reload", () => location.reload());</script>
    {{- end}}
  </body>
</html>
`))

func (d ShellData) ReloadPath() string { return ReloadPath }

func RenderHTMLShell(data ShellData) (string, error) {
	if data.SiteTitle == "" && data.Title == "" {
		return "", fmt.Errorf("missing page title")
	}
	if data.Lang == "" {
		data.Lang = "en"
	}

	var buf bytes.Buffer
	if err := shellTemplate.Execute(&buf, data); err != nil {
		return "", err
	}

	return buf.String(), nil
}
