package core

import (
	"bytes"
	"errors"
	"html/template"
	"net/http"
)

var ErrNotFound = errors.New("not found")

type ErrorData struct {
	Status  int
	Message string
	IsDev   bool
}

func (d ErrorData) Title() string {
	if d.Status == 0 {
		return http.StatusText(http.StatusInternalServerError)
	}
	return http.StatusText(d.Status)
}

var ErrorTemplate = template.Must(template.New("error").Parse(`<!doctype html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>{{.Title}}</title>
    <style>
        body { font-family: system-ui, sans-serif; max-width: 800px; margin: 50px auto; padding: 0 20px; }
        h1 { color: #e74c3c; }
        pre { background: #f8f9fa; padding: 15px; border-radius: 5px; overflow-x: auto; }
    </style>
</head>
<body>
    <h1>{{.Title}}</h1>
    {{if .IsDev}}
    <pre>{{.Message}}</pre>
    {{else if eq .Status 404}}
    <p>The page you are looking for does not exist.</p>
    {{else}}
    <p>An error occurred while processing your request.</p>
    {{end}}
</body>
</html>`))

func RenderErrorPage(data ErrorData) (string, error) {
	var buf bytes.Buffer
	if err := ErrorTemplate.Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}
