// Package templates embeds the starter sites that folio-init scaffolds.
package templates

import (
	"embed"
	"errors"
	"io/fs"
)

//go:embed all:blog
var blogFS embed.FS

//go:embed all:minimal
var minimalFS embed.FS

const DefaultTemplate = "blog"

var validTemplates = []string{"blog", "minimal"}

var ErrInvalidTemplate = errors.New("invalid template name")

func GetTemplate(name string) (fs.FS, error) {
	switch name {
	case "blog":
		return fs.Sub(blogFS, "blog")
	case "minimal":
		return fs.Sub(minimalFS, "minimal")
	default:
		return nil, ErrInvalidTemplate
	}
}

func Names() []string {
	return append([]string(nil), validTemplates...)
}
