// Package components holds the renderers that content documents reach
// through the registry.
package components

import (
	"fmt"

	"github.com/3-lines-studio/folio/internal/core"
	"github.com/3-lines-studio/folio/internal/registry"
	"github.com/3-lines-studio/folio/internal/types"
)

type Options struct {
	ImageBasePath string
	CodeStyle     string
	NewsletterAPI string
	Layouts       map[core.LayoutName]types.Component
}

// Defaults returns one entry per registry.StandardNames.
func Defaults(opts Options) (map[string]types.Component, error) {
	layouts, err := NewLayouts(opts.Layouts)
	if err != nil {
		return nil, fmt.Errorf("components: %w", err)
	}

	image := NewImage(opts.ImageBasePath)

	return map[string]types.Component{
		registry.NameImage:      image,
		registry.NameFigure:     NewFigure(image),
		registry.NameTOCInline:  NewTOCInline(),
		registry.NameLink:       NewLink(),
		registry.NamePre:        NewPre(opts.CodeStyle),
		registry.NameWrapper:    NewWrapper(layouts),
		registry.NameNewsletter: NewNewsletterForm(opts.NewsletterAPI),
	}, nil
}
