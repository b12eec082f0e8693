package components

import (
	"context"
	"fmt"
	"io"

	"github.com/3-lines-studio/folio/internal/core"
	"github.com/3-lines-studio/folio/internal/types"
)

const LayoutKey = "layout"

// Layouts is the closed table of page layouts. It is complete for
// core.KnownLayouts by construction.
type Layouts struct {
	table map[core.LayoutName]types.Component
}

func NewLayouts(table map[core.LayoutName]types.Component) (*Layouts, error) {
	l := &Layouts{table: make(map[core.LayoutName]types.Component, len(table))}
	for name, c := range table {
		if !name.Valid() {
			return nil, fmt.Errorf("layouts: unknown layout %q", name)
		}
		if c == nil {
			return nil, fmt.Errorf("layouts: layout %q is nil", name)
		}
		l.table[name] = c
	}
	for _, name := range core.KnownLayouts() {
		if _, ok := l.table[name]; !ok {
			return nil, fmt.Errorf("layouts: missing implementation for %q", name)
		}
	}
	return l, nil
}

func (l *Layouts) Resolve(name string) (types.Component, error) {
	c, ok := l.table[core.LayoutName(name)]
	if !ok {
		return nil, &core.LayoutNotFoundError{Name: name}
	}
	return c, nil
}

// Wrapper renders the layout named by the "layout" prop, forwarding every
// other prop unchanged.
type Wrapper struct {
	layouts *Layouts
}

func NewWrapper(layouts *Layouts) *Wrapper {
	return &Wrapper{layouts: layouts}
}

func (c *Wrapper) Render(ctx context.Context, w io.Writer, props types.Props) error {
	layout, err := c.layouts.Resolve(props.String(LayoutKey))
	if err != nil {
		return err
	}
	return layout.Render(ctx, w, props.Without(LayoutKey))
}
