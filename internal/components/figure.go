package components

import (
	"bytes"
	"context"
	"html/template"
	"io"

	"github.com/3-lines-studio/folio/internal/core"
	"github.com/3-lines-studio/folio/internal/types"
)

var figureTemplate = template.Must(template.New("figure").Parse(
	`<figure class="{{.Class}}">{{.Image}}<figcaption>{{.Caption}}</figcaption></figure>`))

type figureData struct {
	Class   string
	Image   template.HTML
	Caption string
}

// Figure draws its image through the Image component so the site-wide
// image behaviour applies inside figures too.
type Figure struct {
	image types.Component
}

func NewFigure(image types.Component) *Figure {
	return &Figure{image: image}
}

func FigurePropsFrom(props types.Props) core.FigureProps {
	return core.FigureProps{
		Align:   props.String("align"),
		Width:   props.Int("width"),
		Height:  props.Int("height"),
		Src:     props.String("src"),
		Alt:     props.String("alt"),
		Caption: props.String("caption"),
	}
}

func (c *Figure) Render(ctx context.Context, w io.Writer, props types.Props) error {
	fig := core.ResolveFigure(FigurePropsFrom(props))

	var img bytes.Buffer
	if err := c.image.Render(ctx, &img, types.Props{
		"src":    fig.Src,
		"alt":    fig.Alt,
		"width":  fig.Width,
		"height": fig.Height,
	}); err != nil {
		return err
	}

	return figureTemplate.Execute(w, figureData{
		Class:   core.FigureClass(fig.Align),
		Image:   template.HTML(img.String()),
		Caption: fig.Caption,
	})
}
