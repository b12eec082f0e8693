package core

const (
	DefaultFigureWidth  = 450
	DefaultFigureHeight = 392
	DefaultFigureAlign  = "right"
)

type FigureProps struct {
	Align   string
	Width   int
	Height  int
	Src     string
	Alt     string
	Caption string
}

// ResolveFigure fills the zero-valued sizing and alignment fields. A zero
// width or height counts as absent, so authored `width={0}` renders at the
// default size.
func ResolveFigure(props FigureProps) FigureProps {
	if props.Width == 0 {
		props.Width = DefaultFigureWidth
	}
	if props.Height == 0 {
		props.Height = DefaultFigureHeight
	}
	if props.Align == "" {
		props.Align = DefaultFigureAlign
	}
	return props
}

func FigureClass(align string) string {
	if align == "" {
		align = DefaultFigureAlign
	}
	return "figure-" + align
}
