package components

import (
	"context"
	"errors"
	"io"
	"testing"

	"github.com/gkampitakis/go-snaps/snaps"

	"github.com/3-lines-studio/folio/internal/types"
)

func TestFigureDefaults(t *testing.T) {
	fig := NewFigure(NewImage(""))

	got := render(t, fig, types.Props{
		"src":     "/static/images/ocean.jpeg",
		"alt":     "ocean",
		"caption": "The ocean",
	})

	want := `<figure class="figure-right">` +
		`<img src="/static/images/ocean.jpeg" alt="ocean" width="450" height="392" loading="lazy" decoding="async" />` +
		`<figcaption>The ocean</figcaption></figure>`
	if got != want {
		t.Errorf("Figure output mismatch\n got: %s\nwant: %s", got, want)
	}

	snaps.MatchSnapshot(t, got)
}

func TestFigureExplicitValues(t *testing.T) {
	tests := []struct {
		name      string
		props     types.Props
		wantClass string
		wantW     string
		wantH     string
	}{
		{
			name:      "left aligned from attributes",
			props:     types.Props{"align": "left", "width": "300", "height": "200"},
			wantClass: "figure-left",
			wantW:     "300",
			wantH:     "200",
		},
		{
			name:      "typed ints",
			props:     types.Props{"align": "center", "width": 640, "height": 480},
			wantClass: "figure-center",
			wantW:     "640",
			wantH:     "480",
		},
		{
			name:      "zero size treated as absent",
			props:     types.Props{"width": 0, "height": "0"},
			wantClass: "figure-right",
			wantW:     "450",
			wantH:     "392",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := parse(t, render(t, NewFigure(NewImage("")), tt.props))

			if class, _ := doc.Find("figure").Attr("class"); class != tt.wantClass {
				t.Errorf("class = %q, want %q", class, tt.wantClass)
			}
			img := doc.Find("figure > img")
			if w, _ := img.Attr("width"); w != tt.wantW {
				t.Errorf("width = %q, want %q", w, tt.wantW)
			}
			if h, _ := img.Attr("height"); h != tt.wantH {
				t.Errorf("height = %q, want %q", h, tt.wantH)
			}
		})
	}
}

func TestFigureCaptionVerbatim(t *testing.T) {
	captions := []string{
		"plain",
		`<b>bold</b> & "quoted" 'single'`,
		"{braces} <script>alert(1)</script>",
		"emoji 🌊 and unicode é",
	}

	for _, caption := range captions {
		doc := parse(t, render(t, NewFigure(NewImage("")), types.Props{"caption": caption}))

		if got := doc.Find("figcaption").Text(); got != caption {
			t.Errorf("caption = %q, want %q", got, caption)
		}
		if doc.Find("figcaption *").Length() != 0 {
			t.Errorf("caption %q produced child elements", caption)
		}
	}
}

func TestFigureEmptyStrings(t *testing.T) {
	doc := parse(t, render(t, NewFigure(NewImage("")), types.Props{}))

	if doc.Find("figure img").Length() != 1 {
		t.Error("expected an image even with empty props")
	}
	if doc.Find("figcaption").Text() != "" {
		t.Error("expected empty caption")
	}
}

func TestFigureUsesImageComponent(t *testing.T) {
	var seen types.Props
	image := types.ComponentFunc(func(ctx context.Context, w io.Writer, props types.Props) error {
		seen = props
		_, err := io.WriteString(w, "<img />")
		return err
	})

	render(t, NewFigure(image), types.Props{"src": "a.png", "alt": "a"})

	if seen.Int("width") != 450 || seen.Int("height") != 392 {
		t.Errorf("image received %v", seen)
	}
	if seen.String("src") != "a.png" {
		t.Errorf("image src = %q", seen.String("src"))
	}
}

func TestFigureImageError(t *testing.T) {
	boom := errors.New("boom")
	image := types.ComponentFunc(func(ctx context.Context, w io.Writer, props types.Props) error {
		return boom
	})

	err := NewFigure(image).Render(context.Background(), io.Discard, types.Props{})
	if !errors.Is(err, boom) {
		t.Errorf("expected image error, got %v", err)
	}
}
