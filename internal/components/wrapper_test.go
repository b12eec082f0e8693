package components

import (
	"bytes"
	"context"
	"errors"
	"html/template"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/3-lines-studio/folio/internal/core"
	"github.com/3-lines-studio/folio/internal/types"
)

func TestNewLayoutsRequiresEveryKnownLayout(t *testing.T) {
	table, _ := stubLayouts()
	delete(table, core.LayoutAuthor)

	if _, err := NewLayouts(table); err == nil {
		t.Fatal("expected error for missing AuthorLayout")
	}
}

func TestNewLayoutsRejectsUnknownName(t *testing.T) {
	table, _ := stubLayouts()
	table["FancyLayout"] = table[core.LayoutPost]

	if _, err := NewLayouts(table); err == nil {
		t.Fatal("expected error for unknown layout name")
	}
}

func TestWrapperForwardsProps(t *testing.T) {
	table, recorders := stubLayouts()
	layouts, err := NewLayouts(table)
	if err != nil {
		t.Fatal(err)
	}

	content := &struct{ Title string }{Title: "Hello"}
	props := types.Props{
		"layout":          "PostLayout",
		"content":         content,
		types.ChildrenKey: template.HTML("<p>body</p>"),
		"next":            "next-post",
		"authorDetails":   []string{"default"},
	}

	var buf bytes.Buffer
	if err := NewWrapper(layouts).Render(context.Background(), &buf, props); err != nil {
		t.Fatalf("Render() error = %v", err)
	}

	if buf.String() != "<PostLayout>" {
		t.Errorf("wrote %q", buf.String())
	}

	got := recorders[core.LayoutPost].props
	want := types.Props{
		"content":         content,
		types.ChildrenKey: template.HTML("<p>body</p>"),
		"next":            "next-post",
		"authorDetails":   []string{"default"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("forwarded props mismatch (-want +got):\n%s", diff)
	}
	if got["content"] != any(content) {
		t.Error("content was copied instead of forwarded")
	}
	if recorders[core.LayoutPostSimple].calls != 0 {
		t.Error("wrong layout rendered")
	}
}

func TestWrapperTypedLayoutName(t *testing.T) {
	table, recorders := stubLayouts()
	layouts, _ := NewLayouts(table)

	var buf bytes.Buffer
	err := NewWrapper(layouts).Render(context.Background(), &buf, types.Props{"layout": core.LayoutListWithTags})
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	if recorders[core.LayoutListWithTags].calls != 1 {
		t.Error("ListLayoutWithTags not rendered")
	}
}

func TestWrapperUnknownLayout(t *testing.T) {
	table, _ := stubLayouts()
	layouts, _ := NewLayouts(table)

	for _, name := range []string{"MissingLayout", "", "postlayout"} {
		var buf bytes.Buffer
		err := NewWrapper(layouts).Render(context.Background(), &buf, types.Props{"layout": name})

		if !errors.Is(err, core.ErrLayoutNotFound) {
			t.Errorf("layout %q: expected ErrLayoutNotFound, got %v", name, err)
		}
		var lnf *core.LayoutNotFoundError
		if !errors.As(err, &lnf) || lnf.Name != name {
			t.Errorf("layout %q: expected LayoutNotFoundError naming it, got %v", name, err)
		}
		if buf.Len() != 0 {
			t.Errorf("layout %q: wrote output on failure: %q", name, buf.String())
		}
	}
}
