// Package layouts holds the page layouts the wrapper component selects
// by name.
package layouts

import (
	"context"
	"embed"
	"fmt"
	"html/template"
	"io"
	"time"

	"github.com/3-lines-studio/folio/internal/content"
	"github.com/3-lines-studio/folio/internal/core"
	"github.com/3-lines-studio/folio/internal/types"
)

const (
	PropContent       = "content"
	PropAuthorDetails = "authorDetails"
	PropPrev          = "prev"
	PropNext          = "next"
	PropPosts         = "posts"
	PropTitle         = "title"
	PropPagination    = "pagination"
	PropTagCounts     = "tagCounts"
	PropTag           = "tag"
)

//go:embed templates/*.html
var templateFS embed.FS

var templates = template.Must(template.New("layouts").Funcs(template.FuncMap{
	"formatDate": func(t time.Time) string { return t.Format("January 2, 2006") },
	"isoDate":    func(t time.Time) string { return t.Format("2006-01-02") },
	"tagPath":    core.TagPath,
	"authorPath": core.AuthorPath,
}).ParseFS(templateFS, "templates/*.html"))

type postData struct {
	Content  *content.Document
	Children template.HTML
	Authors  []*content.Author
	Prev     *content.Document
	Next     *content.Document
	Banner   string
}

type listData struct {
	Title      string
	Posts      []*content.Document
	Pagination *core.Pagination
	Tags       []content.TagCount
	CurrentTag string
}

type authorData struct {
	Author   *content.Author
	Children template.HTML
}

// Layout renders one named template from the embedded set.
type Layout struct {
	name core.LayoutName
	data func(types.Props) (any, error)
}

func (l *Layout) Name() core.LayoutName {
	return l.name
}

func (l *Layout) Render(ctx context.Context, w io.Writer, props types.Props) error {
	data, err := l.data(props)
	if err != nil {
		return fmt.Errorf("%s: %w", l.name, err)
	}
	return templates.ExecuteTemplate(w, string(l.name), data)
}

// Defaults returns an implementation for every core.KnownLayouts name.
func Defaults() map[core.LayoutName]types.Component {
	return map[core.LayoutName]types.Component{
		core.LayoutPost:         &Layout{name: core.LayoutPost, data: postProps},
		core.LayoutPostSimple:   &Layout{name: core.LayoutPostSimple, data: postProps},
		core.LayoutPostBanner:   &Layout{name: core.LayoutPostBanner, data: postProps},
		core.LayoutList:         &Layout{name: core.LayoutList, data: listProps},
		core.LayoutListWithTags: &Layout{name: core.LayoutListWithTags, data: listProps},
		core.LayoutAuthor:       &Layout{name: core.LayoutAuthor, data: authorProps},
	}
}

func postProps(props types.Props) (any, error) {
	doc, ok := props[PropContent].(*content.Document)
	if !ok || doc == nil {
		return nil, fmt.Errorf("%q prop must be a *content.Document", PropContent)
	}

	data := postData{Content: doc, Children: props.Children()}
	data.Authors, _ = props[PropAuthorDetails].([]*content.Author)
	data.Prev, _ = props[PropPrev].(*content.Document)
	data.Next, _ = props[PropNext].(*content.Document)
	if len(doc.Images) > 0 {
		data.Banner = doc.Images[0]
	}
	return data, nil
}

func listProps(props types.Props) (any, error) {
	data := listData{
		Title:      props.String(PropTitle),
		CurrentTag: core.TagSlug(props.String(PropTag)),
	}
	data.Posts, _ = props[PropPosts].([]*content.Document)
	data.Tags, _ = props[PropTagCounts].([]content.TagCount)

	switch p := props[PropPagination].(type) {
	case core.Pagination:
		data.Pagination = &p
	case *core.Pagination:
		data.Pagination = p
	}

	if data.Title == "" {
		data.Title = "All Posts"
	}
	return data, nil
}

func authorProps(props types.Props) (any, error) {
	author, ok := props[PropContent].(*content.Author)
	if !ok || author == nil {
		return nil, fmt.Errorf("%q prop must be a *content.Author", PropContent)
	}
	return authorData{Author: author, Children: props.Children()}, nil
}
