package usecase

import (
	"bytes"
	"context"
	"fmt"
	"html/template"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/3-lines-studio/folio/internal/components"
	"github.com/3-lines-studio/folio/internal/content"
	"github.com/3-lines-studio/folio/internal/core"
	"github.com/3-lines-studio/folio/internal/layouts"
	"github.com/3-lines-studio/folio/internal/logging"
	"github.com/3-lines-studio/folio/internal/registry"
	"github.com/3-lines-studio/folio/internal/types"
)

type SiteInfo struct {
	Title        string
	Description  string
	Language     string
	Nav          []core.NavLink
	Stylesheets  []string
	PostsPerPage int
	// CanonicalURL maps a route path to its absolute URL, or "".
	CanonicalURL func(routePath string) string
}

type ServePageInput struct {
	Path string
	Mode core.Mode
}

type ServePageOutput struct {
	Route  core.Route
	Title  string
	HTML   string
	ETag   string
	Cached bool
	// NotFound is set when the path names no page or no content.
	NotFound bool
	Error    error
}

type cachedPage struct {
	title string
	html  string
	etag  string
}

type PageService struct {
	components ComponentRenderer
	documents  DocumentRenderer
	source     ContentSource
	site       SiteInfo
	cache      *lru.Cache[string, cachedPage]
}

// NewPageService caches up to cacheSize rendered pages; zero disables the
// cache.
func NewPageService(components ComponentRenderer, documents DocumentRenderer, source ContentSource, site SiteInfo, cacheSize int) (*PageService, error) {
	s := &PageService{
		components: components,
		documents:  documents,
		source:     source,
		site:       site,
	}

	if cacheSize > 0 {
		cache, err := lru.New[string, cachedPage](cacheSize)
		if err != nil {
			return nil, fmt.Errorf("page cache: %w", err)
		}
		s.cache = cache
	}

	return s, nil
}

// Purge drops every cached page.
func (s *PageService) Purge() {
	if s.cache != nil {
		s.cache.Purge()
	}
}

func (s *PageService) ServePage(ctx context.Context, input ServePageInput) ServePageOutput {
	route := core.ParseRoute(input.Path)
	if route.Kind == core.RouteNotFound {
		return ServePageOutput{Route: route, NotFound: true}
	}

	useCache := s.cache != nil && input.Mode != core.ModeDev
	if useCache {
		if page, ok := s.cache.Get(route.Path); ok {
			return ServePageOutput{Route: route, Title: page.title, HTML: page.html, ETag: page.etag, Cached: true}
		}
	}

	out := s.render(ctx, route, input.Mode == core.ModeDev)
	if useCache && out.Error == nil && !out.NotFound {
		s.cache.Add(route.Path, cachedPage{title: out.Title, html: out.HTML, etag: out.ETag})
	}
	return out
}

func (s *PageService) renderUncached(ctx context.Context, path string) ServePageOutput {
	return s.render(ctx, core.ParseRoute(path), false)
}

func (s *PageService) render(ctx context.Context, route core.Route, dev bool) ServePageOutput {
	title, body, found, err := s.renderBody(ctx, route)
	if err != nil {
		return ServePageOutput{Route: route, Error: fmt.Errorf("render %s: %w", route.Path, err)}
	}
	if !found {
		return ServePageOutput{Route: route, NotFound: true}
	}

	html, err := s.renderShell(route, title, body, dev)
	if err != nil {
		return ServePageOutput{Route: route, Error: err}
	}

	logging.FromContext(ctx).Debug("page rendered", "path", route.Path, "kind", route.Kind.String())
	return ServePageOutput{Route: route, Title: title, HTML: html, ETag: core.ETag([]byte(html))}
}

func (s *PageService) renderBody(ctx context.Context, route core.Route) (string, template.HTML, bool, error) {
	store := s.source.Store()

	switch route.Kind {
	case core.RouteHome:
		return s.renderHome(ctx, store)
	case core.RouteBlog:
		return s.renderBlog(ctx, store, route.Page)
	case core.RoutePost:
		return s.renderPost(ctx, store, route.Slug)
	case core.RouteTags:
		return s.renderList(ctx, "Tags", types.Props{
			layouts.PropPosts:     store.All(),
			layouts.PropTagCounts: store.Tags(),
		})
	case core.RouteTag:
		posts := store.ByTag(route.Tag)
		if len(posts) == 0 {
			return "", "", false, nil
		}
		title := route.Tag
		for _, tc := range store.Tags() {
			if tc.Slug == core.TagSlug(route.Tag) {
				title = tc.Tag
			}
		}
		return s.renderList(ctx, title, types.Props{
			layouts.PropPosts:     posts,
			layouts.PropTagCounts: store.Tags(),
			layouts.PropTag:       route.Tag,
		})
	case core.RouteAuthor:
		return s.renderAuthor(ctx, store, route.Slug)
	default:
		return "", "", false, nil
	}
}

func (s *PageService) renderHome(ctx context.Context, store *content.Store) (string, template.HTML, bool, error) {
	posts := store.All()
	if n := s.site.PostsPerPage; n > 0 && len(posts) > n {
		posts = posts[:n]
	}

	var buf bytes.Buffer
	err := s.components.Render(ctx, &buf, registry.NameWrapper, types.Props{
		components.LayoutKey: core.LayoutList,
		layouts.PropTitle:    "Latest",
		layouts.PropPosts:    posts,
	})
	if err != nil {
		return "", "", false, err
	}
	if err := s.components.Render(ctx, &buf, registry.NameNewsletter, types.Props{}); err != nil {
		return "", "", false, err
	}

	return s.site.Title, template.HTML(buf.String()), true, nil
}

func (s *PageService) renderBlog(ctx context.Context, store *content.Store, page int) (string, template.HTML, bool, error) {
	posts := store.All()
	start, end, pagination, ok := core.Paginate(len(posts), s.site.PostsPerPage, page)
	if !ok {
		return "", "", false, nil
	}

	return s.renderList(ctx, "All Posts", types.Props{
		layouts.PropPosts:      posts[start:end],
		layouts.PropPagination: pagination,
		layouts.PropTagCounts:  store.Tags(),
	})
}

func (s *PageService) renderList(ctx context.Context, title string, props types.Props) (string, template.HTML, bool, error) {
	props[components.LayoutKey] = core.DefaultListLayout
	props[layouts.PropTitle] = title

	var buf bytes.Buffer
	if err := s.components.Render(ctx, &buf, registry.NameWrapper, props); err != nil {
		return "", "", false, err
	}
	return title, template.HTML(buf.String()), true, nil
}

func (s *PageService) renderPost(ctx context.Context, store *content.Store, slug string) (string, template.HTML, bool, error) {
	doc, ok := store.BySlug(slug)
	if !ok {
		return "", "", false, nil
	}

	ctx = types.WithPage(ctx, &types.Page{Slug: doc.Slug})
	body, err := s.documents.RenderDocument(ctx, doc.Parsed())
	if err != nil {
		return "", "", false, err
	}

	prev, next := store.Neighbors(slug)
	props := types.Props{
		components.LayoutKey:      doc.Layout,
		layouts.PropContent:       doc,
		types.ChildrenKey:         body,
		layouts.PropAuthorDetails: store.AuthorsOf(doc),
	}
	if prev != nil {
		props[layouts.PropPrev] = prev
	}
	if next != nil {
		props[layouts.PropNext] = next
	}

	var buf bytes.Buffer
	if err := s.components.Render(ctx, &buf, registry.NameWrapper, props); err != nil {
		return "", "", false, err
	}
	return doc.Title, template.HTML(buf.String()), true, nil
}

func (s *PageService) renderAuthor(ctx context.Context, store *content.Store, slug string) (string, template.HTML, bool, error) {
	author, ok := store.Author(slug)
	if !ok {
		return "", "", false, nil
	}

	ctx = types.WithPage(ctx, &types.Page{Slug: author.Slug})
	body, err := s.documents.RenderDocument(ctx, author.Parsed())
	if err != nil {
		return "", "", false, err
	}

	var buf bytes.Buffer
	err = s.components.Render(ctx, &buf, registry.NameWrapper, types.Props{
		components.LayoutKey: author.Layout,
		layouts.PropContent:  author,
		types.ChildrenKey:    body,
	})
	if err != nil {
		return "", "", false, err
	}
	return "About", template.HTML(buf.String()), true, nil
}

func (s *PageService) renderShell(route core.Route, title string, body template.HTML, dev bool) (string, error) {
	data := core.ShellData{
		Lang:        s.site.Language,
		Title:       title,
		SiteTitle:   s.site.Title,
		Description: s.site.Description,
		Stylesheets: s.site.Stylesheets,
		Nav:         s.site.Nav,
		Body:        body,
		DevReload:   dev,
	}
	if s.site.CanonicalURL != nil {
		data.CanonicalURL = s.site.CanonicalURL(route.Path)
	}
	return core.RenderHTMLShell(data)
}

// Routes lists every page path the current content produces.
func (s *PageService) Routes() []string {
	store := s.source.Store()

	routes := []string{"/", "/blog"}
	_, _, p, _ := core.Paginate(store.Len(), s.site.PostsPerPage, 1)
	for page := 2; page <= p.TotalPages; page++ {
		routes = append(routes, core.BlogPagePath(page))
	}
	for _, doc := range store.All() {
		routes = append(routes, doc.URL())
	}
	routes = append(routes, "/tags")
	for _, tc := range store.Tags() {
		routes = append(routes, core.TagPath(tc.Slug))
	}
	for _, a := range store.Authors() {
		routes = append(routes, core.AuthorPath(a.Slug))
	}
	return routes
}
