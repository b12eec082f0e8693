package core

import (
	"strconv"
	"strings"
)

type RouteKind int

const (
	RouteNotFound RouteKind = iota
	RouteHome
	RouteBlog
	RoutePost
	RouteTags
	RouteTag
	RouteAuthor
)

func (k RouteKind) String() string {
	switch k {
	case RouteHome:
		return "home"
	case RouteBlog:
		return "blog"
	case RoutePost:
		return "post"
	case RouteTags:
		return "tags"
	case RouteTag:
		return "tag"
	case RouteAuthor:
		return "author"
	default:
		return "not-found"
	}
}

// Route is a page request decoded from its path.
type Route struct {
	Kind RouteKind
	Path string
	Slug string
	Tag  string
	Page int
}

// ParseRoute maps a request path to the page it names. Slugs and pages
// are not checked against content here.
func ParseRoute(requestPath string) Route {
	p := NormalizePath(requestPath)
	r := Route{Path: p}

	switch {
	case p == "/":
		r.Kind = RouteHome
	case p == "/blog":
		r.Kind, r.Page = RouteBlog, 1
	case strings.HasPrefix(p, "/blog/page/"):
		n, err := strconv.Atoi(strings.TrimPrefix(p, "/blog/page/"))
		if err != nil || n < 1 {
			return Route{Kind: RouteNotFound, Path: p}
		}
		r.Kind, r.Page = RouteBlog, n
	case strings.HasPrefix(p, "/blog/"):
		r.Kind, r.Slug = RoutePost, strings.TrimPrefix(p, "/blog/")
		if ValidateSlug(r.Slug) != nil {
			return Route{Kind: RouteNotFound, Path: p}
		}
	case p == "/tags":
		r.Kind = RouteTags
	case strings.HasPrefix(p, "/tags/"):
		r.Kind, r.Tag = RouteTag, strings.TrimPrefix(p, "/tags/")
		if r.Tag == "" || strings.Contains(r.Tag, "/") {
			return Route{Kind: RouteNotFound, Path: p}
		}
	case p == "/about":
		r.Kind, r.Slug = RouteAuthor, DefaultAuthor
	case strings.HasPrefix(p, "/authors/"):
		r.Kind, r.Slug = RouteAuthor, strings.TrimPrefix(p, "/authors/")
		if r.Slug == "" || strings.Contains(r.Slug, "/") {
			return Route{Kind: RouteNotFound, Path: p}
		}
	default:
		r.Kind = RouteNotFound
	}

	return r
}
