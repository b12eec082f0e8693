package core

import (
	"fmt"
	"path"
	"strings"
)

func NormalizePath(path string) string {
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	if path != "/" && strings.HasSuffix(path, "/") {
		path = strings.TrimSuffix(path, "/")
	}
	return path
}

func ValidateSlug(slug string) error {
	if slug == "" {
		return fmt.Errorf("slug cannot be empty")
	}

	if strings.HasPrefix(slug, "/") {
		return fmt.Errorf("slug cannot start with /")
	}

	if strings.ContainsAny(slug, "?#*") {
		return fmt.Errorf("slug cannot contain query, fragment or wildcard characters")
	}

	if strings.Contains(slug, "..") {
		return fmt.Errorf("slug cannot contain parent directory references")
	}

	return nil
}

func PostPath(slug string) string {
	return "/blog/" + slug
}

func TagPath(tag string) string {
	return "/tags/" + TagSlug(tag)
}

// DefaultAuthor is the author slug served at /about.
const DefaultAuthor = "default"

func AuthorPath(slug string) string {
	if slug == "" || slug == DefaultAuthor {
		return "/about"
	}
	return "/authors/" + slug
}

func BlogPagePath(page int) string {
	if page <= 1 {
		return "/blog"
	}
	return fmt.Sprintf("/blog/page/%d", page)
}

// OutputPath maps a route path to the file written by a static export:
// "/" -> "index.html", "/blog/a" -> "blog/a/index.html".
func OutputPath(routePath string) string {
	p := strings.Trim(NormalizePath(routePath), "/")
	if p == "" {
		return "index.html"
	}
	return path.Join(p, "index.html")
}
