package core

import "strings"

type LinkKind int

const (
	LinkExternal LinkKind = iota
	LinkInternal
	LinkAnchor
)

func ClassifyLink(href string) LinkKind {
	switch {
	case strings.HasPrefix(href, "#"):
		return LinkAnchor
	case strings.HasPrefix(href, "//"):
		return LinkExternal
	case strings.HasPrefix(href, "/"):
		return LinkInternal
	default:
		return LinkExternal
	}
}

// IsRelativeSource reports whether an image source should be prefixed with
// the site's image base path.
func IsRelativeSource(src string) bool {
	if src == "" || strings.HasPrefix(src, "/") || strings.HasPrefix(src, "data:") {
		return false
	}
	return !strings.Contains(src, "://")
}
