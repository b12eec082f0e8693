package core

import (
	"path/filepath"
	"strings"
	"unicode"
)

// SlugForPath turns a content file path relative to its content directory
// into the slug used in URLs: "2024/hello.mdx" -> "2024/hello".
func SlugForPath(relPath string) string {
	name := strings.TrimPrefix(filepath.ToSlash(relPath), "./")
	name = strings.TrimPrefix(name, "/")
	name = strings.TrimSuffix(name, filepath.Ext(name))
	name = strings.TrimSuffix(name, "/index")
	if name == "index" {
		return ""
	}
	return name
}

// TagSlug lowercases a tag and joins words with dashes, dropping
// punctuation other than dashes.
func TagSlug(tag string) string {
	var b strings.Builder
	lastDash := false
	for _, r := range strings.ToLower(strings.TrimSpace(tag)) {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			b.WriteRune(r)
			lastDash = false
		case r == '-' || unicode.IsSpace(r):
			if !lastDash && b.Len() > 0 {
				b.WriteByte('-')
				lastDash = true
			}
		}
	}
	return strings.TrimSuffix(b.String(), "-")
}
