// Package content loads the site's markdown documents and answers the
// queries the pages are built from.
package content

import (
	"fmt"
	"strings"
	"time"

	"github.com/3-lines-studio/folio/internal/core"
	"github.com/3-lines-studio/folio/internal/markdown"
)

type Document struct {
	Slug         string
	Path         string
	Title        string
	Date         time.Time
	Lastmod      time.Time
	Tags         []string
	Summary      string
	Draft        bool
	Layout       core.LayoutName
	Authors      []string
	Images       []string
	CanonicalURL string
	Meta         map[string]any
	Source       []byte
	TOC          []core.Heading

	parsed *markdown.Document
}

func (d *Document) Parsed() *markdown.Document {
	return d.parsed
}

func (d *Document) URL() string {
	return core.PostPath(d.Slug)
}

type Author struct {
	Slug       string
	Name       string
	Avatar     string
	Occupation string
	Company    string
	Email      string
	Twitter    string
	Linkedin   string
	Github     string
	Layout     core.LayoutName
	Path       string
	TOC        []core.Heading
	Meta       map[string]any

	parsed *markdown.Document
}

func (a *Author) Parsed() *markdown.Document {
	return a.parsed
}

func newDocument(path, slug string, parsed *markdown.Document) (*Document, error) {
	meta := parsed.Meta

	layout, err := core.ParseLayoutName(metaString(meta, "layout"))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if !core.IsPostLayout(layout) {
		return nil, fmt.Errorf("%s: %q is not a post layout", path, layout)
	}

	title := metaString(meta, "title")
	if title == "" {
		return nil, fmt.Errorf("%s: missing title", path)
	}

	date, err := metaTime(meta, "date")
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	lastmod, err := metaTime(meta, "lastmod")
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	authors := metaStrings(meta, "authors")
	if len(authors) == 0 {
		authors = []string{"default"}
	}

	return &Document{
		Slug:         slug,
		Path:         path,
		Title:        title,
		Date:         date,
		Lastmod:      lastmod,
		Tags:         metaStrings(meta, "tags"),
		Summary:      metaString(meta, "summary"),
		Draft:        metaBool(meta, "draft"),
		Layout:       layout,
		Authors:      authors,
		Images:       metaStrings(meta, "images"),
		CanonicalURL: metaString(meta, "canonicalUrl"),
		Meta:         meta,
		TOC:          parsed.TOC,
		parsed:       parsed,
	}, nil
}

func newAuthor(path, slug string, parsed *markdown.Document) (*Author, error) {
	meta := parsed.Meta

	layout := core.LayoutAuthor
	if name := metaString(meta, "layout"); name != "" {
		parsedLayout, err := core.ParseLayoutName(name)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		layout = parsedLayout
	}

	name := metaString(meta, "name")
	if name == "" {
		return nil, fmt.Errorf("%s: missing name", path)
	}

	return &Author{
		Slug:       slug,
		Name:       name,
		Avatar:     metaString(meta, "avatar"),
		Occupation: metaString(meta, "occupation"),
		Company:    metaString(meta, "company"),
		Email:      metaString(meta, "email"),
		Twitter:    metaString(meta, "twitter"),
		Linkedin:   metaString(meta, "linkedin"),
		Github:     metaString(meta, "github"),
		Layout:     layout,
		Path:       path,
		TOC:        parsed.TOC,
		Meta:       meta,
		parsed:     parsed,
	}, nil
}

func metaString(meta map[string]any, key string) string {
	switch v := meta[key].(type) {
	case string:
		return strings.TrimSpace(v)
	case nil:
		return ""
	default:
		return fmt.Sprint(v)
	}
}

func metaBool(meta map[string]any, key string) bool {
	switch v := meta[key].(type) {
	case bool:
		return v
	case string:
		return core.AttrBool(v)
	default:
		return false
	}
}

// metaStrings accepts both a YAML list and a single comma separated string.
func metaStrings(meta map[string]any, key string) []string {
	switch v := meta[key].(type) {
	case []any:
		out := make([]string, 0, len(v))
		for _, item := range v {
			if s := strings.TrimSpace(fmt.Sprint(item)); s != "" {
				out = append(out, s)
			}
		}
		return out
	case []string:
		return v
	case string:
		return core.SplitList(v)
	default:
		return nil
	}
}

var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

func metaTime(meta map[string]any, key string) (time.Time, error) {
	switch v := meta[key].(type) {
	case nil:
		return time.Time{}, nil
	case time.Time:
		return v, nil
	case string:
		if v == "" {
			return time.Time{}, nil
		}
		for _, layout := range dateLayouts {
			if t, err := time.Parse(layout, v); err == nil {
				return t, nil
			}
		}
		return time.Time{}, fmt.Errorf("invalid %s %q", key, v)
	default:
		return time.Time{}, fmt.Errorf("invalid %s %v", key, v)
	}
}
