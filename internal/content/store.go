package content

import (
	"fmt"
	"sort"

	"github.com/3-lines-studio/folio/internal/core"
)

// Store is immutable once built. A reload builds a new Store.
type Store struct {
	docs    []*Document
	bySlug  map[string]*Document
	byTag   map[string][]*Document
	tags    map[string]int
	authors map[string]*Author
}

type TagCount struct {
	Tag   string
	Slug  string
	Count int
}

// NewStore orders documents newest first and rejects duplicate slugs.
func NewStore(docs []*Document, authors []*Author) (*Store, error) {
	s := &Store{
		docs:    append([]*Document(nil), docs...),
		bySlug:  make(map[string]*Document, len(docs)),
		byTag:   map[string][]*Document{},
		tags:    map[string]int{},
		authors: make(map[string]*Author, len(authors)),
	}

	sort.SliceStable(s.docs, func(i, j int) bool {
		if s.docs[i].Date.Equal(s.docs[j].Date) {
			return s.docs[i].Slug < s.docs[j].Slug
		}
		return s.docs[i].Date.After(s.docs[j].Date)
	})

	for _, doc := range s.docs {
		if err := core.ValidateSlug(doc.Slug); err != nil {
			return nil, fmt.Errorf("%s: %w", doc.Path, err)
		}
		if prev, ok := s.bySlug[doc.Slug]; ok {
			return nil, fmt.Errorf("duplicate slug %q: %s and %s", doc.Slug, prev.Path, doc.Path)
		}
		s.bySlug[doc.Slug] = doc

		seen := map[string]bool{}
		for _, tag := range doc.Tags {
			slug := core.TagSlug(tag)
			if slug == "" || seen[slug] {
				continue
			}
			seen[slug] = true
			s.byTag[slug] = append(s.byTag[slug], doc)
			s.tags[slug]++
		}
	}

	for _, a := range authors {
		if prev, ok := s.authors[a.Slug]; ok {
			return nil, fmt.Errorf("duplicate author %q: %s and %s", a.Slug, prev.Path, a.Path)
		}
		s.authors[a.Slug] = a
	}

	return s, nil
}

// All returns every document, newest first.
func (s *Store) All() []*Document {
	return append([]*Document(nil), s.docs...)
}

func (s *Store) Len() int {
	return len(s.docs)
}

func (s *Store) BySlug(slug string) (*Document, bool) {
	doc, ok := s.bySlug[slug]
	return doc, ok
}

// ByTag matches on core.TagSlug, so "Next JS" and "next-js" are the same tag.
func (s *Store) ByTag(tag string) []*Document {
	return append([]*Document(nil), s.byTag[core.TagSlug(tag)]...)
}

// Tags returns tag counts, most used first.
func (s *Store) Tags() []TagCount {
	out := make([]TagCount, 0, len(s.tags))
	for slug, count := range s.tags {
		out = append(out, TagCount{Tag: s.displayTag(slug), Slug: slug, Count: count})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count == out[j].Count {
			return out[i].Slug < out[j].Slug
		}
		return out[i].Count > out[j].Count
	})
	return out
}

func (s *Store) displayTag(slug string) string {
	for _, tag := range s.byTag[slug][0].Tags {
		if core.TagSlug(tag) == slug {
			return tag
		}
	}
	return slug
}

// Neighbors returns the older (prev) and newer (next) documents around slug.
func (s *Store) Neighbors(slug string) (prev, next *Document) {
	for i, doc := range s.docs {
		if doc.Slug != slug {
			continue
		}
		if i+1 < len(s.docs) {
			prev = s.docs[i+1]
		}
		if i > 0 {
			next = s.docs[i-1]
		}
		return prev, next
	}
	return nil, nil
}

func (s *Store) Author(slug string) (*Author, bool) {
	a, ok := s.authors[slug]
	return a, ok
}

// AuthorsOf resolves a document's author slugs, skipping unknown ones.
func (s *Store) AuthorsOf(doc *Document) []*Author {
	out := make([]*Author, 0, len(doc.Authors))
	for _, slug := range doc.Authors {
		if a, ok := s.authors[slug]; ok {
			out = append(out, a)
		}
	}
	return out
}

func (s *Store) Authors() []*Author {
	out := make([]*Author, 0, len(s.authors))
	for _, a := range s.authors {
		out = append(out, a)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Slug < out[j].Slug })
	return out
}
