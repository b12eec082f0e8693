// Package config reads folio.yaml.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/goccy/go-yaml"

	"github.com/3-lines-studio/folio/internal/core"
)

const FileName = "folio.yaml"

const (
	DefaultAddr           = ":8080"
	DefaultContentDir     = "data"
	DefaultStaticDir      = "public"
	DefaultOutDir         = "dist"
	DefaultPostsPerPage   = 5
	DefaultCacheSize      = 256
	DefaultNewsletterFile = "subscribers.jsonl"
)

type Config struct {
	Title          string `yaml:"title"`
	Description    string `yaml:"description"`
	Author         string `yaml:"author"`
	Language       string `yaml:"language"`
	BaseURL        string `yaml:"baseURL"`
	Addr           string `yaml:"addr"`
	ContentDir     string `yaml:"contentDir"`
	StaticDir      string `yaml:"staticDir"`
	OutDir         string `yaml:"outDir"`
	ImageBasePath  string `yaml:"imageBasePath"`
	CodeStyle      string `yaml:"codeStyle"`
	UnsafeHTML     bool   `yaml:"unsafeHTML"`
	Drafts         bool   `yaml:"drafts"`
	Minify         *bool  `yaml:"minify"`
	PostsPerPage   int    `yaml:"postsPerPage"`
	CacheSize      int    `yaml:"cacheSize"`
	NewsletterFile string `yaml:"newsletterFile"`
	Nav            []Nav  `yaml:"nav"`
	Log            Log    `yaml:"log"`
}

type Nav struct {
	Title string `yaml:"title"`
	Href  string `yaml:"href"`
}

type Log struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// Default is the configuration used when folio.yaml is absent.
func Default() Config {
	var c Config
	c.applyDefaults()
	return c
}

// Parse decodes data strictly, applies defaults and validates the result.
func Parse(data []byte) (Config, error) {
	var c Config
	if len(bytes.TrimSpace(data)) > 0 {
		dec := yaml.NewDecoder(bytes.NewReader(data), yaml.DisallowUnknownField())
		if err := dec.Decode(&c); err != nil {
			return Config{}, fmt.Errorf("decoding %s: %w", FileName, err)
		}
	}

	c.applyDefaults()
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

func (c *Config) applyDefaults() {
	if c.Title == "" {
		c.Title = "folio"
	}
	if c.Language == "" {
		c.Language = "en"
	}
	if c.Addr == "" {
		c.Addr = DefaultAddr
	}
	if c.ContentDir == "" {
		c.ContentDir = DefaultContentDir
	}
	if c.StaticDir == "" {
		c.StaticDir = DefaultStaticDir
	}
	if c.OutDir == "" {
		c.OutDir = DefaultOutDir
	}
	if c.ImageBasePath == "" {
		c.ImageBasePath = "/static/images"
	}
	if c.PostsPerPage == 0 {
		c.PostsPerPage = DefaultPostsPerPage
	}
	if c.CacheSize == 0 {
		c.CacheSize = DefaultCacheSize
	}
	if c.NewsletterFile == "" {
		c.NewsletterFile = DefaultNewsletterFile
	}
	if c.Minify == nil {
		minify := true
		c.Minify = &minify
	}
	if len(c.Nav) == 0 {
		c.Nav = []Nav{
			{Title: "Blog", Href: "/blog"},
			{Title: "Tags", Href: "/tags"},
			{Title: "About", Href: "/about"},
		}
	}
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
	if c.Log.Format == "" {
		c.Log.Format = "text"
	}
}

func (c Config) Validate() error {
	var errs []error

	if c.BaseURL != "" {
		u, err := url.Parse(c.BaseURL)
		if err != nil || u.Scheme == "" || u.Host == "" {
			errs = append(errs, fmt.Errorf("baseURL %q must be an absolute URL", c.BaseURL))
		}
	}
	if c.PostsPerPage < 0 {
		errs = append(errs, fmt.Errorf("postsPerPage must be positive, got %d", c.PostsPerPage))
	}
	if c.CacheSize < 0 {
		errs = append(errs, fmt.Errorf("cacheSize must be positive, got %d", c.CacheSize))
	}
	switch strings.ToLower(c.Log.Format) {
	case "text", "json":
	default:
		errs = append(errs, fmt.Errorf("log.format must be text or json, got %q", c.Log.Format))
	}
	for _, n := range c.Nav {
		if n.Title == "" || n.Href == "" {
			errs = append(errs, fmt.Errorf("nav entries need a title and href"))
			break
		}
	}

	return errors.Join(errs...)
}

func (c Config) MinifyEnabled() bool {
	return c.Minify == nil || *c.Minify
}

// CanonicalURL joins BaseURL and a route path. It returns "" without
// a BaseURL.
func (c Config) CanonicalURL(routePath string) string {
	if c.BaseURL == "" {
		return ""
	}
	return strings.TrimSuffix(c.BaseURL, "/") + core.NormalizePath(routePath)
}

func (c Config) NavLinks() []core.NavLink {
	links := make([]core.NavLink, len(c.Nav))
	for i, n := range c.Nav {
		links[i] = core.NavLink{Href: n.Href, Title: n.Title}
	}
	return links
}
