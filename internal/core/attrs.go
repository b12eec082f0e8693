package core

import (
	"strconv"
	"strings"
)

// UnwrapAttr strips the expression braces and string quotes that MDX style
// attributes carry: `{450}` -> `450`, `{"left"}` -> `left`.
func UnwrapAttr(v string) string {
	v = strings.TrimSpace(v)
	if len(v) >= 2 && v[0] == '{' && v[len(v)-1] == '}' {
		v = strings.TrimSpace(v[1 : len(v)-1])
	}
	if len(v) >= 2 {
		first, last := v[0], v[len(v)-1]
		if (first == '"' || first == '\'' || first == '`') && first == last {
			v = v[1 : len(v)-1]
		}
	}
	return v
}

// AttrInt parses an attribute as an integer, returning 0 for anything
// that is not one.
func AttrInt(v string) int {
	n, err := strconv.Atoi(UnwrapAttr(v))
	if err != nil {
		return 0
	}
	return n
}

// AttrBool treats a bare attribute (empty value) as true, matching JSX.
func AttrBool(v string) bool {
	switch strings.ToLower(UnwrapAttr(v)) {
	case "", "true", "1", "yes":
		return true
	default:
		return false
	}
}

func SplitList(v string) []string {
	v = UnwrapAttr(v)
	v = strings.TrimPrefix(v, "[")
	v = strings.TrimSuffix(v, "]")
	if strings.TrimSpace(v) == "" {
		return nil
	}
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = UnwrapAttr(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}

// ParseCodeInfo splits a fenced code block info string into its language
// and optional title. Both `go title="main.go"` and `go:main.go` are
// accepted.
func ParseCodeInfo(info string) (language, title string) {
	info = strings.TrimSpace(info)
	if info == "" {
		return "", ""
	}

	fields := strings.Fields(info)
	language = fields[0]
	if lang, file, ok := strings.Cut(language, ":"); ok {
		language, title = lang, file
	}

	rest := strings.TrimSpace(strings.TrimPrefix(info, fields[0]))
	if idx := strings.Index(rest, "title="); idx >= 0 {
		v := rest[idx+len("title="):]
		if len(v) > 0 && (v[0] == '"' || v[0] == '\'') {
			if end := strings.IndexByte(v[1:], v[0]); end >= 0 {
				return language, v[1 : end+1]
			}
		}
		if f := strings.Fields(v); len(f) > 0 {
			title = f[0]
		}
	}

	return language, title
}
