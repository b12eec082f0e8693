package markdown

import (
	"errors"
	"fmt"
	"io"
	"regexp"
	"strings"
	"unicode"

	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/util"
	"golang.org/x/net/html"

	"github.com/3-lines-studio/folio/internal/core"
	"github.com/3-lines-studio/folio/internal/registry"
	"github.com/3-lines-studio/folio/internal/types"
)

const rawHTMLOmitted = "<!-- raw HTML omitted -->"

var componentTagPattern = regexp.MustCompile(`</?[A-Z]`)

// renderHTML renders a raw HTML segment. Capitalized tags are component
// invocations; everything else is passed through or omitted depending on
// Options.Unsafe.
func (p *Pipeline) renderHTML(w util.BufWriter, node ast.Node, raw string, block bool) error {
	if !componentTagPattern.MatchString(raw) {
		p.writeRaw(w, raw, block)
		return nil
	}

	z := html.NewTokenizer(strings.NewReader(raw))
	omitted := false
	for {
		tt := z.Next()
		if tt == html.ErrorToken {
			if errors.Is(z.Err(), io.EOF) {
				break
			}
			return z.Err()
		}

		tok := string(z.Raw())
		name := componentName(tok)

		switch {
		case name != "" && tt == html.EndTagToken:
			// close tag of a component opened in an earlier segment
			continue
		case name == "":
			if p.opts.Unsafe || strings.TrimSpace(tok) == "" {
				_, _ = w.WriteString(tok)
			} else if !omitted {
				_, _ = w.WriteString(rawHTMLOmitted)
				omitted = true
			}
			continue
		}

		props := tagProps(z, tok)
		if tt == html.StartTagToken {
			inner, closed := collectInner(z, name)
			if !closed && block {
				return fmt.Errorf("unclosed <%s> tag", name)
			}
			if closed {
				children, err := p.convertFragment(node, inner)
				if err != nil {
					return err
				}
				props[types.ChildrenKey] = children
			}
		}

		breakOut := !block && blockComponents[name] && inParagraph(node)
		if breakOut {
			_, _ = w.WriteString("</p>\n")
		}
		if err := p.invoke(w, node, name, props); err != nil {
			return err
		}
		if breakOut {
			_, _ = w.WriteString("\n<p>")
		}
	}

	if block {
		_ = w.WriteByte('\n')
	}
	return nil
}

// blockComponents render flow content, which cannot sit inside a <p>.
var blockComponents = map[string]bool{
	registry.NameFigure:     true,
	registry.NameTOCInline:  true,
	registry.NameNewsletter: true,
}

func inParagraph(node ast.Node) bool {
	_, ok := node.Parent().(*ast.Paragraph)
	return ok
}

func (p *Pipeline) writeRaw(w util.BufWriter, raw string, block bool) {
	if p.opts.Unsafe {
		_, _ = w.WriteString(raw)
		return
	}
	_, _ = w.WriteString(rawHTMLOmitted)
	if block {
		_ = w.WriteByte('\n')
	}
}

// componentName returns the original-case tag name for a capitalized
// start, end or self-closing tag, or "".
func componentName(tok string) string {
	if !strings.HasPrefix(tok, "<") {
		return ""
	}
	s := strings.TrimPrefix(tok[1:], "/")
	end := strings.IndexFunc(s, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '_' && r != '.'
	})
	if end == -1 {
		end = len(s)
	}
	name := s[:end]
	if name == "" || !unicode.IsUpper(rune(name[0])) {
		return ""
	}
	return name
}

// tagProps reads the attributes of the current token. Names arrive
// lowercased from the tokenizer; types.Props lookups are case-insensitive.
// Quoted values are literal text. Only unquoted values such as {450} or
// {"left"} are unwrapped.
func tagProps(z *html.Tokenizer, raw string) types.Props {
	quoted := quotedAttrs(raw)
	props := types.Props{}
	_, more := z.TagName()
	for more {
		var key, val []byte
		key, val, more = z.TagAttr()
		if quoted[string(key)] {
			props[string(key)] = string(val)
			continue
		}
		props[string(key)] = core.UnwrapAttr(string(val))
	}
	return props
}

// quotedAttrs scans a raw start tag and reports, per lowercased attribute
// name, whether its value was written in single or double quotes. The
// scan follows the tokenizer's rules for splitting attributes.
func quotedAttrs(raw string) map[string]bool {
	quoted := map[string]bool{}
	i := strings.IndexAny(raw, " \t\n\r\f/>")
	if i < 0 {
		return quoted
	}
	isSpace := func(c byte) bool {
		return c == ' ' || c == '\t' || c == '\n' || c == '\r' || c == '\f'
	}
	for i < len(raw) {
		for i < len(raw) && (isSpace(raw[i]) || raw[i] == '/') {
			i++
		}
		if i >= len(raw) || raw[i] == '>' {
			break
		}

		start := i
		for i < len(raw) && !isSpace(raw[i]) && raw[i] != '/' && raw[i] != '=' && raw[i] != '>' {
			i++
		}
		key := strings.ToLower(raw[start:i])
		if i == start {
			i++
			continue
		}

		j := i
		for j < len(raw) && isSpace(raw[j]) {
			j++
		}
		if j >= len(raw) || raw[j] != '=' {
			quoted[key] = false
			continue
		}
		i = j + 1
		for i < len(raw) && isSpace(raw[i]) {
			i++
		}
		if i < len(raw) && (raw[i] == '"' || raw[i] == '\'') {
			q := raw[i]
			end := strings.IndexByte(raw[i+1:], q)
			if end < 0 {
				i = len(raw)
			} else {
				i += end + 2
			}
			quoted[key] = true
			continue
		}
		for i < len(raw) && !isSpace(raw[i]) && raw[i] != '>' {
			i++
		}
		quoted[key] = false
	}
	return quoted
}

// collectInner consumes tokens up to the matching close tag and returns
// the raw text between them.
func collectInner(z *html.Tokenizer, name string) (string, bool) {
	var inner strings.Builder
	depth := 0
	for {
		tt := z.Next()
		if tt == html.ErrorToken {
			return inner.String(), false
		}
		tok := string(z.Raw())
		switch {
		case tt == html.StartTagToken && componentName(tok) == name:
			depth++
		case tt == html.EndTagToken && componentName(tok) == name:
			if depth == 0 {
				return inner.String(), true
			}
			depth--
		}
		inner.WriteString(tok)
	}
}
