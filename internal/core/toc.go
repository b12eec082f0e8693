package core

import "slices"

type Heading struct {
	Value string `json:"value"`
	URL   string `json:"url"`
	Depth int    `json:"depth"`
}

type TOCNode struct {
	Heading
	Children []*TOCNode
}

// FilterTOC keeps headings with from <= depth <= to whose value is not in
// exclude.
func FilterTOC(toc []Heading, from, to int, exclude []string) []Heading {
	out := make([]Heading, 0, len(toc))
	for _, h := range toc {
		if h.Depth < from || h.Depth > to {
			continue
		}
		if slices.Contains(exclude, h.Value) {
			continue
		}
		out = append(out, h)
	}
	return out
}

// NestTOC arranges a flat heading list into a tree. A heading becomes the
// child of the nearest preceding heading with a smaller depth.
func NestTOC(toc []Heading) []*TOCNode {
	var roots []*TOCNode
	var stack []*TOCNode

	for _, h := range toc {
		node := &TOCNode{Heading: h}
		for len(stack) > 0 && stack[len(stack)-1].Depth >= h.Depth {
			stack = stack[:len(stack)-1]
		}
		if len(stack) == 0 {
			roots = append(roots, node)
		} else {
			parent := stack[len(stack)-1]
			parent.Children = append(parent.Children, node)
		}
		stack = append(stack, node)
	}

	return roots
}
