package sanitize

import (
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// blockTags are the tags recognized as valid top-level blocks by the
// structural normalizer. Anything else at the top level is inline
// content that needs a paragraph wrapper.
var blockTags = map[string]bool{
	"blockquote": true,
	"hr":         true,
	"p":          true,
	"ol":         true,
	"ul":         true,
	"h1":         true,
	"h2":         true,
	"h3":         true,
	"h4":         true,
}

// WrapTextNodes normalizes the direct children of n so that every unit
// of inline content sits inside a block-level container. Consecutive
// inline siblings merge into a single paragraph; existing block
// elements are left untouched and end the current run.
func WrapTextNodes(n *html.Node) {
	wrapTextNodes(n, nil)
}

func wrapTextNodes(n *html.Node, st *Stats) {
	var run *html.Node // paragraph accepting the current inline run
	for c := n.FirstChild; c != nil; {
		next := c.NextSibling
		if c.Type == html.ElementNode && blockTags[c.Data] {
			run = nil
			c = next
			continue
		}
		if run != nil {
			n.RemoveChild(c)
			run.AppendChild(c)
			st.recordNodeMerged()
		} else {
			p := &html.Node{Type: html.ElementNode, Data: "p", DataAtom: atom.P}
			n.InsertBefore(p, c)
			n.RemoveChild(c)
			p.AppendChild(c)
			run = p
			st.recordParagraphWrapped()
		}
		c = next
	}
}
