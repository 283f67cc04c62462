package sanitize

import (
	"bytes"
	"strings"

	"golang.org/x/net/html"
)

// CleanContent removes empty elements from the subtree under n, bottom
// up. An element is removed when its tag is in the allow-list, is not
// marked may-be-empty, and its serialized inner content is empty after
// trimming whitespace. Intentionally-empty tags (line breaks, images,
// rules) and tags absent from the allow-list are left alone; the
// latter do not exist after filtering, and the pruner does not
// re-validate tag legality.
func CleanContent(n *html.Node, allow AllowList) {
	cleanContent(n, allow, nil)
}

func cleanContent(n *html.Node, allow AllowList, st *Stats) {
	for c := n.FirstChild; c != nil; {
		next := c.NextSibling
		if c.Type == html.ElementNode {
			cleanContent(c, allow, st)
			if entry, ok := allow[c.Data]; ok && !entry.MayBeEmpty {
				if strings.TrimSpace(innerMarkup(c)) == "" {
					n.RemoveChild(c)
					st.recordPruned()
				}
			}
		}
		c = next
	}
}

// innerMarkup serializes the children of n. Rendering into a buffer
// cannot fail, so the error is discarded.
func innerMarkup(n *html.Node) string {
	var buf bytes.Buffer
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		_ = html.Render(&buf, c)
	}
	return buf.String()
}
