package sanitize

import (
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// dropContentTags are tags whose children are not visible markup.
// When such a tag is disallowed it is deleted with its content instead
// of unwrapped, so script bodies and style sheets never leak into the
// document as text.
var dropContentTags = map[string]bool{
	"frame":    true,
	"frameset": true,
	"iframe":   true,
	"noembed":  true,
	"noframes": true,
	"noscript": true,
	"object":   true,
	"script":   true,
	"style":    true,
	"title":    true,
}

// FilterTree rewrites the children of n in place so that only markup
// permitted by the allow-list remains. Disallowed elements are
// unwrapped (their children take their place), disallowed attributes
// and style declarations are dropped, alias tags are rewritten to their
// canonical form, and comments are removed. Running the filter on
// already-filtered content is a no-op.
func FilterTree(n *html.Node, allow AllowList) {
	filterTree(n, allow, nil)
}

func filterTree(n *html.Node, allow AllowList, st *Stats) {
	for c := n.FirstChild; c != nil; {
		next := c.NextSibling
		switch c.Type {
		case html.CommentNode, html.DoctypeNode:
			n.RemoveChild(c)
			st.recordCommentRemoved()
		case html.ElementNode:
			// Children first, so violations deeper in the tree are
			// resolved before this element's own fate is decided.
			filterTree(c, allow, st)

			name := strings.ToLower(c.Data)
			c.Data = name
			entry, ok := allow[name]
			switch {
			case ok:
				filterAttributes(c, entry, st)
				if entry.Alias != "" {
					st.recordAliasRewrite(name)
					c.Data = entry.Alias
					c.DataAtom = atom.Lookup([]byte(entry.Alias))
				}
			case dropContentTags[name]:
				n.RemoveChild(c)
				st.recordDeleted(name)
			default:
				unwrap(n, c, allow, st)
			}
		}
		c = next
	}
}

// filterAttributes strips every attribute not permitted by the entry.
// A deprecated align attribute is migrated into a text-align style
// declaration when the entry permits that property; the implicit
// "left" and alignments the entry cannot carry are dropped without
// counting as migrations.
func filterAttributes(el *html.Node, entry Entry, st *Stats) {
	if !entry.Attributes["align"] {
		if v := takeAttr(el, "align"); v != "" {
			if !strings.EqualFold(v, "left") && entry.Styles["text-align"] {
				setStyleDeclaration(el, "text-align", strings.ToLower(v))
				st.recordAlignMigration()
			} else {
				st.recordAttributeDropped()
			}
		}
	}

	kept := el.Attr[:0]
	for _, a := range el.Attr {
		key := strings.ToLower(a.Key)
		switch {
		case key == "style" && len(entry.Styles) > 0:
			if v := filterDeclarations(a.Val, entry.Styles, st); v != "" {
				a.Key, a.Val = key, v
				kept = append(kept, a)
			} else {
				st.recordAttributeDropped()
			}
		case entry.Attributes[key]:
			a.Key = key
			kept = append(kept, a)
		default:
			st.recordAttributeDropped()
		}
	}
	el.Attr = kept
}

// unwrap replaces el with its own (already filtered) children,
// discarding only the wrapping tag. If el carried a deprecated align
// attribute the alignment is propagated so it is not silently lost: to
// the parent list item when unwrapping inside a list, otherwise onto
// each of el's children.
func unwrap(parent, el *html.Node, allow AllowList, st *Stats) {
	if v := attrValue(el, "align"); v != "" && !strings.EqualFold(v, "left") {
		if propagateAlign(parent, el, strings.ToLower(v), allow) {
			st.recordAlignMigration()
		}
	}
	for el.FirstChild != nil {
		c := el.FirstChild
		el.RemoveChild(c)
		parent.InsertBefore(c, el)
	}
	parent.RemoveChild(el)
	st.recordUnwrapped(el.Data)
}

// propagateAlign carries alignment from an element about to be
// unwrapped onto the nearest surviving carrier, reporting whether any
// carrier accepted it. Styles are only added where the allow-list
// permits text-align, which keeps the filter idempotent. Text
// children are wrapped in a paragraph so the alignment has an element
// to live on.
func propagateAlign(parent, el *html.Node, val string, allow AllowList) bool {
	// Alignment on a wrapper inside a list item belongs to the item
	// itself; browsers applied it there.
	if parent.Type == html.ElementNode && parent.Data == "li" {
		if styleAllowed(allow, "li", "text-align") {
			setStyleDeclaration(parent, "text-align", val)
			return true
		}
		return false
	}

	applied := false
	for c := el.FirstChild; c != nil; {
		next := c.NextSibling
		switch c.Type {
		case html.ElementNode:
			if styleAllowed(allow, c.Data, "text-align") {
				setStyleDeclaration(c, "text-align", val)
				applied = true
			}
		case html.TextNode:
			if strings.TrimSpace(c.Data) != "" && styleAllowed(allow, "p", "text-align") {
				p := &html.Node{Type: html.ElementNode, Data: "p", DataAtom: atom.P}
				el.InsertBefore(p, c)
				el.RemoveChild(c)
				p.AppendChild(c)
				setStyleDeclaration(p, "text-align", val)
				applied = true
			}
		}
		c = next
	}
	return applied
}

func styleAllowed(allow AllowList, tag, prop string) bool {
	entry, ok := allow[tag]
	return ok && entry.Styles[prop]
}

// setStyleDeclaration merges prop: val into el's style attribute,
// creating the attribute if absent.
func setStyleDeclaration(el *html.Node, prop, val string) {
	for i, a := range el.Attr {
		if strings.EqualFold(a.Key, "style") {
			el.Attr[i].Val = mergeDeclaration(a.Val, prop, val)
			return
		}
	}
	el.Attr = append(el.Attr, html.Attribute{
		Key: "style",
		Val: serializeDeclarations([]declaration{{Prop: prop, Val: val}}),
	})
}

// attrValue returns the value of the named attribute on el, or "".
func attrValue(el *html.Node, key string) string {
	for _, a := range el.Attr {
		if strings.EqualFold(a.Key, key) {
			return a.Val
		}
	}
	return ""
}

// takeAttr removes the named attribute from el and returns its value.
func takeAttr(el *html.Node, key string) string {
	for i, a := range el.Attr {
		if strings.EqualFold(a.Key, key) {
			el.Attr = append(el.Attr[:i], el.Attr[i+1:]...)
			return a.Val
		}
	}
	return ""
}
