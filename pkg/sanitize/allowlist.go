package sanitize

import "strings"

// Entry records what a single tag is permitted to carry. Entries are
// keyed by lower-cased tag name in an AllowList.
type Entry struct {
	// Attributes is the set of permitted attribute names.
	Attributes map[string]bool

	// Styles is the set of permitted CSS property names in a style
	// attribute. An empty set means the style attribute is removed
	// outright.
	Styles map[string]bool

	// Alias, when non-empty, is the canonical tag this tag must be
	// rewritten to (e.g. "strong" on the entry for "b").
	Alias string

	// MayBeEmpty marks tags that survive empty-node pruning.
	MayBeEmpty bool

	// Tool is the identifier of the tool that registered this tag, or
	// empty for structural-only and custom tags.
	Tool string
}

// AllowList maps lower-cased tag names to their permission records. It
// is built once per editor configuration and read-only afterwards.
type AllowList map[string]Entry

// Tags returns the tag names present in the allow-list.
func (a AllowList) Tags() []string {
	out := make([]string, 0, len(a))
	for tag := range a {
		out = append(out, tag)
	}
	return out
}

// Clone returns a deep copy of the allow-list.
func (a AllowList) Clone() AllowList {
	out := make(AllowList, len(a))
	for tag, e := range a {
		out[tag] = cloneEntry(e)
	}
	return out
}

func cloneEntry(e Entry) Entry {
	e.Attributes = cloneSet(e.Attributes)
	e.Styles = cloneSet(e.Styles)
	return e
}

func cloneSet(m map[string]bool) map[string]bool {
	out := make(map[string]bool, len(m))
	for k := range m {
		out[k] = true
	}
	return out
}

func sliceToSet(vals []string) map[string]bool {
	m := make(map[string]bool, len(vals))
	for _, v := range vals {
		m[strings.ToLower(v)] = true
	}
	return m
}

// DefaultBase returns the baseline allow-list present in every
// configuration: the line-break tag with no attributes, always allowed
// to be empty.
func DefaultBase() AllowList {
	return AllowList{
		"br": {
			Attributes: map[string]bool{},
			Styles:     map[string]bool{},
			MayBeEmpty: true,
		},
	}
}

// BuildAllowList derives an allow-list from an ordered sequence of tool
// identifiers plus optional custom tag declarations. Unknown and
// tag-less identifiers are skipped; on conflicting registrations the
// last tool wins. The base list is copied, never mutated, so a shared
// base is safe across editor instances.
func BuildAllowList(tools []string, base AllowList, custom []CustomTag) AllowList {
	out := base.Clone()
	if out == nil {
		out = make(AllowList)
	}

	for _, name := range tools {
		t, ok := LookupTool(name)
		if !ok || !t.HasTags() {
			continue
		}
		register := func(tag string, alias string, ownTag bool) {
			e := Entry{
				Attributes: sliceToSet(t.Attributes),
				Styles:     sliceToSet(t.Styles),
				Alias:      alias,
				MayBeEmpty: t.MayBeEmpty,
			}
			if ownTag {
				e.Tool = t.Name
			}
			out[strings.ToLower(tag)] = e
		}
		for _, tag := range t.Tags {
			register(tag, "", true)
		}
		for _, tag := range t.Aliases {
			// Aliases rewrite to the first canonical tag.
			target := ""
			if len(t.Tags) > 0 {
				target = strings.ToLower(t.Tags[0])
			}
			register(tag, target, true)
		}
		for _, tag := range t.Extra {
			register(tag, "", false)
		}
	}

	for _, c := range custom {
		out[strings.ToLower(c.Tag)] = Entry{
			Attributes: sliceToSet(c.Attributes),
			Styles:     sliceToSet(c.Styles),
			MayBeEmpty: c.MayBeEmpty,
		}
	}

	return out
}
