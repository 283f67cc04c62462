package sanitize

// Tool describes a single toolbar tool and the HTML it is allowed to
// produce. Tools with no tags (pure editing commands such as "indent")
// contribute nothing to an allow-list and exist only so hosts can refer
// to them by identifier.
type Tool struct {
	// Name is the tool identifier used in editor configuration.
	Name string `json:"name"`

	// Tags are the canonical tag names this tool governs. The first
	// entry is the rewrite target for every alias.
	Tags []string `json:"tags,omitempty"`

	// Aliases are tag names rewritten to the first canonical tag
	// (e.g. "b" for the bold tool's "strong").
	Aliases []string `json:"aliases,omitempty"`

	// Extra are tags permitted as structural children of the tool's
	// output (e.g. "li" under a list) but not independently toggleable
	// from a toolbar.
	Extra []string `json:"extra,omitempty"`

	// Attributes are the attribute names permitted on all of the
	// tool's tags.
	Attributes []string `json:"attributes,omitempty"`

	// Styles are the CSS property names permitted in a style attribute
	// on all of the tool's tags.
	Styles []string `json:"styles,omitempty"`

	// MayBeEmpty marks tags that are meaningful without content
	// (images, rules) and must survive empty-node pruning.
	MayBeEmpty bool `json:"may_be_empty,omitempty"`
}

// HasTags reports whether the tool produces any HTML at all.
func (t Tool) HasTags() bool {
	return len(t.Tags) > 0 || len(t.Aliases) > 0 || len(t.Extra) > 0
}

// builtinTools is the static tool catalog, in default toolbar order.
var builtinTools = []Tool{
	{Name: "bold", Tags: []string{"strong"}, Aliases: []string{"b"}},
	{Name: "italic", Tags: []string{"em"}, Aliases: []string{"i"}},
	{Name: "underline", Tags: []string{"u"}},
	{Name: "strikethrough", Tags: []string{"s"}, Aliases: []string{"strike", "del"}},
	{Name: "subscript", Tags: []string{"sub"}},
	{Name: "superscript", Tags: []string{"sup"}},
	{Name: "link", Tags: []string{"a"}, Attributes: []string{"href", "target", "rel", "title"}},
	{Name: "image", Tags: []string{"img"}, Attributes: []string{"src", "alt", "width", "height"}, MayBeEmpty: true},
	{Name: "orderedlist", Tags: []string{"ol"}, Extra: []string{"li"}, Styles: []string{"text-align"}},
	{Name: "unorderedlist", Tags: []string{"ul"}, Extra: []string{"li"}, Styles: []string{"text-align"}},
	{Name: "blockquote", Tags: []string{"blockquote"}},
	{Name: "horizontalrule", Tags: []string{"hr"}, MayBeEmpty: true},
	{Name: "heading", Tags: []string{"h1", "h2", "h3", "h4"}, Styles: []string{"text-align"}},
	{Name: "paragraph", Tags: []string{"p"}, Styles: []string{"text-align"}},
	{Name: "code", Tags: []string{"code", "pre"}},

	// Pure commands. These act on existing content through the host's
	// editing surface and emit no markup of their own.
	{Name: "alignleft"},
	{Name: "aligncenter"},
	{Name: "alignright"},
	{Name: "indent"},
	{Name: "outdent"},
	{Name: "removeformat"},
	{Name: "undo"},
	{Name: "redo"},
}

var toolIndex = func() map[string]Tool {
	m := make(map[string]Tool, len(builtinTools))
	for _, t := range builtinTools {
		m[t.Name] = t
	}
	return m
}()

// LookupTool returns the tool registered under name.
func LookupTool(name string) (Tool, bool) {
	t, ok := toolIndex[name]
	return t, ok
}

// Tools returns the full tool catalog in default toolbar order. The
// returned slice is a copy and safe to modify.
func Tools() []Tool {
	out := make([]Tool, len(builtinTools))
	copy(out, builtinTools)
	return out
}

// DefaultTools returns the identifiers of every registered tool, the
// configuration used when a host does not restrict the toolbar.
func DefaultTools() []string {
	names := make([]string, len(builtinTools))
	for i, t := range builtinTools {
		names[i] = t.Name
	}
	return names
}
