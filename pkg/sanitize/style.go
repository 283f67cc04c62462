package sanitize

import "strings"

// declaration is a single CSS property/value pair from a style
// attribute. A pair with a missing value keeps an empty Val; that is
// accepted lossy behavior, not an error.
type declaration struct {
	Prop string
	Val  string
}

// parseDeclarations splits a style attribute value into its
// semicolon-delimited declarations. Property names are lower-cased,
// values trimmed. Empty segments (stray separators) are dropped.
func parseDeclarations(style string) []declaration {
	var decls []declaration
	for _, part := range strings.Split(style, ";") {
		if strings.TrimSpace(part) == "" {
			continue
		}
		prop, val, _ := strings.Cut(part, ":")
		prop = strings.ToLower(strings.TrimSpace(prop))
		if prop == "" {
			continue
		}
		decls = append(decls, declaration{Prop: prop, Val: strings.TrimSpace(val)})
	}
	return decls
}

// serializeDeclarations renders declarations back into attribute form,
// each as "prop: val;" with no separator between pairs. The format is a
// fixed point: parsing and re-serializing the result is a no-op.
func serializeDeclarations(decls []declaration) string {
	var sb strings.Builder
	for _, d := range decls {
		sb.WriteString(d.Prop)
		sb.WriteString(": ")
		sb.WriteString(d.Val)
		sb.WriteString(";")
	}
	return sb.String()
}

// filterDeclarations retains only declarations whose property is in the
// allowed set. A text-align of "left" is dropped as the implicit
// default. Returns "" when nothing survives, in which case the caller
// removes the style attribute entirely.
func filterDeclarations(style string, allowed map[string]bool, st *Stats) string {
	decls := parseDeclarations(style)
	kept := decls[:0]
	for _, d := range decls {
		if !allowed[d.Prop] {
			st.recordDeclarationDropped()
			continue
		}
		if d.Prop == "text-align" && strings.EqualFold(d.Val, "left") {
			st.recordDeclarationDropped()
			continue
		}
		kept = append(kept, d)
	}
	return serializeDeclarations(kept)
}

// mergeDeclaration sets prop to val within an existing style attribute
// value, overwriting a previous declaration for the same property.
func mergeDeclaration(style, prop, val string) string {
	decls := parseDeclarations(style)
	for i := range decls {
		if decls[i].Prop == prop {
			decls[i].Val = val
			return serializeDeclarations(decls)
		}
	}
	decls = append(decls, declaration{Prop: prop, Val: val})
	return serializeDeclarations(decls)
}
