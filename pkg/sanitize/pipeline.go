// Package sanitize implements an allow-list HTML sanitization pipeline
// for rich-text content. A Sanitizer is built from a set of editing
// tools (or a prebuilt allow-list) and prepares raw markup in three
// phases: tree filtering, structural normalization, and empty-node
// pruning. The pipeline is idempotent: preparing already-prepared
// content returns it unchanged.
package sanitize

import (
	"bytes"
	"strings"
	"time"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/editkit/editkit/internal/logger"
)

// Sanitizer prepares raw HTML against a fixed allow-list. It is safe
// for concurrent use: the allow-list is never mutated after
// construction.
type Sanitizer struct {
	allow AllowList
}

// New creates a Sanitizer using the given allow-list. The list is
// cloned, so later mutation by the caller does not affect the
// sanitizer.
func New(allow AllowList) *Sanitizer {
	return &Sanitizer{allow: allow.Clone()}
}

// NewFromTools creates a Sanitizer whose allow-list is built from the
// named tools on top of the default base, optionally extended with
// custom tags. Unknown tool names are ignored.
func NewFromTools(tools []string, custom ...CustomTag) *Sanitizer {
	return &Sanitizer{allow: BuildAllowList(tools, DefaultBase(), custom)}
}

// AllowList returns a copy of the sanitizer's allow-list.
func (s *Sanitizer) AllowList() AllowList {
	return s.allow.Clone()
}

// Prepare sanitizes raw markup through the full pipeline: filter,
// normalize, prune. On a parse failure the input is returned
// unchanged.
func (s *Sanitizer) Prepare(raw string) string {
	return s.PrepareWithStats(raw, false).Content
}

// PrepareFiltered runs only the tree filter, skipping structural
// normalization and pruning. Used when re-deriving a value from a
// live editing surface, where empty elements are in-progress edit
// state that must survive.
func (s *Sanitizer) PrepareFiltered(raw string) string {
	return s.PrepareWithStats(raw, true).Content
}

// PrepareWithStats sanitizes raw markup and reports what was done.
// When filterOnly is set, the normalize and prune phases are skipped.
// The returned result always carries non-nil Stats; parse failures are
// reported as warnings with the input passed through unchanged.
func (s *Sanitizer) PrepareWithStats(raw string, filterOnly bool) *Result {
	start := time.Now()
	st := NewStats()
	st.InputBytes = len(raw)
	result := &Result{Stats: st}

	parseStart := time.Now()
	root, err := parseFragment(raw)
	st.ParseDuration = time.Since(parseStart)
	if err != nil {
		logger.Warn("parse failed, returning input unchanged", "error", err)
		result.Content = raw
		st.OutputBytes = len(raw)
		st.TotalDuration = time.Since(start)
		result.AddWarning("parse", "failed to parse fragment: "+err.Error(), truncate(raw, 120))
		return result
	}

	filterStart := time.Now()
	filterTree(root, s.allow, st)
	st.FilterDuration = time.Since(filterStart)

	if !filterOnly {
		normalizeStart := time.Now()
		wrapTextNodes(root, st)
		st.NormalizeDuration = time.Since(normalizeStart)

		pruneStart := time.Now()
		cleanContent(root, s.allow, st)
		st.PruneDuration = time.Since(pruneStart)
	}

	renderStart := time.Now()
	result.Content = renderChildren(root)
	st.RenderDuration = time.Since(renderStart)

	st.OutputBytes = len(result.Content)
	st.TotalDuration = time.Since(start)

	logger.Debug("content prepared",
		"input_bytes", st.InputBytes,
		"output_bytes", st.OutputBytes,
		"filter_only", filterOnly,
		"parse", st.ParseDuration,
		"filter", st.FilterDuration,
		"normalize", st.NormalizeDuration,
		"prune", st.PruneDuration,
		"render", st.RenderDuration)

	return result
}

// parseFragment parses raw markup as body content and reparents the
// resulting top-level nodes under a fresh body element, which serves as
// the pipeline's working root.
func parseFragment(raw string) (*html.Node, error) {
	ctx := &html.Node{Type: html.ElementNode, Data: "body", DataAtom: atom.Body}
	nodes, err := html.ParseFragment(strings.NewReader(raw), ctx)
	if err != nil {
		return nil, err
	}
	root := &html.Node{Type: html.ElementNode, Data: "body", DataAtom: atom.Body}
	for _, n := range nodes {
		root.AppendChild(n)
	}
	return root, nil
}

// renderChildren serializes the children of root back into markup.
func renderChildren(root *html.Node) string {
	var buf bytes.Buffer
	for c := root.FirstChild; c != nil; c = c.NextSibling {
		_ = html.Render(&buf, c)
	}
	return buf.String()
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
