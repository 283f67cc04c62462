package sanitize

import (
	"fmt"
	"strings"
	"time"
)

// Stats captures what a single sanitization pass did. All record
// methods are nil-safe so the filtering primitives can run without
// instrumentation.
type Stats struct {
	// Size metrics
	InputBytes  int `json:"input_bytes"`
	OutputBytes int `json:"output_bytes"`

	// Tree filter
	ElementsUnwrapped map[string]int `json:"elements_unwrapped"` // tag -> count
	ElementsDeleted   map[string]int `json:"elements_deleted"`   // tag -> count
	AliasesRewritten  map[string]int `json:"aliases_rewritten"`  // alias -> count
	CommentsRemoved   int            `json:"comments_removed"`
	AttributesDropped int            `json:"attributes_dropped"`
	StylesDropped     int            `json:"styles_dropped"`
	AlignMigrations   int            `json:"align_migrations"`

	// Structural normalizer
	ParagraphsWrapped int `json:"paragraphs_wrapped"`
	NodesMerged       int `json:"nodes_merged"`

	// Empty-node pruner
	ElementsPruned int `json:"elements_pruned"`

	// Timing
	ParseDuration     time.Duration `json:"parse_duration_ms"`
	FilterDuration    time.Duration `json:"filter_duration_ms"`
	NormalizeDuration time.Duration `json:"normalize_duration_ms"`
	PruneDuration     time.Duration `json:"prune_duration_ms"`
	RenderDuration    time.Duration `json:"render_duration_ms"`
	TotalDuration     time.Duration `json:"total_duration_ms"`
}

// NewStats creates a Stats with initialized maps.
func NewStats() *Stats {
	return &Stats{
		ElementsUnwrapped: make(map[string]int),
		ElementsDeleted:   make(map[string]int),
		AliasesRewritten:  make(map[string]int),
	}
}

func (s *Stats) recordUnwrapped(tag string) {
	if s != nil {
		s.ElementsUnwrapped[tag]++
	}
}

func (s *Stats) recordDeleted(tag string) {
	if s != nil {
		s.ElementsDeleted[tag]++
	}
}

func (s *Stats) recordAliasRewrite(alias string) {
	if s != nil {
		s.AliasesRewritten[alias]++
	}
}

func (s *Stats) recordCommentRemoved() {
	if s != nil {
		s.CommentsRemoved++
	}
}

func (s *Stats) recordAttributeDropped() {
	if s != nil {
		s.AttributesDropped++
	}
}

func (s *Stats) recordDeclarationDropped() {
	if s != nil {
		s.StylesDropped++
	}
}

func (s *Stats) recordAlignMigration() {
	if s != nil {
		s.AlignMigrations++
	}
}

func (s *Stats) recordParagraphWrapped() {
	if s != nil {
		s.ParagraphsWrapped++
	}
}

func (s *Stats) recordNodeMerged() {
	if s != nil {
		s.NodesMerged++
	}
}

func (s *Stats) recordPruned() {
	if s != nil {
		s.ElementsPruned++
	}
}

// TotalElementsRemoved returns the number of elements that did not
// survive filtering or pruning in their own right (unwrapped elements
// lose only their tag, not their content).
func (s *Stats) TotalElementsRemoved() int {
	total := s.ElementsPruned
	for _, n := range s.ElementsDeleted {
		total += n
	}
	return total
}

// String returns a human-readable summary.
func (s *Stats) String() string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "Size: %d -> %d bytes\n", s.InputBytes, s.OutputBytes)

	if len(s.ElementsUnwrapped) > 0 {
		sb.WriteString("Unwrapped: ")
		sb.WriteString(tagCounts(s.ElementsUnwrapped))
		sb.WriteString("\n")
	}
	if len(s.ElementsDeleted) > 0 {
		sb.WriteString("Deleted: ")
		sb.WriteString(tagCounts(s.ElementsDeleted))
		sb.WriteString("\n")
	}
	if len(s.AliasesRewritten) > 0 {
		sb.WriteString("Aliases rewritten: ")
		sb.WriteString(tagCounts(s.AliasesRewritten))
		sb.WriteString("\n")
	}
	if s.CommentsRemoved > 0 {
		fmt.Fprintf(&sb, "Comments removed: %d\n", s.CommentsRemoved)
	}
	if s.AttributesDropped > 0 || s.StylesDropped > 0 {
		fmt.Fprintf(&sb, "Attributes dropped: %d, style declarations dropped: %d\n",
			s.AttributesDropped, s.StylesDropped)
	}
	if s.AlignMigrations > 0 {
		fmt.Fprintf(&sb, "Alignment attributes migrated: %d\n", s.AlignMigrations)
	}
	if s.ParagraphsWrapped > 0 || s.NodesMerged > 0 {
		fmt.Fprintf(&sb, "Paragraphs created: %d, inline nodes merged: %d\n",
			s.ParagraphsWrapped, s.NodesMerged)
	}
	if s.ElementsPruned > 0 {
		fmt.Fprintf(&sb, "Empty elements pruned: %d\n", s.ElementsPruned)
	}

	fmt.Fprintf(&sb, "Timing: parse=%v, filter=%v, normalize=%v, prune=%v, render=%v, total=%v\n",
		s.ParseDuration.Round(time.Microsecond),
		s.FilterDuration.Round(time.Microsecond),
		s.NormalizeDuration.Round(time.Microsecond),
		s.PruneDuration.Round(time.Microsecond),
		s.RenderDuration.Round(time.Microsecond),
		s.TotalDuration.Round(time.Microsecond))

	return sb.String()
}

func tagCounts(m map[string]int) string {
	parts := make([]string, 0, len(m))
	for tag, count := range m {
		parts = append(parts, fmt.Sprintf("%s=%d", tag, count))
	}
	return strings.Join(parts, ", ")
}

// Warning represents a non-fatal issue encountered while sanitizing.
type Warning struct {
	Phase   string `json:"phase"`   // "parse", "filter", "normalize", "prune", "render"
	Message string `json:"message"` // human-readable description
	Context string `json:"context"` // offending input, when known
}

// String returns a formatted warning message.
func (w Warning) String() string {
	if w.Context != "" {
		return fmt.Sprintf("[%s] %s (context: %s)", w.Phase, w.Message, w.Context)
	}
	return fmt.Sprintf("[%s] %s", w.Phase, w.Message)
}

// Result contains the output of a sanitization pass.
type Result struct {
	// Content is the sanitized markup. On a parse failure it carries
	// the original input unchanged.
	Content string `json:"content"`

	// Stats contains metrics about what was done.
	Stats *Stats `json:"stats"`

	// Warnings contains non-fatal issues encountered.
	Warnings []Warning `json:"warnings,omitempty"`
}

// AddWarning appends a warning to the result.
func (r *Result) AddWarning(phase, message, context string) {
	r.Warnings = append(r.Warnings, Warning{Phase: phase, Message: message, Context: context})
}

// HasWarnings reports whether any warnings were recorded.
func (r *Result) HasWarnings() bool {
	return len(r.Warnings) > 0
}
