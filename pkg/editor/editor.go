// Package editor ties the sanitization pipeline to a host-provided
// editing surface. An Editor owns one backing field and one allow-list
// configuration; hosts supply the surface collaborators as interfaces
// so the package stays headless. There is no package-level state:
// every instance is explicit, and hosts that need id-based lookup use
// a Manager.
package editor

import (
	"errors"
	"fmt"

	"github.com/editkit/editkit/internal/logger"
	"github.com/editkit/editkit/pkg/sanitize"
)

// FieldAccessor reads and writes the backing form field the editor
// synchronizes with.
type FieldAccessor interface {
	Value() string
	SetValue(string)
}

// SelectionResolver answers whether the host's current selection sits
// inside this editor's editable region. Consulted before handling a
// paste, so pastes aimed elsewhere on the page are left alone.
type SelectionResolver interface {
	WithinEditable() bool
}

// CommandExecutor applies prepared markup at the current selection.
type CommandExecutor interface {
	InsertHTML(markup string) error
}

// Options configures a new Editor.
type Options struct {
	// Tools restricts the toolbar. Empty means every registered tool.
	Tools []string

	// CustomTags extends the allow-list with host-declared tags.
	CustomTags []sanitize.CustomTag

	// Base overrides the default baseline allow-list. Nil means
	// sanitize.DefaultBase.
	Base sanitize.AllowList

	// Field is the backing field. Required.
	Field FieldAccessor

	// Selection gates paste handling. Nil means every paste is
	// considered in scope.
	Selection SelectionResolver

	// Executor applies pasted content. Required if Paste is used.
	Executor CommandExecutor
}

// Editor is a single editing instance bound to one backing field.
// Not safe for concurrent use; the surface it models is
// single-threaded.
type Editor struct {
	tools     []string
	base      sanitize.AllowList
	sanitizer *sanitize.Sanitizer
	field     FieldAccessor
	selection SelectionResolver
	executor  CommandExecutor
}

// New creates an Editor from the given options. The allow-list is
// built once; use Reconfigure to change it later.
func New(opts Options) (*Editor, error) {
	if opts.Field == nil {
		return nil, errors.New("editor: Field is required")
	}
	for _, ct := range opts.CustomTags {
		if err := ct.Validate(); err != nil {
			return nil, fmt.Errorf("editor: %w", err)
		}
	}

	tools := opts.Tools
	if len(tools) == 0 {
		tools = sanitize.DefaultTools()
	}
	base := opts.Base
	if base == nil {
		base = sanitize.DefaultBase()
	}

	e := &Editor{
		tools:     append([]string(nil), tools...),
		base:      base.Clone(),
		sanitizer: sanitize.New(sanitize.BuildAllowList(tools, base, opts.CustomTags)),
		field:     opts.Field,
		selection: opts.Selection,
		executor:  opts.Executor,
	}
	logger.Debug("editor created", "tools", len(e.tools))
	return e, nil
}

// Tools returns the tool identifiers this editor was configured with.
func (e *Editor) Tools() []string {
	return append([]string(nil), e.tools...)
}

// AllowList returns a copy of the editor's active allow-list.
func (e *Editor) AllowList() sanitize.AllowList {
	return e.sanitizer.AllowList()
}

// Load reads the backing field, extracts its editable surface, and
// runs the full pipeline over it. The prepared markup is written back
// to the field and returned; it is what the host should render into
// the widget.
func (e *Editor) Load() string {
	raw := ExtractSurface(e.field.Value())
	prepared := e.sanitizer.Prepare(raw)
	e.field.SetValue(prepared)
	return prepared
}

// Paste handles a paste of external markup. It reports false without
// touching the document when the selection is outside the editable
// region. In-scope pastes get the same full preparation as initial
// field content before they are applied through the executor.
func (e *Editor) Paste(markup string) (bool, error) {
	if e.selection != nil && !e.selection.WithinEditable() {
		return false, nil
	}
	if e.executor == nil {
		return false, errors.New("editor: no executor configured")
	}
	prepared := e.sanitizer.Prepare(markup)
	if err := e.executor.InsertHTML(prepared); err != nil {
		return true, fmt.Errorf("editor: paste insert failed: %w", err)
	}
	return true, nil
}

// Sync derives the backing field value from the widget's live markup
// and stores it. The live tree already went through the full pipeline
// at load time, so only the filter runs here; empty elements are the
// user's in-progress edit state and are preserved.
func (e *Editor) Sync(live string) string {
	prepared := e.sanitizer.PrepareFiltered(live)
	e.field.SetValue(prepared)
	return prepared
}

// Reconfigure replaces the editor's tool set and custom tags, and
// re-prepares the current field value under the new allow-list.
func (e *Editor) Reconfigure(tools []string, custom []sanitize.CustomTag) error {
	for _, ct := range custom {
		if err := ct.Validate(); err != nil {
			return fmt.Errorf("editor: %w", err)
		}
	}
	if len(tools) == 0 {
		tools = sanitize.DefaultTools()
	}
	e.tools = append([]string(nil), tools...)
	e.sanitizer = sanitize.New(sanitize.BuildAllowList(tools, e.base, custom))
	e.field.SetValue(e.sanitizer.Prepare(e.field.Value()))
	logger.Debug("editor reconfigured", "tools", len(e.tools))
	return nil
}
