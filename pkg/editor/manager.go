package editor

import "sync"

// Handle is an opaque identifier for an editor held by a Manager.
// Handles are never reused within a Manager's lifetime.
type Handle uint64

// Manager is an arena of editors for hosts that address instances by
// id rather than by pointer (embedding layers, foreign-function
// surfaces). Safe for concurrent use.
type Manager struct {
	mu      sync.RWMutex
	editors map[Handle]*Editor
	next    Handle
}

// NewManager creates an empty Manager.
func NewManager() *Manager {
	return &Manager{editors: make(map[Handle]*Editor)}
}

// Attach registers an editor and returns its handle.
func (m *Manager) Attach(e *Editor) Handle {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.next++
	m.editors[m.next] = e
	return m.next
}

// Get returns the editor registered under h.
func (m *Manager) Get(h Handle) (*Editor, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	e, ok := m.editors[h]
	return e, ok
}

// Detach removes the editor registered under h, reporting whether the
// handle was live. Detaching an unknown handle is a no-op.
func (m *Manager) Detach(h Handle) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.editors[h]; !ok {
		return false
	}
	delete(m.editors, h)
	return true
}

// Len returns the number of attached editors.
func (m *Manager) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.editors)
}
