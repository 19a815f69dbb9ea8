package theme

import "sync"

// ChangeHandler is called when the active palette changes.
type ChangeHandler func(p *Palette)

// Manager tracks the active palette and notifies observers when it
// changes. The zero value is not usable; construct with NewManager.
type Manager struct {
	mu       sync.RWMutex
	current  *Palette
	handlers []ChangeHandler
}

// NewManager creates a manager with the given initial palette.
// A nil initial palette selects [DefaultLight].
func NewManager(initial *Palette) *Manager {
	if initial == nil {
		initial = DefaultLight()
	}
	return &Manager{
		current:  initial,
		handlers: make([]ChangeHandler, 0),
	}
}

// Current returns the active palette.
func (m *Manager) Current() *Palette {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.current
}

// Use makes p the active palette and notifies handlers. Passing nil, or
// a palette with the same identifier as the active one, is a no-op.
func (m *Manager) Use(p *Palette) {
	if p == nil {
		return
	}
	m.mu.Lock()
	if m.current != nil && m.current.ID == p.ID {
		m.mu.Unlock()
		return
	}
	m.current = p
	handlers := make([]ChangeHandler, len(m.handlers))
	copy(handlers, m.handlers)
	m.mu.Unlock()

	for _, h := range handlers {
		h(p)
	}
}

// AddHandler registers a handler to be called on palette changes.
// Returns a function that can be called to remove the handler.
func (m *Manager) AddHandler(handler ChangeHandler) func() {
	m.mu.Lock()
	m.handlers = append(m.handlers, handler)
	index := len(m.handlers) - 1
	m.mu.Unlock()

	return func() {
		m.mu.Lock()
		if index < len(m.handlers) {
			m.handlers = append(m.handlers[:index], m.handlers[index+1:]...)
		}
		m.mu.Unlock()
	}
}
