package view

import "sync"

// Manager keeps one State per browser session.
type Manager struct {
	mux    sync.Mutex
	states map[string]*State
}

func NewManager() *Manager {
	return &Manager{
		states: map[string]*State{},
	}
}

// Get returns the session's state, creating it on first use.
func (m *Manager) Get(sessionID string) *State {
	m.mux.Lock()
	defer m.mux.Unlock()
	st, ok := m.states[sessionID]
	if !ok {
		st = NewState()
		m.states[sessionID] = st
	}
	return st
}
