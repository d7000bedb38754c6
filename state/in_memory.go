package state

import "sync"

// InMemoryState is a State kept in a map, safe for concurrent use
type InMemoryState struct {
	kv     map[string]interface{}
	mu     sync.RWMutex
	prefix string
}

var _ State = (*InMemoryState)(nil)

// NewInMemoryState initializes the InMemoryState. An optional prefix namespaces every key.
func NewInMemoryState(prefix ...string) *InMemoryState {
	state := &InMemoryState{
		kv: make(map[string]interface{}),
	}
	if len(prefix) > 0 {
		state.prefix = prefix[0]
	}
	return state
}

// Get gets a value, if exists
func (m *InMemoryState) Get(key string) (interface{}, bool) {
	m.mu.RLock()
	val, ok := m.kv[m.prefix+key]
	m.mu.RUnlock()
	return val, ok
}

// Set sets a value
func (m *InMemoryState) Set(key string, val interface{}) {
	m.mu.Lock()
	m.kv[m.prefix+key] = val
	m.mu.Unlock()
}

// GetOrSet returns the value for key, calling factory to create and store it when missing.
// The bool is true when the value already existed. factory runs under the write lock so it
// is called at most once per key.
func (m *InMemoryState) GetOrSet(key string, factory GetOrSetFactoryFunc) (interface{}, bool) {
	if val, ok := m.Get(key); ok {
		return val, true
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	val, ok := m.kv[m.prefix+key]
	if !ok {
		val = factory()
		m.kv[m.prefix+key] = val
	}
	return val, ok
}

// Del removes a value
func (m *InMemoryState) Del(key string) {
	m.mu.Lock()
	delete(m.kv, m.prefix+key)
	m.mu.Unlock()
}

// Len returns the number of stored values
func (m *InMemoryState) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.kv)
}
