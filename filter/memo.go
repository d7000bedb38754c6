package filter

import (
	"github.com/pinpt/go-filterset/state"
)

// Memo remembers Apply results for one data collection, keyed by the Set hash. The data must
// not change once the Memo is created. Safe for concurrent use.
type Memo struct {
	data    []Record
	results state.State
	key     func(Set) string
}

type memoEntry struct {
	set Set
	res []Record
}

// NewMemo returns a Memo over data
func NewMemo(data []Record) *Memo {
	return &Memo{data: data, results: state.NewInMemoryState(), key: Set.Hash}
}

// Apply returns the same records as Apply(data, s), evaluating each distinct set once.
// A set whose hash collides with a cached one is evaluated without caching.
func (m *Memo) Apply(s Set) []Record {
	val, _ := m.results.GetOrSet(m.key(s), func() interface{} {
		return memoEntry{s, Apply(m.data, s)}
	})
	e := val.(memoEntry)
	if !sameSet(e.set, s) {
		return Apply(m.data, s)
	}
	return append(make([]Record, 0, len(e.res)), e.res...)
}

// Len returns how many distinct sets have been evaluated
func (m *Memo) Len() int {
	return m.results.Len()
}

func sameSet(a, b Set) bool {
	if a.logic != b.logic || len(a.filters) != len(b.filters) {
		return false
	}
	for i := range a.filters {
		if a.filters[i] != b.filters[i] {
			return false
		}
	}
	return true
}
