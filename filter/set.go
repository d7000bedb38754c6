package filter

import (
	"fmt"
	"strconv"

	"github.com/pinpt/go-filterset/hash"
)

// Logic is how the filters of a Set are combined
type Logic int

const (
	// And requires every filter to match
	And Logic = iota
	// Or requires at least one filter to match
	Or
)

// String returns the query token for the logic
func (l Logic) String() string {
	switch l {
	case And:
		return "and"
	case Or:
		return "or"
	}
	return "Logic(" + strconv.Itoa(int(l)) + ")"
}

// ParseLogic returns the Logic for the and/or query token
func ParseLogic(s string) (Logic, error) {
	switch s {
	case "and":
		return And, nil
	case "or":
		return Or, nil
	}
	return And, fmt.Errorf("%w: %q", ErrInvalidLogic, s)
}

// Set is an immutable collection of at most one Filter per kind and key combined with a Logic.
// The zero value is an empty And set. Methods that change a Set return a new one.
type Set struct {
	logic   Logic
	filters []Filter
}

// NewSet returns a Set of the filters in order. The caller is trusted to not pass two
// filters with the same kind and key, use AddOrUpdate to build a set that guarantees it.
func NewSet(logic Logic, filters ...Filter) Set {
	return Set{logic: logic, filters: append([]Filter(nil), filters...)}
}

// Logic returns how the filters are combined
func (s Set) Logic() Logic {
	return s.logic
}

// WithLogic returns a copy of the set using logic
func (s Set) WithLogic(logic Logic) Set {
	return NewSet(logic, s.filters...)
}

// Filters returns a copy of the filters in order
func (s Set) Filters() []Filter {
	return append([]Filter(nil), s.filters...)
}

// Len returns the number of filters
func (s Set) Len() int {
	return len(s.filters)
}

func (s Set) partition(f Filter) (matched []Filter, rest []Filter) {
	for _, existing := range s.filters {
		if Equals(existing, f) {
			matched = append(matched, existing)
		} else {
			rest = append(rest, existing)
		}
	}
	return
}

// AddOrUpdate returns a new set with f in front, replacing the filter with the same kind and key
// if there is one. More than one existing filter for the kind and key fails with ErrDuplicateFilter.
func (s Set) AddOrUpdate(f Filter) (Set, error) {
	matched, rest := s.partition(f)
	if len(matched) > 1 {
		return Set{}, fmt.Errorf("%w: %d filters for %s %q", ErrDuplicateFilter, len(matched), f.kind, f.key)
	}
	filters := make([]Filter, 0, len(rest)+1)
	filters = append(filters, f)
	filters = append(filters, rest...)
	return Set{logic: s.logic, filters: filters}, nil
}

// Pop splits the set into the filters with the same kind and key as f and a set of the rest.
// Both keep their original order.
func (s Set) Pop(f Filter) ([]Filter, Set) {
	matched, rest := s.partition(f)
	return matched, Set{logic: s.logic, filters: rest}
}

// Get returns the filter with the same kind and key as f
func (s Set) Get(f Filter) (Filter, bool) {
	for _, existing := range s.filters {
		if Equals(existing, f) {
			return existing, true
		}
	}
	return Filter{}, false
}

// Match returns true if the record satisfies the set. Evaluation stops at the first filter
// that decides the result. An empty And set matches everything, an empty Or set nothing.
func (s Set) Match(r Record) bool {
	if s.logic == Or {
		for _, f := range s.filters {
			if Match(r, f) {
				return true
			}
		}
		return false
	}
	for _, f := range s.filters {
		if !Match(r, f) {
			return false
		}
	}
	return true
}

// Hash returns a stable fingerprint of the logic and filters, in order. Two sets with the same
// hash produce the same result for the same data, which makes it usable as a cache key.
func (s Set) Hash() string {
	vals := make([]interface{}, 0, 1+len(s.filters)*4)
	vals = append(vals, s.logic.String())
	for _, f := range s.filters {
		// the zero byte keeps "ab"+"c" apart from "a"+"bc"
		vals = append(vals, "\x00"+f.kind.String(), "\x00"+f.key, "\x00", f.value)
	}
	return hash.Values(vals...)
}

// String returns the set encoded with the default query options
func (s Set) String() string {
	return ToQuery(s, DefaultQueryOptions())
}

// Apply returns the records of data that satisfy the set, in the reverse order of data.
func Apply(data []Record, s Set) []Record {
	res := make([]Record, 0)
	for i := len(data) - 1; i >= 0; i-- {
		if s.Match(data[i]) {
			res = append(res, data[i])
		}
	}
	return res
}
