package filter

import (
	"fmt"
	"net/url"
	"strings"
)

const (
	// DefaultLogicKey is the query key holding the and/or logic
	DefaultLogicKey = "logic"
	// DefaultSeparator splits the kind from the value in a query value
	DefaultSeparator = "|"
)

// KeyFormat controls how query keys are turned into filter keys
type KeyFormat int

const (
	// KeyFormatStrings accepts any key
	KeyFormatStrings KeyFormat = iota
	// KeyFormatAtoms only accepts keys listed in QueryOptions.Keys
	KeyFormatAtoms
)

// QueryOptions configure both ToQuery and FromQuery. Empty fields use the defaults.
type QueryOptions struct {
	LogicKey  string
	Separator string
	KeyFormat KeyFormat
	// Keys are the known keys for KeyFormatAtoms
	Keys []string
}

// DefaultQueryOptions returns logic=... with | separated kinds and string keys
func DefaultQueryOptions() QueryOptions {
	return QueryOptions{
		LogicKey:  DefaultLogicKey,
		Separator: DefaultSeparator,
		KeyFormat: KeyFormatStrings,
	}
}

func (o QueryOptions) withDefaults() QueryOptions {
	if o.LogicKey == "" {
		o.LogicKey = DefaultLogicKey
	}
	if o.Separator == "" {
		o.Separator = DefaultSeparator
	}
	return o
}

func (o QueryOptions) knownKey(key string) bool {
	for _, k := range o.Keys {
		if k == key {
			return true
		}
	}
	return false
}

// ToQuery encodes the set as logic=<and|or>&<key>=<kind><separator><value>... with the whole
// string percent encoded at once. Filters keep the set's order.
func ToQuery(s Set, opts QueryOptions) string {
	opts = opts.withDefaults()
	pairs := make([]string, 0, len(s.filters)+1)
	pairs = append(pairs, opts.LogicKey+"="+s.logic.String())
	for _, f := range s.filters {
		pairs = append(pairs, f.key+"="+f.kind.String()+opts.Separator+f.value)
	}
	return escape(strings.Join(pairs, "&"))
}

// FromQuery decodes a query made by ToQuery. Filters are built with New, in query order.
func FromQuery(query string, opts QueryOptions) (Set, error) {
	opts = opts.withDefaults()
	decoded, err := url.PathUnescape(query)
	if err != nil {
		return Set{}, fmt.Errorf("%w: %v", ErrMalformedQuery, err)
	}
	if decoded == "" {
		return Set{}, fmt.Errorf("%w: empty query", ErrLogicKey)
	}
	type pair struct{ key, value string }
	var logic []string
	var pairs []pair
	for _, piece := range strings.Split(decoded, "&") {
		kv := strings.SplitN(piece, "=", 2)
		if len(kv) != 2 {
			return Set{}, fmt.Errorf("%w: missing = in %q", ErrMalformedQuery, piece)
		}
		if kv[0] == opts.LogicKey {
			logic = append(logic, kv[1])
			continue
		}
		pairs = append(pairs, pair{kv[0], kv[1]})
	}
	if len(logic) != 1 {
		return Set{}, fmt.Errorf("%w: found %d %q keys", ErrLogicKey, len(logic), opts.LogicKey)
	}
	l, err := ParseLogic(logic[0])
	if err != nil {
		return Set{}, err
	}
	filters := make([]Filter, 0, len(pairs))
	for _, p := range pairs {
		tok := strings.SplitN(p.value, opts.Separator, 2)
		if len(tok) != 2 {
			return Set{}, fmt.Errorf("%w: missing %q in value for %q", ErrMalformedQuery, opts.Separator, p.key)
		}
		kind, err := ParseKind(tok[0])
		if err != nil {
			return Set{}, err
		}
		if opts.KeyFormat == KeyFormatAtoms && !opts.knownKey(p.key) {
			return Set{}, fmt.Errorf("%w: %q", ErrUnrecognizedKey, p.key)
		}
		f, err := New(kind, p.key, tok[1])
		if err != nil {
			return Set{}, err
		}
		filters = append(filters, f)
	}
	return NewSet(l, filters...), nil
}

const upperhex = "0123456789ABCDEF"

// shouldEscape reports whether c is outside the RFC 3986 reserved and unreserved sets
func shouldEscape(c byte) bool {
	switch {
	case 'a' <= c && c <= 'z', 'A' <= c && c <= 'Z', '0' <= c && c <= '9':
		return false
	}
	return !strings.ContainsRune("-._~:/?#[]@!$&'()*+,;=", rune(c))
}

// escape percent encodes every byte that is not a reserved or unreserved uri character, so
// the & and = that structure the query survive while |, spaces and non ascii are encoded
func escape(s string) string {
	n := 0
	for i := 0; i < len(s); i++ {
		if shouldEscape(s[i]) {
			n++
		}
	}
	if n == 0 {
		return s
	}
	var b strings.Builder
	b.Grow(len(s) + 2*n)
	for i := 0; i < len(s); i++ {
		c := s[i]
		if shouldEscape(c) {
			b.WriteByte('%')
			b.WriteByte(upperhex[c>>4])
			b.WriteByte(upperhex[c&15])
		} else {
			b.WriteByte(c)
		}
	}
	return b.String()
}
