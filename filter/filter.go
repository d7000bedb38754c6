// Package filter evaluates a set of text, enum and date range filters against in-memory records
// and carries a filter set across a url query string.
package filter

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/pinpt/go-filterset/datetime"
	"github.com/pinpt/go-filterset/number"
	pstrings "github.com/pinpt/go-filterset/strings"
)

// Kind is the type of comparison a Filter performs
type Kind int

const (
	// Text matches when the value is a substring of the field
	Text Kind = iota
	// Enum matches when the field equals the value
	Enum
	// DateFrom matches when the field is on or after the date
	DateFrom
	// DateTo matches when the field is on or before the date
	DateTo
)

var kindNames = map[Kind]string{
	Text:     "text",
	Enum:     "enum",
	DateFrom: "date_from",
	DateTo:   "date_to",
}

// String returns the query token for the kind
func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return "Kind(" + strconv.Itoa(int(k)) + ")"
}

func (k Kind) valid() bool {
	_, ok := kindNames[k]
	return ok
}

func (k Kind) isDate() bool {
	return k == DateFrom || k == DateTo
}

// ParseKind returns the Kind for a query token such as date_from
func ParseKind(s string) (Kind, error) {
	for k, name := range kindNames {
		if name == s {
			return k, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnrecognizedKind, s)
}

// Filter is a single immutable predicate on one field of a Record
type Filter struct {
	kind Kind
	key  string
	// value is the text for Text and Enum, and the date as it was given for DateFrom and DateTo
	value string
	days  int64
}

// New returns a validated Filter. Date values are normalized to epoch days once, here.
func New(kind Kind, key string, value interface{}) (Filter, error) {
	if !kind.valid() {
		return Filter{}, fmt.Errorf("%w: %v", ErrUnrecognizedKind, kind)
	}
	f := Filter{kind: kind, key: key, value: pstrings.Value(value)}
	if kind.isDate() {
		days, err := Normalize(value)
		if err != nil {
			return Filter{}, fmt.Errorf("%s filter on %q: %w", kind, key, err)
		}
		f.days = days
		// the wire value must parse back to the same day
		switch value.(type) {
		case string:
		case time.Time:
			f.value = datetime.ShortDateFromEpochDays(days)
		default:
			f.value = strconv.FormatInt(days, 10)
		}
	}
	return f, nil
}

// MustNew is like New but panics on error. Meant for filters built from constants.
func MustNew(kind Kind, key string, value interface{}) Filter {
	f, err := New(kind, key, value)
	if err != nil {
		panic(err)
	}
	return f
}

// Kind returns the filter kind
func (f Filter) Kind() Kind {
	return f.kind
}

// Key returns the record field the filter applies to
func (f Filter) Key() string {
	return f.key
}

// Value returns the comparison value: a string for Text and Enum, int64 epoch days for dates
func (f Filter) Value() interface{} {
	if f.kind.isDate() {
		return f.days
	}
	return f.value
}

// RawValue returns the value as it was given to New, which is what a query string carries
func (f Filter) RawValue() string {
	return f.value
}

func (f Filter) String() string {
	return f.key + "=" + f.kind.String() + DefaultSeparator + f.value
}

// Normalize converts a date into the number of days since 1970-01-01. Integers are returned
// unchanged so normalizing twice is safe. Strings may be a yyyy-mm-dd date or a base 10 integer.
func Normalize(date interface{}) (int64, error) {
	if n, ok := number.Int64Exact(date); ok {
		return n, nil
	}
	switch v := date.(type) {
	case time.Time:
		return datetime.TimeToEpochDays(v), nil
	case string:
		if days, err := datetime.ShortDateToEpochDays(v); err == nil {
			return days, nil
		}
		if n, ok := number.ParseInt64(v); ok {
			return Normalize(n)
		}
	}
	return 0, fmt.Errorf("%w: %v", ErrInvalidDateFormat, date)
}

// Match returns true if the record satisfies the filter. A record without the key never matches.
func Match(r Record, f Filter) bool {
	val, ok := r.Get(f.key)
	if !ok {
		return false
	}
	switch f.kind {
	case Text:
		return strings.Contains(pstrings.Value(val), f.value)
	case Enum:
		return pstrings.Value(val) == f.value
	case DateFrom:
		days, err := Normalize(val)
		return err == nil && days >= f.days
	case DateTo:
		days, err := Normalize(val)
		return err == nil && days <= f.days
	}
	return false
}

// Match returns true if the record satisfies the filter
func (f Filter) Match(r Record) bool {
	return Match(r, f)
}

// Equals returns true if both filters have the same kind and key, regardless of value
func Equals(a, b Filter) bool {
	return a.kind == b.kind && a.key == b.key
}
