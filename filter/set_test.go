package filter

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

var (
	fry    = Record{"type": "human", "is": "Philip J. Fry", "born": "1974-08-14"}
	drink  = Record{"type": "drink", "is": "Martini with an olive"}
	leela  = Record{"type": "human", "is": "Turanga Leela", "born": "2975-07-29"}
	bender = Record{"type": "robot", "is": "Bender Bending Rodriguez", "born": "2996-09-04"}
	crew   = []Record{fry, drink, leela, bender}
)

func TestLogic(t *testing.T) {
	t.Parallel()
	assert := assert.New(t)
	assert.Equal("and", And.String())
	assert.Equal("or", Or.String())
	l, err := ParseLogic("or")
	assert.NoError(err)
	assert.Equal(Or, l)
	_, err = ParseLogic("AND")
	assert.True(errors.Is(err, ErrInvalidLogic))
	assert.Equal(And, Set{}.Logic())
	assert.Equal(Or, NewSet(And).WithLogic(Or).Logic())
}

func TestAddOrUpdateReplaces(t *testing.T) {
	t.Parallel()
	assert := assert.New(t)
	f1 := MustNew(Text, "is", "liv")
	f2 := MustNew(Text, "is", "Fry")

	s, err := NewSet(And).AddOrUpdate(f1)
	assert.NoError(err)
	s, err = s.AddOrUpdate(f2)
	assert.NoError(err)
	assert.Equal(1, s.Len())
	got, ok := s.Get(MustNew(Text, "is", ""))
	assert.True(ok)
	assert.Equal(f2, got)
}

func TestAddOrUpdatePrepends(t *testing.T) {
	t.Parallel()
	assert := assert.New(t)
	a := MustNew(Text, "is", "a")
	b := MustNew(Enum, "is", "b")
	c := MustNew(Enum, "type", "c")

	s := NewSet(Or)
	var err error
	for _, f := range []Filter{a, b, c} {
		s, err = s.AddOrUpdate(f)
		assert.NoError(err)
	}
	assert.Equal([]Filter{c, b, a}, s.Filters())

	a2 := MustNew(Text, "is", "a2")
	updated, err := s.AddOrUpdate(a2)
	assert.NoError(err)
	assert.Equal([]Filter{a2, c, b}, updated.Filters())
	assert.Equal(Or, updated.Logic())
	// the original is untouched
	assert.Equal([]Filter{c, b, a}, s.Filters())
}

func TestAddOrUpdateDuplicates(t *testing.T) {
	t.Parallel()
	assert := assert.New(t)
	s := NewSet(And, MustNew(Text, "is", "a"), MustNew(Text, "is", "b"))
	_, err := s.AddOrUpdate(MustNew(Text, "is", "c"))
	assert.True(errors.Is(err, ErrDuplicateFilter))
	assert.EqualError(err, `duplicate filter for kind and key: 2 filters for text "is"`)
	// a different slot is still fine
	_, err = s.AddOrUpdate(MustNew(Enum, "is", "c"))
	assert.NoError(err)
}

func TestPop(t *testing.T) {
	t.Parallel()
	assert := assert.New(t)
	a := MustNew(Text, "is", "a")
	b := MustNew(Enum, "type", "b")
	c := MustNew(DateFrom, "born", "2042-11-12")
	s := NewSet(Or, a, b, c)

	matched, rest := s.Pop(MustNew(Enum, "type", "other"))
	assert.Equal([]Filter{b}, matched)
	assert.Equal(NewSet(Or, a, c), rest)

	matched, rest = s.Pop(MustNew(Enum, "missing", ""))
	assert.Empty(matched)
	assert.Equal(s, rest)
	assert.Equal(3, s.Len())
}

func TestGet(t *testing.T) {
	t.Parallel()
	assert := assert.New(t)
	c := MustNew(DateFrom, "born", "2042-11-12")
	s := NewSet(And, MustNew(Text, "is", "a"), c)
	got, ok := s.Get(MustNew(DateFrom, "born", 0))
	assert.True(ok)
	assert.Equal(c, got)
	_, ok = s.Get(MustNew(DateTo, "born", 0))
	assert.False(ok)
}

func TestFiltersIsACopy(t *testing.T) {
	t.Parallel()
	assert := assert.New(t)
	a := MustNew(Text, "is", "a")
	s := NewSet(And, a)
	filters := s.Filters()
	filters[0] = MustNew(Text, "is", "changed")
	got, _ := s.Get(a)
	assert.Equal(a, got)
}

func TestApplyText(t *testing.T) {
	t.Parallel()
	assert := assert.New(t)
	data := []Record{
		{"type": "human", "is": "Philip J. Fry"},
		{"type": "drink", "is": "Martini with an olive"},
	}
	s := NewSet(And, MustNew(Text, "is", "liv"))
	assert.Equal([]Record{{"type": "drink", "is": "Martini with an olive"}}, Apply(data, s))
}

func TestApplyAndEnumText(t *testing.T) {
	t.Parallel()
	assert := assert.New(t)
	s := NewSet(And, MustNew(Enum, "type", "human"), MustNew(Text, "is", "r"))
	assert.Equal([]Record{leela, fry}, Apply(crew, s))
}

func TestApplyOr(t *testing.T) {
	t.Parallel()
	assert := assert.New(t)
	s := NewSet(Or, MustNew(Enum, "type", "drink"), MustNew(Text, "is", "Bender"))
	assert.Equal([]Record{bender, drink}, Apply(crew, s))
}

func TestApplyDateRange(t *testing.T) {
	t.Parallel()
	assert := assert.New(t)
	s := NewSet(And, MustNew(DateFrom, "born", "2900-01-01"))
	assert.Equal([]Record{bender, leela}, Apply(crew, s))

	s = NewSet(And, MustNew(DateFrom, "born", "2900-01-01"), MustNew(DateTo, "born", "2990-12-31"))
	assert.Equal([]Record{leela}, Apply(crew, s))

	s = NewSet(And, MustNew(DateTo, "born", "2000-01-01"))
	assert.Equal([]Record{fry}, Apply(crew, s))
}

func TestApplyEmptySets(t *testing.T) {
	t.Parallel()
	assert := assert.New(t)
	assert.Equal([]Record{bender, leela, drink, fry}, Apply(crew, NewSet(And)))
	assert.Equal([]Record{bender, leela, drink, fry}, Apply(crew, Set{}))
	assert.Empty(Apply(crew, NewSet(Or)))
	assert.Empty(Apply(nil, NewSet(And)))
}

func TestApplyReversesWhenAllMatch(t *testing.T) {
	t.Parallel()
	assert := assert.New(t)
	s := NewSet(And, MustNew(Text, "is", " "))
	assert.Equal([]Record{bender, leela, drink, fry}, Apply(crew, s))
	s = NewSet(Or, MustNew(Text, "is", "e"), MustNew(Text, "is", " "))
	assert.Equal([]Record{bender, leela, drink, fry}, Apply(crew, s))
}

func TestMatchShortCircuits(t *testing.T) {
	t.Parallel()
	assert := assert.New(t)
	// the second filter would match every record, the first decides alone
	s := NewSet(And, MustNew(Enum, "type", "ghost"), MustNew(Text, "is", ""))
	assert.False(s.Match(fry))
	s = NewSet(Or, MustNew(Enum, "type", "human"), MustNew(Enum, "type", "ghost"))
	assert.True(s.Match(fry))
}

func TestHash(t *testing.T) {
	t.Parallel()
	assert := assert.New(t)
	a := MustNew(Text, "is", "a")
	b := MustNew(Enum, "type", "b")
	s := NewSet(And, a, b)
	assert.Len(s.Hash(), 16)
	assert.Equal(s.Hash(), NewSet(And, a, b).Hash())
	assert.NotEqual(s.Hash(), NewSet(Or, a, b).Hash())
	assert.NotEqual(s.Hash(), NewSet(And, b, a).Hash())
	assert.NotEqual(s.Hash(), NewSet(And, a, MustNew(Enum, "type", "c")).Hash())
	assert.NotEqual(NewSet(And, MustNew(Text, "ab", "c")).Hash(), NewSet(And, MustNew(Text, "a", "bc")).Hash())
}
