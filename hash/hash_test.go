package hash

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type stringer string

func (s stringer) String() string { return string(s) }

func TestHashNil(t *testing.T) {
	assert := assert.New(t)
	assert.NotPanics(func() { Values(nil) })
	assert.Equal(Values(), Values(nil, nil, nil))
}

func TestHashInts(t *testing.T) {
	assert := assert.New(t)
	h := Values(int(1))
	assert.Len(h, 16)
	assert.Equal(h, Values(int8(1)))
	assert.Equal(h, Values(int32(1)))
	assert.Equal(h, Values(int64(1)))
	assert.Equal(h, Values(uint16(1)))
	assert.Equal(h, Values(float64(1)))
	assert.Equal(h, Values("1"))
	assert.NotEqual(h, Values(float64(1.5)))
}

func TestHashStrings(t *testing.T) {
	assert := assert.New(t)
	s := "hello"
	assert.Equal(Values("hello"), Values(&s))
	assert.Equal(Values("hello"), Values([]byte("hello")))
	assert.Equal(Values("hello"), Values(stringer("hello")))
	assert.Equal(Values("hel", "lo"), Values("hello"))
	assert.NotEqual(Values("hello"), Values("world"))
}
