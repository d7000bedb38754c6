package state

import (
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMemoryState(t *testing.T) {
	assert := assert.New(t)

	var state State = NewInMemoryState()
	assert.NotNil(state)

	state.Set("foo", "bar")
	val, ok := state.Get("foo")
	assert.True(ok)
	assert.Equal("bar", val)

	val, ok = state.GetOrSet("foofoo", func() interface{} {
		return "barbar"
	})
	assert.False(ok)
	assert.Equal("barbar", val)

	val, ok = state.GetOrSet("foofoo", func() interface{} {
		return "other"
	})
	assert.True(ok)
	assert.Equal("barbar", val)
	assert.Equal(2, state.Len())

	state.Del("foo")
	val, ok = state.Get("foo")
	assert.False(ok)
	assert.Nil(val)
	assert.Equal(1, state.Len())
}

func TestMemoryStatePrefix(t *testing.T) {
	assert := assert.New(t)
	state := NewInMemoryState("set:")
	state.Set("a", 1)
	assert.Equal(map[string]interface{}{"set:a": 1}, state.kv)
	val, ok := state.Get("a")
	assert.True(ok)
	assert.Equal(1, val)
}

func TestMemoryStateGetOrSetOnce(t *testing.T) {
	assert := assert.New(t)
	state := NewInMemoryState()
	var calls int32
	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			state.GetOrSet("k", func() interface{} {
				return atomic.AddInt32(&calls, 1)
			})
		}()
	}
	wg.Wait()
	assert.Equal(int32(1), atomic.LoadInt32(&calls))
}
