package state

// State the key-value storage interface
type State interface {
	Get(key string) (interface{}, bool)
	Set(key string, val interface{})
	GetOrSet(key string, factory GetOrSetFactoryFunc) (interface{}, bool)
	Del(key string)
	Len() int
}

// GetOrSetFactoryFunc will return a val to set if the Get returns nothing
type GetOrSetFactoryFunc func() interface{}
