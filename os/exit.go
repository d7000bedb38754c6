package os

import (
	"os"
	"sync"
)

// OnExitFunc is a handler for registering for exit events
type OnExitFunc func(code int)

var (
	onexitMu       sync.Mutex
	onexitHandlers []OnExitFunc
	// map to os.Exit normally but can be hooked for testing
	finalHandler OnExitFunc = os.Exit
)

// Exit will ultimately call os.Exit once any registered shutdown hooks run
func Exit(code int) {
	onexitMu.Lock()
	handlers := onexitHandlers
	// unregister once called so we can never call the
	// registered handlers more than once
	onexitHandlers = nil
	h := finalHandler
	onexitMu.Unlock()
	// LIFO, and without holding the lock in case a handler registers another
	for i := len(handlers) - 1; i >= 0; i-- {
		handlers[i](code)
	}
	h(code)
}

// OnExit will register an OnExitFunc to be called in reverse order (LIFO) when the process exits
// through Exit
func OnExit(handler OnExitFunc) {
	onexitMu.Lock()
	onexitHandlers = append(onexitHandlers, handler)
	onexitMu.Unlock()
}
