package dynlib

import "sync"

var registry struct {
	mu   sync.RWMutex
	libs []*Library
}

// Register makes l visible through Libraries. Subsystem packages register
// their process-wide default bindings.
func Register(l *Library) {
	registry.mu.Lock()
	defer registry.mu.Unlock()
	for _, existing := range registry.libs {
		if existing == l {
			return
		}
	}
	registry.libs = append(registry.libs, l)
}

// Libraries returns the registered libraries in registration order.
func Libraries() []*Library {
	registry.mu.RLock()
	defer registry.mu.RUnlock()
	return append([]*Library(nil), registry.libs...)
}
