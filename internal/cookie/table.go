// Package cookie maps the opaque void* cookies handed to C callbacks back to
// Go values.
//
// C cannot hold Go pointers, so a callback registration stores its Go closure
// in a Table and passes the returned Cookie instead. Cookie 0 is reserved and
// always invalid, which keeps it distinct from a C NULL.
package cookie

import "sync"

// Cookie is an opaque reference to a value in a table.
type Cookie uintptr

// Table is a free-list backed cookie table. It is safe for concurrent use.
type Table[T any] struct {
	entries  []entry[T]
	freeList []Cookie
	mu       sync.RWMutex
}

type entry[T any] struct {
	value T
	valid bool
}

// NewTable creates an empty table.
func NewTable[T any]() *Table[T] {
	return &Table[T]{
		entries:  make([]entry[T], 0, 8),
		freeList: make([]Cookie, 0, 4),
	}
}

// Insert stores value and returns its cookie.
func (t *Table[T]) Insert(value T) Cookie {
	t.mu.Lock()
	defer t.mu.Unlock()

	e := entry[T]{value: value, valid: true}

	if len(t.freeList) > 0 {
		c := t.freeList[len(t.freeList)-1]
		t.freeList = t.freeList[:len(t.freeList)-1]
		t.entries[c-1] = e
		return c
	}

	t.entries = append(t.entries, e)
	return Cookie(len(t.entries))
}

// Get retrieves the value for c.
func (t *Table[T]) Get(c Cookie) (T, bool) {
	var zero T
	if c == 0 {
		return zero, false
	}

	t.mu.RLock()
	defer t.mu.RUnlock()

	idx := c - 1
	if int(idx) >= len(t.entries) {
		return zero, false
	}
	e := t.entries[idx]
	if !e.valid {
		return zero, false
	}
	return e.value, true
}

// Remove drops c and returns its value if it was present.
func (t *Table[T]) Remove(c Cookie) (T, bool) {
	var zero T
	if c == 0 {
		return zero, false
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	idx := c - 1
	if int(idx) >= len(t.entries) {
		return zero, false
	}
	e := &t.entries[idx]
	if !e.valid {
		return zero, false
	}

	value := e.value
	e.valid = false
	e.value = zero
	t.freeList = append(t.freeList, c)
	return value, true
}

// Len returns the number of live cookies.
func (t *Table[T]) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return len(t.entries) - len(t.freeList)
}
