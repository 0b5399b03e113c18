package property

import (
	"sync"

	"github.com/ebitengine/purego"

	"github.com/wippyai/ndkshim/internal/cookie"
	"github.com/wippyai/ndkshim/internal/cstr"
)

// Visitor receives one property per call.
type Visitor func(key, value string)

var visitors = cookie.NewTable[Visitor]()

// The trampoline is created once: purego callbacks are never freed.
var trampoline = sync.OnceValue(func() uintptr {
	return purego.NewCallback(visitCookie)
})

// visitCookie is the C callback body: it routes one property to the visitor
// registered under cookie c.
func visitCookie(key, value *byte, c uintptr) {
	if visit, ok := visitors.Get(cookie.Cookie(c)); ok {
		visit(cstr.String(key), cstr.String(value))
	}
}

// List calls visit for every property. Without an implementation it returns
// 0 and visit is never called.
func (b *Binding) List(visit Visitor) int32 {
	b.lib.Ensure()
	if b.list == nil {
		return 0
	}

	c := visitors.Insert(visit)
	defer visitors.Remove(c)
	return b.list(b.callback(), uintptr(c))
}
