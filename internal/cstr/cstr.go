// Package cstr converts between Go strings and NUL-terminated C strings.
package cstr

import (
	"strconv"
	"strings"

	"github.com/wippyai/ndkshim/errors"
)

// Ptr returns a pointer to a NUL-terminated copy of s. Like C, the string ends
// at the first embedded NUL.
func Ptr(s string) *byte {
	p, _ := Checked(s)
	return p
}

// Checked is Ptr that also reports an embedded NUL as an invalid-input
// error. The returned pointer is the truncated string either way.
func Checked(s string) (*byte, error) {
	var err error
	if i := strings.IndexByte(s, 0); i >= 0 {
		err = errors.InvalidInput(errors.PhaseCall, "embedded NUL at byte "+strconv.Itoa(i))
		s = s[:i]
	}
	p, _ := bytePtrFromString(s)
	return p, err
}

// String copies the NUL-terminated string at p. A nil p yields "".
func String(p *byte) string {
	if p == nil {
		return ""
	}
	return bytePtrToString(p)
}

// Bytes returns the contents of buf up to the first NUL.
func Bytes(buf []byte) string {
	return byteSliceToString(buf)
}
