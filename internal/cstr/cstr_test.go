package cstr

import (
	"errors"
	"testing"
	"unsafe"

	shimerrors "github.com/wippyai/ndkshim/errors"
)

func TestPtr(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"debug.foo", "debug.foo"},
		{"", ""},
		{"a\x00b", "a"},
	}

	for _, tt := range tests {
		p := Ptr(tt.in)
		if p == nil {
			t.Fatalf("Ptr(%q) = nil", tt.in)
		}
		buf := unsafe.Slice(p, len(tt.want)+1)
		if string(buf[:len(tt.want)]) != tt.want || buf[len(tt.want)] != 0 {
			t.Errorf("Ptr(%q) = %q, want %q NUL-terminated", tt.in, buf, tt.want)
		}
		if got := String(p); got != tt.want {
			t.Errorf("String(Ptr(%q)) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestStringNil(t *testing.T) {
	if got := String(nil); got != "" {
		t.Errorf("String(nil) = %q", got)
	}
}

func TestBytes(t *testing.T) {
	buf := []byte("bar\x00junk")
	if got := Bytes(buf); got != "bar" {
		t.Errorf("Bytes = %q, want bar", got)
	}
	if got := Bytes([]byte("full")); got != "full" {
		t.Errorf("Bytes = %q, want full", got)
	}
}

func TestChecked(t *testing.T) {
	p, err := Checked("debug.foo")
	if err != nil || String(p) != "debug.foo" {
		t.Errorf("Checked = (%q, %v)", String(p), err)
	}

	p, err = Checked("ab\x00cd")
	if String(p) != "ab" {
		t.Errorf("Checked pointer = %q, want truncated ab", String(p))
	}
	var e *shimerrors.Error
	if !errors.As(err, &e) {
		t.Fatalf("err = %v, want *errors.Error", err)
	}
	if e.Phase != shimerrors.PhaseCall || e.Kind != shimerrors.KindInvalidInput {
		t.Errorf("err = %s/%s, want call/invalid_input", e.Phase, e.Kind)
	}
	if e.Detail != "embedded NUL at byte 2" {
		t.Errorf("Detail = %q", e.Detail)
	}
}
