//go:build unix

package cstr

import "golang.org/x/sys/unix"

var (
	bytePtrFromString = unix.BytePtrFromString
	bytePtrToString   = unix.BytePtrToString
	byteSliceToString = unix.ByteSliceToString
)
