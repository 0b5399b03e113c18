//go:build windows

package cstr

import "golang.org/x/sys/windows"

var (
	bytePtrFromString = windows.BytePtrFromString
	bytePtrToString   = windows.BytePtrToString
	byteSliceToString = windows.ByteSliceToString
)
