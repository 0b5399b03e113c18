package fence

import "github.com/wippyai/ndkshim/dynlib"

var std = newDefault()

func newDefault() *Binding {
	b := New()
	dynlib.Register(b.lib)
	return b
}

// Default returns the process-wide binding used by the package functions.
func Default() *Binding { return std }

func Wait(fd, timeout int32) int32            { return std.Wait(fd, timeout) }
func Merge(name string, fd1, fd2 int32) int32 { return std.Merge(name, fd1, fd2) }

// Info is FileInfo on the default binding.
func Info(fd int32) *FileInfo { return std.FileInfo(fd) }

// FreeInfo is FileInfoFree on the default binding.
func FreeInfo(info *FileInfo) { std.FileInfoFree(info) }
