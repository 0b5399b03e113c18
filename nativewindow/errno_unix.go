//go:build unix

package nativewindow

import "golang.org/x/sys/unix"

// errNoSys is returned by stubs that cannot produce a usable object.
const errNoSys = -int32(unix.ENOSYS)
