//go:build windows

package nativewindow

// errNoSys is returned by stubs that cannot produce a usable object. Windows
// has no ENOSYS; this is the Linux value the C ABI is defined against.
const errNoSys = -38
