// Package nativewindow binds the libnativewindow ANativeWindow and
// AHardwareBuffer APIs used by graphics drivers.
//
// All eighteen functions are resolved from libnativewindow.so on first use and
// forwarded verbatim when present. Missing functions fall back per class:
//
//   - acquire, release, describe: no-op
//   - allocate, dequeueBuffer: fail with -ENOSYS and null out-parameters
//   - getHardwareBuffer, getNativeHandle: null
//   - getters, setters, queue and cancel: 0
//
// A caller can never hold a real buffer or window obtained from a stub, so
// the no-op reference counting stubs are safe.
//
// # GPU formats
//
// Format and Usage convert to and from gputypes texture formats and usages,
// so a WebGPU-style swapchain can describe its images in platform terms.
package nativewindow
