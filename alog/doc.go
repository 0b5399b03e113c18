// Package alog binds the Android liblog write API.
//
// __android_log_write, __android_log_buf_write, __android_log_is_loggable,
// __android_log_print and __android_log_vprint are resolved from liblog.so on
// first use. Print and Vprint format in Go and forward through
// __android_log_write, or through __android_log_print with a "%s" format when
// write is missing. The vprint address is exposed for C callers that hold a
// va_list. Without an implementation every call returns 0 and nothing is
// written.
//
// # zap integration
//
// NewCore returns a zapcore.Core that writes into logcat, which lets the
// resolver diagnostics of every other binding land in the system log:
//
//	dynlib.SetLogger(zap.New(alog.NewCore(nil, "ndkshim", zapcore.InfoLevel)))
//
// Records produced while liblog itself is being resolved are dropped; writing
// them would re-enter the resolution in progress.
package alog
