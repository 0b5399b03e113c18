// Package ndkshim provides lazy, fault-tolerant bindings to Android platform
// libraries for graphics drivers that must load on systems where some of
// those libraries are missing or incomplete.
//
// Every binding resolves its library on first use, forwards calls verbatim
// when a function is present and returns a documented safe default when it
// is not. Nothing panics, nothing exits, and a failed load is never retried.
//
// # Architecture Overview
//
//	ndkshim/
//	├── dynlib/          Lazy resolver: probe, load, resolve once, report
//	│   └── dynlibtest/  In-memory loader for tests
//	├── property/        libcutils property_get / property_set / property_list
//	├── atrace/          libcutils atrace_* and an OpenTelemetry span bridge
//	├── alog/            liblog __android_log_* and a zap core
//	├── fence/           libsync sync_wait / sync_merge / sync_file_info
//	├── nativewindow/    libnativewindow ANativeWindow and AHardwareBuffer
//	├── errors/          Structured error types for diagnostics
//	└── cmd/ndkshim/     c-shared library exporting the C functions
//
// # Quick Start
//
//	model := property.Get("ro.product.model", "unknown")
//
//	logger := alog.NewLogger("mydriver", zapcore.InfoLevel)
//	logger.Info("starting", zap.String("model", model))
//
//	if !property.Default().Library().Loaded() {
//	    // running on stubs
//	}
//
// # Diagnostics
//
// Loader progress is logged through the zap logger set with
// dynlib.SetLogger (a no-op logger by default). Each Library also reports its
// outcome through Err, Missing and State, and dynlib.NewCollector exposes the
// same data as Prometheus gauges.
//
// # Thread Safety
//
// All bindings are safe for concurrent use. The first callers of a binding
// block until its single initialization completes; after that calls take no
// locks and are not serialized.
package ndkshim
