// Package atrace binds the libcutils system trace (atrace) API.
//
// Trace calls are resolved from libcutils.so on first use. Without an
// implementation every marker is a no-op and EnabledTags reports TagNotReady,
// so callers that gate on Enabled never emit anything.
//
// # Sections
//
//	defer atrace.Section("vkQueueSubmit")()
//
// # OpenTelemetry
//
// SpanProcessor forwards OpenTelemetry spans into the system trace as async
// sections, so Go spans show up in Perfetto next to platform events:
//
//	tp := sdktrace.NewTracerProvider(
//	    sdktrace.WithSpanProcessor(atrace.NewSpanProcessor(nil)),
//	)
package atrace
