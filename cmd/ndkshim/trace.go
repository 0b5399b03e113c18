package main

/*
#include <stdint.h>
*/
import "C"

import "github.com/wippyai/ndkshim/atrace"

//export atrace_init
func atrace_init() {
	atrace.Init()
}

//export atrace_get_enabled_tags
func atrace_get_enabled_tags() C.uint64_t {
	return C.uint64_t(atrace.EnabledTags())
}

//export atrace_begin_body
func atrace_begin_body(name *C.char) {
	atrace.Default().BeginRaw(str(name))
}

//export atrace_end_body
func atrace_end_body() {
	atrace.End()
}

//export atrace_async_begin_body
func atrace_async_begin_body(name *C.char, cookie C.int32_t) {
	atrace.Default().AsyncBeginRaw(str(name), int32(cookie))
}

//export atrace_async_end_body
func atrace_async_end_body(name *C.char, cookie C.int32_t) {
	atrace.Default().AsyncEndRaw(str(name), int32(cookie))
}

//export atrace_int_body
func atrace_int_body(name *C.char, value C.int32_t) {
	atrace.Default().IntRaw(str(name), int32(value))
}

//export atrace_int64_body
func atrace_int64_body(name *C.char, value C.int64_t) {
	atrace.Default().Int64Raw(str(name), int64(value))
}
