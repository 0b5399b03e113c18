package main

/*
#include <stdint.h>
*/
import "C"

import "github.com/wippyai/ndkshim/alog"

// __android_log_print and __android_log_vprint are in log.c. They hand the
// va_list to liblog's vprint when it is exported, otherwise they format into
// a LOG_BUF_SIZE buffer and call the write below.

//export ndkshim_log_vprint_addr
func ndkshim_log_vprint_addr() C.uintptr_t {
	return C.uintptr_t(alog.Default().VprintAddr())
}

//export __android_log_write
func __android_log_write(prio C.int, tag, text *C.char) C.int {
	return C.int(alog.Default().WriteRaw(int32(prio), str(tag), str(text)))
}

//export __android_log_buf_write
func __android_log_buf_write(buf, prio C.int, tag, text *C.char) C.int {
	return C.int(alog.Default().BufWriteRaw(int32(buf), int32(prio), str(tag), str(text)))
}

//export __android_log_is_loggable
func __android_log_is_loggable(prio C.int, tag *C.char, def C.int) C.int {
	return C.int(alog.Default().IsLoggableRaw(int32(prio), str(tag), int32(def)))
}
