package main

/*
#include <stdint.h>
*/
import "C"

import (
	"unsafe"

	"github.com/wippyai/ndkshim/fence"
)

//export sync_wait
func sync_wait(fd, timeout C.int) C.int {
	return C.int(fence.Wait(int32(fd), int32(timeout)))
}

//export sync_merge
func sync_merge(name *C.char, fd1, fd2 C.int) C.int {
	return C.int(fence.Default().MergeRaw(str(name), int32(fd1), int32(fd2)))
}

//export sync_file_info
func sync_file_info(fd C.int32_t) unsafe.Pointer {
	return fence.Default().FileInfoRaw(int32(fd))
}

//export sync_file_info_free
func sync_file_info_free(info unsafe.Pointer) {
	fence.Default().FileInfoFreeRaw(info)
}
