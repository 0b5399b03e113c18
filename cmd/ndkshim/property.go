package main

/*
typedef void (*property_fn)(const char *key, const char *value, void *cookie);
*/
import "C"

import (
	"unsafe"

	"github.com/wippyai/ndkshim/property"
)

//export property_get
func property_get(key, value, def *C.char) C.int {
	return C.int(property.Default().GetRaw(str(key), str(value), str(def)))
}

//export property_set
func property_set(key, value *C.char) C.int {
	return C.int(property.Default().SetRaw(str(key), str(value)))
}

//export property_list
func property_list(fn C.property_fn, cookie unsafe.Pointer) C.int {
	return C.int(property.Default().ListRaw(uintptr(unsafe.Pointer(fn)), uintptr(cookie)))
}
