// Package property binds the libcutils system property API.
//
// property_get, property_set and property_list are resolved from libcutils.so
// on first use. When the library or a symbol is unavailable the call falls
// back to a stub: Get yields the supplied default, Set and List do nothing and
// return 0. Set rejects keys and values containing NUL with -1.
//
//	mode := property.Get("debug.vulkan.layers", "off")
package property
