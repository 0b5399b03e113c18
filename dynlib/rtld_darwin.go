package dynlib

// RTLD_NOLOAD for dyld.
const rtldNoload = 0x10
