package dynlib

// RTLD_NOLOAD for glibc and bionic.
const rtldNoload = 0x4
