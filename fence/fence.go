package fence

import (
	"unsafe"

	"github.com/wippyai/ndkshim/dynlib"
	"github.com/wippyai/ndkshim/internal/cstr"
)

// Library is the canonical soname of the sync API.
const Library = "libsync.so"

// Fence status values reported in FileInfo and FenceInfo.
const (
	StatusActive   int32 = 0
	StatusSignaled int32 = 1
)

// FileInfo mirrors struct sync_file_info.
type FileInfo struct {
	Name      [32]byte
	Status    int32
	Flags     uint32
	NumFences uint32
	_         uint32
	fences    uint64
}

// FenceInfo mirrors struct sync_fence_info.
type FenceInfo struct {
	ObjName     [32]byte
	DriverName  [32]byte
	Status      int32
	Flags       uint32
	TimestampNs uint64
}

// String returns the fence name.
func (fi *FileInfo) String() string {
	return cstr.Bytes(fi.Name[:])
}

// Fences returns the per-fence records. The slice aliases memory owned by
// the platform and is invalid after FileInfoFree.
func (fi *FileInfo) Fences() []FenceInfo {
	if fi.NumFences == 0 || fi.fences == 0 {
		return nil
	}
	p := *(*unsafe.Pointer)(unsafe.Pointer(&fi.fences))
	return unsafe.Slice((*FenceInfo)(p), fi.NumFences)
}

// Binding is a lazily resolved view of libsync.
type Binding struct {
	lib *dynlib.Library

	wait     func(fd, timeout int32) int32
	merge    func(name *byte, fd1, fd2 int32) int32
	fileInfo func(fd int32) unsafe.Pointer
	infoFree func(info unsafe.Pointer)
}

// New creates a binding. Resolution happens on the first call.
func New(opts ...dynlib.Option) *Binding {
	b := &Binding{}
	opts = append([]dynlib.Option{dynlib.WithComponent("sync")}, opts...)
	b.lib = dynlib.New(Library, dynlib.SystemPaths(Library), []dynlib.Symbol{
		{Name: "sync_wait", Fn: &b.wait},
		{Name: "sync_merge", Fn: &b.merge},
		{Name: "sync_file_info", Fn: &b.fileInfo},
		{Name: "sync_file_info_free", Fn: &b.infoFree},
	}, opts...)
	return b
}

// Library returns the underlying library for status inspection.
func (b *Binding) Library() *dynlib.Library {
	return b.lib
}

// Wait is sync_wait: block up to timeout milliseconds (-1 forever) for fd to
// signal.
func (b *Binding) Wait(fd, timeout int32) int32 {
	b.lib.Ensure()
	if b.wait != nil {
		return b.wait(fd, timeout)
	}
	return 0
}

// MergeRaw is sync_merge.
func (b *Binding) MergeRaw(name *byte, fd1, fd2 int32) int32 {
	b.lib.Ensure()
	if b.merge != nil {
		return b.merge(name, fd1, fd2)
	}
	return -1
}

// Merge combines two fences into a new one named name and returns its
// descriptor, or a negative value on failure.
func (b *Binding) Merge(name string, fd1, fd2 int32) int32 {
	return b.MergeRaw(cstr.Ptr(name), fd1, fd2)
}

// FileInfoRaw is sync_file_info.
func (b *Binding) FileInfoRaw(fd int32) unsafe.Pointer {
	b.lib.Ensure()
	if b.fileInfo != nil {
		return b.fileInfo(fd)
	}
	return nil
}

// FileInfo returns platform-allocated information about fd, or nil. The
// result must be released with FileInfoFree.
func (b *Binding) FileInfo(fd int32) *FileInfo {
	return (*FileInfo)(b.FileInfoRaw(fd))
}

// FileInfoFreeRaw is sync_file_info_free.
func (b *Binding) FileInfoFreeRaw(info unsafe.Pointer) {
	b.lib.Ensure()
	if b.infoFree != nil {
		b.infoFree(info)
	}
}

// FileInfoFree releases info obtained from FileInfo.
func (b *Binding) FileInfoFree(info *FileInfo) {
	b.FileInfoFreeRaw(unsafe.Pointer(info))
}
