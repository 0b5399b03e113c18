package fence

import (
	"sync"
	"testing"
	"unsafe"

	"github.com/wippyai/ndkshim/dynlib"
	"github.com/wippyai/ndkshim/dynlib/dynlibtest"
	"github.com/wippyai/ndkshim/internal/cstr"
)

func TestLayout(t *testing.T) {
	if s := unsafe.Sizeof(FileInfo{}); s != 56 {
		t.Errorf("sizeof(FileInfo) = %d, want 56", s)
	}
	if s := unsafe.Sizeof(FenceInfo{}); s != 80 {
		t.Errorf("sizeof(FenceInfo) = %d, want 80", s)
	}
}

func TestStub(t *testing.T) {
	ld := dynlibtest.New()
	b := New(dynlib.WithLoader(ld))

	if rc := b.Wait(5, 100); rc != 0 {
		t.Errorf("Wait(5, 100) = %d, want 0", rc)
	}
	if fd := b.Merge("merged", 3, 4); fd != -1 {
		t.Errorf("Merge = %d, want -1", fd)
	}
	if info := b.FileInfo(5); info != nil {
		t.Errorf("FileInfo = %v, want nil", info)
	}
	b.FileInfoFree(nil)

	for i := 0; i < 50; i++ {
		b.Wait(5, 100)
	}
	if ld.Probes() != 1 {
		t.Errorf("Probes = %d, want 1", ld.Probes())
	}
}

func TestForwards(t *testing.T) {
	var info FileInfo
	copy(info.Name[:], "gpu-fence\x00")
	info.Status = StatusSignaled

	var (
		mu     sync.Mutex
		waits  [][2]int32
		merged string
		freed  unsafe.Pointer
	)
	ld := dynlibtest.New().AddLibrary("/system/lib64/libsync.so", map[string]any{
		"sync_wait": func(fd, timeout int32) int32 {
			mu.Lock()
			waits = append(waits, [2]int32{fd, timeout})
			mu.Unlock()
			return -62
		},
		"sync_merge": func(name *byte, fd1, fd2 int32) int32 {
			merged = cstr.String(name)
			return fd1 + fd2
		},
		"sync_file_info":      func(fd int32) unsafe.Pointer { return unsafe.Pointer(&info) },
		"sync_file_info_free": func(p unsafe.Pointer) { freed = p },
	})
	b := New(dynlib.WithLoader(ld))

	if rc := b.Wait(5, 100); rc != -62 {
		t.Errorf("Wait = %d, want platform code -62", rc)
	}
	if len(waits) != 1 || waits[0] != [2]int32{5, 100} {
		t.Errorf("waits = %v", waits)
	}

	if fd := b.Merge("present", 7, 9); fd != 16 || merged != "present" {
		t.Errorf("Merge = %d name=%q", fd, merged)
	}

	got := b.FileInfo(5)
	if got != &info {
		t.Fatal("FileInfo should return the platform pointer unchanged")
	}
	if got.String() != "gpu-fence" || got.Status != StatusSignaled {
		t.Errorf("info = %q status %d", got.String(), got.Status)
	}
	if got.Fences() != nil {
		t.Error("no fences expected")
	}

	b.FileInfoFree(got)
	if freed != unsafe.Pointer(&info) {
		t.Error("FileInfoFree should forward the same pointer")
	}
}

func TestFences(t *testing.T) {
	fences := []FenceInfo{{Status: StatusSignaled}, {Status: StatusActive}}
	copy(fences[0].DriverName[:], "kgsl")

	info := FileInfo{NumFences: 2}
	*(*unsafe.Pointer)(unsafe.Pointer(&info.fences)) = unsafe.Pointer(&fences[0])

	got := info.Fences()
	if len(got) != 2 {
		t.Fatalf("len = %d, want 2", len(got))
	}
	if cstr.Bytes(got[0].DriverName[:]) != "kgsl" || got[1].Status != StatusActive {
		t.Errorf("fences = %+v", got)
	}
}

func TestConcurrentFirstUse(t *testing.T) {
	ld := dynlibtest.New()
	b := New(dynlib.WithLoader(ld))

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if rc := b.Wait(int32(i), 100); rc != 0 {
				t.Errorf("Wait = %d", rc)
			}
		}()
	}
	wg.Wait()

	if ld.Probes() != 1 {
		t.Errorf("Probes = %d, want 1", ld.Probes())
	}
}
