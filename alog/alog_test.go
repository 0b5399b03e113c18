package alog

import (
	"strings"
	"sync"
	"testing"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/wippyai/ndkshim/dynlib"
	"github.com/wippyai/ndkshim/dynlib/dynlibtest"
	"github.com/wippyai/ndkshim/internal/cstr"
)

type entry struct {
	buf  int32
	prio int32
	tag  string
	text string
}

type sink struct {
	mu      sync.Mutex
	entries []entry
}

func (s *sink) add(e entry) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries = append(s.entries, e)
}

func (s *sink) all() []entry {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]entry(nil), s.entries...)
}

func logBinding(t *testing.T) (*Binding, *sink, *dynlibtest.Loader) {
	t.Helper()
	s := &sink{}
	ld := dynlibtest.New().AddLibrary("liblog.so", map[string]any{
		"__android_log_write": func(prio int32, tag, text *byte) int32 {
			s.add(entry{buf: -1, prio: prio, tag: cstr.String(tag), text: cstr.String(text)})
			return int32(len(cstr.String(text)))
		},
		"__android_log_buf_write": func(buf, prio int32, tag, text *byte) int32 {
			s.add(entry{buf: buf, prio: prio, tag: cstr.String(tag), text: cstr.String(text)})
			return 1
		},
		"__android_log_is_loggable": func(prio int32, tag *byte, def int32) int32 {
			if prio >= def {
				return 1
			}
			return 0
		},
	})
	return New(dynlib.WithLoader(ld)), s, ld
}

func TestStub(t *testing.T) {
	ld := dynlibtest.New()
	b := New(dynlib.WithLoader(ld))

	if rc := b.Write(PriorityInfo, "tag", "text"); rc != 0 {
		t.Errorf("Write = %d, want 0", rc)
	}
	if rc := b.Print(PriorityInfo, "tag", "n=%d", 1); rc != 0 {
		t.Errorf("Print = %d, want 0", rc)
	}
	if rc := b.Vprint(PriorityInfo, "tag", "plain", nil); rc != 0 {
		t.Errorf("Vprint = %d, want 0", rc)
	}
	if rc := b.BufWrite(BufferSystem, PriorityWarn, "tag", "text"); rc != 0 {
		t.Errorf("BufWrite = %d, want 0", rc)
	}
	if b.IsLoggable(PriorityFatal, "tag", PriorityInfo) {
		t.Error("IsLoggable stub should be false")
	}
	if ld.Probes() != 1 {
		t.Errorf("Probes = %d, want 1", ld.Probes())
	}
}

func TestWrite_Forwards(t *testing.T) {
	b, s, _ := logBinding(t)

	if rc := b.Write(PriorityError, "vk", "device lost"); rc != int32(len("device lost")) {
		t.Errorf("Write = %d, want platform return", rc)
	}
	if rc := b.BufWrite(BufferCrash, PriorityFatal, "vk", "abort"); rc != 1 {
		t.Errorf("BufWrite = %d, want 1", rc)
	}

	got := s.all()
	want := []entry{
		{buf: -1, prio: int32(PriorityError), tag: "vk", text: "device lost"},
		{buf: int32(BufferCrash), prio: int32(PriorityFatal), tag: "vk", text: "abort"},
	}
	if len(got) != len(want) {
		t.Fatalf("entries = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("entry %d = %+v, want %+v", i, got[i], want[i])
		}
	}
}

func TestPrint(t *testing.T) {
	b, s, _ := logBinding(t)

	b.Print(PriorityDebug, "vk", "swapchain %dx%d", 1080, 2400)
	b.Print(PriorityDebug, "vk", "100% literal")

	got := s.all()
	if len(got) != 2 {
		t.Fatalf("entries = %v", got)
	}
	if got[0].text != "swapchain 1080x2400" {
		t.Errorf("text = %q", got[0].text)
	}
	if got[1].text != "100% literal" {
		t.Errorf("text without args should be verbatim, got %q", got[1].text)
	}
}

func TestVprint_Truncates(t *testing.T) {
	b, s, _ := logBinding(t)

	b.Print(PriorityInfo, "vk", "%s", strings.Repeat("x", 3000))

	got := s.all()
	if len(got) != 1 || len(got[0].text) != LogBufSize-1 {
		t.Fatalf("text length = %d, want %d", len(got[0].text), LogBufSize-1)
	}
}

func TestPartialLiblog(t *testing.T) {
	type printCall struct {
		format, text string
	}

	tests := []struct {
		name       string
		symbols    []string
		wantRC     int32
		wantWrites int
		wantPrints int
		wantVprint bool
	}{
		{"write only", []string{"__android_log_write"}, 3, 1, 0, false},
		{"print and vprint", []string{"__android_log_print", "__android_log_vprint"}, 7, 0, 1, true},
		{"vprint only", []string{"__android_log_vprint"}, 0, 0, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var (
				writes []string
				prints []printCall
			)
			all := map[string]any{
				"__android_log_write": func(prio int32, tag, text *byte) int32 {
					writes = append(writes, cstr.String(text))
					return int32(len(cstr.String(text)))
				},
				"__android_log_print": func(prio int32, tag, format, text *byte) int32 {
					prints = append(prints, printCall{cstr.String(format), cstr.String(text)})
					return 7
				},
				"__android_log_vprint": func() {},
			}
			syms := make(map[string]any)
			for _, name := range tt.symbols {
				syms[name] = all[name]
			}
			b := New(dynlib.WithLoader(dynlibtest.New().AddLibrary("liblog.so", syms)))

			if rc := b.Print(PriorityInfo, "tag", "n=%d", 1); rc != tt.wantRC {
				t.Errorf("Print = %d, want %d", rc, tt.wantRC)
			}
			if len(writes) != tt.wantWrites || len(prints) != tt.wantPrints {
				t.Fatalf("writes=%v prints=%v", writes, prints)
			}
			for _, w := range writes {
				if w != "n=1" {
					t.Errorf("write text = %q, want n=1", w)
				}
			}
			for _, p := range prints {
				if p.format != "%s" || p.text != "n=1" {
					t.Errorf("print = %+v, want %%s with n=1", p)
				}
			}

			if got := b.VprintAddr() != 0; got != tt.wantVprint {
				t.Errorf("VprintAddr set = %v, want %v", got, tt.wantVprint)
			}
			if got := b.Library().Has("__android_log_vprint"); got != tt.wantVprint {
				t.Errorf("Has(vprint) = %v, want %v", got, tt.wantVprint)
			}
			if !b.Library().Loaded() {
				t.Error("library should report loaded")
			}
		})
	}
}

func TestWriteRaw_FallsBackToPrint(t *testing.T) {
	var got string
	ld := dynlibtest.New().AddLibrary("liblog.so", map[string]any{
		"__android_log_print": func(prio int32, tag, format, text *byte) int32 {
			got = cstr.String(format) + "|" + cstr.String(text)
			return 1
		},
	})
	b := New(dynlib.WithLoader(ld))

	if rc := b.Write(PriorityWarn, "vk", "100% done"); rc != 1 {
		t.Errorf("Write = %d, want 1", rc)
	}
	if got != "%s|100% done" {
		t.Errorf("print received %q, text must not be used as a format", got)
	}
}

func TestIsLoggable(t *testing.T) {
	b, _, _ := logBinding(t)
	if !b.IsLoggable(PriorityError, "vk", PriorityInfo) {
		t.Error("error should pass info threshold")
	}
	if b.IsLoggable(PriorityDebug, "vk", PriorityInfo) {
		t.Error("debug should not pass info threshold")
	}
}

func TestPriorityString(t *testing.T) {
	if PriorityWarn.String() != "W" || Priority(99).String() != "?" {
		t.Errorf("unexpected priority strings %q %q", PriorityWarn, Priority(99))
	}
}

func TestCore(t *testing.T) {
	b, s, _ := logBinding(t)

	log := zap.New(NewCore(b, "ndkshim", zapcore.InfoLevel)).Named("dynlib").With(zap.String("library", "libsync.so"))
	log.Debug("dropped")
	log.Warn("failed to load library", zap.String("path", "/system/lib/libsync.so"))

	got := s.all()
	if len(got) != 1 {
		t.Fatalf("entries = %v, want 1", got)
	}
	e := got[0]
	if e.prio != int32(PriorityWarn) || e.tag != "ndkshim" {
		t.Errorf("entry = %+v", e)
	}
	for _, want := range []string{"dynlib", "failed to load library", `"library": "libsync.so"`, `"path": "/system/lib/libsync.so"`} {
		if !strings.Contains(e.text, want) {
			t.Errorf("text %q does not contain %q", e.text, want)
		}
	}
	if strings.HasSuffix(e.text, "\n") {
		t.Error("trailing newline should be trimmed")
	}
}

func TestCore_OwnResolutionDoesNotDeadlock(t *testing.T) {
	b, s, _ := logBinding(t)

	dynlib.SetLogger(zap.New(NewCore(b, "ndkshim", zapcore.DebugLevel)))
	defer dynlib.SetLogger(nil)

	done := make(chan struct{})
	go func() {
		defer close(done)
		b.Write(PriorityInfo, "app", "hello")
	}()

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("log binding deadlocked logging its own resolution")
	}

	got := s.all()
	if len(got) != 1 || got[0].text != "hello" {
		t.Errorf("entries = %v, want only the caller's record", got)
	}
}

func TestLevelPriority(t *testing.T) {
	tests := []struct {
		level zapcore.Level
		want  Priority
	}{
		{zapcore.DebugLevel, PriorityDebug},
		{zapcore.InfoLevel, PriorityInfo},
		{zapcore.WarnLevel, PriorityWarn},
		{zapcore.ErrorLevel, PriorityError},
		{zapcore.DPanicLevel, PriorityError},
		{zapcore.PanicLevel, PriorityError},
		{zapcore.FatalLevel, PriorityFatal},
	}
	for _, tt := range tests {
		if got := levelPriority(tt.level); got != tt.want {
			t.Errorf("levelPriority(%v) = %v, want %v", tt.level, got, tt.want)
		}
	}
}
