package errors

import (
	"errors"
	"strings"
	"testing"
)

func TestError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *Error
		contains []string
	}{
		{
			name: "full error",
			err: &Error{
				Phase:   PhaseResolve,
				Kind:    KindSymbolMissing,
				Library: "libsync.so",
				Path:    "/system/lib64/libsync.so",
				Symbol:  "sync_wait",
				Detail:  "undefined symbol",
			},
			contains: []string{"[resolve]", "symbol_missing", "libsync.so", "/system/lib64/libsync.so", "sync_wait", "undefined symbol"},
		},
		{
			name: "minimal error",
			err: &Error{
				Phase: PhaseLoad,
				Kind:  KindLibraryNotFound,
			},
			contains: []string{"[load]", "library_not_found"},
		},
		{
			name: "error with cause",
			err: &Error{
				Phase:  PhaseLoad,
				Kind:   KindLibraryNotFound,
				Detail: "dlopen failed",
				Cause:  errors.New("cannot locate libfoo.so"),
			},
			contains: []string{"[load]", "dlopen failed", "caused by", "cannot locate libfoo.so"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg := tt.err.Error()
			for _, s := range tt.contains {
				if !strings.Contains(msg, s) {
					t.Errorf("error message %q does not contain %q", msg, s)
				}
			}
		})
	}
}

func TestError_Unwrap(t *testing.T) {
	cause := errors.New("root cause")
	err := LoadFailed("liblog.so", "/system/lib/liblog.so", cause)

	if !errors.Is(errors.Unwrap(err), cause) {
		t.Error("errors.Unwrap did not return cause")
	}
	if !errors.Is(err, cause) {
		t.Error("errors.Is should find cause in chain")
	}
}

func TestError_Is(t *testing.T) {
	err := &Error{
		Phase:   PhaseLoad,
		Kind:    KindLibraryNotFound,
		Library: "libcutils.so",
	}

	if !err.Is(&Error{Phase: PhaseLoad, Kind: KindLibraryNotFound}) {
		t.Error("Is should match same phase and kind")
	}
	if err.Is(&Error{Phase: PhaseResolve, Kind: KindLibraryNotFound}) {
		t.Error("Is should not match different phase")
	}
	if err.Is(&Error{Phase: PhaseLoad, Kind: KindSymbolMissing}) {
		t.Error("Is should not match different kind")
	}
}

func TestBuilder(t *testing.T) {
	cause := errors.New("root")
	err := New(PhaseBind, KindUnsupported).
		Library("libnativewindow.so").
		Path("libnativewindow.so").
		Symbol("ANativeWindow_query").
		Cause(cause).
		Detail("bad signature %d", 3).
		Build()

	if err.Phase != PhaseBind {
		t.Errorf("Phase = %v, want %v", err.Phase, PhaseBind)
	}
	if err.Kind != KindUnsupported {
		t.Errorf("Kind = %v, want %v", err.Kind, KindUnsupported)
	}
	if err.Library != "libnativewindow.so" || err.Path != "libnativewindow.so" {
		t.Errorf("Library=%q Path=%q", err.Library, err.Path)
	}
	if err.Symbol != "ANativeWindow_query" {
		t.Errorf("Symbol = %q", err.Symbol)
	}
	if !errors.Is(err.Cause, cause) {
		t.Errorf("Cause = %v, want %v", err.Cause, cause)
	}
	if err.Detail != "bad signature 3" {
		t.Errorf("Detail = %q, want 'bad signature 3'", err.Detail)
	}
}

func TestLibraryNotFound(t *testing.T) {
	first := errors.New("first")
	last := errors.New("last")

	err := LibraryNotFound("libsync.so", []error{first, last})
	if err.Kind != KindLibraryNotFound {
		t.Errorf("Kind = %v, want %v", err.Kind, KindLibraryNotFound)
	}
	if !errors.Is(err, last) {
		t.Error("last attempt should be the cause")
	}
	if !strings.Contains(err.Detail, "2") {
		t.Errorf("Detail = %q, should mention attempt count", err.Detail)
	}

	if LibraryNotFound("libsync.so", nil).Cause != nil {
		t.Error("no attempts should leave cause nil")
	}
}

func TestMissingSymbolsError(t *testing.T) {
	symbols := []string{"sync_merge", "sync_file_info"}
	err := NewMissingSymbolsError("libsync.so", symbols)
	symbols[0] = "mutated"

	if err.Symbols[0] != "sync_merge" {
		t.Error("constructor should copy symbol list")
	}

	msg := err.Error()
	for _, s := range []string{"missing 2 symbol(s)", "libsync.so", "sync_merge", "sync_file_info"} {
		if !strings.Contains(msg, s) {
			t.Errorf("message %q does not contain %q", msg, s)
		}
	}

	if !errors.Is(err, &MissingSymbolsError{}) {
		t.Error("errors.Is should match MissingSymbolsError")
	}
	if !errors.Is(err, &Error{Phase: PhaseResolve, Kind: KindSymbolMissing}) {
		t.Error("errors.Is should match resolve/symbol_missing")
	}

	var empty MissingSymbolsError
	if !strings.Contains(empty.Error(), "no symbols") {
		t.Errorf("empty message = %q", empty.Error())
	}
}

func TestConvenienceConstructors(t *testing.T) {
	t.Run("SymbolMissing", func(t *testing.T) {
		err := SymbolMissing("liblog.so", "__android_log_write", nil)
		if err.Phase != PhaseResolve || err.Kind != KindSymbolMissing {
			t.Errorf("got %v/%v", err.Phase, err.Kind)
		}
	})

	t.Run("Unsupported", func(t *testing.T) {
		err := Unsupported(PhaseLoad, "dlopen on windows")
		if err.Kind != KindUnsupported {
			t.Errorf("Kind = %v, want %v", err.Kind, KindUnsupported)
		}
	})

	t.Run("InvalidInput", func(t *testing.T) {
		err := InvalidInput(PhaseCall, "embedded NUL")
		if err.Kind != KindInvalidInput {
			t.Errorf("Kind = %v, want %v", err.Kind, KindInvalidInput)
		}
	})

	t.Run("NotInitialized", func(t *testing.T) {
		err := NotInitialized("libcutils.so")
		if err.Kind != KindNotInitialized || !strings.Contains(err.Error(), "libcutils.so") {
			t.Errorf("unexpected error %v", err)
		}
	})

	t.Run("Wrap", func(t *testing.T) {
		cause := errors.New("boom")
		err := Wrap(PhaseBind, KindUnsupported, cause, "register func")
		if !errors.Is(err, cause) {
			t.Error("Wrap should keep cause")
		}
	})
}
