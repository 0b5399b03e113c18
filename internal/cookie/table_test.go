package cookie

import (
	"sync"
	"testing"
)

func TestTable_InsertGet(t *testing.T) {
	tbl := NewTable[string]()

	c1 := tbl.Insert("first")
	c2 := tbl.Insert("second")

	if c1 == 0 || c2 == 0 {
		t.Fatal("cookie 0 must never be issued")
	}
	if c1 == c2 {
		t.Fatal("cookies must be unique")
	}

	if v, ok := tbl.Get(c1); !ok || v != "first" {
		t.Errorf("Get(c1) = %q, %v", v, ok)
	}
	if v, ok := tbl.Get(c2); !ok || v != "second" {
		t.Errorf("Get(c2) = %q, %v", v, ok)
	}
	if tbl.Len() != 2 {
		t.Errorf("Len = %d, want 2", tbl.Len())
	}
}

func TestTable_InvalidCookies(t *testing.T) {
	tbl := NewTable[int]()

	if _, ok := tbl.Get(0); ok {
		t.Error("Get(0) should fail")
	}
	if _, ok := tbl.Get(99); ok {
		t.Error("Get(out of range) should fail")
	}
	if _, ok := tbl.Remove(0); ok {
		t.Error("Remove(0) should fail")
	}
	if _, ok := tbl.Remove(99); ok {
		t.Error("Remove(out of range) should fail")
	}
}

func TestTable_RemoveReuses(t *testing.T) {
	tbl := NewTable[int]()

	c := tbl.Insert(1)
	if v, ok := tbl.Remove(c); !ok || v != 1 {
		t.Fatalf("Remove = %d, %v", v, ok)
	}
	if _, ok := tbl.Get(c); ok {
		t.Error("removed cookie should be invalid")
	}
	if _, ok := tbl.Remove(c); ok {
		t.Error("double remove should fail")
	}

	reused := tbl.Insert(2)
	if reused != c {
		t.Errorf("Insert after Remove = %d, want reused %d", reused, c)
	}
	if tbl.Len() != 1 {
		t.Errorf("Len = %d, want 1", tbl.Len())
	}
}

func TestTable_Concurrent(t *testing.T) {
	tbl := NewTable[int]()

	var wg sync.WaitGroup
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			c := tbl.Insert(i)
			if v, ok := tbl.Get(c); !ok || v != i {
				t.Errorf("Get = %d, %v, want %d", v, ok, i)
			}
			tbl.Remove(c)
		}()
	}
	wg.Wait()

	if tbl.Len() != 0 {
		t.Errorf("Len = %d, want 0", tbl.Len())
	}
}
