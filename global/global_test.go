package global

import "testing"

func TestGlobal(t *testing.T) {
	g := New[int32](5)
	if got := g.Get(); got != 5 {
		t.Errorf("Get = %d; want 5", got)
	}
	g.Set(-1)
	if got := g.Get(); got != -1 {
		t.Errorf("Get after Set = %d; want -1", got)
	}
}

func TestGlobalZeroValue(t *testing.T) {
	var g Global[float64]
	if got := g.Get(); got != 0 {
		t.Errorf("zero value Get = %v; want 0", got)
	}
	g.Set(2.5)
	if got := g.Get(); got != 2.5 {
		t.Errorf("Get = %v; want 2.5", got)
	}
}
