package sprite

import "testing"

func TestUnitRect(t *testing.T) {
	got := UnitRect()
	want := Rect{X: 0, Y: 0, W: 1, H: 1}
	if got != want {
		t.Errorf("UnitRect() = %+v, want %+v", got, want)
	}
}

func TestRectArray(t *testing.T) {
	r := NewRect(0.25, 0.5, 0.125, 0.75)
	want := [4]float32{0.25, 0.5, 0.125, 0.75}
	if got := r.Array(); got != want {
		t.Errorf("Array() = %v, want %v", got, want)
	}
}
