package input

import (
	"sync"
	"testing"
)

func TestMouseButtonString(t *testing.T) {
	tests := []struct {
		btn  MouseButton
		want string
	}{
		{MouseButtonLeft, "Left"},
		{MouseButtonRight, "Right"},
		{MouseButtonMiddle, "Middle"},
		{MouseButton(99), "Unknown"},
	}
	for _, tt := range tests {
		if got := tt.btn.String(); got != tt.want {
			t.Errorf("MouseButton(%d).String() = %q, want %q", tt.btn, got, tt.want)
		}
	}
}

func TestNewMouseState(t *testing.T) {
	m := NewMouseState()

	if m.IsPressed(MouseButtonLeft) {
		t.Error("new state reports button pressed")
	}
	if x, y := m.Position(); x != 0 || y != 0 {
		t.Errorf("Position() = %v, %v, want 0, 0", x, y)
	}
	if dx, dy := m.Delta(); dx != 0 || dy != 0 {
		t.Errorf("Delta() = %v, %v, want 0, 0", dx, dy)
	}
}

func TestMouseButtons(t *testing.T) {
	m := NewMouseState()

	m.SetButton(MouseButtonLeft, true)
	if !m.IsPressed(MouseButtonLeft) {
		t.Error("left not pressed after press")
	}
	if m.IsPressed(MouseButtonRight) {
		t.Error("right pressed without press")
	}
	if !m.JustPressed(MouseButtonLeft) {
		t.Error("press edge not reported")
	}

	m.Update()
	if m.JustPressed(MouseButtonLeft) {
		t.Error("press edge survived Update")
	}

	m.SetButton(MouseButtonLeft, false)
	if !m.JustReleased(MouseButtonLeft) {
		t.Error("release edge not reported")
	}
	if m.JustReleased(MouseButtonRight) {
		t.Error("untouched button reports release edge")
	}
}

func TestMouseIndependentButtons(t *testing.T) {
	m := NewMouseState()

	m.SetButton(MouseButtonLeft, true)
	m.SetButton(MouseButtonRight, true)
	m.Update()
	m.SetButton(MouseButtonRight, false)

	if !m.IsPressed(MouseButtonLeft) {
		t.Error("left lost on right release")
	}
	if m.IsPressed(MouseButtonRight) {
		t.Error("right still pressed")
	}
	if !m.JustReleased(MouseButtonRight) {
		t.Error("right release edge missing")
	}
}

func TestMousePosition(t *testing.T) {
	m := NewMouseState()

	m.SetPosition(320.5, 240.25)
	if x, y := m.Position(); x != 320.5 || y != 240.25 {
		t.Errorf("Position() = %v, %v, want 320.5, 240.25", x, y)
	}
}

func TestMouseDelta(t *testing.T) {
	m := NewMouseState()

	// Delta is relative to the position at the last Update.
	m.SetPosition(10, 20)
	m.Update()

	m.SetPosition(15, 26)
	if dx, dy := m.Delta(); dx != 5 || dy != 6 {
		t.Errorf("Delta() = %v, %v, want 5, 6", dx, dy)
	}

	m.Update()
	if dx, dy := m.Delta(); dx != 0 || dy != 0 {
		t.Errorf("Delta() after Update = %v, %v, want 0, 0", dx, dy)
	}
}

func TestMouseConcurrentAccess(t *testing.T) {
	m := NewMouseState()

	const goroutines = 100
	const iterations = 100

	var wg sync.WaitGroup
	wg.Add(goroutines)
	for i := 0; i < goroutines; i++ {
		go func(id int) {
			defer wg.Done()
			for j := 0; j < iterations; j++ {
				if id%2 == 0 {
					m.SetButton(MouseButtonLeft, true)
					m.SetPosition(float64(j), float64(j))
				} else {
					m.IsPressed(MouseButtonLeft)
					m.Position()
					m.Delta()
				}
			}
		}(i)
	}
	wg.Wait()

	if !m.IsPressed(MouseButtonLeft) {
		t.Error("button not pressed after concurrent presses")
	}
}
