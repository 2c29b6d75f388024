package input

import "sync"

// MouseButton identifies a mouse button.
type MouseButton uint8

const (
	MouseButtonLeft   MouseButton = iota // primary (left) mouse button
	MouseButtonRight                     // secondary (right) mouse button
	MouseButtonMiddle                    // middle mouse button
)

// String returns the button name for logging.
func (b MouseButton) String() string {
	switch b {
	case MouseButtonLeft:
		return "Left"
	case MouseButtonRight:
		return "Right"
	case MouseButtonMiddle:
		return "Middle"
	default:
		return "Unknown"
	}
}

// buttonCapacity sizes the pressed-button sets.
const buttonCapacity = 8

// MouseState tracks button state, cursor position, and one-frame
// press/release edges.
//
// MouseState is safe for concurrent use.
// MouseState must not be copied after creation (has mutex).
type MouseState struct {
	mu      sync.RWMutex
	buttons *edgeSet[MouseButton]

	x, y         float64
	prevX, prevY float64
}

// NewMouseState creates an empty mouse state.
func NewMouseState() *MouseState {
	return &MouseState{
		buttons: newEdgeSet[MouseButton](buttonCapacity),
	}
}

// SetButton records a button transition from the host event loop.
func (m *MouseState) SetButton(btn MouseButton, pressed bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.buttons.set(btn, pressed)
}

// SetPosition records the cursor position in window coordinates.
func (m *MouseState) SetPosition(x, y float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.x, m.y = x, y
}

// Position returns the cursor position in window coordinates.
func (m *MouseState) Position() (x, y float64) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.x, m.y
}

// Delta returns the cursor movement since the last Update.
func (m *MouseState) Delta() (dx, dy float64) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.x - m.prevX, m.y - m.prevY
}

// IsPressed reports whether btn is currently held down.
func (m *MouseState) IsPressed(btn MouseButton) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.buttons.isDown(btn)
}

// JustPressed reports whether btn went down since the last Update.
func (m *MouseState) JustPressed(btn MouseButton) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.buttons.justPressed(btn)
}

// JustReleased reports whether btn went up since the last Update.
func (m *MouseState) JustReleased(btn MouseButton) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.buttons.justReleased(btn)
}

// Update snapshots the frame's button state and cursor position. Call
// once per frame, after game logic has run.
func (m *MouseState) Update() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.buttons.update()
	m.prevX, m.prevY = m.x, m.y
}
