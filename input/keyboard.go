package input

import (
	"sync"

	"github.com/gogpu/gpucontext"
)

// Key identifies a keyboard key. It is the host context's key type, so
// event callback values feed straight into KeyboardState.
type Key = gpucontext.Key

// Modifiers is the host context's modifier bitmask (shift, control, ...).
type Modifiers = gpucontext.Modifiers

// keyCapacity sizes the pressed-key sets. Real keyboards report at most
// a handful of simultaneous keys, so this never reallocates.
const keyCapacity = 128

// KeyboardState tracks which keys are held down, the most recent press,
// and one-frame press/release edges.
//
// KeyboardState is safe for concurrent use.
// KeyboardState must not be copied after creation (has mutex).
type KeyboardState struct {
	mu   sync.RWMutex
	keys *edgeSet[Key]
	mods Modifiers

	current    Key
	hasCurrent bool
	last       Key
	hasLast    bool
}

// NewKeyboardState creates an empty keyboard state.
func NewKeyboardState() *KeyboardState {
	return &KeyboardState{
		keys: newEdgeSet[Key](keyCapacity),
	}
}

// SetKey records a key transition from the host event loop. On press
// the previously current key becomes the last pressed key; on release
// the current key is cleared and the last pressed key is kept.
func (k *KeyboardState) SetKey(key Key, pressed bool) {
	k.mu.Lock()
	defer k.mu.Unlock()

	k.keys.set(key, pressed)
	if pressed {
		k.last, k.hasLast = k.current, k.hasCurrent
		k.current, k.hasCurrent = key, true
	} else {
		k.hasCurrent = false
	}
}

// SetModifiers records the active modifier bitmask.
func (k *KeyboardState) SetModifiers(mods Modifiers) {
	k.mu.Lock()
	defer k.mu.Unlock()
	k.mods = mods
}

// Modifiers returns the active modifier bitmask.
func (k *KeyboardState) Modifiers() Modifiers {
	k.mu.RLock()
	defer k.mu.RUnlock()
	return k.mods
}

// IsPressed reports whether key is currently held down.
func (k *KeyboardState) IsPressed(key Key) bool {
	k.mu.RLock()
	defer k.mu.RUnlock()
	return k.keys.isDown(key)
}

// JustPressed reports whether key went down since the last Update.
func (k *KeyboardState) JustPressed(key Key) bool {
	k.mu.RLock()
	defer k.mu.RUnlock()
	return k.keys.justPressed(key)
}

// JustReleased reports whether key went up since the last Update.
func (k *KeyboardState) JustReleased(key Key) bool {
	k.mu.RLock()
	defer k.mu.RUnlock()
	return k.keys.justReleased(key)
}

// CurrentPressed returns the most recently pressed key that is still
// considered current. Returns (key, true) if a key is current,
// (zero, false) after a release.
func (k *KeyboardState) CurrentPressed() (Key, bool) {
	k.mu.RLock()
	defer k.mu.RUnlock()
	return k.current, k.hasCurrent
}

// LastPressed returns the key that was current before the most recent
// press. Returns (zero, false) until two presses have been seen.
func (k *KeyboardState) LastPressed() (Key, bool) {
	k.mu.RLock()
	defer k.mu.RUnlock()
	return k.last, k.hasLast
}

// Update snapshots the frame's key state. Call once per frame, after
// game logic has run, so JustPressed and JustReleased report edges
// relative to the previous frame.
func (k *KeyboardState) Update() {
	k.mu.Lock()
	defer k.mu.Unlock()
	k.keys.update()
}
