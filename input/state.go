package input

// edgeSet tracks a pressed set plus a snapshot of the previous frame,
// so press and release edges can be detected without event queues.
//
// edgeSet is not thread-safe; callers hold their own lock.
type edgeSet[T comparable] struct {
	down map[T]struct{}
	prev map[T]struct{}
}

func newEdgeSet[T comparable](capacity int) *edgeSet[T] {
	return &edgeSet[T]{
		down: make(map[T]struct{}, capacity),
		prev: make(map[T]struct{}, capacity),
	}
}

func (s *edgeSet[T]) set(v T, pressed bool) {
	if pressed {
		s.down[v] = struct{}{}
	} else {
		delete(s.down, v)
	}
}

func (s *edgeSet[T]) isDown(v T) bool {
	_, ok := s.down[v]
	return ok
}

// justPressed reports whether v is down now but was not down at the
// last update.
func (s *edgeSet[T]) justPressed(v T) bool {
	_, now := s.down[v]
	_, before := s.prev[v]
	return now && !before
}

// justReleased reports whether v was down at the last update but is
// not down now.
func (s *edgeSet[T]) justReleased(v T) bool {
	_, now := s.down[v]
	_, before := s.prev[v]
	return !now && before
}

// update snapshots the live set as the previous frame.
func (s *edgeSet[T]) update() {
	clear(s.prev)
	for v := range s.down {
		s.prev[v] = struct{}{}
	}
}
