// Package input tracks keyboard state with edge detection. Key events may
// arrive at any time between frame ticks; a tick reads one Snapshot and then
// acknowledges the changes with ClearChanged.
package input

// keyStatus is the state of one key inside the current edge-detection window.
type keyStatus struct {
	pressed bool
	changed bool
}

// State is the mutable keyboard state fed by the window event source.
// The zero value is ready to use. State is not safe for concurrent use; key
// events and frame ticks are expected on the same thread.
type State struct {
	keys map[Key]keyStatus

	// last published snapshot map; nil once keys has changed since
	snapshot map[Key]keyStatus
}

func NewState() *State {
	return &State{keys: make(map[Key]keyStatus)}
}

// OnKeyChange records a key transition. The key is marked as changed even when
// the level did not flip, so a press and release inside one window still
// counts as a change.
func (s *State) OnKeyChange(key Key, pressed bool) {
	if s.keys == nil {
		s.keys = make(map[Key]keyStatus)
	}
	s.keys[key] = keyStatus{pressed: pressed, changed: true}
	s.snapshot = nil
}

// Snapshot returns an immutable copy of the current state. The copy is shared
// between calls until the next key change or ClearChanged that modifies state.
func (s *State) Snapshot() Snapshot {
	if s.snapshot == nil {
		s.snapshot = make(map[Key]keyStatus, len(s.keys))
		for k, st := range s.keys {
			s.snapshot[k] = st
		}
	}
	return Snapshot{keys: s.snapshot}
}

// ClearChanged closes the current edge-detection window. It must run after the
// tick's snapshot has been consumed or click actions fire again next tick.
// Released keys are dropped so the state only holds keys that are down.
func (s *State) ClearChanged() {
	for k, st := range s.keys {
		if !st.changed {
			continue
		}
		if st.pressed {
			s.keys[k] = keyStatus{pressed: true}
		} else {
			delete(s.keys, k)
		}
		s.snapshot = nil
	}
}

// Snapshot is the keyboard state as seen by one frame tick.
type Snapshot struct {
	keys map[Key]keyStatus
}

// IsKeyPressed reports the current level of key.
func (s Snapshot) IsKeyPressed(key Key) bool {
	return s.keys[key].pressed
}

// IsKeyClicked reports whether key became pressed and has not been
// acknowledged by ClearChanged yet.
func (s Snapshot) IsKeyClicked(key Key) bool {
	st := s.keys[key]
	return st.pressed && st.changed
}

// Axis maps an opposing key pair to -1, 0 or 1.
func (s Snapshot) Axis(positive, negative Key) float32 {
	var v float32
	if s.IsKeyPressed(positive) {
		v++
	}
	if s.IsKeyPressed(negative) {
		v--
	}
	return v
}
