package gesture

import "sync/atomic"

// Slot is a single-value latest-wins exchange for handing states from an
// inference goroutine to the render loop. Writers overwrite, readers may
// see the same state repeatedly; there is no queue and no back-pressure.
// The render loop is never gated on inference cadence.
type Slot struct {
	v atomic.Pointer[State]
}

// NewSlot creates a slot holding the given initial state.
func NewSlot(initial State) *Slot {
	s := &Slot{}
	s.v.Store(&initial)
	return s
}

// Store publishes a new state, replacing whatever was there.
func (s *Slot) Store(state State) {
	s.v.Store(&state)
}

// Load returns the most recently stored state.
func (s *Slot) Load() State {
	return *s.v.Load()
}
