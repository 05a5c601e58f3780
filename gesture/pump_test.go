package gesture

import (
	"testing"
	"time"
)

// sliceSource replays a fixed slice of frames and then reports
// exhaustion.
type sliceSource struct {
	frames []*LandmarkSet
	next   int
}

func (s *sliceSource) Next() (*LandmarkSet, bool) {
	if s.next >= len(s.frames) {
		return nil, false
	}
	lm := s.frames[s.next]
	s.next++
	return lm, true
}

func waitClosed(t *testing.T, ch chan struct{}) {
	t.Helper()
	select {
	case <-ch:
	case <-time.After(2 * time.Second):
		t.Fatal("channel not closed in time")
	}
}

func TestPumpPublishesInterpretedStates(t *testing.T) {
	slot := NewSlot(State{Grab: true})
	source := &sliceSource{frames: []*LandmarkSet{
		SynthesizeHand(0.75, 0.5, false),
	}}

	stop := make(chan struct{})
	done := make(chan struct{})
	go Pump(slot, Interpreter{}, source, nil, time.Millisecond, stop, done)
	waitClosed(t, done)

	got := slot.Load()
	if got.Grab {
		t.Error("open hand should publish Grab=false")
	}
	if got.HandX != (0.75-0.5)*2 {
		t.Errorf("HandX = %v, want %v", got.HandX, (0.75-0.5)*2)
	}
}

func TestPumpDropoutKeepsLastState(t *testing.T) {
	slot := NewSlot(State{Grab: true})
	source := &sliceSource{frames: []*LandmarkSet{
		SynthesizeHand(0.5, 0.5, true),
		nil,
		nil,
	}}

	stop := make(chan struct{})
	done := make(chan struct{})
	go Pump(slot, Interpreter{}, source, nil, time.Millisecond, stop, done)
	waitClosed(t, done)

	if !slot.Load().Grab {
		t.Error("dropout frames should leave the pinched state in the slot")
	}
}

func TestPumpSignalsExhaustion(t *testing.T) {
	slot := NewSlot(State{Grab: true})
	rec := NewRecorder()
	source := &sliceSource{frames: []*LandmarkSet{
		SynthesizeHand(0.5, 0.5, true),
		nil,
		SynthesizeHand(0.5, 0.5, false),
	}}

	stop := make(chan struct{})
	done := make(chan struct{})
	go Pump(slot, Interpreter{}, source, rec, time.Millisecond, stop, done)
	waitClosed(t, done)

	if got := rec.FrameCount(); got != 3 {
		t.Errorf("recorded %d frames, want 3 including the dropout", got)
	}
}

func TestPumpStopsWithoutSignalingDone(t *testing.T) {
	slot := NewSlot(State{Grab: true})

	stop := make(chan struct{})
	done := make(chan struct{})
	returned := make(chan struct{})
	go func() {
		Pump(slot, Interpreter{}, NewScript(), nil, time.Millisecond, stop, done)
		close(returned)
	}()

	close(stop)
	waitClosed(t, returned)

	select {
	case <-done:
		t.Error("done should stay open when the pump is stopped early")
	default:
	}
}
