package gesture

import "math"

// Script is a synthetic landmark source for headless runs: the hand
// sweeps left to right on a sine while the pinch toggles on a fixed
// period, with a short dropout after each toggle to exercise the sticky
// tracker. It emits the same 21-point frames a real tracker would.
type Script struct {
	// PinchPeriod is the number of frames between pinch toggles.
	PinchPeriod int
	// SweepPeriod is the number of frames for a full horizontal sweep.
	SweepPeriod int
	// DropoutFrames is the number of no-detection frames after each toggle.
	DropoutFrames int

	frame int
}

// NewScript creates a script with the default cadence: toggle every 240
// frames (4 s at 60 Hz), sweep every 600, 5 dropout frames per toggle.
func NewScript() *Script {
	return &Script{PinchPeriod: 240, SweepPeriod: 600, DropoutFrames: 5}
}

// Next produces the next synthetic frame. The second result is always
// true; a script never ends.
func (s *Script) Next() (*LandmarkSet, bool) {
	frame := s.frame
	s.frame++

	sinceToggle := frame % s.PinchPeriod
	if sinceToggle < s.DropoutFrames && frame >= s.DropoutFrames {
		return nil, true
	}

	pinched := (frame/s.PinchPeriod)%2 == 0

	// Horizontal sweep in normalized image coordinates.
	sweep := float64(frame) / float64(s.SweepPeriod) * 2 * math.Pi
	handX := float32(0.5 + 0.4*math.Sin(sweep))

	return SynthesizeHand(handX, 0.5, pinched), true
}

// SynthesizeHand builds a landmark set centered on (x, y). Only the
// thumb tip and index fingertip carry signal; the rest pad the frame so
// consumers see a full 21-point hand. Used by the script, the
// mouse-driven preview source, and tests.
func SynthesizeHand(x, y float32, pinched bool) *LandmarkSet {
	var lm LandmarkSet
	for i := range lm {
		lm[i] = Point{X: x, Y: y}
	}

	spread := float32(0.15)
	if pinched {
		spread = 0.02
	}
	lm[IndexFingertip] = Point{X: x, Y: y - spread/2}
	lm[ThumbTip] = Point{X: x, Y: y + spread/2}
	return &lm
}
