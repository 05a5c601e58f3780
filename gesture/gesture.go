// Package gesture turns raw hand landmark frames into the control signal
// that steers the swarm: a pinch boolean plus a horizontal hand position.
package gesture

import "math"

// Landmark indices follow the 21-point hand model used by common
// on-device trackers. Only the thumb tip and index fingertip matter here.
const (
	LandmarkCount  = 21
	ThumbTip       = 4
	IndexFingertip = 8
)

// DefaultPinchThreshold is the fingertip-to-thumb distance below which a
// hand counts as pinched. Empirically tuned; not derived from anything.
const DefaultPinchThreshold = 0.08

// Point is a landmark position in normalized image coordinates [0,1].
type Point struct {
	X, Y float32
}

// LandmarkSet is one detected hand: 21 fixed-index points.
type LandmarkSet [LandmarkCount]Point

// State is the interpreted control signal for one frame.
type State struct {
	// Grab is true while the thumb and index fingertip are pinched.
	Grab bool
	// HandX is the fingertip's horizontal position remapped to [-1, 1].
	HandX float32
}

// Interpreter converts landmark sets into states. It holds no history;
// stickiness across dropped detections lives in Tracker.
type Interpreter struct {
	// PinchThreshold is the pinch distance cutoff in normalized image
	// units. Zero means DefaultPinchThreshold.
	PinchThreshold float32
}

// Interpret reads the thumb tip and index fingertip from one detected
// hand and produces the control state. Out-of-range coordinates are
// passed through; the downstream interpolation tolerates them.
func (it Interpreter) Interpret(lm LandmarkSet) State {
	threshold := it.PinchThreshold
	if threshold == 0 {
		threshold = DefaultPinchThreshold
	}

	tip := lm[IndexFingertip]
	thumb := lm[ThumbTip]

	dx := float64(tip.X - thumb.X)
	dy := float64(tip.Y - thumb.Y)
	dist := float32(math.Sqrt(dx*dx + dy*dy))

	return State{
		Grab:  dist < threshold,
		HandX: (tip.X - 0.5) * 2,
	}
}

// Tracker wraps an Interpreter with the sticky last-known-state policy:
// a frame with no detection re-emits the previous state so the swarm
// never flickers on dropped detections. The stick has no timeout.
type Tracker struct {
	interpreter Interpreter
	last        State
}

// NewTracker creates a tracker seeded with the given initial state.
// The swarm starts assembled, so callers seed with Grab=true.
func NewTracker(it Interpreter, initial State) *Tracker {
	return &Tracker{interpreter: it, last: initial}
}

// Update interprets one frame. A nil landmark set means no hand was
// detected this frame; the previous state is returned unchanged.
func (t *Tracker) Update(lm *LandmarkSet) State {
	if lm == nil {
		return t.last
	}
	t.last = t.interpreter.Interpret(*lm)
	return t.last
}

// Last returns the most recently emitted state.
func (t *Tracker) Last() State {
	return t.last
}

// SetInterpreter swaps the interpreter, e.g. after a live threshold
// change from the tuning panel. The sticky state is kept.
func (t *Tracker) SetInterpreter(it Interpreter) {
	t.interpreter = it
}
