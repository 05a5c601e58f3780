package gesture

import (
	"math"
	"testing"
)

// handAt builds a landmark set with the fingertip and thumb separated
// by dist, fingertip at normalized x.
func handAt(x float32, dist float32) *LandmarkSet {
	var lm LandmarkSet
	for i := range lm {
		lm[i] = Point{X: x, Y: 0.5}
	}
	lm[IndexFingertip] = Point{X: x, Y: 0.5}
	lm[ThumbTip] = Point{X: x, Y: 0.5 + dist}
	return &lm
}

func TestInterpretPinchThreshold(t *testing.T) {
	tests := []struct {
		name string
		dist float32
		grab bool
	}{
		{"touching", 0.0, true},
		{"well inside", 0.05, true},
		{"just inside", 0.078, true},
		{"just outside", 0.082, false},
		{"open hand", 0.3, false},
	}

	var it Interpreter
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := it.Interpret(*handAt(0.5, tt.dist))
			if got.Grab != tt.grab {
				t.Errorf("dist %f: Grab = %v, want %v", tt.dist, got.Grab, tt.grab)
			}
		})
	}
}

func TestInterpretCustomThreshold(t *testing.T) {
	it := Interpreter{PinchThreshold: 0.2}
	if got := it.Interpret(*handAt(0.5, 0.15)); !got.Grab {
		t.Error("distance 0.15 should pinch under threshold 0.2")
	}
}

func TestInterpretHandXRemap(t *testing.T) {
	tests := []struct {
		x    float32
		want float32
	}{
		{0.0, -1.0},
		{0.25, -0.5},
		{0.5, 0.0},
		{0.75, 0.5},
		{1.0, 1.0},
	}

	var it Interpreter
	for _, tt := range tests {
		got := it.Interpret(*handAt(tt.x, 0.2))
		if math.Abs(float64(got.HandX-tt.want)) > 1e-6 {
			t.Errorf("x=%f: HandX = %f, want %f", tt.x, got.HandX, tt.want)
		}
	}
}

func TestInterpretDiagonalDistance(t *testing.T) {
	// 0.06 on each axis is ~0.085 apart, just past the pinch cutoff.
	var lm LandmarkSet
	lm[IndexFingertip] = Point{X: 0.5, Y: 0.5}
	lm[ThumbTip] = Point{X: 0.56, Y: 0.56}

	var it Interpreter
	if got := it.Interpret(lm); got.Grab {
		t.Error("diagonal distance ~0.085 should not pinch")
	}
}

func TestTrackerStickyOnDropout(t *testing.T) {
	tracker := NewTracker(Interpreter{}, State{Grab: true})

	a := handAt(0.25, 0.02) // pinched at x=0.25
	b := handAt(0.75, 0.2)  // open at x=0.75

	frames := []*LandmarkSet{a, nil, nil, b}
	var got []State
	for _, lm := range frames {
		got = append(got, tracker.Update(lm))
	}

	wantA := State{Grab: true, HandX: -0.5}
	wantB := State{Grab: false, HandX: 0.5}

	for i := 0; i < 3; i++ {
		if got[i] != wantA {
			t.Errorf("frame %d: state %+v, want sticky %+v", i, got[i], wantA)
		}
	}
	if got[3] != wantB {
		t.Errorf("frame 3: state %+v, want %+v", got[3], wantB)
	}
}

func TestTrackerInitialState(t *testing.T) {
	tracker := NewTracker(Interpreter{}, State{Grab: true})
	if got := tracker.Update(nil); !got.Grab {
		t.Error("dropout before any detection should hold the initial state")
	}
}

func TestSlotLatestWins(t *testing.T) {
	slot := NewSlot(State{Grab: true})

	if got := slot.Load(); !got.Grab {
		t.Error("slot should hold initial state")
	}

	slot.Store(State{Grab: false, HandX: 0.3})
	slot.Store(State{Grab: true, HandX: -0.7})

	got := slot.Load()
	if !got.Grab || got.HandX != -0.7 {
		t.Errorf("slot returned %+v, want latest store", got)
	}

	// Repeated loads see the same value; reading never consumes.
	if again := slot.Load(); again != got {
		t.Error("second load differed from first")
	}
}

func TestScriptEmitsFullHands(t *testing.T) {
	script := NewScript()

	detections := 0
	dropouts := 0
	for i := 0; i < 1000; i++ {
		lm, ok := script.Next()
		if !ok {
			t.Fatal("script should never end")
		}
		if lm == nil {
			dropouts++
			continue
		}
		detections++
		if len(lm) != LandmarkCount {
			t.Fatalf("frame %d: landmark set has %d points", i, len(lm))
		}
	}
	if detections == 0 || dropouts == 0 {
		t.Errorf("script should mix detections (%d) and dropouts (%d)", detections, dropouts)
	}
}

func TestSynthesizeHandPinchState(t *testing.T) {
	var it Interpreter

	pinched := it.Interpret(*SynthesizeHand(0.5, 0.5, true))
	if !pinched.Grab {
		t.Error("synthesized pinched hand should interpret as grab")
	}

	open := it.Interpret(*SynthesizeHand(0.5, 0.5, false))
	if open.Grab {
		t.Error("synthesized open hand should not interpret as grab")
	}
}
