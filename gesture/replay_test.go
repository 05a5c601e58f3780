package gesture

import (
	"path/filepath"
	"testing"
)

func TestReplayRoundTrip(t *testing.T) {
	rec := NewRecorder()
	rec.Capture(SynthesizeHand(0.3, 0.5, true))
	rec.Capture(nil)
	rec.Capture(nil)
	rec.Capture(SynthesizeHand(0.8, 0.5, false))

	path := filepath.Join(t.TempDir(), "replay.csv")
	if err := rec.WriteFile(path); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	replay, err := LoadReplay(path)
	if err != nil {
		t.Fatalf("LoadReplay: %v", err)
	}
	if replay.Len() != 4 {
		t.Fatalf("replay has %d frames, want 4", replay.Len())
	}

	wantNil := []bool{false, true, true, false}
	for i, want := range wantNil {
		lm, ok := replay.Next()
		if !ok {
			t.Fatalf("frame %d: stream ended early", i)
		}
		if (lm == nil) != want {
			t.Errorf("frame %d: nil=%v, want %v", i, lm == nil, want)
		}
	}

	if _, ok := replay.Next(); ok {
		t.Error("stream should be exhausted after 4 frames")
	}
}

func TestReplayPreservesLandmarks(t *testing.T) {
	original := SynthesizeHand(0.3, 0.5, true)

	rec := NewRecorder()
	rec.Capture(original)

	path := filepath.Join(t.TempDir(), "replay.csv")
	if err := rec.WriteFile(path); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	replay, err := LoadReplay(path)
	if err != nil {
		t.Fatalf("LoadReplay: %v", err)
	}

	lm, ok := replay.Next()
	if !ok || lm == nil {
		t.Fatal("expected a detected frame")
	}
	for i := range original {
		if original[i] != lm[i] {
			t.Errorf("landmark %d: %+v != %+v", i, lm[i], original[i])
		}
	}
}

func TestReplayRewind(t *testing.T) {
	rec := NewRecorder()
	rec.Capture(SynthesizeHand(0.5, 0.5, true))
	rec.Capture(nil)

	path := filepath.Join(t.TempDir(), "replay.csv")
	if err := rec.WriteFile(path); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	replay, err := LoadReplay(path)
	if err != nil {
		t.Fatalf("LoadReplay: %v", err)
	}

	for {
		if _, ok := replay.Next(); !ok {
			break
		}
	}
	replay.Rewind()

	lm, ok := replay.Next()
	if !ok || lm == nil {
		t.Error("rewind should restart at the first (detected) frame")
	}
}

func TestReplayRejectsBadLandmarkIndex(t *testing.T) {
	_, err := replayFromRows([]ReplayRow{{Frame: 0, Landmark: 21, X: 0.5, Y: 0.5}})
	if err == nil {
		t.Error("landmark index 21 should be rejected")
	}
}

func TestReplayEmpty(t *testing.T) {
	replay, err := replayFromRows(nil)
	if err != nil {
		t.Fatalf("empty rows: %v", err)
	}
	if replay.Len() != 0 {
		t.Errorf("empty replay has %d frames", replay.Len())
	}
	if _, ok := replay.Next(); ok {
		t.Error("empty replay should be immediately exhausted")
	}
}
