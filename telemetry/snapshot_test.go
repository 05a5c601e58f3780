package telemetry

import (
	"path/filepath"
	"testing"

	"github.com/pthm-cable/grove/gesture"
	"github.com/pthm-cable/grove/swarm"
)

func TestSnapshotRoundTrip(t *testing.T) {
	sim := swarm.NewSimulator(swarm.Options{Count: 12, Seed: 42})
	sim.Advance(gesture.State{Grab: false, HandX: 0.5})
	sim.Advance(gesture.State{Grab: false, HandX: 0.5})

	snap := CaptureSnapshot(sim)
	if snap.Tick != 2 {
		t.Errorf("snapshot tick = %d, want 2", snap.Tick)
	}
	if snap.Grab {
		t.Error("snapshot should carry the released state")
	}
	if len(snap.Particles) != 12 {
		t.Fatalf("snapshot has %d particles, want 12", len(snap.Particles))
	}

	path := filepath.Join(t.TempDir(), "snap.json")
	if err := snap.WriteFile(path); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	loaded, err := ReadSnapshot(path)
	if err != nil {
		t.Fatalf("ReadSnapshot: %v", err)
	}
	if loaded.Tick != snap.Tick || loaded.Rotation != snap.Rotation {
		t.Error("loaded snapshot header differs")
	}
	for i := range snap.Particles {
		if loaded.Particles[i] != snap.Particles[i] {
			t.Fatalf("particle %d differs after round trip", i)
		}
	}
}

func TestSnapshotFollowsBuffer(t *testing.T) {
	sim := swarm.NewSimulator(swarm.Options{Count: 5, Seed: 1})
	buf := sim.Advance(gesture.State{Grab: true})

	snap := CaptureSnapshot(sim)
	for i, tr := range buf {
		p := snap.Particles[i]
		if p.X != tr.Position.X || p.Scale != tr.Scale || p.Spin != tr.Spin {
			t.Fatalf("particle %d snapshot diverges from transform buffer", i)
		}
	}
}

func TestReadSnapshotRejectsUnknownVersion(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.json")
	snap := &Snapshot{Version: 99}
	if err := snap.WriteFile(path); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	if _, err := ReadSnapshot(path); err == nil {
		t.Error("unknown version should be rejected")
	}
}
