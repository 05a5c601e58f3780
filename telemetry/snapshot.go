package telemetry

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/pthm-cable/grove/swarm"
)

// SnapshotVersion is incremented when the format changes.
const SnapshotVersion = 1

// Snapshot holds the swarm's render-visible state at one tick, for
// offline inspection of a run.
type Snapshot struct {
	Version int `json:"version"`

	Tick     int32   `json:"tick"`
	Rotation float32 `json:"rotation"`
	Grab     bool    `json:"grab"`
	HandX    float32 `json:"hand_x"`

	Particles []ParticleState `json:"particles"`
}

// ParticleState holds one particle's transform.
type ParticleState struct {
	X     float32 `json:"x"`
	Y     float32 `json:"y"`
	Z     float32 `json:"z"`
	Scale float32 `json:"scale"`
	Spin  float32 `json:"spin"`
}

// CaptureSnapshot copies the simulator's current transform buffer.
func CaptureSnapshot(s *swarm.Simulator) *Snapshot {
	buf := s.Buffer()
	state := s.State()

	snap := &Snapshot{
		Version:   SnapshotVersion,
		Tick:      s.Tick(),
		Rotation:  s.Rotation(),
		Grab:      state.Grab,
		HandX:     state.HandX,
		Particles: make([]ParticleState, len(buf)),
	}
	for i, tr := range buf {
		snap.Particles[i] = ParticleState{
			X:     tr.Position.X,
			Y:     tr.Position.Y,
			Z:     tr.Position.Z,
			Scale: tr.Scale,
			Spin:  tr.Spin,
		}
	}
	return snap
}

// WriteFile saves the snapshot as JSON.
func (s *Snapshot) WriteFile(path string) error {
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling snapshot: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing snapshot: %w", err)
	}
	return nil
}

// ReadSnapshot loads a snapshot from a JSON file.
func ReadSnapshot(path string) (*Snapshot, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading snapshot: %w", err)
	}

	snap := &Snapshot{}
	if err := json.Unmarshal(data, snap); err != nil {
		return nil, fmt.Errorf("parsing snapshot: %w", err)
	}
	if snap.Version != SnapshotVersion {
		return nil, fmt.Errorf("snapshot version %d not supported (want %d)", snap.Version, SnapshotVersion)
	}
	return snap, nil
}
