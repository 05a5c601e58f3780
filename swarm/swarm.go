// Package swarm holds the particle formation engine: a fixed pool of
// particles that eases toward the formation selected by the current
// gesture state, one step per render tick.
package swarm

import (
	"math"
	"math/rand"

	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/grove/components"
	"github.com/pthm-cable/grove/formation"
	"github.com/pthm-cable/grove/gesture"
)

// Tuning defaults. The lerp factor and scale literals were tuned by eye
// and are load-bearing for the feel of the morph; treat them as fixed
// points, not starting values.
const (
	DefaultCount = 4000

	// DefaultLerpFactor moves each particle 8% of the way to its target
	// per frame: ~90% convergence in ~25 frames at 60 Hz.
	DefaultLerpFactor = 0.08

	DefaultGrabScale    = 0.12
	DefaultReleaseScale = 0.08
	DefaultSpinRate     = 0.01

	// World rotation: idle drift plus a hand-steerable component.
	// HandX is bounded to [-1,1], so the steered term never exceeds
	// DefaultSteerRotation per frame.
	DefaultBaseRotation  = 0.005
	DefaultSteerRotation = 0.05
)

// Options configures a Simulator. Zero values fall back to the package
// defaults above.
type Options struct {
	Count         int
	Seed          int64 // seed for the dispersed formation
	LerpFactor    float32
	GrabScale     float32
	ReleaseScale  float32
	SpinRate      float32
	BaseRotation  float32
	SteerRotation float32
}

func (o Options) withDefaults() Options {
	if o.Count <= 0 {
		o.Count = DefaultCount
	}
	if o.LerpFactor == 0 {
		o.LerpFactor = DefaultLerpFactor
	}
	if o.GrabScale == 0 {
		o.GrabScale = DefaultGrabScale
	}
	if o.ReleaseScale == 0 {
		o.ReleaseScale = DefaultReleaseScale
	}
	if o.SpinRate == 0 {
		o.SpinRate = DefaultSpinRate
	}
	if o.BaseRotation == 0 {
		o.BaseRotation = DefaultBaseRotation
	}
	if o.SteerRotation == 0 {
		o.SteerRotation = DefaultSteerRotation
	}
	return o
}

// Simulator owns the particle pool and advances it one step per frame.
// It never blocks, has no I/O, and is single-writer: one goroutine calls
// Advance, the returned buffer is read-only until the next call.
type Simulator struct {
	opts Options

	world  *ecs.World
	mapper *ecs.Map4[components.Position, components.Scale, components.Spin, components.Identity]
	filter *ecs.Filter4[components.Position, components.Scale, components.Spin, components.Identity]

	assembled formation.Formation
	dispersed formation.Formation

	rotation float32 // world rotation accumulator, radians
	last     gesture.State
	buffer   []Transform
	tick     int32
}

// NewSimulator builds the particle pool. Every run starts pinched:
// particles spawn on their assembled targets at grab scale, so the first
// frames hold the tree until the gesture says otherwise.
func NewSimulator(opts Options) *Simulator {
	opts = opts.withDefaults()

	world := ecs.NewWorld()
	s := &Simulator{
		opts:   opts,
		world:  world,
		mapper: ecs.NewMap4[components.Position, components.Scale, components.Spin, components.Identity](world),
		filter: ecs.NewFilter4[components.Position, components.Scale, components.Spin, components.Identity](world),

		assembled: formation.BuildAssembled(opts.Count),
		dispersed: formation.BuildDispersed(opts.Count, rand.New(rand.NewSource(opts.Seed))),

		last:   gesture.State{Grab: true},
		buffer: make([]Transform, opts.Count),
	}

	for i := 0; i < opts.Count; i++ {
		target := s.assembled.Points[i]
		pos := components.Position{X: target.X, Y: target.Y, Z: target.Z}
		scale := components.Scale{Value: opts.GrabScale}
		spin := components.Spin{}
		id := components.Identity{Index: i}
		s.mapper.NewEntity(&pos, &scale, &spin, &id)

		s.buffer[i] = Transform{Position: target, Scale: opts.GrabScale}
	}

	return s
}

// Advance runs one simulation step under the given gesture state and
// returns the refreshed transform buffer. The buffer is overwritten in
// place every call; index alignment with particle identity always holds.
func (s *Simulator) Advance(state gesture.State) []Transform {
	s.rotation += s.opts.BaseRotation + state.HandX*s.opts.SteerRotation
	s.last = state

	targets := s.dispersed.Points
	scale := s.opts.ReleaseScale
	if state.Grab {
		targets = s.assembled.Points
		scale = s.opts.GrabScale
	}

	f := s.opts.LerpFactor
	query := s.filter.Query()
	for query.Next() {
		pos, sc, spin, id := query.Get()
		target := targets[id.Index]

		// Ease toward the target from wherever the particle is now;
		// a state flip mid-flight just swaps the target, never snaps.
		pos.X += (target.X - pos.X) * f
		pos.Y += (target.Y - pos.Y) * f
		pos.Z += (target.Z - pos.Z) * f

		sc.Value = scale
		spin.Angle += s.opts.SpinRate

		s.buffer[id.Index] = Transform{
			Position: formation.Vec3{X: pos.X, Y: pos.Y, Z: pos.Z},
			Scale:    sc.Value,
			Spin:     spin.Angle,
		}
	}

	s.tick++
	return s.buffer
}

// SetLerpFactor overrides the per-frame easing factor. Values outside
// (0, 1) are ignored. Meant for live tuning panels; the default 0.08 is
// the reference feel.
func (s *Simulator) SetLerpFactor(f float32) {
	if f > 0 && f < 1 {
		s.opts.LerpFactor = f
	}
}

// LerpFactor returns the current per-frame easing factor.
func (s *Simulator) LerpFactor() float32 {
	return s.opts.LerpFactor
}

// Buffer returns the transform buffer from the most recent Advance.
func (s *Simulator) Buffer() []Transform {
	return s.buffer
}

// Rotation returns the accumulated world rotation in radians. Renderers
// apply it as a parent rotation about the vertical axis.
func (s *Simulator) Rotation() float32 {
	return s.rotation
}

// State returns the gesture state applied by the most recent Advance.
func (s *Simulator) State() gesture.State {
	return s.last
}

// Count returns the fixed particle count.
func (s *Simulator) Count() int {
	return s.opts.Count
}

// Tick returns the number of Advance calls so far.
func (s *Simulator) Tick() int32 {
	return s.tick
}

// Assembled returns the tree formation targets.
func (s *Simulator) Assembled() formation.Formation {
	return s.assembled
}

// Dispersed returns the scatter formation targets.
func (s *Simulator) Dispersed() formation.Formation {
	return s.dispersed
}

// TargetDistances appends each particle's distance to its currently
// selected target into dst and returns it. Used by telemetry to track
// convergence; reuse dst across calls to avoid allocations.
func (s *Simulator) TargetDistances(dst []float64) []float64 {
	targets := s.dispersed.Points
	if s.last.Grab {
		targets = s.assembled.Points
	}

	for i := range s.buffer {
		d := s.buffer[i].Position.Sub(targets[i])
		dst = append(dst, float64(d.Length()))
	}
	return dst
}

// MaxTargetDistance returns the largest distance between any particle
// and its selected target. Headless soak runs and the tuner use it as
// the convergence measure.
func (s *Simulator) MaxTargetDistance() float64 {
	targets := s.dispersed.Points
	if s.last.Grab {
		targets = s.assembled.Points
	}

	var max float64
	for i := range s.buffer {
		d := float64(s.buffer[i].Position.Sub(targets[i]).Length())
		if d > max {
			max = d
		}
	}
	return max
}

// MeanSpin returns the mean local spin angle across the swarm. Spin
// accumulates without bound; math.Mod keeps the reported figure
// readable.
func (s *Simulator) MeanSpin() float64 {
	if len(s.buffer) == 0 {
		return 0
	}
	var sum float64
	for i := range s.buffer {
		sum += float64(s.buffer[i].Spin)
	}
	return math.Mod(sum/float64(len(s.buffer)), 2*math.Pi)
}
