// Package formation builds the immutable target point sets the swarm
// morphs between. A formation assigns one target per particle slot;
// slot i of every formation belongs to particle i for the whole run.
package formation

import (
	"math"
	"math/rand"
)

// Vec3 is a point in swarm space.
type Vec3 struct {
	X, Y, Z float32
}

// Sub returns v - o.
func (v Vec3) Sub(o Vec3) Vec3 {
	return Vec3{v.X - o.X, v.Y - o.Y, v.Z - o.Z}
}

// Length returns the Euclidean magnitude of v.
func (v Vec3) Length() float32 {
	return float32(math.Sqrt(float64(v.X*v.X + v.Y*v.Y + v.Z*v.Z)))
}

// Formation is a named, ordered set of target points, one per particle.
// Points never mutate after construction.
type Formation struct {
	Name   string
	Points []Vec3
}

// Helix shape parameters for the assembled formation. The swarm winds
// helixTurns times around the trunk, tapering from baseRadius at the
// bottom to a point at the top.
const (
	helixTurns = 8    // full wraps bottom to top
	baseRadius = 2.5  // radius at the bottom of the cone
	heightSpan = 7.0  // total vertical extent
	halfHeight = heightSpan / 2
)

// ScatterMaxRadius bounds the dispersed formation. Every dispersed
// target has magnitude in [0, ScatterMaxRadius).
const ScatterMaxRadius = 12.0

// BuildAssembled returns the tree-shaped formation: a conical helix,
// deterministic in n. Slot i sits at turn fraction i/n, so radius
// shrinks and height climbs monotonically with the slot index.
func BuildAssembled(n int) Formation {
	points := make([]Vec3, n)
	for i := 0; i < n; i++ {
		ratio := float64(i) / float64(n)
		angle := ratio * helixTurns * 2 * math.Pi
		radius := (1 - ratio) * baseRadius
		height := ratio*heightSpan - halfHeight

		points[i] = Vec3{
			X: float32(math.Cos(angle) * radius),
			Y: float32(height),
			Z: float32(math.Sin(angle) * radius),
		}
	}
	return Formation{Name: "assembled", Points: points}
}

// BuildDispersed returns the explosion-cloud formation: each slot gets a
// uniformly random direction scaled by a magnitude in [0, ScatterMaxRadius).
// Built once per run from the given source; rebuilding mid-run would snap
// every in-flight particle to a new target.
func BuildDispersed(n int, rng *rand.Rand) Formation {
	points := make([]Vec3, n)
	for i := 0; i < n; i++ {
		// Uniform direction on the unit sphere via normalized gaussians.
		x := rng.NormFloat64()
		y := rng.NormFloat64()
		z := rng.NormFloat64()
		norm := math.Sqrt(x*x + y*y + z*z)
		if norm == 0 {
			norm = 1
		}

		mag := rng.Float64() * ScatterMaxRadius
		points[i] = Vec3{
			X: float32(x / norm * mag),
			Y: float32(y / norm * mag),
			Z: float32(z / norm * mag),
		}
	}
	return Formation{Name: "dispersed", Points: points}
}
