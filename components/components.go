// Package components defines ECS components for the swarm simulation.
package components

// Position represents a particle's world position.
type Position struct {
	X, Y, Z float32
}

// Scale represents a particle's uniform render scale.
type Scale struct {
	Value float32
}

// Spin represents a particle's local rotation about its own axis.
// Angle increases monotonically; it is never wrapped.
type Spin struct {
	Angle float32
}

// Identity pins a particle to its formation slot. Index is assigned at
// spawn time and never changes; formation targets and the transform
// buffer are addressed by it.
type Identity struct {
	Index int
}
