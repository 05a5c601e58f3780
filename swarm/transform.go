package swarm

import (
	"math"

	"github.com/pthm-cable/grove/formation"
)

// Transform is one particle's instance transform for the current frame:
// interpolated position, uniform scale, and local spin about the Y axis.
// Slot i of the buffer always belongs to particle i.
type Transform struct {
	Position formation.Vec3
	Scale    float32
	Spin     float32
}

// Matrix composes the transform into a column-major 4x4 matrix
// (scale, then spin rotation about Y, then translation). Renderers that
// keep their own matrix types can compose from the fields directly.
func (t Transform) Matrix() [16]float32 {
	sin, cos := math.Sincos(float64(t.Spin))
	s := t.Scale
	c32 := float32(cos)
	s32 := float32(sin)

	return [16]float32{
		c32 * s, 0, -s32 * s, 0,
		0, s, 0, 0,
		s32 * s, 0, c32 * s, 0,
		t.Position.X, t.Position.Y, t.Position.Z, 1,
	}
}
