// Package renderer draws the particle swarm with raylib. It consumes the
// simulator's transform buffer read-only; all simulation state lives in
// the swarm package.
package renderer

import (
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/grove/camera"
	"github.com/pthm-cable/grove/config"
	"github.com/pthm-cable/grove/swarm"
)

const rad2deg = 180 / math.Pi

// SwarmRenderer renders the particle swarm as small cubes.
type SwarmRenderer struct {
	assembled  rl.Color
	dispersed  rl.Color
	background rl.Color
}

// NewSwarmRenderer creates a renderer with the given palette.
func NewSwarmRenderer(palette config.PaletteConfig) *SwarmRenderer {
	return &SwarmRenderer{
		assembled:  rl.Color{R: palette.Assembled[0], G: palette.Assembled[1], B: palette.Assembled[2], A: 255},
		dispersed:  rl.Color{R: palette.Dispersed[0], G: palette.Dispersed[1], B: palette.Dispersed[2], A: 255},
		background: rl.Color{R: palette.Background[0], G: palette.Background[1], B: palette.Background[2], A: 255},
	}
}

// Background returns the clear color.
func (r *SwarmRenderer) Background() rl.Color {
	return r.background
}

// Draw renders the transform buffer from the given orbit camera. The
// whole swarm is rotated about the vertical axis by the simulator's
// world rotation; each particle then applies its own instance transform.
func (r *SwarmRenderer) Draw(cam *camera.Camera, buffer []swarm.Transform, rotation float32, grab bool) {
	cx, cy, cz := cam.Position()
	view := rl.Camera3D{
		Position:   rl.Vector3{X: cx, Y: cy, Z: cz},
		Target:     rl.Vector3{X: cam.TargetX, Y: cam.TargetY, Z: cam.TargetZ},
		Up:         rl.Vector3{X: 0, Y: 1, Z: 0},
		Fovy:       45,
		Projection: rl.CameraPerspective,
	}

	color := r.dispersed
	if grab {
		color = r.assembled
	}

	rl.BeginMode3D(view)

	rl.PushMatrix()
	rl.Rotatef(rotation*rad2deg, 0, 1, 0)

	for i := range buffer {
		t := &buffer[i]

		rl.PushMatrix()
		rl.Translatef(t.Position.X, t.Position.Y, t.Position.Z)
		rl.Rotatef(t.Spin*rad2deg, 0, 1, 0)
		rl.Scalef(t.Scale, t.Scale, t.Scale)

		// Stagger brightness by slot so the helix reads as depth.
		c := color
		c.A = 170 + uint8(i%4)*20
		rl.DrawCube(rl.Vector3{}, 1, 1, 1, c)

		rl.PopMatrix()
	}

	rl.PopMatrix()

	rl.EndMode3D()
}
