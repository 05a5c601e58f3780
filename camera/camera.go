// Package camera provides an orbit camera for the 3D swarm view.
package camera

import "math"

// Camera orbits a fixed target point. Azimuth spins around the vertical
// axis, elevation tilts toward the poles, distance zooms.
type Camera struct {
	// Target is the point the camera looks at.
	TargetX, TargetY, TargetZ float32

	// Azimuth and Elevation are the orbit angles in radians.
	Azimuth   float32
	Elevation float32

	// Distance from the target.
	Distance float32

	// Zoom constraints.
	MinDistance, MaxDistance float32
}

// maxElevation keeps the camera off the poles so the view never flips.
const maxElevation = math.Pi/2 - 0.05

// New creates a camera orbiting the origin at the given distance.
func New(distance float32) *Camera {
	return &Camera{
		Azimuth:     0.6,
		Elevation:   0.25,
		Distance:    distance,
		MinDistance: 2,
		MaxDistance: 60,
	}
}

// Orbit rotates the camera by the given angle deltas, clamping elevation
// away from the poles.
func (c *Camera) Orbit(dAzimuth, dElevation float32) {
	c.Azimuth += dAzimuth
	c.Elevation += dElevation

	if c.Elevation > maxElevation {
		c.Elevation = maxElevation
	}
	if c.Elevation < -maxElevation {
		c.Elevation = -maxElevation
	}
}

// Zoom moves the camera toward (positive delta) or away from the target,
// clamped to the distance constraints.
func (c *Camera) Zoom(delta float32) {
	c.Distance -= delta
	if c.Distance < c.MinDistance {
		c.Distance = c.MinDistance
	}
	if c.Distance > c.MaxDistance {
		c.Distance = c.MaxDistance
	}
}

// Position returns the camera's world position for the current orbit.
func (c *Camera) Position() (x, y, z float32) {
	cosEl := math.Cos(float64(c.Elevation))
	x = c.TargetX + c.Distance*float32(cosEl*math.Cos(float64(c.Azimuth)))
	y = c.TargetY + c.Distance*float32(math.Sin(float64(c.Elevation)))
	z = c.TargetZ + c.Distance*float32(cosEl*math.Sin(float64(c.Azimuth)))
	return x, y, z
}
