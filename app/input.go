package app

import (
	"log/slog"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/grove/gesture"
	"github.com/pthm-cable/grove/telemetry"
	"github.com/pthm-cable/grove/ui"
)

// Orbit sensitivity for mouse-drag camera control.
const (
	orbitSpeed = 0.005
	zoomSpeed  = 0.8
	maxSpeed   = 8
)

// handleInput processes keyboard and mouse input.
func (a *App) handleInput() {
	if rl.IsKeyPressed(rl.KeySpace) {
		a.paused = !a.paused
	}

	if rl.IsKeyPressed(rl.KeyTab) {
		a.panel.Toggle()
	}

	if rl.IsKeyPressed(rl.KeyF5) {
		a.writeSnapshot()
	}

	// Up/Down change simulation speed: extra ticks per render frame.
	if rl.IsKeyPressed(rl.KeyUp) && a.speed < maxSpeed {
		a.speed++
	}
	if rl.IsKeyPressed(rl.KeyDown) && a.speed > 1 {
		a.speed--
	}

	// Camera: right-drag orbits, wheel zooms.
	if rl.IsMouseButtonDown(rl.MouseRightButton) {
		delta := rl.GetMouseDelta()
		a.cam.Orbit(delta.X*orbitSpeed, -delta.Y*orbitSpeed)
	}
	if wheel := rl.GetMouseWheelMove(); wheel != 0 {
		a.cam.Zoom(wheel * zoomSpeed)
	}
}

// applyTuning pushes panel slider values into the live pipeline.
func (a *App) applyTuning(values ui.TuningValues) {
	if values == a.tuning {
		return
	}
	a.tuning = values
	a.tracker.SetInterpreter(gesture.Interpreter{PinchThreshold: values.PinchThreshold})
	a.sim.SetLerpFactor(values.LerpFactor)
}

// writeSnapshot dumps the current swarm state into the output dir.
func (a *App) writeSnapshot() {
	snap := telemetry.CaptureSnapshot(a.sim)
	if err := a.output.WriteSnapshot(snap); err != nil {
		slog.Error("snapshot write failed", "error", err)
		return
	}
	slog.Info("snapshot written", "tick", snap.Tick)
}

// MouseSource synthesizes hand landmarks from the mouse so the full
// landmark path runs without a camera: cursor position is the hand,
// left button held is a pinch, H held hides the hand entirely to
// exercise the sticky dropout policy.
type MouseSource struct {
	screenW, screenH float32
}

// NewMouseSource creates a mouse-driven landmark source for the given
// screen size.
func NewMouseSource(screenW, screenH float32) *MouseSource {
	return &MouseSource{screenW: screenW, screenH: screenH}
}

// Next synthesizes this frame's landmark set. Never exhausted.
func (m *MouseSource) Next() (*gesture.LandmarkSet, bool) {
	if rl.IsKeyDown(rl.KeyH) {
		return nil, true
	}

	pos := rl.GetMousePosition()
	nx := pos.X / m.screenW
	ny := pos.Y / m.screenH
	pinched := rl.IsMouseButtonDown(rl.MouseLeftButton)

	return gesture.SynthesizeHand(nx, ny, pinched), true
}
