package app

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/grove/ui"
)

// Update runs one graphical frame's input and simulation.
func (a *App) Update() {
	a.handleInput()

	if a.paused {
		return
	}

	for i := 0; i < a.speed; i++ {
		a.step()
	}
}

// Draw renders the swarm, the HUD, and the tuning panel.
func (a *App) Draw() {
	a.perf.RecordFrame()

	rl.BeginDrawing()
	rl.ClearBackground(a.swarmRenderer.Background())

	state := a.sim.State()
	a.swarmRenderer.Draw(a.cam, a.sim.Buffer(), a.sim.Rotation(), state.Grab)

	a.hud.Draw(ui.HUDData{
		Title:     "grove",
		Tick:      a.sim.Tick(),
		FPS:       rl.GetFPS(),
		Particles: a.sim.Count(),
		Grab:      state.Grab,
		HandX:     state.HandX,
		Detected:  a.lastDetected,
		Paused:    a.paused,
		Speed:     a.speed,
	})

	a.applyTuning(a.panel.Draw(a.tuning))

	rl.EndDrawing()
}
