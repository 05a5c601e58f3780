package ui

import (
	"fmt"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"
)

// TuningValues holds the live-tunable parameters shown in the panel.
type TuningValues struct {
	PinchThreshold float32
	LerpFactor     float32
}

// TuningPanel renders a right-side panel with tuning sliders.
type TuningPanel struct {
	x, y    float32
	width   float32
	visible bool
}

// NewTuningPanel creates a tuning panel anchored at the given position.
func NewTuningPanel(x, y, width float32) *TuningPanel {
	return &TuningPanel{x: x, y: y, width: width}
}

// Toggle switches panel visibility and returns the new state.
func (p *TuningPanel) Toggle() bool {
	p.visible = !p.visible
	return p.visible
}

// IsVisible returns whether the panel is shown.
func (p *TuningPanel) IsVisible() bool {
	return p.visible
}

// Draw renders the panel and returns the possibly-updated values.
func (p *TuningPanel) Draw(values TuningValues) TuningValues {
	if !p.visible {
		return values
	}

	panelX := p.x
	panelY := p.y
	sliderW := p.width - 80

	rl.DrawRectangle(int32(panelX-10), int32(panelY-10), int32(p.width), 150, rl.Color{R: 0, G: 0, B: 0, A: 180})
	rl.DrawText("Tuning", int32(panelX), int32(panelY), 20, rl.White)
	panelY += 30

	rl.DrawText("Pinch threshold", int32(panelX), int32(panelY), 14, rl.Gray)
	panelY += 18
	values.PinchThreshold = gui.SliderBar(
		rl.Rectangle{X: panelX, Y: panelY, Width: sliderW, Height: 20},
		"0.01", "0.30",
		values.PinchThreshold, 0.01, 0.30,
	)
	rl.DrawText(fmt.Sprintf("%.3f", values.PinchThreshold), int32(panelX+sliderW+10), int32(panelY+2), 16, rl.LightGray)
	panelY += 30

	rl.DrawText("Lerp factor", int32(panelX), int32(panelY), 14, rl.Gray)
	panelY += 18
	values.LerpFactor = gui.SliderBar(
		rl.Rectangle{X: panelX, Y: panelY, Width: sliderW, Height: 20},
		"0.01", "0.50",
		values.LerpFactor, 0.01, 0.50,
	)
	rl.DrawText(fmt.Sprintf("%.3f", values.LerpFactor), int32(panelX+sliderW+10), int32(panelY+2), 16, rl.LightGray)
	panelY += 30

	if gui.Button(rl.Rectangle{X: panelX, Y: panelY, Width: 120, Height: 26}, "Reset defaults") {
		values.PinchThreshold = 0.08
		values.LerpFactor = 0.08
	}

	return values
}
