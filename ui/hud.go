// Package ui renders the heads-up display and the tuning panel.
package ui

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// HUDData holds all the data needed to render the main HUD.
type HUDData struct {
	Title     string
	Tick      int32
	FPS       int32
	Particles int
	Grab      bool
	HandX     float32
	Detected  bool
	Paused    bool
	Speed     int
}

// HUD renders the main heads-up display.
type HUD struct{}

// NewHUD creates a new HUD renderer.
func NewHUD() *HUD {
	return &HUD{}
}

// Draw renders the HUD.
func (h *HUD) Draw(data HUDData) {
	rl.DrawText(data.Title, 10, 10, 20, rl.White)

	line := fmt.Sprintf("Particles: %d | Tick: %d | FPS: %d", data.Particles, data.Tick, data.FPS)
	if data.Speed > 1 {
		line += fmt.Sprintf(" | Speed: %dx", data.Speed)
	}
	rl.DrawText(line, 10, 35, 16, rl.LightGray)

	gestureText := "RELEASE"
	gestureColor := rl.Orange
	if data.Grab {
		gestureText = "GRAB"
		gestureColor = rl.Green
	}
	if !data.Detected {
		gestureText += " (holding last)"
	}
	rl.DrawText(gestureText, 10, 55, 16, gestureColor)

	rl.DrawText(fmt.Sprintf("HandX: %+.2f", data.HandX), 10, 75, 16, rl.LightGray)
	drawHandXBar(10, 95, 120, data.HandX)

	if data.Paused {
		rl.DrawText("PAUSED", 10, 115, 16, rl.Yellow)
	}
}

// drawHandXBar draws a small [-1, 1] gauge for the horizontal hand position.
func drawHandXBar(x, y, width int32, handX float32) {
	rl.DrawRectangleLines(x, y, width, 8, rl.Gray)

	center := x + width/2
	marker := center + int32(handX*float32(width/2))
	rl.DrawRectangle(marker-2, y, 4, 8, rl.SkyBlue)
}
