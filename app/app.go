// Package app wires the gesture pipeline, the swarm simulator, and the
// renderer into one frame-driven application.
package app

import (
	"log/slog"

	"github.com/pthm-cable/grove/camera"
	"github.com/pthm-cable/grove/config"
	"github.com/pthm-cable/grove/gesture"
	"github.com/pthm-cable/grove/renderer"
	"github.com/pthm-cable/grove/swarm"
	"github.com/pthm-cable/grove/telemetry"
	"github.com/pthm-cable/grove/ui"
)

// Source yields one landmark frame per render tick. A nil landmark set
// is a frame with no hand detected; a false second result means the
// source is exhausted (a live source never is).
type Source interface {
	Next() (*gesture.LandmarkSet, bool)
}

// Options configures an App.
type Options struct {
	Seed           int64
	LogStats       bool
	StatsWindowSec float64
	OutputDir      string
	Particles      int // 0 = use config

	// Source feeds landmark frames inline on the render tick.
	Source Source

	// Slot, when set, replaces Source: an external inference goroutine
	// stores states and the render loop reads the latest one.
	Slot *gesture.Slot

	// Recorder, when set, captures every inline source frame.
	Recorder *gesture.Recorder
}

// App holds the complete application state.
type App struct {
	cfg  *config.Config
	opts Options

	sim     *swarm.Simulator
	tracker *gesture.Tracker
	source  Source
	slot    *gesture.Slot

	cam           *camera.Camera
	swarmRenderer *renderer.SwarmRenderer
	hud           *ui.HUD
	panel         *ui.TuningPanel
	tuning        ui.TuningValues

	perf      *telemetry.PerfCollector
	collector *telemetry.Collector
	output    *telemetry.OutputManager

	paused       bool
	speed        int // simulation ticks per render frame
	lastDetected bool
	sourceDone   bool
	distScratch  []float64
}

// New creates the application. Rendering resources are plain values
// until Draw is first called, so headless runs never touch raylib.
func New(opts Options) (*App, error) {
	cfg := config.Cfg()

	count := opts.Particles
	if count == 0 {
		count = cfg.Swarm.Count
	}

	statsWindow := opts.StatsWindowSec
	if statsWindow == 0 {
		statsWindow = cfg.Telemetry.StatsWindow
	}

	output, err := telemetry.NewOutputManager(opts.OutputDir)
	if err != nil {
		return nil, err
	}
	if err := output.WriteConfig(cfg); err != nil {
		return nil, err
	}

	interpreter := gesture.Interpreter{PinchThreshold: float32(cfg.Gesture.PinchThreshold)}

	a := &App{
		cfg:  cfg,
		opts: opts,

		sim: swarm.NewSimulator(swarm.Options{
			Count:         count,
			Seed:          opts.Seed,
			LerpFactor:    float32(cfg.Swarm.LerpFactor),
			GrabScale:     float32(cfg.Swarm.GrabScale),
			ReleaseScale:  float32(cfg.Swarm.ReleaseScale),
			SpinRate:      float32(cfg.Swarm.SpinRate),
			BaseRotation:  float32(cfg.Swarm.BaseRotation),
			SteerRotation: float32(cfg.Swarm.SteerRotation),
		}),
		tracker: gesture.NewTracker(interpreter, gesture.State{Grab: true}),
		source:  opts.Source,
		slot:    opts.Slot,

		cam:           camera.New(14),
		swarmRenderer: renderer.NewSwarmRenderer(cfg.Palette),
		hud:           ui.NewHUD(),
		panel:         ui.NewTuningPanel(cfg.Derived.ScreenW32-260, 20, 250),
		tuning: ui.TuningValues{
			PinchThreshold: float32(cfg.Gesture.PinchThreshold),
			LerpFactor:     float32(cfg.Swarm.LerpFactor),
		},

		perf:      telemetry.NewPerfCollector(cfg.Telemetry.PerfCollectorWindow),
		collector: telemetry.NewCollector(statsWindow, cfg.Screen.TargetFPS),
		output:    output,

		speed:        1,
		lastDetected: true,
	}

	slog.Info("swarm initialized",
		"particles", count,
		"seed", opts.Seed,
		"lerp_factor", cfg.Swarm.LerpFactor,
	)

	return a, nil
}

// Simulator exposes the particle engine, mainly for tests and tooling.
func (a *App) Simulator() *swarm.Simulator {
	return a.sim
}

// Tick returns the simulation tick counter.
func (a *App) Tick() int32 {
	return a.sim.Tick()
}

// SourceDone reports whether an inline source has been exhausted.
func (a *App) SourceDone() bool {
	return a.sourceDone
}

// nextState resolves this frame's gesture state from the slot or the
// inline source, applying the sticky dropout policy.
func (a *App) nextState() gesture.State {
	if a.slot != nil {
		// Async handoff: the inference goroutine already ran the
		// tracker; the render loop just takes the latest value.
		a.lastDetected = true
		return a.slot.Load()
	}

	if a.source == nil || a.sourceDone {
		return a.tracker.Last()
	}

	lm, ok := a.source.Next()
	if !ok {
		a.sourceDone = true
		return a.tracker.Last()
	}

	if a.opts.Recorder != nil {
		a.opts.Recorder.Capture(lm)
	}

	a.lastDetected = lm != nil
	return a.tracker.Update(lm)
}

// step runs one simulation tick: gesture, advance, telemetry.
func (a *App) step() {
	a.perf.StartTick()

	a.perf.StartPhase(telemetry.PhaseGesture)
	state := a.nextState()

	a.perf.StartPhase(telemetry.PhaseAdvance)
	a.sim.Advance(state)

	a.perf.StartPhase(telemetry.PhaseTelemetry)
	a.collector.RecordFrame(a.lastDetected, state.Grab)
	a.flushTelemetry()

	a.perf.EndTick()
}

// flushTelemetry emits window stats when the current window closes.
func (a *App) flushTelemetry() {
	tick := a.sim.Tick()
	if !a.collector.ShouldFlush(tick) {
		return
	}

	a.distScratch = a.sim.TargetDistances(a.distScratch[:0])
	state := a.sim.State()
	stats := a.collector.Flush(tick, a.distScratch,
		float64(a.sim.Rotation()), a.sim.MeanSpin(), float64(state.HandX))

	if a.opts.LogStats {
		slog.Info("window", "stats", stats)
		a.perf.Stats().LogStats()
	}
	if err := a.output.WriteTelemetry(stats); err != nil {
		slog.Error("telemetry write failed", "error", err)
	}
	if err := a.output.WritePerf(a.perf.Stats(), tick); err != nil {
		slog.Error("perf write failed", "error", err)
	}
}

// UpdateHeadless runs one tick without graphics. Returns false once an
// inline source is exhausted.
func (a *App) UpdateHeadless() bool {
	a.step()
	return !a.sourceDone
}

// Unload flushes outputs and releases resources.
func (a *App) Unload() {
	if a.opts.Recorder != nil {
		slog.Info("gesture recording captured", "frames", a.opts.Recorder.FrameCount())
	}
	if err := a.output.Close(); err != nil {
		slog.Error("closing output", "error", err)
	}
}
