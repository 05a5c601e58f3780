package main

import (
	"flag"
	"log/slog"
	"os"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/grove/app"
	"github.com/pthm-cable/grove/config"
	"github.com/pthm-cable/grove/gesture"
)

func main() {
	// CLI flags
	configPath := flag.String("config", "", "Path to config.yaml (empty = use defaults)")
	headless := flag.Bool("headless", false, "Run without graphics using a scripted gesture source")
	logStats := flag.Bool("log-stats", false, "Output stats via slog")
	statsWindow := flag.Float64("stats-window", 0, "Stats window size in seconds (0 = use config)")
	outputDir := flag.String("output-dir", "", "Output directory for CSV logs and config snapshot")
	seed := flag.Int64("seed", 0, "RNG seed for the dispersed formation (0 = time-based)")
	maxTicks := flag.Int("max-ticks", 0, "Stop after N ticks (0 = unlimited)")
	particles := flag.Int("particles", 0, "Particle count (0 = use config)")
	replayPath := flag.String("replay", "", "Landmark CSV to play back instead of live input")
	recordPath := flag.String("record", "", "Record landmark frames to this CSV")
	asyncGesture := flag.Bool("async-gesture", false, "Interpret gestures on a separate goroutine at camera cadence")

	flag.Parse()

	// Initialize config before anything else
	if err := config.Init(*configPath); err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	cfg := config.Cfg()

	// Set up seed
	rngSeed := *seed
	if rngSeed == 0 {
		rngSeed = time.Now().UnixNano()
	}

	// Set up slog (JSON to stdout for structured logging)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	// Use config stats window if not overridden by CLI
	statsWindowSec := cfg.Telemetry.StatsWindow
	if *statsWindow > 0 {
		statsWindowSec = *statsWindow
	}

	opts := app.Options{
		Seed:           rngSeed,
		LogStats:       *logStats,
		StatsWindowSec: statsWindowSec,
		OutputDir:      *outputDir,
		Particles:      *particles,
	}

	var replay *gesture.Replay
	if *replayPath != "" {
		r, err := gesture.LoadReplay(*replayPath)
		if err != nil {
			slog.Error("failed to load replay", "path", *replayPath, "error", err)
			os.Exit(1)
		}
		replay = r
		slog.Info("replay loaded", "path", *replayPath, "frames", replay.Len())
	}

	var recorder *gesture.Recorder
	if *recordPath != "" {
		recorder = gesture.NewRecorder()
		opts.Recorder = recorder
	}

	if *headless {
		// Headless mode - pure CPU simulation, no raylib needed
		if replay != nil {
			opts.Source = replay
		} else {
			opts.Source = gesture.NewScript()
		}

		a, err := app.New(opts)
		if err != nil {
			slog.Error("failed to initialize", "error", err)
			os.Exit(1)
		}
		defer a.Unload()

		slog.Info("starting headless run",
			"seed", rngSeed,
			"stats_window", statsWindowSec,
			"max_ticks", *maxTicks,
			"particles", a.Simulator().Count(),
		)

		for a.UpdateHeadless() {
			if *maxTicks > 0 && int(a.Tick()) >= *maxTicks {
				slog.Info("max ticks reached", "tick", a.Tick())
				break
			}
		}
		finishRecording(recorder, *recordPath)
		return
	}

	// Graphical mode
	rl.InitWindow(int32(cfg.Screen.Width), int32(cfg.Screen.Height), "Grove")
	defer rl.CloseWindow()

	rl.SetTargetFPS(int32(cfg.Screen.TargetFPS))

	var source app.Source
	if replay != nil {
		source = replay
	} else {
		source = app.NewMouseSource(float32(cfg.Screen.Width), float32(cfg.Screen.Height))
	}

	var stop, inferenceDone chan struct{}
	if *asyncGesture {
		// The interpreter runs at camera cadence on its own goroutine;
		// the render loop only ever reads the latest published state.
		// Live mouse input has to stay on the render thread (raylib
		// input polling is not goroutine-safe), so only a replay can
		// feed the pump.
		if replay == nil {
			slog.Error("-async-gesture requires -replay; live input runs inline on the render thread")
			os.Exit(1)
		}
		slot := gesture.NewSlot(gesture.State{Grab: true})
		opts.Slot = slot
		stop = make(chan struct{})
		inferenceDone = make(chan struct{})
		it := gesture.Interpreter{PinchThreshold: float32(cfg.Gesture.PinchThreshold)}
		go gesture.Pump(slot, it, replay, recorder, 33*time.Millisecond, stop, inferenceDone)
	} else {
		opts.Source = source
	}

	a, err := app.New(opts)
	if err != nil {
		slog.Error("failed to initialize", "error", err)
		os.Exit(1)
	}
	defer a.Unload()

	for !rl.WindowShouldClose() {
		a.Update()
		a.Draw()

		if a.SourceDone() || closed(inferenceDone) {
			slog.Info("replay exhausted", "tick", a.Tick())
			break
		}
		if *maxTicks > 0 && int(a.Tick()) >= *maxTicks {
			break
		}
	}

	if stop != nil {
		close(stop)
	}
	finishRecording(recorder, *recordPath)
}

// closed reports whether a nil-able signal channel has been closed.
func closed(ch chan struct{}) bool {
	if ch == nil {
		return false
	}
	select {
	case <-ch:
		return true
	default:
		return false
	}
}

func finishRecording(recorder *gesture.Recorder, path string) {
	if recorder == nil {
		return
	}
	if err := recorder.WriteFile(path); err != nil {
		slog.Error("failed to write recording", "path", path, "error", err)
		return
	}
	slog.Info("recording written", "path", path, "frames", recorder.FrameCount())
}
