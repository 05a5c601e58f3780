package telemetry

// Collector accumulates gesture and swarm events within tick windows and
// produces WindowStats.
type Collector struct {
	windowDurationSec   float64
	windowDurationTicks int32

	windowStartTick int32

	// Event counters for current window
	grabFrames    int
	releaseFrames int
	detections    int
	dropouts      int
	stateFlips    int

	havePrevGrab bool
	prevGrab     bool
}

// NewCollector creates a stats collector.
// windowDurationSec: how long each stats window lasts in wall seconds
// targetFPS: render ticks per second (used for tick-to-time conversion)
func NewCollector(windowDurationSec float64, targetFPS int) *Collector {
	ticksPerWindow := int32(windowDurationSec * float64(targetFPS))
	if ticksPerWindow < 1 {
		ticksPerWindow = 1
	}

	return &Collector{
		windowDurationSec:   windowDurationSec,
		windowDurationTicks: ticksPerWindow,
	}
}

// RecordFrame records one frame's gesture outcome: whether the detector
// saw a hand and the grab state that drove the simulator.
func (c *Collector) RecordFrame(detected, grab bool) {
	if detected {
		c.detections++
	} else {
		c.dropouts++
	}

	if grab {
		c.grabFrames++
	} else {
		c.releaseFrames++
	}

	if c.havePrevGrab && grab != c.prevGrab {
		c.stateFlips++
	}
	c.prevGrab = grab
	c.havePrevGrab = true
}

// ShouldFlush reports whether the current window is complete at the
// given tick.
func (c *Collector) ShouldFlush(tick int32) bool {
	return tick-c.windowStartTick >= c.windowDurationTicks
}

// Flush produces WindowStats for the closing window and resets the
// counters. distances holds per-particle target distances sampled at the
// window end; it is sorted in place.
func (c *Collector) Flush(tick int32, distances []float64, rotation, meanSpin, handX float64) WindowStats {
	stats := WindowStats{
		WindowStartTick: c.windowStartTick,
		WindowEndTick:   tick,
		SimTimeSec:      float64(tick) / float64(c.windowDurationTicks) * c.windowDurationSec,
		GrabFrames:      c.grabFrames,
		ReleaseFrames:   c.releaseFrames,
		Detections:      c.detections,
		Dropouts:        c.dropouts,
		StateFlips:      c.stateFlips,
		RotationAngle:   rotation,
		MeanSpin:        meanSpin,
		HandX:           handX,
	}

	total := c.grabFrames + c.releaseFrames
	if total > 0 {
		stats.GrabRatio = float64(c.grabFrames) / float64(total)
	}

	stats.ConvergenceMean, stats.ConvergenceStd,
		stats.ConvergenceP10, stats.ConvergenceP50, stats.ConvergenceP90,
		stats.ConvergenceMax = ComputeConvergenceStats(distances)

	c.windowStartTick = tick
	c.grabFrames = 0
	c.releaseFrames = 0
	c.detections = 0
	c.dropouts = 0
	c.stateFlips = 0

	return stats
}
