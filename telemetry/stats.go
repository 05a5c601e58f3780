package telemetry

import (
	"log/slog"
	"sort"

	"gonum.org/v1/gonum/stat"
)

// WindowStats holds aggregated swarm statistics for one time window.
type WindowStats struct {
	WindowStartTick int32   `csv:"-"`
	WindowEndTick   int32   `csv:"window_end"`
	SimTimeSec      float64 `csv:"sim_time"`

	// Gesture signal during the window
	GrabFrames    int     `csv:"grab_frames"`
	ReleaseFrames int     `csv:"release_frames"`
	Detections    int     `csv:"detections"`
	Dropouts      int     `csv:"dropouts"`
	StateFlips    int     `csv:"state_flips"`
	GrabRatio     float64 `csv:"grab_ratio"`

	// Convergence toward the selected formation (sampled at window end)
	ConvergenceMean float64 `csv:"convergence_mean"`
	ConvergenceStd  float64 `csv:"convergence_std"`
	ConvergenceP10  float64 `csv:"convergence_p10"`
	ConvergenceP50  float64 `csv:"convergence_p50"`
	ConvergenceP90  float64 `csv:"convergence_p90"`
	ConvergenceMax  float64 `csv:"convergence_max"`

	// Swarm state at window end
	RotationAngle float64 `csv:"rotation_angle"`
	MeanSpin      float64 `csv:"mean_spin"`
	HandX         float64 `csv:"hand_x"`
}

// Percentile calculates the p-th percentile of a sorted slice.
// p should be in [0, 1]. Returns 0 if slice is empty.
func Percentile(sorted []float64, p float64) float64 {
	n := len(sorted)
	if n == 0 {
		return 0
	}
	if p <= 0 {
		return sorted[0]
	}
	if p >= 1 {
		return sorted[n-1]
	}

	// Linear interpolation
	idx := p * float64(n-1)
	lo := int(idx)
	hi := lo + 1
	if hi >= n {
		return sorted[n-1]
	}

	frac := idx - float64(lo)
	return sorted[lo]*(1-frac) + sorted[hi]*frac
}

// ComputeConvergenceStats calculates distribution statistics over
// per-particle target distances. Values are sorted in place.
func ComputeConvergenceStats(values []float64) (mean, std, p10, p50, p90, max float64) {
	n := len(values)
	if n == 0 {
		return 0, 0, 0, 0, 0, 0
	}

	mean = stat.Mean(values, nil)
	if n > 1 {
		std = stat.StdDev(values, nil)
	}

	sort.Float64s(values)
	p10 = Percentile(values, 0.10)
	p50 = Percentile(values, 0.50)
	p90 = Percentile(values, 0.90)
	max = values[n-1]

	return mean, std, p10, p50, p90, max
}

// LogValue implements slog.LogValuer for structured logging.
func (s WindowStats) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int("window_start", int(s.WindowStartTick)),
		slog.Int("window_end", int(s.WindowEndTick)),
		slog.Float64("sim_time", s.SimTimeSec),
		slog.Int("grab_frames", s.GrabFrames),
		slog.Int("release_frames", s.ReleaseFrames),
		slog.Int("detections", s.Detections),
		slog.Int("dropouts", s.Dropouts),
		slog.Int("state_flips", s.StateFlips),
		slog.Float64("grab_ratio", s.GrabRatio),
		slog.Float64("convergence_mean", s.ConvergenceMean),
		slog.Float64("convergence_p50", s.ConvergenceP50),
		slog.Float64("convergence_max", s.ConvergenceMax),
		slog.Float64("rotation_angle", s.RotationAngle),
		slog.Float64("hand_x", s.HandX),
	)
}
