package gesture

import (
	"fmt"
	"os"
	"sort"

	"github.com/gocarina/gocsv"
)

// ReplayRow is one landmark observation in a recorded gesture stream.
// A detected frame contributes one row per landmark. A frame with a
// single row whose Landmark is -1 is an explicit no-detection frame.
type ReplayRow struct {
	Frame    int     `csv:"frame"`
	Landmark int     `csv:"landmark"`
	X        float32 `csv:"x"`
	Y        float32 `csv:"y"`
}

// Replay is a recorded landmark stream, one entry per frame in order.
// A nil entry is a frame where no hand was detected.
type Replay struct {
	frames []*LandmarkSet
	cursor int
}

// LoadReplay reads a recorded gesture stream from a CSV file.
func LoadReplay(path string) (*Replay, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening replay file: %w", err)
	}
	defer f.Close()

	var rows []ReplayRow
	if err := gocsv.UnmarshalFile(f, &rows); err != nil {
		return nil, fmt.Errorf("parsing replay file: %w", err)
	}
	return replayFromRows(rows)
}

// replayFromRows groups rows into per-frame landmark sets.
func replayFromRows(rows []ReplayRow) (*Replay, error) {
	if len(rows) == 0 {
		return &Replay{}, nil
	}

	sort.SliceStable(rows, func(i, j int) bool { return rows[i].Frame < rows[j].Frame })

	maxFrame := rows[len(rows)-1].Frame
	if maxFrame < 0 {
		return nil, fmt.Errorf("replay contains negative frame index %d", maxFrame)
	}

	frames := make([]*LandmarkSet, maxFrame+1)
	for _, row := range rows {
		if row.Landmark == -1 {
			continue // explicit dropout marker, frame stays nil
		}
		if row.Landmark < 0 || row.Landmark >= LandmarkCount {
			return nil, fmt.Errorf("frame %d: landmark index %d out of range", row.Frame, row.Landmark)
		}
		if frames[row.Frame] == nil {
			frames[row.Frame] = &LandmarkSet{}
		}
		frames[row.Frame][row.Landmark] = Point{X: row.X, Y: row.Y}
	}

	return &Replay{frames: frames}, nil
}

// Len returns the number of frames in the replay.
func (r *Replay) Len() int {
	return len(r.frames)
}

// Next returns the next frame's landmark set (nil for a dropout frame)
// and false once the stream is exhausted.
func (r *Replay) Next() (*LandmarkSet, bool) {
	if r.cursor >= len(r.frames) {
		return nil, false
	}
	lm := r.frames[r.cursor]
	r.cursor++
	return lm, true
}

// Rewind restarts the replay from its first frame.
func (r *Replay) Rewind() {
	r.cursor = 0
}

// Recorder captures landmark frames and writes them back out as a
// replay CSV, preserving dropout frames.
type Recorder struct {
	rows  []ReplayRow
	frame int
}

// NewRecorder creates an empty recorder.
func NewRecorder() *Recorder {
	return &Recorder{}
}

// Capture appends one frame. Pass nil for a frame with no detection.
func (rec *Recorder) Capture(lm *LandmarkSet) {
	if lm == nil {
		rec.rows = append(rec.rows, ReplayRow{Frame: rec.frame, Landmark: -1})
	} else {
		for i, p := range lm {
			rec.rows = append(rec.rows, ReplayRow{Frame: rec.frame, Landmark: i, X: p.X, Y: p.Y})
		}
	}
	rec.frame++
}

// FrameCount returns the number of captured frames.
func (rec *Recorder) FrameCount() int {
	return rec.frame
}

// WriteFile writes the captured stream as a replay CSV.
func (rec *Recorder) WriteFile(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating replay file: %w", err)
	}
	defer f.Close()

	if err := gocsv.Marshal(rec.rows, f); err != nil {
		return fmt.Errorf("writing replay file: %w", err)
	}
	return nil
}
