package gesture

import "time"

// FrameSource yields one landmark frame per call. A nil landmark set is
// a frame with no hand detected; a false second result means the source
// is exhausted.
type FrameSource interface {
	Next() (*LandmarkSet, bool)
}

// Pump drains a landmark source at a fixed cadence and publishes
// interpreted states to the slot. Dropout frames publish nothing, so
// slot readers keep acting on the last state they saw. Pump returns
// when stop is closed or the source runs out; done is closed only on
// exhaustion. The source must be safe to call from the pump goroutine.
func Pump(slot *Slot, it Interpreter, source FrameSource, rec *Recorder, interval time.Duration, stop <-chan struct{}, done chan<- struct{}) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-stop:
			return
		case <-ticker.C:
			lm, ok := source.Next()
			if !ok {
				close(done)
				return
			}
			if rec != nil {
				rec.Capture(lm)
			}
			if lm == nil {
				continue
			}
			slot.Store(it.Interpret(*lm))
		}
	}
}
