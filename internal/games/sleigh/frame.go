package sleigh

import "time"

// FrameDriver converts wall-clock frames into clamped simulation deltas.
type FrameDriver struct {
	maxDelta float64
	last     time.Time
	started  bool
	frozen   bool
}

func NewFrameDriver(maxDelta float64) *FrameDriver {
	return &FrameDriver{maxDelta: maxDelta}
}

// Advance returns the seconds to simulate for a frame at now. The first
// frame and every frozen frame return zero.
func (f *FrameDriver) Advance(now time.Time) float64 {
	if !f.started || f.frozen {
		f.started = true
		f.last = now
		return 0
	}
	dt := now.Sub(f.last).Seconds()
	f.last = now
	if dt < 0 {
		return 0
	}
	if dt > f.maxDelta {
		dt = f.maxDelta
	}
	return dt
}

// Freeze holds the simulation; frames keep rendering the last state.
func (f *FrameDriver) Freeze() { f.frozen = true }

// Unfreeze resumes without charging the frozen time to the next frame.
func (f *FrameDriver) Unfreeze() { f.frozen = false }

func (f *FrameDriver) Frozen() bool { return f.frozen }

// Reset forgets the previous frame.
func (f *FrameDriver) Reset() {
	f.started = false
	f.frozen = false
}
