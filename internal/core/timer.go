package core

import "time"

// FixedStep paces simulation updates at a steady ticks-per-second rate.
// Callers pass the current time so the controller stays deterministic
// under test.
type FixedStep struct {
	step        time.Duration
	accumulator time.Duration
	last        time.Time
}

// NewFixedStep constructs a FixedStep controller targeting the given TPS.
// The first call to ShouldStep fires immediately.
func NewFixedStep(tps int) *FixedStep {
	fs := &FixedStep{}
	fs.SetTPS(tps)
	fs.accumulator = fs.step
	return fs
}

// SetTPS changes the tick rate. It is safe to call from the main loop.
func (f *FixedStep) SetTPS(tps int) {
	if tps <= 0 {
		tps = 60
	}
	f.step = time.Second / time.Duration(tps)
}

// Interval returns the duration of one tick.
func (f *FixedStep) Interval() time.Duration { return f.step }

// Restart makes the next ShouldStep fire immediately and forgets the
// previous timestamp, so time spent idle does not turn into a burst.
func (f *FixedStep) Restart() {
	f.last = time.Time{}
	f.accumulator = f.step
}

// ShouldStep reports whether the simulation should advance by one tick.
// At most one tick is reported per call; a backlog larger than one step is
// dropped rather than replayed.
func (f *FixedStep) ShouldStep(now time.Time) bool {
	if f.last.IsZero() {
		f.last = now
	}
	delta := now.Sub(f.last)
	f.last = now
	if delta > 0 {
		f.accumulator += delta
	}
	if f.accumulator >= f.step {
		f.accumulator -= f.step
		if f.accumulator > f.step {
			f.accumulator = f.step
		}
		return true
	}
	return false
}
