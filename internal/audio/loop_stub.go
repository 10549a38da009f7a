//go:build !ebiten

package audio

// Loop is a silent placeholder used when the ebiten build tag is absent.
type Loop struct{ muted bool }

// NewLoop returns a silent loop in headless builds.
func NewLoop(float64) (*Loop, error) { return &Loop{}, nil }

// SetMuted records the flag; there is nothing to silence.
func (l *Loop) SetMuted(muted bool) { l.muted = muted }

// Close is a no-op.
func (l *Loop) Close() error { return nil }
