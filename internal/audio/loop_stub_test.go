//go:build !ebiten

package audio

import "testing"

func TestStubLoopMutes(t *testing.T) {
	l, err := NewLoop(1)
	if err != nil {
		t.Fatal(err)
	}
	l.SetMuted(true)
	if !l.muted {
		t.Fatal("stub loop did not record the mute flag")
	}
	if err := l.Close(); err != nil {
		t.Fatal(err)
	}
}
