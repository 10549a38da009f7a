package core

import (
	"testing"
	"time"
)

func TestFixedStepPacesTicks(t *testing.T) {
	fs := NewFixedStep(10)
	start := time.Unix(100, 0)
	if !fs.ShouldStep(start) {
		t.Fatal("first call should step immediately")
	}
	if fs.ShouldStep(start.Add(50 * time.Millisecond)) {
		t.Fatal("stepped before the interval elapsed")
	}
	if !fs.ShouldStep(start.Add(100 * time.Millisecond)) {
		t.Fatal("did not step after one interval")
	}

	ticks := 0
	now := start.Add(100 * time.Millisecond)
	for i := 0; i < 60; i++ {
		now = now.Add(time.Second / 60)
		if fs.ShouldStep(now) {
			ticks++
		}
	}
	if ticks < 9 || ticks > 11 {
		t.Fatalf("got %d ticks in one second at 10 TPS", ticks)
	}
}

func TestFixedStepDropsBacklog(t *testing.T) {
	fs := NewFixedStep(30)
	start := time.Unix(0, 0)
	fs.ShouldStep(start)
	later := start.Add(5 * time.Second)
	steps := 0
	for i := 0; i < 5; i++ {
		if fs.ShouldStep(later) {
			steps++
		}
	}
	if steps > 2 {
		t.Fatalf("replayed %d steps after a stall", steps)
	}
}

func TestFixedStepRestart(t *testing.T) {
	fs := NewFixedStep(1)
	start := time.Unix(0, 0)
	fs.ShouldStep(start)
	if fs.ShouldStep(start.Add(10 * time.Millisecond)) {
		t.Fatal("unexpected step")
	}
	fs.Restart()
	if !fs.ShouldStep(start.Add(20 * time.Millisecond)) {
		t.Fatal("Restart should make the next call step")
	}
	if fs.Interval() != time.Second {
		t.Fatalf("interval %v, expected 1s", fs.Interval())
	}
}

func TestClampSpeed(t *testing.T) {
	if ClampSpeed(0) != MinSpeed || ClampSpeed(99) != MaxSpeed || ClampSpeed(12) != 12 {
		t.Fatal("ClampSpeed out of range")
	}
}
