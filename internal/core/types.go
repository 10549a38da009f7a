package core

// Size describes the dimensions of a board.
type Size struct {
	W int
	H int
}

// Speed bounds in generations per second.
const (
	MinSpeed     = 1
	MaxSpeed     = 30
	DefaultSpeed = 10
)

// ClampSpeed limits v to [MinSpeed, MaxSpeed].
func ClampSpeed(v int) int {
	if v < MinSpeed {
		return MinSpeed
	}
	if v > MaxSpeed {
		return MaxSpeed
	}
	return v
}
