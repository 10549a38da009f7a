package audio

import (
	"encoding/binary"
	"math"
)

// SampleRate is the PCM rate of the background loop.
const SampleRate = 44100

// droneFreqs are chosen so each completes a whole number of cycles in one
// loop, which keeps the loop seam silent.
var droneFreqs = []float64{110, 165, 220}

// Drone synthesizes a soft chord as 16-bit little-endian stereo PCM lasting
// the given whole number of seconds.
func Drone(seconds int) []byte {
	if seconds <= 0 {
		seconds = 1
	}
	frames := SampleRate * seconds
	buf := make([]byte, frames*4)
	amp := 0.18 / float64(len(droneFreqs))
	for i := 0; i < frames; i++ {
		t := float64(i) / SampleRate
		var v float64
		for _, f := range droneFreqs {
			v += math.Sin(2 * math.Pi * f * t)
		}
		// Slow tremolo at 0.5 Hz, also whole-cycle per loop when seconds is even.
		v *= amp * (0.75 + 0.25*math.Cos(math.Pi*t))
		s := int16(v * math.MaxInt16)
		binary.LittleEndian.PutUint16(buf[4*i:], uint16(s))
		binary.LittleEndian.PutUint16(buf[4*i+2:], uint16(s))
	}
	return buf
}
