package life

import (
	"encoding/binary"
	"hash/fnv"

	"lifeboard/internal/core"
)

// Outcome summarizes a board run until it repeats.
type Outcome struct {
	// Settled is the generation at which the board first re-entered a
	// previously seen state.
	Settled int
	// Period is the cycle length: 1 for still lifes (and the empty board),
	// 2 for blinkers and so on. Zero when the budget ran out first.
	Period     int
	Population int
}

// Settle steps g until a board state repeats or maxGens generations have run.
// States are compared by fingerprint.
func Settle(g *core.Grid, maxGens int) Outcome {
	seen := map[uint64]int{fingerprint(g): 0}
	for gen := 1; gen <= maxGens; gen++ {
		Step(g)
		fp := fingerprint(g)
		if first, ok := seen[fp]; ok {
			return Outcome{Settled: first, Period: gen - first, Population: g.Population()}
		}
		seen[fp] = gen
	}
	return Outcome{Settled: maxGens, Population: g.Population()}
}

func fingerprint(g *core.Grid) uint64 {
	h := fnv.New64a()
	var word uint64
	var buf [8]byte
	for i, c := range g.Cells() {
		if c.Alive {
			word |= 1 << (i % 64)
		}
		if i%64 == 63 {
			binary.LittleEndian.PutUint64(buf[:], word)
			h.Write(buf[:])
			word = 0
		}
	}
	binary.LittleEndian.PutUint64(buf[:], word)
	h.Write(buf[:])
	return h.Sum64()
}
