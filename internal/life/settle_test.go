package life

import "testing"

func TestSettleStillLife(t *testing.T) {
	g := newGrid(t, 6, 6, [2]int{1, 1}, [2]int{1, 2}, [2]int{2, 1})
	out := Settle(g, 100)
	if out.Period != 1 || out.Settled != 1 || out.Population != 4 {
		t.Fatalf("L-tromino should settle into a block after one generation, got %+v", out)
	}
}

func TestSettleBlinker(t *testing.T) {
	g := newGrid(t, 5, 5, [2]int{1, 2}, [2]int{2, 2}, [2]int{3, 2})
	out := Settle(g, 100)
	if out.Period != 2 || out.Settled != 0 || out.Population != 3 {
		t.Fatalf("blinker outcome %+v", out)
	}
}

func TestSettleExtinction(t *testing.T) {
	g := newGrid(t, 5, 5, [2]int{2, 2})
	out := Settle(g, 100)
	if out.Period != 1 || out.Population != 0 || out.Settled != 1 {
		t.Fatalf("lone cell outcome %+v", out)
	}
}

func TestSettleBudget(t *testing.T) {
	glider := [][2]int{{0, 1}, {1, 2}, {2, 0}, {2, 1}, {2, 2}}
	g := newGrid(t, 30, 30, glider...)
	out := Settle(g, 8)
	if out.Period != 0 || out.Settled != 8 {
		t.Fatalf("glider should still be travelling after 8 generations, got %+v", out)
	}
}
