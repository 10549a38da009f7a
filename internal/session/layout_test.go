package session

import (
	"image"
	"testing"
)

func TestCellAt(t *testing.T) {
	l := DefaultLayout(20, 50)
	cases := []struct {
		p        image.Point
		row, col int
		ok       bool
	}{
		{image.Pt(0, 50), 0, 0, true},
		{image.Pt(19, 69), 0, 0, true},
		{image.Pt(20, 70), 1, 1, true},
		{image.Pt(699, 749), 34, 34, true},
		{image.Pt(10, 49), 0, 0, false},
		{image.Pt(-1, 60), 0, 0, false},
	}
	for _, tc := range cases {
		row, col, ok := l.CellAt(tc.p)
		if ok != tc.ok || (ok && (row != tc.row || col != tc.col)) {
			t.Fatalf("CellAt(%v) = (%d,%d,%v), expected (%d,%d,%v)", tc.p, row, col, ok, tc.row, tc.col, tc.ok)
		}
	}
}

func TestButtonEdgesExclusive(t *testing.T) {
	l := DefaultLayout(20, 50)
	if image.Pt(0, 25).In(l.Clear) || image.Pt(50, 25).In(l.Clear) || image.Pt(25, 50).In(l.Clear) {
		t.Fatal("clear button edges must be exclusive")
	}
	if !image.Pt(1, 1).In(l.Clear) || !image.Pt(49, 49).In(l.Clear) {
		t.Fatal("clear button interior must hit")
	}
	if image.Pt(50, 10).In(l.Mute) || image.Pt(100, 10).In(l.Mute) {
		t.Fatal("mute button edges must be exclusive")
	}
	if !image.Pt(125, 25).In(l.Step) || image.Pt(150, 25).In(l.Step) {
		t.Fatal("step button bounds wrong")
	}
}

func TestBoardAndScreenSize(t *testing.T) {
	l := DefaultLayout(20, 50)
	rows, cols := l.BoardSize(700, 750)
	if rows != 35 || cols != 35 {
		t.Fatalf("BoardSize = %dx%d, expected 35x35", rows, cols)
	}
	w, h := l.ScreenSize(rows, cols)
	if w != 700 || h != 750 {
		t.Fatalf("ScreenSize = %dx%d, expected 700x750", w, h)
	}
	if r := l.CellRect(1, 2); r != image.Rect(40, 70, 60, 90) {
		t.Fatalf("CellRect(1,2) = %v", r)
	}
}
