package core

import "testing"

func TestGridEdges(t *testing.T) {
	g := NewGrid(5)

	cases := []struct {
		idx                      int
		first, last, left, right bool
	}{
		{idx: 0, first: true, left: true},
		{idx: 4, first: true, right: true},
		{idx: 12},
		{idx: 14, right: true},
		{idx: 15, left: true},
		{idx: 20, last: true, left: true},
		{idx: 24, last: true, right: true},
	}
	for _, tc := range cases {
		if got := g.InFirstRow(tc.idx); got != tc.first {
			t.Errorf("InFirstRow(%d)=%v, want %v", tc.idx, got, tc.first)
		}
		if got := g.InLastRow(tc.idx); got != tc.last {
			t.Errorf("InLastRow(%d)=%v, want %v", tc.idx, got, tc.last)
		}
		if got := g.InFirstCol(tc.idx); got != tc.left {
			t.Errorf("InFirstCol(%d)=%v, want %v", tc.idx, got, tc.left)
		}
		if got := g.InLastCol(tc.idx); got != tc.right {
			t.Errorf("InLastCol(%d)=%v, want %v", tc.idx, got, tc.right)
		}
	}
}

func TestGridIndexRoundTrip(t *testing.T) {
	g := NewGrid(7)
	for i := 0; i < g.Cells(); i++ {
		row, col := g.RowCol(i)
		if got := g.Index(row, col); got != i {
			t.Fatalf("Index(RowCol(%d)) = %d", i, got)
		}
	}
}

func TestGridAdjacentDoesNotWrapRows(t *testing.T) {
	g := NewGrid(5)
	if !g.Adjacent(12, 13) || !g.Adjacent(12, 7) {
		t.Fatal("expected orthogonal neighbours to be adjacent")
	}
	if g.Adjacent(4, 5) {
		t.Fatal("end of row 0 and start of row 1 must not be adjacent")
	}
	if g.Adjacent(12, 18) {
		t.Fatal("diagonal cells must not be adjacent")
	}
}

func TestNewGridClampsSize(t *testing.T) {
	if g := NewGrid(0); g.N != 1 {
		t.Fatalf("expected clamp to 1, got %d", g.N)
	}
}
