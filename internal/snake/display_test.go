package snake

import "testing"

func TestCellsProjection(t *testing.T) {
	g, _ := newTestGame(t, 3, 4, 8)
	g.body = []int{4, 3}
	cells := g.Cells()
	want := []uint8{
		CellEmpty, CellEmpty, CellEmpty,
		CellBody, CellHead, CellEmpty,
		CellEmpty, CellEmpty, CellFood,
	}
	for i := range want {
		if cells[i] != want[i] {
			t.Fatalf("cell %d = %d, want %d", i, cells[i], want[i])
		}
	}
}

func TestRenderFrame(t *testing.T) {
	g, _ := newTestGame(t, 3, 4, 8)
	frame := g.RenderFrame(nil)

	side := g.Config().FrameSize()
	if side != 6 || len(frame) != side*side {
		t.Fatalf("frame is %d pixels, want %d", len(frame), side*side)
	}
	at := func(x, y int) uint32 { return frame[y*side+x] }

	// Snake at cell (1,1) covers pixels 2..3, food at (2,2) covers 4..5.
	for _, p := range [][2]int{{2, 2}, {3, 2}, {2, 3}, {3, 3}} {
		if got := at(p[0], p[1]); got != ColorSnake {
			t.Fatalf("pixel %v = %08X, want snake", p, got)
		}
	}
	for _, p := range [][2]int{{4, 4}, {5, 5}} {
		if got := at(p[0], p[1]); got != ColorFood {
			t.Fatalf("pixel %v = %08X, want food", p, got)
		}
	}
	if got := at(0, 0); got != ColorBackground {
		t.Fatalf("pixel (0,0) = %08X, want background", got)
	}
}

func TestRenderFrameIsPure(t *testing.T) {
	g, _ := newTestGame(t, 4, 5, 10)
	g.SetDirection(Down)
	a := g.RenderFrame(nil)
	b := g.RenderFrame(nil)
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("pixel %d differs between renders", i)
		}
	}
	if g.Head() != 5 || g.Food() != 10 || g.Direction() != Down {
		t.Fatal("rendering changed game state")
	}
}
