package core

// Grid is a square board of N×N cells addressed by a flat row-major index.
type Grid struct {
	N int
}

// NewGrid returns a grid with n cells per side.
func NewGrid(n int) Grid {
	if n <= 0 {
		n = 1
	}
	return Grid{N: n}
}

// Cells returns the number of cells on the board.
func (g Grid) Cells() int { return g.N * g.N }

// Index returns the flat index for (row, col).
func (g Grid) Index(row, col int) int { return row*g.N + col }

// RowCol splits a flat index into its row and column.
func (g Grid) RowCol(i int) (row, col int) { return i / g.N, i % g.N }

// Contains reports whether i addresses a cell on the board.
func (g Grid) Contains(i int) bool { return i >= 0 && i < g.Cells() }

// InFirstRow reports whether i lies on the top edge.
func (g Grid) InFirstRow(i int) bool { return i < g.N }

// InLastRow reports whether i lies on the bottom edge.
func (g Grid) InLastRow(i int) bool { return i >= g.Cells()-g.N }

// InFirstCol reports whether i lies on the left edge.
func (g Grid) InFirstCol(i int) bool { return i%g.N == 0 }

// InLastCol reports whether i lies on the right edge.
func (g Grid) InLastCol(i int) bool { return (i+1)%g.N == 0 }

// Adjacent reports whether a and b share an edge. Cells on opposite ends of
// neighbouring rows are not adjacent even though their indices differ by one.
func (g Grid) Adjacent(a, b int) bool {
	ar, ac := g.RowCol(a)
	br, bc := g.RowCol(b)
	dr, dc := ar-br, ac-bc
	if dr < 0 {
		dr = -dr
	}
	if dc < 0 {
		dc = -dc
	}
	return dr+dc == 1
}
