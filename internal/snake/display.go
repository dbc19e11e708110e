package snake

import "snake/internal/render"

// Cell values produced by Cells.
const (
	CellEmpty uint8 = iota
	CellBody
	CellHead
	CellFood
)

// Frame colors in 0xAARRGGBB form with the alpha byte fixed at 0xFF.
const (
	ColorBackground uint32 = 0xFFFFFFFF
	ColorSnake      uint32 = 0xFF000000
	ColorFood       uint32 = 0xFFFF0000
)

var palette = []uint32{
	CellEmpty: ColorBackground,
	CellBody:  ColorSnake,
	CellHead:  ColorSnake,
	CellFood:  ColorFood,
}

// Palette maps Cells values to frame colors.
func Palette() []uint32 { return palette }

// Cells projects the game onto one value per board cell in row-major order.
func (g *Game) Cells() []uint8 {
	cells := make([]uint8, g.grid.Cells())
	if g.grid.Contains(g.food) {
		cells[g.food] = CellFood
	}
	for _, i := range g.body {
		if g.grid.Contains(i) {
			cells[i] = CellBody
		}
	}
	if g.grid.Contains(g.body[0]) {
		cells[g.body[0]] = CellHead
	}
	return cells
}

// RenderFrame draws the board into dst, growing it when it is too small, and
// returns the filled buffer. Each cell becomes a CellSize×CellSize block.
func (g *Game) RenderFrame(dst []uint32) []uint32 {
	return render.FillFrame(dst, g.Cells(), g.grid.N, g.cfg.CellSize, palette)
}
