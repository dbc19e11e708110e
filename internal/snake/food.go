package snake

// placeFood moves the food to a uniformly chosen cell the snake does not
// cover by sampling until a free cell comes up. A board the snake fills
// completely has no such cell and gets NoFood.
func (g *Game) placeFood() {
	if len(g.body) >= g.grid.Cells() {
		g.food = NoFood
		return
	}
	for {
		i := g.rng.IntN(g.grid.Cells())
		if !g.Occupies(i) {
			g.food = i
			return
		}
	}
}
