package grid

// RotateRight returns g turned 90° clockwise: the left column becomes the
// top row. The result is Height() wide and Width() tall.
// Complexity: O(W×H).
func (g *Grid) RotateRight() *Grid {
	w, h := g.height, g.width
	cells := make([]byte, w*h)
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			// (x,y) lands on column (H-1-y), row x.
			cells[x*w+(g.height-1-y)] = g.cells[y*g.width+x]
		}
	}
	return &Grid{width: w, height: h, cells: cells}
}

// RotateLeft returns g turned 90° counter-clockwise: the top row becomes the
// left column, read bottom to top.
// Complexity: O(W×H).
func (g *Grid) RotateLeft() *Grid {
	w, h := g.height, g.width
	cells := make([]byte, w*h)
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			// (x,y) lands on column y, row (W-1-x).
			cells[(g.width-1-x)*w+y] = g.cells[y*g.width+x]
		}
	}
	return &Grid{width: w, height: h, cells: cells}
}
