package grid_test

import (
	"fmt"

	"github.com/katalvlaran/gridwalk/grid"
)

// ExampleGrid_Neighbors shows the fixed Up, Down, Left, Right order and
// the dropping of out-of-bounds cells at a corner.
func ExampleGrid_Neighbors() {
	g, _ := grid.Parse("ab\ncd")
	for _, p := range g.Neighbors(grid.Position{X: 0, Y: 0}) {
		tile, _ := g.At(p)
		fmt.Printf("%v %c\n", p, tile)
	}
	// Output:
	// (0,1) c
	// (1,0) b
}

// ExampleGrid_RotateRight turns a 3×2 grid clockwise.
func ExampleGrid_RotateRight() {
	g, _ := grid.Parse("abc\ndef")
	fmt.Println(g.RotateRight())
	// Output:
	// da
	// eb
	// fc
}
