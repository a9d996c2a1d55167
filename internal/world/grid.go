package world

const (
	// Default arena dimensions
	DefaultWidth  = 20
	DefaultHeight = 20
)

// Grid is a fixed-size toroidal arena. Moving off one edge re-enters at the
// opposite edge on the same axis.
type Grid struct {
	Width  int
	Height int
}

// NewGrid creates a grid of the given dimensions.
func NewGrid(width, height int) Grid {
	return Grid{Width: width, Height: height}
}

// Valid reports whether the grid has at least one cell.
func (g Grid) Valid() bool {
	return g.Width >= 1 && g.Height >= 1
}

// Cells returns the total number of cells.
func (g Grid) Cells() int {
	return g.Width * g.Height
}

// Contains returns true if the point lies inside the grid.
func (g Grid) Contains(p Point) bool {
	return p.X >= 0 && p.X < g.Width && p.Y >= 0 && p.Y < g.Height
}

// Wrap maps any point onto the grid, wrapping each axis independently.
func (g Grid) Wrap(p Point) Point {
	return Point{X: mod(p.X, g.Width), Y: mod(p.Y, g.Height)}
}

// Step moves p by the given delta and wraps the result.
func (g Grid) Step(p Point, dx, dy int) Point {
	return g.Wrap(p.Add(dx, dy))
}

// Index returns the row-major index of an in-bounds point.
func (g Grid) Index(p Point) int {
	return p.Y*g.Width + p.X
}

// PointAt is the inverse of Index.
func (g Grid) PointAt(i int) Point {
	return Point{X: i % g.Width, Y: i / g.Width}
}

// mod is the non-negative remainder of a / n.
func mod(a, n int) int {
	r := a % n
	if r < 0 {
		r += n
	}
	return r
}
