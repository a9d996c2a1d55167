package world

import "math/rand"

// Occupancy tracks which cells of a grid are taken.
type Occupancy struct {
	grid  Grid
	cells []bool
	count int
}

// NewOccupancy creates an empty occupancy set for the grid.
func NewOccupancy(grid Grid) *Occupancy {
	return &Occupancy{
		grid:  grid,
		cells: make([]bool, grid.Cells()),
	}
}

// Has returns true if the cell is occupied. Points outside the grid are never occupied.
func (o *Occupancy) Has(p Point) bool {
	if !o.grid.Contains(p) {
		return false
	}
	return o.cells[o.grid.Index(p)]
}

// Set marks the cell occupied.
func (o *Occupancy) Set(p Point) {
	i := o.grid.Index(p)
	if !o.cells[i] {
		o.cells[i] = true
		o.count++
	}
}

// Clear marks the cell free.
func (o *Occupancy) Clear(p Point) {
	i := o.grid.Index(p)
	if o.cells[i] {
		o.cells[i] = false
		o.count--
	}
}

// Reset frees every cell.
func (o *Occupancy) Reset() {
	clear(o.cells)
	o.count = 0
}

// FreeCount returns the number of unoccupied cells.
func (o *Occupancy) FreeCount() int {
	return len(o.cells) - o.count
}

// maxRandomProbes bounds rejection sampling before falling back to a scan.
const maxRandomProbes = 32

// RandomFree picks an unoccupied cell uniformly at random.
// It returns false when the grid is full.
//
// While most of the grid is free it samples and rejects; once the board is
// crowded, or sampling keeps missing, it draws from the explicit free list so
// the call always terminates.
func (o *Occupancy) RandomFree(rng *rand.Rand) (Point, bool) {
	free := o.FreeCount()
	if free == 0 {
		return Point{}, false
	}

	if free*2 >= len(o.cells) {
		for range maxRandomProbes {
			i := rng.Intn(len(o.cells))
			if !o.cells[i] {
				return o.grid.PointAt(i), true
			}
		}
	}

	// Pick the k-th free cell without allocating the list
	k := rng.Intn(free)
	for i, taken := range o.cells {
		if taken {
			continue
		}
		if k == 0 {
			return o.grid.PointAt(i), true
		}
		k--
	}
	return Point{}, false
}
