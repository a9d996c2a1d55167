package snake

import "github.com/samdwyer/gridsnake/internal/world"

// body is a fixed-capacity ring of cells, head first.
type body struct {
	cells []world.Point
	head  int // index of the head in cells
	n     int
}

func newBody(capacity int) *body {
	return &body{cells: make([]world.Point, capacity)}
}

func (b *body) len() int {
	return b.n
}

// at returns the i-th segment counting from the head.
func (b *body) at(i int) world.Point {
	return b.cells[(b.head+i)%len(b.cells)]
}

func (b *body) headCell() world.Point {
	return b.at(0)
}

func (b *body) tailCell() world.Point {
	return b.at(b.n - 1)
}

func (b *body) pushHead(p world.Point) {
	b.head = (b.head - 1 + len(b.cells)) % len(b.cells)
	b.cells[b.head] = p
	b.n++
}

func (b *body) pushTail(p world.Point) {
	b.cells[(b.head+b.n)%len(b.cells)] = p
	b.n++
}

func (b *body) popTail() world.Point {
	p := b.tailCell()
	b.n--
	return p
}

func (b *body) reset() {
	b.head = 0
	b.n = 0
}

// points copies the segments into a new slice, head first.
func (b *body) points() []world.Point {
	out := make([]world.Point, b.n)
	for i := range out {
		out[i] = b.at(i)
	}
	return out
}
