// Package world provides the arena grid the snake and food live on.
package world

import "fmt"

// Point is a cell coordinate on the grid.
type Point struct {
	X, Y int
}

// Add returns p offset by the given delta.
func (p Point) Add(dx, dy int) Point {
	return Point{X: p.X + dx, Y: p.Y + dy}
}

// String returns the point as "(x,y)".
func (p Point) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}
