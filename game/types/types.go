package types

import "fmt"

// DefaultGridSize is the side of the square playfield.
const DefaultGridSize = 20

// Point is a cell position on the grid.
type Point struct {
	X, Y int
}

func (p Point) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// Grid represents the game grid dimensions. Both axes wrap around.
type Grid struct {
	Width  int
	Height int
}

// NewSquareGrid returns a grid with equal sides.
func NewSquareGrid(size int) Grid {
	return Grid{Width: size, Height: size}
}

// Contains reports whether p lies inside the grid.
func (g Grid) Contains(p Point) bool {
	return p.X >= 0 && p.X < g.Width && p.Y >= 0 && p.Y < g.Height
}

// Wrap maps p onto the grid, each axis modulo its size.
func (g Grid) Wrap(p Point) Point {
	return Point{X: wrap(p.X, g.Width), Y: wrap(p.Y, g.Height)}
}

// Step moves p one cell in direction d, re-entering from the opposite edge
// when it leaves the grid.
func (g Grid) Step(p Point, d Direction) Point {
	delta := d.Delta()
	return g.Wrap(Point{X: p.X + delta.X, Y: p.Y + delta.Y})
}

func wrap(v, n int) int {
	v %= n
	if v < 0 {
		v += n
	}
	return v
}

// Direction is one of the four cardinal directions.
type Direction int

const (
	Up Direction = iota
	Down
	Left
	Right
)

// Delta converts a Direction into a unit displacement. Y grows downwards.
func (d Direction) Delta() Point {
	switch d {
	case Up:
		return Point{X: 0, Y: -1}
	case Down:
		return Point{X: 0, Y: 1}
	case Left:
		return Point{X: -1, Y: 0}
	case Right:
		return Point{X: 1, Y: 0}
	default:
		return Point{}
	}
}

// Opposite returns the reverse direction.
func (d Direction) Opposite() Direction {
	switch d {
	case Up:
		return Down
	case Down:
		return Up
	case Left:
		return Right
	case Right:
		return Left
	default:
		return d
	}
}

// Valid reports whether d is one of the four known directions.
func (d Direction) Valid() bool {
	return d >= Up && d <= Right
}

func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	default:
		return fmt.Sprintf("Direction(%d)", int(d))
	}
}
