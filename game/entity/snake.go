package entity

import "torus-snake/game/types"

// Snake is an ordered run of cells, head first, moving one cell per tick.
type Snake struct {
	grid      types.Grid
	body      []types.Point
	direction types.Direction
	next      types.Direction

	// pendingGrowth counts segments still to be added. Each tick with
	// pending growth keeps its tail instead of dropping it.
	pendingGrowth int
}

// NewSnake creates a snake from body (head first) moving in dir.
func NewSnake(grid types.Grid, body []types.Point, dir types.Direction) *Snake {
	b := make([]types.Point, len(body))
	copy(b, body)
	return &Snake{
		grid:      grid,
		body:      b,
		direction: dir,
		next:      dir,
	}
}

// NewDefaultSnake returns the three-cell starting snake on the middle row,
// head at column 4, moving right.
func NewDefaultSnake(grid types.Grid) *Snake {
	row := grid.Height / 2
	return NewSnake(grid, []types.Point{
		{X: 4, Y: row},
		{X: 3, Y: row},
		{X: 2, Y: row},
	}, types.Right)
}

// SetNextDirection records a direction request for the next tick. Later
// requests overwrite earlier ones.
func (s *Snake) SetNextDirection(d types.Direction) {
	if !d.Valid() {
		return
	}
	s.next = d
}

// Tick advances the snake by one cell.
func (s *Snake) Tick() {
	oldHead := s.body[0]
	if s.pendingGrowth > 0 {
		s.pendingGrowth--
	} else {
		s.body = s.body[:len(s.body)-1]
	}

	// A reversal is ignored until a perpendicular turn is requested.
	if s.next != s.direction.Opposite() {
		s.direction = s.next
	}

	head := s.grid.Step(oldHead, s.direction)
	s.body = append([]types.Point{head}, s.body...)
}

// Grow schedules one extra segment. The next Tick keeps its tail.
func (s *Snake) Grow() {
	s.pendingGrowth++
}

// IsSelfColliding reports whether any non-head cell equals the head.
func (s *Snake) IsSelfColliding() bool {
	if len(s.body) < 2 {
		return false
	}
	head := s.body[0]
	for _, part := range s.body[1:] {
		if part == head {
			return true
		}
	}
	return false
}

func (s *Snake) Head() types.Point {
	return s.body[0]
}

func (s *Snake) Len() int {
	return len(s.body)
}

// Body returns a copy of the occupied cells, head first.
func (s *Snake) Body() []types.Point {
	b := make([]types.Point, len(s.body))
	copy(b, s.body)
	return b
}

func (s *Snake) Direction() types.Direction {
	return s.direction
}

// PendingGrowth reports how many segments are still owed to the snake.
func (s *Snake) PendingGrowth() int {
	return s.pendingGrowth
}
