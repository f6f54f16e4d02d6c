package manager

import (
	"torus-snake/game/entity"
	"torus-snake/game/types"
)

// CollisionType represents the kind of collision found for a frame.
type CollisionType int

const (
	NoCollision CollisionType = iota
	SelfCollision
)

func (c CollisionType) String() string {
	switch c {
	case SelfCollision:
		return "self"
	default:
		return "none"
	}
}

type CollisionManager struct {
	grid types.Grid
}

func NewCollisionManager(grid types.Grid) *CollisionManager {
	return &CollisionManager{
		grid: grid,
	}
}

// CheckCollision reports the collision, if any, for the snake's current head.
// The grid has no walls, so the only terminal collision is with its own body.
func (cm *CollisionManager) CheckCollision(snake *entity.Snake) CollisionType {
	if snake.IsSelfColliding() {
		return SelfCollision
	}
	return NoCollision
}

// IsFoodCollision checks if a position collides with food
func (cm *CollisionManager) IsFoodCollision(pos types.Point, food entity.Food) bool {
	return pos == food.Position
}

// IsOnSnake reports whether pos is occupied by any cell of the snake.
func (cm *CollisionManager) IsOnSnake(pos types.Point, snake *entity.Snake) bool {
	for _, part := range snake.Body() {
		if part == pos {
			return true
		}
	}
	return false
}
