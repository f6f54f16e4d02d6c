package manager

import (
	"torus-snake/game/entity"
	"torus-snake/game/types"
)

// FoodManager owns the single food item and the randomness used to place it.
type FoodManager struct {
	grid types.Grid
	food entity.Food
	rng  entity.Rand
}

// NewFoodManager places the first food item using rng.
func NewFoodManager(grid types.Grid, rng entity.Rand) *FoodManager {
	fm := &FoodManager{
		grid: grid,
		rng:  rng,
	}
	fm.food.Respawn(fm.rng, fm.grid)
	return fm
}

// Food returns the current food item.
func (fm *FoodManager) Food() entity.Food {
	return fm.food
}

// Consume places a new food item after the current one was eaten. The new
// position may fall under the snake; nothing checks for it.
func (fm *FoodManager) Consume() types.Point {
	fm.food.Respawn(fm.rng, fm.grid)
	return fm.food.Position
}

// Place puts the food at an explicit cell.
func (fm *FoodManager) Place(pos types.Point) {
	fm.food.Position = fm.grid.Wrap(pos)
}
