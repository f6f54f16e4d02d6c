package entity

import "torus-snake/game/types"

// Rand is the source of randomness used to place food.
type Rand interface {
	Intn(n int) int
}

// Food is a single edible cell.
type Food struct {
	Position types.Point
}

// Respawn moves the food to a uniformly random cell. Cells occupied by the
// snake are not excluded.
func (f *Food) Respawn(rng Rand, grid types.Grid) {
	f.Position = types.Point{
		X: rng.Intn(grid.Width),
		Y: rng.Intn(grid.Height),
	}
}
