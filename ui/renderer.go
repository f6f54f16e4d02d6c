package ui

import (
	"image/color"

	"torus-snake/game"
)

// Renderer draws a game onto a Backend, one rectangle per occupied cell.
type Renderer struct {
	cellWidth  int
	cellHeight int
	offsetX    int
	offsetY    int
	palette    Palette
}

// NewRenderer creates a renderer whose cells are cellWidth x cellHeight
// backend units.
func NewRenderer(cellWidth, cellHeight int, palette Palette) *Renderer {
	return &Renderer{
		cellWidth:  cellWidth,
		cellHeight: cellHeight,
		palette:    palette,
	}
}

// SetOffset shifts the grid origin inside the backend surface.
func (r *Renderer) SetOffset(x, y int) {
	r.offsetX = x
	r.offsetY = y
}

// Draw renders one frame: background, snake (head first), then food.
func (r *Renderer) Draw(b Backend, g *game.Game) {
	b.BeginFrame()
	b.Clear(r.palette.Background)

	for i, p := range g.Snake().Body() {
		c := r.palette.Body
		if i == 0 {
			c = r.palette.Head
		}
		r.fillCell(b, p.X, p.Y, c)
	}

	food := g.Food().Position
	r.fillCell(b, food.X, food.Y, r.palette.Food)

	b.EndFrame()
}

func (r *Renderer) fillCell(b Backend, x, y int, c color.RGBA) {
	b.FillRect(
		r.offsetX+x*r.cellWidth,
		r.offsetY+y*r.cellHeight,
		r.cellWidth, r.cellHeight, c)
}
