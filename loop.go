package main

import (
	"log"

	"torus-snake/game"
	"torus-snake/ui"
)

// player is anything that can sound the eat chime.
type player interface {
	Play()
}

// run drives the frame loop until the window closes or the snake bites
// itself. A terminating frame is not drawn.
func run(b ui.Backend, g *game.Game, r *ui.Renderer, sound player, logger *log.Logger) game.State {
	for !b.ShouldClose() {
		var in game.Input
		if d, ok := b.PollDirection(); ok {
			in = game.Press(d)
		}

		res := g.Update(in)
		if res.State == game.Terminated {
			logger.Printf("game over: %s collision at %v, length %d, frame %d",
				res.Collision, g.Snake().Head(), g.Snake().Len(), g.Frame())
			return game.Terminated
		}
		if res.Ate {
			logger.Printf("food eaten at frame %d, next food at %v", g.Frame(), g.Food().Position)
			sound.Play()
		}

		r.Draw(b, g)
	}

	logger.Printf("window closed at frame %d", g.Frame())
	return g.State()
}
