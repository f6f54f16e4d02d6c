package ui

import (
	"image/color"

	"torus-snake/game/types"
)

// Backend is the window, input and drawing facility the game runs on.
// Coordinates passed to FillRect are in backend units: pixels for a
// window, character cells for a terminal.
type Backend interface {
	// ShouldClose reports whether the user asked to quit.
	ShouldClose() bool
	// PollDirection returns the most recent direction key pressed since the
	// previous call. Other keys are ignored.
	PollDirection() (types.Direction, bool)
	BeginFrame()
	Clear(c color.RGBA)
	FillRect(x, y, w, h int, c color.RGBA)
	// EndFrame presents the frame and waits for the frame governor.
	EndFrame()
	Close() error
}

// Palette holds the colors used to draw a frame.
type Palette struct {
	Background color.RGBA
	Head       color.RGBA
	Body       color.RGBA
	Food       color.RGBA
}

// DefaultPalette matches raylib's Gray, Green, RayWhite and Red.
func DefaultPalette() Palette {
	return Palette{
		Background: color.RGBA{R: 130, G: 130, B: 130, A: 255},
		Head:       color.RGBA{R: 0, G: 228, B: 48, A: 255},
		Body:       color.RGBA{R: 245, G: 245, B: 245, A: 255},
		Food:       color.RGBA{R: 230, G: 41, B: 55, A: 255},
	}
}
