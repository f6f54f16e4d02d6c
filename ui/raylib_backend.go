package ui

import (
	"errors"
	"image/color"

	rl "github.com/gen2brain/raylib-go/raylib"

	"torus-snake/game/types"
)

// ErrWindowInit is returned when raylib fails to open a window.
var ErrWindowInit = errors.New("window initialization failed")

var raylibKeys = map[int32]types.Direction{
	rl.KeyUp:    types.Up,
	rl.KeyDown:  types.Down,
	rl.KeyLeft:  types.Left,
	rl.KeyRight: types.Right,
}

// RaylibBackend draws into a native window through raylib.
type RaylibBackend struct{}

// NewRaylibBackend opens a width x height window and sets the frame rate
// target used by EndFrame.
func NewRaylibBackend(width, height int, title string, fps int) (*RaylibBackend, error) {
	rl.SetTraceLogLevel(rl.LogWarning)
	rl.InitWindow(int32(width), int32(height), title)
	if !rl.IsWindowReady() {
		return nil, ErrWindowInit
	}
	rl.SetTargetFPS(int32(fps))
	return &RaylibBackend{}, nil
}

func (b *RaylibBackend) ShouldClose() bool {
	return rl.WindowShouldClose()
}

func (b *RaylibBackend) PollDirection() (types.Direction, bool) {
	var (
		dir types.Direction
		ok  bool
	)
	// Keys queue up in press order; the last arrow key wins.
	for key := rl.GetKeyPressed(); key != 0; key = rl.GetKeyPressed() {
		if d, known := raylibKeys[key]; known {
			dir, ok = d, true
		}
	}
	return dir, ok
}

func (b *RaylibBackend) BeginFrame() {
	rl.BeginDrawing()
}

func (b *RaylibBackend) Clear(c color.RGBA) {
	rl.ClearBackground(rl.NewColor(c.R, c.G, c.B, c.A))
}

func (b *RaylibBackend) FillRect(x, y, w, h int, c color.RGBA) {
	rl.DrawRectangle(int32(x), int32(y), int32(w), int32(h), rl.NewColor(c.R, c.G, c.B, c.A))
}

func (b *RaylibBackend) EndFrame() {
	rl.EndDrawing()
}

func (b *RaylibBackend) Close() error {
	rl.CloseWindow()
	return nil
}
