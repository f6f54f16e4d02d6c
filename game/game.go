package game

import (
	"torus-snake/game/entity"
	"torus-snake/game/manager"
	"torus-snake/game/types"
)

// DefaultTickDivisor is the number of frames between two snake ticks.
const DefaultTickDivisor = 6

// State is the lifecycle state of a game.
type State int

const (
	Running State = iota
	Terminated
)

func (s State) String() string {
	switch s {
	case Running:
		return "running"
	case Terminated:
		return "terminated"
	default:
		return "unknown"
	}
}

// Input is the direction request sampled for one frame.
type Input struct {
	Direction types.Direction
	Pressed   bool
}

// Press builds the Input for a single direction key press.
func Press(d types.Direction) Input {
	return Input{Direction: d, Pressed: true}
}

// Result describes what happened during one frame.
type Result struct {
	State     State
	Ticked    bool
	Ate       bool
	Collision manager.CollisionType
}

// Options configures a new Game. Zero values select the defaults.
type Options struct {
	Grid        types.Grid
	TickDivisor int
	Rand        entity.Rand
	// Snake replaces the default three-cell starting snake.
	Snake *entity.Snake
}

type Game struct {
	Grid         types.Grid
	snake        *entity.Snake
	foodMgr      *manager.FoodManager
	collisionMgr *manager.CollisionManager
	frame        uint64
	tickDivisor  int
	state        State
}

// New creates a running game. Options.Rand is required.
func New(opts Options) *Game {
	grid := opts.Grid
	if grid.Width <= 0 || grid.Height <= 0 {
		grid = types.NewSquareGrid(types.DefaultGridSize)
	}
	divisor := opts.TickDivisor
	if divisor <= 0 {
		divisor = DefaultTickDivisor
	}
	snake := opts.Snake
	if snake == nil {
		snake = entity.NewDefaultSnake(grid)
	}

	return &Game{
		Grid:         grid,
		snake:        snake,
		foodMgr:      manager.NewFoodManager(grid, opts.Rand),
		collisionMgr: manager.NewCollisionManager(grid),
		tickDivisor:  divisor,
		state:        Running,
	}
}

// Update advances the game by one frame: apply input, tick on every
// tickDivisor-th frame, stop on self-collision, then feed.
func (g *Game) Update(in Input) Result {
	if g.state == Terminated {
		return Result{State: Terminated}
	}

	var res Result
	if in.Pressed {
		g.snake.SetNextDirection(in.Direction)
	}

	if g.frame%uint64(g.tickDivisor) == 0 {
		g.snake.Tick()
		res.Ticked = true
	}

	if c := g.collisionMgr.CheckCollision(g.snake); c != manager.NoCollision {
		g.state = Terminated
		res.State = Terminated
		res.Collision = c
		return res
	}

	if g.collisionMgr.IsFoodCollision(g.snake.Head(), g.foodMgr.Food()) {
		g.foodMgr.Consume()
		g.snake.Grow()
		res.Ate = true
	}

	g.frame++
	res.State = g.state
	return res
}

func (g *Game) Snake() *entity.Snake {
	return g.snake
}

func (g *Game) Food() entity.Food {
	return g.foodMgr.Food()
}

// PlaceFood moves the food to pos.
func (g *Game) PlaceFood(pos types.Point) {
	g.foodMgr.Place(pos)
}

func (g *Game) State() State {
	return g.state
}

// Frame returns the number of completed frames.
func (g *Game) Frame() uint64 {
	return g.frame
}

func (g *Game) TickDivisor() int {
	return g.tickDivisor
}
