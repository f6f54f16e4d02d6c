package game

import (
	"reflect"
	"testing"

	"golang.org/x/exp/rand"

	"torus-snake/game/entity"
	"torus-snake/game/manager"
	"torus-snake/game/types"
)

var grid = types.NewSquareGrid(types.DefaultGridSize)

type scriptedRand struct {
	values []int
}

func (r *scriptedRand) Intn(n int) int {
	if len(r.values) == 0 {
		return 0
	}
	v := r.values[0] % n
	r.values = r.values[1:]
	return v
}

func newTestGame(snake *entity.Snake, rng entity.Rand) *Game {
	return New(Options{
		Grid:        grid,
		TickDivisor: DefaultTickDivisor,
		Rand:        rng,
		Snake:       snake,
	})
}

func TestNewDefaults(t *testing.T) {
	g := New(Options{Rand: rand.New(rand.NewSource(7))})

	if g.Grid != grid {
		t.Errorf("grid = %+v, want %+v", g.Grid, grid)
	}
	if g.TickDivisor() != DefaultTickDivisor {
		t.Errorf("tick divisor = %d, want %d", g.TickDivisor(), DefaultTickDivisor)
	}
	if g.State() != Running {
		t.Errorf("state = %v, want running", g.State())
	}
	if !grid.Contains(g.Food().Position) {
		t.Errorf("food %v off grid", g.Food().Position)
	}
	want := []types.Point{{4, 10}, {3, 10}, {2, 10}}
	if got := g.Snake().Body(); !reflect.DeepEqual(got, want) {
		t.Errorf("snake = %v, want %v", got, want)
	}
}

func TestTickCadenceIsFrameRelative(t *testing.T) {
	g := newTestGame(nil, &scriptedRand{values: []int{0, 0}})

	var ticks []uint64
	for i := 0; i < 19; i++ {
		frame := g.Frame()
		if res := g.Update(Input{}); res.Ticked {
			ticks = append(ticks, frame)
		}
	}

	want := []uint64{0, 6, 12, 18}
	if !reflect.DeepEqual(ticks, want) {
		t.Errorf("ticked on frames %v, want %v", ticks, want)
	}
	if g.Snake().Head() != (types.Point{8, 10}) {
		t.Errorf("head = %v, want (8,10)", g.Snake().Head())
	}
}

func TestFirstFrameTicks(t *testing.T) {
	g := newTestGame(nil, &scriptedRand{values: []int{0, 0}})
	g.Update(Input{})

	want := []types.Point{{5, 10}, {4, 10}, {3, 10}}
	if got := g.Snake().Body(); !reflect.DeepEqual(got, want) {
		t.Errorf("body = %v, want %v", got, want)
	}
}

func TestInputBetweenTicksLatestWins(t *testing.T) {
	g := newTestGame(nil, &scriptedRand{values: []int{0, 0}})
	g.Update(Input{})

	g.Update(Press(types.Up))
	g.Update(Press(types.Down))
	g.Update(Input{})
	if g.Snake().Direction() != types.Right {
		t.Fatalf("direction changed before the tick: %v", g.Snake().Direction())
	}

	for g.Frame()%uint64(g.TickDivisor()) != 0 {
		g.Update(Input{})
	}
	g.Update(Input{})

	if g.Snake().Direction() != types.Down {
		t.Errorf("direction = %v, want down", g.Snake().Direction())
	}
	if g.Snake().Head() != (types.Point{5, 11}) {
		t.Errorf("head = %v, want (5,11)", g.Snake().Head())
	}
}

func TestReversalPressIgnored(t *testing.T) {
	g := newTestGame(nil, &scriptedRand{values: []int{0, 0}})

	res := g.Update(Press(types.Left))
	if !res.Ticked {
		t.Fatal("frame 0 should tick")
	}
	if g.Snake().Direction() != types.Right {
		t.Errorf("direction = %v, want right", g.Snake().Direction())
	}
	if res.State != Running {
		t.Errorf("state = %v, want running", res.State)
	}
}

func TestFeedingOnNonTickFrame(t *testing.T) {
	snake := entity.NewSnake(grid, []types.Point{{2, 3}, {1, 3}, {0, 3}}, types.Right)
	g := newTestGame(snake, &scriptedRand{values: []int{15, 15, 10, 12}})

	// Frame 0 ticks the head onto (3,3).
	g.Update(Input{})
	g.PlaceFood(types.Point{3, 3})

	res := g.Update(Input{})
	if !res.Ate {
		t.Fatal("expected the snake to eat")
	}
	if res.Ticked {
		t.Error("frame 1 should not tick")
	}
	if g.Food().Position == (types.Point{3, 3}) {
		t.Error("food was not respawned")
	}
	if g.Food().Position != (types.Point{10, 12}) {
		t.Errorf("food = %v, want (10,12)", g.Food().Position)
	}
	if g.Snake().Len() != 3 {
		t.Errorf("length grew before the next tick: %d", g.Snake().Len())
	}

	for !g.Update(Input{}).Ticked {
	}
	if g.Snake().Len() != 4 {
		t.Errorf("length after next tick = %d, want 4", g.Snake().Len())
	}
}

func TestFeedingOnTickFrame(t *testing.T) {
	snake := entity.NewSnake(grid, []types.Point{{2, 3}, {1, 3}, {0, 3}}, types.Right)
	g := newTestGame(snake, &scriptedRand{values: []int{3, 3, 9, 9}})

	res := g.Update(Input{})
	if !res.Ticked || !res.Ate {
		t.Fatalf("result = %+v, want ticked and ate", res)
	}
	if g.Food().Position != (types.Point{9, 9}) {
		t.Errorf("food = %v, want (9,9)", g.Food().Position)
	}

	for i := 1; i < DefaultTickDivisor; i++ {
		g.Update(Input{})
	}
	if g.Snake().Len() != 3 {
		t.Fatalf("length = %d before the second tick, want 3", g.Snake().Len())
	}
	g.Update(Input{})
	if g.Snake().Len() != 4 {
		t.Errorf("length = %d after the second tick, want 4", g.Snake().Len())
	}
}

func TestSelfCollisionTerminates(t *testing.T) {
	snake := entity.NewSnake(grid, []types.Point{
		{5, 5}, {4, 5}, {3, 5}, {3, 6}, {4, 6}, {5, 6}, {6, 6},
	}, types.Right)
	g := newTestGame(snake, &scriptedRand{values: []int{0, 0}})

	res := g.Update(Press(types.Down))
	if res.State != Terminated {
		t.Fatalf("state = %v, want terminated", res.State)
	}
	if res.Collision != manager.SelfCollision {
		t.Errorf("collision = %v, want self", res.Collision)
	}
	if g.Frame() != 0 {
		t.Errorf("frame advanced to %d on a terminating frame", g.Frame())
	}

	body := g.Snake().Body()
	res = g.Update(Press(types.Up))
	if res.State != Terminated || res.Ticked {
		t.Errorf("terminated game kept running: %+v", res)
	}
	if !reflect.DeepEqual(g.Snake().Body(), body) {
		t.Error("terminated game moved the snake")
	}
}

func TestLongRunKeepsInvariants(t *testing.T) {
	g := New(Options{Rand: rand.New(rand.NewSource(42))})
	turns := []types.Direction{types.Up, types.Left, types.Down, types.Right}

	length := g.Snake().Len()
	owed := 0
	for i := 0; i < 600 && g.State() == Running; i++ {
		in := Input{}
		if i%25 == 0 {
			in = Press(turns[(i/25)%len(turns)])
		}
		res := g.Update(in)
		if res.State == Terminated {
			break
		}
		if res.Ticked {
			if owed > 0 {
				length++
				owed--
			}
			if g.Snake().Len() != length {
				t.Fatalf("frame %d: length = %d, want %d", i, g.Snake().Len(), length)
			}
		}
		if res.Ate {
			owed++
		}
		for _, p := range g.Snake().Body() {
			if !g.Grid.Contains(p) {
				t.Fatalf("frame %d: cell %v off grid", i, p)
			}
		}
	}
}
