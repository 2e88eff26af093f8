// Package snake is a reference board model: one snake and one food item on
// a fixed grid. It implements board.Board so the renderer can draw it.
package snake

import (
	"errors"
	"image"
	"math/rand/v2"

	"github.com/OpenTraceLab/gridcanvas/pkg/board"
)

// ErrGameOver is returned by Step once the snake has crashed.
var ErrGameOver = errors.New("snake: game over")

// DefaultSize is the classic 20x20 playfield.
var DefaultSize = board.Size{W: 20, H: 20}

// State is the outcome of a step.
type State int

const (
	StateRunning State = iota
	StateAte
	StateOver
)

func (s State) String() string {
	switch s {
	case StateAte:
		return "ate"
	case StateOver:
		return "over"
	default:
		return "running"
	}
}

// segment is one cell of the snake. seed is fixed at creation.
type segment struct {
	pos    image.Point
	facing board.Facing
	seed   uint32
}

// Game is a snake board. It is not safe for concurrent use.
type Game struct {
	size    board.Size
	rng     *rand.Rand
	body    []segment // body[0] is the head
	heading board.Facing
	pending []board.Direction
	food    *segment
	grow    int
	over    bool
	score   int

	observers board.Observers
}

// Option configures a new Game.
type Option func(*Game)

// WithSeed makes food placement and node seeds reproducible.
func WithSeed(seed uint64) Option {
	return func(g *Game) {
		g.rng = rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	}
}

// WithLength sets the initial snake length (minimum 2).
func WithLength(n int) Option {
	return func(g *Game) {
		if n < 2 {
			n = 2
		}
		g.grow = n
	}
}

// New starts a game on a board of the given size. The snake is placed in
// the middle row heading right.
func New(size board.Size, opts ...Option) (*Game, error) {
	if !size.Valid() || size.W < 3 {
		return nil, errors.New("snake: board must be at least 3 cells wide")
	}
	g := &Game{
		size:    size,
		heading: board.Right,
		grow:    3,
	}
	for _, opt := range opts {
		opt(g)
	}
	if g.rng == nil {
		g.rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}

	length := min(g.grow, size.W)
	g.grow = 0
	start := image.Pt(size.W/2, size.H/2)
	for i := 0; i < length; i++ {
		p := start.Sub(image.Pt(i, 0))
		if p.X < 0 {
			break
		}
		g.body = append(g.body, g.newSegment(p, board.Right))
	}
	g.placeFood()
	return g, nil
}

func (g *Game) newSegment(p image.Point, f board.Facing) segment {
	return segment{pos: p, facing: f, seed: g.rng.Uint32()}
}

// Size implements board.Board.
func (g *Game) Size() board.Size { return g.size }

// OrientationAngle implements board.Board.
func (g *Game) OrientationAngle(f board.Facing) float64 { return board.Angle(f) }

// OnSizeChanged implements board.Board.
func (g *Game) OnSizeChanged(fn func(board.Size)) func() {
	return g.observers.Add(fn)
}

// Orient queues a turn for the next step. Reversing onto the neck is
// ignored, as is repeating the current heading.
func (g *Game) Orient(d board.Direction) {
	last := g.heading
	if n := len(g.pending); n > 0 {
		last = g.pending[n-1]
	}
	if d == last || d == last.Opposite() {
		return
	}
	// Two queued turns are enough to follow fast key presses.
	if len(g.pending) >= 2 {
		return
	}
	g.pending = append(g.pending, d)
}

// Heading returns the current direction of travel.
func (g *Game) Heading() board.Facing { return g.heading }

// Score is the number of food items eaten.
func (g *Game) Score() int { return g.score }

// Over reports whether the snake has crashed.
func (g *Game) Over() bool { return g.over }

// Len returns the snake length.
func (g *Game) Len() int { return len(g.body) }

// HeadPos returns the head cell.
func (g *Game) HeadPos() image.Point { return g.body[0].pos }

// FoodPos returns the food cell; ok is false when the board is full.
func (g *Game) FoodPos() (image.Point, bool) {
	if g.food == nil {
		return image.Point{}, false
	}
	return g.food.pos, true
}

// Step advances the snake by one cell.
func (g *Game) Step() (State, error) {
	if g.over {
		return StateOver, ErrGameOver
	}
	if len(g.pending) > 0 {
		g.heading = g.pending[0]
		g.pending = g.pending[1:]
	}

	next := g.body[0].pos.Add(g.heading.Delta())
	if !g.size.Contains(next) || g.occupiedBySnake(next) {
		g.over = true
		return StateOver, nil
	}

	state := StateRunning
	if g.food != nil && g.food.pos == next {
		g.food = nil
		g.grow++
		g.score++
		state = StateAte
	}

	g.body = append([]segment{g.newSegment(next, g.heading)}, g.body...)
	if g.grow > 0 {
		g.grow--
	} else {
		g.body = g.body[:len(g.body)-1]
	}
	if g.food == nil {
		g.placeFood()
	}
	return state, nil
}

// occupiedBySnake ignores the tail cell, which moves away this step
// unless the snake is growing.
func (g *Game) occupiedBySnake(p image.Point) bool {
	last := len(g.body) - 1
	for i, s := range g.body {
		if i == last && g.grow == 0 {
			continue
		}
		if s.pos == p {
			return true
		}
	}
	return false
}

func (g *Game) placeFood() {
	free := make([]image.Point, 0, g.size.W*g.size.H)
	taken := make(map[image.Point]bool, len(g.body))
	for _, s := range g.body {
		taken[s.pos] = true
	}
	for y := 0; y < g.size.H; y++ {
		for x := 0; x < g.size.W; x++ {
			p := image.Pt(x, y)
			if !taken[p] {
				free = append(free, p)
			}
		}
	}
	if len(free) == 0 {
		g.food = nil
		return
	}
	f := g.newSegment(free[g.rng.IntN(len(free))], board.Up)
	g.food = &f
}

// Resize changes the board extent. Segments that fall outside the new
// bounds are clamped to its edge and end the game; food outside the bounds
// is placed again. Size observers are notified in every case.
func (g *Game) Resize(size board.Size) error {
	if !size.Valid() {
		return errors.New("snake: invalid board size " + size.String())
	}
	g.size = size
	for i := range g.body {
		if size.Contains(g.body[i].pos) {
			continue
		}
		g.body[i].pos = clampPoint(g.body[i].pos, size)
		g.over = true
	}
	if g.food != nil && !size.Contains(g.food.pos) {
		g.placeFood()
	}
	g.observers.Notify(size)
	return nil
}

func clampPoint(p image.Point, size board.Size) image.Point {
	return image.Pt(min(max(p.X, 0), size.W-1), min(max(p.Y, 0), size.H-1))
}
