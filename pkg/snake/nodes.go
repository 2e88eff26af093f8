package snake

import "github.com/OpenTraceLab/gridcanvas/pkg/board"

const (
	groupSnake = "snake"
	groupFood  = "food"
)

// NodeMap groups the live nodes into "snake" (head first) and "food".
func (g *Game) NodeMap() board.NodeMap {
	m := board.NodeMap{groupSnake: g.snakeNodes()}
	if g.food != nil {
		m[groupFood] = []board.Node{{
			Pos:    g.food.pos,
			Facing: g.food.facing,
			Key:    board.Key(board.Food, board.NoBend),
			Seed:   g.food.seed,
		}}
	}
	return m
}

// Nodes implements board.Board.
func (g *Game) Nodes() []board.Node {
	return g.NodeMap().Flatten()
}

// snakeNodes tags each segment. A body segment faces the way the snake
// entered it and bends toward the segment nearer the head; the tail faces
// its neighbour.
func (g *Game) snakeNodes() []board.Node {
	nodes := make([]board.Node, len(g.body))
	last := len(g.body) - 1
	for i, s := range g.body {
		n := board.Node{Pos: s.pos, Facing: s.facing, Seed: s.seed}
		switch {
		case i == 0:
			n.Key = board.Key(board.Head, board.Straight)
		case i == last:
			n.Facing = g.body[i-1].facing
			n.Key = board.Key(board.Tail, board.Straight)
		default:
			n.Key = board.Key(board.Body, s.facing.Turn(g.body[i-1].facing))
		}
		nodes[i] = n
	}
	return nodes
}
