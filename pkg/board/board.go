// Package board defines the contract between a grid game model and the
// renderer that draws it.
//
// The renderer never decides what the board contains. It reads a Size, a
// flat enumeration of Nodes and an orientation table, and it sends Orient
// intents back when a directional key is pressed.
package board

import (
	"fmt"
	"image"
	"sort"
)

// Size is a board extent in grid cells.
type Size struct {
	W int
	H int
}

// Valid reports whether both dimensions are positive.
func (s Size) Valid() bool {
	return s.W > 0 && s.H > 0
}

// Contains reports whether p lies on the board.
func (s Size) Contains(p image.Point) bool {
	return p.X >= 0 && p.Y >= 0 && p.X < s.W && p.Y < s.H
}

func (s Size) String() string {
	return fmt.Sprintf("%dx%d", s.W, s.H)
}

// Node is one occupied grid cell.
//
// Seed is assigned when the node is created and must never change, so that
// repeated redraws of an unchanged node pick the same visual variant.
type Node struct {
	Pos    image.Point
	Facing Facing
	Key    VariantKey
	Seed   uint32
}

// NodeMap groups nodes by an arbitrary key (a snake id, "food", a row).
type NodeMap map[string][]Node

// Flatten enumerates every node. Groups are visited in sorted key order
// and nodes in slice order, so the result is stable between redraws.
func (m NodeMap) Flatten() []Node {
	keys := make([]string, 0, len(m))
	n := 0
	for k, nodes := range m {
		keys = append(keys, k)
		n += len(nodes)
	}
	sort.Strings(keys)

	out := make([]Node, 0, n)
	for _, k := range keys {
		out = append(out, m[k]...)
	}
	return out
}

// Board is the read side of a game model plus its single input intent.
//
// Implementations must keep live nodes on distinct cells during a redraw.
// If two nodes do share a cell the one enumerated last is drawn on top.
type Board interface {
	// Size returns the board extent in grid cells.
	Size() Size
	// Nodes returns every live node.
	Nodes() []Node
	// OrientationAngle maps a facing to a rotation in degrees.
	OrientationAngle(f Facing) float64
	// Orient records a steering intent from the player.
	Orient(d Direction)
	// OnSizeChanged registers fn to be called after the board is resized.
	// The returned func removes the registration.
	OnSizeChanged(fn func(Size)) (cancel func())
}
