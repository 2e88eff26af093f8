package board

import "image"

// Facing is one of the four cardinal orientations of a node.
type Facing int

const (
	Up Facing = iota
	Right
	Down
	Left
)

// Direction is a steering intent. It shares the Facing value set.
type Direction = Facing

var facingNames = map[Facing]string{
	Up:    "up",
	Right: "right",
	Down:  "down",
	Left:  "left",
}

func (f Facing) String() string {
	if name, ok := facingNames[f]; ok {
		return name
	}
	return "invalid"
}

// Angle is the fixed orientation table: Up=0, Right=90, Down=180, Left=270
// degrees, clockwise on a y-down surface.
func Angle(f Facing) float64 {
	switch f {
	case Right:
		return 90
	case Down:
		return 180
	case Left:
		return 270
	default:
		return 0
	}
}

// Delta returns the one-cell step for f in y-down grid coordinates.
func (f Facing) Delta() image.Point {
	switch f {
	case Up:
		return image.Pt(0, -1)
	case Right:
		return image.Pt(1, 0)
	case Down:
		return image.Pt(0, 1)
	case Left:
		return image.Pt(-1, 0)
	}
	return image.Point{}
}

// Opposite returns the reverse orientation.
func (f Facing) Opposite() Facing {
	return (f + 2) % 4
}

// Turn classifies the change of heading from f to next.
func (f Facing) Turn(next Facing) Bend {
	switch (next - f + 4) % 4 {
	case 0:
		return Straight
	case 1:
		return BendRight
	case 3:
		return BendLeft
	}
	// A reversal cannot happen on a connected chain.
	return NoBend
}

// FacingOf returns the orientation pointing from a to an adjacent cell b.
func FacingOf(a, b image.Point) (Facing, bool) {
	switch b.Sub(a) {
	case image.Pt(0, -1):
		return Up, true
	case image.Pt(1, 0):
		return Right, true
	case image.Pt(0, 1):
		return Down, true
	case image.Pt(-1, 0):
		return Left, true
	}
	return Up, false
}
