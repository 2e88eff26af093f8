package board

import "fmt"

// Attribute is the primary part of a shape tag.
type Attribute string

const (
	Head Attribute = "head"
	Body Attribute = "body"
	Tail Attribute = "tail"
	Food Attribute = "food"
)

// Bend is the secondary part of a shape tag: how the chain turns at a node.
type Bend string

const (
	Straight  Bend = "straight"
	BendLeft  Bend = "left"
	BendRight Bend = "right"
	NoBend    Bend = "none"
)

// Attributes lists every attribute in a fixed order.
var Attributes = []Attribute{Head, Body, Tail, Food}

// Bends lists every bend in a fixed order.
var Bends = []Bend{Straight, BendLeft, BendRight, NoBend}

// VariantKey selects a family of interchangeable images.
type VariantKey struct {
	Attribute Attribute
	Bend      Bend
}

// Key is shorthand for VariantKey{a, b}.
func Key(a Attribute, b Bend) VariantKey {
	return VariantKey{Attribute: a, Bend: b}
}

func (k VariantKey) String() string {
	return fmt.Sprintf("%s/%s", k.Attribute, k.Bend)
}

// ParseAttribute validates an attribute name.
func ParseAttribute(s string) (Attribute, error) {
	for _, a := range Attributes {
		if string(a) == s {
			return a, nil
		}
	}
	return "", fmt.Errorf("unknown attribute %q", s)
}

// ParseBend validates a bend name.
func ParseBend(s string) (Bend, error) {
	for _, b := range Bends {
		if string(b) == s {
			return b, nil
		}
	}
	return "", fmt.Errorf("unknown bend %q", s)
}

// LiveKeys lists every key a snake board can produce.
func LiveKeys() []VariantKey {
	return []VariantKey{
		Key(Head, Straight),
		Key(Body, Straight),
		Key(Body, BendLeft),
		Key(Body, BendRight),
		Key(Tail, Straight),
		Key(Food, NoBend),
	}
}
