package board

import (
	"image"
	"testing"
)

func TestAngleTable(t *testing.T) {
	tests := []struct {
		f    Facing
		want float64
	}{
		{Up, 0},
		{Right, 90},
		{Down, 180},
		{Left, 270},
	}
	for _, tt := range tests {
		if got := Angle(tt.f); got != tt.want {
			t.Fatalf("Angle(%s) = %v, want %v", tt.f, got, tt.want)
		}
	}
}

func TestTurn(t *testing.T) {
	tests := []struct {
		from, to Facing
		want     Bend
	}{
		{Up, Up, Straight},
		{Up, Right, BendRight},
		{Up, Left, BendLeft},
		{Left, Up, BendRight},
		{Right, Up, BendLeft},
		{Down, Up, NoBend},
	}
	for _, tt := range tests {
		if got := tt.from.Turn(tt.to); got != tt.want {
			t.Fatalf("%s.Turn(%s) = %s, want %s", tt.from, tt.to, got, tt.want)
		}
	}
}

func TestFacingOfRoundTrip(t *testing.T) {
	origin := image.Pt(5, 5)
	for _, f := range []Facing{Up, Right, Down, Left} {
		got, ok := FacingOf(origin, origin.Add(f.Delta()))
		if !ok || got != f {
			t.Fatalf("FacingOf(delta %s) = %s,%v", f, got, ok)
		}
		if f.Opposite().Opposite() != f {
			t.Fatalf("double Opposite of %s changed value", f)
		}
	}
	if _, ok := FacingOf(origin, image.Pt(7, 5)); ok {
		t.Fatal("FacingOf should reject non-adjacent cells")
	}
}

func TestNodeMapFlattenIsStable(t *testing.T) {
	m := NodeMap{
		"snake": {{Pos: image.Pt(1, 1)}, {Pos: image.Pt(2, 1)}},
		"food":  {{Pos: image.Pt(9, 9)}},
	}
	first := m.Flatten()
	if len(first) != 3 {
		t.Fatalf("got %d nodes, want 3", len(first))
	}
	if first[0].Pos != image.Pt(9, 9) {
		t.Fatalf("groups should be visited in sorted order, first = %v", first[0].Pos)
	}
	for i := 0; i < 10; i++ {
		again := m.Flatten()
		for j := range first {
			if again[j] != first[j] {
				t.Fatalf("iteration %d: node %d = %+v, want %+v", i, j, again[j], first[j])
			}
		}
	}
}

func TestObservers(t *testing.T) {
	var obs Observers
	var calls []string

	cancelA := obs.Add(func(s Size) { calls = append(calls, "a:"+s.String()) })
	obs.Add(func(s Size) { calls = append(calls, "b:"+s.String()) })

	obs.Notify(Size{W: 3, H: 4})
	cancelA()
	cancelA()
	obs.Notify(Size{W: 5, H: 6})

	want := []string{"a:3x4", "b:3x4", "b:5x6"}
	if len(calls) != len(want) {
		t.Fatalf("calls = %v, want %v", calls, want)
	}
	for i := range want {
		if calls[i] != want[i] {
			t.Fatalf("calls[%d] = %s, want %s", i, calls[i], want[i])
		}
	}
	if obs.Len() != 1 {
		t.Fatalf("Len = %d, want 1", obs.Len())
	}
}

func TestParseKeyParts(t *testing.T) {
	if _, err := ParseAttribute("head"); err != nil {
		t.Fatalf("ParseAttribute(head): %v", err)
	}
	if _, err := ParseAttribute("wing"); err == nil {
		t.Fatal("ParseAttribute(wing) should fail")
	}
	if b, err := ParseBend("left"); err != nil || b != BendLeft {
		t.Fatalf("ParseBend(left) = %s, %v", b, err)
	}
}
