package snake

import "testing"

func TestResolveBoundaryWrapping(t *testing.T) {
	g := Grid{Side: 30}

	cases := []struct {
		name string
		in   Position
		want Position
	}{
		{"left edge", Position{X: -1, Y: 7}, Position{X: 29, Y: 7}},
		{"right edge", Position{X: 30, Y: 7}, Position{X: 0, Y: 7}},
		{"top edge", Position{X: 4, Y: -1}, Position{X: 4, Y: 29}},
		{"bottom edge", Position{X: 4, Y: 30}, Position{X: 4, Y: 0}},
		{"inside", Position{X: 12, Y: 3}, Position{X: 12, Y: 3}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := g.ResolveBoundary(tc.in, Wrapping)
			if !ok {
				t.Fatalf("ResolveBoundary(%v, Wrapping) reported collision", tc.in)
			}
			if got != tc.want {
				t.Errorf("ResolveBoundary(%v, Wrapping) = %v, expected %v", tc.in, got, tc.want)
			}
		})
	}
}

func TestResolveBoundaryBounded(t *testing.T) {
	g := Grid{Side: 30}

	for _, p := range []Position{{X: -1, Y: 0}, {X: 30, Y: 0}, {X: 0, Y: -1}, {X: 0, Y: 30}} {
		if _, ok := g.ResolveBoundary(p, Bounded); ok {
			t.Errorf("ResolveBoundary(%v, Bounded) should signal a collision", p)
		}
	}

	in := Position{X: 29, Y: 29}
	if got, ok := g.ResolveBoundary(in, Bounded); !ok || got != in {
		t.Errorf("ResolveBoundary(%v, Bounded) = %v, %v; expected unchanged", in, got, ok)
	}
}

func TestGridCenter(t *testing.T) {
	if c := (Grid{Side: 30}).Center(); c != (Position{X: 15, Y: 15}) {
		t.Errorf("Center() = %v, expected (15,15)", c)
	}
	if c := (Grid{Side: 5}).Center(); c != (Position{X: 2, Y: 2}) {
		t.Errorf("Center() = %v, expected (2,2)", c)
	}
}

func TestBoundaryModeToggle(t *testing.T) {
	if Bounded.Toggle() != Wrapping || Wrapping.Toggle() != Bounded {
		t.Error("Toggle should flip between bounded and wrapping")
	}
}
