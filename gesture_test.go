package maskedit

import "testing"

func TestCapture(t *testing.T) {
	var c capture
	c.add(Point{1, 1})
	if len(c.points) != 0 {
		t.Error("point added while idle")
	}
	if g := c.end(); g != nil {
		t.Errorf("end while idle returned %v", g)
	}

	c.begin(Point{1, 2})
	c.add(Point{3, 4})
	c.add(Point{5, 6})
	if c.state != stateActive {
		t.Fatalf("state %d", c.state)
	}
	if got := c.live(); len(got) != 3 {
		t.Errorf("live gesture has %d points", len(got))
	}

	g := c.end()
	want := Gesture{{1, 2}, {3, 4}, {5, 6}}
	if len(g) != len(want) {
		t.Fatalf("got %v, expected %v", g, want)
	}
	for i := range want {
		if g[i] != want[i] {
			t.Errorf("point %d: got %v, expected %v", i, g[i], want[i])
		}
	}
	if c.state != stateIdle || c.live() != nil {
		t.Error("capture not idle after end")
	}

	// the returned gesture does not share storage with the next one
	c.begin(Point{9, 9})
	if g[0] != (Point{1, 2}) {
		t.Error("committed gesture was overwritten")
	}
}

func TestGestureCommittable(t *testing.T) {
	cases := []struct {
		g    Gesture
		want bool
	}{
		{nil, false},
		{Gesture{{1, 1}}, false},
		{Gesture{{1, 1}, {1, 1}}, true},
		{Gesture{{1, 1}, {2, 2}, {3, 1}}, true},
	}
	for _, c := range cases {
		if got := c.g.Committable(); got != c.want {
			t.Errorf("%v: got %t", c.g, got)
		}
	}
}

func TestDimensions(t *testing.T) {
	if (Dimensions{}).Known() || (Dimensions{Width: 10}).Known() {
		t.Error("partial dimensions reported as known")
	}
	d := Dimensions{Width: 10, Height: 4}
	if !d.Known() || d.Rect().Dx() != 10 || d.Rect().Dy() != 4 {
		t.Errorf("Rect() = %v", d.Rect())
	}
	if !(Dimensions{Width: -1, Height: 4}).Rect().Empty() {
		t.Error("negative dimensions give a non-empty rectangle")
	}
}
