package scenarios

import (
	"math"

	"seehuhn.de/go/geom/vec"
)

var swathScenarios = []Scenario{
	{
		// A vertical bar, 10 samples wide, with round ends.
		Name:   "scenario_a",
		Width:  800,
		Height: 600,
		Policy: "swath",
		Brush:  10,
		Steps: []Step{
			{Gesture: line(100, 100, 100, 200)},
		},
		Expect: Expect{
			Painted:    samples(100, 100, 100, 150, 100, 200, 96, 150, 103, 150, 100, 96, 100, 203),
			Background: samples(93, 150, 106, 150, 100, 94, 100, 206, 400, 300, 0, 0, 799, 599),
		},
	},
	{
		// The same gesture, with the surface shown at half size.
		Name:         "scenario_a_scaled",
		Width:        800,
		Height:       600,
		Policy:       "swath",
		Brush:        10,
		DisplayScale: 0.5,
		Steps: []Step{
			{Gesture: line(100, 100, 100, 200)},
		},
		Expect: Expect{
			Painted:    samples(100, 100, 100, 150, 100, 200, 96, 150, 103, 150),
			Background: samples(93, 150, 106, 150, 100, 94, 100, 206, 400, 300),
		},
	},
	{
		Name:   "zigzag",
		Width:  200,
		Height: 200,
		Policy: "swath",
		Brush:  12,
		Steps: []Step{
			{Gesture: line(20, 20, 100, 180, 180, 20)},
		},
		Expect: Expect{
			Painted:    samples(20, 20, 100, 180, 180, 20, 60, 100, 140, 100, 100, 184),
			Background: samples(100, 20, 20, 180, 180, 180, 100, 100, 100, 188),
		},
	},
	{
		Name:   "spiral",
		Width:  200,
		Height: 200,
		Policy: "swath",
		Brush:  8,
		Steps: []Step{
			{Gesture: spiral(100, 100, 10, 80, 2)},
		},
		Expect: Expect{
			Painted:    samples(110, 100, 179, 100),
			Background: samples(5, 5, 195, 195, 5, 195),
		},
	},
	{
		// Press and move without changing position: round caps give a
		// disc.
		Name:   "dot",
		Width:  100,
		Height: 100,
		Policy: "swath",
		Brush:  10,
		Steps: []Step{
			{Gesture: line(50, 50, 50, 50)},
		},
		Expect: Expect{
			Painted:    samples(50, 50, 47, 50, 50, 47),
			Background: samples(40, 50, 50, 60),
		},
	},
	{
		// A press without any move is not a gesture.
		Name:   "tap",
		Width:  100,
		Height: 100,
		Policy: "swath",
		Brush:  10,
		Steps: []Step{
			{Gesture: line(50, 50)},
		},
		Expect: Expect{Empty: true},
	},
	{
		// Parts of the stroke outside the image are clipped.
		Name:   "outside",
		Width:  100,
		Height: 100,
		Policy: "swath",
		Brush:  10,
		Steps: []Step{
			{Gesture: line(-20, 50, 120, 50)},
		},
		Expect: Expect{
			Painted:    samples(0, 50, 50, 50, 99, 50),
			Background: samples(50, 40, 50, 60),
		},
	},
}

// spiral builds an Archimedean spiral gesture which overlaps itself.
func spiral(cx, cy, rMin, rMax, turns float64) []vec.Vec2 {
	steps := max(int(turns*32), 8)
	total := turns * 2 * math.Pi
	growth := (rMax - rMin) / total

	pts := []vec.Vec2{pt(cx+rMin, cy)}
	for i := 1; i <= steps; i++ {
		angle := float64(i) / float64(steps) * total
		r := rMin + growth*angle
		pts = append(pts, pt(cx+r*math.Cos(angle), cy+r*math.Sin(angle)))
	}
	return pts
}
