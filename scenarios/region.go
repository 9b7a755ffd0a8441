package scenarios

import (
	"math"

	"seehuhn.de/go/geom/vec"
)

var regionScenarios = []Scenario{
	{
		Name:   "scenario_b",
		Width:  64,
		Height: 64,
		Policy: "region-fill",
		Brush:  15,
		Steps: []Step{
			{Gesture: line(10, 10, 10, 50, 50, 50, 50, 10)},
		},
		Expect: Expect{
			Painted:    samples(10, 10, 11, 11, 30, 30, 49, 49),
			Background: samples(9, 30, 50, 30, 30, 9, 30, 50, 5, 5, 60, 60),
		},
	},
	{
		// The rectangle of scenario B, traced in the other direction.
		Name:   "reversed",
		Width:  64,
		Height: 64,
		Policy: "region-fill",
		Brush:  15,
		Steps: []Step{
			{Gesture: line(10, 10, 50, 10, 50, 50, 10, 50)},
		},
		Expect: Expect{
			Painted:    samples(10, 10, 11, 11, 30, 30, 49, 49),
			Background: samples(9, 30, 50, 30, 30, 9, 30, 50, 5, 5, 60, 60),
		},
	},
	{
		Name:   "triangle",
		Width:  100,
		Height: 100,
		Policy: "region-fill",
		Brush:  15,
		Steps: []Step{
			{Gesture: line(20, 80, 50, 20, 80, 80)},
		},
		Expect: Expect{
			Painted:    samples(50, 60, 50, 25, 25, 78, 75, 78),
			Background: samples(20, 20, 80, 20, 50, 85),
		},
	},
	{
		// The centre of a pentagram has winding number 2.
		Name:   "star",
		Width:  100,
		Height: 100,
		Policy: "region-fill",
		Brush:  15,
		Steps: []Step{
			{Gesture: star(50, 50, 40)},
		},
		Expect: Expect{
			Painted:    samples(50, 50, 50, 15),
			Background: samples(50, 5, 50, 75, 5, 5),
		},
	},
	{
		// Both lobes of a self-intersecting gesture are filled, even
		// though they have opposite orientation.
		Name:   "bowtie",
		Width:  100,
		Height: 100,
		Policy: "region-fill",
		Brush:  15,
		Steps: []Step{
			{Gesture: line(10, 10, 90, 90, 90, 10, 10, 90)},
		},
		Expect: Expect{
			Painted:    samples(80, 50, 20, 50),
			Background: samples(50, 20, 50, 80),
		},
	},
	{
		Name:   "two_regions",
		Width:  100,
		Height: 100,
		Policy: "region-fill",
		Brush:  15,
		Steps: []Step{
			{Gesture: line(10, 10, 40, 10, 40, 40, 10, 40)},
			{Gesture: line(60, 60, 90, 60, 90, 90, 60, 90)},
		},
		Expect: Expect{
			Painted:    samples(25, 25, 75, 75),
			Background: samples(75, 25, 25, 75, 50, 50),
		},
	},
	{
		// A gesture of two points encloses no area.
		Name:   "segment",
		Width:  100,
		Height: 100,
		Policy: "region-fill",
		Brush:  15,
		Steps: []Step{
			{Gesture: line(10, 10, 90, 90)},
		},
		Expect: Expect{Empty: true},
	},
}

// star builds a five-pointed star gesture, visiting every second point.
func star(cx, cy, r float64) []vec.Vec2 {
	var corners [5]vec.Vec2
	for i := range corners {
		angle := float64(i)*2*math.Pi/5 - math.Pi/2
		corners[i] = pt(cx+r*math.Cos(angle), cy+r*math.Sin(angle))
	}
	var pts []vec.Vec2
	for _, i := range []int{0, 2, 4, 1, 3} {
		pts = append(pts, corners[i])
	}
	return pts
}
