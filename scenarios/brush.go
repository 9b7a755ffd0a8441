package scenarios

var brushScenarios = []Scenario{
	{
		// Widening the brush after the fact widens the existing swath.
		Name:   "wider",
		Width:  100,
		Height: 100,
		Policy: "swath",
		Brush:  4,
		Steps: []Step{
			{Gesture: line(20, 50, 80, 50)},
			{BrushWidth: 20},
		},
		Expect: Expect{
			Painted:    samples(50, 50, 50, 57, 50, 42),
			Background: samples(50, 61, 50, 38),
		},
	},
	{
		Name:   "narrower",
		Width:  100,
		Height: 100,
		Policy: "swath",
		Brush:  20,
		Steps: []Step{
			{Gesture: line(20, 50, 80, 50)},
			{BrushWidth: 4},
		},
		Expect: Expect{
			Painted:    samples(50, 50, 50, 51, 50, 48),
			Background: samples(50, 57, 50, 42),
		},
	},
	{
		// Region fills do not depend on the brush width.
		Name:   "region",
		Width:  64,
		Height: 64,
		Policy: "region-fill",
		Brush:  4,
		Steps: []Step{
			{Gesture: line(10, 10, 10, 50, 50, 50, 50, 10)},
			{BrushWidth: 40},
		},
		Expect: Expect{
			Painted:    samples(10, 10, 30, 30, 49, 49),
			Background: samples(9, 30, 50, 30, 30, 9, 30, 50),
		},
	},
}
