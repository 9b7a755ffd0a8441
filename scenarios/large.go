package scenarios

// largeScenarios cover more than 65536 samples, so that the rasterizer
// uses its active edge list.
var largeScenarios = []Scenario{
	{
		Name:   "lasso",
		Width:  800,
		Height: 600,
		Policy: "region-fill",
		Brush:  15,
		Steps: []Step{
			{Gesture: line(100, 100, 700, 100, 700, 500, 100, 500)},
		},
		Expect: Expect{
			Painted:    samples(100, 100, 400, 300, 699, 499),
			Background: samples(99, 300, 700, 300, 400, 99, 400, 500),
		},
	},
	{
		Name:         "lasso_scaled",
		Width:        800,
		Height:       600,
		Policy:       "region-fill",
		Brush:        15,
		DisplayScale: 0.75,
		Steps: []Step{
			{Gesture: line(100, 100, 700, 100, 700, 500, 100, 500)},
		},
		Expect: Expect{
			Painted:    samples(100, 100, 400, 300, 699, 499),
			Background: samples(99, 300, 700, 300, 400, 99, 400, 500),
		},
	},
	{
		Name:   "diagonal",
		Width:  800,
		Height: 600,
		Policy: "swath",
		Brush:  30,
		Steps: []Step{
			{Gesture: line(50, 50, 750, 550)},
		},
		Expect: Expect{
			Painted:    samples(50, 50, 400, 300, 749, 549),
			Background: samples(750, 50, 50, 550, 0, 599),
		},
	},
}
