package scenarios

var clearScenarios = []Scenario{
	{
		Name:   "scenario_c_swath",
		Width:  100,
		Height: 100,
		Policy: "swath",
		Brush:  6,
		Steps: []Step{
			{Gesture: line(10, 10, 90, 10)},
			{Gesture: line(10, 30, 90, 30)},
			{Clear: true},
			{Gesture: line(10, 70, 90, 70)},
		},
		Expect: Expect{
			Painted:    samples(50, 70, 10, 70, 90, 70),
			Background: samples(50, 10, 50, 30, 10, 10, 90, 30),
		},
	},
	{
		Name:   "scenario_c_region",
		Width:  100,
		Height: 100,
		Policy: "region-fill",
		Brush:  6,
		Steps: []Step{
			{Gesture: line(10, 10, 40, 10, 40, 40, 10, 40)},
			{Gesture: line(60, 10, 90, 10, 90, 40, 60, 40)},
			{Clear: true},
			{Gesture: line(10, 60, 40, 60, 40, 90, 10, 90)},
		},
		Expect: Expect{
			Painted:    samples(25, 75, 10, 60, 39, 89),
			Background: samples(25, 25, 75, 25, 75, 75),
		},
	},
	{
		Name:   "swath_only",
		Width:  100,
		Height: 100,
		Policy: "swath",
		Brush:  6,
		Steps: []Step{
			{Gesture: line(10, 10, 90, 10)},
			{Gesture: line(10, 30, 90, 30)},
			{Clear: true},
		},
		Expect: Expect{Empty: true},
	},
	{
		Name:   "region_only",
		Width:  100,
		Height: 100,
		Policy: "region-fill",
		Brush:  6,
		Steps: []Step{
			{Gesture: line(10, 10, 40, 10, 40, 40, 10, 40)},
			{Gesture: line(60, 10, 90, 10, 90, 40, 60, 40)},
			{Clear: true},
		},
		Expect: Expect{Empty: true},
	},
	{
		Name:   "twice",
		Width:  100,
		Height: 100,
		Policy: "region-fill",
		Brush:  6,
		Steps: []Step{
			{Gesture: line(10, 10, 40, 10, 40, 40, 10, 40)},
			{Clear: true},
			{Clear: true},
		},
		Expect: Expect{Empty: true},
	},
}
