package scenarios

// All contains all scenarios, grouped by category.
// The category name is used as a prefix in reference file names.
var All = map[string][]Scenario{
	"swath":  swathScenarios,
	"region": regionScenarios,
	"clear":  clearScenarios,
	"brush":  brushScenarios,
	"large":  largeScenarios,
}

// Find returns the scenario with the given full name, which is the
// category, an underscore, and the scenario name.
func Find(name string) (Scenario, bool) {
	for category, list := range All {
		for _, s := range list {
			if category+"_"+s.Name == name {
				return s, true
			}
		}
	}
	return Scenario{}, false
}
