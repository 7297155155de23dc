package session

// Scenario is one selectable scenario chip.
type Scenario struct {
	Key   string `json:"key"`
	Label string `json:"label"`
}

// scenarios are the four demo scenarios. Only the wind turbines scenario
// has a backing graph; the rest exist to exercise the advisory path.
var scenarios = []Scenario{
	{Key: "wind", Label: "Wind turbines (Sentinel)"},
	{Key: "grid", Label: "Data center supply-demand (Grid)"},
	{Key: "inv", Label: "Inventory management (Horizon)"},
	{Key: "infl", Label: "Inflation (Optima)"},
}

// Scenarios returns the scenario chips in display order.
func Scenarios() []Scenario {
	out := make([]Scenario, len(scenarios))
	copy(out, scenarios)
	return out
}

// ScenarioLabel resolves a chip key to its display label. Unknown keys
// return false so the caller can keep whatever text is already entered.
func ScenarioLabel(key string) (string, bool) {
	for _, sc := range scenarios {
		if sc.Key == key {
			return sc.Label, true
		}
	}
	return "", false
}
