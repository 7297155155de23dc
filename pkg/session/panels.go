package session

// InfoPanel is one of the three rotating cards shown next to the graph.
// Contents are fixed demo copy; the rotation index picks which one shows.
type InfoPanel struct {
	Title    string     `json:"title"`
	Metrics  []Metric   `json:"metrics,omitempty"`
	Overview []Overview `json:"overview,omitempty"`
	Insights []string   `json:"insights,omitempty"`
	Alerts   []Alert    `json:"alerts,omitempty"`
	Footer   string     `json:"footer,omitempty"`
}

// Metric is a named importance score with a trend arrow.
type Metric struct {
	Name  string  `json:"name"`
	Score float64 `json:"score"`
	Trend string  `json:"trend"`
}

// Overview is a category summary line.
type Overview struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// Alert is a predicted-issue card.
type Alert struct {
	Priority string `json:"priority"`
	Title    string `json:"title"`
	Detail   string `json:"detail"`
}

var infoPanels = []InfoPanel{
	{
		Title: "Feature Importance",
		Metrics: []Metric{
			{Name: "Temperature Anomaly", Score: 0.91, Trend: "up"},
			{Name: "MBT Consecutive High", Score: 0.85, Trend: "up"},
			{Name: "Power Efficiency", Score: 0.78, Trend: "stable"},
			{Name: "Rotor & MBT Low", Score: 0.72, Trend: "down"},
			{Name: "Volatility Flag", Score: 0.68, Trend: "up"},
		},
		Footer: "Live • Physics-informed ML",
	},
	{
		Title: "Feature Analysis",
		Overview: []Overview{
			{Label: "Physics Features", Value: "9 Active"},
			{Label: "Statistical", Value: "12 Active"},
			{Label: "Anomalies", Value: "3 Detected"},
			{Label: "Accuracy", Value: "97.3%"},
		},
		Insights: []string{
			"Power efficiency degrading over last 10 days",
			"Temperature anomaly correlates with failure risk",
			"Rotor response patterns indicate wear",
		},
	},
	{
		Title: "Predictive Insights",
		Alerts: []Alert{
			{
				Priority: "critical",
				Title:    "Outage Risk: 78%",
				Detail:   "Multiple indicators suggest potential failure within 48-72 hours. Main bearing temperature showing consecutive highs.",
			},
			{
				Priority: "warning",
				Title:    "Efficiency Drop",
				Detail:   "Power efficiency ratio below optimal threshold. Rotor response lagging wind speed changes.",
			},
		},
		Footer: "Precision: 0.94 | Recall: 0.89 | F1: 0.91",
	},
}

// InfoPanels returns all rotating panels in rotation order.
func InfoPanels() []InfoPanel {
	out := make([]InfoPanel, len(infoPanels))
	copy(out, infoPanels)
	return out
}

// InfoPanelAt returns the panel for an arbitrary rotation tick; any
// integer maps onto the fixed rotation.
func InfoPanelAt(index int) InfoPanel {
	i := index % InfoPanelCount
	if i < 0 {
		i += InfoPanelCount
	}
	return infoPanels[i]
}
