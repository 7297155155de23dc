package query

// Suggestion is a canned question chip. Label is the chip button text as
// displayed (chip 0 keeps the original "beraing" misspelling); Text is
// what selecting the chip fills into the question input, so chip 0
// carries the correctly spelled supported question.
type Suggestion struct {
	Label string `json:"label"`
	Text  string `json:"text"`
}

var suggestions = []Suggestion{
	{
		Label: "Predict the main beraing failures in the next 2 months?",
		Text:  SupportedQuery,
	},
	{
		Label: "Which signals predict rotor issues next 7 days?",
		Text:  "Which signals predict rotor issues next 7 days?",
	},
	{
		Label: "Top contributors to outage risk right now?",
		Text:  "Top contributors to outage risk right now?",
	},
	{
		Label: "How many MB failures in the next 2 months?",
		Text:  "How many MB failures in the next 2 months?",
	},
}

// Suggestions returns the fixed question chips in display order.
func Suggestions() []Suggestion {
	out := make([]Suggestion, len(suggestions))
	copy(out, suggestions)
	return out
}
