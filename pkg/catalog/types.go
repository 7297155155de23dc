package catalog

// Category classifies a feature node into one of the five fixed layers.
type Category string

const (
	CategoryRaw         Category = "raw"
	CategoryPhysics     Category = "physics"
	CategoryStatistical Category = "statistical"
	CategoryAnomaly     Category = "anomaly"
	CategoryOutcome     Category = "outcome"
)

// OptionalCategories are the layers a user can toggle. Raw and outcome
// nodes are always shown.
func OptionalCategories() []Category {
	return []Category{CategoryPhysics, CategoryStatistical, CategoryAnomaly}
}

// Optional reports whether the category is user-toggleable.
func (c Category) Optional() bool {
	switch c {
	case CategoryPhysics, CategoryStatistical, CategoryAnomaly:
		return true
	}
	return false
}

// ParseCategory maps a layer token to its Category. Unknown tokens return
// false; callers ignore them rather than failing.
func ParseCategory(s string) (Category, bool) {
	switch Category(s) {
	case CategoryRaw, CategoryPhysics, CategoryStatistical, CategoryAnomaly, CategoryOutcome:
		return Category(s), true
	}
	return "", false
}

// FeatureNode is a single sensor, derived feature, or outcome in the
// knowledge graph. Category is fixed at catalog definition time.
type FeatureNode struct {
	ID       string   `json:"id"`
	Label    string   `json:"label"`
	Category Category `json:"category"`
}

// BaseEdge is a directed relationship between two catalog nodes. Weight is
// the base relationship strength in [0,1]; the builder jitters it per render.
type BaseEdge struct {
	Source string  `json:"source"`
	Target string  `json:"target"`
	Weight float64 `json:"weight"`
}

// Style is the display color pair derived from a node's category.
type Style struct {
	Fill   string `json:"bgcolor"`
	Border string `json:"bordercolor"`
}
