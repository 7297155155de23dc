package catalog

// categoryStyles is the fixed category → color-pair table used by every
// render. Node styles are derived from this table on the fly; catalog
// entries themselves carry no style state.
var categoryStyles = map[Category]Style{
	CategoryRaw:         {Fill: "#3b82f6", Border: "#2563eb"},
	CategoryPhysics:     {Fill: "#10b981", Border: "#059669"},
	CategoryStatistical: {Fill: "#8b5cf6", Border: "#7c3aed"},
	CategoryAnomaly:     {Fill: "#ef4444", Border: "#dc2626"},
	CategoryOutcome:     {Fill: "#f59e0b", Border: "#d97706"},
}

// StyleFor returns the display style for a category.
func StyleFor(c Category) Style {
	return categoryStyles[c]
}
