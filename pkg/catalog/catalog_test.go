package catalog

import (
	"encoding/json"
	"testing"

	"github.com/sebdah/goldie/v2"
)

func TestDefaultCatalogCounts(t *testing.T) {
	reg := Default()

	if got := reg.NodeCount(); got != 33 {
		t.Errorf("NodeCount = %d, want 33", got)
	}
	if got := reg.EdgeCount(); got != 49 {
		t.Errorf("EdgeCount = %d, want 49", got)
	}

	wantByCategory := map[Category]int{
		CategoryRaw:         5,
		CategoryPhysics:     9,
		CategoryStatistical: 12,
		CategoryAnomaly:     3,
		CategoryOutcome:     4,
	}
	for cat, want := range wantByCategory {
		if got := reg.CategoryCount(cat); got != want {
			t.Errorf("CategoryCount(%s) = %d, want %d", cat, got, want)
		}
	}
}

func TestDefaultIsSingleton(t *testing.T) {
	if Default() != Default() {
		t.Error("Default returned two different registries")
	}
}

func TestNodeLookup(t *testing.T) {
	reg := Default()

	node, ok := reg.Node("main_bearing_temperature")
	if !ok {
		t.Fatal("main_bearing_temperature not found")
	}
	if node.Label != "Main Bearing Temp" {
		t.Errorf("label = %q, want %q", node.Label, "Main Bearing Temp")
	}
	if node.Category != CategoryRaw {
		t.Errorf("category = %q, want raw", node.Category)
	}

	if _, ok := reg.Node("no_such_feature"); ok {
		t.Error("lookup of unknown id succeeded")
	}
	if reg.HasNode("no_such_feature") {
		t.Error("HasNode reported unknown id as present")
	}
}

func TestNewValidation(t *testing.T) {
	valid := []FeatureNode{
		{ID: "a", Label: "A", Category: CategoryRaw},
		{ID: "b", Label: "B", Category: CategoryOutcome},
	}

	tests := []struct {
		name  string
		nodes []FeatureNode
		edges []BaseEdge
	}{
		{
			name: "empty node id",
			nodes: []FeatureNode{
				{ID: "", Label: "Nameless", Category: CategoryRaw},
			},
		},
		{
			name: "unknown category",
			nodes: []FeatureNode{
				{ID: "a", Label: "A", Category: Category("quantum")},
			},
		},
		{
			name: "duplicate node id",
			nodes: []FeatureNode{
				{ID: "a", Label: "A", Category: CategoryRaw},
				{ID: "a", Label: "A again", Category: CategoryOutcome},
			},
		},
		{
			name:  "edge with unknown source",
			nodes: valid,
			edges: []BaseEdge{{Source: "missing", Target: "b", Weight: 0.5}},
		},
		{
			name:  "edge with unknown target",
			nodes: valid,
			edges: []BaseEdge{{Source: "a", Target: "missing", Weight: 0.5}},
		},
		{
			name:  "weight above one",
			nodes: valid,
			edges: []BaseEdge{{Source: "a", Target: "b", Weight: 1.5}},
		},
		{
			name:  "negative weight",
			nodes: valid,
			edges: []BaseEdge{{Source: "a", Target: "b", Weight: -0.1}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := New(tt.nodes, tt.edges); err == nil {
				t.Error("New accepted invalid catalog")
			}
		})
	}
}

func TestAccessorsReturnCopies(t *testing.T) {
	reg := Default()

	nodes := reg.Nodes()
	nodes[0].ID = "mutated"
	if fresh := reg.Nodes(); fresh[0].ID == "mutated" {
		t.Error("mutating Nodes() result changed the registry")
	}

	edges := reg.Edges()
	edges[0].Weight = 42
	if fresh := reg.Edges(); fresh[0].Weight == 42 {
		t.Error("mutating Edges() result changed the registry")
	}

	raw := reg.NodesByCategory(CategoryRaw)
	raw[0].Label = "mutated"
	if fresh := reg.NodesByCategory(CategoryRaw); fresh[0].Label == "mutated" {
		t.Error("mutating NodesByCategory() result changed the registry")
	}
}

func TestParseCategory(t *testing.T) {
	for _, valid := range []string{"raw", "physics", "statistical", "anomaly", "outcome"} {
		if _, ok := ParseCategory(valid); !ok {
			t.Errorf("ParseCategory(%q) = false, want true", valid)
		}
	}
	for _, invalid := range []string{"", "Raw", "physical", "outcomes"} {
		if _, ok := ParseCategory(invalid); ok {
			t.Errorf("ParseCategory(%q) = true, want false", invalid)
		}
	}
}

func TestOptional(t *testing.T) {
	optional := map[Category]bool{
		CategoryRaw:         false,
		CategoryPhysics:     true,
		CategoryStatistical: true,
		CategoryAnomaly:     true,
		CategoryOutcome:     false,
	}
	for cat, want := range optional {
		if got := cat.Optional(); got != want {
			t.Errorf("%s.Optional() = %v, want %v", cat, got, want)
		}
	}
	if got := len(OptionalCategories()); got != 3 {
		t.Errorf("len(OptionalCategories()) = %d, want 3", got)
	}
}

func TestStyleForEveryCategory(t *testing.T) {
	for _, cat := range []Category{
		CategoryRaw, CategoryPhysics, CategoryStatistical, CategoryAnomaly, CategoryOutcome,
	} {
		style := StyleFor(cat)
		if style.Fill == "" || style.Border == "" {
			t.Errorf("StyleFor(%s) returned empty colors", cat)
		}
	}
}

// TestCatalogGolden pins the full catalog contents. Regenerate with
// `go test ./pkg/catalog -update` after an intentional data change.
func TestCatalogGolden(t *testing.T) {
	reg := Default()

	doc := struct {
		Nodes []FeatureNode `json:"nodes"`
		Edges []BaseEdge    `json:"edges"`
	}{
		Nodes: reg.Nodes(),
		Edges: reg.Edges(),
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		t.Fatalf("marshal catalog: %v", err)
	}

	g := goldie.New(t)
	g.Assert(t, "catalog", data)
}
