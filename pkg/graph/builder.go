// Package graph derives the renderable node/edge element lists from the
// catalog and the user's layer toggles. Building is a pure function of the
// toggle set and the random source; the catalog is never touched.
package graph

import (
	"math"
	"math/rand"

	"github.com/causify-ai/sentinel-kg/pkg/catalog"
)

// Node is one renderable graph element with its derived display style.
type Node struct {
	ID       string           `json:"id"`
	Label    string           `json:"label"`
	Category catalog.Category `json:"category"`
	Fill     string           `json:"bgcolor"`
	Border   string           `json:"bordercolor"`
}

// Edge is one renderable relationship. Weight carries the per-render
// jitter applied to the base weight.
type Edge struct {
	Source string  `json:"source"`
	Target string  `json:"target"`
	Weight float64 `json:"weight"`
}

// Elements is the exact shape handed to the external graph renderer.
type Elements struct {
	Nodes []Node `json:"nodes"`
	Edges []Edge `json:"edges"`
}

// jitterLow/jitterHigh bound the uniform multiplier applied to each base
// edge weight on every build.
const (
	jitterLow  = 0.9
	jitterHigh = 1.1
)

// Builder turns a toggle set into element lists.
type Builder struct {
	reg *catalog.Registry

	// uniform returns a draw from U(0,1). Overridable in tests; the
	// default shared math/rand source is goroutine safe.
	uniform func() float64
}

// NewBuilder creates a builder over the given registry.
func NewBuilder(reg *catalog.Registry) *Builder {
	return &Builder{reg: reg, uniform: rand.Float64}
}

// NewBuilderWithSource creates a builder drawing jitter from src.
func NewBuilderWithSource(reg *catalog.Registry, src rand.Source) *Builder {
	rng := rand.New(src)
	return &Builder{reg: reg, uniform: rng.Float64}
}

// Build returns the elements for the given layer toggles. Raw and outcome
// nodes are always included; physics, statistical, and anomaly nodes only
// when their token is present. Unknown tokens are ignored. Edges survive
// only when both endpoints are present, each with weight
// base * U(0.9, 1.1) rounded to 3 decimals.
func (b *Builder) Build(layers []string) Elements {
	enabled := map[catalog.Category]bool{
		catalog.CategoryRaw:     true,
		catalog.CategoryOutcome: true,
	}
	for _, l := range layers {
		if c, ok := catalog.ParseCategory(l); ok && c.Optional() {
			enabled[c] = true
		}
	}

	var nodes []Node
	present := make(map[string]bool, b.reg.NodeCount())
	for _, n := range b.reg.Nodes() {
		if !enabled[n.Category] {
			continue
		}
		style := catalog.StyleFor(n.Category)
		nodes = append(nodes, Node{
			ID:       n.ID,
			Label:    n.Label,
			Category: n.Category,
			Fill:     style.Fill,
			Border:   style.Border,
		})
		present[n.ID] = true
	}

	edges := make([]Edge, 0, b.reg.EdgeCount())
	for _, e := range b.reg.Edges() {
		if !present[e.Source] || !present[e.Target] {
			continue
		}
		edges = append(edges, Edge{
			Source: e.Source,
			Target: e.Target,
			Weight: b.jitter(e.Weight),
		})
	}

	return Elements{Nodes: nodes, Edges: edges}
}

// jitter applies the uniform multiplier and rounds to 3 decimal places.
func (b *Builder) jitter(base float64) float64 {
	w := base * (jitterLow + (jitterHigh-jitterLow)*b.uniform())
	return math.Round(w*1000) / 1000
}
