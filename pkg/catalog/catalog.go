// Package catalog holds the fixed wind-turbine feature catalog: every
// sensor, derived feature, and outcome node plus the base edges between
// them. The registry is built once at startup, validated, and never
// mutated afterwards.
package catalog

import (
	"fmt"
	"sync"
)

// Registry is the immutable node/edge catalog. Accessors return copies so
// callers can never mutate the shared data.
type Registry struct {
	nodes      []FeatureNode
	edges      []BaseEdge
	byID       map[string]FeatureNode
	byCategory map[Category][]FeatureNode
}

// New builds a validated registry. It fails when a node id repeats or when
// an edge references an id that is not in the node set, turning data-entry
// mistakes into startup errors instead of silently dropped elements.
func New(nodes []FeatureNode, edges []BaseEdge) (*Registry, error) {
	r := &Registry{
		nodes:      make([]FeatureNode, len(nodes)),
		edges:      make([]BaseEdge, len(edges)),
		byID:       make(map[string]FeatureNode, len(nodes)),
		byCategory: make(map[Category][]FeatureNode),
	}
	copy(r.nodes, nodes)
	copy(r.edges, edges)

	for _, n := range r.nodes {
		if n.ID == "" {
			return nil, fmt.Errorf("catalog: node %q has empty id", n.Label)
		}
		if _, ok := ParseCategory(string(n.Category)); !ok {
			return nil, fmt.Errorf("catalog: node %q has unknown category %q", n.ID, n.Category)
		}
		if _, dup := r.byID[n.ID]; dup {
			return nil, fmt.Errorf("catalog: duplicate node id %q", n.ID)
		}
		r.byID[n.ID] = n
		r.byCategory[n.Category] = append(r.byCategory[n.Category], n)
	}

	for i, e := range r.edges {
		if _, ok := r.byID[e.Source]; !ok {
			return nil, fmt.Errorf("catalog: edge %d references unknown source %q", i, e.Source)
		}
		if _, ok := r.byID[e.Target]; !ok {
			return nil, fmt.Errorf("catalog: edge %d references unknown target %q", i, e.Target)
		}
		if e.Weight < 0 || e.Weight > 1 {
			return nil, fmt.Errorf("catalog: edge %q -> %q weight %v outside [0,1]", e.Source, e.Target, e.Weight)
		}
	}

	return r, nil
}

// MustNew is New for literal data that is expected to be valid.
func MustNew(nodes []FeatureNode, edges []BaseEdge) *Registry {
	r, err := New(nodes, edges)
	if err != nil {
		panic(err)
	}
	return r
}

var defaultRegistry = sync.OnceValue(func() *Registry {
	return MustNew(defaultNodes, defaultEdges)
})

// Default returns the process-wide wind-turbine catalog.
func Default() *Registry {
	return defaultRegistry()
}

// Nodes returns all catalog nodes in definition order.
func (r *Registry) Nodes() []FeatureNode {
	out := make([]FeatureNode, len(r.nodes))
	copy(out, r.nodes)
	return out
}

// NodesByCategory returns the nodes of one category in definition order.
func (r *Registry) NodesByCategory(c Category) []FeatureNode {
	src := r.byCategory[c]
	out := make([]FeatureNode, len(src))
	copy(out, src)
	return out
}

// Edges returns all base edges in definition order.
func (r *Registry) Edges() []BaseEdge {
	out := make([]BaseEdge, len(r.edges))
	copy(out, r.edges)
	return out
}

// Node looks up a node by id.
func (r *Registry) Node(id string) (FeatureNode, bool) {
	n, ok := r.byID[id]
	return n, ok
}

// HasNode reports whether id exists in the catalog.
func (r *Registry) HasNode(id string) bool {
	_, ok := r.byID[id]
	return ok
}

// NodeCount returns the total number of catalog nodes.
func (r *Registry) NodeCount() int { return len(r.nodes) }

// EdgeCount returns the total number of base edges.
func (r *Registry) EdgeCount() int { return len(r.edges) }

// CategoryCount returns how many nodes a category has.
func (r *Registry) CategoryCount(c Category) int { return len(r.byCategory[c]) }
