// Package graphql exposes the knowledge graph over GraphQL as an
// alternative to the REST element endpoint. The schema mirrors the
// element shapes: nodes and edges with derived styles, filtered by the
// same layer toggles.
package graphql

import (
	"fmt"

	"github.com/graphql-go/graphql"

	"github.com/causify-ai/sentinel-kg/pkg/graph"
	"github.com/causify-ai/sentinel-kg/pkg/query"
)

var nodeType = graphql.NewObject(graphql.ObjectConfig{
	Name: "Node",
	Fields: graphql.Fields{
		"id":          &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
		"label":       &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
		"category":    &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
		"bgcolor":     &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
		"bordercolor": &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
	},
})

var edgeType = graphql.NewObject(graphql.ObjectConfig{
	Name: "Edge",
	Fields: graphql.Fields{
		"source": &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
		"target": &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
		"weight": &graphql.Field{Type: graphql.NewNonNull(graphql.Float)},
	},
})

var graphType = graphql.NewObject(graphql.ObjectConfig{
	Name: "Graph",
	Fields: graphql.Fields{
		"nodes": &graphql.Field{Type: graphql.NewList(nodeType)},
		"edges": &graphql.Field{Type: graphql.NewList(edgeType)},
	},
})

var layersArg = graphql.FieldConfigArgument{
	"layers": &graphql.ArgumentConfig{
		Type:        graphql.NewList(graphql.String),
		Description: "Optional layer toggles: physics, statistical, anomaly",
	},
}

func layersFromParams(p graphql.ResolveParams) []string {
	raw, _ := p.Args["layers"].([]any)
	layers := make([]string, 0, len(raw))
	for _, v := range raw {
		if s, ok := v.(string); ok {
			layers = append(layers, s)
		}
	}
	return layers
}

// GenerateSchema builds the query schema over the given builder.
func GenerateSchema(builder *graph.Builder) (graphql.Schema, error) {
	queryType := graphql.NewObject(graphql.ObjectConfig{
		Name: "Query",
		Fields: graphql.Fields{
			"health": &graphql.Field{
				Type: graphql.String,
				Resolve: func(p graphql.ResolveParams) (any, error) {
					return "ok", nil
				},
			},
			"graph": &graphql.Field{
				Type: graphType,
				Args: layersArg,
				Resolve: func(p graphql.ResolveParams) (any, error) {
					return builder.Build(layersFromParams(p)), nil
				},
			},
			"nodes": &graphql.Field{
				Type: graphql.NewList(nodeType),
				Args: layersArg,
				Resolve: func(p graphql.ResolveParams) (any, error) {
					return builder.Build(layersFromParams(p)).Nodes, nil
				},
			},
			"edges": &graphql.Field{
				Type: graphql.NewList(edgeType),
				Args: layersArg,
				Resolve: func(p graphql.ResolveParams) (any, error) {
					return builder.Build(layersFromParams(p)).Edges, nil
				},
			},
			"matchesSupportedQuery": &graphql.Field{
				Type: graphql.Boolean,
				Args: graphql.FieldConfigArgument{
					"text": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
				},
				Resolve: func(p graphql.ResolveParams) (any, error) {
					text, _ := p.Args["text"].(string)
					return query.MatchesSupportedQuery(text), nil
				},
			},
		},
	})

	schema, err := graphql.NewSchema(graphql.SchemaConfig{Query: queryType})
	if err != nil {
		return graphql.Schema{}, fmt.Errorf("graphql: create schema: %w", err)
	}
	return schema, nil
}
