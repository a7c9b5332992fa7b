// Package graph implements a directed weighted graph with non-negative edge
// weights and single-pair shortest path search.
package graph

import "errors"

// ErrNegativeWeight is returned by AddEdge for a weight below zero.
var ErrNegativeWeight = errors.New("graph: negative edge weight")

// VertexID identifies a vertex in [0, VertexCount).
type VertexID int

// EdgeID identifies an edge in insertion order.
type EdgeID int

// Edge is a directed weighted edge. Label and Span are opaque to the graph
// and carried for callers that reconstruct paths.
type Edge struct {
	From   VertexID
	To     VertexID
	Weight float64
	Label  int
	Span   int
}

// DirectedWeightedGraph stores edges with per-vertex outgoing incidence lists.
type DirectedWeightedGraph struct {
	edges     []Edge
	incidence [][]EdgeID
}

// New creates a graph with vertexCount vertices and no edges.
func New(vertexCount int) *DirectedWeightedGraph {
	return &DirectedWeightedGraph{incidence: make([][]EdgeID, vertexCount)}
}

// AddEdge appends an edge and returns its id.
func (g *DirectedWeightedGraph) AddEdge(e Edge) (EdgeID, error) {
	if e.Weight < 0 {
		return 0, ErrNegativeWeight
	}
	id := EdgeID(len(g.edges))
	g.edges = append(g.edges, e)
	g.incidence[e.From] = append(g.incidence[e.From], id)
	return id, nil
}

// Edge returns the edge with the given id.
func (g *DirectedWeightedGraph) Edge(id EdgeID) Edge { return g.edges[id] }

// IncidentEdges returns the ids of the edges leaving v.
func (g *DirectedWeightedGraph) IncidentEdges(v VertexID) []EdgeID { return g.incidence[v] }

// VertexCount returns the number of vertices.
func (g *DirectedWeightedGraph) VertexCount() int { return len(g.incidence) }

// EdgeCount returns the number of edges.
func (g *DirectedWeightedGraph) EdgeCount() int { return len(g.edges) }
