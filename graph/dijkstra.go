package graph

import (
	"container/heap"
	"math"
	"slices"
)

// Path is a shortest path as an ordered list of edges.
type Path struct {
	Weight float64
	Edges  []EdgeID
}

// ShortestPath runs Dijkstra from one vertex and returns the cheapest path
// to another. The second result is false when to is unreachable or either
// vertex is out of range. A path from a vertex to itself has no edges.
//
// The graph is only read, so concurrent calls are safe.
func (g *DirectedWeightedGraph) ShortestPath(from, to VertexID) (Path, bool) {
	n := g.VertexCount()
	if from < 0 || int(from) >= n || to < 0 || int(to) >= n {
		return Path{}, false
	}
	if from == to {
		return Path{}, true
	}

	dist := make([]float64, n)
	for i := range dist {
		dist[i] = math.Inf(1)
	}
	prevEdge := make([]EdgeID, n)
	for i := range prevEdge {
		prevEdge[i] = -1
	}
	done := make([]bool, n)

	dist[from] = 0
	q := newPriorityQueue(16)
	heap.Push(&q, &element{vertex: from, priority: 0})

	for !q.Empty() {
		cur := heap.Pop(&q).(*element)
		v := cur.vertex
		if done[v] {
			// stale entry left by a later improvement
			continue
		}
		done[v] = true
		if v == to {
			break
		}
		for _, id := range g.IncidentEdges(v) {
			e := g.Edge(id)
			if done[e.To] {
				continue
			}
			if d := dist[v] + e.Weight; d < dist[e.To] {
				dist[e.To] = d
				prevEdge[e.To] = id
				heap.Push(&q, &element{vertex: e.To, priority: d})
			}
		}
	}

	if math.IsInf(dist[to], 1) {
		return Path{}, false
	}
	var edges []EdgeID
	for v := to; v != from; {
		id := prevEdge[v]
		edges = append(edges, id)
		v = g.edges[id].From
	}
	slices.Reverse(edges)
	return Path{Weight: dist[to], Edges: edges}, true
}
