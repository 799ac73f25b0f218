package spevent

import (
	"math"
	"sort"
)

// mstEdge is a spanning tree edge in chain format: a was already in the
// tree when b was selected as the new frontier node.
type mstEdge struct {
	a, b   int
	weight float64
}

// minimumSpanningTree runs Prim's algorithm over the implicit complete
// graph described by a condensed distance vector, growing from node 0,
// then sorts the n-1 edges in place by weight ascending. Equal weights
// are comparator-ordered; any weight-ascending order is a valid
// single-linkage merge order.
//
// O(n²) time, O(n) scratch. n <= 1 yields no edges.
func minimumSpanningTree(dists []float64, n int) []mstEdge {
	if n <= 1 {
		return nil
	}

	merged := make([]bool, n)
	best := make([]float64, n)
	for j := range best {
		best[j] = math.Inf(1)
	}

	edges := make([]mstEdge, 0, n-1)

	x := 0
	for i := 0; i < n-1; i++ {
		merged[x] = true

		min := math.Inf(1)
		y := x
		for j := 0; j < n; j++ {
			if merged[j] {
				continue
			}
			if d := dists[CondensedIndex(x, j, n)]; d < best[j] {
				best[j] = d
			}
			if best[j] < min {
				min = best[j]
				y = j
			}
		}

		edges = append(edges, mstEdge{a: x, b: y, weight: min})
		x = y
	}

	sort.Slice(edges, func(i, j int) bool { return edges[i].weight < edges[j].weight })
	return edges
}
