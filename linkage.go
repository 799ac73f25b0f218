package spevent

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// MSTLinkage builds a single-linkage dendrogram from a condensed
// squared-Euclidean distance vector over n points. It returns the
// (n-1)×3 linkage table and the parallel, weight-ascending merge
// distances.
//
// Row i of the table holds the two cluster ids merged at step i, smaller
// id first, and the size of the merged subtree; the cluster created by
// row i has id n+i. Ids 0..n-1 are the original points, so every id in a
// row refers to an original point or an earlier row. The final row
// creates the root, id 2n-2, with subtree size n.
//
// n <= 1 yields empty outputs. Returns ErrShapeMismatch if the vector
// length is not n*(n-1)/2.
func MSTLinkage(dists []float64, n int) ([][3]int, []float64, error) {
	if n < 0 {
		return nil, nil, fmt.Errorf("spevent: %d points: %w", n, ErrInvalidShape)
	}
	if want := n * (n - 1) / 2; len(dists) != want {
		return nil, nil, fmt.Errorf("spevent: condensed vector length %d, want %d for n=%d: %w",
			len(dists), want, n, ErrShapeMismatch)
	}
	if n <= 1 {
		return [][3]int{}, []float64{}, nil
	}

	edges := minimumSpanningTree(dists, n)

	uf := newUnionFind(2*n - 1)
	table := make([][3]int, len(edges))
	merged := make([]float64, len(edges))

	for i, e := range edges {
		a := uf.find(e.a)
		b := uf.find(e.b)
		if a > b {
			a, b = b, a
		}
		size := uf.merge(a, b, n+i)
		table[i] = [3]int{a, b, size}
		merged[i] = e.weight
	}

	return table, merged, nil
}

// Dendrogram bundles a linkage table with its merge distances.
type Dendrogram struct {
	Table     [][3]int
	Distances []float64
}

// NumPoints returns the number of original points: one more than the
// number of merge records. It assumes the dendrogram was built from at
// least one point.
func (d Dendrogram) NumPoints() int { return len(d.Table) + 1 }

// Cut assigns flat cluster labels at the given distance threshold.
func (d Dendrogram) Cut(threshold float64) ([]int, error) {
	return ClusterByDistance(d.Table, d.Distances, threshold)
}

// Linkage computes the single-linkage dendrogram for a point matrix,
// one point per row. It is the first two pipeline stages in one call.
func Linkage(points mat.Matrix) (Dendrogram, error) {
	n, _ := points.Dims()
	dists, err := PairwiseSquaredDistancesMatrix(points)
	if err != nil {
		return Dendrogram{}, err
	}
	table, merged, err := MSTLinkage(dists, n)
	if err != nil {
		return Dendrogram{}, err
	}
	return Dendrogram{Table: table, Distances: merged}, nil
}
