package spevent

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// ClusterByDistance cuts a single-linkage dendrogram into flat clusters.
// Every merge whose subtree never exceeds threshold (its cophenetic
// maximum distance is <= threshold, inclusive) is kept whole; leaves
// outside any such subtree become singletons. The number of points is
// len(table)+1, so an empty table describes a single point.
//
// Labels are 1..k in traversal discovery order, one per original point;
// labels are equal within a cluster and distinct across clusters, but
// not ordered by point index. threshold must be >= 0; +Inf is allowed
// and yields a single cluster.
func ClusterByDistance(table [][3]int, dists []float64, threshold float64) ([]int, error) {
	if len(table) != len(dists) {
		return nil, fmt.Errorf("spevent: linkage table has %d rows but %d distances: %w",
			len(table), len(dists), ErrShapeMismatch)
	}
	if math.IsNaN(threshold) || threshold < 0 {
		return nil, fmt.Errorf("spevent: threshold %v: %w", threshold, ErrBadThreshold)
	}

	n := len(table) + 1
	if n == 1 {
		return []int{1}, nil
	}
	for i, row := range table {
		if row[0] < 0 || row[1] < 0 || row[0] >= n+i || row[1] >= n+i {
			return nil, fmt.Errorf("spevent: row %d merges ids %d and %d, want ids below %d: %w",
				i, row[0], row[1], n+i, ErrInvalidShape)
		}
	}

	maxDist := copheneticMaxima(table, dists, n)
	return cutAtDistance(table, maxDist, threshold, n), nil
}

// copheneticMaxima computes, for each internal node, the maximum merge
// distance anywhere in its subtree. Internal node n+i is stored at
// index i. Depth-first with an explicit stack so traversal depth is not
// bound by the call stack; a node is reduced once both children have
// been expanded.
func copheneticMaxima(table [][3]int, dists []float64, n int) []float64 {
	maxDist := make([]float64, n-1)
	expanded := make([]bool, 2*n-1)
	stack := make([]int, 1, n)
	stack[0] = 2*n - 2

	for len(stack) > 0 {
		node := stack[len(stack)-1]
		row := node - n
		left := table[row][0]
		right := table[row][1]

		if left >= n && !expanded[left] {
			expanded[left] = true
			stack = append(stack, left)
			continue
		}
		if right >= n && !expanded[right] {
			expanded[right] = true
			stack = append(stack, right)
			continue
		}

		max := dists[row]
		if left >= n && maxDist[left-n] > max {
			max = maxDist[left-n]
		}
		if right >= n && maxDist[right-n] > max {
			max = maxDist[right-n]
		}
		maxDist[row] = max

		stack = stack[:len(stack)-1]
	}

	return maxDist
}

// cutAtDistance assigns flat cluster labels to the leaves. The first
// node on each root-to-leaf path whose subtree maximum is within
// threshold becomes the cluster leader; every leaf discovered under it
// shares one label. The leader is cleared when the traversal backtracks
// past it, and a leaf reached with no leader active becomes a singleton.
func cutAtDistance(table [][3]int, maxDist []float64, threshold float64, n int) []int {
	labels := make([]int, n)
	expanded := make([]bool, 2*n-1)
	stack := make([]int, 1, n)
	stack[0] = 2*n - 2

	leader := -1
	cluster := 0

	for len(stack) > 0 {
		node := stack[len(stack)-1]
		row := node - n
		left := table[row][0]
		right := table[row][1]

		if leader == -1 && maxDist[row] <= threshold {
			leader = row
			cluster++
		}

		if left >= n && !expanded[left] {
			expanded[left] = true
			stack = append(stack, left)
			continue
		}
		if right >= n && !expanded[right] {
			expanded[right] = true
			stack = append(stack, right)
			continue
		}

		if left < n {
			if leader == -1 {
				cluster++
			}
			labels[left] = cluster
		}
		if right < n {
			if leader == -1 {
				cluster++
			}
			labels[right] = cluster
		}
		if leader == row {
			leader = -1
		}
		stack = stack[:len(stack)-1]
	}

	return labels
}

// Cluster runs the full pipeline on a point matrix, one point per row:
// condensed squared-Euclidean distances, MST single-linkage, and an
// inclusive cut at threshold. Returns one 1-indexed label per point.
func Cluster(points mat.Matrix, threshold float64) ([]int, error) {
	n, _ := points.Dims()
	if n == 0 {
		return []int{}, nil
	}
	d, err := Linkage(points)
	if err != nil {
		return nil, err
	}
	return d.Cut(threshold)
}
