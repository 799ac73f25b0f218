package spevent

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// CondensedIndex returns the position of the pair (i, j) in a condensed
// pairwise distance vector over n points. i and j are interchangeable;
// the diagonal (i == j) is not stored.
func CondensedIndex(i, j, n int) int {
	if i > j {
		i, j = j, i
	}
	return n*i - i*(i+1)/2 + (j - i - 1)
}

// PairwiseSquaredDistances computes the condensed squared-Euclidean
// distance vector for n points in m dimensions. data is flat row-major
// with n rows and m columns. The result has length n*(n-1)/2, holding
// the distance for each unordered pair (i, j), i < j, at
// CondensedIndex(i, j, n). Fewer than two points yield an empty vector.
//
// Returns ErrInvalidShape if data does not describe an n×m matrix and
// ErrNonFinite if any coordinate is NaN or infinite.
func PairwiseSquaredDistances(data []float64, n, m int) ([]float64, error) {
	if n < 0 || m < 0 {
		return nil, fmt.Errorf("spevent: %dx%d matrix: %w", n, m, ErrInvalidShape)
	}
	if len(data) != n*m {
		return nil, fmt.Errorf("spevent: buffer length %d does not match %dx%d matrix: %w",
			len(data), n, m, ErrInvalidShape)
	}
	for i, v := range data {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, fmt.Errorf("spevent: value %v at flat index %d: %w", v, i, ErrNonFinite)
		}
	}

	dists := make([]float64, n*(n-1)/2)
	k := 0
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			dists[k] = sqEuclidean(data[i*m:(i+1)*m], data[j*m:(j+1)*m])
			k++
		}
	}
	return dists, nil
}

func sqEuclidean(a, b []float64) float64 {
	var sum float64
	for k := range a {
		d := a[k] - b[k]
		sum += d * d
	}
	return sum
}

// PairwiseSquaredDistancesMatrix is PairwiseSquaredDistances for hosts
// holding points as a gonum matrix, one point per row.
func PairwiseSquaredDistancesMatrix(points mat.Matrix) ([]float64, error) {
	n, m := points.Dims()
	data := make([]float64, n*m)
	for i := 0; i < n; i++ {
		for j := 0; j < m; j++ {
			data[i*m+j] = points.At(i, j)
		}
	}
	return PairwiseSquaredDistances(data, n, m)
}
