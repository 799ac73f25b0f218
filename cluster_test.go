package spevent

import (
	"errors"
	"math"
	"math/rand"
	"testing"

	"gonum.org/v1/gonum/mat"
)

func linkageFor(t *testing.T, data []float64, n, m int) ([][3]int, []float64) {
	t.Helper()
	dists, err := PairwiseSquaredDistances(data, n, m)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	table, merged, err := MSTLinkage(dists, n)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return table, merged
}

func numClusters(labels []int) int {
	set := map[int]bool{}
	for _, l := range labels {
		set[l] = true
	}
	return len(set)
}

func TestClusterByDistance_SinglePoint(t *testing.T) {
	labels, err := ClusterByDistance([][3]int{}, []float64{}, 1.0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(labels) != 1 || labels[0] != 1 {
		t.Errorf("expected labels [1], got %v", labels)
	}
}

func TestClusterByDistance_TwoPairScenario(t *testing.T) {
	// Two tight pairs 10 units apart: threshold 5 separates them.
	table, merged := linkageFor(t, []float64{0, 0, 0, 1, 10, 0, 10, 1}, 4, 2)

	labels, err := ClusterByDistance(table, merged, 5.0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if numClusters(labels) != 2 {
		t.Fatalf("expected 2 clusters, got %d (labels %v)", numClusters(labels), labels)
	}
	if labels[0] != labels[1] {
		t.Errorf("points 0 and 1 should share a cluster: %v", labels)
	}
	if labels[2] != labels[3] {
		t.Errorf("points 2 and 3 should share a cluster: %v", labels)
	}
	if labels[0] == labels[2] {
		t.Errorf("the two pairs should be distinct clusters: %v", labels)
	}
}

func TestClusterByDistance_CollinearTriple(t *testing.T) {
	table, merged := linkageFor(t, []float64{0, 1, 2}, 3, 1)

	labels, err := ClusterByDistance(table, merged, 0.5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if numClusters(labels) != 3 {
		t.Errorf("threshold below all merges: expected 3 singletons, got %v", labels)
	}

	// The cut is inclusive, so a merge exactly at the threshold holds.
	labels, err = ClusterByDistance(table, merged, 1.0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if numClusters(labels) != 1 {
		t.Errorf("threshold at tree height: expected 1 cluster, got %v", labels)
	}
}

func TestClusterByDistance_ExtremeThresholds(t *testing.T) {
	rng := rand.New(rand.NewSource(41))
	n := 25
	dists := randomCondensed(n, rng)
	table, merged, err := MSTLinkage(dists, n)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	labels, err := ClusterByDistance(table, merged, math.Inf(1))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if numClusters(labels) != 1 {
		t.Errorf("infinite threshold: expected 1 cluster, got %d", numClusters(labels))
	}

	labels, err = ClusterByDistance(table, merged, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if numClusters(labels) != n {
		t.Errorf("zero threshold on distinct points: expected %d singletons, got %d", n, numClusters(labels))
	}
}

func TestClusterByDistance_Deterministic(t *testing.T) {
	rng := rand.New(rand.NewSource(43))
	n := 30
	dists := randomCondensed(n, rng)
	table, merged, err := MSTLinkage(dists, n)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	first, err := ClusterByDistance(table, merged, 2.0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := ClusterByDistance(table, merged, 2.0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for i := range first {
		if first[i] != second[i] {
			t.Fatalf("labels differ at %d: %d vs %d", i, first[i], second[i])
		}
	}
}

func TestClusterByDistance_LabelsCoverAllPoints(t *testing.T) {
	rng := rand.New(rand.NewSource(47))
	n := 20
	dists := randomCondensed(n, rng)
	table, merged, err := MSTLinkage(dists, n)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	labels, err := ClusterByDistance(table, merged, 1.5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(labels) != n {
		t.Fatalf("expected %d labels, got %d", n, len(labels))
	}
	k := numClusters(labels)
	for i, l := range labels {
		if l < 1 || l > k {
			t.Errorf("point %d: label %d outside 1..%d", i, l, k)
		}
	}
}

func TestClusterByDistance_Errors(t *testing.T) {
	table := [][3]int{{0, 1, 2}}
	dists := []float64{1.0}

	if _, err := ClusterByDistance(table, []float64{1, 2}, 1.0); !errors.Is(err, ErrShapeMismatch) {
		t.Errorf("expected ErrShapeMismatch, got %v", err)
	}
	if _, err := ClusterByDistance(table, dists, math.NaN()); !errors.Is(err, ErrBadThreshold) {
		t.Errorf("expected ErrBadThreshold for NaN, got %v", err)
	}
	if _, err := ClusterByDistance(table, dists, -0.1); !errors.Is(err, ErrBadThreshold) {
		t.Errorf("expected ErrBadThreshold for negative, got %v", err)
	}
	if _, err := ClusterByDistance([][3]int{{0, 5, 2}}, dists, 1.0); !errors.Is(err, ErrInvalidShape) {
		t.Errorf("expected ErrInvalidShape for forward reference, got %v", err)
	}
}

func TestCluster_Pipeline(t *testing.T) {
	points := mat.NewDense(4, 2, []float64{0, 0, 0, 1, 10, 0, 10, 1})
	labels, err := Cluster(points, 5.0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if numClusters(labels) != 2 {
		t.Errorf("expected 2 clusters, got %v", labels)
	}
}

func TestCluster_Empty(t *testing.T) {
	labels, err := Cluster(&mat.Dense{}, 1.0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(labels) != 0 {
		t.Errorf("expected no labels, got %v", labels)
	}
}

func TestCluster_SinglePoint(t *testing.T) {
	labels, err := Cluster(mat.NewDense(1, 2, []float64{3, 4}), 1.0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(labels) != 1 || labels[0] != 1 {
		t.Errorf("expected labels [1], got %v", labels)
	}
}
