// Package spevent provides the numeric kernel for single-particle event
// analysis: detection limits, accumulation of detected signal regions,
// particle equations, and MST-based single-linkage clustering of
// detected events.
//
// The clustering pipeline groups events by feature proximity in three
// stages, each usable on its own:
//
//	dists, err := spevent.PairwiseSquaredDistances(data, n, m)
//	table, merged, err := spevent.MSTLinkage(dists, n)
//	labels, err := spevent.ClusterByDistance(table, merged, threshold)
//
// or end to end from a gonum matrix:
//
//	labels, err := spevent.Cluster(points, threshold)
//
// Distances are squared Euclidean, stored condensed (one entry per
// unordered pair). The linkage table is a dendrogram in merge order:
// row i merges two cluster ids into a new cluster with id n+i, where
// ids 0..n-1 are the original points. ClusterByDistance cuts the
// dendrogram at a distance threshold; labels[i] is the 1-indexed flat
// cluster of point i (labels equal within a cluster, distinct across).
//
// Detection support mirrors the usual single-particle workflow: derive
// signal limits with CalculateLimits (Gaussian or Poisson statistics,
// optionally rolling), sum super-threshold regions into detections with
// AccumulateDetections, then convert detections to physical quantities
// with the Particle* functions.
//
// All functions are pure: they allocate only call-scoped scratch memory
// and share no state, so concurrent calls are safe without locking.
package spevent
