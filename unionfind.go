package spevent

// unionFind is a disjoint-set structure over the 2n-1 dendrogram slots:
// original points 0..n-1 and merge clusters n..2n-2. Merge cluster ids
// are assigned by the caller in creation order, so merging takes the new
// parent label explicitly instead of electing a root by size.
type unionFind struct {
	parent []int
	size   []int
}

func newUnionFind(slots int) *unionFind {
	parent := make([]int, slots)
	size := make([]int, slots)
	for i := range parent {
		parent[i] = i
		size[i] = 1
	}
	return &unionFind{parent: parent, size: size}
}

// find returns the root of the set containing x, with path compression:
// every node visited on the way up is re-parented directly to the root.
func (uf *unionFind) find(x int) int {
	root := x
	for uf.parent[root] != root {
		root = uf.parent[root]
	}
	for uf.parent[x] != root {
		x, uf.parent[x] = uf.parent[x], root
	}
	return root
}

// merge attaches the roots x and y under label and records the combined
// subtree size. x and y must be distinct roots.
func (uf *unionFind) merge(x, y, label int) int {
	size := uf.size[x] + uf.size[y]
	uf.size[label] = size
	uf.parent[x] = label
	uf.parent[y] = label
	return size
}
