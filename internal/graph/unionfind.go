// Package graph provides the room-connectivity algorithms: union-find,
// Kruskal's minimum spanning tree, extra-edge selection and the segment
// geometry used to keep corridors out of unrelated rooms.
package graph

// UnionFind is a disjoint-set forest with path compression and union by
// rank, used by Kruskal's algorithm for cycle detection.
type UnionFind struct {
	parent []int
	rank   []int
}

// NewUnionFind creates n singleton sets numbered 0..n-1.
func NewUnionFind(n int) *UnionFind {
	uf := &UnionFind{
		parent: make([]int, n),
		rank:   make([]int, n),
	}
	for i := range uf.parent {
		uf.parent[i] = i
	}
	return uf
}

// Find returns the root of x's set, compressing the path on the way up.
func (uf *UnionFind) Find(x int) int {
	if uf.parent[x] != x {
		uf.parent[x] = uf.Find(uf.parent[x])
	}
	return uf.parent[x]
}

// Union merges the sets containing x and y. It returns false when both
// already share a root. On equal rank the second root is attached under the
// first and the first root's rank grows by one.
func (uf *UnionFind) Union(x, y int) bool {
	rootX := uf.Find(x)
	rootY := uf.Find(y)
	if rootX == rootY {
		return false
	}

	switch {
	case uf.rank[rootX] < uf.rank[rootY]:
		uf.parent[rootX] = rootY
	case uf.rank[rootX] > uf.rank[rootY]:
		uf.parent[rootY] = rootX
	default:
		uf.parent[rootY] = rootX
		uf.rank[rootX]++
	}
	return true
}
