package graph

import (
	"math"
	"math/rand"
	"sort"

	"github.com/jui-pixel/aoop-2025-group12-Alchmey-RPG-game-sub001/internal/logger"
)

// Edge is a weighted, undirected edge between two node indices.
type Edge struct {
	A      int
	B      int
	Weight float64
}

// BuildCompleteGraph returns every undirected pair (i, j) with i < j,
// weighted by the supplied distance function.
func BuildCompleteGraph(n int, distance func(i, j int) float64) []Edge {
	edges := make([]Edge, 0, n*(n-1)/2)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			edges = append(edges, Edge{A: i, B: j, Weight: distance(i, j)})
		}
	}
	return edges
}

// KruskalMST computes a minimum spanning tree over n nodes. Edges are
// considered in ascending weight order with their input order preserved on
// ties, so equal inputs always produce the same tree. Disconnected inputs
// yield fewer than n-1 edges.
func KruskalMST(edges []Edge, n int) [][2]int {
	sorted := make([]Edge, len(edges))
	copy(sorted, edges)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Weight < sorted[j].Weight
	})

	uf := NewUnionFind(n)
	mst := make([][2]int, 0, max(0, n-1))
	for _, e := range sorted {
		if uf.Union(e.A, e.B) {
			mst = append(mst, [2]int{e.A, e.B})
			if len(mst) == n-1 {
				break
			}
		}
	}
	return mst
}

// AddExtraEdges augments a spanning tree with a sample of the remaining
// edges to open up alternate routes. Candidates are rejected when they are
// longer than 1.5x the mean tree edge weight, when both ends already share a
// tree neighbor (which would close a triangle), or when the straight line
// between the two room centers cuts through another room in rects. The
// sample size is floor(valid * ratio). rects may be nil to skip the
// geometric filter. The tree edges always survive unchanged.
func AddExtraEdges(mst [][2]int, all []Edge, ratio float64, rects []Rect, rng *rand.Rand) [][2]int {
	if ratio <= 0.0 {
		return mst
	}

	inMST := make(map[[2]int]bool, len(mst)*2)
	adjacency := make(map[int]map[int]bool)
	for _, e := range mst {
		inMST[e] = true
		inMST[[2]int{e[1], e[0]}] = true
		if adjacency[e[0]] == nil {
			adjacency[e[0]] = make(map[int]bool)
		}
		if adjacency[e[1]] == nil {
			adjacency[e[1]] = make(map[int]bool)
		}
		adjacency[e[0]][e[1]] = true
		adjacency[e[1]][e[0]] = true
	}

	var candidates []Edge
	for _, e := range all {
		if !inMST[[2]int{e.A, e.B}] {
			candidates = append(candidates, e)
		}
	}
	if len(candidates) == 0 {
		return mst
	}

	maxExtraLength := math.Inf(1)
	var sum float64
	var count int
	for _, e := range all {
		if inMST[[2]int{e.A, e.B}] {
			sum += e.Weight
			count++
		}
	}
	if count > 0 {
		maxExtraLength = sum / float64(count) * 1.5
	}

	var valid [][2]int
	for _, e := range candidates {
		if e.Weight > maxExtraLength {
			continue
		}
		if hasCommonNeighbor(adjacency, e.A, e.B) {
			continue
		}
		if rects != nil && SegmentCrossesRooms(e.A, e.B, rects) {
			continue
		}
		valid = append(valid, [2]int{e.A, e.B})
	}
	if len(valid) == 0 {
		logger.Warning("graph: no extra-edge candidates survived filtering")
		return mst
	}

	numExtra := int(float64(len(valid)) * ratio)
	if numExtra <= 0 {
		return mst
	}
	if numExtra > len(valid) {
		numExtra = len(valid)
	}

	out := make([][2]int, len(mst), len(mst)+numExtra)
	copy(out, mst)
	for _, idx := range rng.Perm(len(valid))[:numExtra] {
		out = append(out, valid[idx])
	}
	return out
}

func hasCommonNeighbor(adjacency map[int]map[int]bool, a, b int) bool {
	na, nb := adjacency[a], adjacency[b]
	if na == nil || nb == nil {
		return false
	}
	for n := range na {
		if nb[n] {
			return true
		}
	}
	return false
}

// IsConnected reports whether the edges join all n nodes into one component.
// An empty graph counts as connected.
func IsConnected(edges [][2]int, n int) bool {
	if n == 0 {
		return true
	}
	return len(componentFrom(buildAdjacency(edges, n), 0, make([]bool, n))) == n
}

// ConnectedComponents returns the node sets of every component, each sorted
// ascending, ordered by their smallest node.
func ConnectedComponents(edges [][2]int, n int) [][]int {
	adj := buildAdjacency(edges, n)
	visited := make([]bool, n)
	var components [][]int
	for start := 0; start < n; start++ {
		if visited[start] {
			continue
		}
		comp := componentFrom(adj, start, visited)
		sort.Ints(comp)
		components = append(components, comp)
	}
	return components
}

func buildAdjacency(edges [][2]int, n int) [][]int {
	adj := make([][]int, n)
	for _, e := range edges {
		adj[e[0]] = append(adj[e[0]], e[1])
		adj[e[1]] = append(adj[e[1]], e[0])
	}
	return adj
}

func componentFrom(adj [][]int, start int, visited []bool) []int {
	var comp []int
	stack := []int{start}
	for len(stack) > 0 {
		node := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if visited[node] {
			continue
		}
		visited[node] = true
		comp = append(comp, node)
		stack = append(stack, adj[node]...)
	}
	return comp
}
