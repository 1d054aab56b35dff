// Package bsp carves a level area into leaf regions by binary space
// partitioning and places one room per viable leaf.
package bsp

import (
	"math/rand"

	"github.com/jui-pixel/aoop-2025-group12-Alchmey-RPG-game-sub001/internal/room"
)

// Node is one region of the partition tree. Interior nodes have both
// children set; leaves may carry the room placed inside them.
type Node struct {
	X      float64
	Y      float64
	Width  float64
	Height float64
	Room   *room.Room
	Left   *Node
	Right  *Node
}

// Generate builds a partition tree over a width by height area.
// Splitting stops at maxDepth or once a region cannot fit two
// minSize halves along either axis.
func Generate(width, height float64, maxDepth, minSize int, rng *rand.Rand) *Node {
	root := &Node{Width: width, Height: height}
	splitNode(root, 0, maxDepth, minSize, rng)
	return root
}

func splitNode(n *Node, depth, maxDepth, minSize int, rng *rand.Rand) {
	if depth >= maxDepth {
		return
	}
	limit := float64(minSize * 2)
	if n.Width < limit && n.Height < limit {
		return
	}

	// Wider regions split vertically more often so leaves trend
	// toward squares.
	var vertical bool
	switch {
	case n.Width < limit:
		vertical = false
	case n.Height < limit:
		vertical = true
	default:
		w2 := n.Width * n.Width
		h2 := n.Height * n.Height
		vertical = rng.Float64() < w2/(w2+h2)
	}

	if vertical {
		at := float64(splitPoint(rng, minSize, int(n.Width)-minSize))
		n.Left = &Node{X: n.X, Y: n.Y, Width: at, Height: n.Height}
		n.Right = &Node{X: n.X + at, Y: n.Y, Width: n.Width - at, Height: n.Height}
	} else {
		at := float64(splitPoint(rng, minSize, int(n.Height)-minSize))
		n.Left = &Node{X: n.X, Y: n.Y, Width: n.Width, Height: at}
		n.Right = &Node{X: n.X, Y: n.Y + at, Width: n.Width, Height: n.Height - at}
	}
	splitNode(n.Left, depth+1, maxDepth, minSize, rng)
	splitNode(n.Right, depth+1, maxDepth, minSize, rng)
}

func splitPoint(rng *rand.Rand, lo, hi int) int {
	return lo + rng.Intn(hi-lo+1)
}

// IsLeaf reports whether the node has no children.
func (n *Node) IsLeaf() bool {
	return n.Left == nil && n.Right == nil
}

// Leaves returns the leaf regions in left-to-right tree order.
func (n *Node) Leaves() []*Node {
	if n == nil {
		return nil
	}
	if n.IsLeaf() {
		return []*Node{n}
	}
	return append(n.Left.Leaves(), n.Right.Leaves()...)
}

// Depth returns the height of the tree in nodes.
func (n *Node) Depth() int {
	if n == nil {
		return 0
	}
	return 1 + max(n.Left.Depth(), n.Right.Depth())
}

// Count returns the total number of nodes in the tree.
func (n *Node) Count() int {
	if n == nil {
		return 0
	}
	return 1 + n.Left.Count() + n.Right.Count()
}
