// Package pathfind provides A* search and reachability queries over a
// tile grid. Movement cost is shaped by a per-tile cost table so that
// corridor carving prefers open ground over existing room interiors.
package pathfind

import (
	"github.com/zyedidia/generic/heap"
	"github.com/zyedidia/generic/mapset"

	"github.com/jui-pixel/aoop-2025-group12-Alchmey-RPG-game-sub001/internal/grid"
)

// Point is a tile coordinate on the grid.
type Point struct {
	X int
	Y int
}

// Pathfinder runs searches against a single grid. A nil passable set
// means every in-bounds tile is walkable; otherwise a tile must be in
// the set, with Outside always allowed so searches can cross ground
// that has not been excavated yet.
type Pathfinder struct {
	grid      *grid.Grid
	passable  mapset.Set[grid.Tile]
	hasFilter bool
	costs     map[grid.Tile]float64
}

// New creates a Pathfinder for g. passable may be nil to allow all
// tiles. costs maps tile types to entry costs; missing tiles cost 1.
func New(g *grid.Grid, passable []grid.Tile, costs map[grid.Tile]float64) *Pathfinder {
	p := &Pathfinder{grid: g, costs: costs}
	if passable != nil {
		p.passable = mapset.New[grid.Tile]()
		for _, t := range passable {
			p.passable.Put(t)
		}
		p.hasFilter = true
	}
	return p
}

func (p *Pathfinder) validPosition(x, y int) bool {
	if !p.grid.InBounds(x, y) {
		return false
	}
	if !p.hasFilter {
		return true
	}
	t := p.grid.Tile(x, y)
	return p.passable.Has(t) || t == grid.TileOutside
}

func (p *Pathfinder) cost(t grid.Tile) float64 {
	if c, ok := p.costs[t]; ok {
		return c
	}
	return 1.0
}

func manhattan(a, b Point) float64 {
	dx := a.X - b.X
	if dx < 0 {
		dx = -dx
	}
	dy := a.Y - b.Y
	if dy < 0 {
		dy = -dy
	}
	return float64(dx + dy)
}

type openItem struct {
	f   float64
	pos Point
}

func lessOpen(a, b openItem) bool {
	if a.f != b.f {
		return a.f < b.f
	}
	if a.pos.X != b.pos.X {
		return a.pos.X < b.pos.X
	}
	return a.pos.Y < b.pos.Y
}

// FindPath returns the cheapest path from start to end including both
// endpoints, or nil when either endpoint is invalid or no path exists.
func (p *Pathfinder) FindPath(start, end Point, diagonal bool) []Point {
	if !p.validPosition(start.X, start.Y) || !p.validPosition(end.X, end.Y) {
		return nil
	}

	open := heap.New[openItem](lessOpen)
	open.Push(openItem{f: 0, pos: start})
	inOpen := mapset.New[Point]()
	inOpen.Put(start)

	cameFrom := make(map[Point]Point)
	gScore := map[Point]float64{start: 0}

	for open.Size() > 0 {
		item, _ := open.Pop()
		current := item.pos
		inOpen.Remove(current)

		if current == end {
			return reconstruct(cameFrom, current, start)
		}

		for _, n := range p.grid.Neighbors(current.X, current.Y, diagonal) {
			if !p.validPosition(n.X, n.Y) {
				continue
			}
			next := Point{X: n.X, Y: n.Y}
			tentative := gScore[current] + p.cost(n.Tile)
			if old, seen := gScore[next]; seen && tentative >= old {
				continue
			}
			cameFrom[next] = current
			gScore[next] = tentative
			if !inOpen.Has(next) {
				open.Push(openItem{f: tentative + manhattan(next, end), pos: next})
				inOpen.Put(next)
			}
		}
	}
	return nil
}

func reconstruct(cameFrom map[Point]Point, current, start Point) []Point {
	path := []Point{current}
	for current != start {
		current = cameFrom[current]
		path = append(path, current)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}

// FindMultiplePaths searches from start to every end point and returns
// the paths that exist, in end order.
func (p *Pathfinder) FindMultiplePaths(start Point, ends []Point, diagonal bool) [][]Point {
	var paths [][]Point
	for _, end := range ends {
		if path := p.FindPath(start, end, diagonal); len(path) > 0 {
			paths = append(paths, path)
		}
	}
	return paths
}

// ReachableTiles floods outward from start using 4-directional moves
// and returns every tile reachable within maxDistance steps. A
// negative maxDistance removes the limit.
func (p *Pathfinder) ReachableTiles(start Point, maxDistance int) mapset.Set[Point] {
	reachable := mapset.New[Point]()
	if !p.validPosition(start.X, start.Y) {
		return reachable
	}

	type entry struct {
		pos  Point
		dist int
	}
	reachable.Put(start)
	queue := []entry{{pos: start, dist: 0}}

	for len(queue) > 0 {
		e := queue[0]
		queue = queue[1:]
		if maxDistance >= 0 && e.dist >= maxDistance {
			continue
		}
		for _, n := range p.grid.Neighbors(e.pos.X, e.pos.Y, false) {
			if !p.validPosition(n.X, n.Y) {
				continue
			}
			next := Point{X: n.X, Y: n.Y}
			if reachable.Has(next) {
				continue
			}
			reachable.Put(next)
			queue = append(queue, entry{pos: next, dist: e.dist + 1})
		}
	}
	return reachable
}
