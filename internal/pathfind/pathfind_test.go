package pathfind

import (
	"testing"

	"github.com/jui-pixel/aoop-2025-group12-Alchmey-RPG-game-sub001/internal/grid"
)

func newFloorGrid(w, h int) *grid.Grid {
	g := grid.New(w, h)
	g.Fill(grid.TileRoomFloor)
	return g
}

func TestFindPathOpenGrid(t *testing.T) {
	g := newFloorGrid(5, 5)
	p := New(g, nil, nil)

	path := p.FindPath(Point{0, 0}, Point{4, 4}, false)
	if len(path) != 9 {
		t.Fatalf("path length = %d, want 9", len(path))
	}
	if path[0] != (Point{0, 0}) || path[len(path)-1] != (Point{4, 4}) {
		t.Errorf("path endpoints = %v, %v", path[0], path[len(path)-1])
	}
	for i := 1; i < len(path); i++ {
		dx := path[i].X - path[i-1].X
		dy := path[i].Y - path[i-1].Y
		if dx*dx+dy*dy != 1 {
			t.Errorf("step %d is not a unit cardinal move: %v -> %v", i, path[i-1], path[i])
		}
	}
}

func TestFindPathSameStartAndEnd(t *testing.T) {
	g := newFloorGrid(3, 3)
	p := New(g, nil, nil)

	path := p.FindPath(Point{1, 1}, Point{1, 1}, false)
	if len(path) != 1 || path[0] != (Point{1, 1}) {
		t.Errorf("path = %v, want [{1 1}]", path)
	}
}

func TestFindPathBlocked(t *testing.T) {
	g := newFloorGrid(5, 5)
	for y := 0; y < 5; y++ {
		g.SetTile(2, y, grid.TileBorderWall)
	}
	p := New(g, grid.PassableTiles(), nil)

	if path := p.FindPath(Point{0, 2}, Point{4, 2}, false); path != nil {
		t.Errorf("path across a sealed wall = %v, want nil", path)
	}
}

func TestFindPathInvalidEndpoints(t *testing.T) {
	g := newFloorGrid(5, 5)
	g.SetTile(4, 4, grid.TileBorderWall)
	p := New(g, grid.PassableTiles(), nil)

	tests := []struct {
		name       string
		start, end Point
	}{
		{"start out of bounds", Point{-1, 0}, Point{4, 0}},
		{"end out of bounds", Point{0, 0}, Point{5, 5}},
		{"end on a wall", Point{0, 0}, Point{4, 4}},
	}
	for _, tt := range tests {
		if path := p.FindPath(tt.start, tt.end, false); path != nil {
			t.Errorf("%s: path = %v, want nil", tt.name, path)
		}
	}
}

func TestFindPathDiagonal(t *testing.T) {
	g := newFloorGrid(3, 3)
	p := New(g, nil, nil)

	if path := p.FindPath(Point{0, 0}, Point{2, 2}, true); len(path) != 3 {
		t.Errorf("diagonal path length = %d, want 3", len(path))
	}
	if path := p.FindPath(Point{0, 0}, Point{2, 2}, false); len(path) != 5 {
		t.Errorf("cardinal path length = %d, want 5", len(path))
	}
}

func TestFindPathCostDetour(t *testing.T) {
	g := newFloorGrid(5, 3)
	for x := 1; x <= 3; x++ {
		g.SetTile(x, 1, grid.TileTrapRoomFloor)
	}
	costs := map[grid.Tile]float64{grid.TileTrapRoomFloor: 10}
	p := New(g, nil, costs)

	path := p.FindPath(Point{0, 1}, Point{4, 1}, false)
	if len(path) != 7 {
		t.Fatalf("path length = %d, want 7", len(path))
	}
	for _, pt := range path {
		if g.Tile(pt.X, pt.Y) == grid.TileTrapRoomFloor {
			t.Errorf("path enters expensive tile at %v", pt)
		}
	}
}

func TestFindPathCrossesUnexcavatedGround(t *testing.T) {
	g := grid.New(5, 3)
	g.SetTile(0, 1, grid.TileRoomFloor)
	g.SetTile(4, 1, grid.TileRoomFloor)
	p := New(g, []grid.Tile{grid.TileRoomFloor}, nil)

	path := p.FindPath(Point{0, 1}, Point{4, 1}, false)
	if len(path) != 5 {
		t.Errorf("path length = %d, want 5", len(path))
	}
}

func TestFindMultiplePaths(t *testing.T) {
	g := newFloorGrid(5, 5)
	for y := 0; y < 5; y++ {
		g.SetTile(3, y, grid.TileBorderWall)
	}
	p := New(g, grid.PassableTiles(), nil)

	paths := p.FindMultiplePaths(Point{0, 0}, []Point{{1, 1}, {4, 4}, {2, 3}}, false)
	if len(paths) != 2 {
		t.Fatalf("paths found = %d, want 2", len(paths))
	}
	if got := paths[0][len(paths[0])-1]; got != (Point{1, 1}) {
		t.Errorf("first path ends at %v, want {1 1}", got)
	}
	if got := paths[1][len(paths[1])-1]; got != (Point{2, 3}) {
		t.Errorf("second path ends at %v, want {2 3}", got)
	}
}

func TestReachableTiles(t *testing.T) {
	g := newFloorGrid(5, 5)
	p := New(g, nil, nil)

	tests := []struct {
		name    string
		maxDist int
		want    int
	}{
		{"zero distance", 0, 1},
		{"two steps", 2, 13},
		{"unbounded", -1, 25},
	}
	for _, tt := range tests {
		got := p.ReachableTiles(Point{2, 2}, tt.maxDist)
		if got.Size() != tt.want {
			t.Errorf("%s: reachable = %d tiles, want %d", tt.name, got.Size(), tt.want)
		}
	}
}

func TestReachableTilesInvalidStart(t *testing.T) {
	g := newFloorGrid(3, 3)
	p := New(g, nil, nil)

	if got := p.ReachableTiles(Point{-1, 0}, 5); got.Size() != 0 {
		t.Errorf("reachable from out of bounds = %d tiles, want 0", got.Size())
	}
}

func TestReachableTilesRespectsWalls(t *testing.T) {
	g := newFloorGrid(5, 5)
	for y := 0; y < 5; y++ {
		g.SetTile(2, y, grid.TileBorderWall)
	}
	p := New(g, grid.PassableTiles(), nil)

	got := p.ReachableTiles(Point{0, 0}, -1)
	if got.Size() != 10 {
		t.Errorf("reachable = %d tiles, want 10", got.Size())
	}
	if got.Has(Point{4, 0}) {
		t.Error("flood crossed the wall column")
	}
}
