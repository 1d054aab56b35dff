package grid

import "testing"

func TestGenerateDoorsAllDirections(t *testing.T) {
	// A wall with a bridge on each side, one direction at a time.
	dirs := [][2]int{{0, 1}, {1, 0}, {0, -1}, {-1, 0}}
	for _, d := range dirs {
		g := New(5, 5)
		g.SetTile(2, 2, TileBorderWall)
		g.SetTile(2+d[0], 2+d[1], TileBridgeFloor)

		g.GenerateDoors()

		if got := g.Tile(2, 2); got != TileDoor {
			t.Errorf("wall with bridge at offset (%d, %d) = %v, want TileDoor", d[0], d[1], got)
		}
	}
}

func TestGenerateDoorsDirectionalWallVariants(t *testing.T) {
	g := New(5, 5)
	g.SetTile(1, 1, TileBorderWallTop)
	g.SetTile(1, 0, TileBridgeFloor)
	g.SetTile(3, 3, TileBorderWallBottomRightCorner)
	g.SetTile(4, 3, TileBridgeFloor)

	g.GenerateDoors()

	if got := g.Tile(1, 1); got != TileDoor {
		t.Errorf("directional wall = %v, want TileDoor", got)
	}
	if got := g.Tile(3, 3); got != TileDoor {
		t.Errorf("corner wall = %v, want TileDoor", got)
	}
}

func TestGenerateDoorsIgnoresIsolatedWalls(t *testing.T) {
	g := New(5, 5)
	g.SetTile(2, 2, TileBorderWall)
	// Diagonal bridges do not count.
	g.SetTile(3, 3, TileBridgeFloor)

	g.GenerateDoors()

	if got := g.Tile(2, 2); got != TileBorderWall {
		t.Errorf("isolated wall = %v, want TileBorderWall", got)
	}
}

func TestGenerateDoorsIgnoresNonWalls(t *testing.T) {
	g := New(5, 5)
	g.SetTile(2, 2, TileRoomFloor)
	g.SetTile(2, 3, TileBridgeFloor)

	g.GenerateDoors()

	if got := g.Tile(2, 2); got != TileRoomFloor {
		t.Errorf("floor next to bridge = %v, want TileRoomFloor", got)
	}
}

func TestGenerateDoorsIdempotent(t *testing.T) {
	g := New(6, 6)
	g.SetTile(2, 2, TileBorderWall)
	g.SetTile(2, 3, TileBridgeFloor)
	g.SetTile(4, 4, TileBorderWallLeft)
	g.SetTile(3, 4, TileBridgeFloor)

	g.GenerateDoors()
	first := g.CountDoors()

	g.GenerateDoors()
	second := g.CountDoors()

	if first != 2 {
		t.Errorf("doors after first pass = %d, want 2", first)
	}
	if second != first {
		t.Errorf("doors after second pass = %d, want %d", second, first)
	}
}

func TestCountDoors(t *testing.T) {
	g := New(4, 4)
	if g.CountDoors() != 0 {
		t.Errorf("empty grid doors = %d, want 0", g.CountDoors())
	}
	g.SetTile(0, 0, TileDoor)
	g.SetTile(3, 3, TileDoor)
	if g.CountDoors() != 2 {
		t.Errorf("doors = %d, want 2", g.CountDoors())
	}
}
