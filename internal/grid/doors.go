package grid

// GenerateDoors converts boundary walls that touch a bridge into doors.
// A wall qualifies when any of its four cardinal neighbors is
// TileBridgeFloor. Running the pass twice changes nothing: doors are not
// walls, so they are never reconsidered.
func (g *Grid) GenerateDoors() {
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			if g.tiles[y][x].IsBorderWall() && g.touchesBridge(x, y) {
				g.tiles[y][x] = TileDoor
			}
		}
	}
}

func (g *Grid) touchesBridge(x, y int) bool {
	for _, d := range [][2]int{{0, 1}, {1, 0}, {0, -1}, {-1, 0}} {
		nx, ny := x+d[0], y+d[1]
		if g.InBounds(nx, ny) && g.tiles[ny][nx] == TileBridgeFloor {
			return true
		}
	}
	return false
}

// CountDoors returns the number of door tiles on the grid.
func (g *Grid) CountDoors() int {
	return g.Count(TileDoor)
}
