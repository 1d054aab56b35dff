// Package grid holds the dungeon tile grid and the operations the
// generation steps perform on it: blitting room tiles, carving bridges,
// raising walls and converting walls into doors.
package grid

// Neighbor is a tile adjacent to a queried position.
type Neighbor struct {
	X, Y int
	Tile Tile
}

// Grid is a fixed-size tile grid. The zero value is unusable; create one
// with New. Coordinates are x to the right, y down, matching screen space.
type Grid struct {
	width  int
	height int
	tiles  [][]Tile
}

// New creates a grid of the given size filled with TileOutside.
func New(width, height int) *Grid {
	tiles := make([][]Tile, height)
	for y := range tiles {
		tiles[y] = make([]Tile, width)
	}
	return &Grid{width: width, height: height, tiles: tiles}
}

func (g *Grid) Width() int  { return g.width }
func (g *Grid) Height() int { return g.height }

// InBounds reports whether the position lies inside the grid.
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.width && y >= 0 && y < g.height
}

// Tile returns the tile at the position. Out-of-bounds reads return
// TileOutside so callers can probe beyond the edge without checks.
func (g *Grid) Tile(x, y int) Tile {
	if !g.InBounds(x, y) {
		return TileOutside
	}
	return g.tiles[y][x]
}

// SetTile writes the tile at the position. Out-of-bounds writes are dropped.
func (g *Grid) SetTile(x, y int, t Tile) {
	if !g.InBounds(x, y) {
		return
	}
	g.tiles[y][x] = t
}

// Fill overwrites every cell with the given tile.
func (g *Grid) Fill(t Tile) {
	for y := range g.tiles {
		for x := range g.tiles[y] {
			g.tiles[y][x] = t
		}
	}
}

// Row returns the backing slice for one row. Callers must not resize it.
func (g *Grid) Row(y int) []Tile {
	return g.tiles[y]
}

// Blit copies a tile patch onto the grid with its top-left corner at (x, y).
// Cells falling outside the grid are skipped.
func (g *Grid) Blit(x, y int, patch [][]Tile) {
	for dy, row := range patch {
		for dx, t := range row {
			g.SetTile(x+dx, y+dy, t)
		}
	}
}

// Count returns how many cells hold the given tile.
func (g *Grid) Count(t Tile) int {
	n := 0
	for y := range g.tiles {
		for x := range g.tiles[y] {
			if g.tiles[y][x] == t {
				n++
			}
		}
	}
	return n
}

// Find returns the positions of every cell holding the given tile, in
// row-major order.
func (g *Grid) Find(t Tile) [][2]int {
	var out [][2]int
	for y := range g.tiles {
		for x := range g.tiles[y] {
			if g.tiles[y][x] == t {
				out = append(out, [2]int{x, y})
			}
		}
	}
	return out
}

// Replace rewrites every cell holding old with new and returns the count.
func (g *Grid) Replace(old, new Tile) int {
	n := 0
	for y := range g.tiles {
		for x := range g.tiles[y] {
			if g.tiles[y][x] == old {
				g.tiles[y][x] = new
				n++
			}
		}
	}
	return n
}

// Neighbors returns the in-bounds tiles adjacent to (x, y). Cardinal
// directions only unless diagonal is set.
func (g *Grid) Neighbors(x, y int, diagonal bool) []Neighbor {
	dirs := [][2]int{{0, 1}, {1, 0}, {0, -1}, {-1, 0}}
	if diagonal {
		dirs = append(dirs, [2]int{1, 1}, [2]int{1, -1}, [2]int{-1, 1}, [2]int{-1, -1})
	}
	out := make([]Neighbor, 0, len(dirs))
	for _, d := range dirs {
		nx, ny := x+d[0], y+d[1]
		if g.InBounds(nx, ny) {
			out = append(out, Neighbor{X: nx, Y: ny, Tile: g.tiles[ny][nx]})
		}
	}
	return out
}

// Clone returns a deep copy of the grid.
func (g *Grid) Clone() *Grid {
	c := New(g.width, g.height)
	for y := range g.tiles {
		copy(c.tiles[y], g.tiles[y])
	}
	return c
}
