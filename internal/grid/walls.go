package grid

// BorderRect writes a one-tile wall ring around the rectangle at (x, y) with
// the given size. Only TileOutside cells are converted, so walls never eat
// into room interiors or bridges. Ring cells get directional wall variants
// for the renderer.
func (g *Grid) BorderRect(x, y, w, h int) {
	xEnd := x + w
	yEnd := y + h
	for cy := max(0, y-1); cy < min(g.height, yEnd+1); cy++ {
		for cx := max(0, x-1); cx < min(g.width, xEnd+1); cx++ {
			onRing := cx == x-1 || cx == xEnd || cy == y-1 || cy == yEnd
			if onRing && g.tiles[cy][cx] == TileOutside {
				g.tiles[cy][cx] = borderWallType(cx, cy, x, y, xEnd, yEnd)
			}
		}
	}
}

func borderWallType(x, y, xStart, yStart, xEnd, yEnd int) Tile {
	switch {
	case x == xStart-1 && y == yStart-1:
		return TileBorderWallTopLeftCorner
	case x == xEnd && y == yStart-1:
		return TileBorderWallTopRightCorner
	case x == xStart-1 && y == yEnd:
		return TileBorderWallBottomLeftCorner
	case x == xEnd && y == yEnd:
		return TileBorderWallBottomRightCorner
	case y == yStart-1:
		return TileBorderWallTop
	case y == yEnd:
		return TileBorderWallBottom
	case x == xStart-1:
		return TileBorderWallLeft
	case x == xEnd:
		return TileBorderWallRight
	}
	return TileBorderWall
}

// CarveBridge fills the bridge's bounding box with TileBridgeFloor,
// inflated by one tile on each side. Degenerate axes are widened to one
// tile. Existing non-Outside tiles are left untouched so bridges never
// overwrite rooms.
func (g *Grid) CarveBridge(x0, y0, x1, y1 float64) {
	bx0 := int(min(x0, x1))
	by0 := int(min(y0, y1))
	bx1 := int(max(x0, x1))
	by1 := int(max(y0, y1))
	if bx1-bx0 == 0 {
		bx1 = bx0 + 1
	}
	if by1-by0 == 0 {
		by1 = by0 + 1
	}
	for y := max(0, by0-1); y < min(by1+1, g.height); y++ {
		for x := max(0, bx0-1); x < min(bx1+1, g.width); x++ {
			if g.tiles[y][x] != TileOutside {
				continue
			}
			g.tiles[y][x] = TileBridgeFloor
		}
	}
}

// ExpandBridges dilates every bridge tile by one step in all eight
// directions, converting adjacent TileOutside cells. One pass wraps a
// carved path in a full shell, so sealing strips the shell and leaves
// every original path tile walkable.
func (g *Grid) ExpandBridges() {
	var grow [][2]int
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			if g.tiles[y][x] != TileBridgeFloor {
				continue
			}
			for dy := -1; dy <= 1; dy++ {
				for dx := -1; dx <= 1; dx++ {
					nx, ny := x+dx, y+dy
					if g.InBounds(nx, ny) && g.tiles[ny][nx] == TileOutside {
						grow = append(grow, [2]int{nx, ny})
					}
				}
			}
		}
	}
	for _, p := range grow {
		g.tiles[p[1]][p[0]] = TileBridgeFloor
	}
}

// SealBridges converts bridge tiles whose eight-neighborhood touches
// TileOutside or the grid edge into plain walls, leaving the inner lanes
// walkable.
func (g *Grid) SealBridges() {
	var seal [][2]int
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			if g.tiles[y][x] == TileBridgeFloor && g.exposedToOutside(x, y) {
				seal = append(seal, [2]int{x, y})
			}
		}
	}
	for _, p := range seal {
		g.tiles[p[1]][p[0]] = TileBorderWall
	}
}

func (g *Grid) exposedToOutside(x, y int) bool {
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			nx, ny := x+dx, y+dy
			if !g.InBounds(nx, ny) || g.tiles[ny][nx] == TileOutside {
				return true
			}
		}
	}
	return false
}

// WallBitmask returns the 4-bit autotiling mask for the cell: bit 1 set when
// the tile above is solid, bit 2 right, bit 4 below, bit 8 left.
// Out-of-bounds counts as solid.
func (g *Grid) WallBitmask(x, y int) int {
	solid := func(tx, ty int) bool {
		if !g.InBounds(tx, ty) {
			return true
		}
		return !g.tiles[ty][tx].Passable()
	}
	mask := 0
	if solid(x, y-1) {
		mask |= 1
	}
	if solid(x+1, y) {
		mask |= 2
	}
	if solid(x, y+1) {
		mask |= 4
	}
	if solid(x-1, y) {
		mask |= 8
	}
	return mask
}

// WallTileFor maps an autotiling mask to a wall variant for display.
func WallTileFor(mask int) Tile {
	switch mask {
	case 1:
		return TileBorderWallTop
	case 2:
		return TileBorderWallRight
	case 3:
		return TileBorderWallTopRightCorner
	case 4:
		return TileBorderWallBottom
	case 6:
		return TileBorderWallBottomRightCorner
	case 8:
		return TileBorderWallLeft
	case 9:
		return TileBorderWallTopLeftCorner
	case 12:
		return TileBorderWallBottomLeftCorner
	default:
		return TileBorderWall
	}
}
