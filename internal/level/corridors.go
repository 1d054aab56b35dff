package level

import (
	"math"

	"github.com/jui-pixel/aoop-2025-group12-Alchmey-RPG-game-sub001/internal/grid"
	"github.com/jui-pixel/aoop-2025-group12-Alchmey-RPG-game-sub001/internal/logger"
	"github.com/jui-pixel/aoop-2025-group12-Alchmey-RPG-game-sub001/internal/pathfind"
	"github.com/jui-pixel/aoop-2025-group12-Alchmey-RPG-game-sub001/internal/room"
)

// StepCarveCorridors routes every accepted edge with A* over the
// configured cost table and lays corridor floor along the path. An
// edge whose endpoints cannot be joined is skipped with a warning.
// Carved lanes are widened by one dilation pass at the end.
func StepCarveCorridors(ctx *Context) (*Context, error) {
	costs, err := ctx.Config.Pathfinding.CostTable()
	if err != nil {
		return nil, err
	}
	pf := pathfind.New(ctx.Grid, nil, costs)

	for _, e := range ctx.Edges {
		a, b := ctx.Rooms[e[0]], ctx.Rooms[e[1]]
		start := edgePoint(a, b)
		end := edgePoint(b, a)

		path := pf.FindPath(start, end, false)
		if len(path) == 0 {
			logger.Warningf("corridor: no path between room %d and room %d", a.ID, b.ID)
			continue
		}
		for _, p := range path {
			if ctx.Grid.Tile(p.X, p.Y) == grid.TileOutside {
				ctx.Grid.SetTile(p.X, p.Y, grid.TileBridgeFloor)
			}
		}
	}

	ctx.Grid.ExpandBridges()
	return ctx, nil
}

// edgePoint picks the tile a corridor leaves a room from: two tiles
// inside the wall on the side facing the target, centered on the
// other axis.
func edgePoint(r, target *room.Room) pathfind.Point {
	rx, ry := r.Center()
	tx, ty := target.Center()
	dx, dy := tx-rx, ty-ry

	x0, y0 := int(r.X), int(r.Y)
	w, h := int(r.Width), int(r.Height)
	if math.Abs(dx) >= math.Abs(dy) {
		x := x0 + 2
		if dx > 0 {
			x = x0 + w - 3
		}
		return pathfind.Point{X: x, Y: y0 + h/2}
	}
	y := y0 + 2
	if dy > 0 {
		y = y0 + h - 3
	}
	return pathfind.Point{X: x0 + w/2, Y: y}
}
