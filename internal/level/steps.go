package level

import (
	"math"

	"github.com/jui-pixel/aoop-2025-group12-Alchmey-RPG-game-sub001/internal/bsp"
	"github.com/jui-pixel/aoop-2025-group12-Alchmey-RPG-game-sub001/internal/config"
	"github.com/jui-pixel/aoop-2025-group12-Alchmey-RPG-game-sub001/internal/graph"
	"github.com/jui-pixel/aoop-2025-group12-Alchmey-RPG-game-sub001/internal/grid"
	"github.com/jui-pixel/aoop-2025-group12-Alchmey-RPG-game-sub001/internal/logger"
)

// StepInitGrid resets the context so a pipeline can run on it from
// scratch.
func StepInitGrid(ctx *Context) (*Context, error) {
	if ctx.Config == nil {
		ctx.Config = config.DefaultConfig()
	}
	ctx.Reset()
	return ctx, nil
}

// StepGenerateRooms partitions the grid and places one empty room per
// viable leaf.
func StepGenerateRooms(ctx *Context) (*Context, error) {
	rc := ctx.Config.Rooms
	root := bsp.Generate(float64(ctx.GridWidth), float64(ctx.GridHeight),
		rc.MaxSplitDepth, rc.MinSplitSize, ctx.RNG())
	rooms, err := bsp.PlaceRooms(root, float64(rc.Gap),
		float64(rc.Width), float64(rc.Height), float64(rc.MinSize), ctx.RNG())
	if err != nil {
		return nil, err
	}
	ctx.BSPRoot = root
	ctx.Rooms = rooms
	logger.Debugf("rooms: placed %d rooms in %d leaves", len(rooms), len(root.Leaves()))
	return ctx, nil
}

// StepAssignRoomTypes stamps gameplay roles onto the placed rooms.
func StepAssignRoomTypes(ctx *Context) (*Context, error) {
	rc := ctx.Config.Rooms
	bsp.AssignTypes(ctx.Rooms, rc.MonsterRatio, rc.TrapRatio, ctx.RNG())
	return ctx, nil
}

// StepConnectRooms builds the room graph: a minimum spanning tree over
// the complete Euclidean center graph, plus optional extra loop edges.
// Accepted edges are recorded on the context and on both rooms.
func StepConnectRooms(ctx *Context) (*Context, error) {
	rooms := ctx.Rooms
	all := graph.BuildCompleteGraph(len(rooms), func(i, j int) float64 {
		xi, yi := rooms[i].Center()
		xj, yj := rooms[j].Center()
		return math.Hypot(xi-xj, yi-yj)
	})
	mst := graph.KruskalMST(all, len(rooms))
	if len(rooms) > 1 && len(mst) < len(rooms)-1 {
		logger.Warningf("graph: spanning tree incomplete, %d edges for %d rooms", len(mst), len(rooms))
	}

	rects := make([]graph.Rect, len(rooms))
	for i, r := range rooms {
		rects[i] = graph.Rect{X: r.X, Y: r.Y, Width: r.Width, Height: r.Height}
	}
	edges := graph.AddExtraEdges(mst, all, ctx.Config.Bridges.ExtraRatio, rects, ctx.RNG())

	for _, e := range edges {
		rooms[e[0]].Connect(e[1])
		rooms[e[1]].Connect(e[0])
	}
	ctx.Edges = edges
	return ctx, nil
}

// StepGenerateRoomTiles rebuilds every room's tile buffer for its
// assigned type and blits it onto the level grid.
func StepGenerateRoomTiles(ctx *Context) (*Context, error) {
	for _, r := range ctx.Rooms {
		if err := r.GenerateTiles(ctx.RNG()); err != nil {
			return nil, err
		}
		ctx.Grid.Blit(int(r.X), int(r.Y), r.Tiles)
	}
	return ctx, nil
}

// StepAddWalls rings every room with directional border walls.
// Corridor gaps through the rings are already floor, so they stay open.
func StepAddWalls(ctx *Context) (*Context, error) {
	for _, r := range ctx.Rooms {
		ctx.Grid.BorderRect(int(r.X), int(r.Y), int(r.Width), int(r.Height))
	}
	return ctx, nil
}

// StepGenerateDoors turns border walls touching a corridor into doors.
// It must run before sealing: seal walls flank corridors for their whole
// length and would otherwise all convert.
func StepGenerateDoors(ctx *Context) (*Context, error) {
	ctx.Grid.GenerateDoors()
	return ctx, nil
}

// StepSealCorridors walls up the exposed shell of every corridor,
// leaving the inner lanes walkable.
func StepSealCorridors(ctx *Context) (*Context, error) {
	ctx.Grid.SealBridges()
	return ctx, nil
}

// markerTiles are the tags collected into Context.SpawnPoints, in
// collection order.
var markerTiles = []grid.Tile{
	grid.TilePlayerSpawn,
	grid.TileMonsterSpawn,
	grid.TileNPCSpawn,
	grid.TileBossSpawn,
	grid.TileEndRoomPortal,
	grid.TileTrapSpawn,
	grid.TileRewardSpawn,
	grid.TileFinalNPCSpawn,
	grid.TileMagicCrystalNPCSpawn,
	grid.TileDungeonPortalNPCSpawn,
	grid.TileAlchemyPotNPCSpawn,
	grid.TileDummySpawn,
}

// StepCollectSpawnPoints indexes every marker tile by tag so entity
// placement can look positions up without rescanning the grid.
func StepCollectSpawnPoints(ctx *Context) (*Context, error) {
	wanted := make(map[grid.Tile]bool, len(markerTiles))
	for _, t := range markerTiles {
		wanted[t] = true
	}

	points := make(map[string][][2]int)
	for y := 0; y < ctx.Grid.Height(); y++ {
		for x := 0; x < ctx.Grid.Width(); x++ {
			t := ctx.Grid.Tile(x, y)
			if wanted[t] {
				points[t.String()] = append(points[t.String()], [2]int{x, y})
			}
		}
	}
	ctx.SpawnPoints = points
	return ctx, nil
}
