package room

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/jui-pixel/aoop-2025-group12-Alchmey-RPG-game-sub001/internal/grid"
)

// ErrUnknownRoomType is returned when a room carries a type outside
// the RoomType vocabulary.
var ErrUnknownRoomType = errors.New("room: unknown room type")

type effectKind int

const (
	// effectFill writes the tile over the whole buffer.
	effectFill effectKind = iota
	// effectFillInterior writes the tile everywhere except the
	// outermost ring.
	effectFillInterior
	// effectSet writes the tile at one position; positions outside
	// the buffer are skipped.
	effectSet
	// effectSetInterior writes the tile at one position only when it
	// lies strictly inside the outermost ring.
	effectSetInterior
	// effectScatter writes the tile at count shuffled interior
	// positions.
	effectScatter
	// effectScatterExceptCenter is effectScatter with the center
	// position withheld from the candidate pool.
	effectScatterExceptCenter
)

// markerEffect describes one mutation of a room's tile buffer. Room
// content is planned as a flat list of these and interpreted by
// applyEffects, so a plan can be inspected without touching a grid.
type markerEffect struct {
	kind  effectKind
	tile  grid.Tile
	x, y  int
	count int
}

// planContent lists the effects for a room type over a w by h buffer.
// The base floor fill is not part of the plan; callers lay that down
// before applying.
func planContent(typ RoomType, w, h int) ([]markerEffect, error) {
	cx, cy := w/2, h/2
	floorArea := (w - 2) * (h - 2)

	switch typ {
	case RoomEmpty:
		return nil, nil
	case RoomStart:
		return []markerEffect{
			{kind: effectFill, tile: grid.TileStartRoomFloor},
			{kind: effectSet, tile: grid.TilePlayerSpawn, x: cx, y: cy},
		}, nil
	case RoomEnd:
		return []markerEffect{
			{kind: effectFillInterior, tile: grid.TileEndRoomFloor},
			{kind: effectSet, tile: grid.TileEndRoomPortal, x: cx, y: cy},
		}, nil
	case RoomMonster:
		count := max(1, min(15, floorArea/72))
		return []markerEffect{
			{kind: effectFill, tile: grid.TileMonsterRoomFloor},
			{kind: effectScatter, tile: grid.TileMonsterSpawn, count: count},
		}, nil
	case RoomTrap:
		count := max(1, min(50, floorArea/16))
		return []markerEffect{
			{kind: effectFill, tile: grid.TileTrapRoomFloor},
			{kind: effectSet, tile: grid.TileNPCSpawn, x: cx, y: cy},
			{kind: effectScatterExceptCenter, tile: grid.TileTrapSpawn, count: count},
		}, nil
	case RoomReward:
		return []markerEffect{
			{kind: effectFill, tile: grid.TileRewardRoomFloor},
			{kind: effectSet, tile: grid.TileRewardSpawn, x: cx, y: cy},
		}, nil
	case RoomNPC:
		return []markerEffect{
			{kind: effectFill, tile: grid.TileNPCRoomFloor},
			{kind: effectSet, tile: grid.TileNPCSpawn, x: cx, y: cy},
		}, nil
	case RoomLobby:
		return []markerEffect{
			{kind: effectFill, tile: grid.TileLobbyRoomFloor},
			{kind: effectSet, tile: grid.TileMagicCrystalNPCSpawn, x: 4, y: 3},
			{kind: effectSet, tile: grid.TileDungeonPortalNPCSpawn, x: w - 4, y: 3},
			{kind: effectSet, tile: grid.TileAlchemyPotNPCSpawn, x: 4, y: h - 3},
			{kind: effectSet, tile: grid.TileDummySpawn, x: w - 4, y: h - 3},
			{kind: effectSet, tile: grid.TilePlayerSpawn, x: cx, y: cy + 3},
			{kind: effectSet, tile: grid.TileNPCSpawn, x: cx, y: cy - 3},
		}, nil
	case RoomBoss:
		return []markerEffect{
			{kind: effectFill, tile: grid.TileBossRoomFloor},
			{kind: effectSet, tile: grid.TileBossSpawn, x: cx, y: cy},
			{kind: effectSet, tile: grid.TilePlayerSpawn, x: cx, y: cy + 3},
		}, nil
	case RoomFinal:
		effects := []markerEffect{
			{kind: effectFill, tile: grid.TileFinalRoomFloor},
			{kind: effectSet, tile: grid.TileFinalNPCSpawn, x: cx, y: cy},
			{kind: effectSet, tile: grid.TilePlayerSpawn, x: cx, y: cy + 3},
		}
		for _, d := range [][2]int{{-2, -2}, {-2, 2}, {2, -2}, {2, 2}} {
			effects = append(effects, markerEffect{
				kind: effectSetInterior,
				tile: grid.TileRewardSpawn,
				x:    cx + d[0],
				y:    cy + d[1],
			})
		}
		return effects, nil
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownRoomType, int(typ))
	}
}

// applyEffects interprets a content plan against a tile buffer. The
// buffer is indexed tiles[y][x].
func applyEffects(tiles [][]grid.Tile, effects []markerEffect, rng *rand.Rand) {
	h := len(tiles)
	if h == 0 {
		return
	}
	w := len(tiles[0])

	for _, e := range effects {
		switch e.kind {
		case effectFill:
			for y := 0; y < h; y++ {
				for x := 0; x < w; x++ {
					tiles[y][x] = e.tile
				}
			}
		case effectFillInterior:
			for y := 1; y < h-1; y++ {
				for x := 1; x < w-1; x++ {
					tiles[y][x] = e.tile
				}
			}
		case effectSet:
			if e.x >= 0 && e.x < w && e.y >= 0 && e.y < h {
				tiles[e.y][e.x] = e.tile
			}
		case effectSetInterior:
			if e.x >= 1 && e.x < w-1 && e.y >= 1 && e.y < h-1 {
				tiles[e.y][e.x] = e.tile
			}
		case effectScatter, effectScatterExceptCenter:
			cx, cy := w/2, h/2
			var points [][2]int
			for y := 1; y < h-1; y++ {
				for x := 1; x < w-1; x++ {
					if e.kind == effectScatterExceptCenter && x == cx && y == cy {
						continue
					}
					points = append(points, [2]int{x, y})
				}
			}
			rng.Shuffle(len(points), func(i, j int) {
				points[i], points[j] = points[j], points[i]
			})
			n := min(e.count, len(points))
			for _, p := range points[:n] {
				tiles[p[1]][p[0]] = e.tile
			}
		}
	}
}
