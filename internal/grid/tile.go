package grid

import "github.com/zyedidia/generic/mapset"

// Tile represents the type of a single cell in the dungeon grid.
type Tile int

// The Border_wall* variants must stay contiguous; IsBorderWall relies on it.
const (
	TileOutside Tile = iota
	TileRoomFloor
	TileBridgeFloor
	TileDoor
	TileBorderWall
	TileBorderWallTop
	TileBorderWallBottom
	TileBorderWallLeft
	TileBorderWallRight
	TileBorderWallTopLeftCorner
	TileBorderWallTopRightCorner
	TileBorderWallBottomLeftCorner
	TileBorderWallBottomRightCorner
	TileStartRoomFloor
	TileEndRoomFloor
	TileMonsterRoomFloor
	TileTrapRoomFloor
	TileRewardRoomFloor
	TileNPCRoomFloor
	TileLobbyRoomFloor
	TileBossRoomFloor
	TileFinalRoomFloor
	TilePlayerSpawn
	TileMonsterSpawn
	TileNPCSpawn
	TileBossSpawn
	TileEndRoomPortal
	TileTrapSpawn
	TileRewardSpawn
	TileFinalNPCSpawn
	TileMagicCrystalNPCSpawn
	TileDungeonPortalNPCSpawn
	TileAlchemyPotNPCSpawn
	TileDummySpawn

	tileCount
)

// tileNames holds the serialized tag for every tile type. The tags are the
// wire vocabulary used by level files, the store, and the renderer.
var tileNames = [tileCount]string{
	TileOutside:                     "Outside",
	TileRoomFloor:                   "Room_floor",
	TileBridgeFloor:                 "Bridge_floor",
	TileDoor:                        "Door",
	TileBorderWall:                  "Border_wall",
	TileBorderWallTop:               "Border_wall_top",
	TileBorderWallBottom:            "Border_wall_bottom",
	TileBorderWallLeft:              "Border_wall_left",
	TileBorderWallRight:             "Border_wall_right",
	TileBorderWallTopLeftCorner:     "Border_wall_top_left_corner",
	TileBorderWallTopRightCorner:    "Border_wall_top_right_corner",
	TileBorderWallBottomLeftCorner:  "Border_wall_bottom_left_corner",
	TileBorderWallBottomRightCorner: "Border_wall_bottom_right_corner",
	TileStartRoomFloor:              "Start_room_floor",
	TileEndRoomFloor:                "End_room_floor",
	TileMonsterRoomFloor:            "Monster_room_floor",
	TileTrapRoomFloor:               "Trap_room_floor",
	TileRewardRoomFloor:             "Reward_room_floor",
	TileNPCRoomFloor:                "NPC_room_floor",
	TileLobbyRoomFloor:              "Lobby_room_floor",
	TileBossRoomFloor:               "Boss_room_floor",
	TileFinalRoomFloor:              "Final_room_floor",
	TilePlayerSpawn:                 "Player_spawn",
	TileMonsterSpawn:                "Monster_spawn",
	TileNPCSpawn:                    "NPC_spawn",
	TileBossSpawn:                   "Boss_spawn",
	TileEndRoomPortal:               "End_room_portal",
	TileTrapSpawn:                   "Trap_spawn",
	TileRewardSpawn:                 "Reward_spawn",
	TileFinalNPCSpawn:               "Final_NPC_spawn",
	TileMagicCrystalNPCSpawn:        "Magic_crystal_NPC_spawn",
	TileDungeonPortalNPCSpawn:       "Dungeon_portal_NPC_spawn",
	TileAlchemyPotNPCSpawn:          "Alchemy_pot_NPC_spawn",
	TileDummySpawn:                  "Dummy_spawn",
}

var tilesByName = make(map[string]Tile, tileCount)

func init() {
	for t, name := range tileNames {
		tilesByName[name] = Tile(t)
	}
}

// String returns the serialized tag of a tile.
func (t Tile) String() string {
	if t < 0 || t >= tileCount {
		return "unknown"
	}
	return tileNames[t]
}

// ParseTile converts a serialized tag back into a Tile. Unrecognized tags
// map to TileOutside with ok set to false.
func ParseTile(name string) (Tile, bool) {
	t, ok := tilesByName[name]
	if !ok {
		return TileOutside, false
	}
	return t, true
}

// IsBorderWall reports whether the tile is any boundary wall variant,
// directional or plain.
func (t Tile) IsBorderWall() bool {
	return t >= TileBorderWall && t <= TileBorderWallBottomRightCorner
}

// passable is the set of tiles entities can walk on. Marker tiles for traps,
// chests and the lobby fixtures are deliberately absent: they block movement
// until the spawn system replaces them.
var passable = newTileSet(
	TileRoomFloor, TileBridgeFloor, TileDoor,
	TileStartRoomFloor, TileEndRoomFloor, TileMonsterRoomFloor,
	TileTrapRoomFloor, TileRewardRoomFloor, TileNPCRoomFloor,
	TileLobbyRoomFloor, TileBossRoomFloor, TileFinalRoomFloor,
	TilePlayerSpawn, TileMonsterSpawn, TileNPCSpawn, TileBossSpawn,
	TileEndRoomPortal,
)

func newTileSet(tiles ...Tile) mapset.Set[Tile] {
	s := mapset.New[Tile]()
	for _, t := range tiles {
		s.Put(t)
	}
	return s
}

// Passable reports whether entities can walk on the tile.
func (t Tile) Passable() bool {
	return passable.Has(t)
}

// PassableTiles returns the walkable tile set in declaration order.
func PassableTiles() []Tile {
	out := make([]Tile, 0, passable.Size())
	for t := Tile(0); t < tileCount; t++ {
		if passable.Has(t) {
			out = append(out, t)
		}
	}
	return out
}
