// Package render draws generated levels as colored text maps for
// terminal inspection.
package render

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/gookit/color"

	"github.com/jui-pixel/aoop-2025-group12-Alchmey-RPG-game-sub001/internal/grid"
	"github.com/jui-pixel/aoop-2025-group12-Alchmey-RPG-game-sub001/internal/level"
	"github.com/jui-pixel/aoop-2025-group12-Alchmey-RPG-game-sub001/internal/room"
)

// Map glyphs.
const (
	GlyphOutside  = " "
	GlyphFloor    = "."
	GlyphCorridor = "░"
	GlyphWall     = "▒"
	GlyphDoor     = "▣"
	GlyphPlayer   = "@"
	GlyphMonster  = "m"
	GlyphNPC      = "n"
	GlyphBoss     = "B"
	GlyphPortal   = "O"
	GlyphTrap     = "^"
	GlyphReward   = "$"
)

var (
	ColorFloor    = color.Style{color.FgGray}
	ColorCorridor = color.Style{color.FgCyan}
	ColorWall     = color.Style{color.FgGray, color.OpBold}
	ColorDoor     = color.Style{color.FgYellow, color.OpBold}
	ColorSpawn    = color.Style{color.FgGreen, color.OpBold}
	ColorHazard   = color.Style{color.FgRed, color.OpBold}
	ColorReward   = color.Style{color.FgYellow}
	ColorPortal   = color.Style{color.FgMagenta, color.OpBold}
)

// TileGlyph maps a tile to its glyph and display style. The style is
// nil for unstyled tiles.
func TileGlyph(t grid.Tile) (string, color.Style) {
	switch t {
	case grid.TileOutside:
		return GlyphOutside, nil
	case grid.TileBridgeFloor:
		return GlyphCorridor, ColorCorridor
	case grid.TileDoor:
		return GlyphDoor, ColorDoor
	case grid.TilePlayerSpawn:
		return GlyphPlayer, ColorSpawn
	case grid.TileMonsterSpawn:
		return GlyphMonster, ColorHazard
	case grid.TileNPCSpawn:
		return GlyphNPC, ColorSpawn
	case grid.TileBossSpawn:
		return GlyphBoss, ColorHazard
	case grid.TileEndRoomPortal:
		return GlyphPortal, ColorPortal
	case grid.TileTrapSpawn:
		return GlyphTrap, ColorHazard
	case grid.TileRewardSpawn:
		return GlyphReward, ColorReward
	case grid.TileFinalNPCSpawn:
		return "N", ColorPortal
	case grid.TileMagicCrystalNPCSpawn:
		return "C", ColorPortal
	case grid.TileDungeonPortalNPCSpawn:
		return "P", ColorPortal
	case grid.TileAlchemyPotNPCSpawn:
		return "A", ColorPortal
	case grid.TileDummySpawn:
		return "d", ColorSpawn
	}
	if t.IsBorderWall() {
		return GlyphWall, ColorWall
	}
	return GlyphFloor, ColorFloor
}

// RenderGrid renders the tile grid as one glyph per cell, one line
// per row.
func RenderGrid(g *grid.Grid) string {
	var b strings.Builder
	for y := 0; y < g.Height(); y++ {
		for x := 0; x < g.Width(); x++ {
			glyph, style := TileGlyph(g.Tile(x, y))
			if len(style) == 0 {
				b.WriteString(glyph)
			} else {
				b.WriteString(style.Sprint(glyph))
			}
		}
		b.WriteString("\n")
	}
	return b.String()
}

// RenderLevel renders the full map document: header, tile map, room
// details and optionally the legend.
func RenderLevel(lvl *level.Level, legend bool) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("Dungeon Map (Flow: %s, Seed: %d)\n", lvl.Flow, lvl.Seed))
	b.WriteString(fmt.Sprintf("Generated: %s\n", lvl.CreatedAt.Format("2006-01-02 15:04:05")))
	b.WriteString(strings.Repeat("=", 60) + "\n\n")

	b.WriteString(RenderGrid(lvl.Grid))

	b.WriteString("\nRoom Details:\n")
	rooms := make([]*room.Room, len(lvl.Rooms))
	copy(rooms, lvl.Rooms)
	sort.Slice(rooms, func(i, j int) bool { return rooms[i].ID < rooms[j].ID })
	for _, r := range rooms {
		details := fmt.Sprintf("  [%s] %-7s room %-3d at (%d,%d) %dx%d",
			RoomSymbol(r.Type), r.Type, r.ID,
			int(r.X), int(r.Y), int(r.Width), int(r.Height))
		if len(r.Connections) > 0 {
			details += "  exits: " + joinIDs(r.Connections)
		}
		b.WriteString(details + "\n")
	}

	if legend {
		b.WriteString("\n" + Legend())
	}
	return b.String()
}

// RoomSymbol returns the one-letter tag used in room detail lines.
func RoomSymbol(t room.RoomType) string {
	switch t {
	case room.RoomEmpty:
		return "-"
	case room.RoomStart:
		return "S"
	case room.RoomEnd:
		return "E"
	case room.RoomMonster:
		return "M"
	case room.RoomTrap:
		return "T"
	case room.RoomReward:
		return "R"
	case room.RoomNPC:
		return "N"
	case room.RoomLobby:
		return "L"
	case room.RoomBoss:
		return "B"
	case room.RoomFinal:
		return "F"
	}
	return "?"
}

// Legend lists the map glyphs.
func Legend() string {
	entries := []struct {
		glyph string
		desc  string
	}{
		{GlyphFloor, "room floor"},
		{GlyphCorridor, "corridor"},
		{GlyphWall, "wall"},
		{GlyphDoor, "door"},
		{GlyphPlayer, "player spawn"},
		{GlyphMonster, "monster spawn"},
		{GlyphNPC, "npc spawn"},
		{GlyphBoss, "boss spawn"},
		{GlyphTrap, "trap"},
		{GlyphReward, "reward"},
		{GlyphPortal, "end portal"},
	}

	var b strings.Builder
	b.WriteString("Legend:\n")
	for _, e := range entries {
		b.WriteString(fmt.Sprintf("  %s  %s\n", e.glyph, e.desc))
	}
	return b.String()
}

func joinIDs(ids []int) string {
	sorted := make([]int, len(ids))
	copy(sorted, ids)
	sort.Ints(sorted)

	parts := make([]string, len(sorted))
	for i, id := range sorted {
		parts[i] = strconv.Itoa(id)
	}
	return strings.Join(parts, ", ")
}
