package level

import "github.com/jui-pixel/aoop-2025-group12-Alchmey-RPG-game-sub001/internal/grid"

// Stats summarizes a generated level.
type Stats struct {
	NumRooms      int            `yaml:"num_rooms" json:"num_rooms"`
	RoomTypes     map[string]int `yaml:"room_types" json:"room_types"`
	CorridorTiles int            `yaml:"corridor_tiles" json:"corridor_tiles"`
	DoorCount     int            `yaml:"door_count" json:"door_count"`
	GridWidth     int            `yaml:"grid_width" json:"grid_width"`
	GridHeight    int            `yaml:"grid_height" json:"grid_height"`
}

// CollectStats derives the summary numbers from a finished context.
func CollectStats(ctx *Context) Stats {
	types := make(map[string]int)
	for _, r := range ctx.Rooms {
		types[r.Type.String()]++
	}
	return Stats{
		NumRooms:      len(ctx.Rooms),
		RoomTypes:     types,
		CorridorTiles: ctx.Grid.Count(grid.TileBridgeFloor),
		DoorCount:     ctx.Grid.CountDoors(),
		GridWidth:     ctx.Grid.Width(),
		GridHeight:    ctx.Grid.Height(),
	}
}
