package level

import (
	"time"

	"github.com/google/uuid"

	"github.com/jui-pixel/aoop-2025-group12-Alchmey-RPG-game-sub001/internal/config"
	"github.com/jui-pixel/aoop-2025-group12-Alchmey-RPG-game-sub001/internal/grid"
	"github.com/jui-pixel/aoop-2025-group12-Alchmey-RPG-game-sub001/internal/logger"
	"github.com/jui-pixel/aoop-2025-group12-Alchmey-RPG-game-sub001/internal/room"
)

// Level is one finished generation result. Downstream systems read
// it; nothing mutates it after Generate returns.
type Level struct {
	ID          string
	Flow        string
	DungeonID   int
	Seed        int64
	TileSize    int
	Grid        *grid.Grid
	Rooms       []*room.Room
	Bridges     []room.Bridge
	SpawnPoints map[string][][2]int
	Stats       Stats
	CreatedAt   time.Time
}

// Generate runs the full pipeline for the context's corridor style
// and packages the result. The seed actually used is recorded on the
// level, so any run can be replayed.
func Generate(ctx *Context, flowName string) (*Level, error) {
	if ctx.Config == nil {
		ctx.Config = config.DefaultConfig()
	}
	names, err := StepNames(ctx.CorridorStyle)
	if err != nil {
		return nil, err
	}
	pipeline, err := DefaultRegistry().Pipeline(names...)
	if err != nil {
		return nil, err
	}

	began := time.Now()
	ctx, err = pipeline.Execute(ctx)
	if err != nil {
		return nil, err
	}

	lvl := &Level{
		ID:          uuid.NewString(),
		Flow:        flowName,
		DungeonID:   ctx.DungeonID,
		Seed:        ctx.EffectiveSeed(),
		TileSize:    ctx.TileSize,
		Grid:        ctx.Grid,
		Rooms:       ctx.Rooms,
		Bridges:     ctx.Bridges,
		SpawnPoints: ctx.SpawnPoints,
		Stats:       CollectStats(ctx),
		CreatedAt:   time.Now().UTC(),
	}
	logger.Infof("level %s: %d rooms, %d corridor tiles, %d doors in %s",
		lvl.ID, lvl.Stats.NumRooms, lvl.Stats.CorridorTiles, lvl.Stats.DoorCount,
		time.Since(began).Round(time.Millisecond))
	return lvl, nil
}
