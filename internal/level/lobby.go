package level

import (
	"math/rand"
	"time"

	"github.com/google/uuid"

	"github.com/jui-pixel/aoop-2025-group12-Alchmey-RPG-game-sub001/internal/config"
	"github.com/jui-pixel/aoop-2025-group12-Alchmey-RPG-game-sub001/internal/logger"
	"github.com/jui-pixel/aoop-2025-group12-Alchmey-RPG-game-sub001/internal/room"
	"github.com/jui-pixel/aoop-2025-group12-Alchmey-RPG-game-sub001/internal/seed"
)

// BuildLobby produces the hub level: a single walled lobby room
// centered on the grid, with its service NPC markers and spawn
// points. Lobby layout draws from its own seed stream so hub
// placement never shifts dungeon layouts.
func BuildLobby(ctx *Context) (*Level, error) {
	if ctx.Config == nil {
		ctx.Config = config.DefaultConfig()
	}
	ctx.Reset()

	rng := rand.New(rand.NewSource(seed.Derive(ctx.EffectiveSeed(), "lobby")))

	w := float64(ctx.Config.Lobby.Width)
	h := float64(ctx.Config.Lobby.Height)
	x := float64((ctx.GridWidth - ctx.Config.Lobby.Width) / 2)
	y := float64((ctx.GridHeight - ctx.Config.Lobby.Height) / 2)

	r, err := room.NewRoom(0, x, y, w, h, room.RoomLobby, rng)
	if err != nil {
		return nil, err
	}
	ctx.Rooms = []*room.Room{r}
	ctx.Grid.Blit(int(r.X), int(r.Y), r.Tiles)
	ctx.Grid.BorderRect(int(r.X), int(r.Y), int(r.Width), int(r.Height))
	if _, err := StepCollectSpawnPoints(ctx); err != nil {
		return nil, err
	}

	lvl := &Level{
		ID:          uuid.NewString(),
		Flow:        "lobby",
		DungeonID:   ctx.DungeonID,
		Seed:        ctx.EffectiveSeed(),
		TileSize:    ctx.TileSize,
		Grid:        ctx.Grid,
		Rooms:       ctx.Rooms,
		SpawnPoints: ctx.SpawnPoints,
		Stats:       CollectStats(ctx),
		CreatedAt:   time.Now().UTC(),
	}
	logger.Infof("lobby %s: %dx%d room on %dx%d grid",
		lvl.ID, ctx.Config.Lobby.Width, ctx.Config.Lobby.Height, ctx.GridWidth, ctx.GridHeight)
	return lvl, nil
}
