// Package level runs the generation pipeline: it carves a tile grid
// into typed rooms joined by corridors and doors, collects spawn
// markers, and packages the result as a Level for storage, rendering
// and serving.
package level

import (
	"math/rand"
	"strconv"
	"time"

	"github.com/jui-pixel/aoop-2025-group12-Alchmey-RPG-game-sub001/internal/bsp"
	"github.com/jui-pixel/aoop-2025-group12-Alchmey-RPG-game-sub001/internal/config"
	"github.com/jui-pixel/aoop-2025-group12-Alchmey-RPG-game-sub001/internal/grid"
	"github.com/jui-pixel/aoop-2025-group12-Alchmey-RPG-game-sub001/internal/room"
	"github.com/jui-pixel/aoop-2025-group12-Alchmey-RPG-game-sub001/internal/seed"
)

// Context is the shared state one pipeline run mutates. Steps receive
// it, work on it, and pass it along; nothing else touches it during a
// run.
type Context struct {
	GridWidth  int
	GridHeight int
	TileSize   int
	DungeonID  int

	// Seed is the base seed of the run. nil or 0 means "pick one";
	// the chosen value is written back so every run can be replayed.
	Seed *int64

	// CorridorStyle selects how accepted edges become corridors:
	// "bridges" (geometric spans) or "pathfind" (cost-steered A*).
	CorridorStyle string

	Config *config.Config

	Grid        *grid.Grid
	Rooms       []*room.Room
	Bridges     []room.Bridge
	Edges       [][2]int
	BSPRoot     *bsp.Node
	SpawnPoints map[string][][2]int

	rng *rand.Rand
}

// NewContext returns a context with default dimensions and a fresh
// grid.
func NewContext() *Context {
	ctx := &Context{
		GridWidth:     100,
		GridHeight:    80,
		TileSize:      32,
		CorridorStyle: StyleBridges,
	}
	ctx.Reset()
	return ctx
}

// Reset replaces the grid with a fresh all-Outside one and drops all
// generated state. The seed and rng survive so a reset mid-run does
// not fork the random stream.
func (c *Context) Reset() {
	c.Grid = grid.New(c.GridWidth, c.GridHeight)
	c.Rooms = nil
	c.Bridges = nil
	c.Edges = nil
	c.BSPRoot = nil
	c.SpawnPoints = make(map[string][][2]int)
}

// EffectiveSeed returns the base seed, choosing and recording one
// from the clock when none is set.
func (c *Context) EffectiveSeed() int64 {
	if c.Seed == nil || *c.Seed == 0 {
		s := time.Now().UnixNano()
		c.Seed = &s
	}
	return *c.Seed
}

// RNG returns the run's random source. The stream is derived from the
// base seed and the dungeon ID, so one world seed yields independent
// layouts per dungeon.
func (c *Context) RNG() *rand.Rand {
	if c.rng == nil {
		s := seed.Derive(c.EffectiveSeed(), "dungeon", strconv.Itoa(c.DungeonID))
		c.rng = rand.New(rand.NewSource(s))
	}
	return c.rng
}
