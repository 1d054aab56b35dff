package level

import (
	"fmt"

	"github.com/jui-pixel/aoop-2025-group12-Alchmey-RPG-game-sub001/internal/logger"
)

// StepFunc is one pipeline stage. It receives the run context and
// returns the context the next stage should see.
type StepFunc func(*Context) (*Context, error)

// Step pairs a stage with the name it is registered and logged under.
type Step struct {
	Name string
	Run  StepFunc
}

// Pipeline executes steps in the order they were added.
type Pipeline struct {
	steps []Step
}

// NewPipeline returns an empty pipeline.
func NewPipeline() *Pipeline {
	return &Pipeline{}
}

// AddStep appends a stage and returns the pipeline for chaining.
func (p *Pipeline) AddStep(name string, fn StepFunc) *Pipeline {
	p.steps = append(p.steps, Step{Name: name, Run: fn})
	return p
}

// Execute runs every stage in order, stopping at the first failure.
func (p *Pipeline) Execute(ctx *Context) (*Context, error) {
	for _, step := range p.steps {
		logger.Debugf("pipeline: running %s", step.Name)
		next, err := step.Run(ctx)
		if err != nil {
			return nil, fmt.Errorf("step %s: %w", step.Name, err)
		}
		ctx = next
	}
	return ctx, nil
}

// Registry maps step names to implementations. Pipelines are composed
// from it by name, so alternative stages stay discoverable in one
// place.
type Registry map[string]StepFunc

// DefaultRegistry lists every built-in pipeline step.
func DefaultRegistry() Registry {
	return Registry{
		"init_grid":            StepInitGrid,
		"generate_rooms":       StepGenerateRooms,
		"assign_room_types":    StepAssignRoomTypes,
		"connect_rooms":        StepConnectRooms,
		"generate_room_tiles":  StepGenerateRoomTiles,
		"carve_bridges":        StepCarveBridges,
		"carve_corridors":      StepCarveCorridors,
		"add_walls":            StepAddWalls,
		"generate_doors":       StepGenerateDoors,
		"seal_corridors":       StepSealCorridors,
		"collect_spawn_points": StepCollectSpawnPoints,
	}
}

// Pipeline assembles the named steps in order.
func (r Registry) Pipeline(names ...string) (*Pipeline, error) {
	p := NewPipeline()
	for _, name := range names {
		fn, ok := r[name]
		if !ok {
			return nil, fmt.Errorf("level: unknown pipeline step %q", name)
		}
		p.AddStep(name, fn)
	}
	return p, nil
}

// Corridor styles selectable per flow.
const (
	StyleBridges  = "bridges"
	StylePathfind = "pathfind"
)

// StepNames returns the stage order for a corridor style.
func StepNames(style string) ([]string, error) {
	var carve string
	switch style {
	case StyleBridges, "":
		carve = "carve_bridges"
	case StylePathfind:
		carve = "carve_corridors"
	default:
		return nil, fmt.Errorf("level: unknown corridor style %q", style)
	}
	return []string{
		"init_grid",
		"generate_rooms",
		"assign_room_types",
		"connect_rooms",
		"generate_room_tiles",
		carve,
		"add_walls",
		"generate_doors",
		"seal_corridors",
		"collect_spawn_points",
	}, nil
}
