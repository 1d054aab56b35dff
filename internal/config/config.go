package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/jui-pixel/aoop-2025-group12-Alchmey-RPG-game-sub001/internal/grid"
)

// Config holds the structural parameters of one level generation run.
type Config struct {
	Grid        GridConfig         `yaml:"grid"`
	Rooms       RoomsConfig        `yaml:"rooms"`
	Bridges     BridgesConfig      `yaml:"bridges"`
	Lobby       LobbyConfig        `yaml:"lobby"`
	Pathfinding PathfindingConfig  `yaml:"pathfinding"`
	MonsterPool *MonsterPoolConfig `yaml:"monster_pool,omitempty"`
}

// GridConfig holds the level grid dimensions.
type GridConfig struct {
	// Width and Height are in tiles.
	Width  int `yaml:"width"`
	Height int `yaml:"height"`

	// TileSize is the render size of one tile in pixels.
	TileSize int `yaml:"tile_size"`
}

// RoomsConfig holds room placement and type assignment settings.
type RoomsConfig struct {
	// Width and Height cap room dimensions inside a partition leaf.
	Width  int `yaml:"width"`
	Height int `yaml:"height"`

	// MinSize is the smallest room edge the placer will accept.
	MinSize int `yaml:"min_size"`

	// Gap is the inset between a room and its partition leaf.
	Gap int `yaml:"gap"`

	// MaxSplitDepth bounds the partition tree depth.
	MaxSplitDepth int `yaml:"max_split_depth"`

	// MinSplitSize is the smallest region half the partitioner may
	// produce.
	MinSplitSize int `yaml:"min_split_size"`

	// MonsterRatio, TrapRatio and RewardRatio split the rooms left
	// over after the special rooms are placed. They must sum to 1;
	// reward rooms absorb the rounding remainder.
	MonsterRatio float64 `yaml:"monster_ratio"`
	TrapRatio    float64 `yaml:"trap_ratio"`
	RewardRatio  float64 `yaml:"reward_ratio"`
}

// BridgesConfig holds corridor carving settings.
type BridgesConfig struct {
	// MinWidth and MaxWidth bound the corridor width in tiles.
	MinWidth int `yaml:"min_width"`
	MaxWidth int `yaml:"max_width"`

	// ExtraRatio is the fraction of surviving non-tree edges added as
	// loops on top of the spanning tree. 0 keeps the pure tree.
	ExtraRatio float64 `yaml:"extra_ratio"`
}

// LobbyConfig holds the dimensions of the standalone lobby room.
type LobbyConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// PathfindingConfig holds per-tile movement costs for corridor
// routing, keyed by tile tag.
type PathfindingConfig struct {
	Costs map[string]float64 `yaml:"costs"`
}

// CostTable converts the tag-keyed cost map to tile keys. Unknown
// tags are rejected.
func (p *PathfindingConfig) CostTable() (map[grid.Tile]float64, error) {
	costs := make(map[grid.Tile]float64, len(p.Costs))
	for tag, cost := range p.Costs {
		tile, ok := grid.ParseTile(tag)
		if !ok {
			return nil, fmt.Errorf("config: unknown tile tag %q in pathfinding costs", tag)
		}
		costs[tile] = cost
	}
	return costs, nil
}

// MonsterSpec describes one monster type available to a level's spawn
// pool.
type MonsterSpec struct {
	Type string `yaml:"type"`

	// MinCount and MaxCount bound how many can spawn per marker.
	MinCount int `yaml:"min_count"`
	MaxCount int `yaml:"max_count"`

	HealthMultiplier float64 `yaml:"health_multiplier"`
	DamageMultiplier float64 `yaml:"damage_multiplier"`

	// SpawnWeight is the relative pick probability within the pool.
	SpawnWeight float64 `yaml:"spawn_weight"`
}

// UnmarshalYAML fills in per-field defaults before decoding so a spec
// can list only the fields it overrides.
func (m *MonsterSpec) UnmarshalYAML(value *yaml.Node) error {
	type raw MonsterSpec
	spec := raw{
		MinCount:         1,
		MaxCount:         3,
		HealthMultiplier: 1.0,
		DamageMultiplier: 1.0,
		SpawnWeight:      1.0,
	}
	if err := value.Decode(&spec); err != nil {
		return err
	}
	*m = MonsterSpec(spec)
	return nil
}

// Validate checks a single monster spec.
func (m *MonsterSpec) Validate() error {
	if m.Type == "" {
		return fmt.Errorf("config: monster spec missing a type")
	}
	if m.MinCount < 0 {
		return fmt.Errorf("config: monster %q min_count must not be negative, got %d", m.Type, m.MinCount)
	}
	if m.MaxCount < m.MinCount {
		return fmt.Errorf("config: monster %q max_count %d below min_count %d", m.Type, m.MaxCount, m.MinCount)
	}
	if m.HealthMultiplier <= 0 || m.DamageMultiplier <= 0 {
		return fmt.Errorf("config: monster %q multipliers must be positive", m.Type)
	}
	if m.SpawnWeight < 0 {
		return fmt.Errorf("config: monster %q spawn_weight must not be negative, got %v", m.Type, m.SpawnWeight)
	}
	return nil
}

// MonsterPoolConfig is the set of monster types a level draws from.
type MonsterPoolConfig struct {
	Monsters []MonsterSpec `yaml:"monsters"`

	// TotalMultiplier scales the overall monster count of the level.
	TotalMultiplier float64 `yaml:"total_multiplier"`
}

// UnmarshalYAML fills in pool defaults before decoding.
func (p *MonsterPoolConfig) UnmarshalYAML(value *yaml.Node) error {
	type raw MonsterPoolConfig
	pool := raw{TotalMultiplier: 1.0}
	if err := value.Decode(&pool); err != nil {
		return err
	}
	*p = MonsterPoolConfig(pool)
	return nil
}

// Validate checks the pool and every spec in it.
func (p *MonsterPoolConfig) Validate() error {
	if len(p.Monsters) == 0 {
		return fmt.Errorf("config: monster pool is empty")
	}
	if p.TotalMultiplier <= 0 {
		return fmt.Errorf("config: monster pool total_multiplier must be positive, got %v", p.TotalMultiplier)
	}
	totalWeight := 0.0
	for i := range p.Monsters {
		if err := p.Monsters[i].Validate(); err != nil {
			return err
		}
		totalWeight += p.Monsters[i].SpawnWeight
	}
	if totalWeight <= 0 {
		return fmt.Errorf("config: monster pool spawn weights sum to %v, need a positive total", totalWeight)
	}
	return nil
}

// DefaultConfig returns a Config with workable defaults for a
// mid-sized level.
func DefaultConfig() *Config {
	return &Config{
		Grid: GridConfig{
			Width:    120,
			Height:   100,
			TileSize: 32,
		},
		Rooms: RoomsConfig{
			Width:         20,
			Height:        20,
			MinSize:       15,
			Gap:           2,
			MaxSplitDepth: 6,
			MinSplitSize:  15,
			MonsterRatio:  0.8,
			TrapRatio:     0.1,
			RewardRatio:   0.1,
		},
		Bridges: BridgesConfig{
			MinWidth:   2,
			MaxWidth:   4,
			ExtraRatio: 0.0, // Pure spanning tree by default
		},
		Lobby: LobbyConfig{
			Width:  30,
			Height: 20,
		},
		Pathfinding: PathfindingConfig{
			Costs: map[string]float64{
				"Outside":      1.0,
				"Room_floor":   2.0,
				"Bridge_floor": 1.0,
				"Border_wall":  999.0,
			},
		},
	}
}

// LoadConfig loads generation configuration from a YAML file. A
// missing file yields the defaults; a file that fails to parse or
// validate yields the defaults plus the error.
func LoadConfig(path string) (*Config, error) {
	config := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return config, nil
		}
		return config, err
	}

	if err := yaml.Unmarshal(data, config); err != nil {
		return DefaultConfig(), err
	}
	if err := config.Validate(); err != nil {
		return DefaultConfig(), err
	}

	return config, nil
}

// Validate checks every structural parameter. The first violation is
// returned.
func (c *Config) Validate() error {
	if c.Grid.Width <= 0 || c.Grid.Height <= 0 {
		return fmt.Errorf("config: grid dimensions must be positive, got %dx%d", c.Grid.Width, c.Grid.Height)
	}
	if c.Grid.TileSize <= 0 {
		return fmt.Errorf("config: tile_size must be positive, got %d", c.Grid.TileSize)
	}
	if c.Rooms.Width <= 0 || c.Rooms.Height <= 0 {
		return fmt.Errorf("config: room dimensions must be positive, got %dx%d", c.Rooms.Width, c.Rooms.Height)
	}
	if c.Rooms.MinSize <= 0 {
		return fmt.Errorf("config: min_size must be positive, got %d", c.Rooms.MinSize)
	}
	if c.Rooms.Gap < 0 {
		return fmt.Errorf("config: gap must not be negative, got %d", c.Rooms.Gap)
	}
	if c.Rooms.MaxSplitDepth < 0 {
		return fmt.Errorf("config: max_split_depth must not be negative, got %d", c.Rooms.MaxSplitDepth)
	}
	if c.Rooms.MinSplitSize <= 0 {
		return fmt.Errorf("config: min_split_size must be positive, got %d", c.Rooms.MinSplitSize)
	}
	if c.Bridges.MinWidth <= 0 {
		return fmt.Errorf("config: min_width must be positive, got %d", c.Bridges.MinWidth)
	}
	if c.Bridges.MaxWidth < c.Bridges.MinWidth {
		return fmt.Errorf("config: max_width %d below min_width %d", c.Bridges.MaxWidth, c.Bridges.MinWidth)
	}
	if c.Bridges.ExtraRatio < 0 || c.Bridges.ExtraRatio > 1 {
		return fmt.Errorf("config: extra_ratio must be between 0 and 1, got %v", c.Bridges.ExtraRatio)
	}

	ratios := []struct {
		name  string
		value float64
	}{
		{"monster_ratio", c.Rooms.MonsterRatio},
		{"trap_ratio", c.Rooms.TrapRatio},
		{"reward_ratio", c.Rooms.RewardRatio},
	}
	for _, r := range ratios {
		if r.value < 0 || r.value > 1 {
			return fmt.Errorf("config: %s must be between 0 and 1, got %v", r.name, r.value)
		}
	}
	sum := c.Rooms.MonsterRatio + c.Rooms.TrapRatio + c.Rooms.RewardRatio
	if sum < 0.99 || sum > 1.01 {
		return fmt.Errorf("config: room type ratios must sum to 1, got %v", sum)
	}

	if c.Lobby.Width <= 0 || c.Lobby.Height <= 0 {
		return fmt.Errorf("config: lobby dimensions must be positive, got %dx%d", c.Lobby.Width, c.Lobby.Height)
	}
	if _, err := c.Pathfinding.CostTable(); err != nil {
		return err
	}
	if c.MonsterPool != nil {
		if err := c.MonsterPool.Validate(); err != nil {
			return err
		}
	}
	return nil
}
