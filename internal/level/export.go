package level

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/jui-pixel/aoop-2025-group12-Alchmey-RPG-game-sub001/internal/grid"
	"github.com/jui-pixel/aoop-2025-group12-Alchmey-RPG-game-sub001/internal/room"
)

// levelFile is the on-disk form of a Level. Grid rows are run-length
// encoded as "Tag:count" segments joined by commas, one string per row.
// Room tile buffers are not stored; the blitted grid already holds them.
type levelFile struct {
	ID          string              `yaml:"id" json:"id"`
	Flow        string              `yaml:"flow" json:"flow"`
	DungeonID   int                 `yaml:"dungeon_id" json:"dungeon_id"`
	Seed        int64               `yaml:"seed" json:"seed"`
	GridWidth   int                 `yaml:"grid_width" json:"grid_width"`
	GridHeight  int                 `yaml:"grid_height" json:"grid_height"`
	TileSize    int                 `yaml:"tile_size" json:"tile_size"`
	CreatedAt   time.Time           `yaml:"created_at" json:"created_at"`
	Stats       Stats               `yaml:"stats" json:"stats"`
	Rooms       []roomRecord        `yaml:"rooms" json:"rooms"`
	Bridges     []bridgeRecord      `yaml:"bridges,omitempty" json:"bridges,omitempty"`
	SpawnPoints map[string][][2]int `yaml:"spawn_points,omitempty" json:"spawn_points,omitempty"`
	Grid        []string            `yaml:"grid" json:"grid"`
}

type roomRecord struct {
	ID          int     `yaml:"id" json:"id"`
	X           float64 `yaml:"x" json:"x"`
	Y           float64 `yaml:"y" json:"y"`
	Width       float64 `yaml:"width" json:"width"`
	Height      float64 `yaml:"height" json:"height"`
	Type        string  `yaml:"type" json:"type"`
	Connections []int   `yaml:"connections,omitempty" json:"connections,omitempty"`
}

type bridgeRecord struct {
	X0    float64 `yaml:"x0" json:"x0"`
	Y0    float64 `yaml:"y0" json:"y0"`
	X1    float64 `yaml:"x1" json:"x1"`
	Y1    float64 `yaml:"y1" json:"y1"`
	Width float64 `yaml:"width" json:"width"`
	Room1 int     `yaml:"room1" json:"room1"`
	Room2 int     `yaml:"room2" json:"room2"`
}

func (l *Level) toFile() *levelFile {
	f := &levelFile{
		ID:          l.ID,
		Flow:        l.Flow,
		DungeonID:   l.DungeonID,
		Seed:        l.Seed,
		GridWidth:   l.Grid.Width(),
		GridHeight:  l.Grid.Height(),
		TileSize:    l.TileSize,
		CreatedAt:   l.CreatedAt,
		Stats:       l.Stats,
		SpawnPoints: l.SpawnPoints,
		Grid:        encodeRows(l.Grid),
	}
	for _, r := range l.Rooms {
		f.Rooms = append(f.Rooms, roomRecord{
			ID:          r.ID,
			X:           r.X,
			Y:           r.Y,
			Width:       r.Width,
			Height:      r.Height,
			Type:        r.Type.String(),
			Connections: r.Connections,
		})
	}
	for _, b := range l.Bridges {
		f.Bridges = append(f.Bridges, bridgeRecord{
			X0:    b.X0,
			Y0:    b.Y0,
			X1:    b.X1,
			Y1:    b.Y1,
			Width: b.Width,
			Room1: b.Room1ID,
			Room2: b.Room2ID,
		})
	}
	return f
}

func fromFile(f *levelFile) (*Level, error) {
	g, err := decodeRows(f.Grid, f.GridWidth, f.GridHeight)
	if err != nil {
		return nil, err
	}

	rooms := make([]*room.Room, 0, len(f.Rooms))
	for _, rec := range f.Rooms {
		typ, ok := room.ParseRoomType(rec.Type)
		if !ok {
			return nil, fmt.Errorf("level: unknown room type %q for room %d", rec.Type, rec.ID)
		}
		r := room.New(rec.ID, rec.X, rec.Y, rec.Width, rec.Height, typ)
		r.Connections = rec.Connections
		rooms = append(rooms, r)
	}

	bridges := make([]room.Bridge, 0, len(f.Bridges))
	for _, rec := range f.Bridges {
		bridges = append(bridges, room.Bridge{
			X0:      rec.X0,
			Y0:      rec.Y0,
			X1:      rec.X1,
			Y1:      rec.Y1,
			Width:   rec.Width,
			Room1ID: rec.Room1,
			Room2ID: rec.Room2,
		})
	}

	return &Level{
		ID:          f.ID,
		Flow:        f.Flow,
		DungeonID:   f.DungeonID,
		Seed:        f.Seed,
		TileSize:    f.TileSize,
		Grid:        g,
		Rooms:       rooms,
		Bridges:     bridges,
		SpawnPoints: f.SpawnPoints,
		Stats:       f.Stats,
		CreatedAt:   f.CreatedAt,
	}, nil
}

// EncodeYAML renders the level as YAML.
func (l *Level) EncodeYAML() ([]byte, error) {
	return yaml.Marshal(l.toFile())
}

// EncodeJSON renders the level as indented JSON.
func (l *Level) EncodeJSON() ([]byte, error) {
	return json.MarshalIndent(l.toFile(), "", "  ")
}

// DecodeYAML parses a level from its YAML form.
func DecodeYAML(data []byte) (*Level, error) {
	var f levelFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("level: %w", err)
	}
	return fromFile(&f)
}

// DecodeJSON parses a level from its JSON form.
func DecodeJSON(data []byte) (*Level, error) {
	var f levelFile
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("level: %w", err)
	}
	return fromFile(&f)
}

func encodeRows(g *grid.Grid) []string {
	rows := make([]string, g.Height())
	for y := 0; y < g.Height(); y++ {
		row := g.Row(y)
		var segs []string
		runTile, runLen := row[0], 1
		for _, t := range row[1:] {
			if t == runTile {
				runLen++
				continue
			}
			segs = append(segs, runTile.String()+":"+strconv.Itoa(runLen))
			runTile, runLen = t, 1
		}
		segs = append(segs, runTile.String()+":"+strconv.Itoa(runLen))
		rows[y] = strings.Join(segs, ",")
	}
	return rows
}

func decodeRows(rows []string, width, height int) (*grid.Grid, error) {
	if len(rows) != height {
		return nil, fmt.Errorf("level: grid has %d rows, expected %d", len(rows), height)
	}
	g := grid.New(width, height)
	for y, row := range rows {
		x := 0
		for _, seg := range strings.Split(row, ",") {
			name, countStr, ok := strings.Cut(seg, ":")
			if !ok {
				return nil, fmt.Errorf("level: bad run %q in grid row %d", seg, y)
			}
			t, ok := grid.ParseTile(name)
			if !ok {
				return nil, fmt.Errorf("level: unknown tile %q in grid row %d", name, y)
			}
			n, err := strconv.Atoi(countStr)
			if err != nil || n <= 0 {
				return nil, fmt.Errorf("level: bad run length %q in grid row %d", countStr, y)
			}
			for i := 0; i < n; i++ {
				g.SetTile(x, y, t)
				x++
			}
		}
		if x != width {
			return nil, fmt.Errorf("level: grid row %d holds %d tiles, expected %d", y, x, width)
		}
	}
	return g, nil
}
