package level

import (
	"strings"
	"testing"
	"time"

	"github.com/jui-pixel/aoop-2025-group12-Alchmey-RPG-game-sub001/internal/grid"
	"github.com/jui-pixel/aoop-2025-group12-Alchmey-RPG-game-sub001/internal/room"
)

func sampleLevel() *Level {
	g := grid.New(12, 8)
	for y := 1; y < 4; y++ {
		for x := 1; x < 5; x++ {
			g.SetTile(x, y, grid.TileStartRoomFloor)
		}
	}
	for x := 5; x < 8; x++ {
		g.SetTile(x, 2, grid.TileBridgeFloor)
	}
	g.SetTile(2, 2, grid.TilePlayerSpawn)
	g.SetTile(8, 2, grid.TileDoor)

	r1 := room.New(0, 1, 1, 4, 3, room.RoomStart)
	r1.Connections = []int{1}
	r2 := room.New(1, 8, 1, 3, 3, room.RoomEnd)
	r2.Connections = []int{0}

	return &Level{
		ID:        "level-0001",
		Flow:      "depths",
		DungeonID: 2,
		Seed:      99,
		TileSize:  32,
		Grid:      g,
		Rooms:     []*room.Room{r1, r2},
		Bridges: []room.Bridge{
			{X0: 4, Y0: 1, X1: 8, Y1: 3, Width: 2, Room1ID: 0, Room2ID: 1},
		},
		SpawnPoints: map[string][][2]int{
			grid.TilePlayerSpawn.String(): {{2, 2}},
		},
		Stats: Stats{
			NumRooms:      2,
			RoomTypes:     map[string]int{"START": 1, "END": 1},
			CorridorTiles: 3,
			DoorCount:     1,
			GridWidth:     12,
			GridHeight:    8,
		},
		CreatedAt: time.Date(2026, 3, 14, 9, 26, 53, 0, time.UTC),
	}
}

func assertLevelsEqual(t *testing.T, got, want *Level) {
	t.Helper()

	if got.ID != want.ID || got.Flow != want.Flow || got.DungeonID != want.DungeonID {
		t.Errorf("identity fields differ: got %s/%s/%d, want %s/%s/%d",
			got.ID, got.Flow, got.DungeonID, want.ID, want.Flow, want.DungeonID)
	}
	if got.Seed != want.Seed || got.TileSize != want.TileSize {
		t.Errorf("seed/tile size = %d/%d, want %d/%d",
			got.Seed, got.TileSize, want.Seed, want.TileSize)
	}
	if !got.CreatedAt.Equal(want.CreatedAt) {
		t.Errorf("created at = %v, want %v", got.CreatedAt, want.CreatedAt)
	}

	if got.Grid.Width() != want.Grid.Width() || got.Grid.Height() != want.Grid.Height() {
		t.Fatalf("grid = %dx%d, want %dx%d",
			got.Grid.Width(), got.Grid.Height(), want.Grid.Width(), want.Grid.Height())
	}
	for y := 0; y < want.Grid.Height(); y++ {
		for x := 0; x < want.Grid.Width(); x++ {
			if got.Grid.Tile(x, y) != want.Grid.Tile(x, y) {
				t.Errorf("Tile(%d, %d) = %v, want %v",
					x, y, got.Grid.Tile(x, y), want.Grid.Tile(x, y))
			}
		}
	}

	if len(got.Rooms) != len(want.Rooms) {
		t.Fatalf("rooms = %d, want %d", len(got.Rooms), len(want.Rooms))
	}
	for i, r := range want.Rooms {
		g := got.Rooms[i]
		if g.ID != r.ID || g.Type != r.Type || g.X != r.X || g.Y != r.Y ||
			g.Width != r.Width || g.Height != r.Height {
			t.Errorf("room %d differs after round trip", i)
		}
		if len(g.Connections) != len(r.Connections) {
			t.Errorf("room %d connections = %v, want %v", i, g.Connections, r.Connections)
		}
	}

	if len(got.Bridges) != len(want.Bridges) {
		t.Fatalf("bridges = %d, want %d", len(got.Bridges), len(want.Bridges))
	}
	for i, b := range want.Bridges {
		if got.Bridges[i] != b {
			t.Errorf("bridge %d = %+v, want %+v", i, got.Bridges[i], b)
		}
	}

	spawnKey := grid.TilePlayerSpawn.String()
	if len(got.SpawnPoints[spawnKey]) != len(want.SpawnPoints[spawnKey]) {
		t.Errorf("spawn points = %v, want %v",
			got.SpawnPoints[spawnKey], want.SpawnPoints[spawnKey])
	}

	if got.Stats.NumRooms != want.Stats.NumRooms ||
		got.Stats.CorridorTiles != want.Stats.CorridorTiles ||
		got.Stats.DoorCount != want.Stats.DoorCount {
		t.Errorf("stats = %+v, want %+v", got.Stats, want.Stats)
	}
}

func TestLevelRoundTripYAML(t *testing.T) {
	want := sampleLevel()
	data, err := want.EncodeYAML()
	if err != nil {
		t.Fatalf("EncodeYAML returned error: %v", err)
	}

	got, err := DecodeYAML(data)
	if err != nil {
		t.Fatalf("DecodeYAML returned error: %v", err)
	}
	assertLevelsEqual(t, got, want)
}

func TestLevelRoundTripJSON(t *testing.T) {
	want := sampleLevel()
	data, err := want.EncodeJSON()
	if err != nil {
		t.Fatalf("EncodeJSON returned error: %v", err)
	}

	got, err := DecodeJSON(data)
	if err != nil {
		t.Fatalf("DecodeJSON returned error: %v", err)
	}
	assertLevelsEqual(t, got, want)
}

func TestEncodeRows(t *testing.T) {
	g := grid.New(5, 2)
	g.SetTile(2, 0, grid.TileRoomFloor)
	g.SetTile(3, 0, grid.TileRoomFloor)

	rows := encodeRows(g)
	want := []string{"Outside:2,Room_floor:2,Outside:1", "Outside:5"}
	for i := range want {
		if rows[i] != want[i] {
			t.Errorf("row %d = %q, want %q", i, rows[i], want[i])
		}
	}
}

func TestDecodeRowsErrors(t *testing.T) {
	tests := []struct {
		name   string
		rows   []string
		width  int
		height int
	}{
		{"row count mismatch", []string{"Outside:5"}, 5, 2},
		{"row too short", []string{"Outside:4", "Outside:5"}, 5, 2},
		{"row too long", []string{"Outside:6", "Outside:5"}, 5, 2},
		{"unknown tag", []string{"Lava:5"}, 5, 1},
		{"missing count", []string{"Outside"}, 5, 1},
		{"bad count", []string{"Outside:zero"}, 5, 1},
		{"zero count", []string{"Outside:0,Room_floor:5"}, 5, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := decodeRows(tt.rows, tt.width, tt.height); err == nil {
				t.Errorf("decodeRows(%v) succeeded, want error", tt.rows)
			}
		})
	}
}

func TestDecodeRowsRoundTrip(t *testing.T) {
	g := grid.New(6, 3)
	g.SetTile(1, 1, grid.TileDoor)
	g.SetTile(2, 1, grid.TileBridgeFloor)
	g.SetTile(3, 1, grid.TileBridgeFloor)

	decoded, err := decodeRows(encodeRows(g), 6, 3)
	if err != nil {
		t.Fatalf("decodeRows returned error: %v", err)
	}
	for y := 0; y < 3; y++ {
		for x := 0; x < 6; x++ {
			if decoded.Tile(x, y) != g.Tile(x, y) {
				t.Errorf("Tile(%d, %d) = %v, want %v", x, y, decoded.Tile(x, y), g.Tile(x, y))
			}
		}
	}
}

func TestDecodeYAMLUnknownRoomType(t *testing.T) {
	data := `
id: x
grid_width: 2
grid_height: 1
rooms:
  - id: 0
    type: CASTLE
grid:
  - "Outside:2"
`
	_, err := DecodeYAML([]byte(data))
	if err == nil {
		t.Fatal("expected error for unknown room type")
	}
	if !strings.Contains(err.Error(), "unknown room type") {
		t.Errorf("error %q does not mention the unknown room type", err)
	}
}

func TestDecodeYAMLMalformed(t *testing.T) {
	if _, err := DecodeYAML([]byte("grid: [oops")); err == nil {
		t.Fatal("expected error for malformed YAML")
	}
}
