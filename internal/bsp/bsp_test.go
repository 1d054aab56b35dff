package bsp

import (
	"math"
	"math/rand"
	"testing"

	"github.com/jui-pixel/aoop-2025-group12-Alchmey-RPG-game-sub001/internal/room"
)

var testSeeds = []int64{1, 42, 100, 255, 1000}

func TestGenerateStopsAtDepth(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	root := Generate(200, 160, 0, 15, rng)
	if !root.IsLeaf() {
		t.Error("root split despite maxDepth 0")
	}
	if got := root.Count(); got != 1 {
		t.Errorf("Count() = %d, want 1", got)
	}
}

func TestGenerateSkipsSmallRegions(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	root := Generate(20, 20, 6, 15, rng)
	if !root.IsLeaf() {
		t.Error("region too small for two halves was split")
	}
}

func TestGenerateLeafBounds(t *testing.T) {
	for _, seed := range testSeeds {
		rng := rand.New(rand.NewSource(seed))
		root := Generate(200, 160, 6, 15, rng)

		if got := root.Depth(); got > 7 {
			t.Errorf("seed %d: Depth() = %d, want <= 7", seed, got)
		}
		for _, leaf := range root.Leaves() {
			if leaf.Width < 15 || leaf.Height < 15 {
				t.Errorf("seed %d: leaf %vx%v below minimum size", seed, leaf.Width, leaf.Height)
			}
			if leaf.X < 0 || leaf.Y < 0 || leaf.X+leaf.Width > 200 || leaf.Y+leaf.Height > 160 {
				t.Errorf("seed %d: leaf out of bounds at (%v,%v)", seed, leaf.X, leaf.Y)
			}
		}
	}
}

func TestLeavesPartitionArea(t *testing.T) {
	for _, seed := range testSeeds {
		rng := rand.New(rand.NewSource(seed))
		root := Generate(200, 160, 6, 15, rng)

		leaves := root.Leaves()
		area := 0.0
		for _, leaf := range leaves {
			area += leaf.Width * leaf.Height
		}
		if area != 200*160 {
			t.Errorf("seed %d: leaf areas sum to %v, want %v", seed, area, 200*160)
		}
		if want := (root.Count() + 1) / 2; len(leaves) != want {
			t.Errorf("seed %d: %d leaves in a tree of %d nodes", seed, len(leaves), root.Count())
		}
	}
}

func TestPlaceRoomsWithinLeaves(t *testing.T) {
	for _, seed := range testSeeds {
		rng := rand.New(rand.NewSource(seed))
		root := Generate(120, 100, 6, 15, rng)
		rooms, err := PlaceRooms(root, 2, 20, 20, 15, rng)
		if err != nil {
			t.Fatalf("seed %d: PlaceRooms error: %v", seed, err)
		}
		if len(rooms) == 0 {
			t.Fatalf("seed %d: no rooms placed", seed)
		}

		for i, r := range rooms {
			if r.ID != i {
				t.Errorf("seed %d: room %d has ID %d", seed, i, r.ID)
			}
			if r.Type != room.RoomEmpty {
				t.Errorf("seed %d: room %d placed with type %v", seed, i, r.Type)
			}
			if r.Width < 15 || r.Width > 20 || r.Height < 15 || r.Height > 20 {
				t.Errorf("seed %d: room %d dimensions %vx%v outside [15,20]", seed, i, r.Width, r.Height)
			}
			if r.Tiles == nil {
				t.Errorf("seed %d: room %d has no tile buffer", seed, i)
			}
		}

		for _, leaf := range root.Leaves() {
			r := leaf.Room
			if r == nil {
				continue
			}
			if r.X != leaf.X+2 || r.Y != leaf.Y+2 {
				t.Errorf("seed %d: room %d not inset by gap: (%v,%v) in leaf (%v,%v)",
					seed, r.ID, r.X, r.Y, leaf.X, leaf.Y)
			}
			if r.X+r.Width > leaf.X+leaf.Width || r.Y+r.Height > leaf.Y+leaf.Height {
				t.Errorf("seed %d: room %d overflows its leaf", seed, r.ID)
			}
		}
	}
}

func TestPlaceRoomsSkipsTightLeaf(t *testing.T) {
	root := &Node{Width: 50, Height: 40}
	root.Left = &Node{X: 0, Y: 0, Width: 10, Height: 40}
	root.Right = &Node{X: 10, Y: 0, Width: 40, Height: 40}

	rng := rand.New(rand.NewSource(1))
	rooms, err := PlaceRooms(root, 2, 20, 20, 15, rng)
	if err != nil {
		t.Fatal(err)
	}
	if len(rooms) != 1 {
		t.Fatalf("rooms placed = %d, want 1", len(rooms))
	}
	if root.Left.Room != nil {
		t.Error("tight leaf received a room")
	}
	if root.Right.Room == nil {
		t.Error("viable leaf received no room")
	}
}

func lineOfRooms(n int) []*room.Room {
	rooms := make([]*room.Room, n)
	for i := range rooms {
		rooms[i] = room.New(i, float64(i*10), 0, 5, 5, room.RoomEmpty)
	}
	return rooms
}

func TestAssignTypesCounts(t *testing.T) {
	for _, seed := range testSeeds {
		rooms := lineOfRooms(10)
		rng := rand.New(rand.NewSource(seed))
		AssignTypes(rooms, 0.8, 0.1, rng)

		counts := make(map[room.RoomType]int)
		for _, r := range rooms {
			counts[r.Type]++
		}
		want := map[room.RoomType]int{
			room.RoomStart:   1,
			room.RoomEnd:     1,
			room.RoomNPC:     1,
			room.RoomMonster: 5,
			room.RoomReward:  2,
		}
		for typ, n := range want {
			if counts[typ] != n {
				t.Errorf("seed %d: %v rooms = %d, want %d", seed, typ, counts[typ], n)
			}
		}
		if counts[room.RoomEmpty] != 0 {
			t.Errorf("seed %d: %d rooms left untyped", seed, counts[room.RoomEmpty])
		}
	}
}

func TestAssignTypesSingleRoom(t *testing.T) {
	rooms := lineOfRooms(1)
	rng := rand.New(rand.NewSource(1))
	AssignTypes(rooms, 0.8, 0.1, rng)
	if rooms[0].Type != room.RoomEmpty {
		t.Errorf("single room typed %v, want EMPTY", rooms[0].Type)
	}
}

func TestAssignTypesTwoRooms(t *testing.T) {
	rooms := lineOfRooms(2)
	rng := rand.New(rand.NewSource(1))
	AssignTypes(rooms, 0.8, 0.1, rng)

	counts := make(map[room.RoomType]int)
	for _, r := range rooms {
		counts[r.Type]++
	}
	if counts[room.RoomStart] != 1 || counts[room.RoomEnd] != 1 {
		t.Errorf("two rooms typed %v and %v, want START and END", rooms[0].Type, rooms[1].Type)
	}
}

func TestAssignTypesEndIsFarthest(t *testing.T) {
	for _, seed := range testSeeds {
		rooms := lineOfRooms(8)
		rng := rand.New(rand.NewSource(seed))
		AssignTypes(rooms, 0.8, 0.1, rng)

		var start, end *room.Room
		for _, r := range rooms {
			switch r.Type {
			case room.RoomStart:
				start = r
			case room.RoomEnd:
				end = r
			}
		}
		if start == nil || end == nil {
			t.Fatalf("seed %d: missing start or end room", seed)
		}

		sx, sy := start.Center()
		ex, ey := end.Center()
		endDist := math.Hypot(ex-sx, ey-sy)
		for _, r := range rooms {
			if r == start {
				continue
			}
			cx, cy := r.Center()
			if d := math.Hypot(cx-sx, cy-sy); d > endDist {
				t.Errorf("seed %d: room %d is farther from start than the end room", seed, r.ID)
			}
		}
	}
}
