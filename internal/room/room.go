// Package room models the typed rooms of a dungeon level: their
// placement rectangle, their local tile buffer, and the spawn markers
// their type calls for.
package room

import (
	"fmt"
	"math/rand"

	"github.com/jui-pixel/aoop-2025-group12-Alchmey-RPG-game-sub001/internal/grid"
)

// Room is one placed room. X, Y, Width and Height are grid
// coordinates; Tiles is the room-local buffer blitted onto the level
// grid after content generation. Connections holds the IDs of rooms
// this one is joined to by an accepted corridor edge.
type Room struct {
	ID          int
	X           float64
	Y           float64
	Width       float64
	Height      float64
	Type        RoomType
	Tiles       [][]grid.Tile
	Connections []int
}

// New creates a room without generating its tile buffer. Call
// GenerateTiles once the final type is known.
func New(id int, x, y, width, height float64, typ RoomType) *Room {
	return &Room{ID: id, X: x, Y: y, Width: width, Height: height, Type: typ}
}

// NewRoom creates a room and generates its tile buffer in one step.
func NewRoom(id int, x, y, width, height float64, typ RoomType, rng *rand.Rand) (*Room, error) {
	r := New(id, x, y, width, height, typ)
	if err := r.GenerateTiles(rng); err != nil {
		return nil, err
	}
	return r, nil
}

// GenerateTiles rebuilds the room's tile buffer from its current
// type. Safe to call again after the type changes; the buffer is
// replaced wholesale.
func (r *Room) GenerateTiles(rng *rand.Rand) error {
	w, h := r.TileSize()
	effects, err := planContent(r.Type, w, h)
	if err != nil {
		return fmt.Errorf("room %d: %w", r.ID, err)
	}

	tiles := make([][]grid.Tile, h)
	for y := range tiles {
		row := make([]grid.Tile, w)
		for x := range row {
			row[x] = grid.TileRoomFloor
		}
		tiles[y] = row
	}
	applyEffects(tiles, effects, rng)
	r.Tiles = tiles
	return nil
}

// TileSize returns the dimensions of the room's tile buffer.
func (r *Room) TileSize() (w, h int) {
	return int(r.Width), int(r.Height)
}

// Center returns the geometric center in grid coordinates.
func (r *Room) Center() (x, y float64) {
	return r.X + r.Width/2, r.Y + r.Height/2
}

// IntersectsBox reports whether the room's bounding box overlaps the
// box (x0,y0)-(x1,y1). Edges touching count as overlap.
func (r *Room) IntersectsBox(x0, y0, x1, y1 float64) bool {
	return x0 <= r.X+r.Width && x1 >= r.X && y0 <= r.Y+r.Height && y1 >= r.Y
}

// Connect records a corridor link to the other room.
func (r *Room) Connect(otherID int) {
	r.Connections = append(r.Connections, otherID)
}
