package bsp

import (
	"math/rand"

	"github.com/jui-pixel/aoop-2025-group12-Alchmey-RPG-game-sub001/internal/room"
)

// PlaceRooms creates one empty room per leaf that can hold the gap
// inset plus a minimum-size room. Room dimensions are capped at
// roomWidth by roomHeight and rooms are numbered in leaf order. Each
// placed room is also recorded on its leaf.
func PlaceRooms(root *Node, gap, roomWidth, roomHeight, minRoomSize float64, rng *rand.Rand) ([]*room.Room, error) {
	var rooms []*room.Room
	for _, leaf := range root.Leaves() {
		if leaf.Width-2*gap < minRoomSize || leaf.Height-2*gap < minRoomSize {
			continue
		}
		w := max(min(leaf.Width-2*gap, roomWidth), minRoomSize)
		h := max(min(leaf.Height-2*gap, roomHeight), minRoomSize)
		r, err := room.NewRoom(len(rooms), leaf.X+gap, leaf.Y+gap, w, h, room.RoomEmpty, rng)
		if err != nil {
			return nil, err
		}
		leaf.Room = r
		rooms = append(rooms, r)
	}
	return rooms, nil
}
