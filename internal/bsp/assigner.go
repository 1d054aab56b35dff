package bsp

import (
	"math"
	"math/rand"

	"github.com/jui-pixel/aoop-2025-group12-Alchmey-RPG-game-sub001/internal/room"
)

// AssignTypes stamps gameplay roles onto placed rooms: a random start
// room, the end room farthest from it, one NPC room when at least
// three rooms exist, and the remainder split between monster, trap
// and reward rooms by ratio. Reward rooms absorb the rounding
// remainder. Fewer than two rooms leave everything untyped.
//
// Callers regenerate room tiles afterwards; assignment only changes
// the Type field.
func AssignTypes(rooms []*room.Room, monsterRatio, trapRatio float64, rng *rand.Rand) {
	if len(rooms) < 2 {
		return
	}

	start := rooms[rng.Intn(len(rooms))]
	start.Type = room.RoomStart

	sx, sy := start.Center()
	var end *room.Room
	best := -1.0
	for _, r := range rooms {
		if r == start {
			continue
		}
		cx, cy := r.Center()
		if d := math.Hypot(cx-sx, cy-sy); d > best {
			best = d
			end = r
		}
	}
	end.Type = room.RoomEnd

	if len(rooms) >= 3 {
		var candidates []*room.Room
		for _, r := range rooms {
			if r.Type == room.RoomEmpty {
				candidates = append(candidates, r)
			}
		}
		candidates[rng.Intn(len(candidates))].Type = room.RoomNPC
	}

	assignRegularRooms(rooms, monsterRatio, trapRatio, rng)
}

func assignRegularRooms(rooms []*room.Room, monsterRatio, trapRatio float64, rng *rand.Rand) {
	var unassigned []*room.Room
	for _, r := range rooms {
		if r.Type == room.RoomEmpty {
			unassigned = append(unassigned, r)
		}
	}
	total := len(unassigned)
	numMonster := int(float64(total) * monsterRatio)
	numTrap := int(float64(total) * trapRatio)

	rng.Shuffle(total, func(i, j int) {
		unassigned[i], unassigned[j] = unassigned[j], unassigned[i]
	})

	idx := 0
	for i := 0; i < numMonster && idx < total; i++ {
		unassigned[idx].Type = room.RoomMonster
		idx++
	}
	for i := 0; i < numTrap && idx < total; i++ {
		unassigned[idx].Type = room.RoomTrap
		idx++
	}
	for ; idx < total; idx++ {
		unassigned[idx].Type = room.RoomReward
	}
}
