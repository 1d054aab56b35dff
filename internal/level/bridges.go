package level

import (
	"math"
	"math/rand"

	"github.com/jui-pixel/aoop-2025-group12-Alchmey-RPG-game-sub001/internal/logger"
	"github.com/jui-pixel/aoop-2025-group12-Alchmey-RPG-game-sub001/internal/room"
)

// StepCarveBridges materializes every accepted edge as one straight
// span or an L-shaped pair of spans, records them on the context, and
// carves their footprints into the grid.
func StepCarveBridges(ctx *Context) (*Context, error) {
	rng := ctx.RNG()
	bc := ctx.Config.Bridges

	for _, e := range ctx.Edges {
		a, b := ctx.Rooms[e[0]], ctx.Rooms[e[1]]
		sx, sy := connectionPoint(rng, a)
		ex, ey := connectionPoint(rng, b)
		// Normalize left to right so the span builders see ordered
		// endpoints.
		if sx > ex {
			a, b = b, a
			sx, ex = ex, sx
			sy, ey = ey, sy
		}
		w := bridgeWidth(rng, bc.MinWidth, bc.MaxWidth)

		spans := planSpans(ctx.Rooms, a.ID, b.ID,
			float64(sx), float64(sy), float64(ex), float64(ey), w, rng)
		for _, br := range spans {
			ctx.Bridges = append(ctx.Bridges, br)
			ctx.Grid.CarveBridge(br.X0, br.Y0, br.X1, br.Y1)
		}
	}
	logger.Debugf("bridges: %d spans carved for %d edges", len(ctx.Bridges), len(ctx.Edges))
	return ctx, nil
}

// connectionPoint picks a corridor anchor at least two tiles inside
// the room on both axes.
func connectionPoint(rng *rand.Rand, r *room.Room) (int, int) {
	x := randBetween(rng, int(r.X)+2, int(r.X)+int(r.Width)-3)
	y := randBetween(rng, int(r.Y)+2, int(r.Y)+int(r.Height)-3)
	return x, y
}

// randBetween draws from [lo, hi]. Rooms narrower than the double
// inset collapse to the inset corner.
func randBetween(rng *rand.Rand, lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + rng.Intn(hi-lo+1)
}

// bridgeWidth draws a corridor width from a normal distribution
// centered between the bounds, clamped to them.
func bridgeWidth(rng *rand.Rand, minW, maxW int) float64 {
	mean := float64((minW + maxW) / 2)
	sigma := float64(maxW-minW) / 2
	w := int(rng.NormFloat64()*sigma + mean)
	return float64(max(minW, min(maxW, w)))
}

// planSpans decides the corridor shape for one edge. Endpoints within
// one tile on an axis get a straight span when it clears every other
// room; everything else becomes an L-shaped pair. A colliding L flips
// its orientation once and then accepts the result either way.
func planSpans(rooms []*room.Room, aID, bID int, sx, sy, ex, ey, w float64, rng *rand.Rand) []room.Bridge {
	lShape := func(horizontalFirst bool) []room.Bridge {
		build := func(hFirst bool) []room.Bridge {
			if hFirst {
				return []room.Bridge{
					horizontalSpan(sx, ex, sy, w, aID, bID),
					verticalSpan(sy, ey, ex, w, aID, bID),
				}
			}
			return []room.Bridge{
				verticalSpan(sy, ey, sx, w, aID, bID),
				horizontalSpan(sx, ex, ey, w, aID, bID),
			}
		}
		spans := build(horizontalFirst)
		if anySpanHitsRoom(spans, rooms, aID, bID) {
			spans = build(!horizontalFirst)
		}
		return spans
	}

	switch {
	case math.Abs(sx-ex) <= 1:
		br := verticalSpan(sy, ey, sx, w, aID, bID)
		if spanHitsRoom(br, rooms, aID, bID) {
			return lShape(true)
		}
		return []room.Bridge{br}
	case math.Abs(sy-ey) <= 1:
		br := horizontalSpan(sx, ex, sy, w, aID, bID)
		if spanHitsRoom(br, rooms, aID, bID) {
			return lShape(false)
		}
		return []room.Bridge{br}
	default:
		return lShape(rng.Intn(2) == 0)
	}
}

func horizontalSpan(x1, x2, y, w float64, aID, bID int) room.Bridge {
	return room.Bridge{
		X0:      min(x1, x2),
		Y0:      y - w/2,
		X1:      max(x1, x2),
		Y1:      y + w/2,
		Width:   w,
		Room1ID: aID,
		Room2ID: bID,
	}
}

func verticalSpan(y1, y2, x, w float64, aID, bID int) room.Bridge {
	return room.Bridge{
		X0:      x - w/2,
		Y0:      min(y1, y2),
		X1:      x + w/2,
		Y1:      max(y1, y2),
		Width:   w,
		Room1ID: aID,
		Room2ID: bID,
	}
}

// spanHitsRoom reports whether the span's footprint overlaps any room
// other than the two it connects.
func spanHitsRoom(br room.Bridge, rooms []*room.Room, aID, bID int) bool {
	for _, r := range rooms {
		if r.ID == aID || r.ID == bID {
			continue
		}
		if r.IntersectsBox(br.X0, br.Y0, br.X1, br.Y1) {
			return true
		}
	}
	return false
}

func anySpanHitsRoom(spans []room.Bridge, rooms []*room.Room, aID, bID int) bool {
	for _, br := range spans {
		if spanHitsRoom(br, rooms, aID, bID) {
			return true
		}
	}
	return false
}
