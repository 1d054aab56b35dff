package graph

// Rect is an axis-aligned rectangle in tile coordinates: top-left corner
// plus extent. Room footprints are passed to the extra-edge filter in this
// form so the geometry stays independent of the room package.
type Rect struct {
	X      float64
	Y      float64
	Width  float64
	Height float64
}

// Center returns the midpoint of the rectangle.
func (r Rect) Center() (float64, float64) {
	return r.X + r.Width/2, r.Y + r.Height/2
}

// Cohen-Sutherland region codes relative to a rectangle.
const (
	outLeft   = 1
	outRight  = 2
	outTop    = 4
	outBottom = 8
)

func outcode(x, y float64, r Rect) int {
	code := 0
	if x < r.X {
		code |= outLeft
	} else if x > r.X+r.Width {
		code |= outRight
	}
	if y < r.Y {
		code |= outTop
	} else if y > r.Y+r.Height {
		code |= outBottom
	}
	return code
}

// SegmentIntersectsRect reports whether the segment (x0, y0)-(x1, y1) passes
// through the rectangle's interior. Segments that only graze the boundary do
// not count.
func SegmentIntersectsRect(x0, y0, x1, y1 float64, r Rect) bool {
	out0 := outcode(x0, y0, r)
	out1 := outcode(x1, y1, r)

	// Both endpoints beyond the same side: trivially outside.
	if out0&out1 != 0 {
		return false
	}

	// An endpoint inside the rectangle. Accept when the segment midpoint is
	// strictly interior, otherwise fall through to the edge tests.
	if out0 == 0 || out1 == 0 {
		midX := (x0 + x1) / 2
		midY := (y0 + y1) / 2
		if r.X < midX && midX < r.X+r.Width && r.Y < midY && midY < r.Y+r.Height {
			return true
		}
	}

	left, right := r.X, r.X+r.Width
	top, bottom := r.Y, r.Y+r.Height
	return segmentsIntersect(x0, y0, x1, y1, left, top, right, top) ||
		segmentsIntersect(x0, y0, x1, y1, right, top, right, bottom) ||
		segmentsIntersect(x0, y0, x1, y1, right, bottom, left, bottom) ||
		segmentsIntersect(x0, y0, x1, y1, left, bottom, left, top)
}

func segmentsIntersect(x1, y1, x2, y2, x3, y3, x4, y4 float64) bool {
	ccw := func(ax, ay, bx, by, cx, cy float64) bool {
		return (cy-ay)*(bx-ax) > (by-ay)*(cx-ax)
	}
	return ccw(x1, y1, x3, y3, x4, y4) != ccw(x2, y2, x3, y3, x4, y4) &&
		ccw(x1, y1, x2, y2, x3, y3) != ccw(x1, y1, x2, y2, x4, y4)
}

// SegmentCrossesRooms reports whether the straight line between the centers
// of rects[a] and rects[b] passes through any other rectangle in rects.
func SegmentCrossesRooms(a, b int, rects []Rect) bool {
	x0, y0 := rects[a].Center()
	x1, y1 := rects[b].Center()
	for i, r := range rects {
		if i == a || i == b {
			continue
		}
		if SegmentIntersectsRect(x0, y0, x1, y1, r) {
			return true
		}
	}
	return false
}
