package room

// Bridge is the axis-aligned footprint of one carved corridor
// segment. An L-shaped corridor is recorded as two bridges sharing an
// elbow.
type Bridge struct {
	X0      float64
	Y0      float64
	X1      float64
	Y1      float64
	Width   float64
	Room1ID int
	Room2ID int
}
