package world

import "math"

// MaxCoord bounds tile coordinates and building sizes on either axis.
const MaxCoord = 1 << 24

// MaxDay is the largest day number a farm can reach.
const MaxDay = math.MaxInt32

type Point struct {
	X int `json:"x"`
	Y int `json:"y"`
}

func (p Point) Add(dx, dy int) Point {
	return Point{X: p.X + dx, Y: p.Y + dy}
}

func (p Point) InBounds() bool {
	return p.X >= -MaxCoord && p.X <= MaxCoord && p.Y >= -MaxCoord && p.Y <= MaxCoord
}
