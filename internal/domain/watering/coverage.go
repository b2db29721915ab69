package watering

import (
	"math"

	"petbowl/internal/domain/world"
)

// ValidTiles lists the tiles that count as the bowl for watering. The water
// tile always comes first.
func ValidTiles(bowl world.Building, exactTile bool) []world.Point {
	water := bowl.WaterTile()
	if exactTile {
		return []world.Point{water}
	}
	tiles := make([]world.Point, 0, bowl.Width*bowl.Height)
	tiles = append(tiles, water)
	for i := 0; i < bowl.Width; i++ {
		for j := 0; j < bowl.Height; j++ {
			p := bowl.Anchor.Add(i, j)
			if p == water {
				continue
			}
			tiles = append(tiles, p)
		}
	}
	return tiles
}

// Covers is a square range check on each axis, not a circle.
func Covers(sprinkler world.Object, tile world.Point) bool {
	r := sprinkler.Radius
	return math.Abs(float64(tile.X-sprinkler.Position.X)) <= r &&
		math.Abs(float64(tile.Y-sprinkler.Position.Y)) <= r
}

// CoveringSprinkler returns the first sprinkler reaching any of the tiles.
func CoveringSprinkler(sprinklers []world.Object, tiles []world.Point) (world.Object, bool) {
	for _, s := range sprinklers {
		for _, tile := range tiles {
			if Covers(s, tile) {
				return s, true
			}
		}
	}
	return world.Object{}, false
}
