package generation

import (
	"gridfall/world"
)

// locateSpawn picks the player's entry tile: a uniform choice over every
// floor cell on the finished grid. A grid with no floor at all falls back to
// the exact center; callers must tolerate that cell being unwalkable in this
// degenerate case.
func (g *Generator) locateSpawn(grid *world.Grid) world.Point {
	floors := grid.FloorTiles()
	if len(floors) == 0 {
		g.logMessage("no floor tiles for spawn, falling back to grid center")
		return world.Point{X: grid.Width / 2, Y: grid.Height / 2}
	}
	return floors[g.rng.Intn(len(floors))]
}
