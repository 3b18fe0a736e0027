package generation

import (
	"gridfall/world"
)

// placeStairs places the down staircase every level and the up staircase on
// every level below the surface. Stale stair tiles from a previous pass are
// cleared first so regeneration never leaves duplicates behind.
func (g *Generator) placeStairs(m *world.TileMap, level int) {
	g.clearStairs(m)

	if len(m.Rooms) == 0 {
		return
	}

	downRoom := g.rng.Intn(len(m.Rooms))
	downX, downY := g.stairCell(m.Tiles, m.Rooms[downRoom])
	m.Tiles.SetTile(downX, downY, world.TileStairsDown)
	m.DownStairs = &world.Point{X: downX, Y: downY}

	if level == 0 {
		return
	}

	// Prefer a different room for the way back up
	upRoom := downRoom
	if len(m.Rooms) > 1 {
		for upRoom == downRoom {
			upRoom = g.rng.Intn(len(m.Rooms))
		}
	}

	upX, upY := g.stairCell(m.Tiles, m.Rooms[upRoom])
	if upX == downX && upY == downY {
		// Same cell despite the room preference; probe the neighbors for
		// a floor cell instead.
		probed := false
		for _, dir := range cardinalDirections {
			nx, ny := upX+dir[0], upY+dir[1]
			if m.Tiles.TileAt(nx, ny) == world.TileFloor {
				upX, upY = nx, ny
				probed = true
				break
			}
		}
		if !probed {
			g.logMessage("no free cell for up stairs on level %d, leaving them out", level)
			return
		}
	}

	m.Tiles.SetTile(upX, upY, world.TileStairsUp)
	m.UpStairs = &world.Point{X: upX, Y: upY}
}

// clearStairs removes any stair tiles already on the grid and resets the
// recorded positions
func (g *Generator) clearStairs(m *world.TileMap) {
	for y := 0; y < m.Tiles.Height; y++ {
		for x := 0; x < m.Tiles.Width; x++ {
			if m.Tiles.Tiles[y][x].IsStairs() {
				m.Tiles.SetTile(x, y, world.TileFloor)
			}
		}
	}
	m.DownStairs = nil
	m.UpStairs = nil
}

// stairCell picks a random floor cell inside the room, inset one tile from
// its edge so the stairs never sit in a doorway. Shaped rooms wall off parts
// of their footprint (pillars, hall dividers, ellipse corners), so the draw
// retries until it finds a usable site and then falls back to scanning the
// whole footprint. Rooms too small to inset use their center.
func (g *Generator) stairCell(grid *world.Grid, room world.Room) (int, int) {
	if room.Width > 2 && room.Height > 2 {
		for attempt := 0; attempt < 20; attempt++ {
			x := room.X + 1 + g.rng.Intn(room.Width-2)
			y := room.Y + 1 + g.rng.Intn(room.Height-2)
			if stairSite(grid, x, y) {
				return x, y
			}
		}
	}

	centerX, centerY := room.Center()
	if stairSite(grid, centerX, centerY) {
		return centerX, centerY
	}
	for y := room.Y; y < room.Y+room.Height; y++ {
		for x := room.X; x < room.X+room.Width; x++ {
			if stairSite(grid, x, y) {
				return x, y
			}
		}
	}
	return centerX, centerY
}

// stairSite reports whether (x, y) can hold a staircase: the cell is floor
// and at least one cardinal neighbor is passable, so the stairs are never
// sealed inside a feature wall.
func stairSite(grid *world.Grid, x, y int) bool {
	if grid.TileAt(x, y) != world.TileFloor {
		return false
	}
	for _, dir := range cardinalDirections {
		if grid.TileAt(x+dir[0], y+dir[1]).Walkability() != world.Blocked {
			return true
		}
	}
	return false
}
