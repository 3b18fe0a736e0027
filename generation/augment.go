package generation

import (
	"gridfall/world"
)

const secretRoomAttempts = 50

// addSecretRooms hides 1-3 small rooms behind existing walls. Each one opens
// onto the dungeon through a single secret door that renders as plain wall.
// Placement is best-effort: a room that cannot be fitted inside its attempt
// budget is simply skipped.
func (g *Generator) addSecretRooms(grid *world.Grid) {
	count := g.rng.Range(1, 3)
	for i := 0; i < count; i++ {
		g.tryPlaceSecretRoom(grid)
	}
}

// tryPlaceSecretRoom samples wall cells that touch the dungeon and looks for
// space behind them to hollow out
func (g *Generator) tryPlaceSecretRoom(grid *world.Grid) {
	for attempt := 0; attempt < secretRoomAttempts; attempt++ {
		doorX := g.rng.Range(2, grid.Width-3)
		doorY := g.rng.Range(2, grid.Height-3)

		if grid.TileAt(doorX, doorY) != world.TileWall {
			continue
		}

		// The door needs the dungeon on one side and empty rock behind it
		entry, ok := g.secretEntryDirection(grid, doorX, doorY)
		if !ok {
			continue
		}

		width := g.rng.Range(3, 6)
		height := g.rng.Range(3, 6)
		room, ok := secretRoomBehind(grid, doorX, doorY, entry, width, height)
		if !ok {
			continue
		}
		if !g.secretAreaIsSolid(grid, room) {
			continue
		}

		for y := room.Y; y < room.Y+room.Height; y++ {
			for x := room.X; x < room.X+room.Width; x++ {
				grid.SetTile(x, y, world.TileFloor)
			}
		}
		grid.SetTile(doorX, doorY, world.TileSecretDoor)

		// Sometimes wall off the center cell as a placeholder feature
		if g.rng.Chance(0.3) && room.Width >= 4 && room.Height >= 4 {
			centerX, centerY := room.Center()
			grid.SetTile(centerX, centerY, world.TileWall)
		}
		return
	}
	g.logMessage("secret room placement gave up after %d attempts", secretRoomAttempts)
}

// secretEntryDirection finds a side of the candidate door cell that already
// holds floor. The room is then dug in the opposite direction.
func (g *Generator) secretEntryDirection(grid *world.Grid, x, y int) ([2]int, bool) {
	for _, dir := range cardinalDirections {
		if grid.TileAt(x+dir[0], y+dir[1]) == world.TileFloor {
			return dir, true
		}
	}
	return [2]int{}, false
}

// secretRoomBehind computes the footprint of a room dug away from the floor
// side of the door, centered on the door's axis. Reports false when the
// footprint would leave the grid interior.
func secretRoomBehind(grid *world.Grid, doorX, doorY int, entry [2]int, width, height int) (world.Room, bool) {
	// Dig opposite the entry side
	digX, digY := -entry[0], -entry[1]

	var room world.Room
	room.Width = width
	room.Height = height

	switch {
	case digX == 1: // room extends east of the door
		room.X = doorX + 1
		room.Y = doorY - height/2
	case digX == -1: // west
		room.X = doorX - width
		room.Y = doorY - height/2
	case digY == 1: // south
		room.X = doorX - width/2
		room.Y = doorY + 1
	default: // north
		room.X = doorX - width/2
		room.Y = doorY - height
	}

	if room.X < 1 || room.Y < 1 ||
		room.X+room.Width > grid.Width-1 || room.Y+room.Height > grid.Height-1 {
		return world.Room{}, false
	}
	return room, true
}

// secretAreaIsSolid verifies the footprint and a one-tile shell around it
// hold nothing but wall. Secret rooms must not leak into existing floor.
func (g *Generator) secretAreaIsSolid(grid *world.Grid, room world.Room) bool {
	for y := room.Y - 1; y <= room.Y+room.Height; y++ {
		for x := room.X - 1; x <= room.X+room.Width; x++ {
			if grid.TileAt(x, y) != world.TileWall {
				return false
			}
		}
	}
	return true
}

// addExtraCorridors extrudes 2-4 dead-end passages from the existing floor
// network. They connect to nothing in particular; they exist to give the
// level texture beyond the room-to-room graph.
func (g *Generator) addExtraCorridors(grid *world.Grid) {
	count := g.rng.Range(2, 4)
	for i := 0; i < count; i++ {
		g.tryExtrudeCorridor(grid)
	}
}

// tryExtrudeCorridor picks a floor cell with rock on one side and digs a
// straight run into it, occasionally sprouting perpendicular side stubs
func (g *Generator) tryExtrudeCorridor(grid *world.Grid) {
	floors := grid.FloorTiles()
	if len(floors) == 0 {
		return
	}

	for attempt := 0; attempt < 20; attempt++ {
		start := floors[g.rng.Intn(len(floors))]
		dir := cardinalDirections[g.rng.Intn(4)]
		if grid.TileAt(start.X+dir[0], start.Y+dir[1]) != world.TileWall {
			continue
		}

		length := g.rng.Range(5, 14)
		x, y := start.X, start.Y
		for step := 0; step < length; step++ {
			x += dir[0]
			y += dir[1]
			if !grid.InInterior(x, y) {
				break
			}
			grid.CarveFloor(x, y)

			if g.rng.Chance(0.20) {
				g.carveSideStub(grid, x, y, dir)
			}
		}
		return
	}
}

// carveSideStub digs a short perpendicular branch off an extra corridor
func (g *Generator) carveSideStub(grid *world.Grid, x, y int, trunk [2]int) {
	// Rotate the trunk direction a quarter turn either way
	perp := [2]int{-trunk[1], -trunk[0]}
	if g.rng.Chance(0.5) {
		perp[0], perp[1] = -perp[0], -perp[1]
	}

	length := g.rng.Range(3, 7)
	for step := 0; step < length; step++ {
		x += perp[0]
		y += perp[1]
		if !grid.InInterior(x, y) {
			return
		}
		grid.CarveFloor(x, y)
	}
}
