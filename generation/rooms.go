package generation

import (
	"gridfall/world"
)

// Room placement budget. Generation keeps proposing candidates until it has
// the target count or runs out of attempts, whichever comes first.
const (
	minTargetRooms    = 20
	maxTargetRooms    = 30
	placementAttempts = 100
)

// placeRooms proposes candidate rooms and keeps every one that fits without
// touching an accepted room. The grid is only consulted for its dimensions;
// carving happens in a later stage.
func (g *Generator) placeRooms(grid *world.Grid) []world.Room {
	targetRooms := g.rng.Range(minTargetRooms, maxTargetRooms)

	var rooms []world.Room
	for attempt := 0; attempt < placementAttempts && len(rooms) < targetRooms; attempt++ {
		candidate := g.proposeRoom(grid)

		overlaps := false
		for _, existing := range rooms {
			if candidate.Overlaps(existing) {
				overlaps = true
				break
			}
		}
		if !overlaps {
			rooms = append(rooms, candidate)
		}
	}

	// Downstream stages need at least one room to hang stairs and spawn
	// points on, so a barren grid gets a single hall at a known-safe spot.
	if len(rooms) == 0 {
		g.logMessage("room placement exhausted %d attempts, inserting fallback room", placementAttempts)
		rooms = append(rooms, fallbackRoom(grid))
	}

	return rooms
}

// proposeRoom draws a size class, dimensions, shape, and position for one
// candidate. The position always leaves a one-tile wall margin on every side.
func (g *Generator) proposeRoom(grid *world.Grid) world.Room {
	var width, height int
	sizeRoll := g.rng.Float64()
	switch {
	case sizeRoll < 0.21: // large
		width = g.rng.Range(8, 12)
		height = g.rng.Range(7, 9)
	case sizeRoll < 0.61: // medium
		width = g.rng.Range(5, 8)
		height = g.rng.Range(5, 8)
	default: // small
		width = g.rng.Range(3, 5)
		height = g.rng.Range(3, 5)
	}

	room := world.Room{
		Width:  width,
		Height: height,
	}
	room.X = g.rng.Range(1, grid.Width-width-1)
	room.Y = g.rng.Range(1, grid.Height-height-1)
	room.Shape = g.rollShape(room.SizeClass())
	return room
}

// rollShape draws a shape variant from the size-class-specific distribution.
// Small rooms never roll the hall or pillar variants; they could not hold
// the features.
func (g *Generator) rollShape(size world.RoomSize) world.RoomShape {
	roll := g.rng.Float64()
	switch size {
	case world.SizeLarge:
		switch {
		case roll < 0.41:
			return world.ShapeRectangular
		case roll < 0.61:
			return world.ShapePillared
		case roll < 0.81:
			return world.ShapeCrossShaped
		default:
			return world.ShapeLargeHall
		}
	case world.SizeMedium:
		switch {
		case roll < 0.35:
			return world.ShapeRectangular
		case roll < 0.55:
			return world.ShapeCircular
		case roll < 0.70:
			return world.ShapeCrossShaped
		case roll < 0.90:
			return world.ShapeLShaped
		default:
			return world.ShapePillared
		}
	default:
		switch {
		case roll < 0.40:
			return world.ShapeRectangular
		case roll < 0.75:
			return world.ShapeSmallChamber
		default:
			return world.ShapeCircular
		}
	}
}

// fallbackRoom is the room injected when placement fails outright: a plain
// rectangular hall centered on the map, well clear of the border.
func fallbackRoom(grid *world.Grid) world.Room {
	width, height := 10, 8
	return world.Room{
		X:      grid.Width/2 - width/2,
		Y:      grid.Height/2 - height/2,
		Width:  width,
		Height: height,
		Shape:  world.ShapeRectangular,
	}
}
