package generation

import (
	"gridfall/world"
)

// carveRoom converts an accepted room's footprint into floor tiles according
// to its shape variant. All writes clip to the grid interior so the border
// ring stays intact no matter where the room sits.
func (g *Generator) carveRoom(grid *world.Grid, room world.Room) {
	switch room.Shape {
	case world.ShapeCircular:
		g.carveCircular(grid, room)
	case world.ShapeCrossShaped:
		g.carveCross(grid, room)
	case world.ShapeLShaped:
		g.carveLShaped(grid, room)
	case world.ShapePillared:
		g.carvePillared(grid, room)
	case world.ShapeSmallChamber:
		g.carveSmallChamber(grid, room)
	case world.ShapeLargeHall:
		g.carveLargeHall(grid, room)
	default:
		g.carveRectangular(grid, room)
	}
}

// carveRectangular floors the full footprint
func (g *Generator) carveRectangular(grid *world.Grid, room world.Room) {
	for y := room.Y; y < room.Y+room.Height; y++ {
		for x := room.X; x < room.X+room.Width; x++ {
			g.carveCell(grid, x, y)
		}
	}
}

// carveCircular floors every cell inside the ellipse inscribed in the
// bounding box: a cell passes when its normalized squared distance from the
// room center is at most 1.
func (g *Generator) carveCircular(grid *world.Grid, room world.Room) {
	centerX := float64(room.X) + float64(room.Width)/2.0
	centerY := float64(room.Y) + float64(room.Height)/2.0
	radiusX := float64(room.Width) / 2.0
	radiusY := float64(room.Height) / 2.0

	for y := room.Y; y < room.Y+room.Height; y++ {
		for x := room.X; x < room.X+room.Width; x++ {
			dx := (float64(x) + 0.5 - centerX) / radiusX
			dy := (float64(y) + 0.5 - centerY) / radiusY
			if dx*dx+dy*dy <= 1.0 {
				g.carveCell(grid, x, y)
			}
		}
	}
}

// carveCross floors the middle-third vertical and horizontal bands, leaving
// the four corner blocks as wall
func (g *Generator) carveCross(grid *world.Grid, room world.Room) {
	bandX := room.X + room.Width/3
	bandW := room.Width - 2*(room.Width/3)
	bandY := room.Y + room.Height/3
	bandH := room.Height - 2*(room.Height/3)

	// Vertical band, full height
	for y := room.Y; y < room.Y+room.Height; y++ {
		for x := bandX; x < bandX+bandW; x++ {
			g.carveCell(grid, x, y)
		}
	}
	// Horizontal band, full width
	for y := bandY; y < bandY+bandH; y++ {
		for x := room.X; x < room.X+room.Width; x++ {
			g.carveCell(grid, x, y)
		}
	}
}

// carveLShaped floors the top half at full width and the bottom half at half
// width, keeping the bottom-right quarter as wall
func (g *Generator) carveLShaped(grid *world.Grid, room world.Room) {
	halfHeight := room.Height / 2
	halfWidth := room.Width / 2

	// Top half, full width
	for y := room.Y; y < room.Y+halfHeight; y++ {
		for x := room.X; x < room.X+room.Width; x++ {
			g.carveCell(grid, x, y)
		}
	}
	// Bottom half, left side only
	for y := room.Y + halfHeight; y < room.Y+room.Height; y++ {
		for x := room.X; x < room.X+halfWidth; x++ {
			g.carveCell(grid, x, y)
		}
	}
}

// carvePillared floors the full footprint and then drops 1-4 two-by-two wall
// pillars at random interior points. Rooms below 7x7 have no interior to
// spare and carve as plain rectangles.
func (g *Generator) carvePillared(grid *world.Grid, room world.Room) {
	g.carveRectangular(grid, room)

	if room.Width < 7 || room.Height < 7 {
		return
	}

	pillars := g.rng.Range(1, 4)
	for i := 0; i < pillars; i++ {
		// Keep the 2x2 pillar at least one tile off the room edge so it
		// never seals off a corner.
		px := room.X + g.rng.Range(2, room.Width-4)
		py := room.Y + g.rng.Range(2, room.Height-4)
		for dy := 0; dy < 2; dy++ {
			for dx := 0; dx < 2; dx++ {
				g.wallCell(grid, px+dx, py+dy)
			}
		}
	}
}

// carveSmallChamber floors the footprint, then half the time re-walls one
// corner cell for a little irregularity
func (g *Generator) carveSmallChamber(grid *world.Grid, room world.Room) {
	g.carveRectangular(grid, room)

	if !g.rng.Chance(0.5) {
		return
	}

	corners := [4][2]int{
		{room.X, room.Y},
		{room.X + room.Width - 1, room.Y},
		{room.X, room.Y + room.Height - 1},
		{room.X + room.Width - 1, room.Y + room.Height - 1},
	}
	corner := corners[g.rng.Intn(4)]
	g.wallCell(grid, corner[0], corner[1])
}

// carveLargeHall floors the footprint and applies exactly one interior
// feature chosen uniformly, provided the hall is at least 8x8
func (g *Generator) carveLargeHall(grid *world.Grid, room world.Room) {
	g.carveRectangular(grid, room)

	if room.Width < 8 || room.Height < 8 {
		return
	}

	switch g.rng.Intn(3) {
	case 0:
		g.hallCentralBlock(grid, room)
	case 1:
		g.hallColumnGrid(grid, room)
	default:
		g.hallDividerWall(grid, room)
	}
}

// hallCentralBlock walls a 2x2 block at the hall's center
func (g *Generator) hallCentralBlock(grid *world.Grid, room world.Room) {
	centerX, centerY := room.Center()
	for dy := 0; dy < 2; dy++ {
		for dx := 0; dx < 2; dx++ {
			g.wallCell(grid, centerX-1+dx, centerY-1+dy)
		}
	}
}

// hallColumnGrid walls single-cell columns on a regular 3-tile lattice,
// inset from the hall edges
func (g *Generator) hallColumnGrid(grid *world.Grid, room world.Room) {
	for y := room.Y + 2; y < room.Y+room.Height-2; y += 3 {
		for x := room.X + 2; x < room.X+room.Width-2; x += 3 {
			g.wallCell(grid, x, y)
		}
	}
}

// hallDividerWall runs a wall across the hall's middle with a single gap
// left open, splitting it into two connected halves
func (g *Generator) hallDividerWall(grid *world.Grid, room world.Room) {
	if g.rng.Chance(0.5) {
		// Vertical divider
		wallX := room.X + room.Width/2
		gapY := room.Y + g.rng.Intn(room.Height)
		for y := room.Y; y < room.Y+room.Height; y++ {
			if y == gapY {
				continue
			}
			g.wallCell(grid, wallX, y)
		}
	} else {
		// Horizontal divider
		wallY := room.Y + room.Height/2
		gapX := room.X + g.rng.Intn(room.Width)
		for x := room.X; x < room.X+room.Width; x++ {
			if x == gapX {
				continue
			}
			g.wallCell(grid, x, wallY)
		}
	}
}

// carveCell floors one cell, skipping anything outside the grid interior
func (g *Generator) carveCell(grid *world.Grid, x, y int) {
	if grid.InInterior(x, y) {
		grid.SetTile(x, y, world.TileFloor)
	}
}

// wallCell re-walls one cell, with the same interior clipping
func (g *Generator) wallCell(grid *world.Grid, x, y int) {
	if grid.InInterior(x, y) {
		grid.SetTile(x, y, world.TileWall)
	}
}
