package generation

import (
	"gridfall/world"
)

// Corridor style thresholds. Long hauls and big rooms get the fancier
// routing; short hops between small rooms stay simple.
const (
	branchingDistance = 20
	windingDistance   = 15
)

// connectRooms weaves the accepted rooms into one network. Every room links
// to the next in generation order, the last links back to the first when
// there are enough rooms to make a loop worthwhile, and a handful of extra
// edges cut across the chain.
func (g *Generator) connectRooms(grid *world.Grid, rooms []world.Room) {
	if len(rooms) < 2 {
		return
	}

	edges := g.buildConnectionGraph(rooms)
	for _, edge := range edges {
		g.carveConnection(grid, rooms[edge[0]], rooms[edge[1]])
	}
}

// buildConnectionGraph returns room-index pairs to connect: the generation
// chain, a wrap-around edge, and len/2 random extras with duplicates and
// self-loops dropped.
func (g *Generator) buildConnectionGraph(rooms []world.Room) [][2]int {
	var edges [][2]int
	seen := make(map[[2]int]bool)

	addEdge := func(a, b int) {
		if a == b {
			return
		}
		if a > b {
			a, b = b, a
		}
		key := [2]int{a, b}
		if seen[key] {
			return
		}
		seen[key] = true
		edges = append(edges, key)
	}

	for i := 0; i < len(rooms)-1; i++ {
		addEdge(i, i+1)
	}
	if len(rooms) >= 3 {
		addEdge(len(rooms)-1, 0)
	}

	extras := len(rooms) / 2
	for i := 0; i < extras; i++ {
		addEdge(g.rng.Intn(len(rooms)), g.rng.Intn(len(rooms)))
	}

	return edges
}

// carveConnection routes one corridor between two rooms, choosing the style
// from the room sizes and the distance between their centers
func (g *Generator) carveConnection(grid *world.Grid, from, to world.Room) {
	x1, y1 := from.Center()
	x2, y2 := to.Center()
	distance := abs(x1-x2) + abs(y1-y2)

	bothLarge := from.SizeClass() == world.SizeLarge && to.SizeClass() == world.SizeLarge

	var path []world.Point
	switch {
	case bothLarge || distance > branchingDistance || g.rng.Chance(0.40):
		path = g.carveBranchingCorridor(grid, x1, y1, x2, y2)
	case distance > windingDistance || g.rng.Chance(0.30):
		path = g.carveWindingCorridor(grid, x1, y1, x2, y2)
	case g.rng.Chance(0.50):
		path = g.carveZCorridor(grid, x1, y1, x2, y2)
	default:
		path = g.carveLCorridor(grid, x1, y1, x2, y2)
	}

	// Occasionally frame the corridor mouth with a proper door
	if g.rng.Chance(0.40) {
		g.placeDoorAlong(grid, path)
	}
}

// carveLCorridor digs a horizontal run and then a vertical run through the
// destination's center
func (g *Generator) carveLCorridor(grid *world.Grid, x1, y1, x2, y2 int) []world.Point {
	path := g.carveHorizontal(grid, x1, x2, y1)
	return append(path, g.carveVertical(grid, y1, y2, x2)...)
}

// carveZCorridor digs three segments through a jittered midpoint: out to the
// middle, across, and in to the destination
func (g *Generator) carveZCorridor(grid *world.Grid, x1, y1, x2, y2 int) []world.Point {
	midX := (x1 + x2) / 2
	midX += g.rng.Range(-2, 2)
	midX = clamp(midX, 1, grid.Width-2)

	path := g.carveHorizontal(grid, x1, midX, y1)
	path = append(path, g.carveVertical(grid, y1, y2, midX)...)
	return append(path, g.carveHorizontal(grid, midX, x2, y2)...)
}

// carveWindingCorridor digs 2-5 alternating horizontal and vertical segments
// with jittered intermediate points, then a final pair of straight runs to
// make sure the destination is actually reached
func (g *Generator) carveWindingCorridor(grid *world.Grid, x1, y1, x2, y2 int) []world.Point {
	segments := g.rng.Range(2, 5)
	curX, curY := x1, y1
	horizontal := g.rng.Chance(0.5)

	var path []world.Point
	for i := 0; i < segments; i++ {
		// Step a jittered fraction of the remaining distance
		if horizontal {
			targetX := curX + (x2-curX)/2 + g.rng.Range(-2, 2)
			targetX = clamp(targetX, 1, grid.Width-2)
			path = append(path, g.carveHorizontal(grid, curX, targetX, curY)...)
			curX = targetX
		} else {
			targetY := curY + (y2-curY)/2 + g.rng.Range(-2, 2)
			targetY = clamp(targetY, 1, grid.Height-2)
			path = append(path, g.carveVertical(grid, curY, targetY, curX)...)
			curY = targetY
		}
		horizontal = !horizontal
	}

	// Close the remaining gap with a plain L
	path = append(path, g.carveHorizontal(grid, curX, x2, curY)...)
	return append(path, g.carveVertical(grid, curY, y2, x2)...)
}

// carveBranchingCorridor digs a winding trunk and then sprouts 1-3 side
// branches from random points along it, with the occasional alcove or
// widening along the way
func (g *Generator) carveBranchingCorridor(grid *world.Grid, x1, y1, x2, y2 int) []world.Point {
	trunk := g.carveTrunkPath(grid, x1, y1, x2, y2)
	if len(trunk) == 0 {
		return nil
	}

	branches := g.rng.Range(1, 3)
	for i := 0; i < branches; i++ {
		start := trunk[g.rng.Intn(len(trunk))]
		g.carveBranch(grid, start)
	}

	// Texture features along the trunk
	for _, cell := range trunk {
		if g.rng.Chance(0.06) {
			g.carveTrunkFeature(grid, cell)
		}
	}
	return trunk
}

// carveTrunkPath digs the winding spine of a branching corridor, recording
// the cells it passes through so branches can hang off them
func (g *Generator) carveTrunkPath(grid *world.Grid, x1, y1, x2, y2 int) []world.Point {
	var path []world.Point
	curX, curY := x1, y1
	horizontal := g.rng.Chance(0.5)
	segments := g.rng.Range(3, 5)

	for i := 0; i < segments; i++ {
		if horizontal {
			targetX := curX + (x2-curX)/2 + g.rng.Range(-3, 3)
			targetX = clamp(targetX, 1, grid.Width-2)
			path = append(path, g.carveHorizontal(grid, curX, targetX, curY)...)
			curX = targetX
		} else {
			targetY := curY + (y2-curY)/2 + g.rng.Range(-3, 3)
			targetY = clamp(targetY, 1, grid.Height-2)
			path = append(path, g.carveVertical(grid, curY, targetY, curX)...)
			curY = targetY
		}
		horizontal = !horizontal
	}

	path = append(path, g.carveHorizontal(grid, curX, x2, curY)...)
	path = append(path, g.carveVertical(grid, curY, y2, x2)...)
	return path
}

// carveBranch digs a straight side passage of length 3-8 in a random
// cardinal direction from the given cell
func (g *Generator) carveBranch(grid *world.Grid, from world.Point) {
	dir := cardinalDirections[g.rng.Intn(4)]
	length := g.rng.Range(3, 8)

	x, y := from.X, from.Y
	for i := 0; i < length; i++ {
		x += dir[0]
		y += dir[1]
		if !grid.InInterior(x, y) {
			return
		}
		grid.CarveFloor(x, y)
	}
}

// carveTrunkFeature adds a small alcove or widening beside a trunk cell
func (g *Generator) carveTrunkFeature(grid *world.Grid, cell world.Point) {
	dir := cardinalDirections[g.rng.Intn(4)]
	if g.rng.Chance(0.5) {
		// Single-cell alcove
		grid.CarveFloor(cell.X+dir[0], cell.Y+dir[1])
	} else {
		// Widen the passage to both sides for one step
		grid.CarveFloor(cell.X-dir[1], cell.Y-dir[0])
		grid.CarveFloor(cell.X+dir[1], cell.Y+dir[0])
	}
}

// carveHorizontal digs a horizontal run from x1 to x2 at y, returning the
// interior cells it floored or passed through
func (g *Generator) carveHorizontal(grid *world.Grid, x1, x2, y int) []world.Point {
	var cells []world.Point
	for x := min(x1, x2); x <= max(x1, x2); x++ {
		if !grid.InInterior(x, y) {
			continue
		}
		grid.CarveFloor(x, y)
		cells = append(cells, world.Point{X: x, Y: y})
	}
	return cells
}

// carveVertical digs a vertical run from y1 to y2 at x
func (g *Generator) carveVertical(grid *world.Grid, y1, y2, x int) []world.Point {
	var cells []world.Point
	for y := min(y1, y2); y <= max(y1, y2); y++ {
		if !grid.InInterior(x, y) {
			continue
		}
		grid.CarveFloor(x, y)
		cells = append(cells, world.Point{X: x, Y: y})
	}
	return cells
}

// placeDoorAlong walks the corridor from its origin and stamps a door on the
// first cell that forms a proper doorway: walls on both flanks and floor on
// both opposing sides, so the door separates two spaces instead of plugging a
// dead end. Corridors that never pinch down to a single-cell passage get no
// door.
func (g *Generator) placeDoorAlong(grid *world.Grid, path []world.Point) {
	for _, cell := range path {
		if grid.TileAt(cell.X, cell.Y) != world.TileFloor {
			continue
		}
		if doorwayAxis(grid, cell.X, cell.Y) {
			grid.SetTile(cell.X, cell.Y, world.TileDoor)
			return
		}
	}
}

// doorwayAxis reports whether the cell is flanked by walls on one axis and
// open floor on the other
func doorwayAxis(grid *world.Grid, x, y int) bool {
	horizontalPass := grid.TileAt(x-1, y) == world.TileFloor &&
		grid.TileAt(x+1, y) == world.TileFloor &&
		grid.TileAt(x, y-1) == world.TileWall &&
		grid.TileAt(x, y+1) == world.TileWall
	verticalPass := grid.TileAt(x, y-1) == world.TileFloor &&
		grid.TileAt(x, y+1) == world.TileFloor &&
		grid.TileAt(x-1, y) == world.TileWall &&
		grid.TileAt(x+1, y) == world.TileWall
	return horizontalPass || verticalPass
}

// cardinalDirections lists the four movement deltas in a fixed order so the
// rng stream stays deterministic
var cardinalDirections = [4][2]int{
	{0, -1}, // north
	{1, 0},  // east
	{0, 1},  // south
	{-1, 0}, // west
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

func clamp(v, low, high int) int {
	if v < low {
		return low
	}
	if v > high {
		return high
	}
	return v
}
