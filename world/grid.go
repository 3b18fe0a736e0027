package world

// Point is a tile coordinate on the grid
type Point struct {
	X, Y int
}

// Grid stores the tile layer of a level. All writes go through SetTile so
// the out-of-range policy (silently skip) lives in one place instead of
// being repeated at every call site.
type Grid struct {
	Width  int
	Height int
	Tiles  [][]TileType
}

// NewGrid creates a grid of the given size filled with walls
func NewGrid(width, height int) *Grid {
	tiles := make([][]TileType, height)
	for y := range tiles {
		tiles[y] = make([]TileType, width)
		for x := range tiles[y] {
			tiles[y][x] = TileWall
		}
	}
	return &Grid{
		Width:  width,
		Height: height,
		Tiles:  tiles,
	}
}

// InBounds reports whether (x, y) addresses a cell of the grid
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.Width && y >= 0 && y < g.Height
}

// InInterior reports whether (x, y) lies strictly inside the border ring.
// The outermost ring is always wall and must never be carved.
func (g *Grid) InInterior(x, y int) bool {
	return x >= 1 && x < g.Width-1 && y >= 1 && y < g.Height-1
}

// SetTile writes a tile type at (x, y). Out-of-range writes are ignored.
func (g *Grid) SetTile(x, y int, tileType TileType) {
	if !g.InBounds(x, y) {
		return
	}
	g.Tiles[y][x] = tileType
}

// CarveFloor writes a floor tile at (x, y) if the cell lies in the interior
// and does not already hold a passable tile. Corridor digging uses this so
// walls are only ever upgraded, never the other way around.
func (g *Grid) CarveFloor(x, y int) {
	if !g.InInterior(x, y) {
		return
	}
	if g.Tiles[y][x] == TileWall {
		g.Tiles[y][x] = TileFloor
	}
}

// TileAt reads the tile at (x, y), treating out-of-bounds cells as wall
func (g *Grid) TileAt(x, y int) TileType {
	if !g.InBounds(x, y) {
		return TileWall
	}
	return g.Tiles[y][x]
}

// IsWall reports whether the cell at (x, y) blocks movement
func (g *Grid) IsWall(x, y int) bool {
	return g.TileAt(x, y) == TileWall
}

// FloorTiles collects the coordinates of every floor cell
func (g *Grid) FloorTiles() []Point {
	var floors []Point
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			if g.Tiles[y][x] == TileFloor {
				floors = append(floors, Point{X: x, Y: y})
			}
		}
	}
	return floors
}

// Clone returns a deep copy of the grid
func (g *Grid) Clone() *Grid {
	tiles := make([][]TileType, g.Height)
	for y := range tiles {
		tiles[y] = make([]TileType, g.Width)
		copy(tiles[y], g.Tiles[y])
	}
	return &Grid{
		Width:  g.Width,
		Height: g.Height,
		Tiles:  tiles,
	}
}
