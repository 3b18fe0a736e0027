package world

// TileType identifies what occupies a single grid cell
type TileType int

// Tile types
const (
	TileFloor TileType = iota
	TileWall
	TileDoor
	TileSecretDoor
	TileStairsDown
	TileStairsUp
)

// TileWalkability is the movement system's view of a tile. It is derived
// from the tile type at the query site, never stored alongside it.
type TileWalkability int

const (
	Walkable TileWalkability = iota
	Blocked
	// WalkableDoor tiles can be passed but require an interaction first
	WalkableDoor
)

// Walkability returns the movement classification for the tile type.
// Secret doors behave like ordinary doors for movement; they only differ
// visually until revealed.
func (t TileType) Walkability() TileWalkability {
	switch t {
	case TileWall:
		return Blocked
	case TileDoor, TileSecretDoor:
		return WalkableDoor
	default:
		return Walkable
	}
}

// IsStairs reports whether the tile is either staircase type
func (t TileType) IsStairs() bool {
	return t == TileStairsDown || t == TileStairsUp
}

// String returns a one-character glyph for the tile, used in logs and tests
func (t TileType) String() string {
	switch t {
	case TileFloor:
		return "."
	case TileWall:
		return "#"
	case TileDoor:
		return "+"
	case TileSecretDoor:
		return "%"
	case TileStairsDown:
		return ">"
	case TileStairsUp:
		return "<"
	default:
		return "?"
	}
}
