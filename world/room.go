package world

// RoomShape selects how a room's footprint gets carved
type RoomShape int

const (
	ShapeRectangular RoomShape = iota
	ShapeCircular
	ShapeCrossShaped
	ShapeLShaped
	ShapePillared
	ShapeSmallChamber
	ShapeLargeHall
)

// String returns the shape name for logs and test output
func (s RoomShape) String() string {
	switch s {
	case ShapeRectangular:
		return "rectangular"
	case ShapeCircular:
		return "circular"
	case ShapeCrossShaped:
		return "cross"
	case ShapeLShaped:
		return "l-shaped"
	case ShapePillared:
		return "pillared"
	case ShapeSmallChamber:
		return "small chamber"
	case ShapeLargeHall:
		return "large hall"
	default:
		return "unknown"
	}
}

// RoomSize classifies rooms by floor area
type RoomSize int

const (
	SizeSmall RoomSize = iota
	SizeMedium
	SizeLarge
)

// Room is a placed rectangular footprint plus the shape variant that
// determines its carved interior. Rooms are created during generation and
// kept for the life of the level; they are never moved or resized afterward.
type Room struct {
	X      int
	Y      int
	Width  int
	Height int
	Shape  RoomShape
}

// Center returns the middle cell of the room's bounding box
func (r Room) Center() (x, y int) {
	return r.X + r.Width/2, r.Y + r.Height/2
}

// Area returns the bounding-box area in cells
func (r Room) Area() int {
	return r.Width * r.Height
}

// SizeClass derives the room's size category from its area
func (r Room) SizeClass() RoomSize {
	area := r.Area()
	switch {
	case area < 36:
		return SizeSmall
	case area < 81:
		return SizeMedium
	default:
		return SizeLarge
	}
}

// Overlaps reports whether the two rooms' bounding boxes intersect when
// each is inflated by one tile on every side. Accepted rooms always keep
// at least one wall tile between them.
func (r Room) Overlaps(other Room) bool {
	return r.X-1 < other.X+other.Width+1 &&
		r.X+r.Width+1 > other.X-1 &&
		r.Y-1 < other.Y+other.Height+1 &&
		r.Y+r.Height+1 > other.Y-1
}

// Contains reports whether (x, y) lies inside the room's bounding box
func (r Room) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.Width && y >= r.Y && y < r.Y+r.Height
}
