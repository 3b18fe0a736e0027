package config

// Screen layout configuration
const (
	// Tile size in pixels
	TileSize = 16

	// Map dimensions in tiles. Every generated level uses this footprint.
	MapWidth  = 45
	MapHeight = 25

	// Status line height in tiles, drawn below the map
	HUDHeight = 2

	// Window dimensions in pixels (derived from tile dimensions)
	WindowWidth  = MapWidth * TileSize
	WindowHeight = (MapHeight + HUDHeight) * TileSize
)

// GetWindowSize returns the recommended window size in pixels
func GetWindowSize() (width, height int) {
	return WindowWidth, WindowHeight
}
