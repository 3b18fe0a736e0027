package world

// TileMap is the finished level layout: the tile grid, the rooms that were
// placed on it, the biome layer, and the anchor positions the rest of the
// game consumes. It is a plain value owned by the caller; consumers treat it
// as an immutable snapshot once generation returns, and level history keeps
// whole clones rather than sharing references.
type TileMap struct {
	Tiles  *Grid
	Biomes *BiomeGrid
	Rooms  []Room

	Spawn      Point
	DownStairs *Point
	UpStairs   *Point

	CurrentLevel int
}

// NewEmptyTileMap creates an all-wall map of the given size with no rooms.
// Generation fills it in; it is exported mainly so tests can build partial
// maps stage by stage.
func NewEmptyTileMap(width, height, level int) *TileMap {
	return &TileMap{
		Tiles:        NewGrid(width, height),
		Biomes:       NewBiomeGrid(width, height),
		CurrentLevel: level,
	}
}

// GetSpawnPosition returns the player entry coordinate
func (m *TileMap) GetSpawnPosition() (x, y int) {
	return m.Spawn.X, m.Spawn.Y
}

// GetBiomeAt returns the biome tag at (x, y), defaulting out of bounds
func (m *TileMap) GetBiomeAt(x, y int) BiomeType {
	return m.Biomes.At(x, y)
}

// WalkabilityAt is the collision system's query: it projects the tile at
// (x, y) to its movement classification.
func (m *TileMap) WalkabilityAt(x, y int) TileWalkability {
	return m.Tiles.TileAt(x, y).Walkability()
}

// Clone returns a deep copy of the map. Level history stores clones so a
// revisited level comes back exactly as it was left.
func (m *TileMap) Clone() *TileMap {
	clone := &TileMap{
		Tiles:        m.Tiles.Clone(),
		Biomes:       m.Biomes.Clone(),
		Rooms:        make([]Room, len(m.Rooms)),
		Spawn:        m.Spawn,
		CurrentLevel: m.CurrentLevel,
	}
	copy(clone.Rooms, m.Rooms)
	if m.DownStairs != nil {
		p := *m.DownStairs
		clone.DownStairs = &p
	}
	if m.UpStairs != nil {
		p := *m.UpStairs
		clone.UpStairs = &p
	}
	return clone
}
