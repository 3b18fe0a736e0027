package world

// BiomeType is a thematic tag applied to a level. It only influences which
// sprite set the renderer picks; it has no effect on walkability.
type BiomeType int

const (
	BiomeCaves BiomeType = iota
	BiomeGroves
	BiomeLabyrinth
	BiomeCatacombs
)

// DefaultBiome is returned for out-of-bounds biome lookups
const DefaultBiome = BiomeCaves

// AllBiomes lists every biome a level can roll
var AllBiomes = []BiomeType{BiomeCaves, BiomeGroves, BiomeLabyrinth, BiomeCatacombs}

// String returns the biome name
func (b BiomeType) String() string {
	switch b {
	case BiomeCaves:
		return "caves"
	case BiomeGroves:
		return "groves"
	case BiomeLabyrinth:
		return "labyrinth"
	case BiomeCatacombs:
		return "catacombs"
	default:
		return "unknown"
	}
}

// BiomeGrid mirrors the tile grid so per-cell biome lookup stays O(1).
// The current generator stamps a single biome over the whole level, but the
// grid shape is kept so regions can diverge later without touching callers.
type BiomeGrid struct {
	Width  int
	Height int
	Cells  [][]BiomeType
}

// NewBiomeGrid creates a biome grid filled with the default biome
func NewBiomeGrid(width, height int) *BiomeGrid {
	cells := make([][]BiomeType, height)
	for y := range cells {
		cells[y] = make([]BiomeType, width)
	}
	return &BiomeGrid{
		Width:  width,
		Height: height,
		Cells:  cells,
	}
}

// Fill stamps every cell with the given biome
func (g *BiomeGrid) Fill(biome BiomeType) {
	for y := range g.Cells {
		for x := range g.Cells[y] {
			g.Cells[y][x] = biome
		}
	}
}

// At reads the biome at (x, y), falling back to the default out of bounds
func (g *BiomeGrid) At(x, y int) BiomeType {
	if x < 0 || x >= g.Width || y < 0 || y >= g.Height {
		return DefaultBiome
	}
	return g.Cells[y][x]
}

// Clone returns a deep copy of the biome grid
func (g *BiomeGrid) Clone() *BiomeGrid {
	cells := make([][]BiomeType, g.Height)
	for y := range cells {
		cells[y] = make([]BiomeType, g.Width)
		copy(cells[y], g.Cells[y])
	}
	return &BiomeGrid{
		Width:  g.Width,
		Height: g.Height,
		Cells:  cells,
	}
}
