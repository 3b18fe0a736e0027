package generation

import (
	"time"

	"gridfall/config"
	"gridfall/world"
)

// Generator handles procedural generation of dungeon layouts. One generator
// runs one level to completion on the calling goroutine; nothing in the
// pipeline suspends or does I/O.
type Generator struct {
	rng  Source
	logf func(format string, args ...any)
}

// NewGenerator creates a generator with a time-based seed
func NewGenerator() *Generator {
	return NewGeneratorWithSource(NewSource(time.Now().UnixNano()))
}

// NewGeneratorWithSource creates a generator drawing from the given random
// stream. Tests use this with a fixed seed for reproducible dungeons.
func NewGeneratorWithSource(src Source) *Generator {
	return &Generator{rng: src}
}

// SetLogFunc installs a logging hook for generation diagnostics. The
// generator stays silent when no hook is set.
func (g *Generator) SetLogFunc(logf func(format string, args ...any)) {
	g.logf = logf
}

func (g *Generator) logMessage(format string, args ...any) {
	if g.logf != nil {
		g.logf(format, args...)
	}
}

// Generate runs the full pipeline against a fresh all-wall grid and returns
// the finished layout. The stages always run in the same order so one seed
// always produces one map.
func (g *Generator) Generate(level int) *world.TileMap {
	m := world.NewEmptyTileMap(config.MapWidth, config.MapHeight, level)

	// Place rooms and carve their shaped interiors
	m.Rooms = g.placeRooms(m.Tiles)
	for _, room := range m.Rooms {
		g.carveRoom(m.Tiles, room)
	}

	// Weave corridors between the rooms
	g.connectRooms(m.Tiles, m.Rooms)

	// Sprinkle in secret rooms and free-floating side passages
	g.addSecretRooms(m.Tiles)
	g.addExtraCorridors(m.Tiles)

	// Theme the level and place the fixed features
	g.assignBiome(m.Biomes)
	g.placeStairs(m, level)
	m.Spawn = g.locateSpawn(m.Tiles)

	return m
}

// NewMap generates a fresh level-0 map with a random seed
func NewMap() *world.TileMap {
	return NewGenerator().Generate(0)
}

// NewMapForLevel generates a map tagged with the given level. The previous
// map is accepted for future continuity heuristics but is not consulted yet;
// each level still rolls its own seed so no two levels share a layout.
func NewMapForLevel(level int, previous *world.TileMap) *world.TileMap {
	_ = previous
	return NewGenerator().Generate(level)
}
