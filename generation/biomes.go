package generation

import (
	"gridfall/world"
)

// assignBiome rolls one biome for the level and stamps it over the whole
// grid. The per-cell layer is deliberately kept even though every cell holds
// the same value today; regional biomes only need this stage to change.
func (g *Generator) assignBiome(biomes *world.BiomeGrid) {
	biome := world.AllBiomes[g.rng.Intn(len(world.AllBiomes))]
	biomes.Fill(biome)
	g.logMessage("level themed as %s", biome)
}
