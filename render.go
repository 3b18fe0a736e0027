package main

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"gridfall/config"
	"gridfall/world"
)

// biomePalette gives each biome its own wall and floor colors. Doors and
// stairs share one palette across biomes.
type biomePalette struct {
	wall  color.RGBA
	floor color.RGBA
}

var biomePalettes = map[world.BiomeType]biomePalette{
	world.BiomeCaves: {
		wall:  color.RGBA{96, 88, 80, 255},
		floor: color.RGBA{48, 44, 40, 255},
	},
	world.BiomeGroves: {
		wall:  color.RGBA{72, 96, 56, 255},
		floor: color.RGBA{36, 52, 28, 255},
	},
	world.BiomeLabyrinth: {
		wall:  color.RGBA{88, 88, 112, 255},
		floor: color.RGBA{40, 40, 56, 255},
	},
	world.BiomeCatacombs: {
		wall:  color.RGBA{112, 104, 88, 255},
		floor: color.RGBA{52, 46, 38, 255},
	},
}

var (
	doorColor       = color.RGBA{139, 69, 19, 255}
	stairsDownColor = color.RGBA{220, 220, 220, 255}
	stairsUpColor   = color.RGBA{180, 180, 255, 255}
	playerColor     = color.RGBA{240, 200, 80, 255}
	hudBackground   = color.RGBA{16, 16, 16, 255}
)

// tileColor picks the fill color for one cell. A secret door deliberately
// uses the wall color: it must be indistinguishable until revealed.
func tileColor(tile world.TileType, biome world.BiomeType) color.RGBA {
	palette, ok := biomePalettes[biome]
	if !ok {
		palette = biomePalettes[world.DefaultBiome]
	}

	switch tile {
	case world.TileFloor:
		return palette.floor
	case world.TileDoor:
		return doorColor
	case world.TileStairsDown:
		return stairsDownColor
	case world.TileStairsUp:
		return stairsUpColor
	case world.TileSecretDoor:
		return palette.wall
	default:
		return palette.wall
	}
}

// DrawMap renders every tile of the map as a filled rect
func DrawMap(screen *ebiten.Image, m *world.TileMap) {
	for y := 0; y < m.Tiles.Height; y++ {
		for x := 0; x < m.Tiles.Width; x++ {
			fill := tileColor(m.Tiles.Tiles[y][x], m.GetBiomeAt(x, y))
			vector.DrawFilledRect(screen,
				float32(x*config.TileSize), float32(y*config.TileSize),
				float32(config.TileSize), float32(config.TileSize),
				fill, false)
		}
	}
}

// DrawPlayer renders the player slightly inset so the tile underneath stays
// visible at the edges
func DrawPlayer(screen *ebiten.Image, p *Player) {
	inset := float32(2)
	vector.DrawFilledRect(screen,
		float32(p.X*config.TileSize)+inset, float32(p.Y*config.TileSize)+inset,
		float32(config.TileSize)-2*inset, float32(config.TileSize)-2*inset,
		playerColor, false)
}

// DrawHUD renders the status line under the map
func DrawHUD(screen *ebiten.Image, m *world.TileMap, p *Player) {
	hudY := m.Tiles.Height * config.TileSize
	vector.DrawFilledRect(screen,
		0, float32(hudY),
		float32(config.WindowWidth), float32(config.HUDHeight*config.TileSize),
		hudBackground, false)

	status := fmt.Sprintf("level %d  |  %s  |  (%d,%d)  |  arrows/hjkl move, . > down, , < up, R reroll",
		m.CurrentLevel, m.GetBiomeAt(p.X, p.Y), p.X, p.Y)
	ebitenutil.DebugPrintAt(screen, status, 4, hudY+4)
}
