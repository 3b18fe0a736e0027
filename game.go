package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"gridfall/config"
	"gridfall/world"
)

// Game implements ebiten.Game: a thin turn-based shell over the generated
// maps. It owns the level manager and the player and wires key presses to
// movement and level transitions.
type Game struct {
	levels *LevelManager
	player *Player
}

// NewGame generates the surface level and spawns the player on it
func NewGame() *Game {
	levels := NewLevelManager()
	return &Game{
		levels: levels,
		player: NewPlayer(levels.Current()),
	}
}

// Update processes one tick of input
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}

	m := g.levels.Current()

	if dx, dy, ok := ReadMovement(); ok {
		g.player.TryMove(m, dx, dy)
		return nil
	}

	// R rerolls the current level
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		fresh := g.levels.Regenerate()
		g.player.PlaceAt(fresh.GetSpawnPosition())
		return nil
	}

	// Period descends when standing on the down staircase
	if inpututil.IsKeyJustPressed(ebiten.KeyPeriod) {
		if m.Tiles.TileAt(g.player.X, g.player.Y) == world.TileStairsDown {
			next := g.levels.Descend()
			g.placeOnArrival(next, true)
		}
		return nil
	}

	// Comma ascends when standing on the up staircase
	if inpututil.IsKeyJustPressed(ebiten.KeyComma) {
		if m.Tiles.TileAt(g.player.X, g.player.Y) == world.TileStairsUp {
			if above := g.levels.Ascend(); above != nil {
				g.placeOnArrival(above, false)
			}
		}
		return nil
	}

	return nil
}

// placeOnArrival positions the player after a level transition: next to the
// matching staircase when one exists, otherwise at the spawn tile.
func (g *Game) placeOnArrival(m *world.TileMap, descending bool) {
	if descending && m.UpStairs != nil {
		// Arriving from above, step off the up staircase
		g.player.PlaceAt(m.UpStairs.X, m.UpStairs.Y)
		return
	}
	if !descending && m.DownStairs != nil {
		// Coming back up, you re-emerge from the down staircase
		g.player.PlaceAt(m.DownStairs.X, m.DownStairs.Y)
		return
	}
	g.player.PlaceAt(m.GetSpawnPosition())
}

// Draw renders the current map and the player
func (g *Game) Draw(screen *ebiten.Image) {
	DrawMap(screen, g.levels.Current())
	DrawPlayer(screen, g.player)
	DrawHUD(screen, g.levels.Current(), g.player)
}

// Layout reports the fixed logical screen size
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.WindowWidth, config.WindowHeight
}
