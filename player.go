package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"gridfall/world"
)

// Player is the single controllable entity: a grid position on the current
// map. Movement is turn-based, one tile per key press.
type Player struct {
	X, Y int
}

// NewPlayer places a player at the map's spawn tile
func NewPlayer(m *world.TileMap) *Player {
	x, y := m.GetSpawnPosition()
	return &Player{X: x, Y: y}
}

// PlaceAt moves the player to the given tile without a walkability check,
// used on level transitions
func (p *Player) PlaceAt(x, y int) {
	p.X, p.Y = x, y
}

// movementKeys binds input keys to tile deltas. Arrow keys and vi keys both
// work; the table order is fixed so a tick with two movement keys pressed
// always resolves the same way (arrows win over vi keys).
var movementKeys = []struct {
	key    ebiten.Key
	dx, dy int
}{
	{ebiten.KeyArrowUp, 0, -1},
	{ebiten.KeyArrowDown, 0, 1},
	{ebiten.KeyArrowLeft, -1, 0},
	{ebiten.KeyArrowRight, 1, 0},
	{ebiten.KeyK, 0, -1},
	{ebiten.KeyJ, 0, 1},
	{ebiten.KeyH, -1, 0},
	{ebiten.KeyL, 1, 0},
}

// ReadMovement returns the movement delta for a just-pressed key, or false
// when no movement key was pressed this tick
func ReadMovement() (dx, dy int, ok bool) {
	for _, binding := range movementKeys {
		if inpututil.IsKeyJustPressed(binding.key) {
			return binding.dx, binding.dy, true
		}
	}
	return 0, 0, false
}

// TryMove steps the player one tile if the destination is passable. Doors
// (secret ones included) open implicitly on entry.
func (p *Player) TryMove(m *world.TileMap, dx, dy int) {
	newX, newY := p.X+dx, p.Y+dy
	if m.WalkabilityAt(newX, newY) == world.Blocked {
		return
	}
	p.X, p.Y = newX, newY
}
