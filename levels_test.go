package main

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"

	"gridfall/world"
)

// mapsEqual compares two maps field by field: tiles, rooms, spawn, stairs
// and level tag
func mapsEqual(a, b *world.TileMap) bool {
	if a.CurrentLevel != b.CurrentLevel || a.Spawn != b.Spawn {
		return false
	}
	if len(a.Rooms) != len(b.Rooms) {
		return false
	}
	for i := range a.Rooms {
		if a.Rooms[i] != b.Rooms[i] {
			return false
		}
	}
	for y := 0; y < a.Tiles.Height; y++ {
		for x := 0; x < a.Tiles.Width; x++ {
			if a.Tiles.Tiles[y][x] != b.Tiles.Tiles[y][x] {
				return false
			}
		}
	}
	if (a.DownStairs == nil) != (b.DownStairs == nil) {
		return false
	}
	if a.DownStairs != nil && *a.DownStairs != *b.DownStairs {
		return false
	}
	if (a.UpStairs == nil) != (b.UpStairs == nil) {
		return false
	}
	if a.UpStairs != nil && *a.UpStairs != *b.UpStairs {
		return false
	}
	return true
}

func TestAscendRestoresLevelExactly(t *testing.T) {
	lm := NewLevelManager()
	before := lm.Current().Clone()

	lm.Descend()
	restored := lm.Ascend()
	if restored == nil {
		t.Fatal("Ascend returned nil with history present")
	}
	if !mapsEqual(restored, before) {
		t.Error("restored level differs from the one that was left")
	}
	if lm.Current() != restored {
		t.Error("Ascend did not swap the restored map in as current")
	}
}

func TestAscendOnSurfaceReturnsNil(t *testing.T) {
	lm := NewLevelManager()
	if lm.Ascend() != nil {
		t.Error("Ascend on the surface should return nil")
	}
	if lm.Current().CurrentLevel != 0 {
		t.Errorf("surface level = %d, want 0", lm.Current().CurrentLevel)
	}
}

func TestDescendAdvancesLevel(t *testing.T) {
	lm := NewLevelManager()

	next := lm.Descend()
	if next.CurrentLevel != 1 {
		t.Errorf("CurrentLevel after descend = %d, want 1", next.CurrentLevel)
	}
	if lm.Current() != next {
		t.Error("Descend did not swap the new map in as current")
	}
	if next.DownStairs == nil || next.UpStairs == nil {
		t.Error("level 1 must carry both staircases")
	}
}

func TestRegenerateKeepsLevelNumber(t *testing.T) {
	lm := NewLevelManager()
	lm.Descend()

	fresh := lm.Regenerate()
	if fresh.CurrentLevel != 1 {
		t.Errorf("CurrentLevel after regenerate = %d, want 1", fresh.CurrentLevel)
	}
	if lm.Current() != fresh {
		t.Error("Regenerate did not swap the fresh map in as current")
	}
}

func TestMovementBindingsAreOrdered(t *testing.T) {
	if len(movementKeys) != 8 {
		t.Fatalf("movement table has %d bindings, want 8", len(movementKeys))
	}
	// Arrows come first so they win when chorded with a vi key
	arrows := []ebiten.Key{
		ebiten.KeyArrowUp, ebiten.KeyArrowDown,
		ebiten.KeyArrowLeft, ebiten.KeyArrowRight,
	}
	for i, want := range arrows {
		if movementKeys[i].key != want {
			t.Errorf("binding %d is %v, want %v", i, movementKeys[i].key, want)
		}
	}
	for _, binding := range movementKeys {
		if binding.dx*binding.dx+binding.dy*binding.dy != 1 {
			t.Errorf("binding for %v moves (%d,%d), want a single cardinal step",
				binding.key, binding.dx, binding.dy)
		}
	}
}
