package main

import (
	"log"

	"gridfall/generation"
	"gridfall/world"
)

// LevelManager owns the current map and the history of levels above it.
// Maps swap in and out as whole values: descending stores a clone of the
// level being left, ascending restores one, and nothing ever holds a
// reference into a map that is not current.
type LevelManager struct {
	current *world.TileMap
	// history[i] is the saved state of level i, for levels above the
	// current one
	history []*world.TileMap
}

// NewLevelManager generates the surface level and starts the history there
func NewLevelManager() *LevelManager {
	first := generation.NewMap()
	return &LevelManager{current: first}
}

// Current returns the active map
func (lm *LevelManager) Current() *world.TileMap {
	return lm.current
}

// Descend stores the current level and generates the one below. Returns the
// new map.
func (lm *LevelManager) Descend() *world.TileMap {
	lm.history = append(lm.history, lm.current.Clone())
	next := generation.NewMapForLevel(lm.current.CurrentLevel+1, lm.current)
	log.Printf("descended to level %d (%s)", next.CurrentLevel, next.GetBiomeAt(0, 0))
	lm.current = next
	return next
}

// Ascend restores the level above, if there is one. Returns the restored
// map, or nil when already on the surface.
func (lm *LevelManager) Ascend() *world.TileMap {
	if len(lm.history) == 0 {
		return nil
	}
	restored := lm.history[len(lm.history)-1]
	lm.history = lm.history[:len(lm.history)-1]
	log.Printf("ascended to level %d", restored.CurrentLevel)
	lm.current = restored
	return restored
}

// Regenerate rerolls the current level from a fresh seed
func (lm *LevelManager) Regenerate() *world.TileMap {
	lm.current = generation.NewMapForLevel(lm.current.CurrentLevel, nil)
	log.Printf("regenerated level %d (%s)", lm.current.CurrentLevel, lm.current.GetBiomeAt(0, 0))
	return lm.current
}
