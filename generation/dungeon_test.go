package generation

import (
	"testing"

	"gridfall/config"
	"gridfall/world"
)

// generateWithSeed runs the full pipeline with a fixed seed
func generateWithSeed(seed int64, level int) *world.TileMap {
	return NewGeneratorWithSource(NewSource(seed)).Generate(level)
}

func TestBorderRingIsAlwaysWall(t *testing.T) {
	for seed := int64(0); seed < 25; seed++ {
		m := generateWithSeed(seed, 0)
		grid := m.Tiles
		for x := 0; x < grid.Width; x++ {
			if grid.Tiles[0][x] != world.TileWall {
				t.Errorf("seed=%d: top border breached at x=%d: %v", seed, x, grid.Tiles[0][x])
			}
			if grid.Tiles[grid.Height-1][x] != world.TileWall {
				t.Errorf("seed=%d: bottom border breached at x=%d: %v", seed, x, grid.Tiles[grid.Height-1][x])
			}
		}
		for y := 0; y < grid.Height; y++ {
			if grid.Tiles[y][0] != world.TileWall {
				t.Errorf("seed=%d: left border breached at y=%d: %v", seed, y, grid.Tiles[y][0])
			}
			if grid.Tiles[y][grid.Width-1] != world.TileWall {
				t.Errorf("seed=%d: right border breached at y=%d: %v", seed, y, grid.Tiles[y][grid.Width-1])
			}
		}
	}
}

func TestRoomsNeverEmpty(t *testing.T) {
	for seed := int64(0); seed < 25; seed++ {
		m := generateWithSeed(seed, 0)
		if len(m.Rooms) == 0 {
			t.Errorf("seed=%d: generated map has no rooms", seed)
		}
	}
}

func TestSpawnAddressesFloor(t *testing.T) {
	for seed := int64(0); seed < 25; seed++ {
		m := generateWithSeed(seed, 0)
		if len(m.Tiles.FloorTiles()) == 0 {
			continue // degenerate case, covered separately
		}
		x, y := m.GetSpawnPosition()
		if got := m.Tiles.TileAt(x, y); got != world.TileFloor {
			t.Errorf("seed=%d: spawn at (%d,%d) is %v, want floor", seed, x, y, got)
		}
	}
}

func TestStairCardinality(t *testing.T) {
	for seed := int64(0); seed < 25; seed++ {
		surface := generateWithSeed(seed, 0)
		if surface.DownStairs == nil {
			t.Errorf("seed=%d: level 0 is missing down stairs", seed)
		}
		if surface.UpStairs != nil {
			t.Errorf("seed=%d: level 0 should not have up stairs", seed)
		}

		deep := generateWithSeed(seed, 3)
		if deep.DownStairs == nil {
			t.Errorf("seed=%d: level 3 is missing down stairs", seed)
		}
		if deep.UpStairs == nil {
			t.Errorf("seed=%d: level 3 is missing up stairs", seed)
			continue
		}
		if *deep.DownStairs == *deep.UpStairs {
			t.Errorf("seed=%d: both staircases at %v", seed, *deep.DownStairs)
		}

		// The recorded positions must match the tiles one-to-one
		downCount, upCount := 0, 0
		for y := 0; y < deep.Tiles.Height; y++ {
			for x := 0; x < deep.Tiles.Width; x++ {
				switch deep.Tiles.Tiles[y][x] {
				case world.TileStairsDown:
					downCount++
				case world.TileStairsUp:
					upCount++
				}
			}
		}
		if downCount != 1 {
			t.Errorf("seed=%d: found %d down-stair tiles, want exactly 1", seed, downCount)
		}
		if upCount != 1 {
			t.Errorf("seed=%d: found %d up-stair tiles, want exactly 1", seed, upCount)
		}
	}
}

func TestRoomsDoNotOverlap(t *testing.T) {
	for seed := int64(0); seed < 25; seed++ {
		m := generateWithSeed(seed, 0)
		rooms := m.Rooms
		for i := 0; i < len(rooms); i++ {
			for j := i + 1; j < len(rooms); j++ {
				a, b := rooms[i], rooms[j]
				// Inflate each bounding box by one tile and test intersection
				if a.X-1 < b.X+b.Width+1 && a.X+a.Width+1 > b.X-1 &&
					a.Y-1 < b.Y+b.Height+1 && a.Y+a.Height+1 > b.Y-1 {
					t.Errorf("seed=%d: rooms %d and %d violate the 1-tile buffer: %+v vs %+v",
						seed, i, j, a, b)
				}
			}
		}
	}
}

func TestDeterministicGeneration(t *testing.T) {
	for seed := int64(1); seed < 11; seed++ {
		first := generateWithSeed(seed, 2)
		second := generateWithSeed(seed, 2)

		if len(first.Rooms) != len(second.Rooms) {
			t.Fatalf("seed=%d: room counts differ: %d vs %d", seed, len(first.Rooms), len(second.Rooms))
		}
		for i := range first.Rooms {
			if first.Rooms[i] != second.Rooms[i] {
				t.Errorf("seed=%d: room %d differs: %+v vs %+v", seed, i, first.Rooms[i], second.Rooms[i])
			}
		}
		for y := 0; y < first.Tiles.Height; y++ {
			for x := 0; x < first.Tiles.Width; x++ {
				if first.Tiles.Tiles[y][x] != second.Tiles.Tiles[y][x] {
					t.Fatalf("seed=%d: tiles differ at (%d,%d): %v vs %v",
						seed, x, y, first.Tiles.Tiles[y][x], second.Tiles.Tiles[y][x])
				}
			}
		}
		if first.Spawn != second.Spawn {
			t.Errorf("seed=%d: spawns differ: %v vs %v", seed, first.Spawn, second.Spawn)
		}
		if first.GetBiomeAt(1, 1) != second.GetBiomeAt(1, 1) {
			t.Errorf("seed=%d: biomes differ", seed)
		}
	}
}

func TestDifferentSeedsDiverge(t *testing.T) {
	a := generateWithSeed(12345, 0)
	b := generateWithSeed(54321, 0)

	same := true
	for y := 0; y < a.Tiles.Height && same; y++ {
		for x := 0; x < a.Tiles.Width; x++ {
			if a.Tiles.Tiles[y][x] != b.Tiles.Tiles[y][x] {
				same = false
				break
			}
		}
	}
	if same {
		t.Error("two different seeds produced identical grids")
	}
}

func TestBiomeCoversWholeLevel(t *testing.T) {
	for seed := int64(0); seed < 10; seed++ {
		m := generateWithSeed(seed, 0)
		want := m.GetBiomeAt(0, 0)
		for y := 0; y < config.MapHeight; y++ {
			for x := 0; x < config.MapWidth; x++ {
				if got := m.GetBiomeAt(x, y); got != want {
					t.Fatalf("seed=%d: biome at (%d,%d) is %v, want %v", seed, x, y, got, want)
				}
			}
		}
		// Out-of-bounds lookups fall back to the default
		if got := m.GetBiomeAt(-1, 5); got != world.DefaultBiome {
			t.Errorf("seed=%d: out-of-bounds biome = %v, want default", seed, got)
		}
		if got := m.GetBiomeAt(config.MapWidth, 0); got != world.DefaultBiome {
			t.Errorf("seed=%d: out-of-bounds biome = %v, want default", seed, got)
		}
	}
}

func TestDownStairsInsideAcceptedRoom(t *testing.T) {
	for seed := int64(0); seed < 25; seed++ {
		m := generateWithSeed(seed, 0)
		if m.DownStairs == nil {
			t.Fatalf("seed=%d: no down stairs", seed)
		}
		inside := false
		for _, room := range m.Rooms {
			if room.Contains(m.DownStairs.X, m.DownStairs.Y) {
				inside = true
				break
			}
		}
		if !inside {
			t.Errorf("seed=%d: down stairs at %v lie outside every room", seed, *m.DownStairs)
		}
	}
}

func TestDoorsFormProperDoorways(t *testing.T) {
	for seed := int64(0); seed < 15; seed++ {
		m := generateWithSeed(seed, 0)
		grid := m.Tiles
		for y := 0; y < grid.Height; y++ {
			for x := 0; x < grid.Width; x++ {
				if grid.Tiles[y][x] != world.TileDoor {
					continue
				}
				horizontal := grid.TileAt(x-1, y).Walkability() != world.Blocked &&
					grid.TileAt(x+1, y).Walkability() != world.Blocked
				vertical := grid.TileAt(x, y-1).Walkability() != world.Blocked &&
					grid.TileAt(x, y+1).Walkability() != world.Blocked
				if !horizontal && !vertical {
					t.Errorf("seed=%d: door at (%d,%d) has no passable opposing sides", seed, x, y)
				}
			}
		}
	}
}

func TestSecretDoorsOpenBothWays(t *testing.T) {
	for seed := int64(0); seed < 15; seed++ {
		m := generateWithSeed(seed, 0)
		grid := m.Tiles
		for y := 0; y < grid.Height; y++ {
			for x := 0; x < grid.Width; x++ {
				if grid.Tiles[y][x] != world.TileSecretDoor {
					continue
				}
				passable := 0
				for _, dir := range cardinalDirections {
					if grid.TileAt(x+dir[0], y+dir[1]).Walkability() != world.Blocked {
						passable++
					}
				}
				if passable < 2 {
					t.Errorf("seed=%d: secret door at (%d,%d) has %d passable neighbors, want at least 2",
						seed, x, y, passable)
				}
			}
		}
	}
}

// TestConnectivityReport measures how much of the floor network is reachable
// from the spawn tile. The generator makes no connectivity guarantee (the
// augmentation pass is best-effort), so disconnected pockets are reported
// with t.Logf for visibility rather than failed on.
func TestConnectivityReport(t *testing.T) {
	for seed := int64(0); seed < 10; seed++ {
		m := generateWithSeed(seed, 0)
		grid := m.Tiles

		floors := grid.FloorTiles()
		if len(floors) == 0 {
			t.Fatalf("seed=%d: no floor tiles", seed)
		}

		visited := make([][]bool, grid.Height)
		for y := range visited {
			visited[y] = make([]bool, grid.Width)
		}
		queue := []world.Point{m.Spawn}
		visited[m.Spawn.Y][m.Spawn.X] = true
		reached := 0

		for len(queue) > 0 {
			cur := queue[0]
			queue = queue[1:]
			reached++
			for _, dir := range cardinalDirections {
				nx, ny := cur.X+dir[0], cur.Y+dir[1]
				if !grid.InBounds(nx, ny) || visited[ny][nx] {
					continue
				}
				if grid.TileAt(nx, ny).Walkability() != world.Blocked {
					visited[ny][nx] = true
					queue = append(queue, world.Point{X: nx, Y: ny})
				}
			}
		}

		unreached := 0
		for _, p := range floors {
			if !visited[p.Y][p.X] {
				unreached++
			}
		}
		if unreached > 0 {
			t.Logf("seed=%d: %d of %d floor tiles unreachable from spawn (best-effort augmentation, no repair pass)",
				seed, unreached, len(floors))
		}
	}
}

func TestNewMapForLevelCarriesLevelTag(t *testing.T) {
	previous := generateWithSeed(7, 2)
	m := NewMapForLevel(3, previous)

	if m.CurrentLevel != 3 {
		t.Errorf("CurrentLevel = %d, want 3", m.CurrentLevel)
	}
	if m.DownStairs == nil || m.UpStairs == nil {
		t.Fatal("level 3 must have both staircases")
	}
	if *m.DownStairs == *m.UpStairs {
		t.Errorf("staircases share position %v", *m.DownStairs)
	}
}

func TestNewMapIsLevelZero(t *testing.T) {
	m := NewMap()
	if m.CurrentLevel != 0 {
		t.Errorf("CurrentLevel = %d, want 0", m.CurrentLevel)
	}
	if m.DownStairs == nil {
		t.Error("level 0 is missing down stairs")
	}
	if m.UpStairs != nil {
		t.Error("level 0 should not have up stairs")
	}
}
