package world

import (
	"testing"

	"github.com/talgya/colony-world/internal/catalog"
)

func testCities() []catalog.City {
	return []catalog.City{
		{ID: "alpha", Name: "Alpha", X: 50, Y: 50},
		{ID: "beta", Name: "Beta", X: 40, Y: 60},
		{ID: "offmap", Name: "Off Map", X: 500, Y: 500},
	}
}

func TestGenerateTerrainDomain(t *testing.T) {
	m := Generate(DefaultGenConfig(100, 7), testCities())

	for y := 0; y < m.Size; y++ {
		for x := 0; x < m.Size; x++ {
			tile := m.Get(x, y)
			if tile == nil {
				t.Fatalf("missing tile (%d,%d)", x, y)
			}
			switch tile.Terrain {
			case TerrainOcean, TerrainPlains, TerrainForest, TerrainMountain, TerrainCity:
			default:
				t.Fatalf("tile (%d,%d) has invalid terrain %d", x, y, tile.Terrain)
			}
			if tile.Elevation < 0 || tile.Elevation > 1 {
				t.Fatalf("tile (%d,%d) elevation %f out of [0,1]", x, y, tile.Elevation)
			}
			if tile.Moisture < 0 || tile.Moisture > 1 {
				t.Fatalf("tile (%d,%d) moisture %f out of [0,1]", x, y, tile.Moisture)
			}
		}
	}
}

func TestGenerateCityOverlay(t *testing.T) {
	cities := testCities()
	m := Generate(DefaultGenConfig(100, 7), cities)

	for _, c := range cities[:2] { // In-bounds cities
		tile := m.Get(c.X, c.Y)
		if tile.Terrain != TerrainCity {
			t.Errorf("city %s at (%d,%d): terrain = %s, want City", c.ID, c.X, c.Y, TerrainName(tile.Terrain))
		}
		if tile.City == nil || tile.City.ID != c.ID {
			t.Errorf("city %s not attached to its tile", c.ID)
		}
	}

	// Count city tiles: exactly the in-bounds registry entries.
	if got := TerrainCounts(m)[TerrainCity]; got != 2 {
		t.Errorf("city tile count = %d, want 2", got)
	}
}

func TestGenerateTerrainDeterministicPerSize(t *testing.T) {
	// Terrain classification is pure trigonometry: different seeds must
	// yield identical terrain for the same world size.
	a := Generate(DefaultGenConfig(64, 1), nil)
	b := Generate(DefaultGenConfig(64, 99), nil)

	for y := 0; y < 64; y++ {
		for x := 0; x < 64; x++ {
			if a.Get(x, y).Terrain != b.Get(x, y).Terrain {
				t.Fatalf("terrain at (%d,%d) differs across seeds", x, y)
			}
		}
	}
}

func TestGenerateOceanBorder(t *testing.T) {
	m := Generate(DefaultGenConfig(100, 7), nil)

	corners := [][2]int{{0, 0}, {0, 99}, {99, 0}, {99, 99}}
	for _, c := range corners {
		if got := m.Get(c[0], c[1]).Terrain; got != TerrainOcean {
			t.Errorf("corner (%d,%d) = %s, want Ocean", c[0], c[1], TerrainName(got))
		}
	}
}

func TestGenerateExploredWindow(t *testing.T) {
	cfg := DefaultGenConfig(100, 7)
	m := Generate(cfg, nil)

	ci := cfg.Size / 2
	for y := ci - cfg.ExploredHalf; y <= ci+cfg.ExploredHalf; y++ {
		for x := ci - cfg.ExploredHalf; x <= ci+cfg.ExploredHalf; x++ {
			if !m.Get(x, y).Explored {
				t.Errorf("center tile (%d,%d) not pre-explored", x, y)
			}
		}
	}

	if m.Get(0, 0).Explored {
		t.Error("corner tile should not be pre-explored")
	}
	if m.Get(ci-cfg.ExploredHalf-1, ci).Explored {
		t.Error("tile just outside the window should not be pre-explored")
	}
}

func TestMovementCost(t *testing.T) {
	cases := []struct {
		terrain Terrain
		want    int
	}{
		{TerrainOcean, 10},
		{TerrainMountain, 5},
		{TerrainForest, 2},
		{TerrainPlains, 1},
		{TerrainCity, 1},
	}
	for _, c := range cases {
		if got := MovementCost(c.terrain); got != c.want {
			t.Errorf("MovementCost(%s) = %d, want %d", TerrainName(c.terrain), got, c.want)
		}
	}
}

func TestTileAtOutOfRange(t *testing.T) {
	m := Generate(DefaultGenConfig(20, 7), nil)

	for _, c := range [][2]int{{-1, 0}, {0, -1}, {20, 0}, {0, 20}} {
		if _, err := m.TileAt(c[0], c[1]); err == nil {
			t.Errorf("TileAt(%d,%d) should fail", c[0], c[1])
		}
	}
	if _, err := m.TileAt(10, 10); err != nil {
		t.Errorf("TileAt(10,10) failed: %v", err)
	}
}
