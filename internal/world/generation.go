// World generation. Terrain comes from deterministic multi-frequency
// sinusoidal noise around a continental radius; elevation and moisture
// metadata come from layered simplex noise seeded per world.
package world

import (
	"log/slog"
	"math"

	opensimplex "github.com/ojrac/opensimplex-go"

	"github.com/talgya/colony-world/internal/catalog"
)

// GenConfig holds world generation parameters.
type GenConfig struct {
	Size int   // World edge length in tiles
	Seed int64 // Seed for elevation/moisture layers and inner maps

	RadiusFrac   float64 // Continent radius as a fraction of Size
	NoiseAmp     float64 // Coastline distortion amplitude in tiles
	ForestThresh float64 // Secondary sinusoidal product above this → forest
	MountainAbs  float64 // |noise| above this → mountain (wins over forest)
	ExploredHalf int     // Half-width of the pre-explored window at center
}

// DefaultGenConfig returns the standard generation parameters for a world
// of the given size.
func DefaultGenConfig(size int, seed int64) GenConfig {
	return GenConfig{
		Size:         size,
		Seed:         seed,
		RadiusFrac:   0.38,
		NoiseAmp:     float64(size) * 0.06,
		ForestThresh: 0.45,
		MountainAbs:  1.55,
		ExploredHalf: 3,
	}
}

// terrainNoise is the deterministic sinusoidal coastline/ridge noise: a sum
// of sine and cosine terms at three spatial frequencies, range ≈ [-2.5, 2.5].
func terrainNoise(x, y float64) float64 {
	return math.Sin(x*0.11) + math.Cos(y*0.13) +
		0.7*math.Sin(x*0.31)*math.Cos(y*0.27) +
		0.3*math.Sin(x*0.73+y*0.11)
}

// forestSignal is the secondary sinusoidal product used for forest patches.
func forestSignal(x, y float64) float64 {
	return math.Sin(x*0.47) * math.Cos(y*0.53)
}

// Generate creates the complete world map: terrain classification, the
// one-time major-city overlay, the pre-explored center window, and
// elevation/moisture metadata. Terrain classification is deterministic for
// a given size; only the metadata layers depend on the seed.
func Generate(cfg GenConfig, cities []catalog.City) *Map {
	m := NewMap(cfg.Size, cfg.Seed)

	elevNoise := opensimplex.NewNormalized(cfg.Seed)
	moistNoise := opensimplex.NewNormalized(cfg.Seed + 1)

	center := float64(cfg.Size) / 2.0
	radius := float64(cfg.Size) * cfg.RadiusFrac

	for y := 0; y < cfg.Size; y++ {
		for x := 0; x < cfg.Size; x++ {
			fx, fy := float64(x), float64(y)
			dist := math.Hypot(fx-center, fy-center)
			n := terrainNoise(fx, fy)

			terrain := TerrainOcean
			if dist <= radius+n*cfg.NoiseAmp {
				terrain = TerrainPlains
				if forestSignal(fx, fy) > cfg.ForestThresh {
					terrain = TerrainForest
				}
				// Mountain check runs last: it wins over forest.
				if math.Abs(n) > cfg.MountainAbs {
					terrain = TerrainMountain
				}
			}

			m.Tiles[y][x] = &Tile{
				X:         x,
				Y:         y,
				Terrain:   terrain,
				Elevation: octaveNoise(elevNoise, fx, fy, 4, 0.04, 0.5),
				Moisture:  octaveNoise(moistNoise, fx, fy, 3, 0.03, 0.5),
			}
		}
	}

	placed := overlayCities(m, cities)

	// Pre-explore a small square window around the map center.
	ci := cfg.Size / 2
	for y := ci - cfg.ExploredHalf; y <= ci+cfg.ExploredHalf; y++ {
		for x := ci - cfg.ExploredHalf; x <= ci+cfg.ExploredHalf; x++ {
			if t := m.Get(x, y); t != nil {
				t.Explored = true
			}
		}
	}

	slog.Info("world generated", "size", cfg.Size, "seed", cfg.Seed, "cities", placed)
	return m
}

// overlayCities stamps every registry city onto its fixed coordinate,
// unconditionally replacing the generated terrain. Cities outside the map
// bounds (small worlds) are skipped. Returns the number placed.
func overlayCities(m *Map, cities []catalog.City) int {
	placed := 0
	for i := range cities {
		c := cities[i]
		t := m.Get(c.X, c.Y)
		if t == nil {
			slog.Warn("city outside world bounds, skipped", "city", c.ID, "x", c.X, "y", c.Y)
			continue
		}
		t.Terrain = TerrainCity
		t.City = &cities[i]
		placed++
	}
	return placed
}

// octaveNoise generates fractal noise by layering multiple frequencies.
func octaveNoise(noise opensimplex.Noise, x, y float64, octaves int, frequency, persistence float64) float64 {
	total := 0.0
	amplitude := 1.0
	maxVal := 0.0

	for i := 0; i < octaves; i++ {
		total += noise.Eval2(x*frequency, y*frequency) * amplitude
		maxVal += amplitude
		amplitude *= persistence
		frequency *= 2
	}

	return total / maxVal
}
