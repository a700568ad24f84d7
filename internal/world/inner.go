// Inner maps: the fine-grained grid generated for a single world tile when
// a player enters it. Cell randomness comes from a PRNG seeded by the world
// seed and the tile coordinate, so regenerating the same tile reproduces
// the same layout; callers that place buildings must still cache through
// the persistence layer.
package world

import (
	"fmt"
	"math/rand"
)

// InnerType classifies a cell of an inner map. Which values appear depends
// on the parent tile's terrain.
type InnerType uint8

const (
	InnerEmpty     InnerType = iota // Open ground
	InnerCityBlock                  // Dense urban block (city tiles)
	InnerCityHall                   // The distinguished center of a city tile
	InnerRock                       // Impassable rock obstacle (mountain tiles)
	InnerMineral                    // Exposed mineral deposit (mountain tiles)
	InnerTree                       // Tree cover (forest tiles)
)

// InnerTypeName returns a human-readable name for an inner cell type.
func InnerTypeName(t InnerType) string {
	switch t {
	case InnerEmpty:
		return "Empty"
	case InnerCityBlock:
		return "CityBlock"
	case InnerCityHall:
		return "CityHall"
	case InnerRock:
		return "Rock"
	case InnerMineral:
		return "Mineral"
	case InnerTree:
		return "Tree"
	default:
		return "Unknown"
	}
}

// InnerTile is a single cell of an inner map.
type InnerTile struct {
	X          int       `json:"x"`
	Y          int       `json:"y"`
	Type       InnerType `json:"type"`
	BuildingID string    `json:"building_id,omitempty"` // Placed building definition id, if any
}

// InnerMap is the generated grid for one world tile.
type InnerMap struct {
	ParentX int           `json:"parent_x"`
	ParentY int           `json:"parent_y"`
	Size    int           `json:"size"`
	Cells   [][]InnerTile `json:"cells"`
}

// Per-cell probabilities for stochastic terrains.
const (
	rockProbability = 0.3 // Mountain cells resolve to rock, else mineral
	treeProbability = 0.4 // Forest cells resolve to tree, else empty
)

// tileSeed derives a stable per-tile seed from the world seed and the tile
// coordinate.
func tileSeed(worldSeed int64, x, y int) int64 {
	return worldSeed ^ int64(x)*73856093 ^ int64(y)*19349663
}

// GenerateInner produces the inner map for the world tile at (x, y).
// The layout branches on the parent terrain; regeneration for the same tile
// and world seed is reproducible. Returns ErrOutOfRange for coordinates
// outside the world.
func GenerateInner(m *Map, x, y, innerSize int) (*InnerMap, error) {
	parent, err := m.TileAt(x, y)
	if err != nil {
		return nil, fmt.Errorf("generate inner map: %w", err)
	}

	rng := rand.New(rand.NewSource(tileSeed(m.Seed, x, y)))

	im := &InnerMap{
		ParentX: x,
		ParentY: y,
		Size:    innerSize,
		Cells:   make([][]InnerTile, innerSize),
	}

	center := innerSize / 2
	for cy := 0; cy < innerSize; cy++ {
		im.Cells[cy] = make([]InnerTile, innerSize)
		for cx := 0; cx < innerSize; cx++ {
			cell := InnerTile{X: cx, Y: cy}

			switch parent.Terrain {
			case TerrainCity:
				cell.Type = InnerCityBlock
				if cx == center && cy == center {
					cell.Type = InnerCityHall
				}
			case TerrainMountain:
				if rng.Float64() < rockProbability {
					cell.Type = InnerRock
				} else {
					cell.Type = InnerMineral
				}
			case TerrainForest:
				if rng.Float64() < treeProbability {
					cell.Type = InnerTree
				} else {
					cell.Type = InnerEmpty
				}
			default:
				cell.Type = InnerEmpty
			}

			im.Cells[cy][cx] = cell
		}
	}

	return im, nil
}
