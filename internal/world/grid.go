// Package world provides the planetary grid, terrain generation, per-tile
// inner maps, and movement costs.
package world

import (
	"errors"
	"fmt"

	"github.com/talgya/colony-world/internal/catalog"
)

// ErrOutOfRange reports a coordinate outside the world bounds.
var ErrOutOfRange = errors.New("coordinate out of world range")

// Terrain types for world tiles.
type Terrain uint8

const (
	TerrainOcean    Terrain = iota // Impassable water beyond the continent edge
	TerrainPlains                  // Default buildable land
	TerrainForest                  // Dense tree cover
	TerrainMountain                // High ridges, mineral-rich
	TerrainCity                    // Major city overlay
)

// TerrainName returns a human-readable name for a terrain type.
func TerrainName(t Terrain) string {
	switch t {
	case TerrainOcean:
		return "Ocean"
	case TerrainPlains:
		return "Plains"
	case TerrainForest:
		return "Forest"
	case TerrainMountain:
		return "Mountain"
	case TerrainCity:
		return "City"
	default:
		return "Unknown"
	}
}

// Tile is a single cell of the world map. Terrain is immutable after
// generation; the city overlay is applied exactly once during Generate.
type Tile struct {
	X        int     `json:"x"`
	Y        int     `json:"y"`
	Terrain  Terrain `json:"terrain"`
	Explored bool    `json:"explored"`

	// Elevation and moisture metadata for renderer/pathfinding consumers;
	// not read by the tick path.
	Elevation float64 `json:"elevation"`
	Moisture  float64 `json:"moisture"`

	// City on this tile, if any.
	City *catalog.City `json:"city,omitempty"`
}

// Map holds the complete world grid.
type Map struct {
	Size  int       `json:"size"`
	Seed  int64     `json:"seed"`
	Tiles [][]*Tile `json:"-"`
}

// NewMap creates an empty size×size map.
func NewMap(size int, seed int64) *Map {
	tiles := make([][]*Tile, size)
	for y := range tiles {
		tiles[y] = make([]*Tile, size)
	}
	return &Map{Size: size, Seed: seed, Tiles: tiles}
}

// InBounds reports whether (x, y) lies on the map.
func (m *Map) InBounds(x, y int) bool {
	return x >= 0 && x < m.Size && y >= 0 && y < m.Size
}

// Get returns the tile at (x, y), or nil when out of bounds.
func (m *Map) Get(x, y int) *Tile {
	if !m.InBounds(x, y) {
		return nil
	}
	return m.Tiles[y][x]
}

// TileAt returns the tile at (x, y) or ErrOutOfRange.
func (m *Map) TileAt(x, y int) (*Tile, error) {
	if !m.InBounds(x, y) {
		return nil, fmt.Errorf("tile (%d,%d): %w", x, y, ErrOutOfRange)
	}
	return m.Tiles[y][x], nil
}

// TileCount returns the total number of tiles.
func (m *Map) TileCount() int {
	return m.Size * m.Size
}

// String returns a summary of the map.
func (m *Map) String() string {
	return fmt.Sprintf("Map(size=%d, tiles=%d)", m.Size, m.TileCount())
}

// TerrainCounts returns the terrain type distribution.
func TerrainCounts(m *Map) map[Terrain]int {
	counts := make(map[Terrain]int)
	for _, row := range m.Tiles {
		for _, t := range row {
			counts[t.Terrain]++
		}
	}
	return counts
}
