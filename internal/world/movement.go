package world

// MovementCost returns the cost of entering a tile of the given terrain.
// Pure lookup; unlisted terrains (plains, city) cost 1.
func MovementCost(t Terrain) int {
	switch t {
	case TerrainOcean:
		return 10
	case TerrainMountain:
		return 5
	case TerrainForest:
		return 2
	default:
		return 1
	}
}
