// Resource aggregation: per-tick net deltas summed over the player's owned
// buildings. Pure, order-independent, recomputed fully every tick.
package engine

import "github.com/talgya/colony-world/internal/catalog"

// Deltas holds the net per-tick contribution of all owned buildings.
type Deltas struct {
	Money     float64
	Energy    float64
	Materials float64
	Defense   float64
}

// Aggregate sums production, consumption, and defense across the building
// registry. Missing production/consumption keys and unknown definition ids
// contribute zero; they are never errors.
func Aggregate(buildings []BuildingInstance, cats *catalog.Catalogs) Deltas {
	var d Deltas
	for _, b := range buildings {
		def, ok := cats.Building(b.DefID)
		if !ok {
			continue
		}
		d.Money += def.Production.Get(catalog.ResMoney) - def.Consumption.Get(catalog.ResMoney)
		d.Energy += def.Production.Get(catalog.ResEnergy) - def.Consumption.Get(catalog.ResEnergy)
		d.Materials += def.Production.Get(catalog.ResMaterials) - def.Consumption.Get(catalog.ResMaterials)
		d.Defense += def.Defense
	}
	return d
}
