// Player operations outside the tick path: buying buildings and starting
// research. These spend catalog costs against the player's resource pools
// and then delegate to the registry / state machine.
package engine

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/talgya/colony-world/internal/catalog"
)

// pool returns a pointer to the player's pool for a resource, or nil for
// resources the player does not hold.
func (p *PlayerState) pool(r catalog.Resource) *float64 {
	switch r {
	case catalog.ResMoney:
		return &p.Money
	case catalog.ResEnergy:
		return &p.Energy
	case catalog.ResMaterials:
		return &p.Materials
	case catalog.ResFood:
		return &p.Food
	default:
		return nil
	}
}

// canAfford reports whether every cost entry is covered.
func (p *PlayerState) canAfford(cost catalog.Amounts) bool {
	for r, amount := range cost {
		pool := p.pool(r)
		if pool == nil || *pool < amount {
			return false
		}
	}
	return true
}

// spend deducts cost from the player's pools. Caller checks affordability.
func (p *PlayerState) spend(cost catalog.Amounts) {
	for r, amount := range cost {
		if pool := p.pool(r); pool != nil {
			*pool -= amount
		}
	}
}

// Buy purchases one building of the given definition, deducting its cost
// and appending an instance to the owned-building registry. Fails with
// ErrUnknownID, ErrLocked, or ErrUnaffordable.
func (p *PlayerState) Buy(defID string, cats *catalog.Catalogs) error {
	def, ok := cats.Building(defID)
	if !ok {
		return fmt.Errorf("buy %q: %w", defID, ErrUnknownID)
	}
	if def.RequiresTech != "" && !p.Research.Completed[def.RequiresTech] {
		return fmt.Errorf("buy %q: needs tech %q: %w", defID, def.RequiresTech, ErrLocked)
	}
	if !p.canAfford(def.Cost) {
		return fmt.Errorf("buy %q: %w", defID, ErrUnaffordable)
	}

	p.spend(def.Cost)
	p.Buildings = append(p.Buildings, BuildingInstance{
		ID:           uuid.NewString(),
		DefID:        defID,
		AcquiredTick: p.Tick,
	})
	return nil
}

// BeginResearch deducts the tech's money cost and starts the project.
// Transition failures from the research state machine propagate unchanged;
// no cost is deducted on failure.
func (p *PlayerState) BeginResearch(techID string, cats *catalog.Catalogs) error {
	node, ok := cats.Tech(techID)
	if !ok {
		return fmt.Errorf("research %q: %w", techID, ErrInvalidTransition)
	}
	if !p.canAfford(node.Cost) {
		return fmt.Errorf("research %q: %w", techID, ErrUnaffordable)
	}

	if err := p.Research.Start(techID, cats); err != nil {
		return err
	}
	p.spend(node.Cost)
	return nil
}
