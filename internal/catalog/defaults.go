// Built-in catalog content. Used when no YAML catalog files are present so
// the simulation runs out of the box; YAML files override per table.
package catalog

// DefaultBuildings returns the built-in building table.
func DefaultBuildings() map[string]BuildingDefinition {
	list := []BuildingDefinition{
		{
			ID:         "solar_panel",
			Name:       "Solar Panel",
			Type:       "production",
			Cost:       Amounts{ResMoney: 50},
			Production: Amounts{ResEnergy: 10},
		},
		{
			ID:          "mineral_drill",
			Name:        "Mineral Drill",
			Type:        "production",
			Cost:        Amounts{ResMoney: 100},
			Production:  Amounts{ResMaterials: 2},
			Consumption: Amounts{ResEnergy: 5},
		},
		{
			ID:          "trade_depot",
			Name:        "Trade Depot",
			Type:        "production",
			Cost:        Amounts{ResMoney: 150, ResMaterials: 20},
			Production:  Amounts{ResMoney: 5},
			Consumption: Amounts{ResEnergy: 1},
		},
		{
			ID:          "greenhouse",
			Name:        "Greenhouse",
			Type:        "production",
			Cost:        Amounts{ResMoney: 80, ResMaterials: 10},
			Production:  Amounts{ResFood: 3},
			Consumption: Amounts{ResEnergy: 2},
		},
		{
			ID:      "battery_bank",
			Name:    "Battery Bank",
			Type:    "storage",
			Cost:    Amounts{ResMoney: 60, ResMaterials: 15},
			Storage: Amounts{ResEnergy: 200},
		},
		{
			ID:      "warehouse",
			Name:    "Warehouse",
			Type:    "storage",
			Cost:    Amounts{ResMoney: 70, ResMaterials: 25},
			Storage: Amounts{ResMaterials: 500},
		},
		{
			ID:           "defense_turret",
			Name:         "Defense Turret",
			Type:         "defense",
			Cost:         Amounts{ResMoney: 200, ResMaterials: 40},
			Consumption:  Amounts{ResEnergy: 3},
			Defense:      25,
			RequiresTech: "ballistics",
		},
		{
			ID:           "shield_generator",
			Name:         "Shield Generator",
			Type:         "defense",
			Cost:         Amounts{ResMoney: 500, ResMaterials: 120},
			Consumption:  Amounts{ResEnergy: 12},
			Defense:      80,
			RequiresTech: "energy_shielding",
		},
		{
			ID:           "fusion_reactor",
			Name:         "Fusion Reactor",
			Type:         "production",
			Cost:         Amounts{ResMoney: 800, ResMaterials: 200},
			Production:   Amounts{ResEnergy: 60},
			RequiresTech: "fusion_power",
		},
	}

	out := make(map[string]BuildingDefinition, len(list))
	for _, b := range list {
		out[b.ID] = b
	}
	return out
}

// DefaultTechs returns the built-in tech tree.
func DefaultTechs() map[string]TechNode {
	list := []TechNode{
		{
			ID:      "ballistics",
			Name:    "Ballistics",
			Cost:    Amounts{ResMoney: 100},
			Time:    30,
			Unlocks: "defense_turret",
		},
		{
			ID:      "energy_shielding",
			Name:    "Energy Shielding",
			Cost:    Amounts{ResMoney: 400},
			Time:    90,
			Prereq:  []string{"ballistics", "applied_physics"},
			Unlocks: "shield_generator",
		},
		{
			ID:   "applied_physics",
			Name: "Applied Physics",
			Cost: Amounts{ResMoney: 150},
			Time: 45,
		},
		{
			ID:      "fusion_power",
			Name:    "Fusion Power",
			Cost:    Amounts{ResMoney: 600},
			Time:    120,
			Prereq:  []string{"applied_physics"},
			Unlocks: "fusion_reactor",
		},
		{
			ID:      "combat_drones",
			Name:    "Combat Drones",
			Cost:    Amounts{ResMoney: 250},
			Time:    60,
			Prereq:  []string{"ballistics"},
			Unlocks: "drone",
		},
	}

	out := make(map[string]TechNode, len(list))
	for _, t := range list {
		out[t.ID] = t
	}
	return out
}

// DefaultUnits returns the built-in unit table.
func DefaultUnits() map[string]UnitDefinition {
	list := []UnitDefinition{
		{
			ID:          "scout_rover",
			Name:        "Scout Rover",
			Cost:        Amounts{ResMoney: 120, ResMaterials: 30},
			Maintenance: Amounts{ResEnergy: 1},
			Skills:      map[string]float64{"speed": 2.0, "attack": 0.5},
		},
		{
			ID:          "militia",
			Name:        "Militia",
			Cost:        Amounts{ResMoney: 80, ResFood: 10},
			Maintenance: Amounts{ResFood: 1},
			Skills:      map[string]float64{"speed": 1.0, "attack": 1.0},
		},
		{
			ID:          "drone",
			Name:        "Combat Drone",
			Cost:        Amounts{ResMoney: 300, ResMaterials: 60},
			Maintenance: Amounts{ResEnergy: 2},
			Skills:      map[string]float64{"speed": 1.5, "attack": 2.5},
		},
	}

	out := make(map[string]UnitDefinition, len(list))
	for _, u := range list {
		out[u.ID] = u
	}
	return out
}

// DefaultCities returns the major-city registry. Coordinates assume the
// default 100×100 world; cities outside a smaller world are skipped at
// generation time.
func DefaultCities() []City {
	return []City{
		{ID: "nova_meridian", Name: "Nova Meridian", Specialization: "trade", Population: 240000, X: 50, Y: 50, Description: "The central hub where the first colony ship landed."},
		{ID: "ironreach", Name: "Ironreach", Specialization: "mining", Population: 86000, X: 33, Y: 41, Description: "Built into the flank of the northern range."},
		{ID: "port_halcyon", Name: "Port Halcyon", Specialization: "fishing", Population: 54000, X: 62, Y: 28, Description: "A weathered harbor town on the inner sea."},
		{ID: "verdant_hollow", Name: "Verdant Hollow", Specialization: "agriculture", Population: 73000, X: 44, Y: 63, Description: "Terraced farms cut into the forest basin."},
		{ID: "suncrest", Name: "Suncrest", Specialization: "energy", Population: 61000, X: 58, Y: 57, Description: "Mirror fields stretch to the horizon."},
		{ID: "kessler_point", Name: "Kessler Point", Specialization: "research", Population: 38000, X: 39, Y: 55, Description: "Home of the orbital debris observatory."},
		{ID: "redbasin", Name: "Redbasin", Specialization: "industry", Population: 97000, X: 55, Y: 38, Description: "Smelters burn day and night in the crater."},
		{ID: "farrow_gate", Name: "Farrow Gate", Specialization: "frontier", Population: 21000, X: 68, Y: 48, Description: "Last stop before the eastern wilds."},
	}
}
