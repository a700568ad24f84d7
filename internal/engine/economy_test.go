package engine

import (
	"math/rand"
	"testing"

	"github.com/talgya/colony-world/internal/catalog"
)

func testCatalogs(t *testing.T) *catalog.Catalogs {
	t.Helper()
	cats, err := catalog.Load("")
	if err != nil {
		t.Fatalf("load catalogs: %v", err)
	}
	return cats
}

func instances(defIDs ...string) []BuildingInstance {
	out := make([]BuildingInstance, len(defIDs))
	for i, id := range defIDs {
		out[i] = BuildingInstance{ID: id, DefID: id}
	}
	return out
}

func TestAggregateBasic(t *testing.T) {
	cats := testCatalogs(t)
	d := Aggregate(instances("solar_panel", "mineral_drill"), cats)

	if d.Energy != 5 {
		t.Errorf("Δenergy = %v, want 5", d.Energy)
	}
	if d.Materials != 2 {
		t.Errorf("Δmaterials = %v, want 2", d.Materials)
	}
	if d.Money != 0 {
		t.Errorf("Δmoney = %v, want 0", d.Money)
	}
	if d.Defense != 0 {
		t.Errorf("defense = %v, want 0", d.Defense)
	}
}

func TestAggregateDefense(t *testing.T) {
	cats := testCatalogs(t)
	d := Aggregate(instances("defense_turret", "defense_turret", "shield_generator"), cats)

	if d.Defense != 130 {
		t.Errorf("defense = %v, want 130", d.Defense)
	}
	if d.Energy != -18 {
		t.Errorf("Δenergy = %v, want -18", d.Energy)
	}
}

func TestAggregateOrderIndependent(t *testing.T) {
	cats := testCatalogs(t)
	base := instances("solar_panel", "mineral_drill", "trade_depot", "defense_turret", "greenhouse", "solar_panel")
	want := Aggregate(base, cats)

	rng := rand.New(rand.NewSource(1))
	for trial := 0; trial < 20; trial++ {
		shuffled := make([]BuildingInstance, len(base))
		copy(shuffled, base)
		rng.Shuffle(len(shuffled), func(i, j int) {
			shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
		})

		if got := Aggregate(shuffled, cats); got != want {
			t.Fatalf("aggregation differs after permutation: %+v vs %+v", got, want)
		}
	}
}

func TestAggregateUnknownAndEmpty(t *testing.T) {
	cats := testCatalogs(t)

	if d := Aggregate(nil, cats); d != (Deltas{}) {
		t.Errorf("empty registry should aggregate to zero, got %+v", d)
	}

	// Unknown definition ids contribute nothing — not an error.
	d := Aggregate(instances("solar_panel", "no_such_building"), cats)
	if d.Energy != 10 {
		t.Errorf("Δenergy = %v, want 10", d.Energy)
	}
}

func TestAggregateMissingFieldsAreZero(t *testing.T) {
	cats := testCatalogs(t)
	// battery_bank has storage only: no production, consumption, or defense.
	if d := Aggregate(instances("battery_bank"), cats); d != (Deltas{}) {
		t.Errorf("storage-only building should contribute zero, got %+v", d)
	}
}
