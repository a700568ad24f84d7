package catalog

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	c, err := Load("")
	if err != nil {
		t.Fatalf("load defaults: %v", err)
	}

	if _, ok := c.Building("solar_panel"); !ok {
		t.Error("default buildings missing solar_panel")
	}
	if _, ok := c.Tech("ballistics"); !ok {
		t.Error("default techs missing ballistics")
	}
	if _, ok := c.Unit("drone"); !ok {
		t.Error("default units missing drone")
	}
	if len(c.Cities) == 0 {
		t.Error("default city registry empty")
	}
}

func TestLoadYAMLOverride(t *testing.T) {
	dir := t.TempDir()
	buildings := `
buildings:
  - id: hab_dome
    name: Habitat Dome
    type: production
    cost:
      money: 30
    production:
      food: 4
    consumption:
      energy: 1
`
	techs := `
techs:
  - id: habitation
    name: Habitation
    cost:
      money: 50
    time: 20
    unlocks: hab_dome
`
	if err := os.WriteFile(filepath.Join(dir, "buildings.yaml"), []byte(buildings), 0644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "techs.yaml"), []byte(techs), 0644); err != nil {
		t.Fatal(err)
	}

	c, err := Load(dir)
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	// The files replace their tables entirely.
	if _, ok := c.Building("solar_panel"); ok {
		t.Error("override should replace the default buildings table")
	}
	def, ok := c.Building("hab_dome")
	if !ok {
		t.Fatal("hab_dome not loaded")
	}
	if def.Cost.Get(ResMoney) != 30 || def.Production.Get(ResFood) != 4 {
		t.Errorf("hab_dome fields wrong: %+v", def)
	}
	// Missing fields read as zero.
	if def.Defense != 0 || def.Production.Get(ResEnergy) != 0 {
		t.Errorf("missing fields should be zero: %+v", def)
	}

	node, ok := c.Tech("habitation")
	if !ok {
		t.Fatal("habitation tech not loaded")
	}
	if node.Time != 20 || node.Unlocks != "hab_dome" {
		t.Errorf("habitation fields wrong: %+v", node)
	}

	// Tables without files keep their defaults.
	if _, ok := c.Unit("drone"); !ok {
		t.Error("default units should survive a partial override")
	}
}

func TestValidateRejectsBrokenReferences(t *testing.T) {
	c := &Catalogs{
		Buildings: DefaultBuildings(),
		Techs: map[string]TechNode{
			"ghost": {ID: "ghost", Time: 10, Prereq: []string{"missing"}},
		},
		Units: DefaultUnits(),
	}
	if err := c.Validate(); !errors.Is(err, ErrBadCatalog) {
		t.Errorf("broken prereq: got %v, want ErrBadCatalog", err)
	}

	c.Techs = map[string]TechNode{
		"ghost": {ID: "ghost", Time: 10, Unlocks: "nothing_real"},
	}
	if err := c.Validate(); !errors.Is(err, ErrBadCatalog) {
		t.Errorf("broken unlock: got %v, want ErrBadCatalog", err)
	}

	c.Techs = map[string]TechNode{
		"ghost": {ID: "ghost", Time: 0},
	}
	if err := c.Validate(); !errors.Is(err, ErrBadCatalog) {
		t.Errorf("zero time: got %v, want ErrBadCatalog", err)
	}
}

func TestAmountsGet(t *testing.T) {
	var nilAmounts Amounts
	if nilAmounts.Get(ResMoney) != 0 {
		t.Error("nil Amounts should read zero")
	}

	a := Amounts{ResEnergy: 7}
	if a.Get(ResEnergy) != 7 || a.Get(ResFood) != 0 {
		t.Errorf("Amounts.Get wrong: %v %v", a.Get(ResEnergy), a.Get(ResFood))
	}
}
