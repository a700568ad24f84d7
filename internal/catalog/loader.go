// YAML catalog loading. Each table lives in its own file under a catalog
// directory (buildings.yaml, techs.yaml, units.yaml, cities.yaml); any file
// that is absent falls back to the built-in defaults.
package catalog

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ErrBadCatalog reports a referential-integrity failure in loaded content.
var ErrBadCatalog = errors.New("catalog validation failed")

type buildingsFile struct {
	Buildings []BuildingDefinition `yaml:"buildings"`
}

type techsFile struct {
	Techs []TechNode `yaml:"techs"`
}

type unitsFile struct {
	Units []UnitDefinition `yaml:"units"`
}

type citiesFile struct {
	Cities []City `yaml:"cities"`
}

// Load reads catalogs from dir, falling back to built-in defaults per table.
// An empty dir loads defaults only.
func Load(dir string) (*Catalogs, error) {
	c := &Catalogs{
		Buildings: DefaultBuildings(),
		Techs:     DefaultTechs(),
		Units:     DefaultUnits(),
		Cities:    DefaultCities(),
	}

	if dir != "" {
		if err := loadTables(c, dir); err != nil {
			return nil, err
		}
	}

	if err := c.Validate(); err != nil {
		return nil, err
	}

	slog.Info("catalogs loaded",
		"buildings", len(c.Buildings),
		"techs", len(c.Techs),
		"units", len(c.Units),
		"cities", len(c.Cities),
	)
	return c, nil
}

func loadTables(c *Catalogs, dir string) error {
	var bf buildingsFile
	if ok, err := readYAML(filepath.Join(dir, "buildings.yaml"), &bf); err != nil {
		return err
	} else if ok {
		c.Buildings = make(map[string]BuildingDefinition, len(bf.Buildings))
		for _, b := range bf.Buildings {
			c.Buildings[b.ID] = b
		}
	}

	var tf techsFile
	if ok, err := readYAML(filepath.Join(dir, "techs.yaml"), &tf); err != nil {
		return err
	} else if ok {
		c.Techs = make(map[string]TechNode, len(tf.Techs))
		for _, t := range tf.Techs {
			c.Techs[t.ID] = t
		}
	}

	var uf unitsFile
	if ok, err := readYAML(filepath.Join(dir, "units.yaml"), &uf); err != nil {
		return err
	} else if ok {
		c.Units = make(map[string]UnitDefinition, len(uf.Units))
		for _, u := range uf.Units {
			c.Units[u.ID] = u
		}
	}

	var cf citiesFile
	if ok, err := readYAML(filepath.Join(dir, "cities.yaml"), &cf); err != nil {
		return err
	} else if ok {
		c.Cities = cf.Cities
	}

	return nil
}

// readYAML unmarshals path into out. Returns false when the file does not
// exist (caller keeps defaults); any other failure is an error.
func readYAML(path string, out any) (bool, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, fmt.Errorf("read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, out); err != nil {
		return false, fmt.Errorf("parse %s: %w", path, err)
	}
	return true, nil
}

// Validate checks referential integrity: tech prereqs resolve to techs,
// tech unlocks resolve to a building or unit, and building tech gates
// resolve to techs. Missing production/consumption/defense fields are fine —
// they read as zero contribution.
func (c *Catalogs) Validate() error {
	for id, t := range c.Techs {
		for _, p := range t.Prereq {
			if _, ok := c.Techs[p]; !ok {
				return fmt.Errorf("%w: tech %q prereq %q not found", ErrBadCatalog, id, p)
			}
		}
		if t.Unlocks != "" {
			_, isBuilding := c.Buildings[t.Unlocks]
			_, isUnit := c.Units[t.Unlocks]
			if !isBuilding && !isUnit {
				return fmt.Errorf("%w: tech %q unlocks unknown id %q", ErrBadCatalog, id, t.Unlocks)
			}
		}
		if t.Time <= 0 {
			return fmt.Errorf("%w: tech %q has non-positive time", ErrBadCatalog, id)
		}
	}

	for id, b := range c.Buildings {
		if b.RequiresTech == "" {
			continue
		}
		if _, ok := c.Techs[b.RequiresTech]; !ok {
			return fmt.Errorf("%w: building %q requires unknown tech %q", ErrBadCatalog, id, b.RequiresTech)
		}
	}

	return nil
}
