// Package catalog provides the static game content tables: building
// definitions, the tech tree, unit definitions, and the major-city registry.
// Catalogs are read-only after loading; the simulation engine only ever
// looks entries up by id.
package catalog

// Resource identifies one of the player-level resource pools.
type Resource string

const (
	ResMoney     Resource = "money"
	ResEnergy    Resource = "energy"
	ResMaterials Resource = "materials"
	ResFood      Resource = "food"
)

// Amounts maps a resource to a quantity. Used for costs, per-tick
// production/consumption, and storage capacities. A missing key always
// means zero, never an error.
type Amounts map[Resource]float64

// Get returns the amount for a resource, zero when absent.
func (a Amounts) Get(r Resource) float64 {
	if a == nil {
		return 0
	}
	return a[r]
}

// BuildingDefinition describes one constructible building type.
type BuildingDefinition struct {
	ID           string  `yaml:"id" json:"id"`
	Name         string  `yaml:"name" json:"name"`
	Type         string  `yaml:"type" json:"type"` // "production", "defense", "storage", ...
	Cost         Amounts `yaml:"cost" json:"cost"`
	Production   Amounts `yaml:"production,omitempty" json:"production,omitempty"`
	Consumption  Amounts `yaml:"consumption,omitempty" json:"consumption,omitempty"`
	Storage      Amounts `yaml:"storage,omitempty" json:"storage,omitempty"`
	Defense      float64 `yaml:"defense,omitempty" json:"defense,omitempty"`
	RequiresTech string  `yaml:"requires_tech,omitempty" json:"requires_tech,omitempty"`
}

// TechNode is one research project in the tech tree.
type TechNode struct {
	ID      string   `yaml:"id" json:"id"`
	Name    string   `yaml:"name" json:"name"`
	Cost    Amounts  `yaml:"cost" json:"cost"`
	Time    int      `yaml:"time" json:"time"` // Research duration in ticks
	Prereq  []string `yaml:"prereq,omitempty" json:"prereq,omitempty"`
	Unlocks string   `yaml:"unlocks,omitempty" json:"unlocks,omitempty"` // Building or unit id
}

// UnitDefinition describes a military/utility unit. Units are referenced by
// tech unlocks but not otherwise processed by the simulation core.
type UnitDefinition struct {
	ID          string             `yaml:"id" json:"id"`
	Name        string             `yaml:"name" json:"name"`
	Cost        Amounts            `yaml:"cost" json:"cost"`
	Maintenance Amounts            `yaml:"maintenance,omitempty" json:"maintenance,omitempty"`
	Skills      map[string]float64 `yaml:"skills,omitempty" json:"skills,omitempty"`
}

// City is a fixed major settlement placed on the world map at generation.
type City struct {
	ID             string `yaml:"id" json:"id"`
	Name           string `yaml:"name" json:"name"`
	Specialization string `yaml:"specialization" json:"specialization"`
	Population     int    `yaml:"population" json:"population"`
	X              int    `yaml:"x" json:"x"`
	Y              int    `yaml:"y" json:"y"`
	Description    string `yaml:"description" json:"description"`
}

// Catalogs bundles every static table the engine reads.
type Catalogs struct {
	Buildings map[string]BuildingDefinition `yaml:"-" json:"buildings"`
	Techs     map[string]TechNode           `yaml:"-" json:"techs"`
	Units     map[string]UnitDefinition     `yaml:"-" json:"units"`
	Cities    []City                        `yaml:"-" json:"cities"`
}

// Building returns the definition for id and whether it exists.
func (c *Catalogs) Building(id string) (BuildingDefinition, bool) {
	def, ok := c.Buildings[id]
	return def, ok
}

// Tech returns the tech node for id and whether it exists.
func (c *Catalogs) Tech(id string) (TechNode, bool) {
	node, ok := c.Techs[id]
	return node, ok
}

// Unit returns the unit definition for id and whether it exists.
func (c *Catalogs) Unit(id string) (UnitDefinition, bool) {
	def, ok := c.Units[id]
	return def, ok
}
