// Package engine provides the simulation core: player state, the per-tick
// resource aggregation, the research state machine, threat resolution, and
// the scheduler that drives them.
package engine

import "errors"

// Sentinel errors for state transitions and purchase paths.
var (
	ErrInvalidTransition = errors.New("invalid research transition")
	ErrUnknownID         = errors.New("unknown catalog id")
	ErrUnaffordable      = errors.New("insufficient resources")
	ErrLocked            = errors.New("required tech not researched")
)

// BuildingInstance is one owned building: a reference into the building
// catalog held in the player's registry.
type BuildingInstance struct {
	ID           string `json:"id" db:"id"`             // Registry row id
	DefID        string `json:"def_id" db:"def_id"`     // Building definition id
	AcquiredTick uint64 `json:"acquired_tick" db:"acquired_tick"`
}

// ResearchState tracks the tech progression: the monotonically growing
// completed set, the tech currently in progress, and its progress counter.
type ResearchState struct {
	Completed map[string]bool `json:"completed"`
	Current   string          `json:"current,omitempty"` // Empty = idle
	Progress  int             `json:"progress"`
}

// NewResearchState returns an idle research state with nothing completed.
func NewResearchState() ResearchState {
	return ResearchState{Completed: make(map[string]bool)}
}

// PlayerState is the complete simulation state for one player. Ticks never
// mutate a PlayerState in place; ApplyTick returns a fresh value and the
// scheduler publishes it as an immutable snapshot.
type PlayerState struct {
	Tick uint64 `json:"tick"`

	Money     float64 `json:"money"`
	Energy    float64 `json:"energy"`
	Materials float64 `json:"materials"`
	Food      float64 `json:"food"`

	Buildings []BuildingInstance `json:"buildings"`
	Research  ResearchState      `json:"research"`

	ThreatLevel float64 `json:"threat_level"`
	// DefenseLevel is derived from owned buildings and recomputed every
	// tick; it is never authoritative input.
	DefenseLevel float64 `json:"defense_level"`
}

// NewPlayerState returns the starting state for a fresh colony.
func NewPlayerState() *PlayerState {
	return &PlayerState{
		Money:    500,
		Energy:   50,
		Food:     100,
		Research: NewResearchState(),
	}
}

// Clone returns a deep copy. Tick application always works on a clone so
// published snapshots stay immutable.
func (p *PlayerState) Clone() *PlayerState {
	next := *p

	next.Buildings = make([]BuildingInstance, len(p.Buildings))
	copy(next.Buildings, p.Buildings)

	next.Research.Completed = make(map[string]bool, len(p.Research.Completed))
	for id := range p.Research.Completed {
		next.Research.Completed[id] = true
	}

	return &next
}
