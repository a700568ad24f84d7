package engine

import "testing"

// Threat just below the trigger band: one tick advances 99.4 → 99.9 with
// no attack and no money loss.
func TestThreatAccumulatesBelowThreshold(t *testing.T) {
	cats := testCatalogs(t)
	prev := &PlayerState{
		Research:    NewResearchState(),
		Money:       200,
		ThreatLevel: 99.4,
	}

	next := ApplyTick(prev, cats)

	if next.ThreatLevel != 99.9 {
		t.Errorf("threat = %v, want 99.9", next.ThreatLevel)
	}
	// Only baseline income moved money.
	if next.Money != 201 {
		t.Errorf("money = %v, want 201 (no combat loss)", next.Money)
	}
}

// Crossing the threshold with no defense: 99.8 → 100.3, damage 100.3,
// lost money floor(1003) = 1003, threat reset to zero.
func TestThreatAttackUndefended(t *testing.T) {
	cats := testCatalogs(t)
	prev := &PlayerState{
		Research:    NewResearchState(),
		Money:       2000,
		ThreatLevel: 99.8,
	}

	next := ApplyTick(prev, cats)

	if next.ThreatLevel != 0 {
		t.Errorf("threat = %v, want 0 after resolution", next.ThreatLevel)
	}
	// 2000 + 1 baseline - 1003 lost.
	if next.Money != 998 {
		t.Errorf("money = %v, want 998", next.Money)
	}
}

func TestThreatAttackMoneyFloorsAtZero(t *testing.T) {
	cats := testCatalogs(t)
	prev := &PlayerState{
		Research:    NewResearchState(),
		Money:       50,
		ThreatLevel: 99.8,
	}

	next := ApplyTick(prev, cats)
	if next.Money != 0 {
		t.Errorf("money = %v, want 0 (clamped)", next.Money)
	}
}

// Defense fully absorbing the wave: no money loss, but the threat level
// still resets — the wave is considered cleared.
func TestThreatFullyAbsorbedStillResets(t *testing.T) {
	cats := testCatalogs(t)
	prev := &PlayerState{
		Research:    NewResearchState(),
		Money:       300,
		Energy:      1000,
		ThreatLevel: 99.8,
		// Two shield generators: defense 160 > any threat at the trigger.
		Buildings: instances("shield_generator", "shield_generator"),
	}

	next := ApplyTick(prev, cats)

	if next.ThreatLevel != 0 {
		t.Errorf("threat = %v, want 0 (wave cleared even when absorbed)", next.ThreatLevel)
	}
	if next.Money != 301 {
		t.Errorf("money = %v, want 301 (no loss when fully absorbed)", next.Money)
	}
}

// Between resolutions the threat level only ever rises.
func TestThreatMonotonicBetweenResolutions(t *testing.T) {
	cats := testCatalogs(t)
	state := &PlayerState{Research: NewResearchState(), Money: 1e9}

	last := state.ThreatLevel
	for i := 0; i < 250; i++ {
		state = ApplyTick(state, cats)
		if state.ThreatLevel < last && state.ThreatLevel != 0 {
			t.Fatalf("tick %d: threat decreased %v → %v without a resolution", i, last, state.ThreatLevel)
		}
		last = state.ThreatLevel
	}
}
