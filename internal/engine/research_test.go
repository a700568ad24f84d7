package engine

import (
	"errors"
	"testing"
)

func TestResearchStartRequiresPrereqs(t *testing.T) {
	cats := testCatalogs(t)
	r := NewResearchState()

	// energy_shielding needs ballistics and applied_physics.
	if err := r.Start("energy_shielding", cats); !errors.Is(err, ErrInvalidTransition) {
		t.Errorf("start without prereqs: got %v, want ErrInvalidTransition", err)
	}

	r.Completed["ballistics"] = true
	if err := r.Start("energy_shielding", cats); !errors.Is(err, ErrInvalidTransition) {
		t.Errorf("start with partial prereqs: got %v, want ErrInvalidTransition", err)
	}

	r.Completed["applied_physics"] = true
	if err := r.Start("energy_shielding", cats); err != nil {
		t.Errorf("start with all prereqs failed: %v", err)
	}
	if r.Current != "energy_shielding" || r.Progress != 0 {
		t.Errorf("after start: current=%q progress=%d", r.Current, r.Progress)
	}
}

func TestResearchStartRejectsConcurrent(t *testing.T) {
	cats := testCatalogs(t)
	r := NewResearchState()

	if err := r.Start("ballistics", cats); err != nil {
		t.Fatalf("start: %v", err)
	}
	if err := r.Start("applied_physics", cats); !errors.Is(err, ErrInvalidTransition) {
		t.Errorf("concurrent start: got %v, want ErrInvalidTransition", err)
	}
}

func TestResearchStartRejectsCompletedAndUnknown(t *testing.T) {
	cats := testCatalogs(t)
	r := NewResearchState()
	r.Completed["ballistics"] = true

	if err := r.Start("ballistics", cats); !errors.Is(err, ErrInvalidTransition) {
		t.Errorf("restart completed: got %v, want ErrInvalidTransition", err)
	}
	if err := r.Start("warp_drive", cats); !errors.Is(err, ErrInvalidTransition) {
		t.Errorf("unknown tech: got %v, want ErrInvalidTransition", err)
	}
}

func TestResearchCompletionExactlyOnce(t *testing.T) {
	cats := testCatalogs(t)
	r := NewResearchState()

	if err := r.Start("ballistics", cats); err != nil {
		t.Fatalf("start: %v", err)
	}
	need := cats.Techs["ballistics"].Time

	completions := 0
	for i := 0; i < need+10; i++ {
		if done := r.Tick(cats); done != "" {
			completions++
			if done != "ballistics" {
				t.Errorf("completed %q, want ballistics", done)
			}
			// Completion must land exactly when progress reached time.
			if i != need-1 {
				t.Errorf("completed on tick %d, want %d", i+1, need)
			}
		}
	}

	if completions != 1 {
		t.Errorf("completions = %d, want exactly 1", completions)
	}
	if !r.Completed["ballistics"] {
		t.Error("ballistics missing from completed set")
	}
	if r.Current != "" || r.Progress != 0 {
		t.Errorf("state not reset after completion: current=%q progress=%d", r.Current, r.Progress)
	}
}

func TestResearchCompletedMonotonic(t *testing.T) {
	cats := testCatalogs(t)
	state := NewPlayerState()
	if err := state.Research.Start("ballistics", cats); err != nil {
		t.Fatalf("start: %v", err)
	}

	seen := make(map[string]bool)
	for i := 0; i < 200; i++ {
		state = ApplyTick(state, cats)
		for id := range seen {
			if !state.Research.Completed[id] {
				t.Fatalf("tick %d: completed set lost member %q", i, id)
			}
		}
		for id := range state.Research.Completed {
			seen[id] = true
		}
	}
	if !seen["ballistics"] {
		t.Error("ballistics never completed over 200 ticks")
	}
}

func TestUnlocked(t *testing.T) {
	cats := testCatalogs(t)
	r := NewResearchState()

	// solar_panel is not gated by any tech unlock.
	if !r.Unlocked("solar_panel", cats) {
		t.Error("ungated building should be unlocked")
	}
	// defense_turret is unlocked by ballistics.
	if r.Unlocked("defense_turret", cats) {
		t.Error("defense_turret should be locked before ballistics")
	}
	r.Completed["ballistics"] = true
	if !r.Unlocked("defense_turret", cats) {
		t.Error("defense_turret should unlock after ballistics")
	}
	// drone is a unit unlocked by combat_drones.
	if r.Unlocked("drone", cats) {
		t.Error("drone should be locked before combat_drones")
	}
}
