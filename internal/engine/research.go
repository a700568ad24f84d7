// Research state machine: Idle / InProgress with a monotonically growing
// completed set. Completion is checked after the progress increment within
// the same tick, so a tech finishing on tick N is completed on tick N.
package engine

import (
	"fmt"
	"log/slog"

	"github.com/talgya/colony-world/internal/catalog"
)

// Start begins researching techID. It fails with ErrInvalidTransition when
// the tech is unknown, already completed, already has research in progress,
// or its prerequisites are not all completed.
func (r *ResearchState) Start(techID string, cats *catalog.Catalogs) error {
	node, ok := cats.Tech(techID)
	if !ok {
		return fmt.Errorf("start research %q: %w", techID, ErrInvalidTransition)
	}
	if r.Completed[techID] {
		return fmt.Errorf("start research %q: already completed: %w", techID, ErrInvalidTransition)
	}
	if r.Current != "" {
		return fmt.Errorf("start research %q: %q already in progress: %w", techID, r.Current, ErrInvalidTransition)
	}
	for _, p := range node.Prereq {
		if !r.Completed[p] {
			return fmt.Errorf("start research %q: prerequisite %q not completed: %w", techID, p, ErrInvalidTransition)
		}
	}

	r.Current = techID
	r.Progress = 0
	return nil
}

// Tick advances the current research by one unit of progress and checks
// completion. Returns the completed tech id, or "" when nothing finished.
// A tech enters the completed set exactly once.
func (r *ResearchState) Tick(cats *catalog.Catalogs) string {
	if r.Current == "" {
		return ""
	}

	r.Progress++

	node, ok := cats.Tech(r.Current)
	if !ok {
		// Catalog changed under a saved state; drop the orphaned project.
		slog.Warn("current research missing from catalog, dropping", "tech", r.Current)
		r.Current = ""
		r.Progress = 0
		return ""
	}

	if r.Progress < node.Time {
		return ""
	}

	done := r.Current
	r.Completed[done] = true
	r.Current = ""
	r.Progress = 0
	return done
}

// Unlocked reports whether the building or unit with the given id is
// available: either no tech unlocks it, or some unlocking tech is completed.
func (r *ResearchState) Unlocked(id string, cats *catalog.Catalogs) bool {
	gated := false
	for techID, node := range cats.Techs {
		if node.Unlocks != id {
			continue
		}
		gated = true
		if r.Completed[techID] {
			return true
		}
	}
	return !gated
}
