// The logical tick transform and the wall-clock scheduler that drives it.
//
// Scheduling policy: each timer firing applies at most one logical tick.
// If the host was suspended and several intervals elapsed, the surplus time
// is discarded (last-applied advances to now, not to last-applied+interval).
// There is no catch-up; offline time simply does not produce income.
package engine

import (
	"log/slog"
	"sync"
	"time"

	"github.com/talgya/colony-world/internal/catalog"
)

const baselineIncome = 1.0 // Passive money per tick

// ApplyTick produces the next player state from the previous one. Pure:
// the input is never mutated and the only output is the returned value.
//
// Order within a tick: baseline income, aggregated building deltas (energy
// clamped at zero; money and materials deliberately unclamped), research
// progress, then threat advance/attack resolution.
func ApplyTick(prev *PlayerState, cats *catalog.Catalogs) *PlayerState {
	next := prev.Clone()
	next.Tick++

	next.Money += baselineIncome

	d := Aggregate(next.Buildings, cats)
	next.Money += d.Money
	next.Energy += d.Energy
	if next.Energy < 0 {
		next.Energy = 0
	}
	next.Materials += d.Materials
	next.DefenseLevel = d.Defense

	if done := next.Research.Tick(cats); done != "" {
		slog.Info("research completed", "tick", next.Tick, "tech", done)
	}

	advanceThreat(next)

	return next
}

// Scheduler owns the authoritative PlayerState and applies ticks on a fixed
// wall-clock cadence. All writes go through the scheduler; readers receive
// immutable snapshots.
type Scheduler struct {
	Interval time.Duration
	Catalogs *catalog.Catalogs

	// OnTick, when set, observes every freshly applied state. Called from
	// the scheduler goroutine with the published snapshot.
	OnTick func(*PlayerState)

	mu          sync.RWMutex
	state       *PlayerState
	lastApplied time.Time

	stop chan struct{}
	done chan struct{}
}

// NewScheduler creates a scheduler over the given starting state.
func NewScheduler(initial *PlayerState, cats *catalog.Catalogs, interval time.Duration) *Scheduler {
	return &Scheduler{
		Interval: interval,
		Catalogs: cats,
		state:    initial,
		stop:     make(chan struct{}),
		done:     make(chan struct{}),
	}
}

// Run drives the tick loop until Stop is called. Blocks; run in a
// goroutine. The timer is released on every exit path.
func (s *Scheduler) Run() {
	defer close(s.done)

	ticker := time.NewTicker(s.Interval)
	defer ticker.Stop()

	s.mu.Lock()
	s.lastApplied = time.Now()
	s.mu.Unlock()

	slog.Info("scheduler started", "interval", s.Interval)
	for {
		select {
		case <-s.stop:
			slog.Info("scheduler stopped", "tick", s.Snapshot().Tick)
			return
		case now := <-ticker.C:
			s.fire(now)
		}
	}
}

// Stop halts the tick loop and waits for it to exit.
func (s *Scheduler) Stop() {
	select {
	case <-s.stop:
	default:
		close(s.stop)
	}
	<-s.done
}

// fire applies exactly one logical tick when at least one interval has
// elapsed since the last applied tick. Surplus elapsed time is discarded:
// lastApplied advances to now. Returns whether a tick was applied.
func (s *Scheduler) fire(now time.Time) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if now.Sub(s.lastApplied) < s.Interval {
		return false
	}

	s.state = ApplyTick(s.state, s.Catalogs)
	s.lastApplied = now

	if s.OnTick != nil {
		s.OnTick(s.state)
	}
	return true
}

// Snapshot returns the current published state. The returned value is
// immutable by convention: consumers read it, never write it.
func (s *Scheduler) Snapshot() *PlayerState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

// Mutate applies an out-of-band state change (purchases, research starts)
// atomically with respect to tick application. The function receives a
// clone; on success its result becomes the authoritative state.
func (s *Scheduler) Mutate(fn func(*PlayerState) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := s.state.Clone()
	if err := fn(next); err != nil {
		return err
	}
	s.state = next
	return nil
}
