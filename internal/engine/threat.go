// Threat accumulation and attack resolution. Threat builds at a fixed rate
// each tick; crossing the threshold resolves one attack atomically within
// that tick and always resets the threat level, even when defense fully
// absorbed the wave.
package engine

import (
	"log/slog"
	"math"
)

const (
	threatRatePerTick  = 0.5
	threatThreshold    = 100.0
	moneyLossPerDamage = 10.0
)

// AttackReport describes a resolved attack wave.
type AttackReport struct {
	Tick      uint64  `json:"tick"`
	Threat    float64 `json:"threat"`
	Defense   float64 `json:"defense"`
	Damage    float64 `json:"damage"`
	LostMoney float64 `json:"lost_money"`
}

// advanceThreat increments the threat level and, when it exceeds the
// threshold, resolves the attack against the state's derived defense level.
// Returns the attack report, or nil when no attack fired.
func advanceThreat(s *PlayerState) *AttackReport {
	s.ThreatLevel += threatRatePerTick
	if s.ThreatLevel <= threatThreshold {
		return nil
	}

	damage := s.ThreatLevel - s.DefenseLevel
	if damage < 0 {
		damage = 0
	}

	report := &AttackReport{
		Tick:    s.Tick,
		Threat:  s.ThreatLevel,
		Defense: s.DefenseLevel,
		Damage:  damage,
	}

	if damage > 0 {
		report.LostMoney = math.Floor(damage * moneyLossPerDamage)
		s.Money -= report.LostMoney
		if s.Money < 0 {
			s.Money = 0
		}
	}

	// The wave is cleared either way.
	s.ThreatLevel = 0

	slog.Info("attack resolved",
		"tick", report.Tick,
		"threat", report.Threat,
		"defense", report.Defense,
		"damage", report.Damage,
		"lost_money", report.LostMoney,
	)
	return report
}
