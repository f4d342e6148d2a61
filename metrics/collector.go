package metrics

import (
	"time"
	"war/game"
)

// SessionMetric summarises one game session.
type SessionMetric struct {
	Mission         game.Mission
	Won             bool
	StartTime       time.Time
	Duration        time.Duration
	Rounds          int // Valid commands dispatched
	Attacks         int
	Conquests       int
	HaltedAttacks   int
	InvalidInputs   int // Rejected commands and attack selections
	TerritoriesHeld int // Player territories when the session ended
}

type Collector interface {
	Start(mission game.Mission)
	AddRound()
	AddAttack(outcome game.AttackOutcome)
	AddInvalidInput()
	Complete(won bool, territoriesHeld int) SessionMetric
}

// collector is only touched by the game loop, so plain counters suffice.
type collector struct {
	mission       game.Mission
	startTime     time.Time
	rounds        int
	attacks       int
	conquests     int
	halted        int
	invalidInputs int
}

func NewCollector() Collector {
	return &collector{}
}

func (m *collector) Start(mission game.Mission) {
	m.startTime = time.Now()
	m.mission = mission
}

func (m *collector) AddRound() {
	m.rounds++
}

func (m *collector) AddAttack(outcome game.AttackOutcome) {
	m.attacks++
	switch outcome {
	case game.Conquered:
		m.conquests++
	case game.AttackHalted:
		m.halted++
	}
}

func (m *collector) AddInvalidInput() {
	m.invalidInputs++
}

func (m *collector) Complete(won bool, territoriesHeld int) SessionMetric {
	return SessionMetric{
		Mission:         m.mission,
		Won:             won,
		StartTime:       m.startTime,
		Duration:        time.Since(m.startTime),
		Rounds:          m.rounds,
		Attacks:         m.attacks,
		Conquests:       m.conquests,
		HaltedAttacks:   m.halted,
		InvalidInputs:   m.invalidInputs,
		TerritoriesHeld: territoriesHeld,
	}
}

type dummyCollector struct{}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (m *dummyCollector) Start(mission game.Mission)           {}
func (m *dummyCollector) AddRound()                            {}
func (m *dummyCollector) AddAttack(outcome game.AttackOutcome) {}
func (m *dummyCollector) AddInvalidInput()                     {}
func (m *dummyCollector) Complete(won bool, territoriesHeld int) SessionMetric {
	return SessionMetric{Won: won, TerritoriesHeld: territoriesHeld}
}
