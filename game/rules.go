package game

import "war/meta"

type Rules interface {
	MinAttackTroops() int
	DetermineAttackOutcome(attackerRoll, defenderRoll int) (attackerLosses, defenderLosses int)
}

// SingleDieRules resolves an exchange with one die per side.
type SingleDieRules struct {
	MinAttackers int
}

func NewSingleDieRules() *SingleDieRules {
	return &SingleDieRules{
		MinAttackers: meta.MinAttackTroops,
	}
}

func (sr *SingleDieRules) MinAttackTroops() int {
	return sr.MinAttackers
}

func (sr *SingleDieRules) DetermineAttackOutcome(attackerRoll, defenderRoll int) (attackerLosses, defenderLosses int) {
	// Attacker must roll strictly higher, ties go to the defender
	if attackerRoll > defenderRoll {
		return 0, 1
	}
	return 1, 0
}
