package game

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidAttacker = errors.New("invalid attacker")
	ErrInvalidDefender = errors.New("invalid defender")
)

// AttackOutcome tags how an exchange ended for the attacking territory.
type AttackOutcome int

const (
	Continues    AttackOutcome = iota // Both sides still standing, attacker can go again
	Conquered                         // Defender fell and changed hands
	AttackHalted                      // Attacker is below the minimum garrison
)

func (o AttackOutcome) String() string {
	switch o {
	case Continues:
		return "continues"
	case Conquered:
		return "conquered"
	case AttackHalted:
		return "halted"
	default:
		return fmt.Sprintf("AttackOutcome(%d)", int(o))
	}
}

// AttackResult records a single die exchange.
type AttackResult struct {
	AttackerRoll   int
	DefenderRoll   int
	AttackerLosses int
	DefenderLosses int
	Outcome        AttackOutcome
}

// ValidateAttack checks every precondition of Attack without touching the world.
func (w *World) ValidateAttack(attackerID, defenderID int, player Faction, rules Rules) error {
	if err := w.ValidateAttacker(attackerID, player, rules); err != nil {
		return err
	}
	return w.ValidateDefender(attackerID, defenderID, player)
}

// ValidateAttacker checks that the territory exists, belongs to player and holds
// enough troops to attack.
func (w *World) ValidateAttacker(attackerID int, player Faction, rules Rules) error {
	if !w.InRange(attackerID) {
		return fmt.Errorf("%w: territory %d does not exist", ErrInvalidAttacker, attackerID)
	}
	attacker := w.Territories[attackerID]
	if attacker.Owner != player {
		return fmt.Errorf("%w: %s is owned by %s", ErrInvalidAttacker, attacker.Name, attacker.Owner)
	}
	if attacker.Troops < rules.MinAttackTroops() {
		return fmt.Errorf("%w: %s has %d troops, needs at least %d", ErrInvalidAttacker, attacker.Name, attacker.Troops, rules.MinAttackTroops())
	}
	return nil
}

// ValidateDefender checks that the target exists, is not the attacker and is
// held by an enemy of player.
func (w *World) ValidateDefender(attackerID, defenderID int, player Faction) error {
	if !w.InRange(defenderID) {
		return fmt.Errorf("%w: territory %d does not exist", ErrInvalidDefender, defenderID)
	}
	if defenderID == attackerID {
		return fmt.Errorf("%w: a territory cannot attack itself", ErrInvalidDefender)
	}
	defender := w.Territories[defenderID]
	if defender.Owner == player {
		return fmt.Errorf("%w: %s already belongs to %s", ErrInvalidDefender, defender.Name, player)
	}
	return nil
}

// Attack resolves exactly one die exchange between two territories. Callers must
// run ValidateAttack first; Attack itself does not check its arguments.
func (w *World) Attack(attackerID, defenderID int, dice Dice, rules Rules) AttackResult {
	attacker := &w.Territories[attackerID]
	defender := &w.Territories[defenderID]

	result := AttackResult{
		AttackerRoll: dice.Roll(),
		DefenderRoll: dice.Roll(),
	}
	result.AttackerLosses, result.DefenderLosses = rules.DetermineAttackOutcome(result.AttackerRoll, result.DefenderRoll)

	attacker.Troops -= result.AttackerLosses
	defender.Troops -= result.DefenderLosses

	if defender.Troops <= 0 {
		// Capture: one troop marches in and garrisons the territory
		defender.Owner = attacker.Owner
		attacker.Troops--
		defender.Troops = 1
		result.Outcome = Conquered
		return result
	}
	if attacker.Troops < rules.MinAttackTroops() {
		result.Outcome = AttackHalted
		return result
	}
	result.Outcome = Continues
	return result
}
