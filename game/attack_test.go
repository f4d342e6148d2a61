package game

import (
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"
)

func TestAttack(t *testing.T) {
	rules := NewSingleDieRules()

	t.Run("attacker wins the exchange", func(t *testing.T) {
		w := newTestWorld()

		got := w.Attack(0, 1, &scriptedDice{rolls: []int{5, 3}}, rules)

		require.Equal(t, AttackResult{AttackerRoll: 5, DefenderRoll: 3, DefenderLosses: 1, Outcome: Continues}, got)
		require.Equal(t, 2, w.Territories[0].Troops, "Attacker should keep its troops")
		require.Equal(t, 2, w.Territories[1].Troops, "Defender should lose one troop")
		require.Equal(t, Red, w.Territories[1].Owner, "Defender should keep the territory")
	})

	t.Run("tie goes to the defender", func(t *testing.T) {
		w := newTestWorld()

		got := w.Attack(0, 1, &scriptedDice{rolls: []int{4, 4}}, rules)

		require.Equal(t, 1, got.AttackerLosses)
		require.Equal(t, 0, got.DefenderLosses)
		require.Equal(t, 1, w.Territories[0].Troops)
		require.Equal(t, 3, w.Territories[1].Troops)
	})

	t.Run("attacker drops below the minimum garrison", func(t *testing.T) {
		w := newTestWorld()

		got := w.Attack(0, 1, &scriptedDice{rolls: []int{2, 6}}, rules)

		require.Equal(t, AttackHalted, got.Outcome, "Attacker with 1 troop cannot continue")
		require.Equal(t, 1, w.Territories[0].Troops)
	})

	t.Run("attacker loses but can keep attacking", func(t *testing.T) {
		w := newTestWorld()
		w.Territories[0].Troops = 4

		got := w.Attack(0, 1, &scriptedDice{rolls: []int{1, 6}}, rules)

		require.Equal(t, Continues, got.Outcome)
		require.Equal(t, 3, w.Territories[0].Troops)
		require.Equal(t, 3, w.Territories[1].Troops)
	})

	t.Run("conquering the last defending troop", func(t *testing.T) {
		w := newTestWorld()
		w.Territories[1].Troops = 1

		got := w.Attack(0, 1, &scriptedDice{rolls: []int{6, 1}}, rules)

		require.Equal(t, Conquered, got.Outcome)
		require.Equal(t, Blue, w.Territories[1].Owner, "Defender should change hands")
		require.Equal(t, 1, w.Territories[1].Troops, "Conquered territory keeps exactly one troop")
		require.Equal(t, 1, w.Territories[0].Troops, "Attacker pays one troop to garrison")
	})

	t.Run("conquest is reported before the halted check", func(t *testing.T) {
		w := newTestWorld()
		w.Territories[4].Troops = 1

		got := w.Attack(2, 4, &scriptedDice{rolls: []int{3, 2}}, rules)

		require.Equal(t, Conquered, got.Outcome, "Attacker left with 1 troop should still report the conquest")
		require.Equal(t, 1, w.Territories[2].Troops)
	})

	t.Run("exactly one side loses a troop without conquest", func(t *testing.T) {
		dice := NewRandomDice(rand.New(rand.NewSource(7)))
		for i := 0; i < 200; i++ {
			w := newTestWorld()
			w.Territories[6].Troops = 5
			w.Territories[7].Troops = 5

			got := w.Attack(6, 7, dice, rules)

			lostA := 5 - w.Territories[6].Troops
			lostD := 5 - w.Territories[7].Troops
			require.Equal(t, 1, lostA+lostD, "One exchange should cost one troop in total")
			require.Equal(t, got.AttackerLosses, lostA)
			require.Equal(t, got.DefenderLosses, lostD)
			require.Equal(t, Continues, got.Outcome)
		}
	})
}

func TestValidateAttack(t *testing.T) {
	rules := NewSingleDieRules()

	tests := []struct {
		name     string
		attacker int
		defender int
		wantErr  error
	}{
		{"valid pair", 0, 1, nil},
		{"attacker out of range", 10, 1, ErrInvalidAttacker},
		{"negative attacker", -1, 1, ErrInvalidAttacker},
		{"attacker owned by an enemy", 1, 0, ErrInvalidAttacker},
		{"defender out of range", 0, 12, ErrInvalidDefender},
		{"defender equal to attacker", 0, 0, ErrInvalidDefender},
		{"defender owned by the player", 0, 2, ErrInvalidDefender},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := newTestWorld()
			before := append([]Territory{}, w.Territories...)

			err := w.ValidateAttack(tt.attacker, tt.defender, Blue, rules)

			if tt.wantErr == nil {
				require.NoError(t, err)
			} else {
				require.ErrorIs(t, err, tt.wantErr)
			}
			require.Equal(t, before, w.Territories, "Validation should never mutate the world")
		})
	}

	t.Run("attacker with a single troop", func(t *testing.T) {
		w := newTestWorld()
		w.Territories[0].Troops = 1

		err := w.ValidateAttacker(0, Blue, rules)

		require.ErrorIs(t, err, ErrInvalidAttacker)
		require.Contains(t, err.Error(), "Brasil")
	})
}

func TestRandomDice(t *testing.T) {
	dice := NewRandomDice(rand.New(rand.NewSource(42)))
	seen := map[int]bool{}

	for i := 0; i < 600; i++ {
		roll := dice.Roll()
		require.GreaterOrEqual(t, roll, 1)
		require.LessOrEqual(t, roll, 6)
		seen[roll] = true
	}
	require.Len(t, seen, 6, "Every face should come up eventually")
}

func TestAttackOutcomeString(t *testing.T) {
	require.Equal(t, "conquered", Conquered.String())
	require.Equal(t, "halted", AttackHalted.String())
	require.Equal(t, "continues", Continues.String())
	require.Equal(t, "AttackOutcome(9)", AttackOutcome(9).String())
}
