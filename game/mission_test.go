package game

import (
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"
)

func TestTallyMission(t *testing.T) {
	t.Run("starting position", func(t *testing.T) {
		w := newTestWorld()

		got := TallyMission(w, Blue)

		require.Equal(t, MissionTally{TotalOwned: 3, SouthAmericanOwned: 2, RivalExists: true}, got)
	})
}

func TestEvaluateMission(t *testing.T) {
	t.Run("no mission is fulfilled at the start", func(t *testing.T) {
		w := newTestWorld()

		for _, m := range []Mission{ConquerSouthAmerica, EliminateGreen, ConquerTerritories} {
			require.False(t, EvaluateMission(w, m, Blue), "mission %d", m)
		}
	})

	t.Run("holding all of South America", func(t *testing.T) {
		w := newTestWorld()
		w.Territories[1].Owner = Blue

		require.True(t, EvaluateMission(w, ConquerSouthAmerica, Blue))
		require.False(t, EvaluateMission(w, ConquerTerritories, Blue), "4 territories is not enough for mission 3")
	})

	t.Run("eliminating the rival", func(t *testing.T) {
		w := newTestWorld()
		for _, id := range []int{3, 5, 8} {
			w.Territories[id].Owner = Red
		}

		require.True(t, EvaluateMission(w, EliminateGreen, Blue), "Rival gone counts even if the player took nothing")
	})

	t.Run("holding six territories anywhere", func(t *testing.T) {
		w := newTestWorld()
		for _, id := range []int{3, 4, 5} {
			w.Territories[id].Owner = Blue
		}

		require.True(t, EvaluateMission(w, ConquerTerritories, Blue))
		require.False(t, EvaluateMission(w, ConquerSouthAmerica, Blue))
	})

	t.Run("unknown mission", func(t *testing.T) {
		w := newTestWorld()
		for i := range w.Territories {
			w.Territories[i].Owner = Blue
		}

		require.False(t, EvaluateMission(w, Mission(0), Blue))
		require.False(t, EvaluateMission(w, Mission(4), Blue))
	})

	t.Run("repeated evaluation is stable and read only", func(t *testing.T) {
		w := newTestWorld()
		w.Territories[3].Owner = Blue
		before := append([]Territory{}, w.Territories...)

		for _, m := range []Mission{ConquerSouthAmerica, EliminateGreen, ConquerTerritories} {
			first := EvaluateMission(w, m, Blue)
			require.Equal(t, first, EvaluateMission(w, m, Blue))
		}
		require.Equal(t, before, w.Territories)
	})
}

func TestDrawMission(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	seen := map[Mission]bool{}

	for i := 0; i < 300; i++ {
		m := DrawMission(rng)
		require.True(t, m.Valid(), "drew %d", m)
		seen[m] = true
	}
	require.Len(t, seen, 3, "All missions should be drawable")
}
