package game

import (
	"war/meta"

	"golang.org/x/exp/rand"
)

// Mission identifies the player's secret victory condition, 1 to NumMissions.
type Mission int

const (
	ConquerSouthAmerica Mission = iota + 1
	EliminateGreen
	ConquerTerritories
)

// DrawMission picks a mission uniformly. Call it once per session.
func DrawMission(rng *rand.Rand) Mission {
	return Mission(rng.Intn(meta.NumMissions) + 1)
}

// Valid reports whether m is one of the known missions.
func (m Mission) Valid() bool {
	return m >= ConquerSouthAmerica && m <= ConquerTerritories
}

// MissionTally is the single pass summary the mission predicates are built on.
type MissionTally struct {
	TotalOwned         int  // Territories held by the player
	SouthAmericanOwned int  // Of those, how many sit in SouthAmerica
	RivalExists        bool // Whether the rival faction still holds anything
}

// TallyMission counts the player's holdings and looks for the rival faction.
func TallyMission(w *World, player Faction) MissionTally {
	var tally MissionTally
	for id, t := range w.Territories {
		if t.Owner == player {
			tally.TotalOwned++
			if SouthAmerica.Contains(id) {
				tally.SouthAmericanOwned++
			}
		}
		if t.Owner == Green {
			tally.RivalExists = true
		}
	}
	return tally
}

// EvaluateMission reports whether the player has fulfilled mission m. It only
// reads the world. Unknown missions are never fulfilled.
func EvaluateMission(w *World, m Mission, player Faction) bool {
	tally := TallyMission(w, player)

	switch m {
	case ConquerSouthAmerica:
		return tally.SouthAmericanOwned >= meta.SouthAmericaTarget
	case EliminateGreen:
		return !tally.RivalExists
	case ConquerTerritories:
		return tally.TotalOwned >= meta.TotalTerritoriesTarget
	default:
		return false
	}
}
