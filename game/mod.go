package game

import "war/meta"

// Faction tags the side that owns a territory. Only the player's faction takes
// actions; every other faction is passive and only loses troops when attacked.
type Faction string

const (
	Blue  Faction = meta.PlayerFaction
	Red   Faction = "VERMELHO"
	Green Faction = meta.RivalFaction
)

// Dice produces one roll of a six-sided die per call.
type Dice interface {
	Roll() int
}
