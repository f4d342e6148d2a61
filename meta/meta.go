// meta/meta.go
package meta

// NumTerritories is the fixed size of the board.
const NumTerritories = 10

// NumMissions is the number of secret missions a player can draw.
const NumMissions = 3

// PlayerFaction is the faction controlled by the human player.
const PlayerFaction = "AZUL"

// RivalFaction is the faction that mission 2 asks the player to eliminate.
const RivalFaction = "VERDE"

// MinAttackTroops is the garrison a territory needs before it can attack.
const MinAttackTroops = 2

// SouthAmericaTarget is mission 1's threshold, scaled down for a 10 territory board.
const SouthAmericaTarget = 3

// TotalTerritoriesTarget is mission 3's threshold (15 on a full board).
const TotalTerritoriesTarget = 6

const DieSides = 6
