package game

import (
	"war/meta"

	"golang.org/x/exp/rand"
)

// RandomDice rolls from a caller supplied generator so a whole session shares
// one seeded source.
type RandomDice struct {
	rng *rand.Rand
}

func NewRandomDice(rng *rand.Rand) *RandomDice {
	return &RandomDice{rng: rng}
}

func (d *RandomDice) Roll() int {
	return d.rng.Intn(meta.DieSides) + 1
}
