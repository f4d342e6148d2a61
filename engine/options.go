package engine

import (
	"io"
	"war/game"
	"war/metrics"

	"github.com/rs/zerolog"
	"golang.org/x/exp/rand"
)

type Option func(e *LocalEngine)

func WithInput(in io.Reader) Option {
	return func(e *LocalEngine) {
		if in != nil {
			e.input = in
		}
	}
}

func WithOutput(out io.Writer) Option {
	return func(e *LocalEngine) {
		if out != nil {
			e.output = out
		}
	}
}

// WithRand sets the session's random source, used for the mission draw and,
// unless WithDice is given, for the dice.
func WithRand(rng *rand.Rand) Option {
	return func(e *LocalEngine) {
		if rng != nil {
			e.rng = rng
		}
	}
}

func WithDice(dice game.Dice) Option {
	return func(e *LocalEngine) {
		if dice != nil {
			e.dice = dice
		}
	}
}

func WithRules(rules game.Rules) Option {
	return func(e *LocalEngine) {
		if rules != nil {
			e.rules = rules
		}
	}
}

func WithPlayer(player game.Faction) Option {
	return func(e *LocalEngine) {
		if player != "" {
			e.Player = player
		}
	}
}

// WithMission skips the random draw.
func WithMission(mission game.Mission) Option {
	return func(e *LocalEngine) {
		e.Mission = mission
	}
}

func WithLogger(logger zerolog.Logger) Option {
	return func(e *LocalEngine) {
		e.log = logger
	}
}

func WithMetrics() Option {
	return func(e *LocalEngine) {
		e.metrics = metrics.NewCollector()
	}
}

// WithoutPause drops the "press ENTER" prompts between rounds.
func WithoutPause() Option {
	return func(e *LocalEngine) {
		e.pause = false
	}
}
