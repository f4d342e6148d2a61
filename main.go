package main

import (
	"os"
	"time"
	"war/engine"
	"war/game"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"
)

func main() {
	os.Exit(run())
}

func run() int {
	// Logs go to stderr so they never mix with the board on stdout
	log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen}).
		With().Timestamp().Logger()
	zerolog.SetGlobalLevel(zerolog.InfoLevel)

	world, err := game.CreateWorld()
	if err != nil {
		log.Error().Err(err).Msg("the game cannot start")
		return 1
	}

	rng := rand.New(rand.NewSource(uint64(time.Now().UnixNano())))
	e := engine.NewLocalEngine(world,
		engine.WithRand(rng),
		engine.WithMetrics(),
	)

	won, session := e.Run()
	log.Info().
		Bool("won", won).
		Dur("duration", session.Duration).
		Int("invalid_inputs", session.InvalidInputs).
		Int("territories_held", session.TerritoriesHeld).
		Msg("game over")
	return 0
}
