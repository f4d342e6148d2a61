package engine

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"
	"war/display"
	"war/game"
	"war/metrics"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"
)

var (
	ErrInvalidCommand = errors.New("invalid command")
	ErrNotANumber     = errors.New("not a number")
)

type Command int

const (
	ExitCommand    Command = 0
	AttackCommand  Command = 1
	VictoryCommand Command = 2
)

type State int

const (
	AwaitingCommand State = iota
	AttackFlow
	VictoryCheck
	Terminated
)

func (s State) String() string {
	switch s {
	case AwaitingCommand:
		return "awaiting_command"
	case AttackFlow:
		return "attack_flow"
	case VictoryCheck:
		return "victory_check"
	case Terminated:
		return "terminated"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// LocalEngine runs an interactive session over a line based input stream. It
// owns the World for the whole session and is not safe for concurrent use.
type LocalEngine struct {
	World   *game.World
	Mission game.Mission
	Player  game.Faction

	state   State
	won     bool
	rules   game.Rules
	dice    game.Dice
	rng     *rand.Rand
	input   io.Reader
	output  io.Writer
	scanner *bufio.Scanner
	view    *display.Renderer
	log     zerolog.Logger
	metrics metrics.Collector
	pause   bool
}

func NewLocalEngine(world *game.World, options ...Option) *LocalEngine {
	e := &LocalEngine{ // Default values
		World:   world,
		Player:  game.Blue,
		state:   AwaitingCommand,
		rules:   game.NewSingleDieRules(),
		input:   os.Stdin,
		output:  os.Stdout,
		log:     log.Logger,
		metrics: metrics.NewDummyCollector(),
		pause:   true,
	}
	for _, option := range options {
		option(e)
	}
	if e.rng == nil {
		e.rng = rand.New(rand.NewSource(uint64(time.Now().UnixNano())))
	}
	if e.dice == nil {
		e.dice = game.NewRandomDice(e.rng)
	}
	if e.Mission == 0 {
		e.Mission = game.DrawMission(e.rng)
	}
	e.scanner = bufio.NewScanner(e.input)
	e.view = display.NewRenderer(e.output)
	return e
}

// State returns the current state of the command loop.
func (e *LocalEngine) State() State {
	return e.state
}

// Run executes the command loop until the player quits or wins.
func (e *LocalEngine) Run() (bool, metrics.SessionMetric) {
	e.metrics.Start(e.Mission)
	e.log.Info().Str("player", string(e.Player)).Int("mission", int(e.Mission)).Msg("session started")

	e.view.Welcome(e.Player, e.Mission)
	e.view.PressEnter(true)
	if _, err := e.readLine(); err != nil {
		e.endOfInput(err)
	}

	for e.state != Terminated {
		e.step()
	}

	// The world is dropped with the engine; nothing else holds it
	e.view.Released()

	session := e.metrics.Complete(e.won, e.World.Count(e.Player))
	e.log.Info().
		Bool("won", e.won).
		Int("rounds", session.Rounds).
		Int("attacks", session.Attacks).
		Int("conquests", session.Conquests).
		Msg("session finished")
	return e.won, session
}

func (e *LocalEngine) step() {
	switch e.state {
	case AwaitingCommand:
		e.awaitCommand()
	case AttackFlow:
		e.attackFlow()
	case VictoryCheck:
		e.victoryCheck()
	}
}

func (e *LocalEngine) awaitCommand() {
	e.view.RoundBanner()
	e.view.Map(e.World)
	e.view.Menu()
	e.view.CommandPrompt()

	command, err := e.readCommand()
	if err != nil {
		if !errors.Is(err, ErrInvalidCommand) {
			e.endOfInput(err)
			return
		}
		e.log.Warn().Err(err).Msg("rejected command")
		e.metrics.AddInvalidInput()
		e.view.InvalidCommand()
		e.endRound()
		return
	}

	e.log.Debug().Int("command", int(command)).Msg("dispatching command")
	switch command {
	case AttackCommand:
		e.metrics.AddRound()
		e.state = AttackFlow
	case VictoryCommand:
		e.metrics.AddRound()
		e.state = VictoryCheck
	case ExitCommand:
		e.view.Goodbye()
		e.state = Terminated
	}
}

// attackFlow validates both selections before anything is mutated, then
// resolves a single exchange.
func (e *LocalEngine) attackFlow() {
	e.view.AttackPhase()
	last := e.World.Len() - 1

	e.view.AttackerPrompt(last)
	attackerID, err := e.readInt()
	if err == nil {
		err = e.World.ValidateAttacker(attackerID, e.Player, e.rules)
	} else if !errors.Is(err, ErrNotANumber) {
		e.endOfInput(err)
		return
	}
	if err != nil {
		e.view.InvalidAttacker(e.rules.MinAttackTroops(), err)
		e.rejectSelection(err)
		return
	}

	e.view.DefenderPrompt(last)
	defenderID, err := e.readInt()
	if err == nil {
		err = e.World.ValidateDefender(attackerID, defenderID, e.Player)
	} else if !errors.Is(err, ErrNotANumber) {
		e.endOfInput(err)
		return
	}
	if err != nil {
		e.view.InvalidDefender(err)
		e.rejectSelection(err)
		return
	}

	e.view.BattleStart(e.World.Territory(attackerID), e.World.Territory(defenderID))
	result := e.World.Attack(attackerID, defenderID, e.dice, e.rules)
	e.view.BattleResult(e.World.Territory(attackerID), e.World.Territory(defenderID), result)

	e.metrics.AddAttack(result.Outcome)
	e.log.Debug().
		Int("attacker", attackerID).
		Int("defender", defenderID).
		Int("attacker_roll", result.AttackerRoll).
		Int("defender_roll", result.DefenderRoll).
		Stringer("outcome", result.Outcome).
		Msg("attack resolved")
	e.endRound()
}

func (e *LocalEngine) rejectSelection(err error) {
	e.log.Warn().Err(err).Msg("rejected attack selection")
	e.metrics.AddInvalidInput()
	e.endRound()
}

func (e *LocalEngine) victoryCheck() {
	e.view.VictoryCheck(e.Mission)
	if game.EvaluateMission(e.World, e.Mission, e.Player) {
		e.won = true
		e.view.Victory()
		e.state = Terminated
		return
	}
	e.view.NotYet()
	e.endRound()
}

// endRound returns to the command prompt, pausing first if enabled.
func (e *LocalEngine) endRound() {
	e.state = AwaitingCommand
	if !e.pause {
		return
	}
	e.view.PressEnter(false)
	if _, err := e.readLine(); err != nil {
		e.endOfInput(err)
	}
}

// endOfInput terminates the session when nothing more can be read.
func (e *LocalEngine) endOfInput(err error) {
	if errors.Is(err, io.EOF) {
		e.log.Warn().Msg("input closed, ending session")
	} else {
		e.log.Error().Err(err).Msg("failed to read input, ending session")
	}
	e.view.Goodbye()
	e.state = Terminated
}

func (e *LocalEngine) readCommand() (Command, error) {
	n, err := e.readInt()
	if errors.Is(err, ErrNotANumber) {
		return 0, fmt.Errorf("%w: %w", ErrInvalidCommand, err)
	}
	if err != nil {
		return 0, err
	}
	switch command := Command(n); command {
	case ExitCommand, AttackCommand, VictoryCommand:
		return command, nil
	default:
		return 0, fmt.Errorf("%w: %d", ErrInvalidCommand, n)
	}
}

func (e *LocalEngine) readInt() (int, error) {
	line, err := e.readLine()
	if err != nil {
		return 0, err
	}
	n, err := strconv.Atoi(strings.TrimSpace(line))
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrNotANumber, line)
	}
	return n, nil
}

func (e *LocalEngine) readLine() (string, error) {
	if !e.scanner.Scan() {
		if err := e.scanner.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return e.scanner.Text(), nil
}
