// Package session runs the turn loop around a single pet: it applies decay,
// rolls ambient events, maps typed commands onto pet actions, holds a started
// minigame until its answer arrives and saves after every turn.
package session

import (
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"tamagotchi/internal/pet"
)

// Clock tells the session what time it is.
type Clock interface {
	Now() time.Time
}

// SystemClock reads the wall clock.
type SystemClock struct{}

func (SystemClock) Now() time.Time { return time.Now() }

// Store persists the pet between runs. *pet.Store satisfies it.
type Store interface {
	Load() (*pet.Pet, error)
	Save(p *pet.Pet) error
}

// Command is a recognized top-level command.
type Command string

const (
	CmdFeed    Command = "feed"
	CmdSleep   Command = "sleep"
	CmdPlay    Command = "play"
	CmdStudy   Command = "study"
	CmdClean   Command = "clean"
	CmdQuit    Command = "quit"
	CmdUnknown Command = ""
)

var commandAliases = map[string]Command{
	"f":     CmdFeed,
	"feed":  CmdFeed,
	"s":     CmdSleep,
	"sleep": CmdSleep,
	"p":     CmdPlay,
	"play":  CmdPlay,
	"st":    CmdStudy,
	"study": CmdStudy,
	"c":     CmdClean,
	"clean": CmdClean,
	"q":     CmdQuit,
	"quit":  CmdQuit,
}

// ParseCommand maps raw input onto a command, ignoring case and surrounding
// whitespace. Unrecognized input yields CmdUnknown.
func ParseCommand(input string) Command {
	return commandAliases[strings.ToLower(strings.TrimSpace(input))]
}

// CommandHelp lists the commands for menus.
const CommandHelp = "[f]eed  [s]leep  [p]lay  [st]udy  [c]lean  [q]uit"

// Turn is what happened during one step of the session.
type Turn struct {
	Messages  []string
	Visual    string
	Evolution *pet.Evolution
	Event     *pet.AmbientEvent
	// Prompt is set while a minigame waits for the player's answer.
	Prompt   string
	Quit     bool
	GameOver bool
}

// Text joins the turn's messages for display.
func (t Turn) Text() string {
	return strings.Join(t.Messages, "\n")
}

func (t *Turn) say(format string, args ...any) {
	t.Messages = append(t.Messages, fmt.Sprintf(format, args...))
}

// Session owns the pet for one run of the game.
type Session struct {
	Pet *pet.Pet
	// Loaded is true when the pet came from an existing save.
	Loaded bool

	store   Store
	clock   Clock
	rng     pet.Rand
	pending pet.Minigame
	over    bool
}

// New loads the saved pet or hatches a new one named name. A save that exists
// but cannot be read is returned as an error.
func New(store Store, clock Clock, rng pet.Rand, name string) (*Session, error) {
	s := &Session{store: store, clock: clock, rng: rng}

	p, err := store.Load()
	switch {
	case err == nil:
		s.Pet = p
		s.Loaded = true
	case errors.Is(err, pet.ErrNoSave):
		s.Pet = pet.NewPet(name, clock.Now())
	default:
		return nil, err
	}
	return s, nil
}

// Greeting returns the welcome line for the start of a run.
func (s *Session) Greeting() string {
	if s.Loaded {
		return fmt.Sprintf("Welcome back! %s missed you!", s.Pet.Name)
	}
	return fmt.Sprintf("Meet %s! Take good care of them!", s.Pet.Name)
}

// Rename names a freshly hatched pet. Blank names are ignored, as is renaming
// a pet that came from a save.
func (s *Session) Rename(name string) {
	name = strings.TrimSpace(name)
	if s.Loaded || name == "" {
		return
	}
	s.Pet.Name = name
}

// Over reports whether the pet has run away.
func (s *Session) Over() bool { return s.over }

// Pending returns the minigame waiting for an answer, if any.
func (s *Session) Pending() pet.Minigame { return s.pending }

// Begin starts a turn: decay since the last update is applied and an ambient
// event may fire. A pet that has run away ends the game and is saved as is.
func (s *Session) Begin() (Turn, error) {
	var turn Turn
	if s.over {
		return s.gameOverTurn(), nil
	}
	if s.pending != nil {
		turn.Prompt = s.pending.Prompt()
		return turn, nil
	}

	if status := s.Pet.Tick(s.clock.Now()); status == pet.GameOver || s.Pet.Collapsed() {
		s.over = true
		s.pending = nil
		if err := s.store.Save(s.Pet); err != nil {
			return s.gameOverTurn(), fmt.Errorf("save pet: %w", err)
		}
		return s.gameOverTurn(), nil
	}

	if ev, ok := s.Pet.RandomEvent(s.rng); ok {
		turn.Event = &ev
		turn.say("%s", ev.Message)
	}
	return turn, nil
}

func (s *Session) gameOverTurn() Turn {
	turn := Turn{GameOver: true}
	turn.say("💔 %s ran away because you didn't take care of them!", s.Pet.Name)
	return turn
}

// Handle processes one line of input: a minigame answer when a game is
// pending, otherwise a command. The pet is saved afterwards.
func (s *Session) Handle(input string) (Turn, error) {
	var turn Turn

	switch {
	case s.over:
		if ParseCommand(input) == CmdQuit {
			return Turn{Quit: true, GameOver: true}, nil
		}
		return s.gameOverTurn(), nil

	case s.pending != nil:
		game := s.pending
		s.pending = nil
		turn.apply(s.Pet, game.Resolve(s.Pet, input))

	default:
		s.dispatch(&turn, ParseCommand(input))
	}

	if err := s.store.Save(s.Pet); err != nil {
		return turn, fmt.Errorf("save pet: %w", err)
	}
	return turn, nil
}

func (s *Session) dispatch(turn *Turn, cmd Command) {
	log.Printf("Command: %q", cmd)
	switch cmd {
	case CmdFeed:
		turn.apply(s.Pet, s.Pet.Feed(s.rng))
	case CmdSleep:
		turn.apply(s.Pet, s.Pet.Sleep())
	case CmdStudy:
		turn.apply(s.Pet, s.Pet.Study(s.rng))
	case CmdClean:
		turn.apply(s.Pet, s.Pet.Clean())
	case CmdPlay:
		game, result := s.Pet.StartPlay(s.rng)
		turn.apply(s.Pet, result)
		if game != nil {
			s.pending = game
			turn.Prompt = game.Prompt()
		}
	case CmdQuit:
		turn.Quit = true
		turn.say("👋 Goodbye! %s will miss you!", s.Pet.Name)
	default:
		turn.say("❓ Unknown command!")
	}
}

func (t *Turn) apply(p *pet.Pet, r pet.Result) {
	if r.Message != "" {
		t.Messages = append(t.Messages, r.Message)
	}
	if r.Visual != "" {
		t.Visual = r.Visual
	}
	if r.Evolution != nil {
		t.Evolution = r.Evolution
		t.say("🌟 EVOLUTION! 🌟 %s evolved from %s to %s!", p.Name, r.Evolution.From, r.Evolution.To)
	}
}
