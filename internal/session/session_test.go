package session

import (
	"errors"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"tamagotchi/internal/pet"
)

type fakeClock struct {
	now time.Time
}

func (c *fakeClock) Now() time.Time { return c.now }

func (c *fakeClock) Advance(d time.Duration) { c.now = c.now.Add(d) }

// scriptedRand replays scripted values and returns zero when a queue is empty.
type scriptedRand struct {
	floats []float64
	ints   []int
}

func (r *scriptedRand) Float64() float64 {
	if len(r.floats) == 0 {
		return 0.99
	}
	f := r.floats[0]
	r.floats = r.floats[1:]
	return f
}

func (r *scriptedRand) Intn(n int) int {
	if len(r.ints) == 0 {
		return 0
	}
	i := r.ints[0]
	r.ints = r.ints[1:]
	return i % n
}

type memoryStore struct {
	pet     *pet.Pet
	saves   int
	loadErr error
	saveErr error
}

func (m *memoryStore) Load() (*pet.Pet, error) {
	if m.loadErr != nil {
		return nil, m.loadErr
	}
	if m.pet == nil {
		return nil, pet.ErrNoSave
	}
	cp := *m.pet
	return &cp, nil
}

func (m *memoryStore) Save(p *pet.Pet) error {
	if m.saveErr != nil {
		return m.saveErr
	}
	cp := *p
	m.pet = &cp
	m.saves++
	return nil
}

var start = time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)

func newTestSession(t *testing.T, store *memoryStore, rng *scriptedRand) (*Session, *fakeClock) {
	t.Helper()
	clock := &fakeClock{now: start}
	s, err := New(store, clock, rng, "")
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return s, clock
}

func TestParseCommand(t *testing.T) {
	tests := []struct {
		input string
		want  Command
	}{
		{"f", CmdFeed},
		{"FEED", CmdFeed},
		{"  s  ", CmdSleep},
		{"sleep", CmdSleep},
		{"p", CmdPlay},
		{"st", CmdStudy},
		{"study", CmdStudy},
		{"c", CmdClean},
		{"q", CmdQuit},
		{"Quit", CmdQuit},
		{"dance", CmdUnknown},
		{"", CmdUnknown},
	}

	for _, tt := range tests {
		if got := ParseCommand(tt.input); got != tt.want {
			t.Errorf("ParseCommand(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestNewSession(t *testing.T) {
	t.Run("fresh pet when nothing is saved", func(t *testing.T) {
		s, _ := newTestSession(t, &memoryStore{}, &scriptedRand{})
		if s.Loaded {
			t.Error("Expected a fresh pet")
		}
		if s.Pet.Name != pet.DefaultPetName || !s.Pet.LastUpdate.Equal(start) {
			t.Errorf("Unexpected fresh pet %+v", *s.Pet)
		}
		if !strings.Contains(s.Greeting(), "Meet Tama") {
			t.Errorf("Greeting = %q", s.Greeting())
		}
	})

	t.Run("saved pet is loaded", func(t *testing.T) {
		saved := pet.NewPet("Mochi", start)
		s, _ := newTestSession(t, &memoryStore{pet: saved}, &scriptedRand{})
		if !s.Loaded || s.Pet.Name != "Mochi" {
			t.Errorf("Expected saved pet, got %+v", *s.Pet)
		}
		if !strings.Contains(s.Greeting(), "Welcome back") {
			t.Errorf("Greeting = %q", s.Greeting())
		}
	})

	t.Run("corrupt save is an error", func(t *testing.T) {
		store := &memoryStore{loadErr: errors.New("parse save: boom")}
		if _, err := New(store, &fakeClock{now: start}, &scriptedRand{}, ""); err == nil {
			t.Error("Expected error for a corrupt save")
		}
	})
}

func TestHandleCommands(t *testing.T) {
	store := &memoryStore{}
	s, _ := newTestSession(t, store, &scriptedRand{})

	turn, err := s.Handle("f")
	if err != nil {
		t.Fatal(err)
	}
	if s.Pet.Hunger != 100 || s.Pet.XP != 2 {
		t.Errorf("Feed did not apply: %+v", *s.Pet)
	}
	if turn.Visual != pet.VisualEating {
		t.Errorf("Visual = %q, want eating", turn.Visual)
	}
	if store.saves != 1 || store.pet.Hunger != 100 {
		t.Error("Pet should be saved after the turn")
	}

	turn, _ = s.Handle("feed")
	if !strings.Contains(turn.Text(), "already full") {
		t.Errorf("Expected blocked feed message, got %q", turn.Text())
	}

	before := *s.Pet
	turn, _ = s.Handle("jump")
	if !strings.Contains(turn.Text(), "Unknown command") {
		t.Errorf("Expected unknown command message, got %q", turn.Text())
	}
	if *s.Pet != before {
		t.Error("Unknown command changed the pet")
	}
}

func TestHandlePlay(t *testing.T) {
	// Intn: choose the choice game, then the pet picks scissors.
	rng := &scriptedRand{ints: []int{0, 1}}
	s, _ := newTestSession(t, &memoryStore{}, rng)

	turn, err := s.Handle("p")
	if err != nil {
		t.Fatal(err)
	}
	if turn.Prompt == "" || s.Pending() == nil {
		t.Fatal("Expected the minigame to wait for an answer")
	}

	begin, _ := s.Begin()
	if begin.Prompt == "" {
		t.Error("Begin should re-issue the pending prompt")
	}

	turn, err = s.Handle("rock")
	if err != nil {
		t.Fatal(err)
	}
	if s.Pending() != nil {
		t.Error("Minigame should be resolved")
	}
	if s.Pet.Happiness != 95 || s.Pet.XP != 5 || s.Pet.Energy != 65 {
		t.Errorf("Expected win effects, got %+v", *s.Pet)
	}
	if !strings.Contains(turn.Text(), "You won") {
		t.Errorf("Turn text %q", turn.Text())
	}
}

func TestHandlePlayInvalidAnswer(t *testing.T) {
	s, _ := newTestSession(t, &memoryStore{}, &scriptedRand{ints: []int{0, 0}})
	s.Handle("play")
	before := *s.Pet

	turn, _ := s.Handle("banana")
	if *s.Pet != before {
		t.Error("Invalid answer changed the pet")
	}
	if s.Pending() != nil {
		t.Error("Invalid answer should end the minigame")
	}
	if !strings.Contains(turn.Text(), "Invalid choice") {
		t.Errorf("Turn text %q", turn.Text())
	}
}

func TestHandleEvolution(t *testing.T) {
	saved := pet.NewPet("Mochi", start)
	saved.XP = 37
	saved.Level = pet.LevelForXP(saved.XP)
	saved.Energy = 50
	s, _ := newTestSession(t, &memoryStore{pet: saved}, &scriptedRand{})

	turn, _ := s.Handle("s")
	if turn.Evolution == nil {
		t.Fatal("Expected evolution")
	}
	if !strings.Contains(turn.Text(), "evolved from baby to teen") {
		t.Errorf("Turn text %q", turn.Text())
	}
}

func TestHandleQuit(t *testing.T) {
	store := &memoryStore{}
	s, _ := newTestSession(t, store, &scriptedRand{})

	turn, err := s.Handle("q")
	if err != nil {
		t.Fatal(err)
	}
	if !turn.Quit {
		t.Error("Expected quit")
	}
	if store.saves != 1 {
		t.Error("Quitting should save the pet")
	}
}

func TestBegin(t *testing.T) {
	t.Run("applies decay", func(t *testing.T) {
		s, clock := newTestSession(t, &memoryStore{}, &scriptedRand{})
		clock.Advance(5 * time.Minute)

		turn, err := s.Begin()
		if err != nil {
			t.Fatal(err)
		}
		if turn.GameOver {
			t.Fatal("Unexpected game over")
		}
		if s.Pet.Hunger != 70 || s.Pet.Energy != 75 || s.Pet.Happiness != 75 {
			t.Errorf("Unexpected decay %+v", *s.Pet)
		}
	})

	t.Run("ambient event", func(t *testing.T) {
		s, _ := newTestSession(t, &memoryStore{}, &scriptedRand{floats: []float64{0.01}, ints: []int{0}})

		turn, _ := s.Begin()
		if turn.Event == nil || turn.Event.Type != pet.EventBalloon {
			t.Fatalf("Expected balloon event, got %+v", turn.Event)
		}
		if s.Pet.Happiness != 90 {
			t.Errorf("Happiness = %d, want 90", s.Pet.Happiness)
		}
	})

	t.Run("game over", func(t *testing.T) {
		store := &memoryStore{}
		s, clock := newTestSession(t, store, &scriptedRand{})
		clock.Advance(3 * time.Hour)

		turn, err := s.Begin()
		if err != nil {
			t.Fatal(err)
		}
		if !turn.GameOver || !s.Over() {
			t.Fatal("Expected game over")
		}
		if store.pet == nil || store.pet.Hunger != 0 {
			t.Error("Run-away pet should be saved as a tombstone")
		}

		before := *s.Pet
		turn, _ = s.Handle("f")
		if !turn.GameOver || *s.Pet != before {
			t.Error("Commands after game over must not change the pet")
		}
		if turn, _ = s.Handle("q"); !turn.Quit {
			t.Error("Quit should still work after game over")
		}
	})

	t.Run("tombstone save ends the game at once", func(t *testing.T) {
		saved := pet.NewPet("Ghost", start)
		saved.Hunger, saved.Energy = 0, 0
		s, _ := newTestSession(t, &memoryStore{pet: saved}, &scriptedRand{})

		turn, _ := s.Begin()
		if !turn.GameOver {
			t.Error("Expected game over for a collapsed pet")
		}
	})
}

func TestSaveFailure(t *testing.T) {
	store := &memoryStore{saveErr: errors.New("disk full")}
	s, _ := newTestSession(t, store, &scriptedRand{})

	if _, err := s.Handle("f"); err == nil {
		t.Error("Expected save error")
	}
}

func TestWithFileStore(t *testing.T) {
	store := pet.NewStore(filepath.Join(t.TempDir(), "save.json"))
	clock := &fakeClock{now: start}

	s, err := New(store, clock, &scriptedRand{}, "Bit")
	if err != nil {
		t.Fatal(err)
	}
	if _, err := s.Handle("st"); err != nil {
		t.Fatal(err)
	}

	again, err := New(store, clock, &scriptedRand{}, "Other")
	if err != nil {
		t.Fatal(err)
	}
	if !again.Loaded || again.Pet.Name != "Bit" || again.Pet.Intelligence != 40 {
		t.Errorf("Expected saved pet, got %+v", *again.Pet)
	}
}
