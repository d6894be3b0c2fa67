package pet

import (
	"log"
	"strings"
	"time"
)

// Rand is the source of randomness for actions, minigames and events.
// *rand.Rand satisfies it.
type Rand interface {
	Float64() float64
	Intn(n int) int
}

// Pet represents the virtual pet's state
type Pet struct {
	Name         string
	Hunger       int
	Energy       int
	Happiness    int
	Intelligence int
	Age          int
	XP           int
	Level        int
	Sick         bool
	Messy        bool
	LastUpdate   time.Time
}

// Snapshot is a read-only copy of the pet handed to displays.
type Snapshot struct {
	Name         string
	Hunger       int
	Energy       int
	Happiness    int
	Intelligence int
	Age          int
	XP           int
	Level        int
	Stage        Stage
	Sick         bool
	Messy        bool
	LastUpdate   time.Time
}

// Evolution records a stage change caused by leveling up.
type Evolution struct {
	From Stage
	To   Stage
}

// NewPet creates a pet with the starting stats.
func NewPet(name string, now time.Time) *Pet {
	name = strings.TrimSpace(name)
	if name == "" {
		name = DefaultPetName
	}
	p := &Pet{
		Name:         name,
		Hunger:       InitialHunger,
		Energy:       InitialEnergy,
		Happiness:    InitialHappiness,
		Intelligence: InitialIntelligence,
		Level:        LevelForXP(0),
		LastUpdate:   now,
	}
	log.Printf("Created new pet: %s", p.Name)
	return p
}

// LevelForXP returns the level reached with the given experience.
func LevelForXP(xp int) int {
	if xp < 0 {
		xp = 0
	}
	return 1 + xp/XPPerLevel
}

// StageForLevel maps a level onto its life stage.
func StageForLevel(level int) Stage {
	switch {
	case level >= MasterLevel:
		return StageMaster
	case level >= AdultLevel:
		return StageAdult
	case level >= TeenLevel:
		return StageTeen
	default:
		return StageBaby
	}
}

// Stage returns the pet's current life stage.
func (p *Pet) Stage() Stage {
	return StageForLevel(p.Level)
}

// Snapshot copies the pet's state.
func (p *Pet) Snapshot() Snapshot {
	return Snapshot{
		Name:         p.Name,
		Hunger:       p.Hunger,
		Energy:       p.Energy,
		Happiness:    p.Happiness,
		Intelligence: p.Intelligence,
		Age:          p.Age,
		XP:           p.XP,
		Level:        p.Level,
		Stage:        p.Stage(),
		Sick:         p.Sick,
		Messy:        p.Messy,
		LastUpdate:   p.LastUpdate,
	}
}

// gainXP adds experience and recomputes the level. A non-nil Evolution is
// returned when the new level lands in a different stage.
func (p *Pet) gainXP(amount int) *Evolution {
	if amount > 0 {
		p.XP += amount
	}
	return p.recomputeLevel()
}

func (p *Pet) recomputeLevel() *Evolution {
	oldLevel := p.Level
	p.Level = LevelForXP(p.XP)
	if p.Level <= oldLevel {
		return nil
	}

	from, to := StageForLevel(oldLevel), StageForLevel(p.Level)
	if from == to {
		return nil
	}
	log.Printf("%s evolved from %s to %s (level %d)", p.Name, from, to, p.Level)
	return &Evolution{From: from, To: to}
}

// Collapsed reports whether at least two of hunger, energy and happiness are
// empty. A pet in this state has run away.
func (p *Pet) Collapsed() bool {
	return p.zeroStats() >= 2
}

func (p *Pet) zeroStats() int {
	n := 0
	for _, v := range []int{p.Hunger, p.Energy, p.Happiness} {
		if v == 0 {
			n++
		}
	}
	return n
}

func clamp(value, lo, hi int) int {
	if value < lo {
		return lo
	}
	if value > hi {
		return hi
	}
	return value
}

// addStat applies delta to a percentage stat, keeping it in [MinStat, MaxStat].
func addStat(stat *int, delta int) {
	*stat = clamp(*stat+delta, MinStat, MaxStat)
}
