package pet

import (
	"fmt"
	"log"
)

// Outcome identifies what an action did.
type Outcome string

const (
	Fed             Outcome = "fed"
	AlreadyFull     Outcome = "already full"
	Slept           Outcome = "slept"
	NotTired        Outcome = "not tired"
	Played          Outcome = "played"
	TooTiredToPlay  Outcome = "too tired to play"
	Studied         Outcome = "studied"
	TooTiredToStudy Outcome = "too tired to study"
	Cleaned         Outcome = "cleaned"
	AlreadyClean    Outcome = "already clean"
	InvalidInput    Outcome = "invalid input"
)

// Result describes a single state transition and the text to show for it.
type Result struct {
	Outcome   Outcome
	Message   string
	Visual    string
	Evolution *Evolution
}

// Applied reports whether the action changed the pet.
func (r Result) Applied() bool {
	switch r.Outcome {
	case AlreadyFull, NotTired, TooTiredToPlay, TooTiredToStudy, AlreadyClean, InvalidInput:
		return false
	}
	return r.Outcome != ""
}

var studySubjects = []string{"Math", "Science", "History", "Art"}

// Feed fills the pet up. There is a chance the meal leaves a mess.
func (p *Pet) Feed(rng Rand) Result {
	if p.Hunger >= MaxStat {
		return Result{Outcome: AlreadyFull, Message: "🍽️ I'm already full!"}
	}

	addStat(&p.Hunger, FeedHungerIncrease)
	addStat(&p.Happiness, FeedHappinessIncrease)
	evo := p.gainXP(FeedXP)
	if rng.Float64() < MessyChance {
		p.Messy = true
	}
	log.Printf("Fed pet. Hunger is now %d, Happiness is now %d, Messy: %t", p.Hunger, p.Happiness, p.Messy)

	return Result{
		Outcome:   Fed,
		Message:   "🍎 Yummy! *munch munch*",
		Visual:    VisualEating,
		Evolution: evo,
	}
}

// Sleep restores energy and ages the pet by one.
func (p *Pet) Sleep() Result {
	if p.Energy >= MaxStat {
		return Result{Outcome: NotTired, Message: "😴 I'm not tired!"}
	}

	addStat(&p.Energy, SleepEnergyIncrease)
	p.Age++
	evo := p.gainXP(SleepXP)
	log.Printf("Pet slept. Energy is now %d, Age is now %d", p.Energy, p.Age)

	return Result{
		Outcome:   Slept,
		Message:   "💤 *yawn* That was a good nap!",
		Visual:    VisualSleeping,
		Evolution: evo,
	}
}

// Study trades energy for intelligence.
func (p *Pet) Study(rng Rand) Result {
	if p.Energy < StudyMinEnergy {
		return Result{Outcome: TooTiredToStudy, Message: "📚 Too tired to study!"}
	}

	subject := studySubjects[rng.Intn(len(studySubjects))]
	addStat(&p.Intelligence, StudyIntelligenceGain)
	addStat(&p.Energy, -StudyEnergyCost)
	evo := p.gainXP(StudyXP)
	log.Printf("Pet studied %s. Intelligence is now %d, Energy is now %d", subject, p.Intelligence, p.Energy)

	praise := "🧠 Learning is fun!"
	if p.Intelligence > SmartIntelligenceThresh {
		praise = "🎓 Wow! You're getting really smart!"
	}
	return Result{
		Outcome:   Studied,
		Message:   fmt.Sprintf("📖 Today's lesson: %s. %s", subject, praise),
		Evolution: evo,
	}
}

// Clean removes a mess.
func (p *Pet) Clean() Result {
	if !p.Messy {
		return Result{Outcome: AlreadyClean, Message: "✨ I'm already clean!"}
	}

	p.Messy = false
	addStat(&p.Happiness, CleanHappinessIncrease)
	evo := p.gainXP(CleanXP)
	log.Printf("Cleaned pet. Happiness is now %d", p.Happiness)

	return Result{
		Outcome:   Cleaned,
		Message:   "🧽 *scrub scrub* Much better!",
		Evolution: evo,
	}
}

// StartPlay picks one of the minigames at random. The returned game must be
// resolved with the player's answer; it is nil when the pet is too tired.
func (p *Pet) StartPlay(rng Rand) (Minigame, Result) {
	if p.Energy < PlayMinEnergy {
		return nil, Result{Outcome: TooTiredToPlay, Message: "😪 Too tired to play!"}
	}

	var game Minigame
	switch rng.Intn(3) {
	case 0:
		game = NewChoiceGame(rng)
	case 1:
		game = NewGuessGame(rng)
	default:
		game = NewRiddleGame(rng)
	}
	log.Printf("Starting minigame: %s", game.Name())
	return game, Result{Message: game.Intro()}
}
