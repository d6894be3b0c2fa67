package pet

import (
	"fmt"
	"log"
	"strconv"
	"strings"
)

// Minigame is a play session waiting for one answer from the player.
type Minigame interface {
	Name() string
	Intro() string
	Prompt() string
	Resolve(p *Pet, answer string) Result
}

// Choice game

// Choices available in the choice game. Each beats the one after it, wrapping.
var Choices = []string{"rock", "scissors", "paper"}

// ChoiceGame is rock-paper-scissors against the pet.
type ChoiceGame struct {
	PetChoice string
}

// NewChoiceGame lets the pet pick its hand.
func NewChoiceGame(rng Rand) *ChoiceGame {
	return &ChoiceGame{PetChoice: Choices[rng.Intn(len(Choices))]}
}

func (g *ChoiceGame) Name() string { return "rock-paper-scissors" }

func (g *ChoiceGame) Intro() string { return "🎮 Let's play Rock-Paper-Scissors!" }

func (g *ChoiceGame) Prompt() string { return "Choose (rock/paper/scissors): " }

// Beats reports whether choice a defeats choice b.
func Beats(a, b string) bool {
	ia, ib := choiceIndex(a), choiceIndex(b)
	if ia < 0 || ib < 0 {
		return false
	}
	return (ia+1)%len(Choices) == ib
}

func choiceIndex(c string) int {
	for i, choice := range Choices {
		if choice == c {
			return i
		}
	}
	return -1
}

func (g *ChoiceGame) Resolve(p *Pet, answer string) Result {
	choice := strings.ToLower(strings.TrimSpace(answer))
	if choiceIndex(choice) < 0 {
		return Result{Outcome: InvalidInput, Message: "Invalid choice!"}
	}

	var happiness, xp int
	var verdict string
	switch {
	case choice == g.PetChoice:
		happiness, xp, verdict = 10, 3, "🤝 It's a tie!"
	case Beats(choice, g.PetChoice):
		happiness, xp, verdict = 15, 5, "🎉 You won! Great game!"
	default:
		happiness, xp, verdict = 12, 4, "😄 I won! Good game!"
	}

	addStat(&p.Happiness, happiness)
	addStat(&p.Energy, -15)
	evo := p.gainXP(xp)
	log.Printf("Choice game: player %s, pet %s. Happiness is now %d", choice, g.PetChoice, p.Happiness)

	return Result{
		Outcome:   Played,
		Message:   fmt.Sprintf("You: %s | Me: %s\n%s", choice, g.PetChoice, verdict),
		Evolution: evo,
	}
}

// Guess game

const (
	GuessMin = 1
	GuessMax = 10
)

// GuessGame asks the player for the number the pet is thinking of.
type GuessGame struct {
	Target int
}

// NewGuessGame draws the secret number.
func NewGuessGame(rng Rand) *GuessGame {
	return &GuessGame{Target: GuessMin + rng.Intn(GuessMax-GuessMin+1)}
}

func (g *GuessGame) Name() string { return "guess-number" }

func (g *GuessGame) Intro() string {
	return fmt.Sprintf("🎯 I'm thinking of a number between %d-%d!", GuessMin, GuessMax)
}

func (g *GuessGame) Prompt() string { return "Your guess: " }

func (g *GuessGame) Resolve(p *Pet, answer string) Result {
	guess, err := strconv.Atoi(strings.TrimSpace(answer))
	if err != nil {
		return Result{Outcome: InvalidInput, Message: "That's not a number!"}
	}

	var msg string
	var xp int
	if guess == g.Target {
		addStat(&p.Happiness, 20)
		addStat(&p.Intelligence, 10)
		xp = 8
		msg = fmt.Sprintf("🎊 Correct! It was %d!", g.Target)
	} else {
		addStat(&p.Happiness, 8)
		addStat(&p.Intelligence, 5)
		xp = 3
		msg = fmt.Sprintf("❌ Nope! It was %d. Good try!", g.Target)
	}
	addStat(&p.Energy, -10)
	evo := p.gainXP(xp)
	log.Printf("Guess game: guessed %d, target %d", guess, g.Target)

	return Result{Outcome: Played, Message: msg, Evolution: evo}
}

// Riddle game

// Riddle is a question with a single expected answer word.
type Riddle struct {
	Question string
	Answer   string
}

var Riddles = []Riddle{
	{Question: "What has keys but no locks?", Answer: "keyboard"},
	{Question: "What gets wet while drying?", Answer: "towel"},
	{Question: "What has hands but cannot clap?", Answer: "clock"},
}

// RiddleGame asks one riddle.
type RiddleGame struct {
	Riddle Riddle
}

// NewRiddleGame draws a riddle.
func NewRiddleGame(rng Rand) *RiddleGame {
	return &RiddleGame{Riddle: Riddles[rng.Intn(len(Riddles))]}
}

func (g *RiddleGame) Name() string { return "riddle" }

func (g *RiddleGame) Intro() string { return "🧩 Riddle: " + g.Riddle.Question }

func (g *RiddleGame) Prompt() string { return "Answer: " }

func (g *RiddleGame) Resolve(p *Pet, answer string) Result {
	given := strings.ToLower(strings.TrimSpace(answer))
	expected := strings.ToLower(g.Riddle.Answer)

	var msg string
	var xp int
	if strings.Contains(given, expected) {
		addStat(&p.Happiness, 15)
		addStat(&p.Intelligence, 15)
		xp = 10
		msg = "🧠 Brilliant! You're so smart!"
	} else {
		addStat(&p.Happiness, 5)
		addStat(&p.Intelligence, 8)
		xp = 4
		msg = fmt.Sprintf("🤔 The answer was '%s'. You'll get it next time!", g.Riddle.Answer)
	}
	addStat(&p.Energy, -12)
	evo := p.gainXP(xp)
	log.Printf("Riddle game: answered %q, expected %q", given, expected)

	return Result{Outcome: Played, Message: msg, Evolution: evo}
}
