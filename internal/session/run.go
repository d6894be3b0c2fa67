package session

import (
	"context"
	"errors"
	"fmt"
	"io"

	"tamagotchi/internal/pet"
)

// Display renders the pet. visual overrides the art to show (eating,
// sleeping); message is shown below the stats.
type Display interface {
	Show(snap pet.Snapshot, visual string, message string)
}

// Prompter reads one line of input after showing prompt.
type Prompter interface {
	Prompt(prompt string) (string, error)
}

const (
	namePrompt     = "What's your pet's name? "
	commandPrompt  = "What do you want to do? "
	continuePrompt = "Press Enter to continue..."
)

// Run drives the session with line-based collaborators until the player quits,
// the pet runs away, input ends or ctx is cancelled.
func Run(ctx context.Context, s *Session, display Display, prompter Prompter) error {
	display.Show(s.Pet.Snapshot(), "", s.Greeting())

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		turn, err := s.Begin()
		if err != nil {
			return err
		}
		if turn.GameOver {
			display.Show(s.Pet.Snapshot(), "", turn.Text()+"\nGame Over. Start a new game with the reset command or by removing the save file.")
			return nil
		}
		display.Show(s.Pet.Snapshot(), "", turn.Text()+"\n\n🎮 Commands:\n  "+CommandHelp)

		input, err := prompter.Prompt(commandPrompt)
		if err != nil {
			return endOfInput(err)
		}

		turn, err = s.Handle(input)
		if err != nil {
			return err
		}
		for turn.Prompt != "" {
			display.Show(s.Pet.Snapshot(), turn.Visual, turn.Text())
			answer, err := prompter.Prompt(turn.Prompt)
			if err != nil {
				return endOfInput(err)
			}
			if turn, err = s.Handle(answer); err != nil {
				return err
			}
		}

		display.Show(s.Pet.Snapshot(), turn.Visual, turn.Text())
		if turn.Quit {
			return nil
		}

		if _, err := prompter.Prompt(continuePrompt); err != nil {
			return endOfInput(err)
		}
	}
}

// AskName lets the player name a pet hatched in this run. A blank answer or
// closed input keeps the current name.
func AskName(s *Session, prompter Prompter) error {
	if s.Loaded {
		return nil
	}
	answer, err := prompter.Prompt(namePrompt)
	if err != nil {
		return endOfInput(err)
	}
	s.Rename(answer)
	return nil
}

// endOfInput treats a closed input stream as the player leaving. The pet was
// already saved after the last handled turn.
func endOfInput(err error) error {
	if errors.Is(err, io.EOF) {
		return nil
	}
	return fmt.Errorf("read input: %w", err)
}
