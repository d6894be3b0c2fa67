package ui

import (
	"log"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"tamagotchi/internal/pet"
	"tamagotchi/internal/session"
)

// Model represents the game screen
type Model struct {
	Session    *session.Session
	Input      string
	Messages   []string
	Prompt     string
	Evolution  *pet.Evolution
	Visual     string
	Quitting   bool
	GameOver   bool
	Animations bool
	Animation  Animation
	Err        error

	// begun is set while the current turn's decay and event roll are applied
	// but its command has not been handled yet.
	begun bool
}

type animTickMsg struct {
	started time.Time
}

// NewModel starts the first turn of s and wraps it for the TUI.
func NewModel(s *session.Session, animations bool) (Model, error) {
	m := Model{Session: s, Animations: animations}
	turn, err := s.Begin()
	if err != nil {
		return m, err
	}
	turn.Messages = append([]string{s.Greeting()}, turn.Messages...)
	m.applyTurn(turn)
	m.begun = true
	return m, nil
}

// Init implements tea.Model
func (m Model) Init() tea.Cmd {
	return nil
}

func animTick(start time.Time) tea.Cmd {
	return tea.Tick(AnimationFrameDuration, func(t time.Time) tea.Msg {
		return animTickMsg{started: start}
	})
}

// Update implements tea.Model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			m.Quitting = true
			return m, tea.Quit
		}

		// While an animation is playing, ignore other input
		if m.Animation.Type != AnimNone {
			return m, nil
		}

		switch msg.Type {
		case tea.KeyEnter:
			return m.submit()
		case tea.KeyBackspace:
			if r := []rune(m.Input); len(r) > 0 {
				m.Input = string(r[:len(r)-1])
			}
		case tea.KeyEsc:
			m.Input = ""
		case tea.KeySpace:
			m.Input += " "
		case tea.KeyRunes:
			m.Input += string(msg.Runes)
		}

	case animTickMsg:
		// Drop ticks that belong to an older animation (e.g., if a new action started)
		if m.Animation.Type == AnimNone || !m.Animation.StartTime.Equal(msg.started) {
			return m, nil
		}

		m.Animation.Frame++
		if IsAnimationComplete(m.Animation) {
			m.Animation = Animation{}
			return m, nil
		}

		return m, animTick(m.Animation.StartTime)
	}

	return m, nil
}

// submit hands the typed line to the session. Decay and ambient events are
// applied first, at the moment of interaction, unless NewModel already did so
// for the opening turn.
func (m Model) submit() (tea.Model, tea.Cmd) {
	input := m.Input
	m.Input = ""

	if m.GameOver {
		m.Quitting = true
		return m, tea.Quit
	}

	var begin session.Turn
	if !m.begun {
		var err error
		if begin, err = m.Session.Begin(); err != nil {
			return m.fail(err)
		}
		if begin.GameOver {
			m.applyTurn(begin)
			return m, nil
		}
	}
	m.begun = false

	turn, err := m.Session.Handle(input)
	if err != nil {
		return m.fail(err)
	}
	turn.Messages = append(begin.Messages, turn.Messages...)
	m.applyTurn(turn)

	if turn.Quit {
		m.Quitting = true
		return m, tea.Quit
	}

	if anim := AnimationForVisual(turn.Visual); m.Animations && anim != AnimNone {
		m.Animation = Animation{Type: anim, StartTime: time.Now()}
		return m, animTick(m.Animation.StartTime)
	}
	return m, nil
}

func (m Model) fail(err error) (tea.Model, tea.Cmd) {
	log.Printf("Session error: %v", err)
	m.Err = err
	m.Quitting = true
	return m, tea.Quit
}

func (m *Model) applyTurn(turn session.Turn) {
	m.Messages = turn.Messages
	m.Prompt = turn.Prompt
	m.Evolution = turn.Evolution
	m.Visual = turn.Visual
	if turn.GameOver {
		m.GameOver = true
	}
}
