package ui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"tamagotchi/internal/pet"
)

// StatsModel is a simple Bubble Tea model for displaying stats
type StatsModel struct {
	Pet pet.Snapshot
}

// Init implements tea.Model
func (m StatsModel) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model
func (m StatsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m, tea.Quit
	case tea.MouseMsg:
		if msg.Action == tea.MouseActionPress {
			return m, tea.Quit
		}
	}
	return m, nil
}

// View implements tea.Model
func (m StatsModel) View() string {
	return RenderStats(m.Pet) + "\nPress ESC, click, or any key to close..."
}

// RenderStats draws a boxed summary of the pet without color.
func RenderStats(snap pet.Snapshot) string {
	row := func(label, value string) string {
		return fmt.Sprintf("║  %-13s %-26s║\n", label, value)
	}
	bar := func(value int) string {
		return fmt.Sprintf("[%s] %3d%%", statBar(value), value)
	}

	condition := "Healthy"
	if badges := pet.StatusBadges(snap); len(badges) > 0 {
		condition = strings.Join(badges, " ")
	}

	var s strings.Builder
	s.WriteString("╔══════════════════════════════════════════╗\n")
	s.WriteString(row("Name:", snap.Name))
	s.WriteString("╠══════════════════════════════════════════╣\n")
	s.WriteString(row("Stage:", pet.StageTitle(snap.Stage)))
	s.WriteString(row("Level:", fmt.Sprintf("%d (%d XP)", snap.Level, snap.XP)))
	s.WriteString(row("Age:", fmt.Sprintf("%d", snap.Age)))
	s.WriteString(row("Status:", pet.GetStatusWithLabel(snap)))
	s.WriteString(row("Condition:", condition))
	s.WriteString("║                                          ║\n")
	s.WriteString(row("Hunger:", bar(snap.Hunger)))
	s.WriteString(row("Energy:", bar(snap.Energy)))
	s.WriteString(row("Happiness:", bar(snap.Happiness)))
	s.WriteString(row("Intelligence:", bar(snap.Intelligence)))
	s.WriteString("╚══════════════════════════════════════════╝\n")

	return s.String()
}

// DisplayStats shows the stats display
func DisplayStats(snap pet.Snapshot) error {
	program := tea.NewProgram(StatsModel{Pet: snap}, tea.WithAltScreen(), tea.WithMouseAllMotion())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("run stats display: %w", err)
	}
	return nil
}
