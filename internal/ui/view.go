package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"tamagotchi/internal/pet"
	"tamagotchi/internal/session"
)

var gameStyles = struct {
	title     lipgloss.Style
	art       lipgloss.Style
	status    lipgloss.Style
	stats     lipgloss.Style
	badge     lipgloss.Style
	evolution lipgloss.Style
	prompt    lipgloss.Style
	help      lipgloss.Style
}{
	title: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#FF75B5")).
		Padding(0, 1),

	art: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#FFD700")).
		Padding(0, 2),

	status: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#FF75B5")).
		Width(44),

	stats: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#FF75B5")).
		Width(44),

	badge: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#FF5F5F")),

	evolution: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#FFD700")).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("#FFD700")).
		Padding(0, 1),

	prompt: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#87D7FF")),

	help: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#8A8A8A")),
}

// View implements tea.Model
func (m Model) View() string {
	if m.Quitting {
		if m.Err != nil {
			return fmt.Sprintf("Error: %v\n", m.Err)
		}
		return "Thanks for playing!\n"
	}
	if m.GameOver {
		return m.gameOverView()
	}

	snap := m.Session.Pet.Snapshot()
	var sections []string

	if m.Animation.Type != AnimNone {
		sections = append(sections,
			renderTitle(snap),
			"",
			gameStyles.art.Render(GetAnimationFrame(m.Animation)),
		)
	} else {
		sections = append(sections, renderPetCard(snap, m.Visual))
	}

	if m.Evolution != nil {
		banner := fmt.Sprintf("🌟 EVOLUTION! 🌟\n%s → %s",
			pet.StageTitle(m.Evolution.From), pet.StageTitle(m.Evolution.To))
		sections = append(sections, "", gameStyles.evolution.Render(banner))
	}

	if len(m.Messages) > 0 {
		sections = append(sections, "", gameStyles.status.Render(strings.Join(m.Messages, "\n")))
	}

	prompt := m.Prompt
	if prompt == "" {
		prompt = "What do you want to do? "
	}
	sections = append(sections,
		"",
		gameStyles.prompt.Render(prompt)+m.Input+"█",
		"",
		gameStyles.help.Render(session.CommandHelp+" • enter to submit • ctrl+c to exit"),
	)

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func renderTitle(snap pet.Snapshot) string {
	return gameStyles.title.Render("🐾 " + snap.Name + " the Tamagotchi 🐾")
}

// renderPetCard draws the pet with its art, badges, stat bars and status.
func renderPetCard(snap pet.Snapshot, visual string) string {
	sections := []string{
		renderTitle(snap),
		"",
		gameStyles.art.Render(ArtFor(pet.VisualState(snap, visual))),
	}

	if badges := pet.StatusBadges(snap); len(badges) > 0 {
		sections = append(sections, gameStyles.badge.Render(strings.Join(badges, "  ")))
	}

	sections = append(sections,
		"",
		renderStats(snap),
		"",
		gameStyles.status.Render("Status: "+pet.GetStatusWithLabel(snap)),
	)

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func renderStats(snap pet.Snapshot) string {
	stats := []struct {
		name  string
		value int
	}{
		{"Hunger", snap.Hunger},
		{"Energy", snap.Energy},
		{"Happiness", snap.Happiness},
		{"Intelligence", snap.Intelligence},
	}

	var lines []string
	for _, stat := range stats {
		lines = append(lines, fmt.Sprintf("%-13s [%s] %3d%%", stat.name+":", statBar(stat.value), stat.value))
	}
	lines = append(lines, fmt.Sprintf("Level %d (%s) | Age: %d | XP: %d",
		snap.Level, pet.StageTitle(snap.Stage), snap.Age, snap.XP))

	return gameStyles.stats.Render(strings.Join(lines, "\n"))
}

func (m Model) gameOverView() string {
	snap := m.Session.Pet.Snapshot()
	return lipgloss.JoinVertical(
		lipgloss.Center,
		gameStyles.title.Render("💔 "+snap.Name+" 💔"),
		"",
		gameStyles.art.Render(ArtFor(pet.VisualSick)),
		"",
		gameStyles.status.Render(strings.Join(m.Messages, "\n")),
		gameStyles.status.Render(fmt.Sprintf("They reached level %d at age %d.", snap.Level, snap.Age)),
		"",
		gameStyles.status.Render("Start a new game with the reset command."),
		gameStyles.help.Render("Press enter to exit"),
	)
}
