package pet

import "strings"

// VisualState picks the art to show. An override from the current action
// (sleeping, eating) wins; otherwise a sick pet looks sick and a healthy one
// shows its stage.
func VisualState(s Snapshot, override string) string {
	if override != "" {
		return override
	}
	if s.Sick {
		return VisualSick
	}
	return string(s.Stage)
}

// StatusBadges returns the condition markers shown under the pet.
func StatusBadges(s Snapshot) []string {
	var badges []string
	if s.Sick {
		badges = append(badges, "😷 SICK")
	}
	if s.Messy {
		badges = append(badges, "💩 MESSY")
	}
	return badges
}

// StageTitle returns the display name for a stage.
func StageTitle(s Stage) string {
	if s == "" {
		return ""
	}
	return strings.ToUpper(string(s[:1])) + string(s[1:])
}

// GetStatusWithLabel returns a one-word mood for the pet's lowest need.
func GetStatusWithLabel(s Snapshot) string {
	switch {
	case s.Sick:
		return "🤢 Sick"
	case s.Hunger < 30:
		return "🙀 Hungry"
	case s.Energy < 30:
		return "😾 Tired"
	case s.Happiness < 30:
		return "😿 Sad"
	case s.Messy:
		return "😣 Messy"
	default:
		return "😸 Happy"
	}
}
