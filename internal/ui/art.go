package ui

import "strings"

// petArt holds the still picture for each visual state.
var petArt = map[string][]string{
	"baby": {
		"   ◕   ◕  ",
		"     ω    ",
		"  \\     / ",
		"   ‾‾‾‾‾  ",
	},
	"teen": {
		"  ◉     ◉ ",
		"     ▽    ",
		" \\       /",
		"  ‾‾‾‾‾‾‾ ",
	},
	"adult": {
		" ◉  ___  ◉",
		"    \\_/   ",
		"\\         /",
		" ‾‾‾‾‾‾‾‾‾",
	},
	"master": {
		"★ ◉ ___ ◉ ★",
		"    \\_/    ",
		" \\       / ",
		"  ‾‾‾‾‾‾‾  ",
	},
	"sleeping": {
		"  ◕   ◕   ",
		"     ω     ",
		" Zzz...    ",
		"  ‾‾‾‾‾‾   ",
	},
	"eating": {
		"  ◕   ◕   ",
		"    ◯ω◯   ",
		" *munch*   ",
		"  ‾‾‾‾‾‾   ",
	},
	"sick": {
		"  ×   ×   ",
		"     ~    ",
		"  \\     / ",
		"   ‾‾‾‾‾  ",
	},
}

// ArtFor returns the picture for a visual state, falling back to the baby.
func ArtFor(visual string) string {
	lines, ok := petArt[visual]
	if !ok {
		lines = petArt["baby"]
	}
	return strings.Join(lines, "\n")
}

// statBar draws a ten-cell bar for a percentage stat.
func statBar(value int) string {
	filled := value / 10
	if filled < 0 {
		filled = 0
	}
	if filled > 10 {
		filled = 10
	}
	return strings.Repeat("█", filled) + strings.Repeat("░", 10-filled)
}
