package ui

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"tamagotchi/internal/pet"
)

func TestLineDisplay(t *testing.T) {
	var out bytes.Buffer
	p := pet.NewPet("Pixel", testStart)
	p.Sick = true

	LineDisplay{Out: &out}.Show(p.Snapshot(), "", "Hello there")

	got := out.String()
	for _, want := range []string{"Pixel the Tamagotchi", "😷 SICK", "Hunger", "Hello there", "×"} {
		if !strings.Contains(got, want) {
			t.Errorf("Output missing %q:\n%s", want, got)
		}
	}
}

func TestLineDisplayVisualOverride(t *testing.T) {
	var out bytes.Buffer
	LineDisplay{Out: &out}.Show(pet.NewPet("", testStart).Snapshot(), pet.VisualSleeping, "")

	if !strings.Contains(out.String(), "Zzz") {
		t.Errorf("Expected sleeping art:\n%s", out.String())
	}
}

func TestLinePrompter(t *testing.T) {
	var out bytes.Buffer
	p := NewLinePrompter(strings.NewReader("feed\r\nlast"), &out)

	tests := []struct {
		want    string
		wantErr error
	}{
		{"feed", nil},
		{"last", nil},
		{"", io.EOF},
	}

	for _, tt := range tests {
		got, err := p.Prompt("> ")
		if err != tt.wantErr {
			t.Fatalf("Prompt error = %v, want %v", err, tt.wantErr)
		}
		if got != tt.want {
			t.Errorf("Prompt = %q, want %q", got, tt.want)
		}
	}

	if !strings.Contains(out.String(), "> ") {
		t.Errorf("Prompt text not written: %q", out.String())
	}
}

func TestRenderStats(t *testing.T) {
	p := pet.NewPet("Bit", testStart)
	p.XP = 45
	p.Level = pet.LevelForXP(p.XP)
	p.Messy = true

	got := RenderStats(p.Snapshot())
	for _, want := range []string{"Bit", "Teen", "3 (45 XP)", "💩 MESSY", "Intelligence:", " 20%"} {
		if !strings.Contains(got, want) {
			t.Errorf("Stats missing %q:\n%s", want, got)
		}
	}
}

func TestStatBar(t *testing.T) {
	tests := []struct {
		value int
		want  string
	}{
		{0, "░░░░░░░░░░"},
		{55, "█████░░░░░"},
		{100, "██████████"},
		{150, "██████████"},
		{-5, "░░░░░░░░░░"},
	}

	for _, tt := range tests {
		if got := statBar(tt.value); got != tt.want {
			t.Errorf("statBar(%d) = %q, want %q", tt.value, got, tt.want)
		}
	}
}

func TestArtFor(t *testing.T) {
	if ArtFor("unknown") != ArtFor(string(pet.StageBaby)) {
		t.Error("Unknown visual should fall back to the baby")
	}
	if !strings.Contains(ArtFor(string(pet.StageMaster)), "★") {
		t.Error("Master art should have stars")
	}
}
