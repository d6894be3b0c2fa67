package ui

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"tamagotchi/internal/pet"
)

// LineDisplay prints the pet card to a plain writer for the line-oriented
// mode.
type LineDisplay struct {
	Out io.Writer
}

// Show implements session.Display.
func (d LineDisplay) Show(snap pet.Snapshot, visual string, message string) {
	fmt.Fprintln(d.Out, renderPetCard(snap, visual))
	if message != "" {
		fmt.Fprintln(d.Out)
		fmt.Fprintln(d.Out, message)
	}
	fmt.Fprintln(d.Out)
}

// LinePrompter reads answers one line at a time.
type LinePrompter struct {
	In  *bufio.Reader
	Out io.Writer
}

// NewLinePrompter wraps in and out for session.Run.
func NewLinePrompter(in io.Reader, out io.Writer) LinePrompter {
	return LinePrompter{In: bufio.NewReader(in), Out: out}
}

// Prompt implements session.Prompter. A final line without a newline is
// still returned; io.EOF is reported only when nothing was read.
func (p LinePrompter) Prompt(prompt string) (string, error) {
	fmt.Fprint(p.Out, gameStyles.prompt.Render(prompt))
	line, err := p.In.ReadString('\n')
	if err != nil && (err != io.EOF || line == "") {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}
