// Package terminal provides the interactive capabilities of the CLI:
// asking the user for values and telling them things. Both are modeled
// as small interfaces so the init workflow can be driven by scripted
// answers in tests.
package terminal

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
)

// Prompter asks the user for a single value and blocks until one
// arrives. There is no timeout; a run suspends until input shows up.
type Prompter interface {
	Ask(prompt string) (string, error)
}

// Console receives user-facing messages. Warnings are advisory and
// never affect the outcome of a run.
type Console interface {
	Tell(msg string)
	Warn(msg string)
}

var warnColor = color.New(color.FgYellow)

// Terminal implements Prompter and Console over an input reader and an
// output writer, normally stdin and stdout.
type Terminal struct {
	in  *bufio.Reader
	out io.Writer
}

// New returns a Terminal attached to stdin and stdout.
func New() *Terminal {
	return NewWithIO(os.Stdin, os.Stdout)
}

// NewWithIO returns a Terminal over the given reader and writer.
func NewWithIO(in io.Reader, out io.Writer) *Terminal {
	return &Terminal{in: bufio.NewReader(in), out: out}
}

// Ask prints the prompt and blocks for one line of input. The answer
// is returned with surrounding whitespace trimmed.
func (t *Terminal) Ask(prompt string) (string, error) {
	fmt.Fprintf(t.out, "%s: ", prompt)

	line, err := t.in.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("failed to read input: %w", err)
	}
	answer := strings.TrimSpace(line)
	if answer == "" && errors.Is(err, io.EOF) {
		return "", fmt.Errorf("no input available for prompt %q", prompt)
	}
	return answer, nil
}

// Tell prints an informational message.
func (t *Terminal) Tell(msg string) {
	fmt.Fprintln(t.out, msg)
}

// Warn prints a warning message.
func (t *Terminal) Warn(msg string) {
	warnColor.Fprintf(t.out, "WARNING: %s\n", msg)
}

// Script is a Prompter replaying canned answers in order, for tests.
type Script struct {
	Answers []string
	next    int
}

// Ask pops the next scripted answer or fails when the script is
// exhausted, which makes unexpected prompts visible in tests.
func (s *Script) Ask(prompt string) (string, error) {
	if s.next >= len(s.Answers) {
		return "", fmt.Errorf("unexpected prompt %q: script exhausted after %d answers", prompt, len(s.Answers))
	}
	answer := s.Answers[s.next]
	s.next++
	return answer, nil
}

// Asked returns how many prompts were answered so far.
func (s *Script) Asked() int {
	return s.next
}

// Recorder is a Console capturing messages for tests.
type Recorder struct {
	Told   []string
	Warned []string
}

func (r *Recorder) Tell(msg string) {
	r.Told = append(r.Told, msg)
}

func (r *Recorder) Warn(msg string) {
	r.Warned = append(r.Warned, msg)
}
