// Package dialog provides the confirmation, alert, and question collaborator used by the editor.
package dialog

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
)

// ErrNoInput is returned when the input stream is exhausted before an answer is read.
var ErrNoInput = errors.New("dialog: no more input")

// Prompter shows modal confirmations and alerts and asks for single values.
type Prompter interface {
	// Confirm asks a yes/no question. Anything but an explicit yes is a no.
	Confirm(ctx context.Context, title, message string) (bool, error)
	// Alert shows a message that needs no answer.
	Alert(ctx context.Context, title, message string) error
	// Ask reads one line of text for label, trimmed of surrounding spaces.
	Ask(ctx context.Context, label string) (string, error)
}

// yesAnswers are accepted in either product language.
var yesAnswers = map[string]bool{"s": true, "si": true, "sí": true, "y": true, "yes": true}

// Terminal is a Prompter over a line-oriented reader and a writer.
type Terminal struct {
	in  *bufio.Reader
	out io.Writer
}

// NewTerminal returns a Prompter reading answers from in and writing prompts to out.
func NewTerminal(in io.Reader, out io.Writer) *Terminal {
	return &Terminal{in: bufio.NewReader(in), out: out}
}

// Confirm prints the question and reads a yes/no answer.
func (t *Terminal) Confirm(ctx context.Context, title, message string) (bool, error) {
	fmt.Fprintf(t.out, "\n[%s] %s [s/N]: ", title, message)
	answer, err := t.readLine(ctx)
	if err != nil {
		return false, err
	}
	return yesAnswers[strings.ToLower(answer)], nil
}

// Alert prints the message.
func (t *Terminal) Alert(ctx context.Context, title, message string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	_, err := fmt.Fprintf(t.out, "\n[%s] %s\n", title, message)
	return err
}

// Ask prints label and reads the answer.
func (t *Terminal) Ask(ctx context.Context, label string) (string, error) {
	fmt.Fprintf(t.out, "%s: ", label)
	return t.readLine(ctx)
}

func (t *Terminal) readLine(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	line, err := t.in.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && line != "" {
			return strings.TrimSpace(line), nil
		}
		if errors.Is(err, io.EOF) {
			return "", ErrNoInput
		}
		return "", fmt.Errorf("failed to read answer: %w", err)
	}
	return strings.TrimSpace(line), nil
}
