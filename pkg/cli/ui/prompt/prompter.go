// Package prompt provides interactive terminal prompts built on bubbletea.
package prompt

import (
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
)

// Prompter asks the user for free text or a choice from a list.
type Prompter interface {
	Text(title, placeholder string, validate func(string) error) (string, error)
	Select(title string, options []string) (string, error)
}

// TeaPrompter runs each prompt as a bubbletea program.
type TeaPrompter struct {
	in  io.Reader
	out io.Writer
}

// NewTeaPrompter creates a prompter. Nil streams default to os.Stdin and os.Stdout.
func NewTeaPrompter(in io.Reader, out io.Writer) *TeaPrompter {
	if in == nil {
		in = os.Stdin
	}

	if out == nil {
		out = os.Stdout
	}

	return &TeaPrompter{in: in, out: out}
}

// Text prompts for a line of text until validate accepts it.
func (p *TeaPrompter) Text(title, placeholder string, validate func(string) error) (string, error) {
	final, err := p.run(NewTextModel(title, placeholder, validate))
	if err != nil {
		return "", err
	}

	model, ok := final.(TextModel)
	if !ok || model.Aborted() || !model.Done() {
		return "", ErrPromptAborted
	}

	_, _ = fmt.Fprintf(p.out, "%s %s\n", titleStyle.Render("? "+title), model.Value())

	return model.Value(), nil
}

// Select prompts for one of options.
func (p *TeaPrompter) Select(title string, options []string) (string, error) {
	if len(options) == 0 {
		return "", ErrNoOptions
	}

	final, err := p.run(NewSelectModel(title, options))
	if err != nil {
		return "", err
	}

	model, ok := final.(SelectModel)
	if !ok || model.Aborted() || !model.Done() {
		return "", ErrPromptAborted
	}

	_, _ = fmt.Fprintf(p.out, "%s %s\n", titleStyle.Render("? "+title), model.Selected())

	return model.Selected(), nil
}

func (p *TeaPrompter) run(model tea.Model) (tea.Model, error) {
	program := tea.NewProgram(model, tea.WithInput(p.in), tea.WithOutput(p.out))

	final, err := program.Run()
	if err != nil {
		return nil, fmt.Errorf("run prompt: %w", err)
	}

	return final, nil
}
