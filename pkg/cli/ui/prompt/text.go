package prompt

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// TextModel is a single-line text prompt with validation on submit.
type TextModel struct {
	title    string
	input    textinput.Model
	validate func(string) error
	err      error
	done     bool
	aborted  bool
}

// NewTextModel creates a text prompt. validate may be nil.
func NewTextModel(title, placeholder string, validate func(string) error) TextModel {
	input := textinput.New()
	input.Placeholder = placeholder
	input.Prompt = "› "
	input.CharLimit = 214
	input.Focus()

	return TextModel{title: title, input: input, validate: validate}
}

// Init implements tea.Model.
func (m TextModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model.
func (m TextModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			m.aborted = true

			return m, tea.Quit
		case tea.KeyEnter:
			value := m.Value()
			if m.validate != nil {
				m.err = m.validate(value)
				if m.err != nil {
					return m, nil
				}
			}

			m.done = true

			return m, tea.Quit
		default:
		}
	}

	var cmd tea.Cmd

	m.input, cmd = m.input.Update(msg)

	return m, cmd
}

// View implements tea.Model.
func (m TextModel) View() string {
	if m.done || m.aborted {
		return ""
	}

	var view strings.Builder

	view.WriteString(titleStyle.Render("? "+m.title) + "\n")
	view.WriteString(m.input.View() + "\n")

	if m.err != nil {
		view.WriteString(errorStyle.Render("✗ "+m.err.Error()) + "\n")
	}

	return view.String()
}

// Value returns the trimmed input.
func (m TextModel) Value() string {
	return strings.TrimSpace(m.input.Value())
}

// Err returns the last validation error.
func (m TextModel) Err() error {
	return m.err
}

// Done reports whether a valid value was submitted.
func (m TextModel) Done() bool {
	return m.done
}

// Aborted reports whether the user cancelled.
func (m TextModel) Aborted() bool {
	return m.aborted
}
