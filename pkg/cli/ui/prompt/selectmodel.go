package prompt

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// SelectModel is a single-choice list prompt navigated with arrow keys or j/k.
type SelectModel struct {
	title   string
	options []string
	cursor  int
	done    bool
	aborted bool
}

// NewSelectModel creates a select prompt.
func NewSelectModel(title string, options []string) SelectModel {
	return SelectModel{title: title, options: options}
}

// Init implements tea.Model.
func (m SelectModel) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m SelectModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch key.String() {
	case "ctrl+c", "esc", "q":
		m.aborted = true

		return m, tea.Quit
	case "up", "k":
		m.cursor = (m.cursor - 1 + len(m.options)) % len(m.options)
	case "down", "j", "tab":
		m.cursor = (m.cursor + 1) % len(m.options)
	case "enter", " ":
		m.done = true

		return m, tea.Quit
	}

	return m, nil
}

// View implements tea.Model.
func (m SelectModel) View() string {
	if m.done || m.aborted {
		return ""
	}

	var view strings.Builder

	view.WriteString(titleStyle.Render("? "+m.title) + "\n")

	for i, option := range m.options {
		if i == m.cursor {
			view.WriteString(cursorStyle.Render("❯ ") + selectedStyle.Render(option) + "\n")

			continue
		}

		view.WriteString("  " + option + "\n")
	}

	view.WriteString(hintStyle.Render("↑/↓ to move, enter to select") + "\n")

	return view.String()
}

// Selected returns the option under the cursor.
func (m SelectModel) Selected() string {
	return m.options[m.cursor]
}

// Done reports whether an option was chosen.
func (m SelectModel) Done() bool {
	return m.done
}

// Aborted reports whether the user cancelled.
func (m SelectModel) Aborted() bool {
	return m.aborted
}
