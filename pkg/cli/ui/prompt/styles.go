package prompt

import "github.com/charmbracelet/lipgloss"

//nolint:gochecknoglobals // styles are immutable after init
var (
	titleStyle    = lipgloss.NewStyle().Foreground(lipgloss.ANSIColor(14)).Bold(true)
	cursorStyle   = lipgloss.NewStyle().Foreground(lipgloss.ANSIColor(13)).Bold(true)
	selectedStyle = lipgloss.NewStyle().Foreground(lipgloss.ANSIColor(13))
	errorStyle    = lipgloss.NewStyle().Foreground(lipgloss.ANSIColor(9))
	hintStyle     = lipgloss.NewStyle().Foreground(lipgloss.ANSIColor(8))
)
