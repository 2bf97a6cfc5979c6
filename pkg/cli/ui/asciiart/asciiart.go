// Package asciiart renders the backtool banner.
package asciiart

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const logo = ` ____             _    _____           _
| __ )  __ _  ___| | _|_   _|__   ___ | |
|  _ \ / _` + "`" + ` |/ __| |/ / | |/ _ \ / _ \| |
| |_) | (_| | (__|   <  | | (_) | (_) | |
|____/ \__,_|\___|_|\_\ |_|\___/ \___/|_|`

const tagline = "Scaffold an Express REST API with JWT auth in seconds"

//nolint:gochecknoglobals // styles are immutable after init
var (
	logoStyle    = lipgloss.NewStyle().Foreground(lipgloss.ANSIColor(14)).Bold(true)
	taglineStyle = lipgloss.NewStyle().Foreground(lipgloss.ANSIColor(6)).Italic(true)
)

// Logo returns the block letter logo.
func Logo() string {
	return logo
}

// Tagline returns the line printed under the logo.
func Tagline() string {
	return tagline
}

// LogoHeight is the number of lines of the logo.
func LogoHeight() int {
	return strings.Count(logo, "\n") + 1
}

// PrintBacktoolLogo writes the styled logo and tagline followed by a blank line.
func PrintBacktoolLogo(writer io.Writer) {
	_, _ = fmt.Fprintln(writer, logoStyle.Render(logo))
	_, _ = fmt.Fprintln(writer, taglineStyle.Render(tagline))
	_, _ = fmt.Fprintln(writer)
}
