// Package markdown renders short Markdown documents for the terminal: styled with
// glamour on a terminal, word-wrapped plain text everywhere else.
package markdown

import (
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/glamour/ansi"
	"github.com/mitchellh/go-wordwrap"
	"golang.org/x/term"
)

// DefaultWidth is the wrap width used when the terminal size is unknown.
const DefaultWidth = 80

const listLevelIndent = 2

// Renderer turns Markdown into terminal output.
type Renderer struct {
	width  int
	styled bool
}

// wrappedWriter is implemented by writers that decorate another writer,
// such as notify.StageSeparatingWriter.
type wrappedWriter interface {
	Underlying() io.Writer
}

// NewRenderer creates a renderer for writer. Styling is enabled only when writer,
// or the writer it wraps, is a terminal.
func NewRenderer(writer io.Writer) *Renderer {
	file, ok := terminalFile(writer)
	if !ok {
		return NewPlainRenderer(DefaultWidth)
	}

	width, _, err := term.GetSize(int(file.Fd()))
	if err != nil || width <= 0 {
		width = DefaultWidth
	}

	return NewStyledRenderer(width)
}

// NewPlainRenderer creates an unstyled renderer wrapping at width.
func NewPlainRenderer(width int) *Renderer {
	if width <= 0 {
		width = DefaultWidth
	}

	return &Renderer{width: width}
}

// NewStyledRenderer creates a glamour renderer wrapping at width.
func NewStyledRenderer(width int) *Renderer {
	renderer := NewPlainRenderer(width)
	renderer.styled = true

	return renderer
}

// IsTerminal reports whether writer, after unwrapping decorators, is a terminal.
func IsTerminal(writer io.Writer) bool {
	_, ok := terminalFile(writer)

	return ok
}

// Render returns the rendered document. Styling failures fall back to plain text.
func (r *Renderer) Render(content string) string {
	if r.styled {
		tr, err := glamour.NewTermRenderer(
			glamour.WithStyles(defaultStyle()),
			glamour.WithWordWrap(r.width),
		)
		if err == nil {
			out, renderErr := tr.Render(content)
			if renderErr == nil {
				return strings.TrimRight(out, "\n") + "\n"
			}
		}
	}

	return wordwrap.WrapString(strings.TrimRight(content, "\n"), uint(r.width)) + "\n"
}

// Fprint renders content and writes it to writer.
func (r *Renderer) Fprint(writer io.Writer, content string) error {
	_, err := io.WriteString(writer, r.Render(content))
	if err != nil {
		return err //nolint:wrapcheck // plain writer passthrough
	}

	return nil
}

func terminalFile(writer io.Writer) (*os.File, bool) {
	for {
		wrapped, ok := writer.(wrappedWriter)
		if !ok {
			break
		}

		writer = wrapped.Underlying()
	}

	file, ok := writer.(*os.File)
	if !ok || !term.IsTerminal(int(file.Fd())) {
		return nil, false
	}

	return file, true
}

// defaultStyle is a static style so glamour never queries the terminal for its background.
func defaultStyle() ansi.StyleConfig {
	return ansi.StyleConfig{
		Document: ansi.StyleBlock{
			Margin: uintPtr(0),
		},
		Heading: ansi.StyleBlock{
			StylePrimitive: ansi.StylePrimitive{
				Color: stringPtr("39"),
				Bold:  boolPtr(true),
			},
		},
		H2: ansi.StyleBlock{
			StylePrimitive: ansi.StylePrimitive{
				Prefix: "## ",
			},
		},
		Paragraph: ansi.StyleBlock{
			Margin: uintPtr(0),
		},
		List: ansi.StyleList{
			LevelIndent: listLevelIndent,
		},
		Item: ansi.StylePrimitive{
			BlockPrefix: "• ",
		},
		Enumeration: ansi.StylePrimitive{
			BlockPrefix: ". ",
		},
		Code: ansi.StyleBlock{
			StylePrimitive: ansi.StylePrimitive{
				Color: stringPtr("203"),
			},
		},
		Strong: ansi.StylePrimitive{
			Bold: boolPtr(true),
		},
		Emph: ansi.StylePrimitive{
			Italic: boolPtr(true),
		},
	}
}

func stringPtr(s string) *string { return &s }
func boolPtr(b bool) *bool       { return &b }
func uintPtr(u uint) *uint       { return &u }
